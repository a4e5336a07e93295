package document

import "encoding/json"

// Node is one element of a post's rich-text body: a tagged variant carrying
// arbitrary attributes and child nodes. Editors emit these as nested JSON.
type Node struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty"`
}

// Parse decodes a raw document body. On malformed input it returns the zero
// node together with the error; callers treat that as a document with no
// media references.
func Parse(raw []byte) (Node, error) {
	var root Node
	if err := json.Unmarshal(raw, &root); err != nil {
		return Node{}, err
	}

	return root, nil
}

// Walk visits n and every descendant depth-first.
func (n Node) Walk(visit func(Node)) {
	visit(n)
	for _, child := range n.Content {
		child.Walk(visit)
	}
}
