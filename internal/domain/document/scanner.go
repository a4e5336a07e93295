package document

import "inkwell/pkg/utils"

// embedNodeTypes marks the node kinds that can embed a media object.
var embedNodeTypes = map[string]struct{}{
	"image":  {},
	"video":  {},
	"figure": {},
}

// Scanner extracts the set of media keys embedded in a document tree by
// reversing the public-URL mapping used at upload time.
type Scanner struct {
	publicAddress string
}

func NewScanner(publicAddress string) *Scanner {
	return &Scanner{publicAddress: publicAddress}
}

// MediaKeys walks the full tree and returns the referenced keys in first-seen
// order, deduplicated. Malformed nodes (wrong attr type, missing src, foreign
// URL) are skipped, never an error.
func (s *Scanner) MediaKeys(root Node) []string {
	seen := make(map[string]struct{})
	var keys []string

	root.Walk(func(n Node) {
		if _, ok := embedNodeTypes[n.Type]; !ok {
			return
		}

		src, ok := n.Attrs["src"].(string)
		if !ok || src == "" {
			return
		}

		key, ok := utils.KeyFromURL(s.publicAddress, src)
		if !ok {
			return
		}

		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	})

	return keys
}
