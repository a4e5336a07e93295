package utils

import "strings"

// PublicURL builds the public-read address for a stored media key. The
// extension is cosmetic; the object itself is stored under the bare key.
func PublicURL(publicAddress, key, mimeType string) string {
	return strings.TrimSuffix(publicAddress, "/") + "/" + key + GetExtensionFromMimeType(mimeType)
}

// KeyFromURL reverses PublicURL: it reports the media key a public address
// points at, or false when the URL is not served by this host.
func KeyFromURL(publicAddress, url string) (string, bool) {
	prefix := strings.TrimSuffix(publicAddress, "/") + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(url, prefix)
	if i := strings.LastIndex(key, "."); i > 0 {
		key = key[:i]
	}
	if key == "" || strings.Contains(key, "/") {
		return "", false
	}

	return key, true
}
