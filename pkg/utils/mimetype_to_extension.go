package utils

import "strings"

// mimeTypeToExtension maps the MIME types accepted for blog media to their
// typical file extensions.
var mimeTypeToExtension = map[string]string{
	"application/pdf": ".pdf",
	"audio/aac":       ".aac",
	"audio/mpeg":      ".mp3",
	"audio/ogg":       ".ogg",
	"audio/wav":       ".wav",
	"image/avif":      ".avif",
	"image/bmp":       ".bmp",
	"image/gif":       ".gif",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/svg+xml":   ".svg",
	"image/tiff":      ".tif",
	"image/webp":      ".webp",
	"video/mp4":       ".mp4",
	"video/mpeg":      ".mpeg",
	"video/ogg":       ".ogv",
	"video/webm":      ".webm",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "image/svg+xml; charset=utf-8")
	cleanedMimeType := strings.Split(mimeType, ";")[0]
	if ext, ok := mimeTypeToExtension[cleanedMimeType]; ok {
		return ext
	}

	return ".bin"
}
