package filekind

import "strings"

// Category is the coarse file grouping used by the dashboard filters.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryImages    Category = "images"
	CategoryDocuments Category = "documents"
	CategoryMedia     Category = "media"
)

var documentMarkers = []string{"pdf", "word", "document", "text", "sheet"}

// Matches reports whether a MIME type falls into the category.
// CategoryAll matches everything, including an empty MIME type.
func (cat Category) Matches(mimeType string) bool {
	m := strings.ToLower(mimeType)
	switch cat {
	case CategoryAll:
		return true
	case CategoryImages:
		return strings.HasPrefix(m, "image/")
	case CategoryMedia:
		return strings.HasPrefix(m, "video/") || strings.HasPrefix(m, "audio/")
	case CategoryDocuments:
		for _, marker := range documentMarkers {
			if strings.Contains(m, marker) {
				return true
			}
		}
		return false
	}
	return false
}

// Valid reports whether cat is one of the known selector values.
func (cat Category) Valid() bool {
	switch cat {
	case CategoryAll, CategoryImages, CategoryDocuments, CategoryMedia:
		return true
	}
	return false
}

// icons maps a MIME type (or its major prefix) to the icon identifier the
// frontend renders. Exhaustive table with a fixed fallback, no dynamic
// name resolution.
var icons = map[string]string{
	"application/pdf": "file-pdf",
	"application/msword":            "file-word",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "file-word",
	"application/vnd.ms-excel": "file-sheet",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": "file-sheet",
	"application/zip":  "file-archive",
	"application/gzip": "file-archive",
	"text/plain":       "file-text",
	"text/csv":         "file-sheet",
}

var prefixIcons = map[string]string{
	"image/": "file-image",
	"video/": "file-video",
	"audio/": "file-audio",
	"text/":  "file-text",
}

const iconFallback = "file-generic"

// Icon resolves a MIME type to an icon identifier. Unknown types get the
// generic fallback.
func Icon(mimeType string) string {
	m := strings.ToLower(strings.TrimSpace(mimeType))
	if icon, ok := icons[m]; ok {
		return icon
	}
	for prefix, icon := range prefixIcons {
		if strings.HasPrefix(m, prefix) {
			return icon
		}
	}
	return iconFallback
}
