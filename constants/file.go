package constants

import "strings"

// PhotoFormats holds the allowed file formats for the format field in ScanJob.
var PhotoFormats = []string{"JPEG", "PNG"}

// AllowedExtensions holds the default allowed file extensions for label photo ingestion.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a PhotoFormats value.
// Unknown extensions map to "".
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "jpg", "jpeg":
		return "JPEG"
	case "png":
		return "PNG"
	default:
		return ""
	}
}
