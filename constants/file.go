package constants

import "strings"

// File formats recognized by the text-recognition pipeline.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// FileTypes holds the allowed values for the format field in extract jobs.
var FileTypes = []string{PDF, IMAGE}

// AllowedExtensions holds the file extensions accepted at package intake.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tiff": {},
}

// MinTextContent is the trimmed-character threshold below which a
// document is treated as image-only (no usable embedded text layer).
const MinTextContent = 50

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a (possibly dotted) extension to PDF/IMAGE,
// or "" when the extension is not supported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png", "tiff":
		return IMAGE
	}
	return ""
}

// MimeForExt maps a (possibly dotted) image extension to its MIME
// type, defaulting to PNG for anything unrecognized.
func MimeForExt(ext string) string {
	switch NormalizeExt(ext) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "tiff":
		return "image/tiff"
	}
	return "image/png"
}

// AllowedExt reports whether the (normalized) extension is accepted.
func AllowedExt(ext string) bool {
	_, ok := AllowedExtensions[NormalizeExt(ext)]
	return ok
}
