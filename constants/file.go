package constants

import "strings"

// SupportedExtensions holds the file extensions (lowercased, sans '.') that
// the extractor keeps when walking an unpacked archive. Beyond the common
// office formats this includes the GAEB tender-exchange family (DA81/DA86
// exchange phases in XML, ASCII and binary encodings).
var SupportedExtensions = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
	"xls":  {},
	"xlsx": {},
	"csv":  {},
	// GAEB DA XML
	"x81": {}, "x82": {}, "x83": {}, "x84": {}, "x85": {}, "x86": {},
	// GAEB 90
	"d81": {}, "d82": {}, "d83": {}, "d84": {}, "d85": {}, "d86": {},
	// GAEB 2000
	"p81": {}, "p82": {}, "p83": {}, "p84": {}, "p85": {}, "p86": {},
}

// ArchiveExtensions holds the extensions treated as nested archives during
// the walk.
var ArchiveExtensions = map[string]struct{}{
	"zip": {},
}

// SourceTagUpload marks file rows discovered through an archive upload.
const SourceTagUpload = "upload"

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsSupportedExt checks if a file extension is in the supported set.
func IsSupportedExt(ext string) bool {
	_, ok := SupportedExtensions[NormalizeExt(ext)]
	return ok
}

// IsArchiveExt checks if a file extension denotes a nested archive.
func IsArchiveExt(ext string) bool {
	_, ok := ArchiveExtensions[NormalizeExt(ext)]
	return ok
}
