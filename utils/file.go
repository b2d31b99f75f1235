package utils

import (
	"path/filepath"
	"strings"
)

// SanitizeFilename reduces a client-supplied filename to its base name and
// replaces characters outside [a-zA-Z0-9._-] with underscores. Returns ""
// when nothing usable remains, so callers can reject the upload.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return ""
	}

	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)

	if strings.Trim(cleaned, "._") == "" {
		return ""
	}
	return cleaned
}

// FileExt returns the lower-cased extension of name, including the dot.
func FileExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
