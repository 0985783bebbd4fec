package sarif

import (
	"path/filepath"
	"strings"
)

// relativeArtifactURI expresses a file path relative to the base folder as
// a forward-slash URI. Separators are normalized first so the emitted URI
// is stable regardless of the host's path conventions. Paths outside the
// base folder are kept whole rather than rewritten with ".." segments.
func relativeArtifactURI(baseFolder, path string) string {
	uri := toSlash(path)
	if baseFolder == "" {
		return uri
	}

	base := strings.TrimRight(toSlash(baseFolder), "/")
	if base == "" {
		return strings.TrimPrefix(uri, "/")
	}
	if strings.HasPrefix(uri, base+"/") {
		return strings.TrimPrefix(uri, base+"/")
	}

	if rel, err := filepath.Rel(filepath.FromSlash(base), filepath.FromSlash(uri)); err == nil {
		rel = filepath.ToSlash(rel)
		if rel != "." && !strings.HasPrefix(rel, "../") {
			return rel
		}
	}
	return uri
}

// toSlash normalizes both separator styles, unlike filepath.ToSlash which
// only understands the host's own separator.
func toSlash(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
