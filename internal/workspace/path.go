package workspace

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.lsp.dev/uri"
)

// FolderPath converts a folder locator into a native filesystem path.
// file:// URIs are decoded; other schemes contribute their path component;
// plain paths are cleaned and returned in native form.
func FolderPath(u uri.URI) string {
	s := string(u)
	if s == "" {
		return ""
	}
	if !strings.Contains(s, ":") || filepath.VolumeName(s) != "" {
		return filepath.Clean(filepath.FromSlash(s))
	}
	parsed, err := url.Parse(s)
	if err != nil || parsed.Scheme == "" {
		return filepath.Clean(filepath.FromSlash(s))
	}
	if parsed.Scheme == uri.FileScheme && strings.HasPrefix(parsed.Path, "/") {
		return u.Filename()
	}
	return filepath.FromSlash(parsed.Path)
}

// ToURI turns a path or URI string into a URI. Absolute paths become file://
// URIs; anything that already carries a scheme is kept as is.
func ToURI(s string) uri.URI {
	if s == "" {
		return ""
	}
	if filepath.IsAbs(s) || filepath.VolumeName(s) != "" {
		return uri.File(s)
	}
	if parsed, err := url.Parse(s); err == nil && parsed.Scheme != "" {
		return uri.URI(s)
	}
	if abs, err := filepath.Abs(s); err == nil {
		return uri.File(abs)
	}
	return uri.URI(s)
}

// joinRoot appends rest to root and cleans "." and ".." segments. Glob
// syntax and a trailing separator are kept.
func joinRoot(root, rest string) string {
	sep := string(filepath.Separator)
	rest = strings.TrimLeft(filepath.FromSlash(rest), sep)
	if rest == "" {
		return root
	}
	joined := filepath.Clean(root + sep + rest)
	if strings.HasSuffix(rest, sep) && !strings.HasSuffix(joined, sep) {
		joined += sep
	}
	return joined
}

// Within reports whether path equals dir or lies below it.
func Within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)))
}

// expandHome replaces a leading "~" path element with home.
func expandHome(path, home string) (string, bool) {
	if home == "" || !strings.HasPrefix(path, "~") {
		return path, false
	}
	rest := path[1:]
	if rest != "" && rest[0] != '/' && rest[0] != filepath.Separator {
		return path, false
	}
	return filepath.Join(home, filepath.FromSlash(rest)), true
}
