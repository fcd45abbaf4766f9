package cascade

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a config file path as given by a caller or found on disk: a leading "~" (alone, or followed by a separator) becomes the user's home
// directory, so "~/.nutekcode/config.json" names the per-user config file, and a relative result is made absolute against the working directory. "" stays "".
// If the home directory is unknown, "~" is left in place.
//
// The result is what a json_file Providence records as its SourceIdentifier.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}

	expanded := path
	if home, _ := os.UserHomeDir(); home != "" {
		if expanded == "~" {
			expanded = home
		} else if rest, ok := cutHomePrefix(expanded); ok {
			expanded = filepath.Join(home, rest)
		}
	}

	if abs, err := filepath.Abs(expanded); err == nil {
		expanded = abs
	}
	return expanded
}

// cutHomePrefix strips "~/" or `~\` from path.
func cutHomePrefix(path string) (string, bool) {
	for _, prefix := range []string{"~/", `~\`} {
		if rest, ok := strings.CutPrefix(path, prefix); ok {
			return rest, true
		}
	}
	return "", false
}
