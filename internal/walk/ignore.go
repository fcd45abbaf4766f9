package walk

import (
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
)

// ignoreLayer is one ignore file: its patterns are relative to base, the directory that contains it.
//
// matcher holds every pattern and answers "ignored?" with last-match-wins semantics inside the file. reinclude holds only the "!" patterns, with the "!" removed,
// so a layer can tell a path it re-includes apart from a path it says nothing about.
type ignoreLayer struct {
	base      string
	matcher   *gitignore.GitIgnore
	reinclude *gitignore.GitIgnore
}

// compileIgnoreFile parses the ignore file at p, which lives in dir.
func compileIgnoreFile(dir, p string) (ignoreLayer, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return ignoreLayer{}, err
	}
	lines := strings.Split(string(data), "\n")

	var negated []string
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		if rest, ok := strings.CutPrefix(line, "!"); ok && rest != "" {
			negated = append(negated, rest)
		}
	}
	return ignoreLayer{
		base:      dir,
		matcher:   gitignore.CompileIgnoreLines(lines...),
		reinclude: gitignore.CompileIgnoreLines(negated...),
	}, nil
}

// verdict is what a layer says about a path.
type verdict int

const (
	noMatch verdict = iota
	ignoredByLayer
	reincludedByLayer
)

func (layer ignoreLayer) verdict(p string, isDir bool) verdict {
	rel, err := filepath.Rel(layer.base, p)
	if err != nil {
		return noMatch
	}
	rel = filepath.ToSlash(rel)

	// Directory-only patterns ("build/") only match a path with a trailing slash.
	candidates := []string{rel}
	if isDir {
		candidates = append(candidates, rel+"/")
	}
	for _, c := range candidates {
		if layer.matcher.MatchesPath(c) {
			return ignoredByLayer
		}
	}
	for _, c := range candidates {
		if layer.reinclude.MatchesPath(c) {
			return reincludedByLayer
		}
	}
	return noMatch
}

// ignored reports whether p is ignored. layers run from shallowest to deepest; the deepest layer with an opinion decides, so a nested "!pattern" re-includes a
// path that an ancestor ignore file excludes.
func ignored(layers []ignoreLayer, p string, isDir bool) bool {
	for i := len(layers) - 1; i >= 0; i-- {
		switch layers[i].verdict(p, isDir) {
		case ignoredByLayer:
			return true
		case reincludedByLayer:
			return false
		}
	}
	return false
}
