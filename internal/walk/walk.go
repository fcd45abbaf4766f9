// Package walk lists a directory tree recursively, honoring ignore files (.gitignore-style) along the way.
//
// Failures are reported per entry: an unreadable directory or ignore file yields an error in place of a path, and the walk continues with the rest of the tree.
package walk

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/nutek/nutekcode/internal/fileinfo"
)

// DefaultIgnoreFileNames are the ignore files consulted in every directory when Options.IgnoreFileNames is nil.
var DefaultIgnoreFileNames = []string{".gitignore", ".ignore"}

// Options control Walk. The zero value skips hidden entries and uses DefaultIgnoreFileNames.
type Options struct {
	// IncludeHidden includes entries whose name starts with ".". The ".git" directory is never descended into.
	IncludeHidden bool

	// IgnoreFileNames are the file names read in each directory for ignore patterns. A non-nil empty slice disables ignore files.
	IgnoreFileNames []string
}

// Walk yields root and every path below it that is not hidden or ignored, depth first, in lexical order within each directory. An empty root means the current
// working directory (".").
//
// Each step yields either a path and a nil error, or "" and an *fileinfo.IoError describing an entry that could not be read. Errors never stop the walk; the consumer
// may stop it by breaking out of the loop.
//
// Ignore files apply to the directory that contains them and everything below it. As in git, the deepest ignore file that matches a path decides, so a nested "!pattern"
// re-includes what an ancestor excludes. A skipped directory is not descended into, so nothing below it can be re-included. Symlinks are yielded but not followed.
func Walk(root string, opts Options) iter.Seq2[string, error] {
	if root == "" {
		root = "."
	}
	names := opts.IgnoreFileNames
	if names == nil {
		names = DefaultIgnoreFileNames
	}
	return func(yield func(string, error) bool) {
		w := &walker{yield: yield, includeHidden: opts.IncludeHidden, ignoreFileNames: names}
		w.walkRoot(root)
	}
}

// Paths collects Walk into the yielded paths and the yielded errors.
func Paths(root string, opts Options) ([]string, []error) {
	var paths []string
	var errs []error
	for p, err := range Walk(root, opts) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, p)
	}
	return paths, errs
}

type walker struct {
	yield           func(string, error) bool
	includeHidden   bool
	ignoreFileNames []string
	stopped         bool
}

// emit forwards to yield and remembers whether the consumer asked to stop.
func (w *walker) emit(p string, err error) bool {
	if w.stopped {
		return false
	}
	if !w.yield(p, err) {
		w.stopped = true
	}
	return !w.stopped
}

func (w *walker) walkRoot(root string) {
	fi, err := os.Lstat(root)
	if err != nil {
		w.emit("", fileinfo.NewIoError("stat", root, err))
		return
	}
	if !w.emit(root, nil) {
		return
	}
	if fi.IsDir() {
		w.walkDir(root, nil)
	}
}

// walkDir yields the entries of dir. rules are the ignore layers inherited from dir's ancestors.
func (w *walker) walkDir(dir string, rules []ignoreLayer) bool {
	// os.ReadDir returns what it could read along with the error; use both.
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !w.emit("", fileinfo.NewIoError("readdir", dir, err)) {
			return false
		}
	}

	rules = w.loadIgnoreFiles(dir, entries, rules)
	if w.stopped {
		return false
	}

	for _, entry := range entries {
		name := entry.Name()
		isDir := entry.IsDir()
		if isDir && name == ".git" {
			continue
		}
		if !w.includeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		p := filepath.Join(dir, name)
		if ignored(rules, p, isDir) {
			continue
		}
		if !w.emit(p, nil) {
			return false
		}
		if isDir && !w.walkDir(p, rules) {
			return false
		}
	}
	return true
}

// loadIgnoreFiles returns rules extended with the ignore files among entries, in ignoreFileNames order. Unreadable ignore files are reported and skipped.
func (w *walker) loadIgnoreFiles(dir string, entries []fs.DirEntry, rules []ignoreLayer) []ignoreLayer {
	present := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			present[entry.Name()] = true
		}
	}

	for _, name := range w.ignoreFileNames {
		if !present[name] {
			continue
		}
		p := filepath.Join(dir, name)
		layer, err := compileIgnoreFile(dir, p)
		if err != nil {
			if !w.emit("", fileinfo.NewIoError("read", p, err)) {
				return rules
			}
			continue
		}
		// Cap the slice so sibling directories never share an appended backing array.
		rules = append(rules[:len(rules):len(rules)], layer)
	}
	return rules
}
