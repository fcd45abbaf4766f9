package walk

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/nutek/nutekcode/internal/fileinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates files (and their parent dirs) under a new temp dir. A path ending in "/" is created as an empty directory.
func makeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, contents := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(p, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(contents), 0o644))
	}
	return root
}

func rels(t *testing.T, root string, paths []string) []string {
	t.Helper()
	var out []string
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

var fixture = map[string]string{
	".gitignore":       "*.log\nbuild/\n",
	".hidden":          "h",
	".hiddendir/x":     "x",
	".git/HEAD":        "ref: refs/heads/main\n",
	"a.txt":            "a",
	"b/c.txt":          "c",
	"b/d.log":          "d",
	"build/out.bin":    "\x00",
	"keep/build":       "a file named build is not a directory",
	"other/secret.txt": "not covered by sub/.gitignore",
	"sub/.gitignore":   "secret.txt\n",
	"sub/public.txt":   "p",
	"sub/secret.txt":   "s",
}

func TestWalk_SkipsHiddenAndIgnored(t *testing.T) {
	root := makeTree(t, fixture)

	paths, errs := Paths(root, Options{})
	require.Empty(t, errs)
	assert.Equal(t, []string{
		".",
		"a.txt",
		"b",
		"b/c.txt",
		"keep",
		"keep/build",
		"other",
		"other/secret.txt",
		"sub",
		"sub/public.txt",
	}, rels(t, root, paths))
	assert.Equal(t, root, paths[0])
}

func TestWalk_IncludeHidden(t *testing.T) {
	root := makeTree(t, fixture)

	paths, errs := Paths(root, Options{IncludeHidden: true})
	require.Empty(t, errs)
	assert.Equal(t, []string{
		".",
		".gitignore",
		".hidden",
		".hiddendir",
		".hiddendir/x",
		"a.txt",
		"b",
		"b/c.txt",
		"keep",
		"keep/build",
		"other",
		"other/secret.txt",
		"sub",
		"sub/.gitignore",
		"sub/public.txt",
	}, rels(t, root, paths))
}

func TestWalk_NoIgnoreFiles(t *testing.T) {
	root := makeTree(t, map[string]string{
		".gitignore": "*.log\n",
		"a.log":      "a",
	})

	paths, errs := Paths(root, Options{IgnoreFileNames: []string{}})
	require.Empty(t, errs)
	assert.Equal(t, []string{".", "a.log"}, rels(t, root, paths))
}

func TestWalk_Negation(t *testing.T) {
	root := makeTree(t, map[string]string{
		".ignore":  "*.log\n!keep.log\n",
		"a.log":    "a",
		"keep.log": "k",
		"z.txt":    "z",
	})

	paths, errs := Paths(root, Options{})
	require.Empty(t, errs)
	assert.Equal(t, []string{".", "keep.log", "z.txt"}, rels(t, root, paths))
}

func TestWalk_NestedNegationReincludes(t *testing.T) {
	root := makeTree(t, map[string]string{
		".gitignore":     "*.log\nout/\n",
		"a.log":          "a",
		"sub/.gitignore": "!keep.log\n",
		"sub/keep.log":   "k",
		"sub/other.log":  "o",
		"out/.gitignore": "!x.txt\n",
		"out/x.txt":      "x",
	})

	paths, errs := Paths(root, Options{})
	require.Empty(t, errs)
	assert.Equal(t, []string{".", "sub", "sub/keep.log"}, rels(t, root, paths))
}

func TestWalk_NestedIgnoreOverridesAncestorNegation(t *testing.T) {
	root := makeTree(t, map[string]string{
		".ignore":        "*.tmp\n!keep.tmp\n",
		"keep.tmp":       "k",
		"sub/.gitignore": "keep.tmp\n",
		"sub/keep.tmp":   "k",
		"sub/z.txt":      "z",
	})

	paths, errs := Paths(root, Options{})
	require.Empty(t, errs)
	assert.Equal(t, []string{".", "keep.tmp", "sub", "sub/z.txt"}, rels(t, root, paths))
}

func TestWalk_EmptyRootIsWorkingDir(t *testing.T) {
	root := makeTree(t, map[string]string{"f.txt": "f", "d/g.txt": "g"})
	t.Chdir(root)

	paths, errs := Paths("", Options{})
	require.Empty(t, errs)
	assert.Equal(t, []string{".", "d", filepath.Join("d", "g.txt"), "f.txt"}, paths)
}

func TestWalk_FileRoot(t *testing.T) {
	root := makeTree(t, map[string]string{"only.txt": "o"})
	p := filepath.Join(root, "only.txt")

	paths, errs := Paths(p, Options{})
	require.Empty(t, errs)
	assert.Equal(t, []string{p}, paths)
}

func TestWalk_MissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	paths, errs := Paths(missing, Options{})
	assert.Empty(t, paths)
	require.Len(t, errs, 1)

	var ioErr *fileinfo.IoError
	require.ErrorAs(t, errs[0], &ioErr)
	assert.Equal(t, missing, ioErr.Path)
	assert.True(t, errors.Is(errs[0], fs.ErrNotExist))
}

func TestWalk_UnreadableDirDoesNotAbort(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	root := makeTree(t, map[string]string{
		"a/locked/x.txt": "x",
		"b.txt":          "b",
	})
	locked := filepath.Join(root, "a", "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	paths, errs := Paths(root, Options{})
	assert.Equal(t, []string{".", "a", "a/locked", "b.txt"}, rels(t, root, paths))
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], fs.ErrPermission))
}

func TestWalk_StopEarly(t *testing.T) {
	root := makeTree(t, fixture)

	var got []string
	for p, err := range Walk(root, Options{}) {
		require.NoError(t, err)
		got = append(got, p)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []string{".", "a.txt", "b"}, rels(t, root, got))
}
