package fileinfo

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// OctetStream is the media type of a path whose extension is unknown.
const OctetStream = "application/octet-stream"

// sniffLen is how much of a file IsText reads when the extension is not conclusive.
const sniffLen = 8000

// extToMimeType takes precedence over the mime package, whose answers depend on the host's mime.types files. Keys are lowercase, with the leading dot.
var extToMimeType = map[string]string{
	// Plain text and docs.
	".txt":      "text/plain",
	".text":     "text/plain",
	".log":      "text/plain",
	".lock":     "text/plain",
	".conf":     "text/plain",
	".cfg":      "text/plain",
	".ini":      "text/plain",
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".rst":      "text/x-rst",
	".csv":      "text/csv",
	".tsv":      "text/tab-separated-values",
	".html":     "text/html",
	".htm":      "text/html",
	".css":      "text/css",
	".xml":      "text/xml",

	// Config formats.
	".toml": "text/x-toml",
	".yaml": "text/x-yaml",
	".yml":  "text/x-yaml",

	// Source code.
	".go":    "text/x-go",
	".rs":    "text/x-rust",
	".py":    "text/x-python",
	".rb":    "text/x-ruby",
	".js":    "text/javascript",
	".mjs":   "text/javascript",
	".ts":    "text/x-typescript",
	".java":  "text/x-java",
	".c":     "text/x-c",
	".h":     "text/x-c",
	".cpp":   "text/x-c++",
	".cc":    "text/x-c++",
	".hpp":   "text/x-c++",
	".cs":    "text/x-csharp",
	".php":   "text/x-php",
	".swift": "text/x-swift",
	".kt":    "text/x-kotlin",
	".sh":    "text/x-sh",
	".sql":   "text/x-sql",

	// Structured data that is not "text/*".
	".json": "application/json",
	".wasm": "application/wasm",

	// Binary.
	".pdf":   "application/pdf",
	".zip":   "application/zip",
	".gz":    "application/gzip",
	".tar":   "application/x-tar",
	".exe":   "application/x-msdownload",
	".dll":   "application/x-msdownload",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".ico":   "image/x-icon",
	".svg":   "image/svg+xml",
	".mp3":   "audio/mpeg",
	".wav":   "audio/wav",
	".mp4":   "video/mp4",
	".woff":  "font/woff",
	".woff2": "font/woff2",
}

// lookupMimeType returns the media type (without parameters) suggested by path's extension, and whether one is known. The file is not accessed.
func lookupMimeType(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "", false
	}
	if t, ok := extToMimeType[ext]; ok {
		return t, true
	}
	t := mime.TypeByExtension(ext)
	if t == "" {
		return "", false
	}
	if mediaType, _, err := mime.ParseMediaType(t); err == nil {
		t = mediaType
	}
	return t, true
}

// MimeType returns the media type suggested by path's extension, or OctetStream if the extension is unknown. It is best-effort: the file is not read (and need
// not exist).
func MimeType(path string) string {
	if t, ok := lookupMimeType(path); ok {
		return t
	}
	return OctetStream
}

// IsText reports whether path is a text file.
//
// If the extension maps to a known media type, the answer is whether its top-level type is "text" (so ".json", which is "application/json", is not text). Otherwise
// the first 8000 bytes are read, and the file is text iff they contain no NUL byte. Only the second case touches the filesystem; its failures are returned as
// *IoError.
func IsText(path string) (bool, error) {
	if t, ok := lookupMimeType(path); ok {
		return strings.HasPrefix(t, "text/"), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return false, NewIoError("open", path, err)
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, NewIoError("read", path, err)
	}
	return bytes.IndexByte(buf[:n], 0) < 0, nil
}
