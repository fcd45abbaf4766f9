package fileinfo

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// SHA256 returns the lowercase hex SHA-256 digest of the contents of the file at path. The file is streamed, not loaded into memory.
//
// A missing file, a directory, or a read failure is returned as an *IoError with Op "hash".
func SHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", NewIoError("hash", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", NewIoError("hash", path, err)
	}
	if fi.IsDir() {
		return "", NewIoError("hash", path, ErrIsDirectory)
	}

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", NewIoError("hash", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
