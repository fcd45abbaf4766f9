package fileinfo

import (
	"fmt"
	"os"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// Size returns the size of the file at path, in bytes. A directory is an error.
func Size(path string) (int64, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return 0, NewIoError("stat", path, err)
	}
	if fi.IsDir() {
		return 0, NewIoError("stat", path, ErrIsDirectory)
	}
	return fi.Size(), nil
}

// HumanSize returns the size of the file at path formatted by FormatSize.
func HumanSize(path string) (string, error) {
	n, err := Size(path)
	if err != nil {
		return "", err
	}
	return FormatSize(n), nil
}

// FormatSize formats n bytes with 1024-based units and one decimal digit: 4 -> "4.0B", 1536 -> "1.5KB". Negative sizes are formatted as 0.
func FormatSize(n int64) string {
	size := float64(max(n, 0))
	i := 0
	for size >= 1024 && i < len(sizeUnits)-1 {
		size /= 1024
		i++
	}
	return fmt.Sprintf("%.1f%s", size, sizeUnits[i])
}
