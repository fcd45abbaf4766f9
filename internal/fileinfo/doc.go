// Package fileinfo answers simple questions about a file: is it text, what media type does its name suggest, how big is it, and what is its SHA-256 digest.
//
// Every failure that involves the filesystem is returned as an *IoError, which carries the operation, the path, and the underlying OS error. Use errors.Is with
// fs.ErrNotExist, fs.ErrPermission, or ErrIsDirectory to branch on the cause.
package fileinfo
