package simplelogger

import (
	"bytes"
	"fmt"
	"os"
	"sync"
)

// EnvLogFile names the environment variable that holds the log file path.
const EnvLogFile = "NUTEKCODE_LOG_FILE"

var mu sync.Mutex

// Enabled reports whether Log would attempt to write.
func Enabled() bool {
	return os.Getenv(EnvLogFile) != ""
}

// Log is a minimal printf-style logger. It appends one line (a newline is added if missing) to the file named by NUTEKCODE_LOG_FILE.
//
// If NUTEKCODE_LOG_FILE is unset/empty or the path can't be opened as a file, Log is a no-op.
func Log(format string, args ...any) {
	path := os.Getenv(EnvLogFile)
	if path == "" {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	var b bytes.Buffer
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}

// Logger prefixes every line with "[Prefix] ". The zero value logs without a prefix.
type Logger struct {
	Prefix string
}

// Logf logs through Log.
func (l Logger) Logf(format string, args ...any) {
	if l.Prefix == "" {
		Log(format, args...)
		return
	}
	Log("[%s] "+format, append([]any{l.Prefix}, args...)...)
}
