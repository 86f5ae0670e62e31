// Package debug provides optional file-based debug logging.
//
// When the FLEX_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
// The core never writes to stdout or stderr; the host owns those.
package debug

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	mu   sync.Mutex
	file *os.File
	once sync.Once
)

func open() {
	path := os.Getenv("FLEX_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		// Debug logging is best-effort; a bad path disables it.
		return
	}
	file = f
}

// Log appends a formatted message to the debug file, if configured.
func Log(format string, args ...any) {
	once.Do(open)
	if file == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(file, "%s %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}
