// Package debuglog appends timestamped diagnostics to a file when enabled
// through RJUMP_DEBUG=1 or the debug_log config key.
package debuglog

import (
	"fmt"
	"os"
	"sync"
	"time"
)

const defaultFile = "rjump-debug.log"

var (
	mu      sync.Mutex
	enabled = os.Getenv("RJUMP_DEBUG") == "1"
	path    = envOr("RJUMP_DEBUG_FILE", defaultFile)
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Enable turns logging on and directs it to file. An empty file keeps the
// current destination.
func Enable(file string) {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
	if file != "" {
		path = file
	}
}

// Disable turns logging off.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// Enabled reports whether Debugf writes anything.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Debugf writes one line. Failures to open the file are ignored.
func Debugf(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !enabled {
		return
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	timestamp := time.Now().Format(time.RFC3339Nano)
	_, _ = fmt.Fprintf(f, "%s "+format+"\n", append([]interface{}{timestamp}, args...)...)
	_ = f.Close()
}
