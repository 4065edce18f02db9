package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable holding the default log path.
const EnvVar = "AUTOGRID_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
)

// Init opens the debug log at path for appending, creating its directory if
// needed. If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Logger returns a debug-level logger that appends to the log file opened by
// Init. Records written while no file is open are dropped.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(fileWriter{}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// fileWriter writes to the current log file under mu.
type fileWriter struct{}

func (fileWriter) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return len(p), nil
	}
	n, err := logFile.Write(p)
	if err != nil {
		return n, err
	}
	return n, logFile.Sync()
}
