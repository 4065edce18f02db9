// Package debug provides optional file-based debug logging.
//
// When the AUTOGRID_DEBUG environment variable (or the CLI --debug-log flag)
// names a file path, debug records are appended to that file through a
// slog.Logger. Otherwise, logging is a no-op.
package debug
