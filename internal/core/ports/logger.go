package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a debug message with optional key-value attributes.
	Debug(msg string, args ...any)
	// Info logs an informational message with optional key-value attributes.
	Info(msg string, args ...any)
	// Warn logs a warning message with optional key-value attributes.
	Warn(msg string, args ...any)
	// Error logs an error, rendering zerr chains hierarchically.
	Error(err error)
	// SetOutput updates the logger's output destination.
	SetOutput(w io.Writer)
	// SetJSON switches between JSON and pretty logging.
	SetJSON(enable bool)
	// SetDebug lowers the log level to include debug messages.
	SetDebug(enable bool)
}
