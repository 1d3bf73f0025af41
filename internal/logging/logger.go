// Package logging provides a structured logging abstraction so the rest of
// the codebase stays decoupled from the underlying logging framework.
package logging

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// Logger is the structured logging interface used throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// Fatal logs at fatal level and exits the program.
	Fatal(msg string, fields ...Field)
	Fatalf(format string, args ...interface{})

	// WithError returns a logger with an error field attached.
	WithError(err error) Logger
	// WithField returns a logger with a single field attached.
	WithField(key string, value interface{}) Logger
	// WithFields returns a logger with multiple fields attached.
	WithFields(fields ...Field) Logger
}
