package logger

// Logger is the logging contract used throughout the engine. Adapters
// live under infra/logger; core packages depend on this interface only.
type Logger interface {
	Debugf(format string, args ...any)
	// Debugw logs a debug message with key/value fields.
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
