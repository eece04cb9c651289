package logger

import corelogger "github.com/quentinlc/teambalance/core/logger"

// Logger aliases the core contract so adapter code needs one import.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods. It is the default
// wherever a logger is optional.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// New returns a Logger for the given component. The output format is
// detected via the APP_ENV variable.
func New(component string) Logger {
	return NewZerologLogger(component)
}
