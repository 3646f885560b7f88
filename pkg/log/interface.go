package log

import "context"

// Logger defines the leveled, context-aware logging interface used
// across the service. Implementations are safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, format string, args ...any)
}

// Init builds the zap-backed Logger from config. Returns the interface.
func Init(cfg ZapConfig) Logger {
	return newZapLogger(cfg)
}

// NewNop returns a Logger that discards everything. Intended for tests.
func NewNop() Logger {
	return newNopLogger()
}
