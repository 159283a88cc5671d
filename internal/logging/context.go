package logging

import "context"

type ctxKey int

const (
	logKey ctxKey = iota
)

// ContextWithLogger puts a logger into ctx.
func ContextWithLogger(ctx context.Context, l *LeveledLogger) context.Context {
	return context.WithValue(ctx, logKey, l)
}

// FromContext extracts the logger from ctx. Without one it returns a logger that
// writes nothing.
func FromContext(ctx context.Context) *LeveledLogger {
	if l, ok := ctx.Value(logKey).(*LeveledLogger); ok && l != nil {
		return l
	}
	l, _ := NewLeveledLoggerWithThreshold(DefaultComponentName, Disabled, SinkFunc(func(string) error { return nil }))
	return l
}
