package logging

import (
	"errors"
	"fmt"

	"go.uber.org/atomic"
)

// DefaultComponentName labels loggers constructed with an empty component name.
const DefaultComponentName = "Plugin"

// DefaultThreshold is used by NewLeveledLogger.
const DefaultThreshold = Warning

// LeveledLogger writes "[<component>] [<severity>] <text>" lines to a Sink, dropping
// every message below its threshold. The threshold may be changed from any goroutine.
type LeveledLogger struct {
	componentName string
	threshold     atomic.Int32
	sink          Sink
}

// NewLeveledLogger creates a logger with the Warning threshold.
// A nil sink means ConsoleSink.
func NewLeveledLogger(componentName string, sink Sink) *LeveledLogger {
	l, _ := NewLeveledLoggerWithThreshold(componentName, DefaultThreshold, sink)
	return l
}

// NewLeveledLoggerWithThreshold is like NewLeveledLogger with an explicit threshold.
func NewLeveledLoggerWithThreshold(componentName string, threshold Severity, sink Sink) (*LeveledLogger, error) {
	if !threshold.Valid() {
		return nil, errors.Join(ErrInvalidSeverity, fmt.Errorf("threshold %v", threshold))
	}
	if componentName == "" {
		componentName = DefaultComponentName
	}
	if sink == nil {
		sink = ConsoleSink()
	}
	l := &LeveledLogger{
		componentName: componentName,
		sink:          sink,
	}
	l.threshold.Store(int32(threshold))
	return l, nil
}

func (l *LeveledLogger) ComponentName() string {
	return l.componentName
}

func (l *LeveledLogger) Threshold() Severity {
	return Severity(l.threshold.Load())
}

// SetThreshold applies to every call made after it returns.
func (l *LeveledLogger) SetThreshold(level Severity) error {
	if !level.Valid() {
		return errors.Join(ErrInvalidSeverity, fmt.Errorf("threshold %v", level))
	}
	l.threshold.Store(int32(level))
	return nil
}

// Enabled reports whether a message at severity would be written.
func (l *LeveledLogger) Enabled(severity Severity) bool {
	return severity.Emittable() && severity >= l.Threshold()
}

// Log writes text at severity if it meets the threshold. Disabled is not a message
// severity and is rejected with ErrInvalidSeverity.
func (l *LeveledLogger) Log(severity Severity, text string) error {
	if !severity.Emittable() {
		return errors.Join(ErrInvalidSeverity, fmt.Errorf("cannot log at %v", severity))
	}
	if severity < l.Threshold() {
		return nil
	}
	if err := l.sink.WriteLine(formatLine(l.componentName, severity, text)); err != nil {
		return errors.Join(ErrSinkFailure, err)
	}
	return nil
}

// Logf formats its arguments before calling Log. Formatting is skipped for
// suppressed messages.
func (l *LeveledLogger) Logf(severity Severity, format string, a ...any) error {
	if severity.Emittable() && severity < l.Threshold() {
		return nil
	}
	return l.Log(severity, fmt.Sprintf(format, a...))
}

func (l *LeveledLogger) Trace(text string) error {
	return l.Log(Trace, text)
}

func (l *LeveledLogger) Info(text string) error {
	return l.Log(Info, text)
}

func (l *LeveledLogger) Debug(text string) error {
	return l.Log(Debug, text)
}

func (l *LeveledLogger) Warning(text string) error {
	return l.Log(Warning, text)
}

func (l *LeveledLogger) Error(text string) error {
	return l.Log(Error, text)
}

// Fatal logs at the highest severity. It does not stop the process.
func (l *LeveledLogger) Fatal(text string) error {
	return l.Log(Fatal, text)
}

func formatLine(componentName string, severity Severity, text string) string {
	return "[" + componentName + "] [" + severity.String() + "] " + text
}
