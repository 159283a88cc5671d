package sinks

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/InternatManhole/plugin-log/internal/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var errBrokenPipe = errors.New("broken pipe")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

func TestZerolog(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.NewLeveledLoggerWithThreshold("Shop", logging.Info, Zerolog(&buf))
	if err != nil {
		t.Fatalf("NewLeveledLoggerWithThreshold() error = %v", err)
	}

	if err := l.Warning("low stock"); err != nil {
		t.Fatalf("Warning() error = %v", err)
	}
	if err := l.Trace("hidden"); err != nil {
		t.Fatalf("Trace() error = %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output %q is not a single JSON event: %v", buf.String(), err)
	}
	if got := entry["message"]; got != "[Shop] [Warning] low stock" {
		t.Errorf("message = %v, want %q", got, "[Shop] [Warning] low stock")
	}
	if _, ok := entry["time"]; !ok {
		t.Errorf("event %v has no timestamp", entry)
	}
}

func TestZerolog_writeFailure(t *testing.T) {
	tests := []struct {
		name string
		sink logging.Sink
		want error
	}{
		{name: "writer error", sink: Zerolog(failingWriter{}), want: errBrokenPipe},
		{name: "short write", sink: Zerolog(shortWriter{}), want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := logging.NewLeveledLogger("Shop", tt.sink)
			err := l.Error("boom")
			if !errors.Is(err, logging.ErrSinkFailure) {
				t.Fatalf("Error() error = %v, want %v", err, logging.ErrSinkFailure)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Error() error = %v, want it to wrap %v", err, tt.want)
			}
		})
	}
}

func TestZerolog_recoversAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	fail := true
	sink := Zerolog(writerFunc(func(p []byte) (int, error) {
		if fail {
			return 0, errBrokenPipe
		}
		return buf.Write(p)
	}))
	l := logging.NewLeveledLogger("Shop", sink)

	if err := l.Error("first"); !errors.Is(err, errBrokenPipe) {
		t.Fatalf("Error() error = %v, want %v", err, errBrokenPipe)
	}
	fail = false
	if err := l.Error("second"); err != nil {
		t.Errorf("Error() after recovery error = %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("[Shop] [Error] second")) {
		t.Errorf("output %q does not contain the second line", buf.String())
	}
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) {
	return f(p)
}

func TestZap(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	l := logging.NewLeveledLogger("Shop", Zap(zap.New(core)))

	_ = l.Info("below threshold")
	_ = l.Error("out of stock")
	_ = l.Fatal("store closed")

	logs := recorded.All()
	if len(logs) != 2 {
		t.Fatalf("Expected 2 logs, got %d", len(logs))
	}
	want := []string{"[Shop] [Error] out of stock", "[Shop] [Fatal] store closed"}
	for i, entry := range logs {
		if entry.Message != want[i] {
			t.Errorf("Log %d: expected %q, got %q", i, want[i], entry.Message)
		}
		if entry.Level != zapcore.InfoLevel {
			t.Errorf("Log %d: expected level %v, got %v", i, zapcore.InfoLevel, entry.Level)
		}
	}
}

func TestZap_writeFailure(t *testing.T) {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(failingWriter{}),
		zapcore.InfoLevel,
	)
	l := logging.NewLeveledLogger("Shop", Zap(zap.New(core)))

	err := l.Error("boom")
	if !errors.Is(err, logging.ErrSinkFailure) || !errors.Is(err, errBrokenPipe) {
		t.Errorf("Error() error = %v, want %v wrapping %v", err, logging.ErrSinkFailure, errBrokenPipe)
	}
}

func TestZap_coreLevelAboveInfo(t *testing.T) {
	core, recorded := observer.New(zapcore.WarnLevel)
	l := logging.NewLeveledLogger("Shop", Zap(zap.New(core)))

	if err := l.Fatal("dropped by zap"); err != nil {
		t.Errorf("Fatal() error = %v", err)
	}
	if recorded.Len() != 0 {
		t.Errorf("Expected 0 logs, got %d", recorded.Len())
	}
}

func TestZap_nilLogger(t *testing.T) {
	if err := Zap(nil).WriteLine("[Shop] [Info] ignored"); err != nil {
		t.Errorf("WriteLine() error = %v", err)
	}
}
