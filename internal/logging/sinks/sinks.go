// Package sinks lets zap or zerolog receive plugin log lines. The line is passed
// through untouched as the message, and write failures are returned to the logger.
package sinks

import (
	"io"
	"sync"
	"time"

	"github.com/InternatManhole/plugin-log/internal/logging"
	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errWriter remembers the outcome of the last Write.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	n, err := e.w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	e.err = err
	return n, err
}

type zerologSink struct {
	mu  sync.Mutex
	out *errWriter
	z   zerolog.Logger
}

// Zerolog writes each line to w as a timestamped, level-less zerolog event.
func Zerolog(w io.Writer) logging.Sink {
	out := &errWriter{w: w}
	return &zerologSink{
		out: out,
		z:   zerolog.New(out).With().Timestamp().Logger(),
	}
}

func (s *zerologSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.err = nil
	s.z.Log().Msg(line)
	return s.out.err
}

// Zap writes each line at zap's info level through the logger's core, so encoder
// and writer errors come back to the caller. A nil logger discards everything.
func Zap(z *zap.Logger) logging.Sink {
	if z == nil {
		z = zap.NewNop()
	}
	core := z.Core()
	return logging.SinkFunc(func(line string) error {
		if !core.Enabled(zapcore.InfoLevel) {
			return nil
		}
		return core.Write(zapcore.Entry{
			Level:   zapcore.InfoLevel,
			Time:    time.Now(),
			Message: line,
		}, nil)
	})
}
