package logging

import (
	"io"
	"os"
	"sync"
)

// Sink consumes formatted log lines. A line carries no trailing newline.
type Sink interface {
	WriteLine(line string) error
}

// SinkFunc adapts a plain function to a Sink.
type SinkFunc func(line string) error

func (f SinkFunc) WriteLine(line string) error {
	return f(line)
}

type writerSink struct {
	mu sync.Mutex
	w  io.Writer
}

// WriterSink appends each line plus a newline to w with a single Write call.
// Lines written from different goroutines never interleave.
func WriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) WriteLine(line string) error {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := s.w.Write(buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return io.ErrShortWrite
	}
	return nil
}

// ConsoleSink writes to standard output.
func ConsoleSink() Sink {
	return WriterSink(os.Stdout)
}
