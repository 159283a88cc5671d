package logging

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

var (
	ErrInvalidSeverity = errors.New("invalid severity")
	ErrUnknownSeverity = errors.New("unknown severity name")
	ErrSinkFailure     = errors.New("writing to log sink failed")
)

// Severity is the urgency of a log line. Disabled is only meaningful as a threshold.
type Severity int

const (
	Trace Severity = iota
	Info
	Debug
	Warning
	Error
	Fatal
	Disabled
)

var severityNames = [...]string{
	Trace:    "Trace",
	Info:     "Info",
	Debug:    "Debug",
	Warning:  "Warning",
	Error:    "Error",
	Fatal:    "Fatal",
	Disabled: "Disabled",
}

// Severities lists every severity a message can be logged at, in ascending order.
func Severities() []Severity {
	return []Severity{Trace, Info, Debug, Warning, Error, Fatal}
}

func (s Severity) String() string {
	if s.Valid() {
		return severityNames[s]
	}
	return "Severity(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s can be used as a threshold.
func (s Severity) Valid() bool {
	return s >= Trace && s <= Disabled
}

// Emittable reports whether a message can be logged at s.
func (s Severity) Emittable() bool {
	return s >= Trace && s < Disabled
}

// ParseSeverity matches a severity by name, ignoring case.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return Trace, nil
	case "info":
		return Info, nil
	case "debug":
		return Debug, nil
	case "warning", "warn":
		return Warning, nil
	case "error", "err":
		return Error, nil
	case "fatal":
		return Fatal, nil
	case "disabled", "off", "none":
		return Disabled, nil
	}
	return Disabled, errors.Join(ErrUnknownSeverity, errors.New(strconv.Quote(name)))
}

var _ pflag.Value = (*Severity)(nil)

// Set implements pflag.Value.
func (s *Severity) Set(name string) error {
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Severity) Type() string {
	return "severity"
}
