package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/InternatManhole/plugin-log/internal/logging"
	"github.com/spf13/cobra"
)

var errDisabledLevel = errors.New("--level cannot be disabled, it is only a threshold")

// emitCmd logs its arguments, or each line of stdin, at a single severity.
var emitCmd = &cobra.Command{
	Use:   "emit [flags]... [message...]",
	Short: "Log a message, or every line of stdin, at one severity",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if !_level.Emittable() {
			return errDisabledLevel
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		l := logging.FromContext(cmd.Context())
		if len(args) > 0 {
			return l.Log(_level, strings.Join(args, " "))
		}
		return emitLines(l, _level, cmd.InOrStdin())
	},
}

var _level = logging.Info

func init() {
	emitCmd.Flags().VarP(&_level, "level", "l", "Severity of the emitted message(s)")
}

// emitLines logs every line of r in order and stops at the first failure.
func emitLines(l *logging.LeveledLogger, level logging.Severity, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := l.Log(level, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
