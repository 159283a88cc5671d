/*
Copyright © 2025 InternatBlackhole
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/InternatManhole/plugin-log/internal/logging"
	"github.com/InternatManhole/plugin-log/internal/logging/sinks"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *logging.LeveledLogger

var errUnknownSink = errors.New("unknown sink, expected one of console, zerolog, zap")

// rootCmd builds the plugin logger from the persistent flags before any subcommand runs.
var rootCmd = &cobra.Command{
	Use:   "plugin-log",
	Short: "Leveled console logging for game server plugins",
	Long: `plugin-log writes "[<component>] [<severity>] <message>" lines the way a
plugin's logger would, dropping everything below the configured threshold.

Severities in ascending order: Trace, Info, Debug, Warning, Error, Fatal.
A threshold of Disabled suppresses all output.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		threshold := _threshold
		if _verbose {
			threshold = logging.Trace
		}

		sink, err := buildSink(_sink, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		l, err := logging.NewLeveledLoggerWithThreshold(_component, threshold, sink)
		if err != nil {
			return err
		}

		logger = l
		logging.SetLogger(l)
		cmd.SetContext(logging.ContextWithLogger(cmd.Context(), l))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if zapLogger != nil {
			_ = zapLogger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var (
	_component = logging.DefaultComponentName
	_threshold = logging.DefaultThreshold
	_verbose   bool
	_sink      = "console"

	zapLogger *zap.Logger
)

func init() {
	fl := rootCmd.PersistentFlags()
	fl.StringVarP(&_component, "component", "c", _component, "Component name prefixed to every line")
	fl.VarP(&_threshold, "threshold", "t", "Minimum severity to emit (trace, info, debug, warning, error, fatal, disabled)")
	fl.BoolVarP(&_verbose, "verbose", "v", false, "Emit everything, same as --threshold trace")
	fl.StringVar(&_sink, "sink", _sink, "Where lines go: console, zerolog or zap")

	rootCmd.AddCommand(emitCmd)
	rootCmd.AddCommand(levelsCmd)
}

// buildSink resolves a sink name. Console output goes to out unchanged; the zerolog and
// zap sinks wrap each line in their own encoding.
func buildSink(name string, out io.Writer) (logging.Sink, error) {
	switch name {
	case "console":
		return logging.WriterSink(out), nil
	case "zerolog":
		return sinks.Zerolog(out), nil
	case "zap":
		zapLogger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(out),
			zapcore.InfoLevel,
		))
		return sinks.Zap(zapLogger), nil
	}
	return nil, errors.Join(errUnknownSink, fmt.Errorf("%q", name))
}

func GetLogger() *logging.LeveledLogger {
	return logger
}
