package cmd

import (
	"fmt"
	"io"

	"github.com/InternatManhole/plugin-log/internal/logging"
	"github.com/spf13/cobra"
)

// levelsCmd shows which severities pass the current threshold.
var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List severities and whether each passes the threshold",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeLevels(cmd.OutOrStdout(), logging.GetLogger())
	},
}

func writeLevels(w io.Writer, l *logging.LeveledLogger) error {
	for _, s := range logging.Severities() {
		state := "suppressed"
		if l.Enabled(s) {
			state = "emitted"
		}
		if _, err := fmt.Fprintf(w, "%d\t%-8s\t%s\n", int(s), s, state); err != nil {
			return err
		}
	}
	return nil
}
