package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	log *slog.Logger

	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.Default()}

	root := &cobra.Command{
		Use:   "graphinv",
		Short: "Coloring and symmetry invariants of small simple graphs",
		Long: `graphinv reads graphs as compact codes (a length byte n+63 followed by the
row-major upper triangle, six bits per character) and reports greedy
chromatic number and index, the distinguishing number and the order of the
automorphism group.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(strings.ToUpper(a.logLevel))); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")

	root.AddCommand(
		newDecodeCmd(a),
		newEncodeCmd(a),
		newChromaticCmd(a),
		newIndexCmd(a),
		newDistinguishCmd(a),
		newInfoCmd(a),
		newAutgroupCmd(a),
		newGenCmd(a),
	)

	return root
}

// defaultMaxColors bounds distinguishing searches unless --max-colors says
// otherwise.
const defaultMaxColors = 5

func addMaxColors(cmd *cobra.Command, v *int) {
	cmd.Flags().IntVar(v, "max-colors", defaultMaxColors, "Upper bound on colors tried")
}

func addTimeout(cmd *cobra.Command, v *time.Duration) {
	cmd.Flags().DurationVar(v, "timeout", 0, "Abort after this long (0 = no limit)")
}
