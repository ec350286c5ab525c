package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/graphinv/autgroup"
	"github.com/katalvlaran/graphinv/distinguish"
	"github.com/katalvlaran/graphinv/graph"
	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	var standard bool
	cmd := &cobra.Command{
		Use:   "decode <code>",
		Short: "Print the adjacency matrix of a compact code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0], standard)
			if err != nil {
				return err
			}
			a.log.Debug("decoded", "vertices", g.VertexCount(), "edges", g.EdgeCount())
			fmt.Fprint(cmd.OutOrStdout(), g.String())

			return nil
		},
	}
	cmd.Flags().BoolVar(&standard, "standard", false, "Input is nauty graph6 rather than the compact code")

	return cmd
}

func newEncodeCmd(a *app) *cobra.Command {
	var standard bool
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Read a 0/1 matrix from stdin and print its code",
		Long: `encode reads one matrix row per line from stdin. Entries may be separated
by blanks or written contiguously ("0 1 0" or "010"). Blank lines are
skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := parseMatrix(cmd.InOrStdin())
			if err != nil {
				return err
			}
			g, err := graph.New(rows)
			if err != nil {
				return err
			}
			var code string
			if standard {
				code, err = g.StandardG6()
			} else {
				code, err = g.G6()
			}
			if err != nil {
				return err
			}
			a.log.Debug("encoded", "vertices", g.VertexCount(), "standard", standard)
			fmt.Fprintln(cmd.OutOrStdout(), code)

			return nil
		},
	}
	cmd.Flags().BoolVar(&standard, "standard", false, "Emit nauty graph6 rather than the compact code")

	return cmd
}

func newChromaticCmd(_ *app) *cobra.Command {
	var show bool
	cmd := &cobra.Command{
		Use:   "chromatic <code>",
		Short: "Greedy chromatic number (index-order vertex coloring)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0], false)
			if err != nil {
				return err
			}
			r := g.VertexColoring()
			fmt.Fprintln(cmd.OutOrStdout(), r.Count)
			if show {
				fmt.Fprintln(cmd.OutOrStdout(), joinInts(r.Colors))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "coloring", false, "Also print the color of every vertex")

	return cmd
}

func newIndexCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "index <code>",
		Short: "Greedy chromatic index (edge coloring)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0], false)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.ChromaticIndex())

			return nil
		},
	}
}

func newDistinguishCmd(a *app) *cobra.Command {
	var (
		maxColors int
		lite      bool
		timeout   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "distinguish <code>",
		Short: "Distinguishing number, exact or by density estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0], false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if lite {
				fmt.Fprintln(out, g.DistinguishingNumberLite(maxColors))
				return nil
			}
			res, err := g.DistinguishingNumber(maxColors, distinguish.Options{TimeLimit: timeout, Log: a.log})
			if err != nil {
				return err
			}
			if !res.Found {
				fmt.Fprintf(out, "not found within %d colors\n", res.Number)
				return nil
			}
			fmt.Fprintln(out, res.Number)
			fmt.Fprintln(out, joinInts(res.Coloring))

			return nil
		},
	}
	addMaxColors(cmd, &maxColors)
	addTimeout(cmd, &timeout)
	cmd.Flags().BoolVar(&lite, "lite", false, "Use the density estimate")

	return cmd
}

func newInfoCmd(_ *app) *cobra.Command {
	var maxColors int
	cmd := &cobra.Command{
		Use:   "info <code>",
		Short: "One-line summary: code and estimated distinguishing number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0], false)
			if err != nil {
				return err
			}
			s, err := g.Info(maxColors)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)

			return nil
		},
	}
	addMaxColors(cmd, &maxColors)

	return cmd
}

func newAutgroupCmd(a *app) *cobra.Command {
	var (
		tool    string
		colors  string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "autgroup <code>",
		Short: "Order of the (color-preserving) automorphism group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := load(args[0], false)
			if err != nil {
				return err
			}
			cs, err := parseColors(colors)
			if err != nil {
				return err
			}
			oracle, err := pickOracle(tool, a)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			order, err := g.GroupOrder(ctx, oracle, cs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), order)

			return nil
		},
	}
	cmd.Flags().StringVar(&tool, "tool", "brute", "Oracle: brute|pickg|dreadnaut")
	cmd.Flags().StringVar(&colors, "colors", "", "Comma-separated vertex colors")
	addTimeout(cmd, &timeout)

	return cmd
}

func pickOracle(tool string, a *app) (autgroup.Oracle, error) {
	switch tool {
	case "brute":
		return autgroup.BruteForce{}, nil
	case "pickg":
		p := autgroup.Pickg()
		p.Log = a.log

		return p, nil
	case "dreadnaut":
		p := autgroup.Dreadnaut()
		p.Log = a.log

		return p, nil
	}

	return nil, fmt.Errorf("unknown --tool %q", tool)
}

func load(code string, standard bool) (*graph.Graph, error) {
	if standard {
		return graph.FromStandardG6(code)
	}

	return graph.FromG6(code)
}

func parseColors(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		c, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("--colors: %w", err)
		}
		out[i] = c
	}

	return out, nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
