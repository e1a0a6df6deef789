package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rosgraph/pkg/graph"
	"rosgraph/pkg/layout"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	output       string // output file path; "-" writes to stdout
	hideInternal bool   // drop internal nodes before layout
	maxPerRow    int    // sub-row width limit
	configPath   string // explicit config file path
}

// layoutCommand creates the layout command, which reads a raw graph
// snapshot, computes deterministic positions, and writes the positioned
// graph back out as JSON.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute positions for a graph snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <input>_layout.json)")
	cmd.Flags().BoolVar(&opts.hideInternal, "hide-internal", false, "hide internal nodes and topics")
	cmd.Flags().IntVar(&opts.maxPerRow, "max-per-row", 0, "maximum nodes per visual row (default 8)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file path")

	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, input string, opts *layoutOpts) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	layoutOpts := cfg.Layout.layoutOptions()
	if opts.maxPerRow > 0 {
		layoutOpts.MaxNodesPerRow = opts.maxPerRow
	}
	layoutOpts.Logger = logger

	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	prog := newProgress(logger)
	spin := newSpinnerWithContext(cmd.Context(), "Computing layout")
	spin.Start()

	result := layout.ComputeWithOptions(g, opts.hideInternal, layoutOpts)

	spin.Stop()
	if err := cmd.Context().Err(); err != nil {
		return err
	}

	out := graph.Graph{Nodes: result.Nodes, Edges: result.Edges}
	outputPath := layoutOutputPath(opts.output, input)

	if outputPath == "-" {
		if err := graph.WriteGraph(out, cmd.OutOrStdout()); err != nil {
			return err
		}
	} else {
		if err := graph.WriteGraphFile(out, outputPath); err != nil {
			return err
		}
		printFile(outputPath)
	}

	printStats(len(result.Nodes), len(result.Edges), len(result.Rows))
	if result.BackEdges > 0 {
		printWarning("%d cycle back-edge(s) ignored during leveling", result.BackEdges)
	}
	prog.done("Layout complete")
	return nil
}

// layoutOutputPath derives the output path. An explicit output wins;
// otherwise <input>_layout.json sits next to the input file.
func layoutOutputPath(output, input string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "_layout.json"
}
