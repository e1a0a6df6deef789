package cli

import (
	"time"

	"github.com/spf13/cobra"

	"rosgraph/internal/server"
	"rosgraph/pkg/source"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string // listen address, overrides config when set
	graphFile  string // graph JSON file to serve
	pollMS     int    // source poll interval in milliseconds
	hideHidden bool   // filter internal nodes in /api/layout by default
	configPath string // explicit config file path
}

// serveCommand creates the serve command, which runs the HTTP and
// websocket API against a graph file source.
//
// The graph file is re-read on every poll, so editing it while the
// server runs pushes updates to connected websocket clients.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve [graph.json]",
		Short: "Serve the graph API and websocket updates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.graphFile = args[0]
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", "", "listen address (default :8080)")
	cmd.Flags().IntVar(&opts.pollMS, "poll-interval", 0, "source poll interval in milliseconds (default 500)")
	cmd.Flags().BoolVar(&opts.hideHidden, "hide-internal", false, "hide internal nodes in layout responses")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file path")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	// Flags override file config.
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if opts.pollMS > 0 {
		cfg.Server.PollIntervalMS = opts.pollMS
	}
	if cmd.Flags().Changed("hide-internal") {
		cfg.Server.HideInternal = opts.hideHidden
	}

	src := source.NewFile(opts.graphFile)

	// Fail fast on an unreadable graph file instead of serving errors.
	if _, err := src.Snapshot(cmd.Context()); err != nil {
		return err
	}

	srv := server.New(src, server.Options{
		Addr:           cfg.Server.Addr,
		PollInterval:   cfg.Server.pollInterval(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		HideInternal:   cfg.Server.HideInternal,
		Layout:         cfg.Layout.layoutOptions(),
		Logger:         c.Logger,
	})

	c.Logger.Info("serving graph",
		"file", opts.graphFile,
		"addr", cfg.Server.Addr,
		"poll", time.Duration(cfg.Server.PollIntervalMS)*time.Millisecond,
	)
	return srv.Run(cmd.Context())
}
