package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rosgraph/pkg/graph"
	"rosgraph/pkg/layout"
	"rosgraph/pkg/source"
)

// watchOpts holds the command-line flags for the watch command.
type watchOpts struct {
	pollMS       int  // poll interval in milliseconds
	hideInternal bool // start with internal nodes hidden
}

// watchCommand creates the watch command, an interactive terminal view
// of a graph file. The file is re-read on an interval; the view updates
// whenever the graph changes.
func (c *CLI) watchCommand() *cobra.Command {
	var opts watchOpts

	cmd := &cobra.Command{
		Use:   "watch [graph.json]",
		Short: "Watch a graph file and show live layout rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := source.NewFile(args[0])
			model := newWatchModel(src, time.Duration(opts.pollMS)*time.Millisecond, opts.hideInternal)
			prog := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err := prog.Run()
			return err
		},
	}

	cmd.Flags().IntVar(&opts.pollMS, "poll-interval", 500, "poll interval in milliseconds")
	cmd.Flags().BoolVar(&opts.hideInternal, "hide-internal", false, "start with internal nodes hidden")

	return cmd
}

// =============================================================================
// watchModel - Live graph view
// =============================================================================

type tickMsg time.Time

type snapshotMsg struct {
	graph graph.Graph
	err   error
}

// watchModel is the bubbletea model for the watch command.
type watchModel struct {
	src          source.Source
	interval     time.Duration
	hideInternal bool

	result    layout.Result
	nodeIndex map[string]graph.Node
	hash      string
	updatedAt time.Time
	updates   int
	err       error
}

func newWatchModel(src source.Source, interval time.Duration, hideInternal bool) watchModel {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return watchModel{
		src:          src,
		interval:     interval,
		hideInternal: hideInternal,
	}
}

func (m watchModel) Init() tea.Cmd {
	return m.snapshot
}

func (m watchModel) snapshot() tea.Msg {
	g, err := m.src.Snapshot(context.Background())
	return snapshotMsg{graph: g, err: err}
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "i":
			m.hideInternal = !m.hideInternal
			m.hash = "" // force relayout on next snapshot
			return m, m.snapshot
		}

	case tickMsg:
		return m, m.snapshot

	case snapshotMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, m.tick()
		}
		m.err = nil

		if hash := msg.graph.Hash(); hash != m.hash {
			m.hash = hash
			m.result = layout.Compute(msg.graph, m.hideInternal)
			m.nodeIndex = make(map[string]graph.Node, len(m.result.Nodes))
			for _, n := range m.result.Nodes {
				m.nodeIndex[n.ID] = n
			}
			m.updatedAt = time.Now()
			m.updates++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("rosgraph watch"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render("q quit  i toggle internal"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("source error: %v", m.err)))
		b.WriteString("\n\n")
	}

	filter := "showing internal"
	if m.hideInternal {
		filter = "hiding internal"
	}
	b.WriteString(fmt.Sprintf("%s %s %s %s\n\n",
		StyleNumber.Render(fmt.Sprintf("%d nodes", len(m.result.Nodes))),
		StyleNumber.Render(fmt.Sprintf("%d edges", len(m.result.Edges))),
		StyleDim.Render("· "+filter),
		StyleDim.Render(fmt.Sprintf("· %d updates", m.updates)),
	))

	for i, row := range m.result.Rows {
		b.WriteString(StyleHighlight.Render(fmt.Sprintf("row %2d", i)))
		b.WriteString(StyleDim.Render(fmt.Sprintf(" (%d) ", len(row))))
		b.WriteString(StyleValue.Render(m.rowLabels(row, 4)))
		b.WriteString("\n")
	}

	if m.result.BackEdges > 0 {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render(fmt.Sprintf("%d cycle back-edge(s)", m.result.BackEdges)))
	}

	if !m.updatedAt.IsZero() {
		b.WriteString("\n")
		b.WriteString(StyleDim.Render("updated " + m.updatedAt.Format("15:04:05")))
	}
	b.WriteString("\n")
	return b.String()
}

// rowLabels formats up to max labels from a row, eliding the rest.
func (m watchModel) rowLabels(row []string, max int) string {
	labels := make([]string, 0, max+1)
	for i, id := range row {
		if i == max {
			labels = append(labels, fmt.Sprintf("… +%d", len(row)-max))
			break
		}
		if n, ok := m.nodeIndex[id]; ok {
			labels = append(labels, n.DisplayLabel())
		} else {
			labels = append(labels, id)
		}
	}
	return strings.Join(labels, "  ")
}
