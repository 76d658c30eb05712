package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/tank-cascade/internal/cascade"
)

type simulateOptions struct {
	ticks int
	every int
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &simulateOptions{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the cascade without a window and print tank levels",
		Example: `  cascade simulate --ticks 500 --every 50
  cascade simulate -s scene.yaml -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, root, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.ticks, "ticks", "n", 250, "number of ticks to run")
	cmd.Flags().IntVar(&opts.every, "every", 0, "log levels every N ticks (0 disables)")
	return cmd
}

func runSimulate(cmd *cobra.Command, root *rootOptions, opts *simulateOptions) error {
	if opts.ticks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", opts.ticks)
	}
	logger := loggerFromContext(cmd.Context())

	sc, err := root.scene()
	if err != nil {
		return err
	}
	net, err := cascade.Build(sc)
	if err != nil {
		return err
	}
	ctrl := cascade.NewController(net, sc.TickInterval())
	logger.Debug("scene built", "tanks", len(net.Tanks()), "edges", len(net.Edges()), "rate", net.FlowRate)

	var lost float64
	ctrl.OnTick = func(rep cascade.Report) {
		for _, f := range rep.Flows {
			lost += f.Lost()
		}
		if opts.every > 0 && rep.Tick%uint64(opts.every) == 0 {
			kv := []any{"tick", rep.Tick, "flowing", rep.FlowingCount()}
			for _, t := range net.Tanks() {
				kv = append(kv, t.Name, fmt.Sprintf("%.1f", t.Quantity()))
			}
			logger.Info("levels", kv...)
		}
	}
	ctrl.Toggle()
	for i := 0; i < opts.ticks; i++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		ctrl.Tick()
	}

	printSummary(cmd.OutOrStdout(), ctrl, lost)
	return nil
}

func printSummary(w io.Writer, ctrl *cascade.Controller, lost float64) {
	net := ctrl.Network()

	tanks := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("Tank", "Quantity", "Capacity", "Level", "State")
	for _, t := range net.Tanks() {
		state := ""
		switch {
		case t.IsFull():
			state = "full"
		case t.IsEmpty():
			state = "empty"
		}
		tanks.Row(t.Name,
			fmt.Sprintf("%.2f", t.Quantity()),
			fmt.Sprintf("%.0f", t.Capacity()),
			fmt.Sprintf("%3.0f%%", t.Level()*100),
			state)
	}

	pipes := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("From", "To", "Gate", "Heated", "Flowing")
	for _, e := range net.Edges() {
		p := net.Pipe(e.Pipe)
		pipes.Row(net.Tank(e.From).Name, net.Tank(e.To).Name, e.Gate.String(), yesNo(p.Heated()), yesNo(p.Flowing()))
	}

	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("After %d ticks (%s simulated)", net.Ticks(), ctrl.Elapsed())))
	fmt.Fprintln(w, tanks.Render())
	fmt.Fprintln(w, pipes.Render())
	fmt.Fprintln(w, styleDim.Render(fmt.Sprintf("total %.2f, discarded on overflow %.2f", net.Total(), lost)))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
