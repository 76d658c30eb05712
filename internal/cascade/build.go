package cascade

import (
	"fmt"

	"github.com/iburimskiy/tank-cascade/internal/config"
)

// Build turns a validated scene into a Network. Tanks keep the scene's
// order; pipes become edges in the scene's order.
func Build(sc config.Scene) (*Network, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	n := NewNetwork()
	n.FlowRate = sc.FlowRate

	byName := make(map[string]TankID, len(sc.Tanks))
	for _, ts := range sc.Tanks {
		t := NewTank(ts.Name, Rect{X: ts.X, Y: ts.Y, W: ts.Width, H: ts.Height}, ts.Capacity, ts.Initial)
		if c, ok := ts.LiquidColor(); ok {
			t.Liquid = c
		}
		byName[ts.Name] = n.AddTank(t)
	}

	for i, ps := range sc.Pipes {
		from, to := byName[ps.From], byName[ps.To]
		pipe := n.AddPipe(NewPipe(Route(n.Tank(from).BottomCenter(), n.Tank(to).TopCenter())...))
		if _, err := n.Connect(from, to, pipe, parseGate(ps.Gate)); err != nil {
			return nil, fmt.Errorf("pipe %d: %w", i, err)
		}
		if ps.Heated {
			if _, err := n.AttachHeater(pipe, DefaultHeaterSize); err != nil {
				return nil, fmt.Errorf("pipe %d: %w", i, err)
			}
		}
	}
	return n, nil
}

func parseGate(s string) Gate {
	if s == config.GateReserve {
		return GateReserve
	}
	return GateNotEmpty
}
