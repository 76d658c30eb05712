// Package cascade models tanks joined by pipes and the per-tick flow of
// liquid between them.
//
// A Network owns every tank, pipe, edge and heater and addresses them by
// index. Edges are evaluated strictly in the order they were connected, so
// liquid delivered by an earlier edge counts against a destination's free
// space before a later edge is considered.
package cascade

import (
	"errors"
	"fmt"
)

const (
	// DefaultFlowRate is the amount moved along an eligible edge per tick.
	DefaultFlowRate = 0.8

	// ReserveLevel is the quantity a GateReserve source keeps back.
	ReserveLevel = 5.0

	DefaultHeaterSize = 10.0
)

var (
	ErrUnknownTank = errors.New("unknown tank")
	ErrUnknownPipe = errors.New("unknown pipe")
)

type (
	TankID   int
	PipeID   int
	EdgeID   int
	HeaterID int
)

// Gate decides whether a source tank may feed its edge.
type Gate int

const (
	// GateNotEmpty lets liquid through while the source is not empty.
	GateNotEmpty Gate = iota
	// GateReserve lets liquid through only while the source holds more
	// than ReserveLevel.
	GateReserve
)

func (g Gate) String() string {
	switch g {
	case GateNotEmpty:
		return "not-empty"
	case GateReserve:
		return "reserve"
	default:
		return fmt.Sprintf("gate(%d)", int(g))
	}
}

func (g Gate) open(src *Tank) bool {
	if g == GateReserve {
		return src.Quantity() > ReserveLevel
	}
	return !src.IsEmpty()
}

// Edge is a directed connection from one tank to another through a pipe.
type Edge struct {
	From TankID
	To   TankID
	Pipe PipeID
	Gate Gate
}

// Heater marks a pipe as heating the liquid passing through it.
type Heater struct {
	Pipe PipeID
	Size float64
}

// Flow is what happened on one edge during a tick.
type Flow struct {
	Edge      EdgeID
	Moved     float64 // taken from the source
	Delivered float64 // accepted by the destination
	Flowing   bool
}

// Lost is the part of Moved the destination had no room for.
func (f Flow) Lost() float64 { return f.Moved - f.Delivered }

// Report summarises one tick, with one Flow per edge in processing order.
type Report struct {
	Tick  uint64
	Flows []Flow
}

// FlowingCount returns how many edges moved liquid.
func (r Report) FlowingCount() int {
	n := 0
	for _, f := range r.Flows {
		if f.Flowing {
			n++
		}
	}
	return n
}

type Network struct {
	FlowRate float64

	tanks   []*Tank
	pipes   []*Pipe
	edges   []Edge
	heaters []Heater
	ticks   uint64
}

func NewNetwork() *Network {
	return &Network{FlowRate: DefaultFlowRate}
}

func (n *Network) AddTank(t *Tank) TankID {
	n.tanks = append(n.tanks, t)
	return TankID(len(n.tanks) - 1)
}

func (n *Network) AddPipe(p *Pipe) PipeID {
	n.pipes = append(n.pipes, p)
	return PipeID(len(n.pipes) - 1)
}

// Connect appends an edge. Edges run in the order they were connected.
func (n *Network) Connect(from, to TankID, pipe PipeID, gate Gate) (EdgeID, error) {
	if n.Tank(from) == nil {
		return 0, fmt.Errorf("connect from %d: %w", from, ErrUnknownTank)
	}
	if n.Tank(to) == nil {
		return 0, fmt.Errorf("connect to %d: %w", to, ErrUnknownTank)
	}
	if n.Pipe(pipe) == nil {
		return 0, fmt.Errorf("connect through %d: %w", pipe, ErrUnknownPipe)
	}
	n.edges = append(n.edges, Edge{From: from, To: to, Pipe: pipe, Gate: gate})
	return EdgeID(len(n.edges) - 1), nil
}

// AttachHeater puts a heater on a pipe and marks the pipe heated for good.
func (n *Network) AttachHeater(pipe PipeID, size float64) (HeaterID, error) {
	p := n.Pipe(pipe)
	if p == nil {
		return 0, fmt.Errorf("attach heater to %d: %w", pipe, ErrUnknownPipe)
	}
	if size <= 0 {
		size = DefaultHeaterSize
	}
	p.heated = true
	n.heaters = append(n.heaters, Heater{Pipe: pipe, Size: size})
	return HeaterID(len(n.heaters) - 1), nil
}

// Tank returns nil for an unknown id.
func (n *Network) Tank(id TankID) *Tank {
	if id < 0 || int(id) >= len(n.tanks) {
		return nil
	}
	return n.tanks[id]
}

// Pipe returns nil for an unknown id.
func (n *Network) Pipe(id PipeID) *Pipe {
	if id < 0 || int(id) >= len(n.pipes) {
		return nil
	}
	return n.pipes[id]
}

func (n *Network) Tanks() []*Tank      { return n.tanks }
func (n *Network) Pipes() []*Pipe      { return n.pipes }
func (n *Network) Edges() []Edge       { return n.edges }
func (n *Network) Heaters() []Heater   { return n.heaters }
func (n *Network) Ticks() uint64       { return n.ticks }
func (n *Network) Edge(id EdgeID) Edge { return n.edges[id] }

// Tick runs one flow update over every edge in order.
func (n *Network) Tick() Report {
	n.ticks++
	rep := Report{Tick: n.ticks, Flows: make([]Flow, len(n.edges))}
	for i, e := range n.edges {
		rep.Flows[i] = n.step(EdgeID(i), e)
	}
	return rep
}

func (n *Network) step(id EdgeID, e Edge) Flow {
	src, dst := n.tanks[e.From], n.tanks[e.To]
	f := Flow{Edge: id}
	if e.Gate.open(src) && !dst.IsFull() {
		f.Moved = src.Remove(n.FlowRate)
		f.Delivered = dst.Add(f.Moved)
		f.Flowing = true
	}
	n.pipes[e.Pipe].SetFlowing(f.Flowing)
	return f
}

// Total is the liquid currently held across all tanks.
func (n *Network) Total() float64 {
	var sum float64
	for _, t := range n.tanks {
		sum += t.Quantity()
	}
	return sum
}
