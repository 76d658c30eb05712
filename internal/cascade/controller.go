package cascade

import "time"

const (
	// DefaultInterval is the timer period between flow ticks.
	DefaultInterval = 20 * time.Millisecond

	// maxCatchUp bounds how many ticks a single Advance may fire after a
	// long frame, so a stalled window does not drain tanks in one jump.
	maxCatchUp = 5
)

type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Controller owns the running/stopped state and the timer that drives a
// Network. It is not safe for concurrent use; hosts call it from their
// update loop.
type Controller struct {
	net      *Network
	interval time.Duration
	state    State
	pending  time.Duration
	ticks    uint64

	// OnTick, when set, receives every report produced by Tick.
	OnTick func(Report)
}

func NewController(net *Network, interval time.Duration) *Controller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{net: net, interval: interval}
}

func (c *Controller) Network() *Network       { return c.net }
func (c *Controller) Interval() time.Duration { return c.interval }
func (c *Controller) State() State            { return c.state }
func (c *Controller) Running() bool           { return c.state == Running }

// Elapsed is simulated time: ticks run so far times the interval.
func (c *Controller) Elapsed() time.Duration {
	return time.Duration(c.ticks) * c.interval
}

// Toggle starts a stopped timer or stops a running one.
func (c *Controller) Toggle() State {
	if c.state == Running {
		c.state = Stopped
	} else {
		c.state = Running
	}
	c.pending = 0
	return c.state
}

// Tick runs one flow update. It does nothing while stopped.
func (c *Controller) Tick() (Report, bool) {
	if c.state != Running {
		return Report{}, false
	}
	rep := c.net.Tick()
	c.ticks++
	if c.OnTick != nil {
		c.OnTick(rep)
	}
	return rep, true
}

// Advance feeds dt of wall time into the timer and fires a Tick for every
// full interval that has passed. It returns the number of ticks run.
func (c *Controller) Advance(dt time.Duration) int {
	if c.state != Running || dt <= 0 {
		return 0
	}
	c.pending += dt
	fired := 0
	for c.pending >= c.interval {
		c.pending -= c.interval
		if fired == maxCatchUp {
			c.pending = 0
			break
		}
		c.Tick()
		fired++
	}
	return fired
}

// Replace swaps in a new network and stops the timer.
func (c *Controller) Replace(net *Network, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	c.net = net
	c.interval = interval
	c.state = Stopped
	c.pending = 0
	c.ticks = 0
}
