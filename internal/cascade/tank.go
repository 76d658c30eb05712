package cascade

import (
	"image/color"
	"math"
)

const (
	// Tolerance treats quantities within 0.1 of the bounds as empty or full.
	Tolerance = 0.1

	DefaultCapacity = 100.0
)

// DefaultLiquid is the colour of untreated liquid inside a tank.
var DefaultLiquid = color.RGBA{R: 0, G: 120, B: 255, A: 255}

// Tank holds a bounded quantity of liquid.
type Tank struct {
	Name   string
	Bounds Rect
	Liquid color.RGBA

	capacity float64
	quantity float64
	level    float64
}

// NewTank creates a tank. A non-positive or non-finite capacity falls back
// to DefaultCapacity; the initial quantity is clamped into range.
func NewTank(name string, bounds Rect, capacity, quantity float64) *Tank {
	if !(capacity > 0) || math.IsInf(capacity, 1) {
		capacity = DefaultCapacity
	}
	t := &Tank{
		Name:     name,
		Bounds:   bounds,
		Liquid:   DefaultLiquid,
		capacity: capacity,
	}
	t.SetQuantity(quantity)
	return t
}

func (t *Tank) Capacity() float64 { return t.capacity }
func (t *Tank) Quantity() float64 { return t.quantity }

// Level is the fill ratio in [0, 1].
func (t *Tank) Level() float64 { return t.level }

// SetQuantity overwrites the quantity, clamped to [0, capacity]. NaN
// counts as 0.
func (t *Tank) SetQuantity(q float64) {
	switch {
	case !(q >= 0):
		q = 0
	case q > t.capacity:
		q = t.capacity
	}
	t.quantity = q
	t.updateLevel()
}

// Add pours up to amount into the tank and returns what fit.
// Anything above the free space is discarded. NaN adds nothing.
func (t *Tank) Add(amount float64) float64 {
	if !(amount > 0) {
		return 0
	}
	added := min(amount, t.capacity-t.quantity)
	t.quantity += added
	t.updateLevel()
	return added
}

// Remove drains up to amount and returns what was actually taken.
func (t *Tank) Remove(amount float64) float64 {
	if !(amount > 0) {
		return 0
	}
	removed := min(amount, t.quantity)
	t.quantity -= removed
	t.updateLevel()
	return removed
}

func (t *Tank) IsEmpty() bool { return t.quantity <= Tolerance }
func (t *Tank) IsFull() bool  { return t.quantity >= t.capacity-Tolerance }

// TopCenter is where incoming pipes attach.
func (t *Tank) TopCenter() Point { return t.Bounds.TopCenter() }

// BottomCenter is where outgoing pipes attach.
func (t *Tank) BottomCenter() Point { return t.Bounds.BottomCenter() }

func (t *Tank) updateLevel() {
	t.level = t.quantity / t.capacity
}
