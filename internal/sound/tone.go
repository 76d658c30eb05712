// Package sound plays a low hum while liquid is moving through the pipes.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// FlowTone is a beep.Streamer producing a sine hum. Its loudness follows
// the share of pipes that are flowing and its pitch rises while heated
// liquid is moving. The game loop calls Set; the speaker goroutine calls
// Stream.
type FlowTone struct {
	sampleRate beep.SampleRate
	baseHz     float64
	heatedHz   float64
	maxGain    float64

	mu    sync.RWMutex
	gain  float64 // target
	hz    float64
	level float64 // current, eased towards gain
	phase float64
}

func NewFlowTone(sr beep.SampleRate, baseHz, heatedHz, maxGain float64) *FlowTone {
	return &FlowTone{
		sampleRate: sr,
		baseHz:     baseHz,
		heatedHz:   heatedHz,
		maxGain:    maxGain,
		hz:         baseHz,
	}
}

// Set updates the tone from the latest tick: flowing out of total pipes,
// and whether any heated pipe is among them.
func (t *FlowTone) Set(flowing, total int, heated bool) {
	share := 0.0
	if total > 0 {
		share = clamp01(float64(flowing) / float64(total))
	}
	hz := t.baseHz
	if heated {
		hz = t.heatedHz
	}
	t.mu.Lock()
	t.gain = share * t.maxGain
	t.hz = hz
	t.mu.Unlock()
}

// Gain returns the target loudness.
func (t *FlowTone) Gain() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.gain
}

func (t *FlowTone) Stream(samples [][2]float64) (int, bool) {
	t.mu.RLock()
	target, hz := t.gain, t.hz
	t.mu.RUnlock()

	step := 2 * math.Pi * hz / float64(t.sampleRate)
	// Ease the level over ~10ms so toggling pipes does not click.
	ease := 1 / (0.01 * float64(t.sampleRate))
	for i := range samples {
		t.level += (target - t.level) * ease
		v := math.Sin(t.phase) * t.level
		samples[i][0], samples[i][1] = v, v
		t.phase += step
		if t.phase >= 2*math.Pi {
			t.phase -= 2 * math.Pi
		}
	}
	return len(samples), true
}

func (t *FlowTone) Err() error { return nil }

// Player owns the speaker and pauses the tone while the simulation is
// stopped.
type Player struct {
	tone *FlowTone
	ctrl *beep.Ctrl
}

// Start initialises the speaker and begins streaming tone, paused.
func Start(tone *FlowTone) (*Player, error) {
	sr := tone.sampleRate
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, err
	}
	ctrl := &beep.Ctrl{Streamer: tone, Paused: true}
	speaker.Play(ctrl)
	return &Player{tone: tone, ctrl: ctrl}, nil
}

func (p *Player) Tone() *FlowTone { return p.tone }

func (p *Player) SetPaused(paused bool) {
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func (p *Player) Close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
