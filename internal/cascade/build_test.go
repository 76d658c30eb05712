package cascade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/tank-cascade/internal/config"
)

func TestBuildDefaultScene(t *testing.T) {
	n, err := Build(config.Default())
	require.NoError(t, err)

	require.Len(t, n.Tanks(), 4)
	require.Len(t, n.Pipes(), 3)
	require.Len(t, n.Edges(), 3)
	require.Len(t, n.Heaters(), 1)
	assert.Equal(t, DefaultFlowRate, n.FlowRate)

	assert.Equal(t, 100.0, n.Tanks()[0].Quantity())
	assert.Equal(t, 0.0, n.Tanks()[1].Quantity())
	assert.Equal(t, 100.0, n.Tanks()[3].Quantity())
	assert.Equal(t, Rect{X: 50, Y: 50, W: 100, H: 140}, n.Tanks()[0].Bounds)

	// Only the mixing tank's outlet is heated and held back by a reserve.
	assert.Equal(t, GateReserve, n.Edges()[2].Gate)
	assert.True(t, n.Pipe(n.Edges()[2].Pipe).Heated())
	assert.False(t, n.Pipe(n.Edges()[0].Pipe).Heated())
	assert.Equal(t, n.Edges()[2].Pipe, n.Heaters()[0].Pipe)

	assert.Equal(t, DefaultLiquid, n.Tanks()[0].Liquid)
	assert.Equal(t, uint8(255), n.Tanks()[2].Liquid.R)
	assert.Equal(t, uint8(100), n.Tanks()[2].Liquid.G)
}

func TestBuildRoutesPipesBetweenAttachPoints(t *testing.T) {
	n, err := Build(config.Default())
	require.NoError(t, err)

	e := n.Edges()[0]
	pts := n.Pipe(e.Pipe).Points
	require.Len(t, pts, 4)
	assert.Equal(t, n.Tank(e.From).BottomCenter(), pts[0])
	assert.Equal(t, n.Tank(e.To).TopCenter(), pts[3])
	assert.Equal(t, pts[1].Y, pts[2].Y)

	mid, ok := n.Pipe(e.Pipe).Midpoint()
	require.True(t, ok)
	assert.Equal(t, Point{X: 250, Y: 195}, mid)
}

func TestBuildRejectsInvalidScene(t *testing.T) {
	sc := config.Default()
	sc.Pipes = append(sc.Pipes, config.PipeSpec{From: "nope", To: "Zbiornik 2", Gate: config.GateNotEmpty})
	_, err := Build(sc)
	assert.ErrorContains(t, err, `unknown source tank "nope"`)
}

func TestDefaultSceneSettles(t *testing.T) {
	n, err := Build(config.Default())
	require.NoError(t, err)

	var lost float64
	for i := 0; i < 5000; i++ {
		for _, f := range n.Tick().Flows {
			lost += f.Lost()
		}
	}
	for _, p := range n.Pipes() {
		assert.False(t, p.Flowing())
	}
	// Two full feed tanks hold more than the last tank can take.
	assert.True(t, n.Tanks()[2].IsFull())
	assert.InDelta(t, 200, n.Total()+lost, 1e-6)
}
