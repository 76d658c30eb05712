package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/tank-cascade/internal/cascade"
	"github.com/iburimskiy/tank-cascade/internal/config"
)

func defaultNetwork(t *testing.T) *cascade.Network {
	t.Helper()
	n, err := cascade.Build(config.Default())
	require.NoError(t, err)
	return n
}

func TestDrawLayersPipesHeatersTanks(t *testing.T) {
	n := defaultNetwork(t)
	n.Tick()

	rec := &recorder{}
	New(DefaultStyle()).Draw(rec, n)

	// Rank every command by the pass that should emit it.
	rank := map[string]int{"path": 0, "ellipse": 1, "fill": 2, "outline": 2, "text": 2}
	last := 0
	for i, o := range rec.ops {
		r := rank[o.kind]
		require.GreaterOrEqual(t, r, last, "op %d (%s) drawn after a later pass", i, o.kind)
		last = r
	}
	assert.Contains(t, rec.kinds(), "ellipse")
	assert.Equal(t, "text", rec.kinds()[len(rec.ops)-1])
}

func TestDrawPipeLiquidOnlyWhenFlowing(t *testing.T) {
	n := cascade.NewNetwork()
	p := n.AddPipe(cascade.NewPipe(cascade.Route(cascade.Point{}, cascade.Point{X: 100, Y: 100})...))
	rnd := New(DefaultStyle())

	rec := &recorder{}
	rnd.DrawPass(rec, n, PassPipes)
	require.Len(t, rec.ops, 1)
	assert.Equal(t, DefaultStyle().PipeCasing, rec.ops[0].stroke.Color)
	assert.Equal(t, cascade.DefaultPipeWidth, rec.ops[0].stroke.Width)
	assert.Equal(t, CapRound, rec.ops[0].stroke.Cap)
	assert.Equal(t, JoinRound, rec.ops[0].stroke.Join)

	n.Pipe(p).SetFlowing(true)
	rec = &recorder{}
	rnd.DrawPass(rec, n, PassPipes)
	require.Len(t, rec.ops, 2)
	assert.Equal(t, DefaultStyle().Liquid, rec.ops[1].stroke.Color)
	assert.Equal(t, cascade.DefaultPipeWidth-4, rec.ops[1].stroke.Width)
}

func TestDrawHeatedPipe(t *testing.T) {
	n := cascade.NewNetwork()
	p := n.AddPipe(cascade.NewPipe(cascade.Route(cascade.Point{}, cascade.Point{X: 100, Y: 100})...))
	_, err := n.AttachHeater(p, 10)
	require.NoError(t, err)
	n.Pipe(p).SetFlowing(true)

	rec := &recorder{}
	New(DefaultStyle()).Draw(rec, n)
	require.Len(t, rec.ops, 4)
	assert.Equal(t, DefaultStyle().HeatedLiquid, rec.ops[1].stroke.Color)

	inner, outer := rec.ops[2], rec.ops[3]
	assert.Equal(t, cascade.Rect{X: 50, Y: 50, W: 10, H: 10}, inner.rect)
	assert.Equal(t, cascade.Rect{X: 50, Y: 50, W: 20, H: 20}, outer.rect)
	assert.Equal(t, 3.0, inner.stroke.Width)
}

func TestDegeneratePipesDrawNothing(t *testing.T) {
	n := cascade.NewNetwork()
	single := n.AddPipe(cascade.NewPipe(cascade.Point{X: 5, Y: 5}))
	straight := n.AddPipe(cascade.NewPipe(cascade.Point{}, cascade.Point{X: 10}))
	_, err := n.AttachHeater(straight, 10)
	require.NoError(t, err)
	n.Pipe(single).SetFlowing(true)

	rec := &recorder{}
	rnd := New(DefaultStyle())
	rnd.DrawPass(rec, n, PassHeaters)
	assert.Empty(t, rec.ops)

	rnd.DrawPass(rec, n, PassPipes)
	assert.Equal(t, []string{"path"}, rec.kinds())
}

func TestDrawTank(t *testing.T) {
	n := cascade.NewNetwork()
	n.AddTank(cascade.NewTank("half", cascade.Rect{X: 10, Y: 20, W: 100, H: 140}, 100, 50))
	n.AddTank(cascade.NewTank("empty", cascade.Rect{X: 200, Y: 20, W: 100, H: 140}, 100, 0))

	rec := &recorder{}
	New(DefaultStyle()).DrawPass(rec, n, PassTanks)
	assert.Equal(t, []string{"fill", "outline", "text", "outline", "text"}, rec.kinds())

	assert.Equal(t, cascade.Rect{X: 13, Y: 90, W: 94, H: 68}, rec.ops[0].rect)
	assert.Equal(t, cascade.DefaultLiquid, rec.ops[0].fill)
	assert.Equal(t, JoinMiter, rec.ops[1].stroke.Join)
	assert.Equal(t, 4.0, rec.ops[1].stroke.Width)
	assert.Equal(t, "half", rec.ops[2].text)
	assert.Equal(t, cascade.Rect{X: 10, Y: 10}, rec.ops[2].rect)
}

func TestPassString(t *testing.T) {
	assert.Equal(t, "pipes", PassPipes.String())
	assert.Equal(t, "heaters", PassHeaters.String())
	assert.Equal(t, "tanks", PassTanks.String())
	assert.Equal(t, "unknown", Pass(7).String())
}
