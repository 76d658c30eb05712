// Package game runs the cascade in an ebiten window: a start/stop button
// drives the simulation timer and a second button loads another scene.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/tank-cascade/internal/cascade"
	"github.com/iburimskiy/tank-cascade/internal/config"
	"github.com/iburimskiy/tank-cascade/internal/render"
	"github.com/iburimskiy/tank-cascade/internal/sound"
)

type Options struct {
	Scene   config.Scene
	Logger  *log.Logger
	Player  *sound.Player // nil disables the flow tone
	Running bool          // start with the timer running
}

type Game struct {
	ctrl     *cascade.Controller
	renderer *render.Renderer
	surface  surface
	logger   *log.Logger
	player   *sound.Player
	title    string

	// input edge detection
	prevKey map[ebiten.Key]bool

	toggleBtn button
	loadBtn   button

	// flow state seen on the previous tick, per edge
	lastFlowing []bool

	lastErr error
}

func New(opts Options) (*Game, error) {
	net, err := cascade.Build(opts.Scene)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		ctrl:     cascade.NewController(net, opts.Scene.TickInterval()),
		renderer: render.New(render.DefaultStyle()),
		logger:   logger,
		player:   opts.Player,
		title:    opts.Scene.Title,
		prevKey:  map[ebiten.Key]bool{},
		toggleBtn: button{
			x: config.ButtonX, y: config.ButtonY,
			w: config.ButtonWidth, h: config.ButtonHeight,
			label: "Start / Stop",
		},
		loadBtn: button{
			x: config.LoadButtonX, y: config.ButtonY,
			w: config.LoadButtonWidth, h: config.ButtonHeight,
			label: "Load scene",
		},
	}
	g.ctrl.OnTick = g.onTick
	g.lastFlowing = make([]bool, len(net.Edges()))
	if opts.Running {
		g.toggle()
	}
	return g, nil
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) Controller() *cascade.Controller { return g.ctrl }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	if g.toggleBtn.update(mouseX, mouseY) {
		g.toggle()
	}
	if g.loadBtn.update(mouseX, mouseY) {
		if err := g.openSceneDialog(); err != nil {
			g.lastErr = err
		}
	}

	if justPressed(ebiten.KeySpace) {
		g.toggle()
	}
	if justPressed(ebiten.KeyL) {
		if err := g.openSceneDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = config.TicksPerSecond
	}
	g.ctrl.Advance(time.Second / time.Duration(tps))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Style.Background)

	g.surface.dst = screen
	g.renderer.Draw(&g.surface, g.ctrl.Network())

	g.toggleBtn.draw(screen)
	g.loadBtn.draw(screen)

	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) status() string {
	var status string
	if g.ctrl.Running() {
		status = fmt.Sprintf("Running %s - Space to stop, L to load a scene", formatDuration(g.ctrl.Elapsed()))
	} else {
		status = fmt.Sprintf("Stopped %s - Space to start, L to load a scene", formatDuration(g.ctrl.Elapsed()))
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) toggle() {
	state := g.ctrl.Toggle()
	if g.player != nil {
		g.player.SetPaused(state != cascade.Running)
	}
	g.logger.Info("simulation toggled", "state", state, "elapsed", g.ctrl.Elapsed())
}

func (g *Game) onTick(rep cascade.Report) {
	net := g.ctrl.Network()
	heated := false
	for i, f := range rep.Flows {
		e := net.Edge(f.Edge)
		if f.Flowing && net.Pipe(e.Pipe).Heated() {
			heated = true
		}
		if i < len(g.lastFlowing) && g.lastFlowing[i] != f.Flowing {
			g.logger.Debug("pipe flow changed",
				"from", net.Tank(e.From).Name,
				"to", net.Tank(e.To).Name,
				"flowing", f.Flowing,
				"tick", rep.Tick)
			g.lastFlowing[i] = f.Flowing
		}
		if f.Lost() > 0 {
			g.logger.Debug("overflow discarded", "to", net.Tank(e.To).Name, "amount", f.Lost())
		}
	}
	if g.player != nil {
		g.player.Tone().Set(rep.FlowingCount(), len(rep.Flows), heated)
	}
}

func (g *Game) openSceneDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open scene"),
		zenity.FileFilters{{
			Name:     "Scene",
			Patterns: []string{"*.toml", "*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.loadScene(filename)
}

// loadScene replaces the network with one built from path. On error the
// current scene keeps running.
func (g *Game) loadScene(path string) error {
	sc, err := config.Load(path)
	if err != nil {
		return err
	}
	net, err := cascade.Build(sc)
	if err != nil {
		return err
	}
	g.ctrl.Replace(net, sc.TickInterval())
	g.lastFlowing = make([]bool, len(net.Edges()))
	g.title = sc.Title
	g.lastErr = nil
	if g.player != nil {
		g.player.SetPaused(true)
		g.player.Tone().Set(0, 0, false)
	}
	ebiten.SetWindowTitle(sc.Title)
	g.logger.Info("scene loaded", "path", path, "tanks", len(net.Tanks()), "pipes", len(net.Pipes()))
	return nil
}
