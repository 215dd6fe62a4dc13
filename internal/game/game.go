// Package game hosts the particle field inside an ebiten window.
package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/particle-rings/internal/asset"
	"github.com/iburimskiy/particle-rings/internal/config"
	"github.com/iburimskiy/particle-rings/internal/input"
	"github.com/iburimskiy/particle-rings/internal/mathx"
	"github.com/iburimskiy/particle-rings/internal/palette"
	"github.com/iburimskiy/particle-rings/internal/sim"
	"github.com/iburimskiy/particle-rings/internal/sound"
)

// Options are the collaborators a Game draws from.
type Options struct {
	Config    config.Config
	System    *sim.System
	Reference *asset.Image
	Palette   palette.Palette
	// Audio may be nil.
	Audio *sound.Player
}

type game struct {
	cfg        config.Config
	sys        *sim.System
	pointer    *input.Pointer
	reference  *ebiten.Image
	palette    palette.Palette
	background color.RGBA
	audio      *sound.Player

	// touch tracking
	touchID  ebiten.TouchID
	touching bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	ticks   int
	paused  bool
	showHUD bool
}

func New(opts Options) (*game, error) {
	if opts.System == nil {
		return nil, errors.New("game: particle system is required")
	}
	bg, err := palette.ParseHex(opts.Config.Render.Background)
	if err != nil {
		return nil, fmt.Errorf("game: background: %w", err)
	}

	g := &game{
		cfg:        opts.Config,
		sys:        opts.System,
		palette:    opts.Palette,
		background: bg,
		audio:      opts.Audio,
		prevKey:    map[ebiten.Key]bool{},
		pointer: input.NewPointer(input.Viewport{
			CanvasW: float64(opts.Config.Canvas.Width),
			CanvasH: float64(opts.Config.Canvas.Height),
			DeviceW: float64(opts.Config.Window.Width),
			DeviceH: float64(opts.Config.Window.Height),
		}),
	}
	if opts.Reference != nil {
		g.reference = ebiten.NewImageFromImage(opts.Reference.Image())
	}
	return g, nil
}

func (g *game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		log.Debug().Bool("paused", g.paused).Msg("toggle pause")
	}
	if justPressed(ebiten.KeyR) {
		g.sys.Reset()
	}
	if justPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if justPressed(ebiten.KeyM) && g.audio != nil {
		g.audio.ToggleMute()
	}

	g.updatePointer()

	if !g.paused {
		g.sys.Step(g.pointer.Input())
		g.ticks++
	}
	if g.audio != nil {
		g.audio.SetLevel(g.sys.MeanDisplacement() / g.cfg.Physics.ScaleDistance)
	}
	return nil
}

// updatePointer feeds mouse and touch events into the pointer state machine.
// Touch wins while a finger is down.
func (g *game) updatePointer() {
	if g.touching {
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.touching = false
			g.pointer.Release()
			return
		}
		x, y := ebiten.TouchPosition(g.touchID)
		g.pointer.Move(float64(x), float64(y))
		return
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		g.touchID = ids[0]
		g.touching = true
		x, y := ebiten.TouchPosition(g.touchID)
		g.pointer.Press(float64(x), float64(y))
		return
	}

	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.pointer.Press(float64(mx), float64(my))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.pointer.Release()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.pointer.Move(float64(mx), float64(my))
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	v := g.view()
	m := viewTransform(v)
	g.drawReference(screen, m)
	g.drawParticles(screen, m, v.Factor())

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *game) view() input.View {
	return input.View{Viewport: g.pointer.Viewport(), Zoom: g.cfg.Render.ViewScale}
}

// viewTransform is the GeoM shared by the reference image and the particles.
func viewTransform(v input.View) ebiten.GeoM {
	f := v.Factor()
	o := v.Origin()
	var m ebiten.GeoM
	m.Scale(f, f)
	m.Translate(o.X, o.Y)
	return m
}

func (g *game) drawReference(screen *ebiten.Image, view ebiten.GeoM) {
	if g.reference == nil || g.cfg.Render.ReferenceOpacity <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{GeoM: view, Filter: ebiten.FilterLinear}
	op.ColorScale.ScaleAlpha(float32(g.cfg.Render.ReferenceOpacity))
	screen.DrawImage(g.reference, op)
}

func (g *game) drawParticles(screen *ebiten.Image, view ebiten.GeoM, radiusScale float64) {
	antialias := g.cfg.Render.Antialias
	g.sys.Each(func(p *sim.Particle) {
		x, y := view.Apply(p.Pos.X, p.Pos.Y)
		r := p.DrawRadius() * radiusScale
		if r <= 0 {
			return
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), p.Color, antialias)
	})
}

func (g *game) drawHUD(screen *ebiten.Image) {
	mean := g.sys.MeanDisplacement()

	swatch := g.palette.At(mathx.Clamp01(mean / g.cfg.Physics.ScaleDistance))
	vector.DrawFilledRect(screen, 12, 34, 24, 12, swatch, false)

	state := g.pointer.State().String()
	if g.paused {
		state += " (paused)"
	}
	status := fmt.Sprintf("%s | %d particles | %s | TPS %.0f | displacement %.1f",
		state, g.sys.Len(), formatElapsed(g.ticks, g.cfg.Render.TPS), ebiten.ActualTPS(), mean)
	if g.audio != nil && g.audio.Muted() {
		status += " | muted"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout reports the device-pixel surface size and refits the canvas into it.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	w := max(1, int(float64(outsideWidth)*s))
	h := max(1, int(float64(outsideHeight)*s))

	vp := g.pointer.Viewport()
	if vp.DeviceW != float64(w) || vp.DeviceH != float64(h) {
		vp.DeviceW, vp.DeviceH = float64(w), float64(h)
		g.pointer.SetViewport(vp)
	}
	return w, h
}

// Run opens the window and blocks until it closes.
func Run(g *game) error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.cfg.Render.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
