package backdrop

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// nudgeStep is how far one arrow-key frame pans, in viewport pixels.
	nudgeStep = 8
	// zoomStep is how far +/- and the wheel move the zoom slider.
	zoomStep = 0.05
	// zoomGlide is how long a +/- zoom step animates, in seconds.
	zoomGlide = 0.15
	// frameDT is the fixed update interval at ebiten's default 60 TPS.
	frameDT = float32(1.0 / 60)
)

// App is an ebiten.Game showing one pannable, zoomable background in a fixed
// viewport, with a zoom slider and a status line underneath.
//
// Mouse drag pans. +/- and the wheel zoom. Arrow keys nudge. F resets the
// view, S writes a PNG export and Esc quits.
type App struct {
	cfg RunConfig

	engine *Engine
	loader *Loader
	input  *PointerInput
	zoom   *ZoomControl
	slider *Slider
	screen *ScreenRenderer
	script *ScriptRunner
}

// NewApp wires an engine, loader, input, zoom slider and screen sink
// together for cfg.
func NewApp(cfg RunConfig) *App {
	cfg = cfg.withDefaults()
	vp := cfg.viewport()

	screen := NewScreenRenderer(vp, cfg.Overlay)
	screen.ClearColor = cfg.ClearColor
	screen.ExportDir = cfg.ExportDir

	engine := NewEngine(vp, screen)
	zoom := NewZoomControl(engine, cfg.MinZoom, cfg.MaxZoom)
	zoom.Ease = cfg.ZoomEase

	input := NewPointerInput(Rect{Width: vp.Width, Height: vp.Height})
	BindEngine(input, engine)

	slider := NewSlider(Rect{X: 16, Y: vp.Height + 10, Width: vp.Width - 32, Height: 16}, zoom)

	return &App{
		cfg:    cfg,
		engine: engine,
		loader: NewLoader(),
		input:  input,
		zoom:   zoom,
		slider: slider,
		screen: screen,
	}
}

// Load decodes the image at path in the background. The view switches to it
// once decoding finishes.
func (a *App) Load(path string) {
	a.loader.Load(path)
}

// LoadReader is like Load for an already opened stream.
func (a *App) LoadReader(name string, r io.Reader) {
	a.loader.LoadReader(name, r)
}

// SetImage shows img immediately.
func (a *App) SetImage(img image.Image) {
	a.engine.Load(img)
	a.zoom.Rewind()
}

// SetScript attaches a session script, played from the next Update on.
// Pass nil to detach.
func (a *App) SetScript(r *ScriptRunner) {
	a.script = r
}

// Config returns the effective configuration.
func (a *App) Config() RunConfig { return a.cfg }

// Engine returns the pan/zoom engine.
func (a *App) Engine() *Engine { return a.engine }

// Input returns the pointer input feeding the engine. Use its Inject methods
// for scripted sessions.
func (a *App) Input() *PointerInput { return a.input }

// Slider returns the zoom slider.
func (a *App) Slider() *Slider { return a.slider }

// Renderer returns the screen sink.
func (a *App) Renderer() *ScreenRenderer { return a.screen }

// Close stops background loading.
func (a *App) Close() {
	a.loader.Close()
}

// keyInput holds the keyboard and wheel state for one frame.
type keyInput struct {
	quit    bool
	zoomIn  bool
	zoomOut bool
	reset   bool
	export  bool
	wheelY  float64
	nudge   Point
}

func pollKeys() keyInput {
	_, wheelY := ebiten.Wheel()
	var k keyInput
	k.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	k.zoomIn = inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd)
	k.zoomOut = inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract)
	k.reset = inpututil.IsKeyJustPressed(ebiten.KeyF)
	k.export = inpututil.IsKeyJustPressed(ebiten.KeyS)
	k.wheelY = wheelY

	// Arrow keys move the view; the image moves the other way.
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		k.nudge.X += nudgeStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		k.nudge.X -= nudgeStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		k.nudge.Y += nudgeStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		k.nudge.Y -= nudgeStep
	}
	return k
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if a.script != nil {
		if err := a.script.step(a); err != nil {
			return err
		}
	}
	return a.step(a.input.Sample(), pollKeys())
}

// step advances one frame with the given pointer and keyboard state.
func (a *App) step(p PointerSample, k keyInput) error {
	if a.loader.Poll(a.engine) {
		a.zoom.Rewind()
	}
	a.zoom.Update(frameDT)

	if !a.slider.Handle(p) {
		a.input.Process(p)
	}

	if k.quit {
		return ebiten.Termination
	}
	if !a.engine.Loaded() {
		return nil
	}
	switch {
	case k.zoomIn:
		a.zoom.AnimateBy(zoomStep, zoomGlide)
	case k.zoomOut:
		a.zoom.AnimateBy(-zoomStep, zoomGlide)
	case k.wheelY > 0:
		a.zoom.Step(zoomStep)
	case k.wheelY < 0:
		a.zoom.Step(-zoomStep)
	}
	if k.nudge != (Point{}) {
		a.engine.Nudge(k.nudge)
	}
	if k.reset {
		a.engine.Reset()
		a.zoom.Rewind()
	}
	if k.export {
		a.screen.QueueExport("backdrop")
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.cfg.ClearColor)
	a.screen.Draw(screen, Point{})
	a.slider.Draw(screen)
	ebitenutil.DebugPrintAt(screen, a.status(), 16, a.cfg.Height+panelHeight-22)
}

// Layout implements ebiten.Game. The logical screen is the viewport plus the
// control panel, regardless of window size.
func (a *App) Layout(_, _ int) (int, int) {
	return a.cfg.Width, a.cfg.Height + panelHeight
}

// status returns the text shown under the slider.
func (a *App) status() string {
	var b strings.Builder
	if !a.engine.Loaded() {
		b.WriteString("no image")
	} else {
		s := a.engine.State()
		fmt.Fprintf(&b, "zoom %.2fx  offset (%.0f, %.0f)  %.0fx%.0f",
			a.engine.Zoom(), s.Offset.X, s.Offset.Y,
			s.CurrentScaledSize.Width, s.CurrentScaledSize.Height)
	}
	if n := a.loader.Pending(); n > 0 {
		fmt.Fprintf(&b, "  loading %d", n)
	}
	if a.cfg.ShowFPS {
		fmt.Fprintf(&b, "  FPS %.1f", ebiten.ActualFPS())
	}
	return b.String()
}

// Run opens a window sized for app and runs it until the window closes or
// Esc is pressed. The app is closed on return.
func Run(app *App) error {
	defer app.Close()
	ebiten.SetWindowTitle(app.cfg.Title)
	ebiten.SetWindowSize(app.cfg.Width, app.cfg.Height+panelHeight)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
