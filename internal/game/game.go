package game

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/globe-visualization/internal/config"
	"github.com/iburimskiy/globe-visualization/internal/render"
	"github.com/iburimskiy/globe-visualization/internal/theme"
)

var (
	lightBackground = color.RGBA{R: 250, G: 250, B: 252, A: 255}
	darkBackground  = color.RGBA{R: 9, G: 9, B: 14, A: 255}
)

// Options configures the app shell around the globe.
type Options struct {
	Themes   theme.Source
	Override *config.VisualConfig
	Backend  render.Backend
	HUD      bool
	Log      zerolog.Logger
}

type overrideResult struct {
	cfg  *config.VisualConfig
	path string
	err  error
}

// Game is the ebiten.Game hosting one globe. Theme changes and file dialog
// results arrive on channels and are applied at the start of Update, so all
// globe state stays on the game goroutine.
type Game struct {
	globe     *Globe
	themes    theme.Source
	overrides chan overrideResult
	log       zerolog.Logger

	width, height int
	spin          float64
	hud           bool
	dialogOpen    bool
	touchID       ebiten.TouchID
	touching      bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

func New(opts Options) *Game {
	themes := opts.Themes
	if themes == nil {
		themes = theme.Static(theme.Unresolved)
	}
	backend := opts.Backend
	if backend == nil {
		backend = render.NewGlobe(opts.Log)
	}
	return &Game{
		globe: NewGlobe(GlobeOptions{
			Override:  opts.Override,
			Class:     "hero",
			Backend:   backend,
			SetCursor: ebiten.SetCursorShape,
			Log:       opts.Log,
		}),
		themes:    themes,
		overrides: make(chan overrideResult, 1),
		log:       opts.Log,
		hud:       opts.HUD,
		prevKey:   map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if !g.globe.Mounted() {
		// The theme source may already have resolved before the first frame.
		if err := g.globe.SetTheme(g.themes.Current()); err != nil {
			return err
		}
		if err := g.globe.Mount(); err != nil {
			return err
		}
	}

	if err := g.drainEvents(); err != nil {
		return err
	}

	if justPressed(ebiten.KeyT) {
		if err := g.globe.SetTheme(g.globe.Theme().Toggle()); err != nil {
			return err
		}
	}
	if justPressed(ebiten.KeyR) {
		if err := g.globe.SetOverride(nil); err != nil {
			return err
		}
	}
	if justPressed(ebiten.KeyO) {
		g.openOverrideDialog()
	}
	if justPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.globe.Unmount()
		return ebiten.Termination
	}

	g.updatePointer()
	g.globe.Update()
	g.spin += 0.12
	return nil
}

func (g *Game) drainEvents() error {
	for {
		select {
		case t := <-g.themes.Changes():
			if err := g.globe.SetTheme(t); err != nil {
				return err
			}
		case res := <-g.overrides:
			g.dialogOpen = false
			if res.err != nil {
				g.lastErr = res.err
				g.log.Warn().Err(res.err).Msg("override not loaded")
				continue
			}
			if res.cfg == nil {
				continue
			}
			g.lastErr = nil
			g.log.Info().Str("path", res.path).Msg("visual override loaded")
			if err := g.globe.SetOverride(res.cfg); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (g *Game) updatePointer() {
	p := g.globe.Pointer()
	bounds := g.globe.Bounds(g.width, g.height)

	mx, my := ebiten.CursorPosition()
	inside := image.Pt(mx, my).In(bounds)
	if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.Down(float64(mx))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.Up()
	}

	if !g.touching {
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			tx, ty := ebiten.TouchPosition(id)
			if image.Pt(tx, ty).In(bounds) {
				g.touchID, g.touching = id, true
				p.Down(float64(tx))
				break
			}
		}
	}

	switch {
	case g.touching && inpututil.IsTouchJustReleased(g.touchID):
		g.touching = false
		p.Up()
	case g.touching:
		tx, ty := ebiten.TouchPosition(g.touchID)
		if !image.Pt(tx, ty).In(bounds) {
			g.touching = false
			p.Leave()
			break
		}
		p.Move(float64(tx))
	case p.Dragging() && !inside:
		p.Leave()
	default:
		p.Move(float64(mx))
	}
}

func (g *Game) openOverrideDialog() {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true
	go func() {
		path, err := zenity.SelectFile(
			zenity.Title("Open Globe Config"),
			zenity.FileFilters{{
				Name:     "Globe config",
				Patterns: []string{"*.yaml", "*.yml"},
			}},
		)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) {
				err = nil
			}
			g.overrides <- overrideResult{err: err}
			return
		}
		cfg, err := config.LoadOverride(path)
		g.overrides <- overrideResult{cfg: cfg, path: path, err: err}
	}()
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.globe.Theme() == theme.Light {
		screen.Fill(lightBackground)
	} else {
		screen.Fill(darkBackground)
	}

	g.globe.Draw(screen, g.spin)

	if g.hud {
		g.drawHUD(screen)
	}
}

// Layout treats the window as the globe's container.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	g.globe.Resize(outsideWidth)
	return outsideWidth, outsideHeight
}
