package main

import (
	"log"
	"sync"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/phusic/assets"
	"github.com/milk9111/phusic/config"
)

const (
	windowedWidth  = 1280
	windowedHeight = 720
)

type Game struct {
	configPath string
	catalog    *assets.Catalog
	face       text.Face
	keys       []ebiten.Key

	// Loading runs on its own goroutine; mu guards the handoff fields the
	// draw loop polls until the show is ready.
	mu      sync.Mutex
	stage   string
	frac    float64
	show    *show
	loadErr error

	started  bool
	helpUI   *ebitenui.UI
	showHelp bool
	watcher  *config.Watcher
}

func NewGame(configPath string, cfg *config.Config) (*Game, error) {
	catalog := assets.NewCatalog(cfg.Metadata.AssetsDir)

	face, err := loadFace(catalog, cfg.Font)
	if err != nil {
		return nil, err
	}

	g := &Game{
		configPath: configPath,
		catalog:    catalog,
		face:       face,
	}

	watcher, err := config.Watch(configPath)
	if err != nil {
		log.Printf("config watch disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	go func() {
		s, err := buildShow(cfg, catalog, g.reportProgress)
		g.mu.Lock()
		defer g.mu.Unlock()
		g.show = s
		g.loadErr = err
	}()

	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) reportProgress(stage string, frac float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stage = stage
	g.frac = frac
}

func (g *Game) Update() error {
	g.mu.Lock()
	s, err := g.show, g.loadErr
	g.mu.Unlock()

	if err != nil {
		return err
	}
	if s == nil {
		return nil
	}

	if !g.started {
		s.engine.Start()
		g.helpUI = newHelpUI(s)
		g.started = true
	}

	g.drainWatcher(s)

	if err := g.handleInput(s); err != nil {
		return err
	}

	s.engine.Tick()

	if g.showHelp && g.helpUI != nil {
		g.helpUI.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	s := g.show
	stage, frac := g.stage, g.frac
	g.mu.Unlock()

	if s == nil || !g.started {
		g.drawLoading(screen, stage, frac)
		return
	}

	eng := s.engine
	drawBackground(screen, eng.Current().Image, 1)
	if eng.Fading() {
		drawBackground(screen, eng.Pending().Image, eng.Progress())
	} else {
		g.drawPhaseName(screen, eng.Current().Name)
	}
	g.drawClock(screen)

	if g.showHelp && g.helpUI != nil {
		g.helpUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	return outsideWidth, outsideHeight
}

// drawBackground stretches the phase image over the whole screen. Scaling
// happens at draw time against the live screen size, so a display-mode
// change is picked up on the next frame without reloading the image.
func drawBackground(screen, img *ebiten.Image, alpha float64) {
	if img == nil {
		return
	}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(iw), float64(sh)/float64(ih))
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (g *Game) drainWatcher(s *show) {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadBindings(s, path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config watch: %v", err)
		default:
			return
		}
	}
}

// reloadBindings applies a config edit to the stateless parts of the show:
// sfx key bindings. Phases and endings hold ring and audio state and only
// change on restart.
func (g *Game) reloadBindings(s *show, path string) {
	cfg, err := config.Load(path)
	if err != nil {
		log.Printf("config reload: %v", err)
		return
	}

	sfx, err := buildSfx(cfg, g.catalog, func(string, float64) {})
	if err != nil {
		log.Printf("config reload: %v", err)
		return
	}

	s.sfx = sfx
	g.helpUI = newHelpUI(s)
	log.Printf("config reloaded: sfx rebound; phase and ending changes take effect on restart")
}
