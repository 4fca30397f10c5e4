package main

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/milk9111/phusic/assets"
)

const (
	fontSize     = 42
	outlineWidth = 2
	hudMargin    = 20
)

var hudColor = color.White

// loadFace builds the HUD face from the configured TTF, falling back to Go
// Regular when the config names no font.
func loadFace(catalog *assets.Catalog, fontPath string) (text.Face, error) {
	ttf := goregular.TTF
	if fontPath != "" {
		b, err := catalog.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("hud: %w", err)
		}
		ttf = b
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("hud: parse font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: fontSize}, nil
}

func (g *Game) drawPhaseName(screen *ebiten.Image, name string) {
	h := screen.Bounds().Dy()
	g.drawOutlinedText(screen, name, hudMargin, float64(h)-hudMargin-fontSize)
}

func (g *Game) drawClock(screen *ebiten.Image) {
	now := time.Now().Format("15:04")
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	tw, _ := text.Measure(now, g.face, 0)
	g.drawOutlinedText(screen, now, float64(w)-hudMargin-tw, float64(h)-hudMargin-fontSize)
}

func (g *Game) drawOutlinedText(screen *ebiten.Image, str string, x, y float64) {
	for dx := -outlineWidth; dx <= outlineWidth; dx++ {
		for dy := -outlineWidth; dy <= outlineWidth; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawText(screen, str, g.face, x+float64(dx), y+float64(dy), color.Black)
		}
	}
	drawText(screen, str, g.face, x, y, hudColor)
}

func drawText(dst *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}
