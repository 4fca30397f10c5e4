package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	progressBarWidth  = 200
	progressBarHeight = 20
)

// drawLoading renders the startup screen: centered status text over a
// progress bar, updated as asset groups stream in.
func (g *Game) drawLoading(screen *ebiten.Image, stage string, frac float64) {
	screen.Fill(color.Black)

	if stage == "" {
		stage = "Loading..."
	}

	cx := float64(screen.Bounds().Dx()) / 2
	cy := float64(screen.Bounds().Dy()) / 2

	tw, th := text.Measure(stage, g.face, 0)
	drawText(screen, stage, g.face, cx-tw/2, cy-50-th, color.White)

	x := float32(cx) - progressBarWidth/2
	y := float32(cy) + 10
	vector.StrokeRect(screen, x, y, progressBarWidth, progressBarHeight, 1, color.White, false)
	if frac > 0 {
		vector.FillRect(screen, x, y, float32(frac*progressBarWidth), progressBarHeight, color.White, false)
	}
}
