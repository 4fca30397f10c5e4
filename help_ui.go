package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// newHelpUI builds the key-binding overlay (toggled with H). It uses the
// built-in basic font so it works without the configured theme font.
func newHelpUI(s *show) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	grey := color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	addRow := func(str string, clr color.NRGBA) {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(str, &face, clr),
		))
	}

	addRow("Key Bindings", white)
	addRow("", white)
	addRow("Right / Space     next phase (fade)", grey)
	addRow("Left              previous phase (fade)", grey)
	addRow("Ctrl+Right/Left   switch instantly", grey)
	addRow("F / F11           toggle fullscreen", grey)
	addRow("H                 toggle this help", grey)
	addRow("Ctrl+C / Esc      quit", grey)

	if len(s.endings) > 0 {
		addRow("", white)
		for _, e := range s.endings {
			addRow(fmt.Sprintf("%-17s ending: %s", e.key.String(), e.name), grey)
		}
	}
	if len(s.sfx) > 0 {
		addRow("", white)
		for _, fx := range s.sfx {
			addRow(fmt.Sprintf("%-17s sfx: %s", fx.key.String(), fx.name), grey)
		}
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
