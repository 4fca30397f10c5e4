package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/phusic/engine"
)

type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdSoftForward
	cmdSoftBackward
	cmdHardForward
	cmdHardBackward
	cmdEnding
	cmdSfx
	cmdToggleDisplay
	cmdToggleHelp
)

// routeKey derives at most one command from a key-down event. Keys with no
// fixed binding fall through to the configured ending and sfx triggers;
// anything still unmatched is ignored.
func routeKey(s *show, k ebiten.Key, ctrl bool) command {
	switch k {
	case ebiten.KeyEscape:
		return cmdQuit
	case ebiten.KeyF, ebiten.KeyF11:
		return cmdToggleDisplay
	case ebiten.KeyArrowRight:
		if ctrl {
			return cmdHardForward
		}
		return cmdSoftForward
	case ebiten.KeyArrowLeft:
		if ctrl {
			return cmdHardBackward
		}
		return cmdSoftBackward
	case ebiten.KeySpace:
		return cmdSoftForward
	case ebiten.KeyH:
		return cmdToggleHelp
	case ebiten.KeyC:
		if ctrl {
			return cmdQuit
		}
	}

	if _, ok := s.endingFor(k); ok {
		return cmdEnding
	}
	if _, ok := s.sfxFor(k); ok {
		return cmdSfx
	}
	return cmdNone
}

func (g *Game) handleInput(s *show) error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch routeKey(s, k, ctrl) {
		case cmdQuit:
			log.Println("shutting down")
			return ebiten.Termination
		case cmdSoftForward:
			s.engine.Advance(engine.Forward)
		case cmdSoftBackward:
			s.engine.Advance(engine.Backward)
		case cmdHardForward:
			s.engine.Jump(engine.Forward)
		case cmdHardBackward:
			s.engine.Jump(engine.Backward)
		case cmdEnding:
			p, _ := s.endingFor(k)
			s.engine.SoftMove(engine.OffRing(p))
		case cmdSfx:
			fx, _ := s.sfxFor(k)
			_ = fx.Rewind()
			fx.Play()
		case cmdToggleDisplay:
			// Resize reaction only; backgrounds rescale at draw time.
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		case cmdToggleHelp:
			g.showHelp = !g.showHelp
		}
	}
	return nil
}
