package phase

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sound is the slice of an audio player the slideshow drives. It matches
// *audio.Player from ebiten so players satisfy it directly, and lets the
// engine be exercised with fakes.
type Sound interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
	IsPlaying() bool
}

// Phase is one image+audio pairing shown and sounded during steady display.
// Immutable once constructed. ImagePath is kept so the background can be
// reloaded from disk after a display-mode change.
type Phase struct {
	Name      string
	Sound     Sound
	Image     *ebiten.Image
	ImagePath string
}

// Group is an ordered run of phases sharing a configured name. Order within
// a group follows the image files' filename order.
type Group struct {
	Name   string
	Phases []*Phase
}
