// Package assets resolves configured paths into loaded images and audio
// players. Ambient audio is wrapped in an infinite loop stream; sound
// effects get plain one-shot players.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

var audioContext = audio.NewContext(sampleRate)

// Catalog loads assets from disk, resolving relative paths against the
// configured assets directory.
type Catalog struct {
	root string
}

func NewCatalog(root string) *Catalog {
	return &Catalog{root: root}
}

// ResolveGroup expands a configured path into leaf asset paths: the files
// of a directory, or the path itself when it names a single file.
// os.ReadDir sorts by filename, which is the stable order the sequence
// builder relies on for images.
func (c *Catalog) ResolveGroup(path string) ([]string, error) {
	resolved := c.resolve(path)
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, fmt.Errorf("assets: resolve %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{resolved}, nil
	}

	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, fmt.Errorf("assets: list %s: %w", path, err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, filepath.Join(resolved, entry.Name()))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("assets: no files in %s", path)
	}
	return files, nil
}

// ReadFile reads a raw asset, resolved against the assets directory.
func (c *Catalog) ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(c.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return b, nil
}

// LoadImage decodes an image file into an ebiten image.
func (c *Catalog) LoadImage(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(c.resolve(path))
	if err != nil {
		return nil, fmt.Errorf("assets: read image %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode image %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadLoop creates a player whose stream loops indefinitely, for phase and
// ending ambience.
func (c *Catalog) LoadLoop(path string) (*audio.Player, error) {
	stream, length, err := c.decode(path)
	if err != nil {
		return nil, err
	}
	player, err := audioContext.NewPlayer(audio.NewInfiniteLoop(stream, length))
	if err != nil {
		return nil, fmt.Errorf("assets: player for %s: %w", path, err)
	}
	return player, nil
}

// LoadSound creates a one-shot player for sound effects.
func (c *Catalog) LoadSound(path string) (*audio.Player, error) {
	stream, _, err := c.decode(path)
	if err != nil {
		return nil, err
	}
	player, err := audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: player for %s: %w", path, err)
	}
	return player, nil
}

type stream interface {
	Read(buf []byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
}

func (c *Catalog) decode(path string) (stream, int64, error) {
	b, err := os.ReadFile(c.resolve(path))
	if err != nil {
		return nil, 0, fmt.Errorf("assets: read audio %s: %w", path, err)
	}

	reader := bytes.NewReader(b)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("assets: decode wav %s: %w", path, err)
		}
		return s, s.Length(), nil
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("assets: decode vorbis %s: %w", path, err)
		}
		return s, s.Length(), nil
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, 0, fmt.Errorf("assets: decode mp3 %s: %w", path, err)
		}
		return s, s.Length(), nil
	default:
		return nil, 0, fmt.Errorf("assets: unsupported audio format %s", path)
	}
}

func (c *Catalog) resolve(path string) string {
	if c.root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.root, path)
}
