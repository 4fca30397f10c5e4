package main

import (
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/phusic/assets"
	"github.com/milk9111/phusic/config"
	"github.com/milk9111/phusic/engine"
	"github.com/milk9111/phusic/phase"
)

type ending struct {
	key   ebiten.Key
	name  string
	phase *phase.Phase
}

type soundEffect struct {
	key   ebiten.Key
	name  string
	sound phase.Sound
}

// show is everything assembled at startup: the crossfade engine over the
// cyclic phase order, plus the off-ring ending targets and sfx triggers.
type show struct {
	engine  *engine.Engine
	endings []ending
	sfx     []soundEffect
}

type progressFunc func(stage string, frac float64)

func buildShow(cfg *config.Config, catalog *assets.Catalog, report progressFunc) (*show, error) {
	groups, err := buildGroups(cfg, catalog, report)
	if err != nil {
		return nil, err
	}

	ordered, err := phase.Interleave(groups)
	if err != nil {
		return nil, err
	}
	ring, err := phase.NewRing(ordered)
	if err != nil {
		return nil, err
	}

	endings, err := buildEndings(cfg, catalog, report)
	if err != nil {
		return nil, err
	}
	sfx, err := buildSfx(cfg, catalog, report)
	if err != nil {
		return nil, err
	}

	return &show{
		engine:  engine.New(ring, engine.Config{}),
		endings: endings,
		sfx:     sfx,
	}, nil
}

// buildGroups pairs each image of a group, in filename order, with a clip
// drawn uniformly at random from the group's audio pool. Clips may repeat
// across images.
func buildGroups(cfg *config.Config, catalog *assets.Catalog, report progressFunc) ([]phase.Group, error) {
	report("Loading phase assets...", 0)

	groups := make([]phase.Group, 0, len(cfg.Phases))
	for i, spec := range cfg.Phases {
		imgPaths, err := catalog.ResolveGroup(spec.Imgs)
		if err != nil {
			return nil, fmt.Errorf("phase %q: %w", spec.Name, err)
		}
		audioPaths, err := catalog.ResolveGroup(spec.Audio)
		if err != nil {
			return nil, fmt.Errorf("phase %q: %w", spec.Name, err)
		}

		phases := make([]*phase.Phase, 0, len(imgPaths))
		for _, imgPath := range imgPaths {
			audioPath := audioPaths[rand.Intn(len(audioPaths))]
			p, err := loadPhase(catalog, spec.Name, imgPath, audioPath)
			if err != nil {
				return nil, err
			}
			phases = append(phases, p)
		}

		groups = append(groups, phase.Group{Name: spec.Name, Phases: phases})
		report("Loading phase assets...", float64(i+1)/float64(len(cfg.Phases)))
	}
	return groups, nil
}

func buildEndings(cfg *config.Config, catalog *assets.Catalog, report progressFunc) ([]ending, error) {
	report("Loading ending assets...", 0)

	endings := make([]ending, 0, len(cfg.Endings))
	for i, spec := range cfg.Endings {
		key, err := config.ParseKey(spec.Key)
		if err != nil {
			return nil, err
		}
		imgPath, err := pickOne(catalog, spec.Img)
		if err != nil {
			return nil, fmt.Errorf("ending %q: %w", spec.Name, err)
		}
		audioPath, err := pickOne(catalog, spec.Audio)
		if err != nil {
			return nil, fmt.Errorf("ending %q: %w", spec.Name, err)
		}
		p, err := loadPhase(catalog, spec.Name, imgPath, audioPath)
		if err != nil {
			return nil, err
		}

		endings = append(endings, ending{key: key, name: spec.Name, phase: p})
		report("Loading ending assets...", float64(i+1)/float64(len(cfg.Endings)))
	}
	return endings, nil
}

func buildSfx(cfg *config.Config, catalog *assets.Catalog, report progressFunc) ([]soundEffect, error) {
	report("Loading sfx assets...", 0)

	effects := make([]soundEffect, 0, len(cfg.Sfx))
	for i, spec := range cfg.Sfx {
		key, err := config.ParseKey(spec.Key)
		if err != nil {
			return nil, err
		}
		sound, err := catalog.LoadSound(spec.Audio)
		if err != nil {
			return nil, fmt.Errorf("sfx %q: %w", spec.Name, err)
		}

		effects = append(effects, soundEffect{key: key, name: spec.Name, sound: sound})
		report("Loading sfx assets...", float64(i+1)/float64(len(cfg.Sfx)))
	}
	return effects, nil
}

func loadPhase(catalog *assets.Catalog, name, imgPath, audioPath string) (*phase.Phase, error) {
	img, err := catalog.LoadImage(imgPath)
	if err != nil {
		return nil, fmt.Errorf("phase %q: %w", name, err)
	}
	sound, err := catalog.LoadLoop(audioPath)
	if err != nil {
		return nil, fmt.Errorf("phase %q: %w", name, err)
	}
	return &phase.Phase{
		Name:      name,
		Sound:     sound,
		Image:     img,
		ImagePath: imgPath,
	}, nil
}

// pickOne resolves a path that may name a directory to one random leaf.
func pickOne(catalog *assets.Catalog, path string) (string, error) {
	files, err := catalog.ResolveGroup(path)
	if err != nil {
		return "", err
	}
	return files[rand.Intn(len(files))], nil
}

func (s *show) endingFor(key ebiten.Key) (*phase.Phase, bool) {
	for _, e := range s.endings {
		if e.key == key {
			return e.phase, true
		}
	}
	return nil, false
}

func (s *show) sfxFor(key ebiten.Key) (phase.Sound, bool) {
	for _, fx := range s.sfx {
		if fx.key == key {
			return fx.sound, true
		}
	}
	return nil, false
}
