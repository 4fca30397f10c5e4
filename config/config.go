// Package config loads and validates the YAML setup file describing phase
// groups, endings, sound effects and the optional HUD font.
package config

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type Metadata struct {
	Name      string `yaml:"name"`
	AssetsDir string `yaml:"assets_dir"`
}

// Phase declares one group: a directory of images and a pool of audio
// clips. Each image becomes a phase paired with a random clip.
type Phase struct {
	Name  string `yaml:"name"`
	Imgs  string `yaml:"imgs"`
	Audio string `yaml:"audio"`
}

// Ending is an off-ring phase reached only by its trigger key.
type Ending struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	Img   string `yaml:"img"`
	Audio string `yaml:"audio"`
}

// Sfx binds a trigger key to one fire-and-forget sound.
type Sfx struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	Audio string `yaml:"audio"`
}

type Config struct {
	Metadata Metadata `yaml:"metadata"`
	Phases   []Phase  `yaml:"phases"`
	Endings  []Ending `yaml:"endings"`
	Sfx      []Sfx    `yaml:"sfx"`
	Font     string   `yaml:"font"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate rejects malformed configuration before any asset is touched.
func (c *Config) Validate() error {
	if len(c.Phases) == 0 {
		return fmt.Errorf("no phases configured")
	}

	incomplete := lo.Filter(c.Phases, func(p Phase, _ int) bool {
		return p.Name == "" || p.Imgs == "" || p.Audio == ""
	})
	if len(incomplete) > 0 {
		return fmt.Errorf("phase %q needs name, imgs and audio", incomplete[0].Name)
	}

	seen := map[string]string{}
	bind := func(key, owner string) error {
		if key == "" {
			return fmt.Errorf("%s has no trigger key", owner)
		}
		if _, err := ParseKey(key); err != nil {
			return fmt.Errorf("%s: %w", owner, err)
		}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("key %q bound to both %s and %s", key, prev, owner)
		}
		seen[key] = owner
		return nil
	}

	for _, e := range c.Endings {
		if e.Name == "" || e.Img == "" || e.Audio == "" {
			return fmt.Errorf("ending %q needs name, img and audio", e.Name)
		}
		if err := bind(e.Key, "ending "+e.Name); err != nil {
			return err
		}
	}
	for _, s := range c.Sfx {
		if s.Audio == "" {
			return fmt.Errorf("sfx %q needs audio", s.Name)
		}
		if err := bind(s.Key, "sfx "+s.Name); err != nil {
			return err
		}
	}
	return nil
}
