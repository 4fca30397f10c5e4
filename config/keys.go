package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	keysOnce   sync.Once
	keysByName map[string]ebiten.Key
)

// ParseKey resolves a configured key name ("R", "F1", "Digit1", ...) to an
// ebiten key, case-insensitively. The table is built from ebiten's own key
// names so it can never drift from the input backend.
func ParseKey(name string) (ebiten.Key, error) {
	keysOnce.Do(func() {
		keysByName = make(map[string]ebiten.Key)
		for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
			keysByName[strings.ToLower(k.String())] = k
		}
	})

	key, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("config: unknown key name %q", name)
	}
	return key, nil
}
