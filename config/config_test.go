package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "show.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
metadata:
  name: Blood Rage
  assets_dir: assets/blood_rage
phases:
  - name: Peace
    imgs: peace/imgs
    audio: peace/audio
  - name: War
    imgs: war/imgs
    audio: war/audio
endings:
  - key: R
    name: Ragnarok
    img: ragnarok/imgs
    audio: ragnarok/audio
sfx:
  - key: T
    name: Thunder
    audio: sfx/thunder.ogg
font: fonts/norse.ttf
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Metadata.AssetsDir != "assets/blood_rage" {
		t.Fatalf("unexpected assets dir %q", cfg.Metadata.AssetsDir)
	}
	if len(cfg.Phases) != 2 || cfg.Phases[1].Name != "War" {
		t.Fatalf("unexpected phases %+v", cfg.Phases)
	}
	if len(cfg.Endings) != 1 || cfg.Endings[0].Key != "R" {
		t.Fatalf("unexpected endings %+v", cfg.Endings)
	}
	if cfg.Font != "fonts/norse.ttf" {
		t.Fatalf("unexpected font %q", cfg.Font)
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "no_phases",
			body: "metadata: {name: x}\n",
			want: "no phases",
		},
		{
			name: "phase_missing_audio",
			body: "phases:\n  - name: Peace\n    imgs: peace/imgs\n",
			want: "needs name, imgs and audio",
		},
		{
			name: "unknown_key",
			body: `
phases:
  - {name: Peace, imgs: i, audio: a}
endings:
  - {key: NotAKey, name: End, img: i, audio: a}
`,
			want: "unknown key",
		},
		{
			name: "duplicate_key",
			body: `
phases:
  - {name: Peace, imgs: i, audio: a}
endings:
  - {key: R, name: End, img: i, audio: a}
sfx:
  - {key: R, name: Horn, audio: a}
`,
			want: "bound to both",
		},
		{
			name: "sfx_without_key",
			body: `
phases:
  - {name: Peace, imgs: i, audio: a}
sfx:
  - {name: Horn, audio: a}
`,
			want: "no trigger key",
		},
		{
			name: "bad_yaml",
			body: "phases: [\n",
			want: "unmarshal",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeConfig(t, c.body)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error containing %q, got %v", c.want, err)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want ebiten.Key
		err  bool
	}{
		{"letter", "R", ebiten.KeyR, false},
		{"lowercase", "r", ebiten.KeyR, false},
		{"function", "F1", ebiten.KeyF1, false},
		{"arrow", "ArrowLeft", ebiten.KeyArrowLeft, false},
		{"digit", "Digit1", ebiten.KeyDigit1, false},
		{"padded", " Space ", ebiten.KeySpace, false},
		{"unknown", "NotAKey", 0, true},
		{"empty", "", 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			key, err := ParseKey(c.in)
			if c.err {
				if err == nil {
					t.Fatalf("expected error for %q", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKey(%q): %v", c.in, err)
			}
			if key != c.want {
				t.Fatalf("ParseKey(%q) = %v, want %v", c.in, key, c.want)
			}
		})
	}
}
