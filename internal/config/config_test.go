package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultMatchesDefaultConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadCustomPathOverridesSomeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := "physics:\n  gravity: 900\nrules:\n  lives: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 900.0, cfg.Physics.Gravity)
	assert.Equal(t, 5, cfg.Rules.Lives)
	// untouched values keep their defaults
	assert.Equal(t, 200.0, cfg.Physics.MoveSpeed)
	assert.Equal(t, 32.0, cfg.World.TileSize)
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".giftrun"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".giftrun", "config.yaml"),
		[]byte("rules:\n  clear_bonus: 2500\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2500, cfg.Rules.ClearBonus)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("physics: [unterminated"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadCustomPathRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generation:\n  gifts_min: 7\n  gifts_max: 3\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantErr string
	}{
		{"zero tile size", func(c *GameConfig) { c.World.TileSize = 0 }, "world.tile_size"},
		{"negative gravity", func(c *GameConfig) { c.Physics.Gravity = -1 }, "physics.gravity"},
		{"no lives", func(c *GameConfig) { c.Rules.Lives = 0 }, "rules.lives"},
		{"inverted gift range", func(c *GameConfig) { c.Generation.GiftsMin = 9 }, "inverted"},
		{"tree chance above one", func(c *GameConfig) { c.Generation.TreeChance = 1.5 }, "tree_chance"},
		{"hitbox wider than tile", func(c *GameConfig) { c.Entities.ActorWidth = 40 }, "fit within one tile"},
		{"negative hold", func(c *GameConfig) { c.Input.HoldMS = -5 }, "hold_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	out := string(data)
	for _, want := range []string{"tile_size: 32", "jump_force: 520", "hold_ms: 180"} {
		if !strings.Contains(out, want) {
			t.Errorf("Marshal() output missing %q", want)
		}
	}
}
