package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PanelKit_Go/internal/domain"
	"github.com/osse101/PanelKit_Go/internal/panel"
	"github.com/osse101/PanelKit_Go/internal/render"
)

const validTemplate = `{
	"version": "1.0",
	"description": "island settings",
	"items": [
		{"key": "pvp", "material": "diamond_sword", "name": "PvP", "description": ["Toggle PvP"], "glow": true},
		{"key": "owner", "player_head": "tastybento", "amount": 2},
		{"key": "hidden", "material": "paper", "invisible": true}
	]
}`

func newTestLoader(t *testing.T) Loader {
	t.Helper()
	l, err := NewLoader()
	require.NoError(t, err)
	return l
}

func TestLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(validTemplate), 0644))

	cfg, err := newTestLoader(t).Load(path)

	require.NoError(t, err)
	assert.Equal(t, "1.0", cfg.Version)
	require.Len(t, cfg.Items, 3)
	assert.Equal(t, "pvp", cfg.Items[0].Key)
	assert.Equal(t, []string{"Toggle PvP"}, cfg.Items[0].Description)
}

func TestLoader_LoadMissingFile(t *testing.T) {
	_, err := newTestLoader(t).Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read item template file")
}

func TestLoader_Parse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{"missing items", `{"version": "1.0"}`, "required"},
		{"no items", `{"version": "1.0", "items": []}`, "minItems"},
		{"amount too large", `{"version": "1.0", "items": [{"key": "a", "amount": 65}]}`, "maximum"},
		{"bad material", `{"version": "1.0", "items": [{"key": "a", "material": "Diamond Sword"}]}`, "pattern"},
		{"unknown field", `{"version": "1.0", "items": [{"key": "a", "colour": "red"}]}`, "additionalProperties"},
		{"duplicate key", `{"version": "1.0", "items": [{"key": "a"}, {"key": "a"}]}`, "duplicate item key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestLoader(t).Parse([]byte(tt.data), "test")

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidTemplate)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestConfig_Builders(t *testing.T) {
	cfg, err := newTestLoader(t).Parse([]byte(validTemplate), "test")
	require.NoError(t, err)

	builders := cfg.Builders()
	require.Len(t, builders, 3)

	t.Run("regular item", func(t *testing.T) {
		item := builders["pvp"].Build(panel.WithMarkers(render.NewLive()))

		assert.Equal(t, "PvP", item.Name())
		assert.Equal(t, []string{"Toggle PvP"}, item.Description())
		assert.True(t, item.Glow())
		assert.Equal(t, 1, item.Icon().Amount)
	})

	t.Run("player head", func(t *testing.T) {
		item := builders["owner"].Build(panel.WithMarkers(render.NewNoop()))

		assert.True(t, item.IsPlayerHead())
		assert.Equal(t, "tastybento", item.Name())
		assert.Equal(t, domain.MaterialPlayerHead, item.Icon().Material)
		assert.Equal(t, 2, item.Icon().Amount)
	})

	t.Run("name defaults to material title", func(t *testing.T) {
		item := builders["hidden"].Build(panel.WithMarkers(render.NewNoop()))

		assert.Equal(t, "Paper", item.Name())
		assert.True(t, item.Invisible())
	})
}
