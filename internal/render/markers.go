package render

import (
	"github.com/osse101/PanelKit_Go/internal/domain"
	"github.com/osse101/PanelKit_Go/internal/logger"
)

// Markers attaches cosmetic enchantment markers to item metadata.
// Restricted contexts, where markers cannot be rendered, use the no-op backend.
type Markers interface {
	// Enabled reports whether marker mutations take effect
	Enabled() bool
	// Attach adds the marker at the given level, bypassing the level restriction
	Attach(meta *domain.ItemMeta, e domain.Enchantment, level int)
	// Detach removes the marker
	Detach(meta *domain.ItemMeta, e domain.Enchantment)
}

type liveMarkers struct{}

// NewLive returns the production marker backend
func NewLive() Markers {
	return liveMarkers{}
}

func (liveMarkers) Enabled() bool { return true }

func (liveMarkers) Attach(meta *domain.ItemMeta, e domain.Enchantment, level int) {
	meta.AddEnchant(e, level, true)
}

func (liveMarkers) Detach(meta *domain.ItemMeta, e domain.Enchantment) {
	meta.RemoveEnchant(e)
}

type noopMarkers struct{}

// NewNoop returns a backend that records nothing, for contexts without a renderer
func NewNoop() Markers {
	return noopMarkers{}
}

func (noopMarkers) Enabled() bool                                    { return false }
func (noopMarkers) Attach(*domain.ItemMeta, domain.Enchantment, int) {}
func (noopMarkers) Detach(*domain.ItemMeta, domain.Enchantment)      {}

// ForEnvironment picks the backend for a deployment environment.
// The test environment never renders markers.
func ForEnvironment(env string, enabled bool) Markers {
	if env == logger.EnvironmentTest || !enabled {
		return NewNoop()
	}
	return NewLive()
}
