package panel

import (
	"log/slog"
	"slices"

	"github.com/osse101/PanelKit_Go/internal/domain"
	"github.com/osse101/PanelKit_Go/internal/metrics"
	"github.com/osse101/PanelKit_Go/internal/render"
)

// Item is an icon in a panel slot together with its display state and click behaviour.
//
// Every mutator re-derives the icon metadata so the icon never shows stale state.
// Icons whose material carries no metadata keep the logical state only.
// An Item is owned by one panel at a time and is not safe for concurrent use.
type Item struct {
	icon *domain.ItemStack

	meta    domain.ItemMeta
	hasMeta bool

	name           string
	description    []string
	glow           bool
	invisible      bool
	playerHeadName string

	clickHandler ClickHandler

	markers render.Markers
	log     *slog.Logger
}

// ItemOption configures an Item at construction
type ItemOption func(*Item)

// WithMarkers sets the marker backend used for glow and invisible
func WithMarkers(m render.Markers) ItemOption {
	return func(i *Item) { i.markers = m }
}

// WithLogger sets the item's logger
func WithLogger(l *slog.Logger) ItemOption {
	return func(i *Item) { i.log = l }
}

// NewItem builds an item from a builder snapshot, taking ownership of its icon
func NewItem(s Snapshot, opts ...ItemOption) *Item {
	i := &Item{
		markers: render.NewLive(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(i)
	}

	i.icon = s.Icon()
	if i.icon == nil {
		i.icon = domain.NewItemStack(domain.MaterialAir, 0)
	}
	i.icon.SetAmount(s.Amount())
	i.playerHeadName = s.PlayerHeadName()

	i.loadMeta()
	if !i.hasMeta {
		i.log.Debug(LogMsgMetaUnsupported, "material", i.icon.Material)
	}

	i.clickHandler = s.ClickHandler()

	i.SetName(s.Name())
	i.SetDescription(s.Description())
	i.SetGlow(s.Glow())
	i.SetInvisible(s.Invisible())

	return i
}

// loadMeta reads the icon's metadata and hides tooltip sections that are not name or lore
func (i *Item) loadMeta() {
	i.meta, i.hasMeta = i.icon.ItemMeta()
	if !i.hasMeta {
		return
	}
	i.meta.AddItemFlags(tooltipFlags...)
	i.icon.SetItemMeta(i.meta)
}

// sync writes the given slice of derived state onto the metadata and reattaches it
func (i *Item) sync(fields Field) {
	if !i.hasMeta {
		return
	}
	DeriveMeta(i.name, i.description, i.glow, i.invisible).Only(fields).Apply(&i.meta, i.markers)
	i.icon.SetItemMeta(i.meta)
	metrics.ItemMetaSyncs.WithLabelValues(fields.String()).Inc()
}

// Icon returns the current icon stack
func (i *Item) Icon() *domain.ItemStack {
	return i.icon
}

// Meta returns a copy of the derived metadata, or false when the icon has none
func (i *Item) Meta() (domain.ItemMeta, bool) {
	if !i.hasMeta {
		return domain.ItemMeta{}, false
	}
	return i.meta.Clone(), true
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) SetName(name string) {
	i.name = name
	i.sync(FieldName)
}

// Description returns the lore lines in rendering order
func (i *Item) Description() []string {
	return slices.Clone(i.description)
}

// SetDescription replaces the lore lines. An empty slice clears the lore.
func (i *Item) SetDescription(description []string) {
	i.description = slices.Clone(description)
	i.sync(FieldLore)
}

func (i *Item) Glow() bool {
	return i.glow
}

// SetGlow records the glow state and, when markers render, attaches or removes the glow marker
func (i *Item) SetGlow(glow bool) {
	i.glow = glow
	i.sync(FieldGlow)
}

func (i *Item) Invisible() bool {
	return i.invisible
}

// SetInvisible records the invisible state and, when markers render, attaches or removes
// the invisibility marker together with the hide-enchants flag
func (i *Item) SetInvisible(invisible bool) {
	i.invisible = invisible
	i.sync(FieldInvisible)
}

// ClickHandler returns the click handler, or false when clicks are inert
func (i *Item) ClickHandler() (ClickHandler, bool) {
	return i.clickHandler, i.clickHandler != nil
}

// SetClickHandler replaces the click handler. nil makes clicks inert.
func (i *Item) SetClickHandler(h ClickHandler) {
	i.clickHandler = h
}

// IsPlayerHead reports whether the item renders a player's head
func (i *Item) IsPlayerHead() bool {
	return i.playerHeadName != ""
}

func (i *Item) PlayerHeadName() string {
	return i.playerHeadName
}

// SetHead replaces the icon, keeping the current amount, and re-derives name, lore and glow
// onto the new icon's metadata.
//
// The invisible marker is not re-derived: Invisible() keeps reporting the recorded state
// while the new icon renders without the marker until SetInvisible is called again.
func (i *Item) SetHead(stack *domain.ItemStack) {
	if stack == nil {
		return
	}
	stack.SetAmount(i.icon.Amount)
	i.icon = stack

	i.loadMeta()
	i.sync(FieldName | FieldLore | FieldGlow)

	i.log.Debug(LogMsgIconReplaced, "material", stack.Material, "player_head", i.playerHeadName)
}
