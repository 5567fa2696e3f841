package panel

import (
	"slices"

	"github.com/osse101/PanelKit_Go/internal/domain"
)

// Snapshot is the read-only state an Item is built from
type Snapshot interface {
	Icon() *domain.ItemStack
	Amount() int
	PlayerHeadName() string
	ClickHandler() ClickHandler
	Name() string
	Description() []string
	Glow() bool
	Invisible() bool
}

// Builder assembles the initial state of an Item
type Builder struct {
	icon           *domain.ItemStack
	amount         int
	playerHeadName string
	clickHandler   ClickHandler
	name           string
	nameSet        bool
	description    []string
	glow           bool
	invisible      bool
}

// NewBuilder returns a builder for an empty item
func NewBuilder() *Builder {
	return &Builder{amount: DefaultAmount}
}

// WithIcon sets the icon stack. The built item takes ownership of it.
func (b *Builder) WithIcon(icon *domain.ItemStack) *Builder {
	b.icon = icon
	return b
}

// WithMaterial sets the icon to a fresh stack of the given material
func (b *Builder) WithMaterial(material domain.Material) *Builder {
	return b.WithIcon(domain.NewItemStack(material, b.amount))
}

// WithPlayerHead makes the icon a player head for the named player.
// The name also becomes the item name unless one is set.
func (b *Builder) WithPlayerHead(playerName string) *Builder {
	b.playerHeadName = playerName
	b.icon = domain.NewItemStack(domain.MaterialPlayerHead, b.amount)
	if !b.nameSet {
		b.name = playerName
	}
	return b
}

func (b *Builder) WithAmount(amount int) *Builder {
	b.amount = amount
	return b
}

func (b *Builder) WithClickHandler(h ClickHandler) *Builder {
	b.clickHandler = h
	return b
}

func (b *Builder) WithName(name string) *Builder {
	b.name = name
	b.nameSet = true
	return b
}

func (b *Builder) WithDescription(lines ...string) *Builder {
	b.description = append(b.description, lines...)
	return b
}

func (b *Builder) WithGlow(glow bool) *Builder {
	b.glow = glow
	return b
}

func (b *Builder) WithInvisible(invisible bool) *Builder {
	b.invisible = invisible
	return b
}

// Build creates the Item
func (b *Builder) Build(opts ...ItemOption) *Item {
	return NewItem(b, opts...)
}

func (b *Builder) Icon() *domain.ItemStack {
	if b.icon == nil {
		return domain.NewItemStack(domain.MaterialAir, b.amount)
	}
	return b.icon
}

func (b *Builder) Amount() int                { return b.amount }
func (b *Builder) PlayerHeadName() string     { return b.playerHeadName }
func (b *Builder) ClickHandler() ClickHandler { return b.clickHandler }
func (b *Builder) Glow() bool                 { return b.glow }
func (b *Builder) Invisible() bool            { return b.invisible }

// Name returns the configured name, or the icon material's title when none was given
func (b *Builder) Name() string {
	if b.name == "" && !b.nameSet && b.icon != nil && b.icon.Material.SupportsMeta() {
		return b.icon.Material.Title()
	}
	return b.name
}

func (b *Builder) Description() []string {
	return slices.Clone(b.description)
}

// Empty returns an item with no icon, name or behaviour
func Empty(opts ...ItemOption) *Item {
	return NewBuilder().Build(opts...)
}
