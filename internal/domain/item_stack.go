package domain

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Material identifies the kind of an item stack (e.g. "diamond_sword")
type Material string

const (
	MaterialAir        Material = "air"
	MaterialPaper      Material = "paper"
	MaterialPlayerHead Material = "player_head"
	MaterialBarrier    Material = "barrier"
)

// SupportsMeta reports whether stacks of this material can carry display metadata.
// Empty stacks (air) never do.
func (m Material) SupportsMeta() bool {
	return m != "" && m != MaterialAir
}

// Title renders the material id as a human readable name ("diamond_sword" -> "Diamond Sword")
func (m Material) Title() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(m), "_", " "))
}

// ItemFlag hides a section of an item's tooltip
type ItemFlag int

const (
	HideAttributes ItemFlag = iota
	HideDestroys
	HidePlacedOn
	HideEnchants
)

// Enchantment is a named marker attached to item metadata
type Enchantment string

const (
	// EnchantLure is the cosmetic marker used for the glow state
	EnchantLure Enchantment = "lure"
	// EnchantVanishingCurse is the cosmetic marker used for the invisible state
	EnchantVanishingCurse Enchantment = "vanishing_curse"
)

// EnchantLevel is the power of an attached enchantment.
// Unsafe marks levels outside the enchantment's natural range.
type EnchantLevel struct {
	Level  int
	Unsafe bool
}

// HeadOwner identifies the profile a player head renders
type HeadOwner struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ItemMeta is the display metadata of an item stack
type ItemMeta struct {
	DisplayName string                       `json:"display_name,omitempty"`
	Lore        []string                     `json:"lore,omitempty"`
	Enchants    map[Enchantment]EnchantLevel `json:"enchants,omitempty"`
	Flags       map[ItemFlag]bool            `json:"flags,omitempty"`
	Owner       *HeadOwner                   `json:"owner,omitempty"`
}

// AddItemFlags sets the given flags
func (m *ItemMeta) AddItemFlags(flags ...ItemFlag) {
	if m.Flags == nil {
		m.Flags = make(map[ItemFlag]bool, len(flags))
	}
	for _, f := range flags {
		m.Flags[f] = true
	}
}

// RemoveItemFlags clears the given flags
func (m *ItemMeta) RemoveItemFlags(flags ...ItemFlag) {
	for _, f := range flags {
		delete(m.Flags, f)
	}
}

// HasItemFlag reports whether the flag is set
func (m ItemMeta) HasItemFlag(f ItemFlag) bool {
	return m.Flags[f]
}

// AddEnchant attaches an enchantment at the given level.
// ignoreLevelRestriction allows levels outside the natural range, such as 0.
func (m *ItemMeta) AddEnchant(e Enchantment, level int, ignoreLevelRestriction bool) bool {
	if level < 1 && !ignoreLevelRestriction {
		return false
	}
	if m.Enchants == nil {
		m.Enchants = make(map[Enchantment]EnchantLevel)
	}
	m.Enchants[e] = EnchantLevel{Level: level, Unsafe: ignoreLevelRestriction}
	return true
}

// RemoveEnchant detaches an enchantment, returning whether it was present
func (m *ItemMeta) RemoveEnchant(e Enchantment) bool {
	if _, ok := m.Enchants[e]; !ok {
		return false
	}
	delete(m.Enchants, e)
	return true
}

// HasEnchant reports whether the enchantment is attached
func (m ItemMeta) HasEnchant(e Enchantment) bool {
	_, ok := m.Enchants[e]
	return ok
}

// Clone returns a deep copy of the metadata
func (m ItemMeta) Clone() ItemMeta {
	out := ItemMeta{
		DisplayName: m.DisplayName,
		Lore:        slices.Clone(m.Lore),
	}
	if m.Enchants != nil {
		out.Enchants = make(map[Enchantment]EnchantLevel, len(m.Enchants))
		for k, v := range m.Enchants {
			out.Enchants[k] = v
		}
	}
	if m.Flags != nil {
		out.Flags = make(map[ItemFlag]bool, len(m.Flags))
		for k, v := range m.Flags {
			out.Flags[k] = v
		}
	}
	if m.Owner != nil {
		owner := *m.Owner
		out.Owner = &owner
	}
	return out
}

// ItemStack is a display stack: a material, a quantity and optional metadata
type ItemStack struct {
	Material Material `json:"material"`
	Amount   int      `json:"amount"`

	meta *ItemMeta
}

// NewItemStack creates a stack of the given material and amount
func NewItemStack(material Material, amount int) *ItemStack {
	return &ItemStack{Material: material, Amount: amount}
}

// ItemMeta returns a detached copy of the stack's metadata.
// The second value is false when the material does not support metadata.
func (s *ItemStack) ItemMeta() (ItemMeta, bool) {
	if !s.Material.SupportsMeta() {
		return ItemMeta{}, false
	}
	if s.meta == nil {
		return ItemMeta{}, true
	}
	return s.meta.Clone(), true
}

// SetItemMeta attaches a copy of meta to the stack. Ignored for materials without metadata.
func (s *ItemStack) SetItemMeta(meta ItemMeta) {
	if !s.Material.SupportsMeta() {
		return
	}
	m := meta.Clone()
	s.meta = &m
}

// SetAmount sets the stack quantity
func (s *ItemStack) SetAmount(amount int) {
	s.Amount = amount
}

// Clone returns a deep copy of the stack
func (s *ItemStack) Clone() *ItemStack {
	out := &ItemStack{Material: s.Material, Amount: s.Amount}
	if s.meta != nil {
		m := s.meta.Clone()
		out.meta = &m
	}
	return out
}
