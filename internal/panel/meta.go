package panel

import (
	"slices"
	"strings"

	"github.com/osse101/PanelKit_Go/internal/domain"
	"github.com/osse101/PanelKit_Go/internal/render"
)

// Field selects a slice of an item's derived display state
type Field uint8

const (
	FieldName Field = 1 << iota
	FieldLore
	FieldGlow
	FieldInvisible

	FieldAll = FieldName | FieldLore | FieldGlow | FieldInvisible
)

var fieldNames = []struct {
	field Field
	name  string
}{
	{FieldName, "name"},
	{FieldLore, "lore"},
	{FieldGlow, "glow"},
	{FieldInvisible, "invisible"},
}

func (f Field) String() string {
	var parts []string
	for _, fn := range fieldNames {
		if f&fn.field != 0 {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// tooltipFlags keep the rendered tooltip down to name, lore and intended visuals
var tooltipFlags = []domain.ItemFlag{
	domain.HideAttributes,
	domain.HideDestroys,
	domain.HidePlacedOn,
	domain.HideEnchants,
}

// MetaPatch is the display state an item derives onto its metadata.
// Only the selected Fields are written by Apply.
type MetaPatch struct {
	Fields      Field
	DisplayName string
	Lore        []string
	Glow        bool
	Invisible   bool
}

// DeriveMeta computes the full metadata patch for the given display state
func DeriveMeta(name string, description []string, glow, invisible bool) MetaPatch {
	return MetaPatch{
		Fields:      FieldAll,
		DisplayName: name,
		Lore:        slices.Clone(description),
		Glow:        glow,
		Invisible:   invisible,
	}
}

// Only narrows the patch to the given fields
func (p MetaPatch) Only(fields Field) MetaPatch {
	p.Fields &= fields
	return p
}

// Has reports whether the patch writes field f
func (p MetaPatch) Has(f Field) bool {
	return p.Fields&f != 0
}

// Apply writes the patch onto meta. Glow and invisible are marker backed and are
// skipped entirely when markers are disabled.
func (p MetaPatch) Apply(meta *domain.ItemMeta, markers render.Markers) {
	if p.Has(FieldName) {
		meta.DisplayName = p.DisplayName
	}
	if p.Has(FieldLore) {
		meta.Lore = slices.Clone(p.Lore)
	}

	if !markers.Enabled() {
		return
	}

	if p.Has(FieldGlow) {
		if p.Glow {
			markers.Attach(meta, domain.EnchantLure, GlowLevel)
		} else {
			markers.Detach(meta, domain.EnchantLure)
		}
	}

	if p.Has(FieldInvisible) {
		// The curse marker must render for invisibility to show, so enchant text is unhidden.
		if p.Invisible {
			markers.Attach(meta, domain.EnchantVanishingCurse, InvisibleLevel)
			meta.RemoveItemFlags(domain.HideEnchants)
		} else {
			markers.Detach(meta, domain.EnchantVanishingCurse)
			meta.AddItemFlags(domain.HideEnchants)
		}
	}
}
