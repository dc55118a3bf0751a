// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor models the type-specific block editing form. It is the
// server-side half of the block editor UI: FormFor describes the fields
// a block type exposes, and the Set*/Append/Reset helpers produce
// updated content maps by copy — the caller persists the result through
// BlockStore.UpdateContent. Nothing here touches the database.
package editor

import (
	"fmt"

	"storefront/internal/models"
	"storefront/internal/registry"
)

// FieldKind tells the UI which widget to render for a field.
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldTextarea FieldKind = "textarea"
	FieldNumber   FieldKind = "number"
	FieldToggle   FieldKind = "toggle"
	FieldSelect   FieldKind = "select"
	FieldList     FieldKind = "list"
)

// Field describes one editable content key.
type Field struct {
	Key     string    `json:"key"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Options []string  `json:"options,omitempty"` // for select fields
	Min     int       `json:"min,omitempty"`     // for number fields
	Max     int       `json:"max,omitempty"`
	Entry   []Field   `json:"entry,omitempty"` // per-element fields of a list
}

// Form is the editable form descriptor for one block. Unknown block
// types get an inert placeholder (Unknown = true, no fields) — a signal
// to the UI that no editor exists for the type, not an error.
type Form struct {
	BlockType models.BlockType    `json:"block_type"`
	Title     string              `json:"title"`
	Unknown   bool                `json:"unknown,omitempty"`
	Fields    []Field             `json:"fields"`
	Content   models.BlockContent `json:"content"`
}

// numeric clamp range shared by productCount and postCount.
const (
	countMin = 1
	countMax = 12
)

// FormFor returns the form descriptor for a block, bound to its current
// content.
func FormFor(b models.Block) Form {
	form := Form{
		BlockType: b.Type,
		Title:     registry.TypeName(b.Type),
		Content:   b.Content.Clone(),
	}

	switch b.Type {
	case models.BlockTypeHero:
		form.Fields = []Field{
			{Key: "title", Label: "Title", Kind: FieldText},
			{Key: "subtitle", Label: "Subtitle", Kind: FieldText},
			{Key: "imageUrl", Label: "Image URL", Kind: FieldText},
			{Key: "buttonText", Label: "Button text", Kind: FieldText},
			{Key: "buttonLink", Label: "Button link", Kind: FieldText},
			{Key: "alignment", Label: "Alignment", Kind: FieldSelect, Options: []string{"left", "center", "right"}},
		}
	case models.BlockTypeProductGrid:
		form.Fields = []Field{
			{Key: "title", Label: "Title", Kind: FieldText},
			{Key: "productCount", Label: "Number of products", Kind: FieldNumber, Min: countMin, Max: countMax},
			{Key: "showPrices", Label: "Show prices", Kind: FieldToggle},
		}
	case models.BlockTypeTestimonials:
		form.Fields = []Field{
			{Key: "title", Label: "Title", Kind: FieldText},
			{Key: "testimonials", Label: "Testimonials", Kind: FieldList, Entry: []Field{
				{Key: "name", Label: "Customer name", Kind: FieldText},
				{Key: "text", Label: "Text", Kind: FieldTextarea},
			}},
		}
	case models.BlockTypeCategoryBanner:
		form.Fields = []Field{
			{Key: "title", Label: "Title", Kind: FieldText},
			{Key: "categories", Label: "Categories", Kind: FieldList, Entry: []Field{
				{Key: "name", Label: "Category name", Kind: FieldText},
				{Key: "imageUrl", Label: "Image URL", Kind: FieldText},
			}},
		}
	case models.BlockTypeNewsletter:
		form.Fields = []Field{
			{Key: "title", Label: "Title", Kind: FieldText},
			{Key: "subtitle", Label: "Subtitle", Kind: FieldText},
			{Key: "buttonText", Label: "Button text", Kind: FieldText},
		}
	case models.BlockTypeCustomHTML:
		form.Fields = []Field{
			{Key: "html", Label: "HTML", Kind: FieldTextarea},
		}
	case models.BlockTypeVideo:
		form.Fields = []Field{
			{Key: "title", Label: "Title", Kind: FieldText},
			{Key: "videoUrl", Label: "Video URL", Kind: FieldText},
			{Key: "autoplay", Label: "Autoplay", Kind: FieldToggle},
		}
	case models.BlockTypeInstagram:
		form.Fields = []Field{
			{Key: "title", Label: "Title", Kind: FieldText},
			{Key: "username", Label: "Username", Kind: FieldText},
			{Key: "postCount", Label: "Number of posts", Kind: FieldNumber, Min: countMin, Max: countMax},
		}
	default:
		form.Unknown = true
	}

	return form
}

// SetField returns a copy of the block's content with one key replaced
// or added. The block's own map is never mutated. productCount and
// postCount are clamped into [1,12], matching the form's number inputs.
func SetField(b models.Block, key string, value any) models.BlockContent {
	content := b.Content.Clone()
	if key == "productCount" || key == "postCount" {
		value = clampCount(value)
	}
	content[key] = value
	return content
}

// clampCount forces numeric count values into the allowed range.
// Non-numeric input falls back to the minimum.
func clampCount(value any) int {
	var n int
	switch v := value.(type) {
	case int:
		n = v
	case float64:
		n = int(v)
	default:
		return countMin
	}
	if n < countMin {
		return countMin
	}
	if n > countMax {
		return countMax
	}
	return n
}

// SetListEntryField returns a copy of the block's content in which one
// property of one list entry is replaced. The list and the entry are
// copied — no aliasing of the original content.
func SetListEntryField(b models.Block, listKey string, index int, entryKey string, value any) (models.BlockContent, error) {
	content := b.Content.Clone()

	list, ok := content[listKey].([]any)
	if !ok {
		return nil, fmt.Errorf("content key %q is not a list: %w", listKey, models.ErrValidation)
	}
	if index < 0 || index >= len(list) {
		return nil, fmt.Errorf("list entry %d out of range: %w", index, models.ErrValidation)
	}

	entry, ok := list[index].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("list entry %d is not an object: %w", index, models.ErrValidation)
	}
	entry[entryKey] = value

	return content, nil
}

// AppendListEntry returns a copy of the block's content with one new
// placeholder entry appended to the named list. Only the registry's
// list-bearing types support it. There is deliberately no remove-entry
// counterpart — the product only defines adding entries so far.
func AppendListEntry(b models.Block, listKey string) (models.BlockContent, error) {
	var placeholder map[string]any
	switch {
	case b.Type == models.BlockTypeTestimonials && listKey == "testimonials":
		placeholder = map[string]any{"name": "New customer", "text": "Customer feedback here"}
	case b.Type == models.BlockTypeCategoryBanner && listKey == "categories":
		placeholder = map[string]any{"name": "New category", "imageUrl": "https://placehold.co/400x300"}
	default:
		return nil, fmt.Errorf("block type %q has no %q list: %w", b.Type, listKey, models.ErrValidation)
	}

	content := b.Content.Clone()
	list, _ := content[listKey].([]any)
	content[listKey] = append(list, placeholder)
	return content, nil
}

// Reset returns the registry's default content for the block's type,
// discarding all prior edits.
func Reset(b models.Block) models.BlockContent {
	return registry.DefaultContent(b.Type)
}
