package editor

import (
	"errors"
	"testing"

	"storefront/internal/models"
	"storefront/internal/registry"
)

func heroBlock() models.Block {
	return models.Block{
		Type:    models.BlockTypeHero,
		Content: registry.DefaultContent(models.BlockTypeHero),
	}
}

func TestSetFieldCopiesContent(t *testing.T) {
	b := heroBlock()

	updated := SetField(b, "title", "Big summer sale")

	if updated["title"] != "Big summer sale" {
		t.Errorf("updated title: got %v", updated["title"])
	}
	if b.Content["title"] != "Welcome to our store" {
		t.Errorf("original content mutated: %v", b.Content["title"])
	}
	// Untouched keys carried over.
	if updated["subtitle"] != b.Content["subtitle"] {
		t.Errorf("subtitle lost: %v", updated["subtitle"])
	}
}

func TestSetFieldAddsNewKey(t *testing.T) {
	b := models.Block{Type: models.BlockTypeHero, Content: models.BlockContent{}}
	updated := SetField(b, "title", "Hello")
	if updated["title"] != "Hello" {
		t.Errorf("got %v", updated["title"])
	}
}

func TestSetFieldClampsCounts(t *testing.T) {
	grid := models.Block{Type: models.BlockTypeProductGrid, Content: models.BlockContent{}}

	if got := SetField(grid, "productCount", 40)["productCount"]; got != 12 {
		t.Errorf("clamp high: got %v, want 12", got)
	}
	if got := SetField(grid, "productCount", 0)["productCount"]; got != 1 {
		t.Errorf("clamp low: got %v, want 1", got)
	}
	// JSON numbers arrive as float64.
	if got := SetField(grid, "productCount", float64(7))["productCount"]; got != 7 {
		t.Errorf("float64 passthrough: got %v, want 7", got)
	}
	if got := SetField(grid, "productCount", "nonsense")["productCount"]; got != 1 {
		t.Errorf("non-numeric: got %v, want 1", got)
	}
}

func TestSetListEntryFieldNoAliasing(t *testing.T) {
	b := models.Block{
		Type:    models.BlockTypeTestimonials,
		Content: registry.DefaultContent(models.BlockTypeTestimonials),
	}

	updated, err := SetListEntryField(b, "testimonials", 0, "name", "Layla H.")
	if err != nil {
		t.Fatalf("SetListEntryField: %v", err)
	}

	newEntry := updated["testimonials"].([]any)[0].(map[string]any)
	if newEntry["name"] != "Layla H." {
		t.Errorf("updated entry name: got %v", newEntry["name"])
	}
	// Sibling property of the same entry is preserved.
	if newEntry["text"] == "" || newEntry["text"] == nil {
		t.Error("entry text lost during edit")
	}

	oldEntry := b.Content["testimonials"].([]any)[0].(map[string]any)
	if oldEntry["name"] != "Sarah M." {
		t.Errorf("original list entry mutated: %v", oldEntry["name"])
	}
}

func TestSetListEntryFieldOutOfRange(t *testing.T) {
	b := models.Block{
		Type:    models.BlockTypeTestimonials,
		Content: registry.DefaultContent(models.BlockTypeTestimonials),
	}

	if _, err := SetListEntryField(b, "testimonials", 9, "name", "x"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("out of range: expected ErrValidation, got %v", err)
	}
	if _, err := SetListEntryField(b, "title", 0, "name", "x"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("non-list key: expected ErrValidation, got %v", err)
	}
}

func TestAppendListEntryPlaceholders(t *testing.T) {
	testimonials := models.Block{
		Type:    models.BlockTypeTestimonials,
		Content: registry.DefaultContent(models.BlockTypeTestimonials),
	}

	updated, err := AppendListEntry(testimonials, "testimonials")
	if err != nil {
		t.Fatalf("AppendListEntry: %v", err)
	}
	list := updated["testimonials"].([]any)
	if len(list) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(list))
	}
	added := list[2].(map[string]any)
	if added["name"] != "New customer" {
		t.Errorf("placeholder name: got %v", added["name"])
	}

	banner := models.Block{
		Type:    models.BlockTypeCategoryBanner,
		Content: registry.DefaultContent(models.BlockTypeCategoryBanner),
	}
	updated, err = AppendListEntry(banner, "categories")
	if err != nil {
		t.Fatalf("AppendListEntry categories: %v", err)
	}
	cats := updated["categories"].([]any)
	added = cats[len(cats)-1].(map[string]any)
	if added["name"] != "New category" {
		t.Errorf("placeholder category: got %v", added["name"])
	}

	// Original untouched.
	if len(testimonials.Content["testimonials"].([]any)) != 2 {
		t.Error("append mutated the original block content")
	}
}

func TestAppendListEntryWrongType(t *testing.T) {
	b := heroBlock()
	if _, err := AppendListEntry(b, "testimonials"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	b := heroBlock()
	b.Content["title"] = "Edited"
	b.Content["extra"] = "junk"

	reset := Reset(b)
	if reset["title"] != "Welcome to our store" {
		t.Errorf("reset title: got %v", reset["title"])
	}
	if _, ok := reset["extra"]; ok {
		t.Error("reset kept an edited extra key")
	}
}

func TestFormForKnownType(t *testing.T) {
	form := FormFor(heroBlock())
	if form.Unknown {
		t.Error("hero form marked unknown")
	}
	if form.Title != "Hero Section" {
		t.Errorf("form title: got %q", form.Title)
	}
	if len(form.Fields) == 0 {
		t.Fatal("hero form has no fields")
	}
	if form.Fields[0].Key != "title" || form.Fields[0].Kind != FieldText {
		t.Errorf("first field: %+v", form.Fields[0])
	}
}

func TestFormForListType(t *testing.T) {
	form := FormFor(models.Block{
		Type:    models.BlockTypeTestimonials,
		Content: registry.DefaultContent(models.BlockTypeTestimonials),
	})
	var listField *Field
	for i := range form.Fields {
		if form.Fields[i].Kind == FieldList {
			listField = &form.Fields[i]
		}
	}
	if listField == nil {
		t.Fatal("testimonials form has no list field")
	}
	if len(listField.Entry) != 2 {
		t.Errorf("list entry fields: got %d, want 2", len(listField.Entry))
	}
}

func TestFormForUnknownTypeIsInertPlaceholder(t *testing.T) {
	form := FormFor(models.Block{Type: "countdown", Content: models.BlockContent{"x": 1}})
	if !form.Unknown {
		t.Error("expected unknown placeholder form")
	}
	if len(form.Fields) != 0 {
		t.Errorf("placeholder form has fields: %v", form.Fields)
	}
	if form.Title != "countdown" {
		t.Errorf("placeholder title: got %q, want the raw tag", form.Title)
	}
}
