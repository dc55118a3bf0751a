package models

import (
	"encoding/json"
	"testing"
)

func TestBlockContentScanValue(t *testing.T) {
	original := BlockContent{
		"title":        "Welcome",
		"productCount": float64(4),
		"showPrices":   true,
	}

	val, err := original.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var scanned BlockContent
	if err := scanned.Scan(val); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if scanned["title"] != "Welcome" {
		t.Errorf("title: got %v", scanned["title"])
	}
	if scanned["productCount"] != float64(4) {
		t.Errorf("productCount: got %v", scanned["productCount"])
	}
	if scanned["showPrices"] != true {
		t.Errorf("showPrices: got %v", scanned["showPrices"])
	}
}

func TestBlockContentScanNull(t *testing.T) {
	var c BlockContent
	if err := c.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if c == nil {
		t.Error("expected empty map, got nil")
	}
	if len(c) != 0 {
		t.Errorf("expected empty map, got %v", c)
	}
}

func TestBlockContentValueNil(t *testing.T) {
	var c BlockContent
	val, err := c.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if string(val.([]byte)) != "{}" {
		t.Errorf("nil content: got %s, want {}", val)
	}
}

func TestBlockContentCloneIsDeep(t *testing.T) {
	original := BlockContent{
		"title": "Testimonials",
		"testimonials": []any{
			map[string]any{"name": "Sarah M.", "text": "Great products!"},
		},
	}

	clone := original.Clone()
	clone["title"] = "Changed"
	clone["testimonials"].([]any)[0].(map[string]any)["name"] = "Someone Else"

	if original["title"] != "Testimonials" {
		t.Errorf("clone mutation leaked into original title: %v", original["title"])
	}
	entry := original["testimonials"].([]any)[0].(map[string]any)
	if entry["name"] != "Sarah M." {
		t.Errorf("clone mutation leaked into original list entry: %v", entry["name"])
	}
}

func TestBlockJSONShape(t *testing.T) {
	b := Block{Type: BlockTypeHero, Order: 2, IsActive: true}
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m["block_type"] != "hero" {
		t.Errorf("block_type: got %v", m["block_type"])
	}
	if m["block_order"] != float64(2) {
		t.Errorf("block_order: got %v", m["block_order"])
	}
}
