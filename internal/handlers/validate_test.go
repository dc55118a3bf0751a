package handlers

import (
	"strings"
	"testing"
)

func TestValidateStoreID(t *testing.T) {
	tests := []struct {
		name      string
		storeID   string
		wantError bool
	}{
		{"valid", "demo-store", false},
		{"empty", "", true},
		{"whitespace", "   ", true},
		{"too long", strings.Repeat("a", 101), true},
		{"at limit", strings.Repeat("a", 100), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateStoreID(tt.storeID)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %q", result)
			}
		})
	}
}

func TestValidateVersionName(t *testing.T) {
	tests := []struct {
		name      string
		version   string
		wantError bool
	}{
		{"valid", "summer layout", false},
		{"empty", "", true},
		{"whitespace only", " \t\n", true},
		{"too long", strings.Repeat("v", 201), true},
		{"at limit", strings.Repeat("v", 200), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateVersionName(tt.version)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %q", result)
			}
		})
	}
}

func TestValidateThemeField(t *testing.T) {
	if msg := validateThemeField("Primary color", "#fff", maxColorLen); msg != "" {
		t.Errorf("short value rejected: %q", msg)
	}
	if msg := validateThemeField("Primary color", strings.Repeat("x", maxColorLen+1), maxColorLen); msg == "" {
		t.Error("oversized value accepted")
	}
}
