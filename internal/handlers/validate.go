package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for customization inputs.
const (
	maxStoreIDLen     = 100
	maxVersionNameLen = 200
	maxColorLen       = 50
	maxFontFamilyLen  = 200
)

// validateStoreID checks a store identifier from the URL path.
func validateStoreID(storeID string) string {
	if strings.TrimSpace(storeID) == "" {
		return "Store id is required."
	}
	if utf8.RuneCountInString(storeID) > maxStoreIDLen {
		return "Store id is too long (max 100 characters)."
	}
	return ""
}

// validateVersionName checks a saved-version name and returns the first
// error found. Blank names are rejected by the store layer too — this
// gives the client a friendlier message earlier.
func validateVersionName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Version name is required."
	}
	if utf8.RuneCountInString(name) > maxVersionNameLen {
		return "Version name is too long (max 200 characters)."
	}
	return ""
}

// validateThemeField checks the free-text theme fields for length.
// Colors and font families are stored verbatim and escaped at render
// time, so only size is enforced here.
func validateThemeField(label, value string, max int) string {
	if utf8.RuneCountInString(value) > max {
		return label + " is too long."
	}
	return ""
}
