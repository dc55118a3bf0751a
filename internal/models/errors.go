// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "errors"

// Sentinel errors shared across the customization engine. Stores and the
// editor wrap these with context via fmt.Errorf("...: %w", ...); HTTP
// handlers map them to status codes with errors.Is. Anything that is not
// one of these is a persistence failure and surfaces as a 500.
var (
	// ErrNotFound reports an operation on an id that is not in scope
	// (missing block, theme, or version row).
	ErrNotFound = errors.New("not found")

	// ErrValidation reports rejected input: a blank version name, a
	// reorder list that is not a permutation of the store's blocks, or
	// an out-of-range numeric field.
	ErrValidation = errors.New("validation failed")
)
