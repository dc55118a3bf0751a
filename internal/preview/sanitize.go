// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// sanitize.go strips dangerous markup from custom HTML blocks before
// they are rendered verbatim. Block content is merchant-editable and
// may pass through support staff or imports, so the raw passthrough the
// block type promises is limited to a user-generated-content subset:
// structural and formatting tags survive, scripts and event handlers do
// not.
package preview

import "github.com/microcosm-cc/bluemonday"

// htmlPolicy is the configured bluemonday policy, reused across calls.
// UGC plus the class attribute so custom blocks can hook into the
// storefront stylesheet.
var htmlPolicy = bluemonday.UGCPolicy().AllowAttrs("class").Globally()

// sanitizeHTML returns the markup with everything outside the policy
// removed.
func sanitizeHTML(source string) string {
	return htmlPolicy.Sanitize(source)
}
