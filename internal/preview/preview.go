// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package preview renders the read-only storefront composition from a
// store's block list and theme. Blocks render in block_order; inactive
// blocks contribute nothing; unknown block types render a visible
// placeholder instead of failing; partially specified content is merged
// over the registry defaults so a missing field never breaks a render.
package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"

	"storefront/internal/models"
	"storefront/internal/registry"
)

// Renderer compiles the block templates once and renders previews from
// in-memory state. It holds no per-store state and is safe for
// concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// New compiles the built-in block templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("storefront").Funcs(template.FuncMap{
		"seq": seq,
	}).Parse(pageTemplates)
	if err != nil {
		return nil, fmt.Errorf("compile preview templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// pageData feeds the outer page template.
type pageData struct {
	Theme  *models.Theme
	Blocks []template.HTML
	Empty  bool
}

// Render produces the full preview document. A nil theme renders with
// the zero-value styles (the handler layer ensures a theme exists).
func (r *Renderer) Render(blocks []models.Block, theme *models.Theme) ([]byte, error) {
	ordered := make([]models.Block, len(blocks))
	copy(ordered, blocks)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	data := pageData{Theme: theme}
	for _, b := range ordered {
		if !b.IsActive {
			continue
		}
		rendered, err := r.renderBlock(b)
		if err != nil {
			return nil, fmt.Errorf("render %s block: %w", b.Type, err)
		}
		data.Blocks = append(data.Blocks, rendered)
	}
	data.Empty = len(data.Blocks) == 0

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return nil, fmt.Errorf("render preview page: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderBlock renders a single block in isolation, used by the editor's
// per-block live preview.
func (r *Renderer) RenderBlock(b models.Block) ([]byte, error) {
	html, err := r.renderBlock(b)
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}

// renderBlock merges registry defaults under the block's content and
// dispatches to the type's template. Unknown types get the visible
// placeholder template.
func (r *Renderer) renderBlock(b models.Block) (template.HTML, error) {
	var buf bytes.Buffer

	if !registry.Known(b.Type) {
		if err := r.tmpl.ExecuteTemplate(&buf, "unknownBlock", string(b.Type)); err != nil {
			return "", err
		}
		return template.HTML(buf.String()), nil
	}

	merged := registry.DefaultContent(b.Type)
	for k, v := range b.Content {
		merged[k] = v
	}

	if b.Type == models.BlockTypeCustomHTML {
		// The html field is passed through as markup, but only after
		// sanitization — merchant content must not be able to inject
		// script into the storefront.
		raw, _ := merged["html"].(string)
		merged["html"] = template.HTML(sanitizeHTML(raw))
	}

	if err := r.tmpl.ExecuteTemplate(&buf, string(b.Type), map[string]any(merged)); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// seq returns 0..n-1 for template iteration over placeholder cells.
// Content maps deliver counts as int (registry defaults) or float64
// (JSON round trips); anything else iterates zero times.
func seq(n any) []int {
	count := 0
	switch v := n.(type) {
	case int:
		count = v
	case float64:
		count = int(v)
	}
	if count < 0 {
		count = 0
	}
	out := make([]int, count)
	for i := range out {
		out[i] = i
	}
	return out
}

// pageTemplates holds the outer document and one define per block type.
// Theme values land in a CSS custom-property scope; html/template's CSS
// escaping neutralizes hostile color strings instead of crashing.
const pageTemplates = `
{{define "page"}}<!DOCTYPE html>
<html{{if and .Theme .Theme.IsDarkMode}} class="dark"{{end}}>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>
{{if .Theme}}:root {
	--primary: {{.Theme.PrimaryColor}};
	--secondary: {{.Theme.SecondaryColor}};
	--accent: {{.Theme.AccentColor}};
	--button-radius: {{.Theme.ButtonRadius}}px;
}
body { font-family: {{.Theme.FontFamily}}, system-ui, sans-serif; }
{{end}}body { margin: 0; color: #1f2937; }
html.dark body { background: #0f172a; color: #e2e8f0; }
.block { padding: 3rem 1.5rem; }
.btn { display: inline-block; padding: 0.6rem 1.4rem; background: var(--primary, #333);
	color: #fff; text-decoration: none; border: 0; border-radius: var(--button-radius, 6px); }
.btn-pill { border-radius: 999px; }
.btn-square { border-radius: 0; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 1rem; }
.cell { background: #f1f5f9; border-radius: 8px; min-height: 140px; }
html.dark .cell { background: #1e293b; }
.placeholder { padding: 3rem 1.5rem; text-align: center; color: #64748b;
	border: 1px dashed #cbd5e1; margin: 1rem; border-radius: 8px; }
</style>
</head>
<body>
{{if .Empty}}<div class="placeholder preview-empty">Preview is empty. Add blocks to design your storefront.</div>
{{else}}{{range .Blocks}}{{.}}
{{end}}{{end}}</body>
</html>{{end}}

{{define "hero"}}<section class="block hero" style="text-align: {{.alignment}}; background-image: url('{{.imageUrl}}'); background-size: cover;">
<h1>{{.title}}</h1>
<p>{{.subtitle}}</p>
<a class="btn" href="{{.buttonLink}}">{{.buttonText}}</a>
</section>{{end}}

{{define "productGrid"}}<section class="block product-grid">
<h2>{{.title}}</h2>
<div class="grid">
{{range seq .productCount}}<div class="cell product-cell">{{if $.showPrices}}<span class="price">—</span>{{end}}</div>
{{end}}</div>
</section>{{end}}

{{define "testimonials"}}<section class="block testimonials">
<h2>{{.title}}</h2>
{{range .testimonials}}<blockquote>
<p>{{.text}}</p>
<footer>{{.name}}</footer>
</blockquote>
{{end}}</section>{{end}}

{{define "categoryBanner"}}<section class="block category-banner">
<h2>{{.title}}</h2>
<div class="grid">
{{range .categories}}<figure class="cell">
<img src="{{.imageUrl}}" alt="{{.name}}">
<figcaption>{{.name}}</figcaption>
</figure>
{{end}}</div>
</section>{{end}}

{{define "newsletter"}}<section class="block newsletter">
<h2>{{.title}}</h2>
<p>{{.subtitle}}</p>
<form><input type="email" placeholder="you@example.com"><button class="btn" type="submit">{{.buttonText}}</button></form>
</section>{{end}}

{{define "customHtml"}}<section class="block custom-html">
{{.html}}
</section>{{end}}

{{define "video"}}<section class="block video">
<h2>{{.title}}</h2>
<iframe src="{{.videoUrl}}{{if .autoplay}}?autoplay=1{{end}}" width="560" height="315" frameborder="0" allowfullscreen></iframe>
</section>{{end}}

{{define "instagram"}}<section class="block instagram">
<h2>{{.title}}</h2>
<p>{{.username}}</p>
<div class="grid">
{{range seq .postCount}}<div class="cell instagram-cell"></div>
{{end}}</div>
</section>{{end}}

{{define "unknownBlock"}}<div class="placeholder unknown-block">unknown block type: {{.}}</div>{{end}}
`
