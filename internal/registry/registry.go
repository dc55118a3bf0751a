// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package registry is the static lookup of display labels and default
// content per block type. It is pure and total: unknown tags echo back
// as their own label and yield an empty content map, so the editor and
// preview can degrade gracefully instead of rejecting data written by a
// newer release.
package registry

import "storefront/internal/models"

// typeNames maps each known block type to its display label.
var typeNames = map[models.BlockType]string{
	models.BlockTypeHero:           "Hero Section",
	models.BlockTypeProductGrid:    "Product Grid",
	models.BlockTypeTestimonials:   "Customer Testimonials",
	models.BlockTypeCategoryBanner: "Category Banner",
	models.BlockTypeNewsletter:     "Newsletter Signup",
	models.BlockTypeCustomHTML:     "Custom HTML",
	models.BlockTypeVideo:          "Video",
	models.BlockTypeInstagram:      "Instagram Feed",
}

// typeOrder is the order block types are offered in the block selector.
var typeOrder = []models.BlockType{
	models.BlockTypeHero,
	models.BlockTypeProductGrid,
	models.BlockTypeTestimonials,
	models.BlockTypeCategoryBanner,
	models.BlockTypeNewsletter,
	models.BlockTypeCustomHTML,
	models.BlockTypeVideo,
	models.BlockTypeInstagram,
}

// TypeName returns the display label for a block type. Unknown tags are
// returned verbatim rather than treated as an error.
func TypeName(t models.BlockType) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return string(t)
}

// Known reports whether the tag belongs to the closed block-type set.
func Known(t models.BlockType) bool {
	_, ok := typeNames[t]
	return ok
}

// Types returns all known block types in selector order.
func Types() []models.BlockType {
	out := make([]models.BlockType, len(typeOrder))
	copy(out, typeOrder)
	return out
}

// DefaultContent returns a fresh default content map for a block type.
// The map is built anew on every call — callers may mutate it freely.
// It seeds newly added blocks and serves as the merge base when the
// preview renders partially specified content. Unknown tags yield an
// empty map.
func DefaultContent(t models.BlockType) models.BlockContent {
	switch t {
	case models.BlockTypeHero:
		return models.BlockContent{
			"title":      "Welcome to our store",
			"subtitle":   "Discover our amazing products",
			"buttonText": "Shop Now",
			"buttonLink": "#",
			"imageUrl":   "https://placehold.co/1200x600",
			"alignment":  "center",
		}
	case models.BlockTypeProductGrid:
		return models.BlockContent{
			"title":        "Featured Products",
			"productCount": 4,
			"showPrices":   true,
		}
	case models.BlockTypeTestimonials:
		return models.BlockContent{
			"title": "Customer Testimonials",
			"testimonials": []any{
				map[string]any{"name": "Sarah M.", "text": "Great products and excellent service!"},
				map[string]any{"name": "Omar K.", "text": "Fast delivery and high quality products."},
			},
		}
	case models.BlockTypeCategoryBanner:
		return models.BlockContent{
			"title": "Shop by Category",
			"categories": []any{
				map[string]any{"name": "Electronics", "imageUrl": "https://placehold.co/400x300"},
				map[string]any{"name": "Clothing", "imageUrl": "https://placehold.co/400x300"},
			},
		}
	case models.BlockTypeNewsletter:
		return models.BlockContent{
			"title":      "Subscribe to our newsletter",
			"subtitle":   "Get the latest offers and news",
			"buttonText": "Subscribe",
		}
	case models.BlockTypeCustomHTML:
		return models.BlockContent{
			"html": "<div><h2>Custom heading</h2><p>Sample text you can edit.</p></div>",
		}
	case models.BlockTypeVideo:
		return models.BlockContent{
			"title":    "Watch the video",
			"videoUrl": "https://www.youtube.com/embed/dQw4w9WgXcQ",
			"autoplay": false,
		}
	case models.BlockTypeInstagram:
		return models.BlockContent{
			"title":     "Follow us on Instagram",
			"username":  "@yourstore",
			"postCount": 6,
		}
	default:
		return models.BlockContent{}
	}
}
