package runner

import (
	"unicode/utf8"

	"github.com/vovakirdan/hurdle/internal/config"
	"github.com/vovakirdan/hurdle/internal/core"
)

// Category is an obstacle size class.
type Category int

const (
	CategorySmall Category = iota
	CategoryMedium
	CategoryLarge
	CategoryHuge
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategorySmall:
		return "small"
	case CategoryMedium:
		return "medium"
	case CategoryLarge:
		return "large"
	case CategoryHuge:
		return "huge"
	default:
		return "unknown"
	}
}

// CategoryShape is the fixed geometry and look of a category.
type CategoryShape struct {
	Name           string
	Width          float64
	Height         float64
	VerticalOffset float64 // lift of the obstacle's bottom above the ground line
	Glyph          rune
	Color          core.Color
}

// Catalog holds one shape per category, indexed by Category.
type Catalog [config.CategoryCount]CategoryShape

// NewCatalog builds the catalog from configuration, in order small, medium,
// large, huge. The config is expected to be validated.
func NewCatalog(cats []config.Category) Catalog {
	var c Catalog
	for i := range c {
		if i >= len(cats) {
			break
		}
		glyph, _ := utf8.DecodeRuneInString(cats[i].Glyph)
		c[i] = CategoryShape{
			Name:           cats[i].Name,
			Width:          cats[i].Width,
			Height:         cats[i].Height,
			VerticalOffset: cats[i].VerticalOffset,
			Glyph:          glyph,
			Color:          core.ParseColor(cats[i].Color),
		}
	}
	return c
}

// Shape returns the shape of a category.
func (c Catalog) Shape(cat Category) CategoryShape {
	return c[cat]
}
