// Package model defines domain types for tapsave expenses, budgets and statistics.
package model

import (
	"errors"
	"strings"
	"time"
)

// UncategorizedLabel is the bucket name used for expenses without a category.
const UncategorizedLabel = "Sin categoría"

// ErrInvalidAmount is returned when an amount is negative, empty or malformed.
var ErrInvalidAmount = errors.New("invalid amount")

// Category is either a named label or Uncategorized.
// The zero value is Uncategorized.
type Category struct {
	name string
}

// Uncategorized is the category of expenses that were never assigned one.
var Uncategorized = Category{}

// Labeled returns a named category. A blank name yields Uncategorized.
func Labeled(name string) Category {
	return Category{name: strings.TrimSpace(name)}
}

// Name returns the category name and whether the category is named at all.
func (c Category) Name() (string, bool) {
	return c.name, c.name != ""
}

// IsUncategorized reports whether c is the Uncategorized variant.
func (c Category) IsUncategorized() bool {
	return c.name == ""
}

// Label returns the grouping key: the name, or UncategorizedLabel.
func (c Category) Label() string {
	if c.name == "" {
		return UncategorizedLabel
	}
	return c.name
}

func (c Category) String() string {
	return c.Label()
}

// Expense is one logged expense. Amount is never negative.
type Expense struct {
	ID       string
	Amount   float64
	Date     time.Time
	Notes    string
	Category Category
}

// CategoryInfo holds the display attributes of a stored category.
type CategoryInfo struct {
	Name      string
	Icon      string
	Color     string
	IsDefault bool
}

// DefaultCategories are seeded into a fresh store.
func DefaultCategories() []CategoryInfo {
	return []CategoryInfo{
		{Name: "Entretenimiento", Icon: "🎮", Color: "#4ECDC4", IsDefault: true},
		{Name: "Otros", Icon: "⚙️", Color: "#4ECDC4", IsDefault: true},
		{Name: "Comida", Icon: "🍽️", Color: "#4ECDC4", IsDefault: true},
		{Name: "Salud", Icon: "❤️", Color: "#4ECDC4", IsDefault: true},
		{Name: "Transporte", Icon: "🚗", Color: "#4ECDC4", IsDefault: true},
		{Name: "Casa", Icon: "🏠", Color: "#4ECDC4", IsDefault: true},
		{Name: "Compras", Icon: "🛒", Color: "#4ECDC4", IsDefault: true},
		{Name: "Servicios", Icon: "🔧", Color: "#4ECDC4", IsDefault: true},
	}
}
