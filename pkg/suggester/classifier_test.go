package suggester

import (
	"testing"

	"grocery-ai-be/internal/entity"
)

func TestGuessCategory(t *testing.T) {
	tests := []struct {
		name string
		want entity.ItemCategory
	}{
		{"Chicken Breast", entity.CategoryMeat},
		{"whole milk", entity.CategoryDairy},
		{"Broccoli", entity.CategoryProduce},
		{"jasmine rice", entity.CategoryPantry},
		{"orange juice", entity.CategoryProduce}, // "orange" rule fires before "juice"
		{"sparkling water", entity.CategoryBeverages},
		{"tortilla chips", entity.CategorySnacks},
		{"paper towels", entity.CategoryOther},
		{"", entity.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GuessCategory(tt.name)
			if got != tt.want {
				t.Errorf("GuessCategory(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestGuessUnit(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"whole milk", "l"},
		{"jasmine rice", "kg"},
		{"cheddar cheese", "g"},
		{"eggs", "pcs"},
		{"sourdough bread", "pack"},
		{"paper towels", DefaultUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GuessUnit(tt.name)
			if got != tt.want {
				t.Errorf("GuessUnit(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
