package entity

import (
	"time"

	"github.com/google/uuid"
)

type ItemCategory string

const (
	CategoryProduce   ItemCategory = "produce"
	CategoryDairy     ItemCategory = "dairy"
	CategoryMeat      ItemCategory = "meat"
	CategoryPantry    ItemCategory = "pantry"
	CategoryBeverages ItemCategory = "beverages"
	CategorySnacks    ItemCategory = "snacks"
	CategoryOther     ItemCategory = "other"
)

// Categories lists the closed set of valid item categories.
var Categories = []ItemCategory{
	CategoryProduce,
	CategoryDairy,
	CategoryMeat,
	CategoryPantry,
	CategoryBeverages,
	CategorySnacks,
	CategoryOther,
}

func (c ItemCategory) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type GroceryItem struct {
	Id        uuid.UUID
	Name      string
	Category  ItemCategory
	Quantity  *float64
	Unit      *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type GroceryList struct {
	Id          uuid.UUID
	Name        string
	Items       []GroceryItem
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
