package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateListRequest struct {
	Name string `json:"name"`
}

type AddItemRequest struct {
	Name     string   `json:"name" validate:"required"`
	Category string   `json:"category" validate:"omitempty,oneof=produce dairy meat pantry beverages snacks other"`
	Quantity *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Unit     string   `json:"unit"`
}

type GroceryItemResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Quantity  *float64   `json:"quantity,omitempty"`
	Unit      *string    `json:"unit,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type GroceryListResponse struct {
	Id          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Items       []GroceryItemResponse `json:"items"`
	IsCompleted bool                  `json:"is_completed"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   *time.Time            `json:"updated_at,omitempty"`
}
