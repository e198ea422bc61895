package model

// Persisted JSON shapes for the grocery_current_list storage slot.
// Timestamps are stored as ISO-8601 strings and reconstructed by the mapper.

type GroceryItem struct {
	Id        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Quantity  *float64 `json:"quantity,omitempty"`
	Unit      *string  `json:"unit,omitempty"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt *string  `json:"updated_at,omitempty"`
}

type GroceryList struct {
	Id          string        `json:"id"`
	Name        string        `json:"name"`
	Items       []GroceryItem `json:"items"`
	IsCompleted bool          `json:"is_completed"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   *string       `json:"updated_at,omitempty"`
}
