package contract

import (
	"context"

	"grocery-ai-be/internal/entity"
)

// IListRepository is the single storage slot holding the active grocery
// list. Save overwrites the slot; Load returns (nil, nil) when the slot is
// empty. No component other than the list service touches it.
type IListRepository interface {
	Save(ctx context.Context, list *entity.GroceryList) error
	Load(ctx context.Context) (*entity.GroceryList, error)
}
