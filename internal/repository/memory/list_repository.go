package memory

import (
	"context"

	"grocery-ai-be/internal/entity"
	"grocery-ai-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

const slotKey = "grocery_current_list"

// ListRepository keeps the slot in process memory. Used when no durable
// store is reachable, so a fresh process starts with an empty slot.
type ListRepository struct {
	cache *cache.Cache
}

func NewListRepository() contract.IListRepository {
	return &ListRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *ListRepository) Save(_ context.Context, list *entity.GroceryList) error {
	r.cache.Set(slotKey, list, cache.NoExpiration)
	return nil
}

func (r *ListRepository) Load(_ context.Context) (*entity.GroceryList, error) {
	if x, found := r.cache.Get(slotKey); found {
		return x.(*entity.GroceryList), nil
	}
	return nil, nil
}
