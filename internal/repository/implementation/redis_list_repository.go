package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"grocery-ai-be/internal/entity"
	"grocery-ai-be/internal/mapper"
	"grocery-ai-be/internal/model"
	"grocery-ai-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// CurrentListKey is the storage slot for the active grocery list.
const CurrentListKey = "grocery_current_list"

type redisListRepository struct {
	rdb    *redis.Client
	mapper *mapper.GroceryMapper
}

func NewRedisListRepository(rdb *redis.Client) contract.IListRepository {
	return &redisListRepository{
		rdb:    rdb,
		mapper: mapper.NewGroceryMapper(),
	}
}

func (r *redisListRepository) Save(ctx context.Context, list *entity.GroceryList) error {
	payload, err := json.Marshal(r.mapper.ToModel(list))
	if err != nil {
		return fmt.Errorf("marshal list: %w", err)
	}

	if err := r.rdb.Set(ctx, CurrentListKey, payload, 0).Err(); err != nil {
		return fmt.Errorf("write slot %s: %w", CurrentListKey, err)
	}
	return nil
}

func (r *redisListRepository) Load(ctx context.Context) (*entity.GroceryList, error) {
	payload, err := r.rdb.Get(ctx, CurrentListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read slot %s: %w", CurrentListKey, err)
	}

	var persisted model.GroceryList
	if err := json.Unmarshal(payload, &persisted); err != nil {
		return nil, fmt.Errorf("unmarshal slot %s: %w", CurrentListKey, err)
	}

	return r.mapper.ToEntity(&persisted)
}
