package mapper

import (
	"fmt"
	"time"

	"grocery-ai-be/internal/entity"
	"grocery-ai-be/internal/model"

	"github.com/google/uuid"
)

type GroceryMapper struct{}

func NewGroceryMapper() *GroceryMapper {
	return &GroceryMapper{}
}

func (m *GroceryMapper) ToModel(l *entity.GroceryList) *model.GroceryList {
	if l == nil {
		return nil
	}

	items := make([]model.GroceryItem, len(l.Items))
	for i, it := range l.Items {
		items[i] = model.GroceryItem{
			Id:        it.Id.String(),
			Name:      it.Name,
			Category:  string(it.Category),
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			CreatedAt: it.CreatedAt.Format(time.RFC3339Nano),
			UpdatedAt: formatTimePtr(it.UpdatedAt),
		}
	}

	return &model.GroceryList{
		Id:          l.Id.String(),
		Name:        l.Name,
		Items:       items,
		IsCompleted: l.IsCompleted,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:   formatTimePtr(l.UpdatedAt),
	}
}

func (m *GroceryMapper) ToEntity(l *model.GroceryList) (*entity.GroceryList, error) {
	if l == nil {
		return nil, nil
	}

	id, err := uuid.Parse(l.Id)
	if err != nil {
		return nil, fmt.Errorf("parse list id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, l.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse list created_at: %w", err)
	}
	updatedAt, err := parseTimePtr(l.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse list updated_at: %w", err)
	}

	items := make([]entity.GroceryItem, len(l.Items))
	for i, it := range l.Items {
		itemId, err := uuid.Parse(it.Id)
		if err != nil {
			return nil, fmt.Errorf("parse item id: %w", err)
		}
		itemCreatedAt, err := time.Parse(time.RFC3339Nano, it.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse item created_at: %w", err)
		}
		itemUpdatedAt, err := parseTimePtr(it.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse item updated_at: %w", err)
		}

		category := entity.ItemCategory(it.Category)
		if !category.IsValid() {
			category = entity.CategoryOther
		}

		items[i] = entity.GroceryItem{
			Id:        itemId,
			Name:      it.Name,
			Category:  category,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			CreatedAt: itemCreatedAt,
			UpdatedAt: itemUpdatedAt,
		}
	}

	return &entity.GroceryList{
		Id:          id,
		Name:        l.Name,
		Items:       items,
		IsCompleted: l.IsCompleted,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339Nano)
	return &s
}

func parseTimePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
