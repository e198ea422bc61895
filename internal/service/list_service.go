package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"grocery-ai-be/internal/dto"
	"grocery-ai-be/internal/entity"
	"grocery-ai-be/internal/pkg/logger"
	"grocery-ai-be/internal/repository/contract"
	"grocery-ai-be/pkg/suggester"

	"github.com/google/uuid"
)

// IListService is the single source of truth for the active grocery list.
// Add/Remove on a missing active list are silent no-ops: callers are
// expected to create a list first. Storage failures are logged and never
// surfaced; the in-memory state remains authoritative.
type IListService interface {
	CreateNewList(ctx context.Context, name string) *dto.GroceryListResponse
	GetActiveList(ctx context.Context) *dto.GroceryListResponse
	AddItem(ctx context.Context, req *dto.AddItemRequest) *dto.GroceryListResponse
	RemoveItem(ctx context.Context, itemId uuid.UUID) *dto.GroceryListResponse
	CompleteList(ctx context.Context) *dto.GroceryListResponse
	LoadFromStorage(ctx context.Context)
	ItemNames(ctx context.Context) []string
}

type listService struct {
	mu               sync.Mutex
	active           *entity.GroceryList
	repository       contract.IListRepository
	publisherService IPublisherService
	log              logger.ILogger
}

func NewListService(
	repository contract.IListRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) IListService {
	return &listService{
		repository:       repository,
		publisherService: publisherService,
		log:              log,
	}
}

func (s *listService) CreateNewList(ctx context.Context, name string) *dto.GroceryListResponse {
	if name == "" {
		name = "Groceries " + time.Now().Format("Jan 2, 2006")
	}

	s.mu.Lock()
	s.active = &entity.GroceryList{
		Id:        uuid.New(),
		Name:      name,
		Items:     []entity.GroceryItem{},
		CreatedAt: time.Now(),
	}
	s.persistLocked(ctx)
	res := toListResponse(s.active)
	s.mu.Unlock()

	s.publishChange(ctx, "created")
	return res
}

func (s *listService) GetActiveList(_ context.Context) *dto.GroceryListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toListResponse(s.active)
}

func (s *listService) AddItem(ctx context.Context, req *dto.AddItemRequest) *dto.GroceryListResponse {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		s.log.Debug("list_service", "AddItem ignored: no active list", nil)
		return nil
	}

	category := entity.ItemCategory(req.Category)
	if !category.IsValid() {
		category = suggester.GuessCategory(req.Name)
	}
	unit := req.Unit
	if unit == "" {
		unit = suggester.GuessUnit(req.Name)
	}

	now := time.Now()
	s.active.Items = append(s.active.Items, entity.GroceryItem{
		Id:        uuid.New(),
		Name:      req.Name,
		Category:  category,
		Quantity:  req.Quantity,
		Unit:      &unit,
		CreatedAt: now,
	})
	s.active.UpdatedAt = &now

	s.persistLocked(ctx)
	res := toListResponse(s.active)
	s.mu.Unlock()

	s.publishChange(ctx, "item_added")
	return res
}

func (s *listService) RemoveItem(ctx context.Context, itemId uuid.UUID) *dto.GroceryListResponse {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		s.log.Debug("list_service", "RemoveItem ignored: no active list", nil)
		return nil
	}

	// Plain filter: a missing id removes nothing and is not an error.
	kept := s.active.Items[:0]
	for _, it := range s.active.Items {
		if it.Id != itemId {
			kept = append(kept, it)
		}
	}
	s.active.Items = kept

	now := time.Now()
	s.active.UpdatedAt = &now

	s.persistLocked(ctx)
	res := toListResponse(s.active)
	s.mu.Unlock()

	s.publishChange(ctx, "item_removed")
	return res
}

func (s *listService) CompleteList(ctx context.Context) *dto.GroceryListResponse {
	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return nil
	}

	now := time.Now()
	s.active.IsCompleted = true
	s.active.UpdatedAt = &now

	s.persistLocked(ctx)
	res := toListResponse(s.active)
	s.mu.Unlock()

	s.publishChange(ctx, "completed")
	return res
}

// LoadFromStorage restores the active list from the storage slot. A missing
// slot leaves state untouched; a corrupt slot is logged and skipped so the
// last-known-good in-memory state survives.
func (s *listService) LoadFromStorage(ctx context.Context) {
	list, err := s.repository.Load(ctx)
	if err != nil {
		s.log.Warn("list_service", "Failed to load persisted list, keeping current state", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if list == nil {
		return
	}

	s.mu.Lock()
	s.active = list
	s.mu.Unlock()

	s.log.Info("list_service", "Restored active list from storage", map[string]interface{}{
		"list_id":    list.Id.String(),
		"item_count": len(list.Items),
	})
}

func (s *listService) ItemNames(_ context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return nil
	}
	names := make([]string, len(s.active.Items))
	for i, it := range s.active.Items {
		names[i] = it.Name
	}
	return names
}

// persistLocked writes the active list to the slot. Must hold s.mu.
func (s *listService) persistLocked(ctx context.Context) {
	if s.active == nil {
		return
	}
	if err := s.repository.Save(ctx, s.active); err != nil {
		s.log.Error("list_service", "Failed to persist active list", map[string]interface{}{
			"error":   err.Error(),
			"list_id": s.active.Id.String(),
		})
	}
}

func (s *listService) publishChange(ctx context.Context, action string) {
	if s.publisherService == nil {
		return
	}

	s.mu.Lock()
	if s.active == nil {
		s.mu.Unlock()
		return
	}
	payload := dto.PublishListChangedMessage{
		ListId:    s.active.Id,
		ItemNames: make([]string, len(s.active.Items)),
		Action:    action,
	}
	for i, it := range s.active.Items {
		payload.ItemNames[i] = it.Name
	}
	s.mu.Unlock()

	msgJson, err := json.Marshal(payload)
	if err != nil {
		s.log.Error("list_service", "Failed to marshal list changed event", map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		s.log.Error("list_service", "Failed to publish list changed event", map[string]interface{}{"error": err.Error()})
	}
}

func toListResponse(l *entity.GroceryList) *dto.GroceryListResponse {
	if l == nil {
		return nil
	}

	items := make([]dto.GroceryItemResponse, len(l.Items))
	for i, it := range l.Items {
		items[i] = dto.GroceryItemResponse{
			Id:        it.Id,
			Name:      it.Name,
			Category:  string(it.Category),
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			CreatedAt: it.CreatedAt,
			UpdatedAt: it.UpdatedAt,
		}
	}

	return &dto.GroceryListResponse{
		Id:          l.Id,
		Name:        l.Name,
		Items:       items,
		IsCompleted: l.IsCompleted,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
