package service

import (
	"context"
	"sync"

	"grocery-ai-be/internal/dto"
	"grocery-ai-be/internal/entity"
	"grocery-ai-be/internal/pkg/logger"
	"grocery-ai-be/pkg/suggester"
)

// ISuggestionService coordinates suggestion requests against the external
// collaborator. Generate always supersedes the outstanding request: the
// outcome of a superseded request is never observable, even if its response
// arrives later (last-request-wins). Clear cancels the outstanding request
// and resets to the idle state.
type ISuggestionService interface {
	Generate(itemNames []string)
	Clear()
	Snapshot() *dto.CoordinatorStateResponse
}

type suggestionService struct {
	mu  sync.Mutex
	sug suggester.ISuggester
	log logger.ILogger

	// generation is the identity token of the current request; settlements
	// carrying an older token are discarded.
	generation uint64
	cancel     context.CancelFunc

	loading bool
	results []entity.SmartSuggestion
	lastErr *string
}

func NewSuggestionService(sug suggester.ISuggester, log logger.ILogger) ISuggestionService {
	return &suggestionService{
		sug: sug,
		log: log,
	}
}

func (s *suggestionService) Generate(itemNames []string) {
	s.mu.Lock()
	s.generation++
	token := s.generation

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.loading = true
	s.results = nil
	s.lastErr = nil
	s.mu.Unlock()

	go func() {
		raw, err := s.sug.Suggest(ctx, itemNames)

		s.mu.Lock()
		defer s.mu.Unlock()

		if token != s.generation {
			// Stale settlement: a newer Generate or a Clear happened while
			// this call was in flight.
			s.log.Debug("suggestion_service", "Discarding stale suggestion response", map[string]interface{}{
				"token":   token,
				"current": s.generation,
			})
			return
		}

		s.loading = false
		s.cancel = nil
		if err != nil {
			msg := err.Error()
			s.lastErr = &msg
			s.results = nil
			s.log.Error("suggestion_service", "Suggestion request failed", map[string]interface{}{
				"error": msg,
			})
			return
		}

		s.results = suggester.Normalize(raw)
		s.lastErr = nil
	}()
}

func (s *suggestionService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.loading = false
	s.results = nil
	s.lastErr = nil
}

func (s *suggestionService) Snapshot() *dto.CoordinatorStateResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := &dto.CoordinatorStateResponse{
		Suggestions: toSuggestionResponses(s.results),
		Loading:     s.loading,
		Error:       s.lastErr,
	}
	return res
}

func toSuggestionResponses(suggestions []entity.SmartSuggestion) []dto.SmartSuggestionResponse {
	result := make([]dto.SmartSuggestionResponse, len(suggestions))
	for i, sg := range suggestions {
		result[i] = dto.SmartSuggestionResponse{
			Item: dto.GroceryItemResponse{
				Id:        sg.Item.Id,
				Name:      sg.Item.Name,
				Category:  string(sg.Item.Category),
				Quantity:  sg.Item.Quantity,
				Unit:      sg.Item.Unit,
				CreatedAt: sg.Item.CreatedAt,
				UpdatedAt: sg.Item.UpdatedAt,
			},
			Reason:   sg.Reason,
			Priority: string(sg.Priority),
		}
	}
	return result
}
