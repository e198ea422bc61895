package suggester

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"grocery-ai-be/internal/entity"
	"grocery-ai-be/pkg/llm"

	"github.com/google/uuid"
)

// RawSuggestion is the collaborator-shaped record: what the generative model
// promises to return per suggestion. Quantity and Unit are optional.
type RawSuggestion struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Reason   string   `json:"reason"`
	Priority string   `json:"priority"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
}

// ISuggester is the boundary to the external generative collaborator. A nil
// error with zero suggestions is a valid outcome, distinct from a failed call.
type ISuggester interface {
	Suggest(ctx context.Context, itemNames []string) ([]RawSuggestion, error)
}

type llmSuggester struct {
	provider llm.LLMProvider
}

func NewLLMSuggester(provider llm.LLMProvider) ISuggester {
	return &llmSuggester{provider: provider}
}

func (s *llmSuggester) Suggest(ctx context.Context, itemNames []string) ([]RawSuggestion, error) {
	prompt := buildSuggestionPrompt(itemNames)

	raw, err := s.provider.Generate(ctx, prompt, llm.WithTemperature(0.4))
	if err != nil {
		return nil, fmt.Errorf("suggestion call failed: %w", err)
	}

	suggestions, err := parseSuggestions(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed model output: %w", err)
	}
	return suggestions, nil
}

// parseSuggestions extracts the JSON array from the model response. Models
// wrap JSON in code fences or prose often enough that we cut from the first
// '[' to the last ']' before unmarshalling.
func parseSuggestions(raw string) ([]RawSuggestion, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON array in response")
	}

	var suggestions []RawSuggestion
	if err := json.Unmarshal([]byte(raw[start:end+1]), &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// Normalize converts collaborator records into SmartSuggestions, filling the
// gaps the model is allowed to leave: unknown categories fall back to the
// keyword classifier, a missing unit defaults to "pcs", quantities below 1
// are dropped, and an unknown priority becomes medium.
func Normalize(raw []RawSuggestion) []entity.SmartSuggestion {
	now := time.Now()
	result := make([]entity.SmartSuggestion, 0, len(raw))

	for _, r := range raw {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}

		category := entity.ItemCategory(r.Category)
		if !category.IsValid() {
			category = GuessCategory(r.Name)
		}

		priority := entity.SuggestionPriority(r.Priority)
		if !priority.IsValid() {
			priority = entity.PriorityMedium
		}

		unit := r.Unit
		if unit == "" {
			unit = DefaultUnit
		}

		quantity := r.Quantity
		if quantity != nil && *quantity < 1 {
			quantity = nil
		}

		result = append(result, entity.SmartSuggestion{
			Item: entity.GroceryItem{
				Id:        uuid.New(),
				Name:      r.Name,
				Category:  category,
				Quantity:  quantity,
				Unit:      &unit,
				CreatedAt: now,
			},
			Reason:   r.Reason,
			Priority: priority,
		})
	}
	return result
}
