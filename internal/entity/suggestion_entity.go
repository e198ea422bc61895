package entity

type SuggestionPriority string

const (
	PriorityLow    SuggestionPriority = "low"
	PriorityMedium SuggestionPriority = "medium"
	PriorityHigh   SuggestionPriority = "high"
)

func (p SuggestionPriority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// SmartSuggestion is ephemeral: it lives only inside the coordinator's
// current result set and is never persisted.
type SmartSuggestion struct {
	Item     GroceryItem
	Reason   string
	Priority SuggestionPriority
}
