package dto

// Wire contract for POST /api/smart-suggestions. Only the item name is
// required downstream; any other fields the client sends are ignored.

type SmartSuggestionItem struct {
	Name string `json:"name"`
}

type SmartSuggestionRequest struct {
	Items []SmartSuggestionItem `json:"items"`
}

type SmartSuggestionResponse struct {
	Item     GroceryItemResponse `json:"item"`
	Reason   string              `json:"reason"`
	Priority string              `json:"priority"`
}

// ClientError is the 400 body: the request itself was malformed.
type ClientError struct {
	Error string `json:"error"`
}

// ServerError is the 500 body: the upstream suggestion call failed.
type ServerError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CoordinatorStateResponse is the snapshot returned by GET /api/suggestion/v1.
type CoordinatorStateResponse struct {
	Suggestions []SmartSuggestionResponse `json:"suggestions"`
	Loading     bool                      `json:"loading"`
	Error       *string                   `json:"error,omitempty"`
}
