package dto

import "github.com/google/uuid"

// PublishListChangedMessage is the payload published on the LIST_CHANGED
// topic after every list mutation.
type PublishListChangedMessage struct {
	ListId    uuid.UUID `json:"list_id"`
	ItemNames []string  `json:"item_names"`
	Action    string    `json:"action"` // "created" | "item_added" | "item_removed" | "completed"
}
