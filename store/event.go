package store

import (
	"time"

	"restaurant-menu-api/models"
)

// EventKind identifies which store operation produced an event
type EventKind string

const (
	EventUserChanged  EventKind = "user_changed"
	EventItemAdded    EventKind = "item_added"
	EventItemsRemoved EventKind = "items_removed"
	EventMenuReplaced EventKind = "menu_replaced"
)

// Snapshot is a point-in-time copy of the store's state
type Snapshot struct {
	User  *models.User      `json:"user"`
	Items []models.MenuItem `json:"items"`
}

// Event is delivered to every subscriber after a mutation
type Event struct {
	Kind     EventKind `json:"kind"`
	Snapshot Snapshot  `json:"snapshot"`
	ItemIDs  []string  `json:"item_ids,omitempty"` // ids added, removed, or now on the menu
	// Actor is who asked for the change. nil when the caller did not say.
	Actor *models.User `json:"actor,omitempty"`
	At    time.Time    `json:"at"`
}

// Listener receives store events
type Listener func(Event)
