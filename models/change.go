package models

import (
	"strings"
	"time"
)

// ChangeAction names the store operation that produced a journal entry
type ChangeAction string

const (
	ActionItemAdded    ChangeAction = "ITEM_ADDED"
	ActionItemsRemoved ChangeAction = "ITEMS_REMOVED"
	ActionMenuReplaced ChangeAction = "MENU_REPLACED"
	ActionUserChanged  ChangeAction = "USER_CHANGED"
)

// MenuChange is one entry of the change journal. Audit trail of every store mutation.
type MenuChange struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	Action    ChangeAction `json:"action" gorm:"not null;index"`
	ItemIDs   string       `json:"item_ids"` // comma separated
	ItemCount int          `json:"item_count"`
	Username  string       `json:"username"`
	Role      UserRole     `json:"role"`
	Note      string       `json:"note"`
	CreatedAt time.Time    `json:"created_at"`
}

// IDs splits ItemIDs back into a slice
func (c MenuChange) IDs() []string {
	if c.ItemIDs == "" {
		return nil
	}
	return strings.Split(c.ItemIDs, ",")
}
