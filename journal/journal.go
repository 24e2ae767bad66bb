// Package journal keeps an audit trail of every store mutation in a gorm
// database. The default DSN is an in-memory SQLite database, so the trail
// lives exactly as long as the process.
package journal

import (
	"context"
	"fmt"
	"strings"

	"restaurant-menu-api/models"
	"restaurant-menu-api/store"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// DefaultLimit caps List when the caller asks for no limit
const DefaultLimit = 50

type Journal struct {
	db  *gorm.DB
	log zerolog.Logger
}

func New(db *gorm.DB, log zerolog.Logger) *Journal {
	return &Journal{db: db, log: log}
}

// Record writes one change entry
func (j *Journal) Record(ctx context.Context, change *models.MenuChange) error {
	if err := j.db.WithContext(ctx).Create(change).Error; err != nil {
		return fmt.Errorf("record %s: %w", change.Action, err)
	}
	return nil
}

// List returns the most recent entries, newest first
func (j *Journal) List(ctx context.Context, limit int) ([]models.MenuChange, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var changes []models.MenuChange
	err := j.db.WithContext(ctx).
		Order("created_at desc").Order("id desc").
		Limit(limit).
		Find(&changes).Error
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}
	return changes, nil
}

// Attach subscribes the journal to s. The returned func detaches it.
// Write failures are logged and never block the store.
func (j *Journal) Attach(s *store.Store) func() {
	return s.Subscribe(func(ev store.Event) {
		change := FromEvent(ev)
		if err := j.Record(context.Background(), &change); err != nil {
			j.log.Error().Err(err).Str("action", string(change.Action)).Msg("journal write failed")
		}
	})
}

// FromEvent converts a store event into a journal entry. The entry is
// attributed to the event's actor, or to the session user when none was given.
func FromEvent(ev store.Event) models.MenuChange {
	change := models.MenuChange{
		ItemIDs:   strings.Join(ev.ItemIDs, ","),
		ItemCount: len(ev.ItemIDs),
		CreatedAt: ev.At,
	}
	u := ev.Actor
	if u == nil {
		u = ev.Snapshot.User
	}
	if u != nil {
		change.Username = u.Username
		change.Role = u.Role
	}

	switch ev.Kind {
	case store.EventItemAdded:
		change.Action = models.ActionItemAdded
		change.Note = fmt.Sprintf("menu now has %d items", len(ev.Snapshot.Items))
	case store.EventItemsRemoved:
		change.Action = models.ActionItemsRemoved
		change.Note = fmt.Sprintf("menu now has %d items", len(ev.Snapshot.Items))
	case store.EventMenuReplaced:
		change.Action = models.ActionMenuReplaced
		change.Note = fmt.Sprintf("menu replaced with %d items", len(ev.Snapshot.Items))
	case store.EventUserChanged:
		change.Action = models.ActionUserChanged
		if ev.Snapshot.User == nil {
			change.Note = "session ended"
		} else {
			change.Note = "logged in as " + string(ev.Snapshot.User.Role)
		}
	}
	return change
}
