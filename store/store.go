// Package store holds the single source of truth for the running session: the
// current user and the ordered menu item collection.
//
// Every read returns a copy. Every mutation runs under the store's lock and is
// then published to subscribers together with the resulting snapshot, in the
// order the mutations happened. Listeners run synchronously and must not call
// back into the store's mutators.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"restaurant-menu-api/models"
)

var (
	// ErrDuplicateID is returned when an item id is already on the menu
	ErrDuplicateID = errors.New("duplicate menu item id")
	// ErrInvalidItem is returned when an item fails validation
	ErrInvalidItem = models.ErrInvalidItem
)

type Store struct {
	mu    sync.RWMutex
	user  *models.User
	items []models.MenuItem

	// published and pubCond hand out publish turns in mutation order.
	// seq is guarded by mu.
	seq       uint64
	published uint64
	pubMu     sync.Mutex
	pubCond   *sync.Cond

	subMu   sync.Mutex
	nextSub int
	subs    []subscription

	now func() time.Time
}

type subscription struct {
	id int
	fn Listener
}

// New returns a store holding a copy of items and no active user
func New(items []models.MenuItem) *Store {
	s := &Store{
		items: cloneItems(items),
		now:   time.Now,
	}
	s.pubCond = sync.NewCond(&s.pubMu)
	return s
}

// NewSeeded returns a store holding the house menu
func NewSeeded() *Store {
	return New(SeedItems())
}

// User returns the current session's user, false when nobody is logged in
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// SetUser replaces the current user wholesale. nil ends the session. The new
// user is recorded as the actor.
func (s *Store) SetUser(u *models.User) {
	s.setUser(u, u)
}

func (s *Store) setUser(u, actor *models.User) {
	s.mu.Lock()
	if u == nil {
		s.user = nil
	} else {
		cp := *u
		s.user = &cp
	}
	s.publishLocked(EventUserChanged, nil, actor)
}

// MenuItems returns the whole collection, oldest first
func (s *Store) MenuItems() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

// Item looks up a single dish by id
func (s *Store) Item(id string) (models.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.MenuItem{}, false
}

// Len is the number of dishes on the menu
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Snapshot copies the user and the collection under a single lock
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// SetMenuItems replaces the collection. Every item is validated and ids must be
// unique within the new set; on error the store is left untouched.
func (s *Store) SetMenuItems(items []models.MenuItem) error {
	return s.setMenuItems(items, nil)
}

func (s *Store) setMenuItems(items []models.MenuItem, actor *models.User) error {
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		if seen[it.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = true
	}

	s.mu.Lock()
	s.items = cloneItems(items)
	s.publishLocked(EventMenuReplaced, itemIDs(items), actor)
	return nil
}

// AddMenuItem appends a dish to the end of the menu
func (s *Store) AddMenuItem(item models.MenuItem) error {
	return s.addMenuItem(item, nil)
}

func (s *Store) addMenuItem(item models.MenuItem, actor *models.User) error {
	if err := item.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	for _, it := range s.items {
		if it.ID == item.ID {
			s.mu.Unlock()
			return fmt.Errorf("%w: %q", ErrDuplicateID, item.ID)
		}
	}
	s.items = append(s.items, item)
	s.publishLocked(EventItemAdded, []string{item.ID}, actor)
	return nil
}

// RemoveMenuItem removes every dish with the given id and reports how many
// went. An unknown id is a no-op.
func (s *Store) RemoveMenuItem(id string) int {
	return s.RemoveMenuItems([]string{id})
}

// RemoveMenuItems removes every dish whose id is in ids. Unknown ids are ignored.
func (s *Store) RemoveMenuItems(ids []string) int {
	return s.removeMenuItems(ids, nil)
}

func (s *Store) removeMenuItems(ids []string, actor *models.User) int {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	s.mu.Lock()
	kept := make([]models.MenuItem, 0, len(s.items))
	var removed []string
	for _, it := range s.items {
		if drop[it.ID] {
			removed = append(removed, it.ID)
			continue
		}
		kept = append(kept, it)
	}
	if len(removed) == 0 {
		s.mu.Unlock()
		return 0
	}
	s.items = kept
	s.publishLocked(EventItemsRemoved, removed, actor)
	return len(removed)
}

// Clear empties the menu in one step and reports how many dishes went
func (s *Store) Clear() int {
	return s.clear(nil)
}

func (s *Store) clear(actor *models.User) int {
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return 0
	}
	removed := itemIDs(s.items)
	s.items = nil
	s.publishLocked(EventItemsRemoved, removed, actor)
	return len(removed)
}

// Subscribe registers fn to receive every event published after this call.
// The returned func removes the subscription; calling it twice is harmless.
func (s *Store) Subscribe(fn Listener) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// publishLocked must be called with mu held for writing. It releases mu before
// any listener runs.
func (s *Store) publishLocked(kind EventKind, ids []string, actor *models.User) {
	ev := Event{
		Kind:     kind,
		Snapshot: s.snapshotLocked(),
		ItemIDs:  ids,
		At:       s.now(),
	}
	if actor != nil {
		a := *actor
		ev.Actor = &a
	}
	s.seq++
	turn := s.seq
	s.mu.Unlock()

	s.pubMu.Lock()
	for s.published+1 != turn {
		s.pubCond.Wait()
	}
	defer func() {
		s.published = turn
		s.pubCond.Broadcast()
		s.pubMu.Unlock()
	}()

	s.subMu.Lock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(ev)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Items: cloneItems(s.items)}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

func cloneItems(items []models.MenuItem) []models.MenuItem {
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	return out
}

func itemIDs(items []models.MenuItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
