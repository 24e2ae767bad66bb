package store_test

import (
	"math"
	"sync"
	"testing"

	"restaurant-menu-api/models"
	"restaurant-menu-api/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(items []models.MenuItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestNewSeeded(t *testing.T) {
	s := store.NewSeeded()
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(s.MenuItems()))

	_, ok := s.User()
	assert.False(t, ok, "no session before login")
}

func TestAddMenuItem_AppendsInCallOrder(t *testing.T) {
	s := store.NewSeeded()
	before := s.MenuItems()

	added := []models.MenuItem{
		{ID: "6", Name: "Tea", Course: models.CourseStarter, Price: 20},
		{ID: "7", Name: "Lamb Shank", Course: models.CourseMain, Price: 180},
		{ID: "8", Name: "Malva Pudding", Course: models.CourseDessert, Price: 55},
	}
	for _, it := range added {
		require.NoError(t, s.AddMenuItem(it))
	}

	got := s.MenuItems()
	require.Len(t, got, len(before)+len(added))
	assert.Equal(t, before, got[:len(before)])
	assert.Equal(t, added, got[len(before):])
}

func TestAddMenuItem_Tea(t *testing.T) {
	s := store.NewSeeded()
	require.NoError(t, s.AddMenuItem(models.MenuItem{ID: "6", Name: "Tea", Course: models.CourseStarter, Price: 20}))

	items := s.MenuItems()
	assert.Len(t, items, 6)
	assert.Equal(t, "6", items[len(items)-1].ID)
}

func TestAddMenuItem_RejectsDuplicateID(t *testing.T) {
	s := store.NewSeeded()
	err := s.AddMenuItem(models.MenuItem{ID: "1", Name: "Another Soup", Course: models.CourseStarter, Price: 10})
	assert.ErrorIs(t, err, store.ErrDuplicateID)
	assert.Equal(t, 5, s.Len())
}

func TestAddMenuItem_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		item models.MenuItem
	}{
		{"blank id", models.MenuItem{ID: " ", Name: "Tea", Course: models.CourseStarter, Price: 1}},
		{"blank name", models.MenuItem{ID: "9", Name: "  ", Course: models.CourseStarter, Price: 1}},
		{"unknown course", models.MenuItem{ID: "9", Name: "Tea", Course: "Brunch", Price: 1}},
		{"negative price", models.MenuItem{ID: "9", Name: "Tea", Course: models.CourseMain, Price: -1}},
		{"NaN price", models.MenuItem{ID: "9", Name: "Tea", Course: models.CourseMain, Price: math.NaN()}},
		{"infinite price", models.MenuItem{ID: "9", Name: "Tea", Course: models.CourseMain, Price: math.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewSeeded()
			err := s.AddMenuItem(tt.item)
			assert.ErrorIs(t, err, store.ErrInvalidItem)
			assert.Equal(t, 5, s.Len())
		})
	}
}

func TestAddMenuItem_ZeroPriceAllowed(t *testing.T) {
	s := store.New(nil)
	assert.NoError(t, s.AddMenuItem(models.MenuItem{ID: "w", Name: "Water", Course: models.CourseStarter, Price: 0}))
}

func TestRemoveMenuItem_UnknownIDIsNoop(t *testing.T) {
	s := store.NewSeeded()
	before := s.MenuItems()

	assert.Equal(t, 0, s.RemoveMenuItem("does-not-exist"))
	assert.Equal(t, before, s.MenuItems())
}

func TestRemoveMenuItem(t *testing.T) {
	s := store.NewSeeded()
	assert.Equal(t, 1, s.RemoveMenuItem("3"))
	assert.Equal(t, []string{"1", "2", "4", "5"}, ids(s.MenuItems()))
}

func TestRemoveMenuItems_SeedPair(t *testing.T) {
	s := store.NewSeeded()
	assert.Equal(t, 2, s.RemoveMenuItems([]string{"1", "2"}))

	items := s.MenuItems()
	assert.Len(t, items, 3)
	for _, it := range items {
		assert.NotContains(t, []string{"1", "2"}, it.ID)
	}
}

func TestRemoveMenuItems_AllThenAgain(t *testing.T) {
	s := store.NewSeeded()
	all := ids(s.MenuItems())

	assert.Equal(t, 5, s.RemoveMenuItems(all))
	assert.Empty(t, s.MenuItems())

	assert.Equal(t, 0, s.RemoveMenuItems(all))
	assert.Empty(t, s.MenuItems())
}

func TestRemoveMenuItems_IgnoresUnknown(t *testing.T) {
	s := store.NewSeeded()
	assert.Equal(t, 1, s.RemoveMenuItems([]string{"x", "5", "y"}))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(s.MenuItems()))
}

func TestRemoveMenuItem_RemovesEveryCopyFromUncheckedSeed(t *testing.T) {
	// New copies its input verbatim, so a caller-built collection can still hold repeats
	dup := models.MenuItem{ID: "d", Name: "Dup", Course: models.CourseMain, Price: 1}
	s := store.New([]models.MenuItem{dup, dup})
	assert.Equal(t, 2, s.RemoveMenuItem("d"))
	assert.Zero(t, s.Len())
}

func TestSetMenuItems(t *testing.T) {
	s := store.NewSeeded()
	next := []models.MenuItem{
		{ID: "a", Name: "Bread", Course: models.CourseStarter, Price: 15},
		{ID: "b", Name: "Curry", Course: models.CourseMain, Price: 95},
	}
	require.NoError(t, s.SetMenuItems(next))
	assert.Equal(t, next, s.MenuItems())

	require.NoError(t, s.SetMenuItems(nil))
	assert.Empty(t, s.MenuItems())
}

func TestSetMenuItems_RejectsAndKeepsState(t *testing.T) {
	s := store.NewSeeded()
	before := s.MenuItems()

	err := s.SetMenuItems([]models.MenuItem{
		{ID: "a", Name: "Bread", Course: models.CourseStarter, Price: 15},
		{ID: "a", Name: "Bread again", Course: models.CourseStarter, Price: 15},
	})
	assert.ErrorIs(t, err, store.ErrDuplicateID)

	err = s.SetMenuItems([]models.MenuItem{{ID: "a", Name: "", Course: models.CourseStarter}})
	assert.ErrorIs(t, err, store.ErrInvalidItem)

	assert.Equal(t, before, s.MenuItems())
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := store.NewSeeded()
	items := s.MenuItems()
	items[0].Name = "Changed outside the store"

	got, ok := s.Item("1")
	require.True(t, ok)
	assert.Equal(t, "Chicken Soup", got.Name)

	u := &models.User{Role: models.RoleChef, Username: "alice"}
	s.SetUser(u)
	u.Username = "mallory"
	cur, _ := s.User()
	assert.Equal(t, "alice", cur.Username)
}

func TestSetUser(t *testing.T) {
	s := store.NewSeeded()
	s.SetUser(&models.User{Role: models.RoleChef, Username: "alice"})

	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, models.RoleChef, u.Role)

	s.SetUser(&models.User{Role: models.RoleUser, Username: "bob"})
	u, _ = s.User()
	assert.Equal(t, models.User{Role: models.RoleUser, Username: "bob"}, u)

	s.SetUser(nil)
	_, ok = s.User()
	assert.False(t, ok)
}

func TestSubscribe_ReceivesSnapshots(t *testing.T) {
	s := store.NewSeeded()
	var got []store.Event
	unsubscribe := s.Subscribe(func(ev store.Event) { got = append(got, ev) })

	s.SetUser(&models.User{Role: models.RoleChef, Username: "alice"})
	require.NoError(t, s.AddMenuItem(models.MenuItem{ID: "6", Name: "Tea", Course: models.CourseStarter, Price: 20}))
	s.RemoveMenuItem("nope") // no change, no event
	s.RemoveMenuItems([]string{"1", "6"})
	require.NoError(t, s.SetMenuItems(nil))

	require.Len(t, got, 4)
	assert.Equal(t, store.EventUserChanged, got[0].Kind)
	assert.Equal(t, "alice", got[0].Snapshot.User.Username)

	assert.Equal(t, store.EventItemAdded, got[1].Kind)
	assert.Equal(t, []string{"6"}, got[1].ItemIDs)
	assert.Len(t, got[1].Snapshot.Items, 6)

	assert.Equal(t, store.EventItemsRemoved, got[2].Kind)
	assert.ElementsMatch(t, []string{"1", "6"}, got[2].ItemIDs)
	assert.Len(t, got[2].Snapshot.Items, 4)

	assert.Equal(t, store.EventMenuReplaced, got[3].Kind)
	assert.Empty(t, got[3].Snapshot.Items)

	unsubscribe()
	unsubscribe()
	s.SetUser(nil)
	assert.Len(t, got, 4)
}

func TestSubscribe_ListenerCanReadStore(t *testing.T) {
	s := store.NewSeeded()
	var seen int
	s.Subscribe(func(store.Event) { seen = s.Len() })

	require.NoError(t, s.AddMenuItem(models.MenuItem{ID: "6", Name: "Tea", Course: models.CourseStarter, Price: 20}))
	assert.Equal(t, 6, seen)
}

func TestConcurrentAdds(t *testing.T) {
	s := store.New(nil)
	var mu sync.Mutex
	var events int
	s.Subscribe(func(store.Event) {
		mu.Lock()
		events++
		mu.Unlock()
	})

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_ = s.AddMenuItem(models.MenuItem{
				ID:     string(rune('A' + i)),
				Name:   "Dish",
				Course: models.CourseMain,
				Price:  float64(i),
			})
			_ = s.MenuItems()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, s.Len())
	assert.Equal(t, n, events)
}

func TestClear(t *testing.T) {
	s := store.NewSeeded()
	var got []store.Event
	s.Subscribe(func(ev store.Event) { got = append(got, ev) })

	assert.Equal(t, 5, s.Clear())
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Clear())

	require.Len(t, got, 1)
	assert.Equal(t, store.EventItemsRemoved, got[0].Kind)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, got[0].ItemIDs)
	assert.Empty(t, got[0].Snapshot.Items)

	require.NoError(t, s.AddMenuItem(models.MenuItem{ID: "6", Name: "Tea", Course: models.CourseStarter, Price: 20}))
	assert.Equal(t, []string{"6"}, ids(s.MenuItems()))
}

func TestEditor_EventsCarryActor(t *testing.T) {
	s := store.NewSeeded()
	alice := models.User{Role: models.RoleChef, Username: "alice"}
	bob := models.User{Role: models.RoleUser, Username: "bob"}

	s.SetUser(&alice)
	s.SetUser(&bob)

	var got []store.Event
	s.Subscribe(func(ev store.Event) { got = append(got, ev) })

	chef := s.As(alice)
	require.NoError(t, chef.AddMenuItem(models.MenuItem{ID: "6", Name: "Tea", Course: models.CourseStarter, Price: 20}))
	assert.Equal(t, 1, chef.RemoveMenuItem("1"))
	assert.Equal(t, 1, chef.RemoveMenuItems([]string{"2", "nope"}))
	require.NoError(t, chef.SetMenuItems(store.SeedItems()))
	assert.Equal(t, 5, chef.Clear())
	chef.SetUser(nil)

	require.Len(t, got, 6)
	for _, ev := range got {
		require.NotNil(t, ev.Actor, ev.Kind)
		assert.Equal(t, alice, *ev.Actor, ev.Kind)
	}
	assert.Equal(t, bob, *got[0].Snapshot.User)
	assert.Nil(t, got[5].Snapshot.User)

	s.RemoveMenuItem("1")
	require.NoError(t, s.AddMenuItem(models.MenuItem{ID: "7", Name: "Soup", Course: models.CourseStarter, Price: 30}))
	assert.Nil(t, got[6].Actor)
}
