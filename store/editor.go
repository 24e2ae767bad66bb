package store

import "restaurant-menu-api/models"

// Editor runs store mutations on behalf of a known user. Events it causes
// carry that user as their Actor, whoever the store's session user is.
type Editor struct {
	s     *Store
	actor models.User
}

// As returns an Editor acting for actor
func (s *Store) As(actor models.User) Editor {
	return Editor{s: s, actor: actor}
}

func (e Editor) SetUser(u *models.User) {
	e.s.setUser(u, &e.actor)
}

func (e Editor) SetMenuItems(items []models.MenuItem) error {
	return e.s.setMenuItems(items, &e.actor)
}

func (e Editor) AddMenuItem(item models.MenuItem) error {
	return e.s.addMenuItem(item, &e.actor)
}

func (e Editor) RemoveMenuItem(id string) int {
	return e.s.removeMenuItems([]string{id}, &e.actor)
}

func (e Editor) RemoveMenuItems(ids []string) int {
	return e.s.removeMenuItems(ids, &e.actor)
}

func (e Editor) Clear() int {
	return e.s.clear(&e.actor)
}
