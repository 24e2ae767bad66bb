package navigation

import (
	"errors"
	"fmt"
	"strings"

	"restaurant-menu-api/models"
)

// Screen names one view of the app
type Screen string

const (
	ScreenLogin      Screen = "login"
	ScreenHome       Screen = "home"
	ScreenUserHome   Screen = "user-home"
	ScreenMenu       Screen = "menu"
	ScreenUserMenu   Screen = "user-menu"
	ScreenAddDish    Screen = "add-dish"
	ScreenRemoveDish Screen = "remove-dish"
	ScreenFilter     Screen = "filter"
	ScreenHelp       Screen = "help"
)

// Screens lists every screen of the app
var Screens = []Screen{
	ScreenLogin, ScreenHome, ScreenUserHome, ScreenMenu, ScreenUserMenu,
	ScreenAddDish, ScreenRemoveDish, ScreenFilter, ScreenHelp,
}

// ErrUnknownScreen is returned for a screen name that is not in Screens
var ErrUnknownScreen = errors.New("unknown screen")

// Transition defines a valid move between screens and the role that may make it
type Transition struct {
	From Screen          `json:"from"`
	To   Screen          `json:"to"`
	Role models.UserRole `json:"role"`
}

// validTransitions is the authoritative navigation definition
var validTransitions = []Transition{
	// Login lands each role on its own start screen
	{From: ScreenLogin, To: ScreenHome, Role: models.RoleChef},
	{From: ScreenLogin, To: ScreenUserMenu, Role: models.RoleUser},

	// Chef dashboard
	{From: ScreenHome, To: ScreenAddDish, Role: models.RoleChef},
	{From: ScreenHome, To: ScreenMenu, Role: models.RoleChef},
	{From: ScreenHome, To: ScreenRemoveDish, Role: models.RoleChef},
	{From: ScreenHome, To: ScreenFilter, Role: models.RoleChef},
	{From: ScreenHome, To: ScreenHelp, Role: models.RoleChef},
	{From: ScreenHome, To: ScreenLogin, Role: models.RoleChef},

	// Chef menu browser
	{From: ScreenMenu, To: ScreenAddDish, Role: models.RoleChef},
	{From: ScreenMenu, To: ScreenRemoveDish, Role: models.RoleChef},
	{From: ScreenMenu, To: ScreenFilter, Role: models.RoleChef},
	{From: ScreenMenu, To: ScreenHome, Role: models.RoleChef},

	// Forms return to the dashboard or the menu
	{From: ScreenAddDish, To: ScreenHome, Role: models.RoleChef},
	{From: ScreenAddDish, To: ScreenMenu, Role: models.RoleChef},
	{From: ScreenRemoveDish, To: ScreenHome, Role: models.RoleChef},
	{From: ScreenFilter, To: ScreenMenu, Role: models.RoleChef},

	// Chef help
	{From: ScreenHelp, To: ScreenHome, Role: models.RoleChef},
	{From: ScreenHelp, To: ScreenMenu, Role: models.RoleChef},
	{From: ScreenHelp, To: ScreenAddDish, Role: models.RoleChef},
	{From: ScreenHelp, To: ScreenRemoveDish, Role: models.RoleChef},
	{From: ScreenHelp, To: ScreenFilter, Role: models.RoleChef},
	{From: ScreenHelp, To: ScreenLogin, Role: models.RoleChef},

	// Guest home
	{From: ScreenUserHome, To: ScreenUserMenu, Role: models.RoleUser},
	{From: ScreenUserHome, To: ScreenFilter, Role: models.RoleUser},
	{From: ScreenUserHome, To: ScreenHelp, Role: models.RoleUser},
	{From: ScreenUserHome, To: ScreenLogin, Role: models.RoleUser},

	// Guest menu
	{From: ScreenUserMenu, To: ScreenUserHome, Role: models.RoleUser},
	{From: ScreenUserMenu, To: ScreenHelp, Role: models.RoleUser},
	{From: ScreenFilter, To: ScreenUserHome, Role: models.RoleUser},

	// Guest help
	{From: ScreenHelp, To: ScreenUserMenu, Role: models.RoleUser},
	{From: ScreenHelp, To: ScreenFilter, Role: models.RoleUser},
	{From: ScreenHelp, To: ScreenLogin, Role: models.RoleUser},
}

type transitionKey struct {
	From Screen
	To   Screen
	Role models.UserRole
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Role}] = true
	}
	return m
}()

// reachable[role][screen] is true when some transition for role ends at screen
var reachable = func() map[models.UserRole]map[Screen]bool {
	m := map[models.UserRole]map[Screen]bool{}
	for _, t := range validTransitions {
		if m[t.Role] == nil {
			m[t.Role] = map[Screen]bool{}
		}
		m[t.Role][t.To] = true
	}
	return m
}()

// ParseScreen looks a screen up by name
func ParseScreen(s string) (Screen, error) {
	for _, sc := range Screens {
		if strings.EqualFold(strings.TrimSpace(s), string(sc)) {
			return sc, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownScreen, s)
}

// DestinationsFrom returns the screens role can move to from screen
func DestinationsFrom(screen Screen, role models.UserRole) []Screen {
	var nexts []Screen
	for _, t := range validTransitions {
		if t.From == screen && t.Role == role {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanView reports whether role can ever reach screen
func CanView(screen Screen, role models.UserRole) bool {
	if screen == ScreenLogin {
		return true
	}
	return reachable[role][screen]
}

// CanNavigate checks whether role may move from one screen to another
func CanNavigate(from, to Screen, role models.UserRole) error {
	if transitionMap[transitionKey{From: from, To: to, Role: role}] {
		return nil
	}
	return errors.New(
		"invalid navigation: " + string(from) + " → " + string(to) +
			" is not allowed for role '" + string(role) + "'. " +
			"Valid destinations from " + string(from) + " are: " + describeFrom(from, role),
	)
}

func describeFrom(screen Screen, role models.UserRole) string {
	nexts := DestinationsFrom(screen, role)
	if len(nexts) == 0 {
		return "none"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// All returns the full navigation table for documentation
func All() []Transition {
	out := make([]Transition, len(validTransitions))
	copy(out, validTransitions)
	return out
}
