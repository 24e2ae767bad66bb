// Package menu derives views of the menu from a store snapshot: course
// filters, per-course sections, and price statistics. Nothing here mutates.
package menu

import (
	"fmt"
	"strings"

	"restaurant-menu-api/models"
)

// CourseFilter is a course selection that also allows "All"
type CourseFilter string

const FilterAll CourseFilter = "All"

// Filters lists every selectable filter in dropdown order
var Filters = []CourseFilter{
	FilterAll,
	CourseFilter(models.CourseStarter),
	CourseFilter(models.CourseMain),
	CourseFilter(models.CourseDessert),
}

// ParseCourseFilter accepts a course name or "All", case-insensitively. Empty means All.
func ParseCourseFilter(s string) (CourseFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range Filters {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid course filter %q. Must be: All, Starter, Main, or Dessert", s)
}

// Filter returns the items visible under f. All returns every item.
func Filter(items []models.MenuItem, f CourseFilter) []models.MenuItem {
	if f == FilterAll || f == "" {
		out := make([]models.MenuItem, len(items))
		copy(out, items)
		return out
	}
	out := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		if CourseFilter(it.Course) == f {
			out = append(out, it)
		}
	}
	return out
}

// Section is one course heading and its dishes
type Section struct {
	Title  string            `json:"title"`
	Course models.Course     `json:"course"`
	Count  int               `json:"count"`
	Items  []models.MenuItem `json:"items"`
}

var sectionTitles = map[models.Course]string{
	models.CourseStarter: "Starters",
	models.CourseMain:    "Mains",
	models.CourseDessert: "Desserts",
}

// GroupByCourse splits items into Starter, Main and Dessert sections, keeping
// insertion order within each section
func GroupByCourse(items []models.MenuItem) []Section {
	sections := make([]Section, 0, len(models.Courses))
	for _, c := range models.Courses {
		sub := Filter(items, CourseFilter(c))
		sections = append(sections, Section{
			Title:  sectionTitles[c],
			Course: c,
			Count:  len(sub),
			Items:  sub,
		})
	}
	return sections
}

// Featured returns up to n dishes from the front of the menu
func Featured(items []models.MenuItem, n int) []models.MenuItem {
	if n > len(items) {
		n = len(items)
	}
	if n < 0 {
		n = 0
	}
	out := make([]models.MenuItem, n)
	copy(out, items[:n])
	return out
}
