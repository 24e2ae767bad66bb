package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Course is the section of the menu a dish belongs to
type Course string

const (
	CourseStarter Course = "Starter"
	CourseMain    Course = "Main"
	CourseDessert Course = "Dessert"
)

// Courses lists every course in menu order
var Courses = []Course{CourseStarter, CourseMain, CourseDessert}

// Valid reports whether c is one of the known courses
func (c Course) Valid() bool {
	switch c {
	case CourseStarter, CourseMain, CourseDessert:
		return true
	}
	return false
}

// ParseCourse matches a course name case-insensitively
func ParseCourse(s string) (Course, error) {
	for _, c := range Courses {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown course %q (must be Starter, Main, or Dessert)", ErrInvalidItem, s)
}

// ErrInvalidItem is returned when a menu item fails validation
var ErrInvalidItem = errors.New("invalid menu item")

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Course      Course  `json:"course"`
	Price       float64 `json:"price"`
}

// Validate checks the fields a dish needs before it can go on the menu
func (m MenuItem) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidItem)
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidItem)
	}
	if !m.Course.Valid() {
		return fmt.Errorf("%w: unknown course %q", ErrInvalidItem, m.Course)
	}
	if math.IsNaN(m.Price) || math.IsInf(m.Price, 0) {
		return fmt.Errorf("%w: price must be a finite number", ErrInvalidItem)
	}
	if m.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidItem)
	}
	return nil
}

// FormatPrice renders a price the way the menu displays it
func FormatPrice(p float64) string {
	return fmt.Sprintf("R%.2f", p)
}

// DisplayPrice is the formatted price of this dish
func (m MenuItem) DisplayPrice() string {
	return FormatPrice(m.Price)
}
