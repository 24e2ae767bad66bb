package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCourse(t *testing.T) {
	c, err := ParseCourse("dessert")
	assert.NoError(t, err)
	assert.Equal(t, CourseDessert, c)

	_, err = ParseCourse("Brunch")
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" chef ")
	assert.NoError(t, err)
	assert.Equal(t, RoleChef, r)

	_, err = ParseRole("admin")
	assert.Error(t, err)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "R75.00", FormatPrice(75))
	assert.Equal(t, "R12.50", MenuItem{Price: 12.5}.DisplayPrice())
}

func TestMenuChangeIDs(t *testing.T) {
	assert.Nil(t, MenuChange{}.IDs())
	assert.Equal(t, []string{"1", "2"}, MenuChange{ItemIDs: "1,2"}.IDs())
}
