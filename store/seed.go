package store

import "restaurant-menu-api/models"

// SeedItems is the house menu every session starts with
func SeedItems() []models.MenuItem {
	return []models.MenuItem{
		{ID: "1", Name: "Chicken Soup", Description: "Hearty soup with chicken, vegetables", Course: models.CourseStarter, Price: 75},
		{ID: "2", Name: "Beef Steak", Description: "Grilled steak with garlic and herbs", Course: models.CourseMain, Price: 120},
		{ID: "3", Name: "Chocolate Tart", Description: "Rich chocolate tart with a crust", Course: models.CourseDessert, Price: 60},
		{ID: "4", Name: "Greek Salad", Description: "Salad with feta, olives, cucumbers", Course: models.CourseStarter, Price: 65},
		{ID: "5", Name: "Salmon Fillet", Description: "Seared salmon with dill sauce", Course: models.CourseMain, Price: 150},
	}
}
