package menu

import "restaurant-menu-api/models"

// CourseStats is the count and average price of one course
type CourseStats struct {
	Course       models.Course `json:"course"`
	Count        int           `json:"count"`
	AveragePrice float64       `json:"average_price"`
}

// Stats summarizes the menu for the home screens
type Stats struct {
	TotalItems       int           `json:"totalItems"`
	AvgPriceStarters float64       `json:"avgPriceStarters"`
	AvgPriceMains    float64       `json:"avgPriceMains"`
	AvgPriceDesserts float64       `json:"avgPriceDesserts"`
	Courses          []CourseStats `json:"courses"`
}

// ComputeStats partitions items by course and averages each partition's
// price. An empty course averages to 0.
func ComputeStats(items []models.MenuItem) Stats {
	sums := map[models.Course]float64{}
	counts := map[models.Course]int{}
	for _, it := range items {
		sums[it.Course] += it.Price
		counts[it.Course]++
	}

	st := Stats{TotalItems: len(items)}
	for _, c := range models.Courses {
		cs := CourseStats{Course: c, Count: counts[c], AveragePrice: average(sums[c], counts[c])}
		st.Courses = append(st.Courses, cs)
		switch c {
		case models.CourseStarter:
			st.AvgPriceStarters = cs.AveragePrice
		case models.CourseMain:
			st.AvgPriceMains = cs.AveragePrice
		case models.CourseDessert:
			st.AvgPriceDesserts = cs.AveragePrice
		}
	}
	return st
}

// Formatted renders the averages the way the home screen shows them
func (s Stats) Formatted() map[string]string {
	return map[string]string{
		"avgPriceStarters": models.FormatPrice(s.AvgPriceStarters),
		"avgPriceMains":    models.FormatPrice(s.AvgPriceMains),
		"avgPriceDesserts": models.FormatPrice(s.AvgPriceDesserts),
	}
}

func average(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
