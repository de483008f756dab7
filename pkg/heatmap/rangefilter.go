package heatmap

import (
	"math"
	"sort"
)

// DefaultTolerance derives the value-proximity window from the spread
// of cell averages: five percent of (max - min). Fewer than two cells
// give no spread, so the tolerance is zero.
func DefaultTolerance(cells []Cell) float64 {
	if len(cells) < 2 {
		return 0
	}
	min, max := cells[0].AverageViews, cells[0].AverageViews
	for _, c := range cells[1:] {
		if c.AverageViews < min {
			min = c.AverageViews
		}
		if c.AverageViews > max {
			max = c.AverageViews
		}
	}
	return float64(max-min) * 0.05
}

// FilterByValueRange collects the movies of every cell whose average
// views lies within tolerance of value, inclusive on both edges.
// Movies are deduplicated across cells and ordered by distance of
// their own views from value, nearest first, with higher views
// breaking ties.
func FilterByValueRange(cells []Cell, value, tolerance float64) []Movie {
	var pool []Movie
	for _, cell := range cells {
		if math.Abs(float64(cell.AverageViews)-value) <= tolerance {
			pool = append(pool, cell.Movies...)
		}
	}
	movies := dedupeMovies(pool)

	sort.SliceStable(movies, func(i, j int) bool {
		di := math.Abs(float64(movies[i].Views) - value)
		dj := math.Abs(float64(movies[j].Views) - value)
		if di != dj {
			return di < dj
		}
		return movies[i].Views > movies[j].Views
	})
	return movies
}
