package heatmap

import (
	"sort"

	"titleheat/models"
)

// CategoryView is the flattened drill-down for one named category:
// every movie from every cell whose word belongs to the category,
// deduplicated across cells, plus the cells themselves for callers
// that still want per-word structure.
type CategoryView struct {
	Name         string  `json:"name"`
	Movies       []Movie `json:"movies"`
	AverageViews int     `json:"average_views"`
	Cells        []Cell  `json:"cells,omitempty"`
}

// AggregateByCategory unions the cells whose word belongs to category
// and orders the result: movies whose ID appears in priority come
// first, in priority order, then everything else by views descending.
// The priority list is presentation state owned by the caller; it is
// read here, never written.
func AggregateByCategory(cells []Cell, category models.CategoryDefinition, priority []string) CategoryView {
	member := make(map[string]bool, len(category.Words))
	for _, w := range category.Words {
		member[w] = true
	}

	var matched []Cell
	var pool []Movie
	for _, cell := range cells {
		if !member[cell.Word] {
			continue
		}
		matched = append(matched, cell)
		pool = append(pool, cell.Movies...)
	}
	movies := dedupeMovies(pool)

	rank := make(map[string]int, len(priority))
	for i, id := range priority {
		if _, seen := rank[id]; !seen {
			rank[id] = i
		}
	}
	sort.SliceStable(movies, func(i, j int) bool {
		ri, iPinned := rank[movies[i].ID]
		rj, jPinned := rank[movies[j].ID]
		switch {
		case iPinned && jPinned:
			return ri < rj
		case iPinned != jPinned:
			return iPinned
		default:
			return movies[i].Views > movies[j].Views
		}
	})

	return CategoryView{
		Name:         category.Name,
		Movies:       movies,
		AverageViews: averageViews(movies),
		Cells:        matched,
	}
}
