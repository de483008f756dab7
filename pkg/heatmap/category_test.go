package heatmap

import (
	"testing"

	"titleheat/models"
)

func movie(title string, views int, id, word string) Movie {
	return Movie{Title: title, Views: views, ID: id, Word: word}
}

func feelingsCells() []Cell {
	return []Cell{
		{Bucket: 90, Word: "good", AverageViews: 200, Movies: []Movie{
			movie("Good Man", 300, "tt1", "good"),
			movie("Feel Good", 100, "tt2", "good"),
		}},
		{Bucket: 90, Word: "love", AverageViews: 500, Movies: []Movie{
			movie("Love War", 500, "tt3", "love"),
			movie("Good Man", 300, "tt1", "love"), // shared with the good cell
		}},
		{Bucket: 90, Word: "man", AverageViews: 300, Movies: []Movie{
			movie("Good Man", 300, "tt1", "man"),
		}},
	}
}

func TestAggregateByCategoryUnionsMemberCells(t *testing.T) {
	category := models.CategoryDefinition{Name: "feelings", Words: []string{"good", "love"}}
	view := AggregateByCategory(feelingsCells(), category, nil)

	if view.Name != "feelings" {
		t.Errorf("Name = %q", view.Name)
	}
	if len(view.Cells) != 2 {
		t.Fatalf("matched %d cells, want 2", len(view.Cells))
	}
	// tt1 appears in both member cells but once in the union.
	if len(view.Movies) != 3 {
		t.Fatalf("got %d movies, want 3", len(view.Movies))
	}
	// No priority list: views descending.
	wantOrder := []string{"tt3", "tt1", "tt2"}
	for i, id := range wantOrder {
		if view.Movies[i].ID != id {
			t.Errorf("movie[%d] = %s, want %s", i, view.Movies[i].ID, id)
		}
	}
	if view.AverageViews != 300 {
		t.Errorf("AverageViews = %d, want 300", view.AverageViews)
	}
}

func TestAggregateByCategoryIsSupersetOfitsCells(t *testing.T) {
	cells := feelingsCells()
	category := models.CategoryDefinition{Name: "feelings", Words: []string{"good", "love"}}
	view := AggregateByCategory(cells, category, nil)

	ids := make(map[string]bool, len(view.Movies))
	for _, m := range view.Movies {
		ids[m.ID] = true
	}
	for _, cell := range cells {
		if cell.Word == "man" {
			continue
		}
		for _, m := range cell.Movies {
			if !ids[m.ID] {
				t.Errorf("movie %s from cell %q missing from category view", m.ID, cell.Word)
			}
		}
	}
}

func TestAggregateByCategoryPriorityFirst(t *testing.T) {
	category := models.CategoryDefinition{Name: "feelings", Words: []string{"good", "love"}}
	view := AggregateByCategory(feelingsCells(), category, []string{"tt2", "tt1"})

	wantOrder := []string{"tt2", "tt1", "tt3"}
	for i, id := range wantOrder {
		if view.Movies[i].ID != id {
			t.Errorf("movie[%d] = %s, want %s", i, view.Movies[i].ID, id)
		}
	}
}

func TestAggregateByCategoryIgnoresUnknownPriorityIDs(t *testing.T) {
	category := models.CategoryDefinition{Name: "feelings", Words: []string{"good", "love"}}
	view := AggregateByCategory(feelingsCells(), category, []string{"tt999"})

	wantOrder := []string{"tt3", "tt1", "tt2"}
	for i, id := range wantOrder {
		if view.Movies[i].ID != id {
			t.Errorf("movie[%d] = %s, want %s", i, view.Movies[i].ID, id)
		}
	}
}

func TestAggregateByCategoryEmpty(t *testing.T) {
	category := models.CategoryDefinition{Name: "ghosts", Words: []string{"ghost"}}
	view := AggregateByCategory(feelingsCells(), category, nil)

	if len(view.Movies) != 0 || len(view.Cells) != 0 {
		t.Errorf("expected empty view, got %d movies, %d cells",
			len(view.Movies), len(view.Cells))
	}
	if view.AverageViews != 0 {
		t.Errorf("AverageViews = %d, want 0", view.AverageViews)
	}
}
