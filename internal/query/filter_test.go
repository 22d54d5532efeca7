package query

import (
	"testing"

	"github.com/JimClermonts/amro-assignment/internal/domain"
)

func TestFilterByGenres_EmptySelectionIsNoFilter(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, GenreIDs: []int{28}},
		{ID: 2, GenreIDs: nil},
	}

	got := FilterByGenres(movies, nil)
	if len(got) != 2 {
		t.Fatalf("nil selection: expected all movies, got %d", len(got))
	}

	got = FilterByGenres(movies, map[int]bool{})
	if len(got) != 2 {
		t.Fatalf("empty selection: expected all movies, got %d", len(got))
	}
}

func TestFilterByGenres_OrSemantics(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, GenreIDs: []int{28, 12}},  // action, adventure
		{ID: 2, GenreIDs: []int{35}},      // comedy
		{ID: 3, GenreIDs: []int{28, 35}},  // action, comedy
		{ID: 4, GenreIDs: []int{99}},      // documentary
		{ID: 5, GenreIDs: nil},            // no genres at all
	}

	got := FilterByGenres(movies, map[int]bool{28: true, 35: true})
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d movies, got %d", len(want), len(got))
	}
	for i, m := range got {
		if m.ID != want[i] {
			t.Fatalf("position %d: expected id %d, got %d", i, want[i], m.ID)
		}
	}
}

func TestFilterByGenres_NoMatches(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, GenreIDs: []int{28}},
		{ID: 2, GenreIDs: []int{35}},
	}

	got := FilterByGenres(movies, map[int]bool{16: true})
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestFilterByGenres_MultipleMatchesCountOnce(t *testing.T) {
	// A movie carrying several selected genres must appear exactly once.
	movies := []domain.Movie{
		{ID: 1, GenreIDs: []int{28, 35, 12}},
	}

	got := FilterByGenres(movies, map[int]bool{28: true, 35: true, 12: true})
	if len(got) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(got))
	}
}
