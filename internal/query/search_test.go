package query

import (
	"testing"

	"github.com/JimClermonts/amro-assignment/internal/domain"
)

func TestSearchTitles_EmptyQueryReturnsAll(t *testing.T) {
	movies := []domain.Movie{
		{Title: "Dune"},
		{Title: "Oppenheimer"},
	}

	got := SearchTitles(movies, "")
	if len(got) != 2 {
		t.Fatalf("empty query: expected all movies, got %d", len(got))
	}
	got = SearchTitles(movies, "   ")
	if len(got) != 2 {
		t.Fatalf("whitespace query: expected all movies, got %d", len(got))
	}
}

func TestSearchTitles_CaseInsensitiveMatch(t *testing.T) {
	movies := []domain.Movie{
		{Title: "Dune: Part Two"},
		{Title: "Oppenheimer"},
		{Title: "The Dark Knight"},
	}

	got := SearchTitles(movies, "dune")
	if len(got) == 0 {
		t.Fatal("expected a match for 'dune'")
	}
	if got[0].Title != "Dune: Part Two" {
		t.Fatalf("expected Dune first, got %q", got[0].Title)
	}
}

func TestSearchTitles_NoMatch(t *testing.T) {
	movies := []domain.Movie{
		{Title: "Dune"},
		{Title: "Oppenheimer"},
	}

	got := SearchTitles(movies, "zzzzzz")
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestSearchTitles_ClosestFirst(t *testing.T) {
	movies := []domain.Movie{
		{Title: "The Matrix Resurrections"},
		{Title: "The Matrix"},
	}

	got := SearchTitles(movies, "the matrix")
	if len(got) != 2 {
		t.Fatalf("expected both matrix movies, got %d", len(got))
	}
	if got[0].Title != "The Matrix" {
		t.Fatalf("exact title should rank first, got %q", got[0].Title)
	}
}
