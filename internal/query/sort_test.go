package query

import (
	"testing"

	"github.com/JimClermonts/amro-assignment/internal/domain"
)

func titles(movies []domain.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func equalTitles(got []domain.Movie, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, m := range got {
		if m.Title != want[i] {
			return false
		}
	}
	return true
}

func TestSort_PopularityDesc(t *testing.T) {
	movies := []domain.Movie{
		{Title: "Low", Popularity: 10},
		{Title: "High", Popularity: 90},
		{Title: "Mid", Popularity: 50},
	}

	got := Sort(movies, PopularityDesc)
	if !equalTitles(got, []string{"High", "Mid", "Low"}) {
		t.Fatalf("unexpected order: %v", titles(got))
	}
	// Input must be untouched.
	if movies[0].Title != "Low" {
		t.Fatalf("input slice was mutated: %v", titles(movies))
	}
}

func TestSort_TitleCaseInsensitive(t *testing.T) {
	movies := []domain.Movie{
		{Title: "banana"},
		{Title: "Apple"},
		{Title: "cherry"},
	}

	got := Sort(movies, TitleAsc)
	if !equalTitles(got, []string{"Apple", "banana", "cherry"}) {
		t.Fatalf("asc order: %v", titles(got))
	}

	got = Sort(movies, TitleDesc)
	if !equalTitles(got, []string{"cherry", "banana", "Apple"}) {
		t.Fatalf("desc order: %v", titles(got))
	}
}

func TestSort_MissingReleaseDate(t *testing.T) {
	movies := []domain.Movie{
		{Title: "Dated", ReleaseDate: "2024-06-01"},
		{Title: "Undated"},
		{Title: "Older", ReleaseDate: "1999-01-01"},
	}

	got := Sort(movies, ReleaseDateAsc)
	if !equalTitles(got, []string{"Undated", "Older", "Dated"}) {
		t.Fatalf("asc: undated must come first, got %v", titles(got))
	}

	got = Sort(movies, ReleaseDateDesc)
	if !equalTitles(got, []string{"Dated", "Older", "Undated"}) {
		t.Fatalf("desc: undated must come last, got %v", titles(got))
	}
}

func TestSort_StableOnTies(t *testing.T) {
	movies := []domain.Movie{
		{ID: 1, Title: "First", Popularity: 50},
		{ID: 2, Title: "Second", Popularity: 50},
		{ID: 3, Title: "Third", Popularity: 50},
	}

	got := Sort(movies, PopularityDesc)
	if !equalTitles(got, []string{"First", "Second", "Third"}) {
		t.Fatalf("ties must keep input order, got %v", titles(got))
	}
}

func TestSort_UnknownKeyReturnsCopy(t *testing.T) {
	movies := []domain.Movie{
		{Title: "B", Popularity: 10},
		{Title: "A", Popularity: 20},
	}

	got := Sort(movies, SortKey(99))
	if !equalTitles(got, []string{"B", "A"}) {
		t.Fatalf("unknown key must preserve order, got %v", titles(got))
	}
	got[0].Title = "mutated"
	if movies[0].Title != "B" {
		t.Fatal("result must be a copy, not the input slice")
	}
}

func TestSort_Idempotent(t *testing.T) {
	movies := []domain.Movie{
		{Title: "C", Popularity: 30},
		{Title: "A", Popularity: 10},
		{Title: "B", Popularity: 20},
	}

	once := Sort(movies, PopularityAsc)
	twice := Sort(once, PopularityAsc)
	if !equalTitles(twice, titles(once)) {
		t.Fatalf("sorting a sorted list changed it: %v vs %v", titles(once), titles(twice))
	}
}

func TestSort_Empty(t *testing.T) {
	got := Sort(nil, TitleAsc)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", titles(got))
	}
}

func TestParseSortKey(t *testing.T) {
	cases := []struct {
		in   string
		want SortKey
	}{
		{"popularity_desc", PopularityDesc},
		{"popularity_asc", PopularityAsc},
		{"title_asc", TitleAsc},
		{"TITLE_DESC", TitleDesc},
		{"release_date_desc", ReleaseDateDesc},
		{"release_date_asc", ReleaseDateAsc},
		{"garbage", PopularityDesc},
		{"", PopularityDesc},
	}
	for _, c := range cases {
		if got := ParseSortKey(c.in); got != c.want {
			t.Errorf("ParseSortKey(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
