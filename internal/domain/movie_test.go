package domain

import "testing"

func TestMovie_PosterURL(t *testing.T) {
	m := Movie{PosterPath: "/abc123.jpg"}
	want := "https://image.tmdb.org/t/p/w342/abc123.jpg"
	if got := m.PosterURL("w342"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if got := (Movie{}).PosterURL("w342"); got != "" {
		t.Fatalf("no poster must yield empty url, got %q", got)
	}
}

func TestMovie_ReleaseYear(t *testing.T) {
	if got := (Movie{ReleaseDate: "2024-06-01"}).ReleaseYear(); got != "2024" {
		t.Fatalf("expected 2024, got %q", got)
	}
	if got := (Movie{}).ReleaseYear(); got != "" {
		t.Fatalf("missing date must yield empty year, got %q", got)
	}
}

func TestMovieDetail_FormattedRuntime(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, ""},
		{-5, ""},
		{45, "45m"},
		{60, "1h 0m"},
		{139, "2h 19m"},
	}
	for _, c := range cases {
		d := MovieDetail{Runtime: c.minutes}
		if got := d.FormattedRuntime(); got != c.want {
			t.Errorf("runtime %d: expected %q, got %q", c.minutes, c.want, got)
		}
	}
}

func TestMovieDetail_GenreNames(t *testing.T) {
	d := MovieDetail{Genres: []Genre{{Name: "Action"}, {Name: "Comedy"}}}
	if got := d.GenreNames(); got != "Action, Comedy" {
		t.Fatalf("expected joined names, got %q", got)
	}
	if got := (MovieDetail{}).GenreNames(); got != "" {
		t.Fatalf("no genres must yield empty string, got %q", got)
	}
}
