package domain

import (
	"fmt"
	"strings"
)

const posterBaseURL = "https://image.tmdb.org/t/p"

// Movie represents one entry of the trending list.
// Instances are immutable once constructed and replaced wholesale on refresh;
// fields are never merged between a cached and a fresh copy.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path,omitempty"`
	GenreIDs    []int   `json:"genre_ids,omitempty"`
	Popularity  float64 `json:"popularity"`
	ReleaseDate string  `json:"release_date,omitempty"` // ISO date, "" when unknown
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// PosterURL returns the full image URL for the given width class (e.g. "w342").
// Returns "" when the movie has no poster.
func (m Movie) PosterURL(size string) string {
	if m.PosterPath == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s%s", posterBaseURL, size, m.PosterPath)
}

// ReleaseYear returns the four-digit year of the release date, or "" when unknown.
func (m Movie) ReleaseYear() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// MovieDetail is the full record for a single movie. It shares the Movie id
// space but is fetched and cached independently, keyed per id.
type MovieDetail struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Tagline      string  `json:"tagline,omitempty"`
	Overview     string  `json:"overview,omitempty"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	Genres       []Genre `json:"genres,omitempty"` // resolved upstream, not ids
	Popularity   float64 `json:"popularity"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	Budget       int64   `json:"budget"`
	Revenue      int64   `json:"revenue"`
	Runtime      int     `json:"runtime,omitempty"` // minutes, 0 when unknown
	Status       string  `json:"status,omitempty"`
	IMDbID       string  `json:"imdb_id,omitempty"`
}

// FormattedRuntime returns the runtime as "2h 19m", or "" when unknown.
func (d MovieDetail) FormattedRuntime() string {
	if d.Runtime <= 0 {
		return ""
	}
	h := d.Runtime / 60
	m := d.Runtime % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// GenreNames returns the embedded genre names joined with ", ".
func (d MovieDetail) GenreNames() string {
	names := make([]string, len(d.Genres))
	for i, g := range d.Genres {
		names[i] = g.Name
	}
	return strings.Join(names, ", ")
}

// Genre is one entry of the genre reference table.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
