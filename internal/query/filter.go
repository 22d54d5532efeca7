package query

import "github.com/JimClermonts/amro-assignment/internal/domain"

// FilterByGenres returns the movies whose genre-id list intersects the
// selected set (OR across selected genres). An empty selection applies no
// filter and returns the input unchanged. Order is preserved.
func FilterByGenres(movies []domain.Movie, selected map[int]bool) []domain.Movie {
	if len(selected) == 0 {
		return movies
	}

	var filtered []domain.Movie
	for _, m := range movies {
		for _, id := range m.GenreIDs {
			if selected[id] {
				filtered = append(filtered, m)
				break
			}
		}
	}
	return filtered
}
