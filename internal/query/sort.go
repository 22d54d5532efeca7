package query

import (
	"sort"
	"strings"

	"github.com/JimClermonts/amro-assignment/internal/domain"
)

// SortKey selects one of the six orderings of the movie list
type SortKey int

const (
	PopularityDesc SortKey = iota // default
	PopularityAsc
	TitleAsc
	TitleDesc
	ReleaseDateDesc
	ReleaseDateAsc
)

// String returns the display name for the sort key
func (k SortKey) String() string {
	switch k {
	case PopularityDesc:
		return "Popularity (high to low)"
	case PopularityAsc:
		return "Popularity (low to high)"
	case TitleAsc:
		return "Title (A-Z)"
	case TitleDesc:
		return "Title (Z-A)"
	case ReleaseDateDesc:
		return "Release date (newest)"
	case ReleaseDateAsc:
		return "Release date (oldest)"
	default:
		return "Unknown"
	}
}

// SortKeys returns all sort keys in menu order
func SortKeys() []SortKey {
	return []SortKey{
		PopularityDesc, PopularityAsc,
		TitleAsc, TitleDesc,
		ReleaseDateDesc, ReleaseDateAsc,
	}
}

// ParseSortKey converts a config string like "title_asc" to a SortKey.
// Unknown input falls back to the default ordering.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(s) {
	case "popularity_desc":
		return PopularityDesc
	case "popularity_asc":
		return PopularityAsc
	case "title_asc":
		return TitleAsc
	case "title_desc":
		return TitleDesc
	case "release_date_desc":
		return ReleaseDateDesc
	case "release_date_asc":
		return ReleaseDateAsc
	default:
		return PopularityDesc
	}
}

// Sort returns a new slice ordered by the given key. The sort is stable:
// ties keep their original relative order. Titles compare case-insensitively
// and a missing release date compares as the empty string, so undated movies
// sort first ascending and last descending. An unknown key returns a copy in
// input order.
func Sort(movies []domain.Movie, key SortKey) []domain.Movie {
	sorted := make([]domain.Movie, len(movies))
	copy(sorted, movies)

	var less func(i, j int) bool
	switch key {
	case PopularityDesc:
		less = func(i, j int) bool { return sorted[i].Popularity > sorted[j].Popularity }
	case PopularityAsc:
		less = func(i, j int) bool { return sorted[i].Popularity < sorted[j].Popularity }
	case TitleAsc:
		less = func(i, j int) bool {
			return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
		}
	case TitleDesc:
		less = func(i, j int) bool {
			return strings.ToLower(sorted[i].Title) > strings.ToLower(sorted[j].Title)
		}
	case ReleaseDateDesc:
		less = func(i, j int) bool { return sorted[i].ReleaseDate > sorted[j].ReleaseDate }
	case ReleaseDateAsc:
		less = func(i, j int) bool { return sorted[i].ReleaseDate < sorted[j].ReleaseDate }
	default:
		return sorted
	}

	sort.SliceStable(sorted, less)
	return sorted
}
