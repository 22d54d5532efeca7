package query

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/JimClermonts/amro-assignment/internal/domain"
)

// SearchTitles returns the movies whose title fuzzy-matches query, closest
// match first. An empty query returns the input unchanged.
func SearchTitles(movies []domain.Movie, query string) []domain.Movie {
	query = strings.TrimSpace(query)
	if query == "" {
		return movies
	}

	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Title
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Sort(ranks)

	matched := make([]domain.Movie, len(ranks))
	for i, r := range ranks {
		matched[i] = movies[r.OriginalIndex]
	}
	return matched
}
