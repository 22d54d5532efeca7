package domain

import "context"

// CatalogClient is the read-only boundary with the remote movie catalog.
// Implementations report failures faithfully and never retry; deciding
// whether a failure reaches the user is the repository's job.
type CatalogClient interface {
	// TrendingMovies returns the combined trending list. All page requests
	// must succeed; there is no partial-success result.
	TrendingMovies(ctx context.Context) ([]Movie, error)

	// MovieDetail returns the full record for one movie id.
	// Returns ErrMovieNotFound when the id does not exist upstream.
	MovieDetail(ctx context.Context, id int) (MovieDetail, error)

	// Genres returns the genre reference table.
	Genres(ctx context.Context) ([]Genre, error)
}

// Store is the durable local cache, one table per resource kind.
// Replace operations clear then insert as one atomic unit: readers never
// observe a cleared-but-not-yet-reinserted table.
type Store interface {
	// Movies returns all cached movies ordered by popularity descending.
	Movies() ([]Movie, error)
	ReplaceMovies(movies []Movie) error
	MovieCount() (int, error)

	// Detail returns the cached record for id; ok is false on a miss.
	Detail(id int) (MovieDetail, bool, error)
	SaveDetail(detail MovieDetail) error
	DeleteDetail(id int) error

	// Genres returns all cached genres ordered by name ascending.
	Genres() ([]Genre, error)
	ReplaceGenres(genres []Genre) error
	GenreCount() (int, error)

	// GenresByIDs returns the cached genres whose id is in ids, in stored
	// order. Unknown ids are silently absent, never an error.
	GenresByIDs(ids []int) ([]Genre, error)

	// WatchMovies re-emits the full movie read after each commit that
	// touched the movies table. The channel closes when ctx is done.
	WatchMovies(ctx context.Context) <-chan []Movie
	WatchGenres(ctx context.Context) <-chan []Genre

	Close() error
}
