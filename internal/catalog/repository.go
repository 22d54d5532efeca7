package catalog

import (
	"context"
	"log/slog"

	"github.com/JimClermonts/amro-assignment/internal/domain"
)

// Repository orchestrates the remote catalog client and the local cache
// store per resource kind, producing cache-then-network snapshot streams.
//
// Failure suppression lives here and only here: a remote failure is muted
// whenever a non-empty cached value was already emitted for the same
// invocation. The client and the store always report faithfully upward.
type Repository struct {
	client domain.CatalogClient
	store  domain.Store
	logger *slog.Logger
}

// NewRepository creates a new synchronization repository.
func NewRepository(client domain.CatalogClient, store domain.Store, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{client: client, store: store, logger: logger}
}

// ObserveMovies streams the trending list: Pending, the cached set when
// non-empty, then the result of a remote refresh. The remote fetch is always
// attempted, regardless of cache state.
func (r *Repository) ObserveMovies(ctx context.Context) <-chan domain.Snapshot[[]domain.Movie] {
	return observe(ctx, r.logger.With("resource", "movies"),
		func() ([]domain.Movie, bool, error) {
			movies, err := r.store.Movies()
			return movies, len(movies) > 0, err
		},
		r.client.TrendingMovies,
		r.store.ReplaceMovies,
		true,
	)
}

// ObserveDetail streams the detail record for one movie id. Cache lookup and
// persistence are scoped to that id only.
func (r *Repository) ObserveDetail(ctx context.Context, id int) <-chan domain.Snapshot[domain.MovieDetail] {
	return observe(ctx, r.logger.With("resource", "detail", "movieID", id),
		func() (domain.MovieDetail, bool, error) {
			return r.store.Detail(id)
		},
		func(ctx context.Context) (domain.MovieDetail, error) {
			return r.client.MovieDetail(ctx, id)
		},
		r.store.SaveDetail,
		true,
	)
}

// ObserveGenres streams the genre reference table. Genres change rarely, so
// the remote fetch happens only when the cache is empty; with a non-empty
// cache the stream is Pending, Value(cached), done, without a remote call.
func (r *Repository) ObserveGenres(ctx context.Context) <-chan domain.Snapshot[[]domain.Genre] {
	return observe(ctx, r.logger.With("resource", "genres"),
		func() ([]domain.Genre, bool, error) {
			genres, err := r.store.Genres()
			return genres, len(genres) > 0, err
		},
		r.client.Genres,
		r.store.ReplaceGenres,
		false,
	)
}

// RefreshMovies performs a forced, non-streaming refresh of the trending
// list: one remote fetch, cache replacement on success. No cache-first
// emission and no failure suppression.
func (r *Repository) RefreshMovies(ctx context.Context) ([]domain.Movie, error) {
	movies, err := r.client.TrendingMovies(ctx)
	if err != nil {
		r.logger.Error("forced refresh failed", "error", err)
		return nil, err
	}
	if err := r.store.ReplaceMovies(movies); err != nil {
		r.logger.Error("failed to persist refreshed movies", "error", err)
	}
	r.logger.Info("refreshed movies", "count", len(movies))
	return movies, nil
}

// GenresByIDs resolves genre ids against the cache only. Ids not present in
// the cache are silently absent; results keep the cache's stored order.
func (r *Repository) GenresByIDs(ids []int) ([]domain.Genre, error) {
	return r.store.GenresByIDs(ids)
}

// observe runs the cache-then-network algorithm for one resource stream.
//
// The returned channel is buffered for the maximum number of emissions, so
// the producer goroutine never leaks even if the consumer walks away; sends
// still select on ctx so a detached subscriber cancels the in-flight work.
// The channel closes after the terminal emission.
func observe[T any](
	ctx context.Context,
	logger *slog.Logger,
	readCache func() (T, bool, error),
	fetch func(ctx context.Context) (T, error),
	persist func(T) error,
	alwaysFetch bool,
) <-chan domain.Snapshot[T] {
	ch := make(chan domain.Snapshot[T], 3)

	go func() {
		defer close(ch)

		if !emit(ctx, ch, domain.Pending[T]()) {
			return
		}

		cached, haveCache, err := readCache()
		if err != nil {
			// The cache is an optimization, not an authority: treat a failed
			// read as a cache miss and let the remote result decide.
			logger.Warn("cache read failed", "error", err)
			haveCache = false
		}
		if haveCache {
			if !emit(ctx, ch, domain.Cached(cached)) {
				return
			}
			if !alwaysFetch {
				logger.Debug("cache hit, skipping remote fetch")
				return
			}
		}

		fresh, err := fetch(ctx)
		if err != nil {
			if haveCache {
				// The cached value already satisfied the request.
				logger.Warn("remote fetch failed, keeping cached value", "error", err)
				return
			}
			logger.Error("remote fetch failed with empty cache", "error", err)
			emit(ctx, ch, domain.Failed[T](err))
			return
		}

		if err := persist(fresh); err != nil {
			logger.Error("failed to persist fetched value", "error", err)
		}
		emit(ctx, ch, domain.Fresh(fresh))
	}()

	return ch
}

// emit sends one snapshot, giving up when the subscriber has detached.
func emit[T any](ctx context.Context, ch chan<- domain.Snapshot[T], s domain.Snapshot[T]) bool {
	select {
	case ch <- s:
		return true
	case <-ctx.Done():
		return false
	}
}
