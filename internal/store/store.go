package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/JimClermonts/amro-assignment/internal/domain"
)

// Bucket names, one per resource kind
var (
	bucketMovies  = []byte("movies")
	bucketDetails = []byte("details")
	bucketGenres  = []byte("genres")
)

// CacheStore implements domain.Store using BoltDB.
//
// Replace operations run clear+insert inside a single write transaction, so
// readers never observe a cleared-but-not-yet-reinserted table. Watchers are
// notified only after the transaction has committed.
type CacheStore struct {
	db     *bolt.DB
	logger *slog.Logger

	mu            sync.Mutex // protects watcher registries
	nextWatcherID int
	movieWatchers map[int]chan []domain.Movie
	genreWatchers map[int]chan []domain.Genre
}

// NewCacheStore opens (or creates) the cache database under dir.
func NewCacheStore(dir string, logger *slog.Logger) (*CacheStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "amro.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketMovies, bucketDetails, bucketGenres} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CacheStore{
		db:            db,
		logger:        logger,
		movieWatchers: make(map[int]chan []domain.Movie),
		genreWatchers: make(map[int]chan []domain.Genre),
	}, nil
}

func (s *CacheStore) Close() error {
	return s.db.Close()
}

// === Movies ===

// Movies returns all cached movies ordered by popularity descending.
func (s *CacheStore) Movies() ([]domain.Movie, error) {
	var movies []domain.Movie
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketMovies).ForEach(func(_, v []byte) error {
			var m domain.Movie
			if err := json.Unmarshal(v, &m); err != nil {
				return err
			}
			movies = append(movies, m)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Popularity > movies[j].Popularity
	})
	return movies, nil
}

// ReplaceMovies atomically swaps the cached movie set for the given one.
func (s *CacheStore) ReplaceMovies(movies []domain.Movie) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketMovies); err != nil {
			return err
		}
		b, err := tx.CreateBucket(bucketMovies)
		if err != nil {
			return err
		}
		for _, m := range movies {
			data, err := json.Marshal(m)
			if err != nil {
				return err
			}
			if err := b.Put(itemKey(m.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyMovieWatchers()
	return nil
}

func (s *CacheStore) MovieCount() (int, error) {
	return s.count(bucketMovies)
}

// === Movie details ===

// Detail returns the cached record for id; ok is false on a miss.
func (s *CacheStore) Detail(id int) (domain.MovieDetail, bool, error) {
	var (
		detail domain.MovieDetail
		found  bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketDetails).Get(itemKey(id))
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &detail); err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return domain.MovieDetail{}, false, err
	}
	return detail, found, nil
}

// SaveDetail inserts or replaces the record for detail.ID. Other ids are
// untouched.
func (s *CacheStore) SaveDetail(detail domain.MovieDetail) error {
	data, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDetails).Put(itemKey(detail.ID), data)
	})
}

func (s *CacheStore) DeleteDetail(id int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDetails).Delete(itemKey(id))
	})
}

// === Genres ===

// Genres returns all cached genres ordered by name ascending.
func (s *CacheStore) Genres() ([]domain.Genre, error) {
	var genres []domain.Genre
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketGenres).ForEach(func(_, v []byte) error {
			var g domain.Genre
			if err := json.Unmarshal(v, &g); err != nil {
				return err
			}
			genres = append(genres, g)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(genres, func(i, j int) bool {
		return strings.ToLower(genres[i].Name) < strings.ToLower(genres[j].Name)
	})
	return genres, nil
}

// ReplaceGenres atomically swaps the cached genre set for the given one.
func (s *CacheStore) ReplaceGenres(genres []domain.Genre) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketGenres); err != nil {
			return err
		}
		b, err := tx.CreateBucket(bucketGenres)
		if err != nil {
			return err
		}
		for _, g := range genres {
			data, err := json.Marshal(g)
			if err != nil {
				return err
			}
			if err := b.Put(itemKey(g.ID), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyGenreWatchers()
	return nil
}

func (s *CacheStore) GenreCount() (int, error) {
	return s.count(bucketGenres)
}

// GenresByIDs returns the cached genres whose id is in ids, in stored order.
func (s *CacheStore) GenresByIDs(ids []int) ([]domain.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	all, err := s.Genres()
	if err != nil {
		return nil, err
	}

	var genres []domain.Genre
	for _, g := range all {
		if wanted[g.ID] {
			genres = append(genres, g)
		}
	}
	return genres, nil
}

// === Watch ===

// WatchMovies emits the current movie read immediately, then again after
// each committed change to the movies table. The channel closes when ctx is
// done. Slow receivers see the latest state, not every intermediate one.
func (s *CacheStore) WatchMovies(ctx context.Context) <-chan []domain.Movie {
	ch := make(chan []domain.Movie, 1)

	s.mu.Lock()
	id := s.nextWatcherID
	s.nextWatcherID++
	s.movieWatchers[id] = ch
	if movies, err := s.Movies(); err == nil {
		ch <- movies
	}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.movieWatchers, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

// WatchGenres is the genre-table counterpart of WatchMovies.
func (s *CacheStore) WatchGenres(ctx context.Context) <-chan []domain.Genre {
	ch := make(chan []domain.Genre, 1)

	s.mu.Lock()
	id := s.nextWatcherID
	s.nextWatcherID++
	s.genreWatchers[id] = ch
	if genres, err := s.Genres(); err == nil {
		ch <- genres
	}
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		delete(s.genreWatchers, id)
		close(ch)
		s.mu.Unlock()
	}()

	return ch
}

func (s *CacheStore) notifyMovieWatchers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.movieWatchers) == 0 {
		return
	}

	movies, err := s.Movies()
	if err != nil {
		s.logger.Error("failed to read movies for watchers", "error", err)
		return
	}
	for _, ch := range s.movieWatchers {
		sendLatest(ch, movies)
	}
}

func (s *CacheStore) notifyGenreWatchers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.genreWatchers) == 0 {
		return
	}

	genres, err := s.Genres()
	if err != nil {
		s.logger.Error("failed to read genres for watchers", "error", err)
		return
	}
	for _, ch := range s.genreWatchers {
		sendLatest(ch, genres)
	}
}

// sendLatest replaces any undelivered value so the receiver always gets the
// most recent read.
func sendLatest[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}

// === Helpers ===

func (s *CacheStore) count(bucket []byte) (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(bucket).Stats().KeyN
		return nil
	})
	return n, err
}

func itemKey(id int) []byte {
	return []byte(strconv.Itoa(id))
}
