package viewstate

import (
	"context"
	"sync"

	"github.com/JimClermonts/amro-assignment/internal/domain"
	"github.com/JimClermonts/amro-assignment/internal/query"
)

// MoviesState is the render-ready state of the movie list screen.
type MoviesState struct {
	Loading   bool
	Movies    []domain.Movie // filtered, sorted, searched
	Genres    []domain.Genre
	Selected  map[int]bool // selected genre ids
	Sort      query.SortKey
	Query     string
	FromCache bool  // last movie set came from the local cache
	Err       error // surfaced failure cause, nil while a fallback exists
}

// IsEmpty returns true when loading has finished with nothing to show.
func (s MoviesState) IsEmpty() bool {
	return !s.Loading && len(s.Movies) == 0
}

// MoviesViewState consumes repository snapshots and user input and publishes
// render-ready MoviesState values through a broadcast cell. Filtering,
// sorting, and searching are re-applied on every input change against the
// full unfiltered set.
type MoviesViewState struct {
	mu    sync.Mutex
	all   []domain.Movie // unfiltered set from the last Value snapshot
	state MoviesState
	cell  *Cell[MoviesState]
}

// NewMoviesViewState creates a view state with the given initial sort key.
func NewMoviesViewState(sortKey query.SortKey) *MoviesViewState {
	v := &MoviesViewState{
		state: MoviesState{
			Loading:  true,
			Selected: make(map[int]bool),
			Sort:     sortKey,
		},
		cell: NewCell[MoviesState](),
	}
	v.cell.Set(v.state)
	return v
}

// Subscribe returns a channel of render-ready states (latest value first).
func (v *MoviesViewState) Subscribe(ctx context.Context) <-chan MoviesState {
	return v.cell.Subscribe(ctx)
}

// State returns the current render-ready state.
func (v *MoviesViewState) State() MoviesState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// ApplySnapshot folds one movie-list snapshot into the state.
func (v *MoviesViewState) ApplySnapshot(s domain.Snapshot[[]domain.Movie]) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch s.Phase {
	case domain.PhasePending:
		v.state.Loading = true
		v.state.Err = nil
	case domain.PhaseValue:
		v.state.Loading = false
		v.state.Err = nil
		v.state.FromCache = s.FromCache
		v.all = s.Value
		v.applyLocked()
	case domain.PhaseFailure:
		v.state.Loading = false
		v.state.Err = s.Err
	}
	v.cell.Set(v.state)
}

// ApplyGenres folds one genre-list snapshot into the state. Pending is
// ignored; a genre failure is surfaced but does not disturb the movie list.
func (v *MoviesViewState) ApplyGenres(s domain.Snapshot[[]domain.Genre]) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch s.Phase {
	case domain.PhaseValue:
		v.state.Genres = s.Value
	case domain.PhaseFailure:
		v.state.Err = s.Err
	}
	v.cell.Set(v.state)
}

// ToggleGenre flips one genre id in the selection and re-applies the filter.
func (v *MoviesViewState) ToggleGenre(id int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	selected := make(map[int]bool, len(v.state.Selected)+1)
	for k := range v.state.Selected {
		selected[k] = true
	}
	if selected[id] {
		delete(selected, id)
	} else {
		selected[id] = true
	}
	v.state.Selected = selected
	v.applyLocked()
	v.cell.Set(v.state)
}

// ClearGenres removes all genre filters.
func (v *MoviesViewState) ClearGenres() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Selected = make(map[int]bool)
	v.applyLocked()
	v.cell.Set(v.state)
}

// SetSort changes the sort key and re-applies the ordering.
func (v *MoviesViewState) SetSort(key query.SortKey) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Sort = key
	v.applyLocked()
	v.cell.Set(v.state)
}

// SetQuery changes the title search query.
func (v *MoviesViewState) SetQuery(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Query = q
	v.applyLocked()
	v.cell.Set(v.state)
}

// ClearError drops a surfaced failure after it has been shown.
func (v *MoviesViewState) ClearError() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Err = nil
	v.cell.Set(v.state)
}

// applyLocked recomputes the display list: filter, then sort, then search.
func (v *MoviesViewState) applyLocked() {
	movies := query.FilterByGenres(v.all, v.state.Selected)
	movies = query.Sort(movies, v.state.Sort)
	v.state.Movies = query.SearchTitles(movies, v.state.Query)
}
