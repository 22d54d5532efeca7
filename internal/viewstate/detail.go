package viewstate

import (
	"context"
	"sync"

	"github.com/JimClermonts/amro-assignment/internal/domain"
)

// DetailState is the render-ready state of the movie detail screen.
type DetailState struct {
	Loading   bool
	Detail    *domain.MovieDetail // nil until the first Value snapshot
	FromCache bool
	Err       error
}

// DetailViewState consumes detail snapshots for one movie id.
type DetailViewState struct {
	mu    sync.Mutex
	state DetailState
	cell  *Cell[DetailState]
}

// NewDetailViewState creates a view state for the detail screen.
func NewDetailViewState() *DetailViewState {
	v := &DetailViewState{
		state: DetailState{Loading: true},
		cell:  NewCell[DetailState](),
	}
	v.cell.Set(v.state)
	return v
}

// Subscribe returns a channel of render-ready states (latest value first).
func (v *DetailViewState) Subscribe(ctx context.Context) <-chan DetailState {
	return v.cell.Subscribe(ctx)
}

// State returns the current render-ready state.
func (v *DetailViewState) State() DetailState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// ApplySnapshot folds one detail snapshot into the state.
func (v *DetailViewState) ApplySnapshot(s domain.Snapshot[domain.MovieDetail]) {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch s.Phase {
	case domain.PhasePending:
		v.state.Loading = true
		v.state.Err = nil
	case domain.PhaseValue:
		detail := s.Value
		v.state.Loading = false
		v.state.Err = nil
		v.state.Detail = &detail
		v.state.FromCache = s.FromCache
	case domain.PhaseFailure:
		v.state.Loading = false
		v.state.Err = s.Err
	}
	v.cell.Set(v.state)
}
