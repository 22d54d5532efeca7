package tui

import "github.com/JimClermonts/amro-assignment/internal/domain"

// Message types for the TUI

// movieSnapshotMsg carries one emission of the trending-movies stream
type movieSnapshotMsg domain.Snapshot[[]domain.Movie]

// genreSnapshotMsg carries one emission of the genre stream
type genreSnapshotMsg domain.Snapshot[[]domain.Genre]

// detailSnapshotMsg carries one emission of a movie-detail stream
type detailSnapshotMsg struct {
	MovieID  int
	Snapshot domain.Snapshot[domain.MovieDetail]
}

// streamDoneMsg signals that a resource stream has terminated
type streamDoneMsg struct {
	Resource string
}

// refreshDoneMsg signals that a forced refresh has finished
type refreshDoneMsg struct {
	Movies []domain.Movie
	Err    error
}
