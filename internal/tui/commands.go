package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JimClermonts/amro-assignment/internal/catalog"
	"github.com/JimClermonts/amro-assignment/internal/domain"
)

// waitForMovieSnapshot blocks on the next emission of the movie stream
func waitForMovieSnapshot(ch <-chan domain.Snapshot[[]domain.Movie]) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return streamDoneMsg{Resource: "movies"}
		}
		return movieSnapshotMsg(s)
	}
}

// waitForGenreSnapshot blocks on the next emission of the genre stream
func waitForGenreSnapshot(ch <-chan domain.Snapshot[[]domain.Genre]) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return streamDoneMsg{Resource: "genres"}
		}
		return genreSnapshotMsg(s)
	}
}

// waitForDetailSnapshot blocks on the next emission of a detail stream
func waitForDetailSnapshot(movieID int, ch <-chan domain.Snapshot[domain.MovieDetail]) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return streamDoneMsg{Resource: "detail"}
		}
		return detailSnapshotMsg{MovieID: movieID, Snapshot: s}
	}
}

// forceRefresh runs the non-streaming forced refresh
func forceRefresh(ctx context.Context, repo *catalog.Repository) tea.Cmd {
	return func() tea.Msg {
		movies, err := repo.RefreshMovies(ctx)
		return refreshDoneMsg{Movies: movies, Err: err}
	}
}
