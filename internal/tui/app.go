package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JimClermonts/amro-assignment/internal/catalog"
	"github.com/JimClermonts/amro-assignment/internal/domain"
	"github.com/JimClermonts/amro-assignment/internal/query"
	"github.com/JimClermonts/amro-assignment/internal/tui/components"
	"github.com/JimClermonts/amro-assignment/internal/tui/styles"
	"github.com/JimClermonts/amro-assignment/internal/viewstate"
)

// view identifies the active screen
type view int

const (
	viewList view = iota
	viewDetail
)

// Model is the root Bubble Tea model
type Model struct {
	repo *catalog.Repository
	ctx  context.Context // app lifetime; cancelling it tears down all streams

	moviesVS *viewstate.MoviesViewState
	state    viewstate.MoviesState
	movieCh  <-chan domain.Snapshot[[]domain.Movie]
	genreCh  <-chan domain.Snapshot[[]domain.Genre]

	detailVS     *viewstate.DetailViewState
	detail       viewstate.DetailState
	detailCh     <-chan domain.Snapshot[domain.MovieDetail]
	detailID     int
	detailCancel context.CancelFunc

	keys        KeyMap
	spin        spinner.Model
	searchInput textinput.Model
	sortModal   components.SortModal
	filterModal components.FilterModal

	view       view
	cursor     int
	searching  bool
	refreshing bool
	width      int
	height     int
}

// NewModel creates the root model. Streams are started by Init.
func NewModel(ctx context.Context, repo *catalog.Repository, sortKey query.SortKey) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.AccentStyle

	ti := textinput.New()
	ti.Placeholder = "search titles"
	ti.Prompt = "/ "
	ti.CharLimit = 60

	vs := viewstate.NewMoviesViewState(sortKey)

	// Streams start here, not in Init: Init runs on a copy of the model, so
	// channels created there could not be stored for re-arming.
	return Model{
		repo:        repo,
		ctx:         ctx,
		moviesVS:    vs,
		state:       vs.State(),
		movieCh:     repo.ObserveMovies(ctx),
		genreCh:     repo.ObserveGenres(ctx),
		keys:        DefaultKeyMap(),
		spin:        sp,
		searchInput: ti,
		sortModal:   components.NewSortModal(),
		filterModal: components.NewFilterModal(),
	}
}

// Init arms the snapshot pumps for the already-running streams
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		waitForMovieSnapshot(m.movieCh),
		waitForGenreSnapshot(m.genreCh),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case movieSnapshotMsg:
		m.moviesVS.ApplySnapshot(domain.Snapshot[[]domain.Movie](msg))
		m.state = m.moviesVS.State()
		m.clampCursor()
		return m, tea.Batch(waitForMovieSnapshot(m.movieCh), m.spin.Tick)

	case genreSnapshotMsg:
		m.moviesVS.ApplyGenres(domain.Snapshot[[]domain.Genre](msg))
		m.state = m.moviesVS.State()
		return m, waitForGenreSnapshot(m.genreCh)

	case detailSnapshotMsg:
		if msg.MovieID != m.detailID || m.detailVS == nil {
			// Stale emission from a closed detail screen.
			return m, nil
		}
		m.detailVS.ApplySnapshot(msg.Snapshot)
		m.detail = m.detailVS.State()
		return m, tea.Batch(waitForDetailSnapshot(m.detailID, m.detailCh), m.spin.Tick)

	case refreshDoneMsg:
		m.refreshing = false
		if msg.Err != nil {
			m.moviesVS.ApplySnapshot(domain.Failed[[]domain.Movie](msg.Err))
		} else {
			m.moviesVS.ApplySnapshot(domain.Fresh(msg.Movies))
		}
		m.state = m.moviesVS.State()
		m.clampCursor()
		return m, nil

	case streamDoneMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Quit) && !m.searching {
		return m, tea.Quit
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.sortModal.Visible() {
		return m.handleSortModalKey(msg)
	}
	if m.filterModal.Visible() {
		return m.handleFilterModalKey(msg)
	}
	if m.view == viewDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.moviesVS.SetQuery("")
		m.state = m.moviesVS.State()
		m.clampCursor()
		return m, nil
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.moviesVS.SetQuery(m.searchInput.Value())
	m.state = m.moviesVS.State()
	m.clampCursor()
	return m, cmd
}

func (m Model) handleSortModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.sortModal.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.sortModal.MoveDown()
	case key.Matches(msg, m.keys.Enter):
		m.moviesVS.SetSort(m.sortModal.Selection())
		m.state = m.moviesVS.State()
		m.sortModal.Hide()
	case key.Matches(msg, m.keys.Back):
		m.sortModal.Hide()
	}
	return m, nil
}

func (m Model) handleFilterModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.filterModal.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.filterModal.MoveDown()
	case key.Matches(msg, m.keys.Back):
		m.filterModal.Hide()
	case msg.String() == " ":
		if g, ok := m.filterModal.CursorGenre(); ok {
			m.moviesVS.ToggleGenre(g.ID)
			m.state = m.moviesVS.State()
			m.filterModal.SetSelected(m.state.Selected)
			m.clampCursor()
		}
	case msg.String() == "c":
		m.moviesVS.ClearGenres()
		m.state = m.moviesVS.State()
		m.filterModal.SetSelected(m.state.Selected)
		m.clampCursor()
	case msg.String() == "backspace":
		m.filterModal.Backspace()
	default:
		if r := msg.Runes; len(r) == 1 {
			m.filterModal.TypeRune(r[0])
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		if m.detailCancel != nil {
			m.detailCancel()
			m.detailCancel = nil
		}
		m.detailVS = nil
		m.view = viewList
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Movies)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.state.Movies) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Enter):
		return m.openDetail()
	case key.Matches(msg, m.keys.Sort):
		m.sortModal.Show(m.state.Sort)
	case key.Matches(msg, m.keys.Filter):
		m.filterModal.Show(m.state.Genres, m.state.Selected)
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Clear):
		m.moviesVS.ClearGenres()
		m.moviesVS.SetQuery("")
		m.searchInput.SetValue("")
		m.state = m.moviesVS.State()
		m.clampCursor()
	case key.Matches(msg, m.keys.Refresh):
		if !m.refreshing {
			m.refreshing = true
			return m, tea.Batch(forceRefresh(m.ctx, m.repo), m.spin.Tick)
		}
	}
	return m, nil
}

// openDetail starts a detail stream for the movie under the cursor
func (m Model) openDetail() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.state.Movies) {
		return m, nil
	}
	movie := m.state.Movies[m.cursor]

	ctx, cancel := context.WithCancel(m.ctx)
	m.detailID = movie.ID
	m.detailCancel = cancel
	m.detailCh = m.repo.ObserveDetail(ctx, movie.ID)
	m.detailVS = viewstate.NewDetailViewState()
	m.detail = m.detailVS.State()
	m.view = viewDetail

	return m, tea.Batch(waitForDetailSnapshot(movie.ID, m.detailCh), m.spin.Tick)
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.state.Movies) {
		m.cursor = len(m.state.Movies) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) busy() bool {
	if m.refreshing || m.state.Loading {
		return true
	}
	return m.view == viewDetail && m.detail.Loading
}

// === View ===

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	switch {
	case m.sortModal.Visible():
		b.WriteString(m.centered(m.sortModal.View()))
	case m.filterModal.Visible():
		b.WriteString(m.centered(m.filterModal.View()))
	case m.view == viewDetail:
		b.WriteString(m.detailView())
	default:
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(m.statusView())
	return b.String()
}

func (m Model) headerView() string {
	title := "Trending Movies"
	if m.view == viewDetail && m.detail.Detail != nil {
		title = m.detail.Detail.Title
	}
	return styles.HeaderBar.Width(max(m.width, len(title)+2)).Render(title)
}

func (m Model) listView() string {
	if m.state.Loading && len(m.state.Movies) == 0 {
		return fmt.Sprintf("\n  %s loading trending movies…\n", m.spin.View())
	}
	if m.state.IsEmpty() {
		return "\n  " + styles.DimStyle.Render("no movies to show") + "\n"
	}

	var b strings.Builder
	if m.searching || m.searchInput.Value() != "" {
		b.WriteString("  " + m.searchInput.View())
		b.WriteString("\n")
	}

	rows := m.visibleRows()
	start, end := m.window(len(m.state.Movies), rows)
	for i := start; i < end; i++ {
		b.WriteString(m.rowView(i))
		b.WriteString("\n")
	}
	return b.String()
}

// rowView renders one list row: title, year, rating, popularity
func (m Model) rowView(i int) string {
	movie := m.state.Movies[i]

	title := movie.Title
	if year := movie.ReleaseYear(); year != "" {
		title += styles.DimStyle.Render(" (" + year + ")")
	}
	meta := fmt.Sprintf("★ %.1f  pop %.0f", movie.VoteAverage, movie.Popularity)

	line := fmt.Sprintf("  %s  %s", title, styles.SubtitleStyle.Render(meta))
	if i == m.cursor {
		line = styles.SelectedStyle.Render(fmt.Sprintf("%s  %s", movie.Title, meta))
	}
	return line
}

func (m Model) detailView() string {
	if m.detail.Loading && m.detail.Detail == nil {
		return fmt.Sprintf("\n  %s loading details…\n", m.spin.View())
	}
	if m.detail.Err != nil {
		return "\n  " + styles.ErrorStyle.Render("failed to load details: "+m.detail.Err.Error()) + "\n"
	}
	if m.detail.Detail == nil {
		return ""
	}

	d := m.detail.Detail
	var b strings.Builder

	if d.Tagline != "" {
		b.WriteString("  " + styles.AccentStyle.Render(d.Tagline) + "\n\n")
	}
	if d.Overview != "" {
		width := m.width - 4
		if width < 20 {
			width = 76
		}
		b.WriteString(lipgloss.NewStyle().Width(width).PaddingLeft(2).Render(d.Overview))
		b.WriteString("\n\n")
	}

	addLine := func(label, value string) {
		if value != "" {
			b.WriteString(fmt.Sprintf("  %s %s\n", styles.DimStyle.Render(label+":"), value))
		}
	}

	addLine("Genres", d.GenreNames())
	addLine("Released", d.ReleaseDate)
	addLine("Runtime", d.FormattedRuntime())
	addLine("Rating", fmt.Sprintf("%.1f (%d votes)", d.VoteAverage, d.VoteCount))
	if d.Budget > 0 {
		addLine("Budget", fmt.Sprintf("$%s", formatAmount(d.Budget)))
	}
	if d.Revenue > 0 {
		addLine("Revenue", fmt.Sprintf("$%s", formatAmount(d.Revenue)))
	}
	addLine("Status", d.Status)
	addLine("IMDb", d.IMDbID)

	if m.detail.FromCache {
		b.WriteString("\n  " + styles.StaleStyle.Render("showing cached details"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) statusView() string {
	var parts []string

	switch {
	case m.refreshing:
		parts = append(parts, m.spin.View()+" refreshing…")
	case m.state.Loading:
		parts = append(parts, m.spin.View()+" loading…")
	case m.state.FromCache && m.view == viewList:
		parts = append(parts, styles.StaleStyle.Render("offline data"))
	case m.view == viewList:
		parts = append(parts, styles.FreshStyle.Render(fmt.Sprintf("%d movies", len(m.state.Movies))))
	}

	if m.state.Err != nil {
		parts = append(parts, styles.ErrorStyle.Render(errorMessage(m.state.Err)))
	}

	if m.view == viewList && m.cursor < len(m.state.Movies) {
		if names := m.cursorGenres(); names != "" {
			parts = append(parts, styles.SubtitleStyle.Render(names))
		}
	}

	help := "j/k move · enter details · s sort · f filter · / search · r refresh · q quit"
	if m.view == viewDetail {
		help = "esc back · q quit"
	}
	parts = append(parts, styles.DimStyle.Render(help))

	return " " + strings.Join(parts, styles.DimStyle.Render("  │  "))
}

// cursorGenres resolves the cursor movie's genre ids against the cache.
// Unresolved ids are simply omitted.
func (m Model) cursorGenres() string {
	movie := m.state.Movies[m.cursor]
	genres, err := m.repo.GenresByIDs(movie.GenreIDs)
	if err != nil || len(genres) == 0 {
		return ""
	}
	// Movie cards show at most two genres.
	if len(genres) > 2 {
		genres = genres[:2]
	}
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}
	return strings.Join(names, ", ")
}

func (m Model) visibleRows() int {
	rows := m.height - 4 // header, search, status, padding
	if rows < 5 {
		rows = 20
	}
	return rows
}

// window returns the [start, end) slice of rows keeping the cursor visible
func (m Model) window(total, rows int) (int, int) {
	if total <= rows {
		return 0, total
	}
	start := m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	end := start + rows
	if end > total {
		end = total
		start = end - rows
	}
	return start, end
}

func (m Model) centered(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height-4, lipgloss.Center, lipgloss.Center, content)
}

// errorMessage translates failure causes into short user-facing text
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrCatalogUnreachable):
		return "catalog unreachable, check your connection"
	case errors.Is(err, domain.ErrAuthFailed):
		return "API token rejected, check your configuration"
	case errors.Is(err, domain.ErrMovieNotFound):
		return "movie not found"
	default:
		return "something went wrong: " + err.Error()
	}
}

func formatAmount(n int64) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
