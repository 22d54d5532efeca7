package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JimClermonts/amro-assignment/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Amro/1.0"

	// trendingPages is the fixed number of pages fetched per trending
	// request. TMDB returns 20 movies per page, so this yields up to 100.
	trendingPages = 5
)

// Client implements domain.CatalogClient against the TMDB v3 API
type Client struct {
	baseURL    string
	token      string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new TMDB API client
func NewClient(baseURL, token, language string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:  baseURL,
		token:    token,
		language: language,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated GET request
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("language", c.language)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("tmdb request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Keep context cancellation visible to callers; everything else is
		// an unreachable catalog.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Error("tmdb request failed", "error", err)
		return nil, domain.ErrCatalogUnreachable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrAuthFailed
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrMovieNotFound
	default:
		c.logger.Error("tmdb request error", "status", resp.StatusCode, "path", path)
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
}

// TrendingMovies returns the weekly trending list. It fetches trendingPages
// pages concurrently and concatenates them in page order; if any page fails
// the whole operation fails and the remaining requests are cancelled.
func (c *Client) TrendingMovies(ctx context.Context) ([]domain.Movie, error) {
	pages := make([][]domain.Movie, trendingPages)

	g, ctx := errgroup.WithContext(ctx)
	for page := 1; page <= trendingPages; page++ {
		g.Go(func() error {
			query := url.Values{}
			query.Set("page", strconv.Itoa(page))

			body, err := c.doRequest(ctx, "/trending/movie/week", query)
			if err != nil {
				return err
			}

			var resp trendingResponse
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse trending page %d: %w", page, err)
			}

			pages[page-1] = mapMovies(resp.Results)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var movies []domain.Movie
	for _, page := range pages {
		movies = append(movies, page...)
	}

	c.logger.Debug("fetched trending movies", "count", len(movies))
	return movies, nil
}

// MovieDetail returns the full record for one movie id
func (c *Client) MovieDetail(ctx context.Context, id int) (domain.MovieDetail, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d", id), nil)
	if err != nil {
		return domain.MovieDetail{}, err
	}

	var dto movieDetailDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return domain.MovieDetail{}, fmt.Errorf("failed to parse movie detail: %w", err)
	}

	return mapDetail(dto), nil
}

// Genres returns the genre reference table
func (c *Client) Genres(ctx context.Context) ([]domain.Genre, error) {
	body, err := c.doRequest(ctx, "/genre/movie/list", nil)
	if err != nil {
		return nil, err
	}

	var resp genreListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse genre list: %w", err)
	}

	return mapGenres(resp.Genres), nil
}
