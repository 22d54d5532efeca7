package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/JimClermonts/amro-assignment/internal/domain"
	"github.com/JimClermonts/amro-assignment/internal/log"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClient(server.URL, "test-token", "en-US", log.NullLogger())
}

func trendingPage(page int) trendingResponse {
	// Each page carries two movies whose ids encode the page number.
	return trendingResponse{
		Page: page,
		Results: []movieDTO{
			{ID: page*100 + 1, Title: fmt.Sprintf("Movie %d-1", page)},
			{ID: page*100 + 2, Title: fmt.Sprintf("Movie %d-2", page)},
		},
		TotalPages:   trendingPages,
		TotalResults: trendingPages * 2,
	}
}

func TestTrendingMovies_ConcatenatesPagesInOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trending/movie/week" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected auth header %q", got)
		}
		if got := r.URL.Query().Get("language"); got != "en-US" {
			t.Errorf("unexpected language %q", got)
		}
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(trendingPage(page))
	}))
	defer server.Close()

	movies, err := newTestClient(server).TrendingMovies(context.Background())
	if err != nil {
		t.Fatalf("trending: %v", err)
	}

	if len(movies) != trendingPages*2 {
		t.Fatalf("expected %d movies, got %d", trendingPages*2, len(movies))
	}
	// Requests run concurrently but the result is page 1 first, page N last.
	for i, m := range movies {
		wantID := (i/2+1)*100 + i%2 + 1
		if m.ID != wantID {
			t.Fatalf("position %d: expected id %d, got %d", i, wantID, m.ID)
		}
	}
}

func TestTrendingMovies_OnePageFailureFailsAll(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(trendingPage(page))
	}))
	defer server.Close()

	movies, err := newTestClient(server).TrendingMovies(context.Background())
	if err == nil {
		t.Fatal("expected an error when one page fails")
	}
	if movies != nil {
		t.Fatalf("no partial result allowed, got %d movies", len(movies))
	}
}

func TestDoRequest_AuthFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server).Genres(context.Background())
	if !errors.Is(err, domain.ErrAuthFailed) {
		t.Fatalf("expected ErrAuthFailed, got %v", err)
	}
}

func TestMovieDetail_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient(server).MovieDetail(context.Background(), 99999)
	if !errors.Is(err, domain.ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestDoRequest_UnreachableCatalog(t *testing.T) {
	server := httptest.NewServer(nil)
	server.Close() // connection refused from here on

	_, err := newTestClient(server).Genres(context.Background())
	if !errors.Is(err, domain.ErrCatalogUnreachable) {
		t.Fatalf("expected ErrCatalogUnreachable, got %v", err)
	}
}

func TestDoRequest_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server).Genres(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMovieDetail_MapsNullableFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/42" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		// runtime, tagline and imdb_id come back null.
		fmt.Fprint(w, `{
			"id": 42,
			"title": "Null Heavy",
			"tagline": null,
			"overview": "a movie",
			"genres": [{"id": 28, "name": "Action"}],
			"runtime": null,
			"imdb_id": null,
			"budget": 1000,
			"vote_average": 7.5,
			"vote_count": 10
		}`)
	}))
	defer server.Close()

	detail, err := newTestClient(server).MovieDetail(context.Background(), 42)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.Tagline != "" || detail.Runtime != 0 || detail.IMDbID != "" {
		t.Fatalf("nullable fields must flatten to zero values, got %+v", detail)
	}
	if len(detail.Genres) != 1 || detail.Genres[0].Name != "Action" {
		t.Fatalf("genres not mapped: %+v", detail.Genres)
	}
	if detail.FormattedRuntime() != "" {
		t.Fatalf("unknown runtime must format empty, got %q", detail.FormattedRuntime())
	}
}

func TestGenres_ParsesList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/genre/movie/list" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"genres": [{"id": 28, "name": "Action"}, {"id": 35, "name": "Comedy"}]}`)
	}))
	defer server.Close()

	genres, err := newTestClient(server).Genres(context.Background())
	if err != nil {
		t.Fatalf("genres: %v", err)
	}
	if len(genres) != 2 || genres[0].ID != 28 || genres[1].Name != "Comedy" {
		t.Fatalf("unexpected genres: %+v", genres)
	}
}

func TestTrendingMovies_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": "not an array"`)
	}))
	defer server.Close()

	_, err := newTestClient(server).TrendingMovies(context.Background())
	if err == nil {
		t.Fatal("expected a parse error")
	}
}
