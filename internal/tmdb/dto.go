package tmdb

// Wire types for the TMDB v3 API. Optional fields come back as JSON null,
// hence the pointer types; the mapper flattens them.

// trendingResponse is one page of /trending/movie/week
type trendingResponse struct {
	Page         int        `json:"page"`
	Results      []movieDTO `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

// movieDTO is the list-level movie record
type movieDTO struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"poster_path"`
	GenreIDs    []int   `json:"genre_ids"`
	Popularity  float64 `json:"popularity"`
	ReleaseDate *string `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// movieDetailDTO is the response of /movie/{id}
type movieDetailDTO struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Tagline      *string    `json:"tagline"`
	Overview     *string    `json:"overview"`
	PosterPath   *string    `json:"poster_path"`
	BackdropPath *string    `json:"backdrop_path"`
	Genres       []genreDTO `json:"genres"`
	Popularity   float64    `json:"popularity"`
	ReleaseDate  *string    `json:"release_date"`
	VoteAverage  float64    `json:"vote_average"`
	VoteCount    int        `json:"vote_count"`
	Budget       int64      `json:"budget"`
	Revenue      int64      `json:"revenue"`
	Runtime      *int       `json:"runtime"`
	Status       *string    `json:"status"`
	IMDbID       *string    `json:"imdb_id"`
}

// genreListResponse is the response of /genre/movie/list
type genreListResponse struct {
	Genres []genreDTO `json:"genres"`
}

type genreDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
