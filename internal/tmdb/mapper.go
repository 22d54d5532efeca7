package tmdb

import "github.com/JimClermonts/amro-assignment/internal/domain"

// mapMovie converts a list-level DTO to a domain movie
func mapMovie(dto movieDTO) domain.Movie {
	return domain.Movie{
		ID:          dto.ID,
		Title:       dto.Title,
		PosterPath:  deref(dto.PosterPath),
		GenreIDs:    dto.GenreIDs,
		Popularity:  dto.Popularity,
		ReleaseDate: deref(dto.ReleaseDate),
		VoteAverage: dto.VoteAverage,
		VoteCount:   dto.VoteCount,
	}
}

// mapMovies converts a page of DTOs, preserving order
func mapMovies(dtos []movieDTO) []domain.Movie {
	movies := make([]domain.Movie, len(dtos))
	for i, dto := range dtos {
		movies[i] = mapMovie(dto)
	}
	return movies
}

func mapDetail(dto movieDetailDTO) domain.MovieDetail {
	return domain.MovieDetail{
		ID:           dto.ID,
		Title:        dto.Title,
		Tagline:      deref(dto.Tagline),
		Overview:     deref(dto.Overview),
		PosterPath:   deref(dto.PosterPath),
		BackdropPath: deref(dto.BackdropPath),
		Genres:       mapGenres(dto.Genres),
		Popularity:   dto.Popularity,
		ReleaseDate:  deref(dto.ReleaseDate),
		VoteAverage:  dto.VoteAverage,
		VoteCount:    dto.VoteCount,
		Budget:       dto.Budget,
		Revenue:      dto.Revenue,
		Runtime:      derefInt(dto.Runtime),
		Status:       deref(dto.Status),
		IMDbID:       deref(dto.IMDbID),
	}
}

func mapGenres(dtos []genreDTO) []domain.Genre {
	genres := make([]domain.Genre, len(dtos))
	for i, dto := range dtos {
		genres[i] = domain.Genre{ID: dto.ID, Name: dto.Name}
	}
	return genres
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
