package model

import "time"

// Series is a catalog entry posted by a POSTER (or ADMIN) identity.
// It belongs to any number of genres and owns a set of reviews.
// Directors and StarringCast are stored as comma-separated lists.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – series title.
//  Description  – synopsis text.
//  Directors    – comma-separated director names.
//  StarringCast – comma-separated cast names.
//  PosterID     – identity that posted the series.
//  GenreIDs     – ids of genres this series belongs to (loaded on demand).
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type Series struct {
	ID           uint64    // series.id
	Name         string    // series.name
	Description  string    // series.description
	Directors    string    // series.directors
	StarringCast string    // series.starring_cast
	PosterID     uint64    // series.poster_id
	GenreIDs     []uint64  // genre_series rows for this series
	CreatedAt    time.Time // series.created_at
	UpdatedAt    time.Time // series.updated_at
}
