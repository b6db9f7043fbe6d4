package model

import "time"

// Genre is a taxonomy entry grouping series. Series membership is
// many-to-many through the `genre_series` join table.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – unique genre name.
//  Description – free-form description text.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Genre struct {
	ID          uint64    // genres.id
	Name        string    // genres.name
	Description string    // genres.description
	CreatedAt   time.Time // genres.created_at
	UpdatedAt   time.Time // genres.updated_at
}
