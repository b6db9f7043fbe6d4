package model

import "time"

// Review is a user's opinion on a series. ReviewerID is nullable: when
// the reviewing identity is deleted the reference is set to NULL and
// the review is kept but frozen against further mutation.
//
// Fields:
//  ID         – primary key identifier.
//  SeriesID   – series the review belongs to.
//  ReviewerID – identity that wrote the review; nil once the author is deleted.
//  Rating     – numeric rating.
//  Text       – review body.
//  PostDate   – UTC timestamp set by the server on creation.
type Review struct {
	ID         uint64    // reviews.id
	SeriesID   uint64    // reviews.series_id
	ReviewerID *uint64   // reviews.reviewer_id (nullable)
	Rating     int       // reviews.rating
	Text       string    // reviews.text
	PostDate   time.Time // reviews.post_date
}
