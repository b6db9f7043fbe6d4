// Package queue defines message payloads exchanged over the message broker.
package queue

import "time"

// ReviewPostedEvent is published after a review is successfully
// created. It carries enough context for downstream consumers to log
// or notify without querying the primary database.
type ReviewPostedEvent struct {
	ReviewID   uint64    `json:"review_id"`
	SeriesID   uint64    `json:"series_id"`
	GenreID    uint64    `json:"genre_id"`
	ReviewerID uint64    `json:"reviewer_id"`
	Rating     int       `json:"rating"`
	PostedAt   time.Time `json:"posted_at"`
}
