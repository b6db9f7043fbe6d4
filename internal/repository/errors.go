// Package repository holds the data access layer. Sentinel errors
// defined here let higher layers distinguish failure scenarios
// without inspecting driver-specific errors: handlers translate the
// not-found family into HTTP 404 and the conflict family into 409.
package repository

import "errors"

// ErrUserNotFound is returned when a user lookup finds no row.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when a sign-up collides with an
// already-registered email.
var ErrEmailExists = errors.New("email already exists")

// ErrStaleRefresh is returned by the refresh-token compare-and-swap
// when the stored hash no longer matches the expected value, meaning
// another rotation or a revoke got there first.
var ErrStaleRefresh = errors.New("stale refresh token")

// ErrGenreNotFound is returned when a genre lookup finds no row.
var ErrGenreNotFound = errors.New("genre not found")

// ErrSeriesNotFound is returned when a series lookup finds no row,
// including the case where the series exists globally but not under
// the requested genre.
var ErrSeriesNotFound = errors.New("series not found")

// ErrReviewNotFound is returned when a review lookup finds no row
// within the requested series.
var ErrReviewNotFound = errors.New("review not found")

// ErrDuplicateReview is returned when an insert specifies a review id
// that is already taken.
var ErrDuplicateReview = errors.New("review id already exists")

// ErrGenreExists is returned when a genre insert collides with an
// existing genre name.
var ErrGenreExists = errors.New("genre name already exists")
