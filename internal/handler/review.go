package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tvshow-catalog/internal/catalog"
	"github.com/iliyamo/tvshow-catalog/internal/middleware"
	"github.com/iliyamo/tvshow-catalog/internal/model"
	"github.com/iliyamo/tvshow-catalog/internal/queue"
	queue_publisher "github.com/iliyamo/tvshow-catalog/internal/service"
)

// ----- DTOs -----

type createReviewReq struct {
	ID         uint64 `json:"id"`          // optional explicit id
	ReviewerID uint64 `json:"reviewer_id"` // optional; must be the caller when set
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
}

type updateReviewReq struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type reviewResp struct {
	ID         uint64    `json:"id"`
	SeriesID   uint64    `json:"series_id"`
	ReviewerID *uint64   `json:"reviewer_id"` // null once the author is deleted
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	PostDate   time.Time `json:"post_date"`
}

func newReviewResp(r *model.Review) reviewResp {
	return reviewResp{
		ID:         r.ID,
		SeriesID:   r.SeriesID,
		ReviewerID: r.ReviewerID,
		Rating:     r.Rating,
		Text:       r.Text,
		PostDate:   r.PostDate,
	}
}

// reviewPath pulls all three ids out of the nested route.
func reviewPath(c echo.Context) (genreID, seriesID, reviewID uint64, err error) {
	if genreID, seriesID, err = seriesPath(c); err != nil {
		return 0, 0, 0, err
	}
	if reviewID, err = pathID(c, "reviewId"); err != nil {
		return 0, 0, 0, err
	}
	return genreID, seriesID, reviewID, nil
}

// ListReviews returns the reviews of a series under a genre.
func (h *CatalogHandler) ListReviews(c echo.Context) error {
	genreID, seriesID, err := seriesPath(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.Catalog.ListReviews(ctx, middleware.CallerFrom(c), genreID, seriesID)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]reviewResp, 0, len(reviews))
	for i := range reviews {
		out = append(out, newReviewResp(&reviews[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// GetReview returns one review, resolved top-down through its genre
// and series.
func (h *CatalogHandler) GetReview(c echo.Context) error {
	genreID, seriesID, reviewID, err := reviewPath(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	r, err := h.Catalog.GetReview(ctx, middleware.CallerFrom(c), genreID, seriesID, reviewID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, newReviewResp(r))
}

// CreateReview posts a review on a series and emits a review.posted
// event. Publishing is best-effort: a broker outage never fails the
// request.
func (h *CatalogHandler) CreateReview(c echo.Context) error {
	genreID, seriesID, err := seriesPath(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	caller := middleware.CallerFrom(c)
	r, err := h.Catalog.CreateReview(ctx, caller, genreID, seriesID, catalog.CreateReviewInput{
		ID:         req.ID,
		ReviewerID: req.ReviewerID,
		Rating:     req.Rating,
		Text:       req.Text,
	})
	if err != nil {
		return writeError(c, err)
	}

	_ = queue_publisher.PublishReviewPosted(ctx, queue.ReviewPostedEvent{
		ReviewID:   r.ID,
		SeriesID:   seriesID,
		GenreID:    genreID,
		ReviewerID: caller.ID,
		Rating:     r.Rating,
		PostedAt:   r.PostDate,
	})

	return c.JSON(http.StatusCreated, newReviewResp(r))
}

// UpdateReview patches a review's rating and text. Only the author
// may update; see the catalog service for the ownership rule.
func (h *CatalogHandler) UpdateReview(c echo.Context) error {
	genreID, seriesID, reviewID, err := reviewPath(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Catalog.UpdateReview(ctx, middleware.CallerFrom(c), genreID, seriesID, reviewID, req.Rating, req.Text); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "review updated"})
}

// DeleteReview removes a review under the same ownership rule as
// UpdateReview.
func (h *CatalogHandler) DeleteReview(c echo.Context) error {
	genreID, seriesID, reviewID, err := reviewPath(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Catalog.DeleteReview(ctx, middleware.CallerFrom(c), genreID, seriesID, reviewID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "review deleted"})
}
