package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/middleware"
	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/repository"
	"github.com/SatyamNagpure21/Backend-of-App-Coursera/internal/service"
)

// ReviewHandler ties the review endpoints to the ReviewService.
type ReviewHandler struct {
	Reviews *service.ReviewService
}

// RegisterRoutes registers:
//
//	GET    /books/:isbn/reviews          (open)
//	POST   /books/:isbn/review           (acting user required)
//	DELETE /books/:isbn/review           (acting user required)
func (h *ReviewHandler) RegisterRoutes(r *gin.Engine, requireUser gin.HandlerFunc) {
	r.GET("/books/:isbn/reviews", h.GetReviews)

	protected := r.Group("/books/:isbn/review")
	protected.Use(requireUser)
	{
		protected.POST("", h.SaveReview)
		protected.DELETE("", h.DeleteReview)
	}
}

// GET /books/:isbn/reviews
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	reviews, err := h.Reviews.GetReviews(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reviews": reviews})
}

// ReviewRequestDTO is the JSON payload for saving a review.
type ReviewRequestDTO struct {
	Review string `json:"review"`
}

// POST /books/:isbn/review
// The acting username comes from the context set by the middleware; a
// body without a review field saves an empty review.
func (h *ReviewHandler) SaveReview(c *gin.Context) {
	var req ReviewRequestDTO
	_ = c.ShouldBindJSON(&req)
	username := c.GetString(middleware.UsernameKey)

	reviews, err := h.Reviews.SaveReview(c.Request.Context(), c.Param("isbn"), username, req.Review)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review saved", "reviews": reviews})
}

// DELETE /books/:isbn/review
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	username := c.GetString(middleware.UsernameKey)

	reviews, err := h.Reviews.DeleteReview(c.Request.Context(), c.Param("isbn"), username)
	switch {
	case errors.Is(err, repository.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Book not found"})
	case errors.Is(err, repository.ErrReviewNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Review not found for this user"})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review deleted", "reviews": reviews})
	}
}
