package reviewcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/middleware"
)

type ReviewRequest struct {
	Text   string `json:"text"`
	Rating *int   `json:"rating"`
}

func writeReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrReviewEmpty), errors.Is(err, ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrDuplicateReview):
		c.JSON(http.StatusConflict, gin.H{"error": "You already reviewed this product"})
	case errors.Is(err, ErrProductNotAvailable), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
	}
}

// POST /products/:id/reviews
func CreateReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var req ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := CreateReview(db, userID, uint(productID), req.Text, req.Rating); err != nil {
			writeReviewError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Review added"})
	}
}

// PUT /reviews/:id
func UpdateReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
			return
		}

		var req ReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := UpdateReview(db, userID, uint(reviewID), req.Text, req.Rating); err != nil {
			writeReviewError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review updated"})
	}
}

// DELETE /reviews/:id
func DeleteReviewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		reviewID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
			return
		}

		if err := DeleteReview(db, userID, uint(reviewID)); err != nil {
			writeReviewError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
