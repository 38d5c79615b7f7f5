package reviewcontroller

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/staicu8/OnlineShop/models"
)

var (
	ErrProductNotAvailable = errors.New("product not available for review")
	ErrDuplicateReview     = errors.New("user already reviewed this product")
	ErrReviewEmpty         = errors.New("review needs text or a rating")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)

func validateReview(text string, rating *int) error {
	if strings.TrimSpace(text) == "" && rating == nil {
		return ErrReviewEmpty
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return ErrInvalidRating
	}
	return nil
}

// CreateReview adds the caller's review of an approved product and refreshes
// the product's aggregate rating. One review per (user, product).
func CreateReview(db *gorm.DB, userID string, productID uint, text string, rating *int) error {
	if err := validateReview(text, rating); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Select("id").
			Where("id = ? AND status = ?", productID, models.ProductStatusApproved).
			First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotAvailable
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Review{}).
			Where("product_id = ? AND user_id = ?", productID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateReview
		}

		review := models.Review{
			ProductID: productID,
			UserID:    userID,
			Text:      strings.TrimSpace(text),
			Rating:    rating,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		return recalcRating(tx, productID)
	})
}

// UpdateReview rewrites the caller's own review and refreshes the aggregate.
// Foreign reviews surface as not found, same as the public contract.
func UpdateReview(db *gorm.DB, userID string, reviewID uint, text string, rating *int) error {
	if err := validateReview(text, rating); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.Where("id = ? AND user_id = ?", reviewID, userID).First(&review).Error; err != nil {
			return err
		}

		review.Text = strings.TrimSpace(text)
		review.Rating = rating
		review.UpdatedAt = time.Now()
		if err := tx.Save(&review).Error; err != nil {
			return err
		}

		return recalcRating(tx, review.ProductID)
	})
}

// DeleteReview removes the caller's own review and refreshes the aggregate.
func DeleteReview(db *gorm.DB, userID string, reviewID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.Where("id = ? AND user_id = ?", reviewID, userID).First(&review).Error; err != nil {
			return err
		}

		if err := tx.Delete(&review).Error; err != nil {
			return err
		}
		return recalcRating(tx, review.ProductID)
	})
}

// DeleteAnyReview is the admin moderation path: no ownership check.
func DeleteAnyReview(db *gorm.DB, reviewID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, "id = ?", reviewID).Error; err != nil {
			return err
		}

		if err := tx.Delete(&review).Error; err != nil {
			return err
		}
		return recalcRating(tx, review.ProductID)
	})
}

// recalcRating recomputes the product's aggregate from the full review set.
// Text-only reviews are excluded; no rated reviews means a null aggregate,
// never zero. Always recomputed from scratch, never adjusted incrementally.
func recalcRating(tx *gorm.DB, productID uint) error {
	var ratings []int
	if err := tx.Model(&models.Review{}).
		Where("product_id = ? AND rating IS NOT NULL", productID).
		Pluck("rating", &ratings).Error; err != nil {
		return err
	}

	var aggregate *float64
	if len(ratings) > 0 {
		var sum int
		for _, r := range ratings {
			sum += r
		}
		mean := float64(sum) / float64(len(ratings))
		aggregate = &mean
	}

	return tx.Model(&models.Product{}).
		Where("id = ?", productID).
		Update("rating", aggregate).Error
}
