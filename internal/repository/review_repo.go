// internal/repository/review_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eventrix/eventrix-backend/internal/models"
)

type ReviewRepo struct{ db *gorm.DB }

func NewReviewRepo(db *gorm.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) Create(ctx context.Context, review *models.Review) error {
	return translate(r.db.WithContext(ctx).Create(review).Error)
}

// ListByProduct returns a product's reviews, newest first.
func (r *ReviewRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	list := []models.Review{}
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

type summaryRow struct {
	ProductID     uuid.UUID
	AverageRating float64
	TotalReviews  int64
}

// Summaries aggregates ratings for many products in one grouped query.
// Products without reviews are absent from the result.
func (r *ReviewRepo) Summaries(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]models.ReviewSummary, error) {
	out := make(map[uuid.UUID]models.ReviewSummary, len(productIDs))
	if len(productIDs) == 0 {
		return out, nil
	}

	var rows []summaryRow
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("product_id, AVG(rating) AS average_rating, COUNT(*) AS total_reviews").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		out[row.ProductID] = models.ReviewSummary{
			ProductID:     row.ProductID,
			AverageRating: models.RoundRating(row.AverageRating),
			TotalReviews:  row.TotalReviews,
		}
	}
	return out, nil
}
