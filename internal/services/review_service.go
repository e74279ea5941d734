// internal/services/review_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/repository"
)

type ReviewService struct {
	reviews  ReviewRepository
	products ProductRepository
}

type CreateReviewRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	UserName  string `json:"userName" validate:"not_blank,max=255"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment,omitempty" validate:"max=2000"`
}

// ProductReviews is a product's reviews with their aggregate.
type ProductReviews struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"averageRating"`
	TotalReviews  int64           `json:"totalReviews"`
}

func NewReviewService(reviews ReviewRepository, products ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

func (s *ReviewService) CreateReview(ctx context.Context, req *CreateReviewRequest) (*models.Review, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	review := &models.Review{
		ProductID: productID,
		UserName:  strings.TrimSpace(req.UserName),
		Email:     req.Email,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) GetProductReviews(ctx context.Context, productID uuid.UUID) (*ProductReviews, error) {
	reviews, err := s.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	summary := models.SummarizeReviews(productID, reviews)
	return &ProductReviews{
		Reviews:       reviews,
		AverageRating: summary.AverageRating,
		TotalReviews:  summary.TotalReviews,
	}, nil
}
