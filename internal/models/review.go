// internal/models/review.go
package models

import (
	"math"

	"github.com/google/uuid"
)

type Review struct {
	BaseModel
	ProductID uuid.UUID `json:"productId" gorm:"type:uuid;not null;index"`
	UserName  string    `json:"userName" gorm:"size:255;not null"`
	Email     string    `json:"email,omitempty" gorm:"size:255"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text"`
}

type ReviewSummary struct {
	ProductID     uuid.UUID `json:"productId"`
	AverageRating float64   `json:"averageRating"`
	TotalReviews  int64     `json:"totalReviews"`
}

// RoundRating rounds an average to one decimal place.
func RoundRating(avg float64) float64 {
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return 0
	}
	return math.Round(avg*10) / 10
}

// SummarizeReviews computes the aggregate for one product's reviews.
func SummarizeReviews(productID uuid.UUID, reviews []Review) ReviewSummary {
	summary := ReviewSummary{ProductID: productID, TotalReviews: int64(len(reviews))}
	if len(reviews) == 0 {
		return summary
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	summary.AverageRating = RoundRating(float64(total) / float64(len(reviews)))
	return summary
}
