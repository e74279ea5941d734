// internal/services/listing_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eventrix/eventrix-backend/internal/filter"
	"github.com/eventrix/eventrix-backend/internal/metrics"
	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/repository"
)

type ListingService struct {
	categories CategoryRepository
	products   ProductRepository
	reviews    ReviewRepository
	log        *logrus.Entry
}

type CategoryListing struct {
	CategoryName string           `json:"categoryName"`
	Products     []models.Product `json:"products"`
}

type PriceBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilteredListing is one category narrowed by a criteria. PriceRange spans
// the whole category so a price slider keeps its bounds while filtering.
type FilteredListing struct {
	CategoryName string                 `json:"categoryName"`
	Products     []models.ListedProduct `json:"products"`
	Total        int                    `json:"total"`
	PriceRange   PriceBounds            `json:"priceRange"`
}

func NewListingService(categories CategoryRepository, products ProductRepository, reviews ReviewRepository) *ListingService {
	return &ListingService{
		categories: categories,
		products:   products,
		reviews:    reviews,
		log:        logrus.WithField("component", "listing"),
	}
}

func (s *ListingService) CategoryProducts(ctx context.Context, categoryID uuid.UUID) (*CategoryListing, error) {
	category, err := s.category(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	products, err := s.products.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return &CategoryListing{CategoryName: category.Name, Products: products}, nil
}

// FilterCategory annotates the category's products with review aggregates
// and runs them through the filter engine. Empty criteria return the listing
// as is. Review lookups that fail leave every product at zero reviews.
func (s *ListingService) FilterCategory(ctx context.Context, categoryID uuid.UUID, criteria filter.Criteria) (*FilteredListing, error) {
	listing, err := s.CategoryProducts(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(listing.Products))
	for i, p := range listing.Products {
		ids[i] = p.ID
	}
	summaries, err := s.reviews.Summaries(ctx, ids)
	if err != nil {
		s.log.WithError(err).WithField("category_id", categoryID).Warn("Review summaries unavailable")
		summaries = nil
	}

	annotated := models.Annotate(listing.Products, summaries)
	low, high := filter.PriceBounds(annotated)
	result := annotated
	if !criteria.IsEmpty() {
		result = filter.Apply(annotated, criteria)
		metrics.FilterEvaluations.WithLabelValues("api").Inc()
		metrics.FilterResultSize.Observe(float64(len(result)))
	}

	return &FilteredListing{
		CategoryName: listing.CategoryName,
		Products:     result,
		Total:        len(result),
		PriceRange:   PriceBounds{Min: low, Max: high},
	}, nil
}

func (s *ListingService) category(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	return category, nil
}
