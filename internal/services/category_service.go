// internal/services/category_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/repository"
)

const defaultTopCategories = 3

// SidebarInvalidator drops cached facet views that embed category data.
type SidebarInvalidator interface {
	Invalidate(ctx context.Context, categoryID uuid.UUID)
}

type CategoryService struct {
	categories CategoryRepository
	sidebars   SidebarInvalidator
	log        *logrus.Entry
}

type PropertyInput struct {
	Name    string   `json:"name" validate:"not_blank,max=100"`
	Type    string   `json:"type" validate:"property_type"`
	Options []string `json:"options,omitempty"`
}

type CreateCategoryRequest struct {
	Name            string           `json:"category_name" validate:"not_blank,max=255"`
	Description     string           `json:"description,omitempty"`
	Image           string           `json:"category_image,omitempty" validate:"omitempty,max=500"`
	VendorEnabled   bool             `json:"vendorEnabled"`
	OutletEnabled   bool             `json:"outletEnabled"`
	LocationEnabled bool             `json:"locationEnabled"`
	Properties      []PropertyInput  `json:"properties,omitempty" validate:"dive"`
	Tags            []string         `json:"tags,omitempty"`
	CategoryTypes   []string         `json:"category_types,omitempty"`
	Location        *models.Location `json:"location,omitempty"`
}

// UpdateCategoryRequest changes only the fields that are present.
type UpdateCategoryRequest struct {
	Name            *string          `json:"category_name,omitempty" validate:"omitempty,not_blank,max=255"`
	Description     *string          `json:"description,omitempty"`
	Image           *string          `json:"category_image,omitempty" validate:"omitempty,max=500"`
	VendorEnabled   *bool            `json:"vendorEnabled,omitempty"`
	OutletEnabled   *bool            `json:"outletEnabled,omitempty"`
	LocationEnabled *bool            `json:"locationEnabled,omitempty"`
	Properties      []PropertyInput  `json:"properties,omitempty" validate:"omitempty,dive"`
	Tags            []string         `json:"tags,omitempty"`
	CategoryTypes   []string         `json:"category_types,omitempty"`
	Location        *models.Location `json:"location,omitempty"`
}

func NewCategoryService(categories CategoryRepository, sidebars SidebarInvalidator) *CategoryService {
	return &CategoryService{
		categories: categories,
		sidebars:   sidebars,
		log:        logrus.WithField("component", "category"),
	}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if err := s.ensureNameFree(ctx, name, uuid.Nil); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:            name,
		Description:     req.Description,
		Image:           req.Image,
		VendorEnabled:   req.VendorEnabled,
		OutletEnabled:   req.OutletEnabled,
		LocationEnabled: req.LocationEnabled,
		Properties:      toDefinitions(req.Properties),
		Tags:            nonNil(req.Tags),
		CategoryTypes:   nonNil(req.CategoryTypes),
	}
	if req.LocationEnabled {
		category.Location = req.Location
	}

	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.log.WithFields(logrus.Fields{"category_id": category.ID, "name": category.Name}).Info("Category created")
	return category, nil
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	list, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return list, nil
}

// GetTopCategories returns the first limit categories by creation date.
// order "asc" returns the oldest, anything else the newest.
func (s *CategoryService) GetTopCategories(ctx context.Context, order string, limit int) ([]models.Category, error) {
	if limit <= 0 {
		limit = defaultTopCategories
	}
	list, err := s.categories.ListTop(ctx, order, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top categories: %w", err)
	}
	return list, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if !strings.EqualFold(name, category.Name) {
			if err := s.ensureNameFree(ctx, name, id); err != nil {
				return nil, err
			}
		}
		category.Name = name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Image != nil {
		category.Image = *req.Image
	}
	if req.VendorEnabled != nil {
		category.VendorEnabled = *req.VendorEnabled
	}
	if req.OutletEnabled != nil {
		category.OutletEnabled = *req.OutletEnabled
	}
	if req.LocationEnabled != nil {
		category.LocationEnabled = *req.LocationEnabled
	}
	if req.Properties != nil {
		category.Properties = toDefinitions(req.Properties)
	}
	if req.Tags != nil {
		category.Tags = req.Tags
	}
	if req.CategoryTypes != nil {
		category.CategoryTypes = req.CategoryTypes
	}
	if req.Location != nil {
		category.Location = req.Location
	}
	if !category.LocationEnabled {
		category.Location = nil
	}

	if err := s.categories.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCategoryExists
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	s.sidebars.Invalidate(ctx, id)
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	s.sidebars.Invalidate(ctx, id)
	s.log.WithField("category_id", id).Info("Category deleted")
	return nil
}

func (s *CategoryService) ensureNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.categories.FindByName(ctx, name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check category name: %w", err)
	case existing.ID != self:
		return ErrCategoryExists
	}
	return nil
}

func toDefinitions(in []PropertyInput) models.PropertyDefinitions {
	defs := make(models.PropertyDefinitions, 0, len(in))
	for _, p := range in {
		defs = append(defs, models.PropertyDefinition{
			Name:    strings.TrimSpace(p.Name),
			Type:    models.PropertyType(p.Type),
			Options: p.Options,
		})
	}
	return defs.Normalize()
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
