// internal/services/sidebar_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eventrix/eventrix-backend/internal/cache"
	"github.com/eventrix/eventrix-backend/internal/metrics"
	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/repository"
)

type SidebarService struct {
	sidebars   SidebarRepository
	categories CategoryRepository
	cache      cache.Cache
	ttl        time.Duration
	log        *logrus.Entry
}

type SaveSidebarRequest struct {
	CategoryID     string              `json:"categoryId"`
	PropertyValues map[string][]string `json:"propertyValues"`
	DisplayTypes   map[string]string   `json:"displayTypes"`
	Locations      []string            `json:"locations"`
}

type SaveSidebarResult struct {
	Sidebar models.SidebarView `json:"sidebar"`
	// OrphanedKeys are facet keys with no matching category property.
	OrphanedKeys []string `json:"orphanedKeys"`
}

func NewSidebarService(sidebars SidebarRepository, categories CategoryRepository, c cache.Cache, ttl time.Duration) *SidebarService {
	return &SidebarService{
		sidebars:   sidebars,
		categories: categories,
		cache:      c,
		ttl:        ttl,
		log:        logrus.WithField("component", "sidebar"),
	}
}

func sidebarCacheKey(categoryID uuid.UUID) string {
	return "sidebar:" + categoryID.String()
}

// Upsert replaces the configuration of categoryID with the request
// contents. Nothing of a previous configuration survives.
func (s *SidebarService) Upsert(ctx context.Context, categoryID uuid.UUID, req *SaveSidebarRequest) (*SaveSidebarResult, error) {
	cfg := &models.SidebarConfig{
		CategoryID:     categoryID,
		PropertyValues: normalizePropertyValues(req.PropertyValues),
		DisplayTypes:   models.StringMap(req.DisplayTypes),
		Locations:      uniqueStrings(req.Locations),
	}
	if cfg.DisplayTypes == nil {
		cfg.DisplayTypes = models.StringMap{}
	}

	if err := s.sidebars.Upsert(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to save sidebar: %w", err)
	}
	s.Invalidate(ctx, categoryID)

	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	orphaned := orphanedKeys(cfg, category)
	if len(orphaned) > 0 {
		metrics.OrphanedFacetKeys.Add(float64(len(orphaned)))
		s.log.WithFields(logrus.Fields{
			"category_id": categoryID,
			"keys":        orphaned,
		}).Warn("Sidebar saved with keys that match no category property")
	}

	return &SaveSidebarResult{
		Sidebar:      models.NewSidebarView(*cfg, category),
		OrphanedKeys: orphaned,
	}, nil
}

// GetByCategory returns the configuration joined with its category's
// current name and types.
func (s *SidebarService) GetByCategory(ctx context.Context, categoryID uuid.UUID) (*models.SidebarView, error) {
	key := sidebarCacheKey(categoryID)

	var cached models.SidebarView
	hit, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.WithError(err).Warn("Sidebar cache read failed")
	}
	if hit {
		return &cached, nil
	}

	cfg, err := s.sidebars.FindByCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSidebarNotFound
		}
		return nil, fmt.Errorf("failed to load sidebar: %w", err)
	}

	category, err := s.categories.FindByID(ctx, categoryID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	view := models.NewSidebarView(*cfg, category)
	if err := s.cache.Set(ctx, key, view, s.ttl); err != nil {
		s.log.WithError(err).Warn("Sidebar cache write failed")
	}
	return &view, nil
}

// GetAll returns every configuration annotated with its category.
func (s *SidebarService) GetAll(ctx context.Context) ([]models.SidebarView, error) {
	configs, err := s.sidebars.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sidebars: %w", err)
	}

	ids := make([]uuid.UUID, len(configs))
	for i, cfg := range configs {
		ids[i] = cfg.CategoryID
	}
	categories, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	views := make([]models.SidebarView, len(configs))
	for i, cfg := range configs {
		var category *models.Category
		if c, ok := categories[cfg.CategoryID]; ok {
			category = &c
		}
		views[i] = models.NewSidebarView(cfg, category)
	}
	return views, nil
}

func (s *SidebarService) Delete(ctx context.Context, categoryID uuid.UUID) error {
	if err := s.sidebars.DeleteByCategory(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSidebarNotFound
		}
		return fmt.Errorf("failed to delete sidebar: %w", err)
	}
	s.Invalidate(ctx, categoryID)
	return nil
}

// Invalidate drops the cached view of categoryID. Category changes call it
// too since the view embeds the category name and types.
func (s *SidebarService) Invalidate(ctx context.Context, categoryID uuid.UUID) {
	if err := s.cache.Delete(ctx, sidebarCacheKey(categoryID)); err != nil {
		s.log.WithError(err).WithField("category_id", categoryID).Warn("Sidebar cache invalidation failed")
	}
}

// Each value list keeps its first-seen order without duplicates.
func normalizePropertyValues(in map[string][]string) models.StringSets {
	out := make(models.StringSets, len(in))
	for key, values := range in {
		out[key] = uniqueStrings(values)
	}
	return out
}

func uniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func orphanedKeys(cfg *models.SidebarConfig, category *models.Category) []string {
	var declared models.PropertyDefinitions
	if category != nil {
		declared = category.Properties
	}
	names := declared.Names()

	set := make(map[string]struct{})
	for key := range cfg.PropertyValues {
		if _, ok := names[key]; !ok {
			set[key] = struct{}{}
		}
	}
	for key := range cfg.DisplayTypes {
		if _, ok := names[key]; !ok {
			set[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
