// internal/repository/sidebar_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/eventrix/eventrix-backend/internal/models"
)

type SidebarRepo struct{ db *gorm.DB }

func NewSidebarRepo(db *gorm.DB) *SidebarRepo { return &SidebarRepo{db: db} }

// Upsert stores cfg as the only configuration of its category. An existing
// row keeps its id; every facet column is overwritten.
func (r *SidebarRepo) Upsert(ctx context.Context, cfg *models.SidebarConfig) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"property_values", "display_types", "locations", "updated_at"}),
	}).Create(cfg).Error
	return translate(err)
}

func (r *SidebarRepo) FindByCategory(ctx context.Context, categoryID uuid.UUID) (*models.SidebarConfig, error) {
	var cfg models.SidebarConfig
	if err := r.db.WithContext(ctx).First(&cfg, "category_id = ?", categoryID).Error; err != nil {
		return nil, translate(err)
	}
	return &cfg, nil
}

func (r *SidebarRepo) List(ctx context.Context) ([]models.SidebarConfig, error) {
	list := []models.SidebarConfig{}
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *SidebarRepo) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Where("category_id = ?", categoryID).Delete(&models.SidebarConfig{}))
}
