// internal/repository/category_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eventrix/eventrix-backend/internal/models"
)

type CategoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Create(ctx context.Context, c *models.Category) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *CategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var c models.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// FindByName matches case-insensitively.
func (r *CategoryRepo) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var c models.Category
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&c).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *CategoryRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Category, error) {
	out := make(map[uuid.UUID]models.Category, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var list []models.Category
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	for _, c := range list {
		out[c.ID] = c
	}
	return out, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	list := []models.Category{}
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListTop returns up to limit categories by creation time. order is "asc"
// or "desc".
func (r *CategoryRepo) ListTop(ctx context.Context, order string, limit int) ([]models.Category, error) {
	if order != "asc" {
		order = "desc"
	}
	list := []models.Category{}
	if err := r.db.WithContext(ctx).Order("created_at " + order).Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CategoryRepo) Update(ctx context.Context, c *models.Category) error {
	return translate(r.db.WithContext(ctx).Save(c).Error)
}

func (r *CategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id))
}
