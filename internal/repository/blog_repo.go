// internal/repository/blog_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eventrix/eventrix-backend/internal/models"
)

type BlogRepo struct{ db *gorm.DB }

func NewBlogRepo(db *gorm.DB) *BlogRepo { return &BlogRepo{db: db} }

func (r *BlogRepo) Create(ctx context.Context, b *models.Blog) error {
	return translate(r.db.WithContext(ctx).Create(b).Error)
}

func (r *BlogRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var b models.Blog
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// List returns the newest posts first. Drafts sort after published posts.
func (r *BlogRepo) List(ctx context.Context, publishedOnly bool) ([]models.Blog, error) {
	q := r.db.WithContext(ctx).Order("published_date desc nulls last").Order("created_at desc")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}
	list := []models.Blog{}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *BlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Blog{}, "id = ?", id))
}
