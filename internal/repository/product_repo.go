// internal/repository/product_repo.go
package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

var productSortFields = []string{"created_at", "selling_price", "name"}

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(ctx context.Context, p *models.Product) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *ProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	if err := r.db.WithContext(ctx).Preload("Category").Preload("Vendor").First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// List pages through all products, optionally narrowed to a category and
// a name/description search.
func (r *ProductRepo) List(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})
	if params.CategoryID != "" {
		if id, err := uuid.Parse(params.CategoryID); err == nil {
			q = q.Where("category_id = ?", id)
		}
	}
	if search := strings.TrimSpace(params.Search); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	list := []models.Product{}
	q = utils.ApplySort(q, params, productSortFields)
	if err := utils.ApplyPagination(q, params).Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByCategory returns every product of a category in creation order.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	list := []models.Product{}
	if err := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("created_at asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ProductRepo) Update(ctx context.Context, p *models.Product) error {
	return translate(r.db.WithContext(ctx).Omit("Category", "Vendor").Save(p).Error)
}

func (r *ProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleted(r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id))
}
