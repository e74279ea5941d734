// internal/repository/vendor_repo.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/eventrix/eventrix-backend/internal/models"
)

type VendorRepo struct{ db *gorm.DB }

func NewVendorRepo(db *gorm.DB) *VendorRepo { return &VendorRepo{db: db} }

func (r *VendorRepo) CreateVendor(ctx context.Context, v *models.Vendor) error {
	return translate(r.db.WithContext(ctx).Create(v).Error)
}

func (r *VendorRepo) FindVendor(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	var v models.Vendor
	if err := r.db.WithContext(ctx).Preload("Outlets").First(&v, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *VendorRepo) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	list := []models.Vendor{}
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *VendorRepo) CreateOutlet(ctx context.Context, o *models.Outlet) error {
	return translate(r.db.WithContext(ctx).Create(o).Error)
}

// ListOutlets returns all outlets, or only those of vendorID when set.
func (r *VendorRepo) ListOutlets(ctx context.Context, vendorID *uuid.UUID) ([]models.Outlet, error) {
	q := r.db.WithContext(ctx).Order("name asc")
	if vendorID != nil {
		q = q.Where("vendor_id = ?", *vendorID)
	}
	list := []models.Outlet{}
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *VendorRepo) FindOutlets(ctx context.Context, ids []uuid.UUID) ([]models.Outlet, error) {
	list := []models.Outlet{}
	if len(ids) == 0 {
		return list, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
