// internal/services/repositories.go
package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

// Storage ports. The gorm implementations live in internal/repository.

type CategoryRepository interface {
	Create(ctx context.Context, c *models.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	ListTop(ctx context.Context, order string, limit int) ([]models.Category, error)
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SidebarRepository interface {
	Upsert(ctx context.Context, cfg *models.SidebarConfig) error
	FindByCategory(ctx context.Context, categoryID uuid.UUID) (*models.SidebarConfig, error)
	List(ctx context.Context) ([]models.SidebarConfig, error)
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *models.Review) error
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error)
	Summaries(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]models.ReviewSummary, error)
}

type VendorRepository interface {
	CreateVendor(ctx context.Context, v *models.Vendor) error
	FindVendor(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	ListVendors(ctx context.Context) ([]models.Vendor, error)
	CreateOutlet(ctx context.Context, o *models.Outlet) error
	ListOutlets(ctx context.Context, vendorID *uuid.UUID) ([]models.Outlet, error)
	FindOutlets(ctx context.Context, ids []uuid.UUID) ([]models.Outlet, error)
}

type EnquiryRepository interface {
	Create(ctx context.Context, e *models.Enquiry) error
	AppendReply(ctx context.Context, id uuid.UUID, reply models.EnquiryReply) (*models.Enquiry, error)
}

type BlogRepository interface {
	Create(ctx context.Context, b *models.Blog) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	List(ctx context.Context, publishedOnly bool) ([]models.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
