// internal/handlers/handlers.go
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eventrix/eventrix-backend/internal/filter"
	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/services"
	"github.com/eventrix/eventrix-backend/internal/session"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

// The handlers depend on these instead of the concrete services so each
// can be exercised over HTTP without a database.

type SidebarService interface {
	Upsert(ctx context.Context, categoryID uuid.UUID, req *services.SaveSidebarRequest) (*services.SaveSidebarResult, error)
	GetByCategory(ctx context.Context, categoryID uuid.UUID) (*models.SidebarView, error)
	GetAll(ctx context.Context) ([]models.SidebarView, error)
	Delete(ctx context.Context, categoryID uuid.UUID) error
}

type CategoryService interface {
	CreateCategory(ctx context.Context, req *services.CreateCategoryRequest) (*models.Category, error)
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetTopCategories(ctx context.Context, order string, limit int) ([]models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *services.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type ProductService interface {
	CreateProduct(ctx context.Context, req *services.CreateProductRequest) (*models.Product, error)
	GetProducts(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *services.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type ListingService interface {
	CategoryProducts(ctx context.Context, categoryID uuid.UUID) (*services.CategoryListing, error)
	FilterCategory(ctx context.Context, categoryID uuid.UUID, criteria filter.Criteria) (*services.FilteredListing, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, req *services.CreateReviewRequest) (*models.Review, error)
	GetProductReviews(ctx context.Context, productID uuid.UUID) (*services.ProductReviews, error)
}

type VendorService interface {
	CreateVendor(ctx context.Context, req *services.CreateVendorRequest) (*models.Vendor, error)
	GetVendors(ctx context.Context) ([]models.Vendor, error)
	GetVendor(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	CreateOutlet(ctx context.Context, req *services.CreateOutletRequest) (*models.Outlet, error)
	GetOutlets(ctx context.Context, vendorID *uuid.UUID) ([]models.Outlet, error)
}

type EnquiryService interface {
	SubmitEnquiry(ctx context.Context, req *services.SubmitEnquiryRequest) (*models.Enquiry, error)
	ReplyToEnquiry(ctx context.Context, id uuid.UUID, req *services.ReplyEnquiryRequest) (*models.EnquiryReply, error)
}

type BlogService interface {
	CreateBlog(ctx context.Context, req *services.CreateBlogRequest) (*models.Blog, error)
	GetBlogs(ctx context.Context, publishedOnly bool) ([]models.Blog, error)
	GetBlog(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	DeleteBlog(ctx context.Context, id uuid.UUID) error
}

type AuthService interface {
	Login(ctx context.Context, sess *session.Session, req *services.LoginRequest) (*services.AuthResponse, error)
	Logout(ctx context.Context, sess *session.Session) error
	Me(ctx context.Context, sess *session.Session) (*models.User, error)
}

// idParam parses a path parameter as a uuid. A malformed id cannot name an
// existing resource, so callers answer 404.
func idParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	return id, err == nil
}
