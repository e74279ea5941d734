package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, c *models.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) FindByName(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*models.Category)
	return c, args.Error(1)
}

func (m *mockCategoryRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Category, error) {
	args := m.Called(ctx, ids)
	out, _ := args.Get(0).(map[uuid.UUID]models.Category)
	return out, args.Error(1)
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Category)
	return out, args.Error(1)
}

func (m *mockCategoryRepo) ListTop(ctx context.Context, order string, limit int) ([]models.Category, error) {
	args := m.Called(ctx, order, limit)
	out, _ := args.Get(0).([]models.Category)
	return out, args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, c *models.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).([]models.Product)
	return out, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Product, error) {
	args := m.Called(ctx, categoryID)
	out, _ := args.Get(0).([]models.Product)
	return out, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p *models.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockSidebarRepo struct{ mock.Mock }

func (m *mockSidebarRepo) Upsert(ctx context.Context, cfg *models.SidebarConfig) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *mockSidebarRepo) FindByCategory(ctx context.Context, categoryID uuid.UUID) (*models.SidebarConfig, error) {
	args := m.Called(ctx, categoryID)
	cfg, _ := args.Get(0).(*models.SidebarConfig)
	return cfg, args.Error(1)
}

func (m *mockSidebarRepo) List(ctx context.Context) ([]models.SidebarConfig, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.SidebarConfig)
	return out, args.Error(1)
}

func (m *mockSidebarRepo) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) error {
	return m.Called(ctx, categoryID).Error(0)
}

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Create(ctx context.Context, r *models.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockReviewRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	args := m.Called(ctx, productID)
	out, _ := args.Get(0).([]models.Review)
	return out, args.Error(1)
}

func (m *mockReviewRepo) Summaries(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]models.ReviewSummary, error) {
	args := m.Called(ctx, productIDs)
	out, _ := args.Get(0).(map[uuid.UUID]models.ReviewSummary)
	return out, args.Error(1)
}

type mockVendorRepo struct{ mock.Mock }

func (m *mockVendorRepo) CreateVendor(ctx context.Context, v *models.Vendor) error {
	return m.Called(ctx, v).Error(0)
}

func (m *mockVendorRepo) FindVendor(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*models.Vendor)
	return v, args.Error(1)
}

func (m *mockVendorRepo) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]models.Vendor)
	return out, args.Error(1)
}

func (m *mockVendorRepo) CreateOutlet(ctx context.Context, o *models.Outlet) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockVendorRepo) ListOutlets(ctx context.Context, vendorID *uuid.UUID) ([]models.Outlet, error) {
	args := m.Called(ctx, vendorID)
	out, _ := args.Get(0).([]models.Outlet)
	return out, args.Error(1)
}

func (m *mockVendorRepo) FindOutlets(ctx context.Context, ids []uuid.UUID) ([]models.Outlet, error) {
	args := m.Called(ctx, ids)
	out, _ := args.Get(0).([]models.Outlet)
	return out, args.Error(1)
}

type mockEnquiryRepo struct{ mock.Mock }

func (m *mockEnquiryRepo) Create(ctx context.Context, e *models.Enquiry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockEnquiryRepo) AppendReply(ctx context.Context, id uuid.UUID, reply models.EnquiryReply) (*models.Enquiry, error) {
	args := m.Called(ctx, id, reply)
	e, _ := args.Get(0).(*models.Enquiry)
	return e, args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type mockInvalidator struct{ mock.Mock }

func (m *mockInvalidator) Invalidate(ctx context.Context, categoryID uuid.UUID) {
	m.Called(ctx, categoryID)
}

type mockBlogRepo struct{ mock.Mock }

func (m *mockBlogRepo) Create(ctx context.Context, b *models.Blog) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBlogRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Blog)
	return b, args.Error(1)
}

func (m *mockBlogRepo) List(ctx context.Context, publishedOnly bool) ([]models.Blog, error) {
	args := m.Called(ctx, publishedOnly)
	b, _ := args.Get(0).([]models.Blog)
	return b, args.Error(1)
}

func (m *mockBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
