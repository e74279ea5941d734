package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/eventrix/eventrix-backend/internal/filter"
	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/services"
	"github.com/eventrix/eventrix-backend/internal/session"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

type mockSidebarService struct{ mock.Mock }

func (m *mockSidebarService) Upsert(ctx context.Context, id uuid.UUID, req *services.SaveSidebarRequest) (*services.SaveSidebarResult, error) {
	args := m.Called(ctx, id, req)
	r, _ := args.Get(0).(*services.SaveSidebarResult)
	return r, args.Error(1)
}

func (m *mockSidebarService) GetByCategory(ctx context.Context, id uuid.UUID) (*models.SidebarView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*models.SidebarView)
	return v, args.Error(1)
}

func (m *mockSidebarService) GetAll(ctx context.Context) ([]models.SidebarView, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]models.SidebarView)
	return v, args.Error(1)
}

func (m *mockSidebarService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryService struct{ mock.Mock }

func (m *mockCategoryService) CreateCategory(ctx context.Context, req *services.CreateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, req)
	c, _ := args.Get(0).(*models.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]models.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) GetTopCategories(ctx context.Context, order string, limit int) ([]models.Category, error) {
	args := m.Called(ctx, order, limit)
	c, _ := args.Get(0).([]models.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *services.UpdateCategoryRequest) (*models.Category, error) {
	args := m.Called(ctx, id, req)
	c, _ := args.Get(0).(*models.Category)
	return c, args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockProductService struct{ mock.Mock }

func (m *mockProductService) CreateProduct(ctx context.Context, req *services.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *mockProductService) GetProducts(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error) {
	args := m.Called(ctx, params)
	p, _ := args.Get(0).([]models.Product)
	return p, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *services.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, id, req)
	p, _ := args.Get(0).(*models.Product)
	return p, args.Error(1)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockListingService struct{ mock.Mock }

func (m *mockListingService) CategoryProducts(ctx context.Context, id uuid.UUID) (*services.CategoryListing, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*services.CategoryListing)
	return l, args.Error(1)
}

func (m *mockListingService) FilterCategory(ctx context.Context, id uuid.UUID, criteria filter.Criteria) (*services.FilteredListing, error) {
	args := m.Called(ctx, id, criteria)
	l, _ := args.Get(0).(*services.FilteredListing)
	return l, args.Error(1)
}

type mockReviewService struct{ mock.Mock }

func (m *mockReviewService) CreateReview(ctx context.Context, req *services.CreateReviewRequest) (*models.Review, error) {
	args := m.Called(ctx, req)
	r, _ := args.Get(0).(*models.Review)
	return r, args.Error(1)
}

func (m *mockReviewService) GetProductReviews(ctx context.Context, id uuid.UUID) (*services.ProductReviews, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*services.ProductReviews)
	return r, args.Error(1)
}

type mockEnquiryService struct{ mock.Mock }

func (m *mockEnquiryService) SubmitEnquiry(ctx context.Context, req *services.SubmitEnquiryRequest) (*models.Enquiry, error) {
	args := m.Called(ctx, req)
	e, _ := args.Get(0).(*models.Enquiry)
	return e, args.Error(1)
}

func (m *mockEnquiryService) ReplyToEnquiry(ctx context.Context, id uuid.UUID, req *services.ReplyEnquiryRequest) (*models.EnquiryReply, error) {
	args := m.Called(ctx, id, req)
	r, _ := args.Get(0).(*models.EnquiryReply)
	return r, args.Error(1)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Login(ctx context.Context, sess *session.Session, req *services.LoginRequest) (*services.AuthResponse, error) {
	args := m.Called(ctx, sess, req)
	r, _ := args.Get(0).(*services.AuthResponse)
	return r, args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, sess *session.Session) error {
	return m.Called(ctx, sess).Error(0)
}

func (m *mockAuthService) Me(ctx context.Context, sess *session.Session) (*models.User, error) {
	args := m.Called(ctx, sess)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

type mockBlogService struct{ mock.Mock }

func (m *mockBlogService) CreateBlog(ctx context.Context, req *services.CreateBlogRequest) (*models.Blog, error) {
	args := m.Called(ctx, req)
	b, _ := args.Get(0).(*models.Blog)
	return b, args.Error(1)
}

func (m *mockBlogService) GetBlogs(ctx context.Context, publishedOnly bool) ([]models.Blog, error) {
	args := m.Called(ctx, publishedOnly)
	b, _ := args.Get(0).([]models.Blog)
	return b, args.Error(1)
}

func (m *mockBlogService) GetBlog(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Blog)
	return b, args.Error(1)
}

func (m *mockBlogService) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
