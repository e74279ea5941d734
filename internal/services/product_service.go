// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/repository"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

var ErrInvalidCategoryType = errors.New("category type is not offered by the category")

type ProductService struct {
	products   ProductRepository
	categories CategoryRepository
	vendors    VendorRepository
	log        *logrus.Entry
}

type CreateProductRequest struct {
	Name         string                 `json:"product_name" validate:"not_blank,max=255"`
	Description  string                 `json:"description,omitempty"`
	CategoryID   string                 `json:"category_id" validate:"required,uuid"`
	VendorID     string                 `json:"vendor_id,omitempty" validate:"omitempty,uuid"`
	OutletIDs    []string               `json:"outlet_ids,omitempty" validate:"omitempty,dive,uuid"`
	SellingPrice *float64               `json:"selling_price" validate:"required,gte=0"`
	DisplayPrice *float64               `json:"display_price,omitempty" validate:"omitempty,gte=0"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
	Location     *models.Location       `json:"location,omitempty"`
	CategoryType string                 `json:"category_type,omitempty"`
	MainImage    string                 `json:"product_image,omitempty" validate:"omitempty,max=500"`
	Images       []string               `json:"additional_images,omitempty"`
	Tags         []string               `json:"tags,omitempty"`
}

// UpdateProductRequest changes only the fields that are present.
type UpdateProductRequest struct {
	Name         *string                `json:"product_name,omitempty" validate:"omitempty,not_blank,max=255"`
	Description  *string                `json:"description,omitempty"`
	CategoryID   *string                `json:"category_id,omitempty" validate:"omitempty,uuid"`
	VendorID     *string                `json:"vendor_id,omitempty" validate:"omitempty,uuid"`
	OutletIDs    []string               `json:"outlet_ids,omitempty" validate:"omitempty,dive,uuid"`
	SellingPrice *float64               `json:"selling_price,omitempty" validate:"omitempty,gte=0"`
	DisplayPrice *float64               `json:"display_price,omitempty" validate:"omitempty,gte=0"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
	Location     *models.Location       `json:"location,omitempty"`
	CategoryType *string                `json:"category_type,omitempty"`
	MainImage    *string                `json:"product_image,omitempty" validate:"omitempty,max=500"`
	Images       []string               `json:"additional_images,omitempty"`
	Tags         []string               `json:"tags,omitempty"`
}

func NewProductService(products ProductRepository, categories CategoryRepository, vendors VendorRepository) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		vendors:    vendors,
		log:        logrus.WithField("component", "product"),
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	category, err := s.loadCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		CategoryID:   category.ID,
		OutletIDs:    nonNil(req.OutletIDs),
		SellingPrice: *req.SellingPrice,
		DisplayPrice: req.DisplayPrice,
		Properties:   declaredProperties(req.Properties, category.Properties),
		Location:     req.Location,
		CategoryType: req.CategoryType,
		MainImage:    req.MainImage,
		Images:       nonNil(req.Images),
		Tags:         nonNil(req.Tags),
	}
	if req.VendorID != "" {
		id, err := uuid.Parse(req.VendorID)
		if err != nil {
			return nil, ErrVendorNotFound
		}
		product.VendorID = &id
	}

	if err := s.checkReferences(ctx, category, product); err != nil {
		return nil, err
	}

	sku, err := utils.GenerateSKU()
	if err != nil {
		return nil, fmt.Errorf("failed to generate sku: %w", err)
	}
	product.SKU = sku

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"product_id":  product.ID,
		"category_id": product.CategoryID,
		"sku":         product.SKU,
	}).Info("Product created")
	return product, nil
}

func (s *ProductService) GetProducts(ctx context.Context, params utils.PaginationParams) ([]models.Product, int64, error) {
	list, total, err := s.products.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return list, total, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	categoryID := product.CategoryID.String()
	if req.CategoryID != nil {
		categoryID = *req.CategoryID
	}
	category, err := s.loadCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	product.CategoryID = category.ID
	product.Category = nil
	product.Vendor = nil

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.VendorID != nil {
		if *req.VendorID == "" {
			product.VendorID = nil
		} else {
			vendorID, err := uuid.Parse(*req.VendorID)
			if err != nil {
				return nil, ErrVendorNotFound
			}
			product.VendorID = &vendorID
		}
	}
	if req.OutletIDs != nil {
		product.OutletIDs = req.OutletIDs
	}
	if req.SellingPrice != nil {
		product.SellingPrice = *req.SellingPrice
	}
	if req.DisplayPrice != nil {
		product.DisplayPrice = req.DisplayPrice
	}
	if req.Properties != nil {
		product.Properties = declaredProperties(req.Properties, category.Properties)
	} else if req.CategoryID != nil {
		product.Properties = declaredProperties(product.Properties, category.Properties)
	}
	if req.Location != nil {
		product.Location = req.Location
	}
	if req.CategoryType != nil {
		product.CategoryType = *req.CategoryType
	}
	if req.MainImage != nil {
		product.MainImage = *req.MainImage
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Tags != nil {
		product.Tags = req.Tags
	}

	if err := s.checkReferences(ctx, category, product); err != nil {
		return nil, err
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

func (s *ProductService) loadCategory(ctx context.Context, rawID string) (*models.Category, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidCategory
	}
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCategory
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	return category, nil
}

// checkReferences enforces the category's vendor, outlet and type rules.
func (s *ProductService) checkReferences(ctx context.Context, category *models.Category, p *models.Product) error {
	if p.CategoryType != "" && len(category.CategoryTypes) > 0 && !containsFold(category.CategoryTypes, p.CategoryType) {
		return ErrInvalidCategoryType
	}

	if p.VendorID == nil {
		if category.VendorEnabled {
			return ErrVendorRequired
		}
	} else if _, err := s.vendors.FindVendor(ctx, *p.VendorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrVendorNotFound
		}
		return fmt.Errorf("failed to load vendor: %w", err)
	}

	if len(p.OutletIDs) == 0 {
		if category.OutletEnabled {
			return ErrOutletRequired
		}
		return nil
	}

	ids := make([]uuid.UUID, 0, len(p.OutletIDs))
	for _, raw := range p.OutletIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return ErrInvalidOutlet
		}
		ids = append(ids, id)
	}
	outlets, err := s.vendors.FindOutlets(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load outlets: %w", err)
	}
	if len(outlets) != len(uniqueIDs(ids)) {
		return ErrInvalidOutlet
	}
	return nil
}

// declaredProperties keeps only the keys the category declares.
func declaredProperties(in map[string]interface{}, declared models.PropertyDefinitions) models.JSONB {
	names := declared.Names()
	out := make(models.JSONB, len(in))
	for key, value := range in {
		if _, ok := names[key]; ok {
			out[key] = value
		}
	}
	return out
}

func containsFold(values []string, want string) bool {
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func uniqueIDs(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
