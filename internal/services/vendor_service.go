// internal/services/vendor_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/repository"
)

type VendorService struct {
	vendors VendorRepository
}

type CreateVendorRequest struct {
	Name    string `json:"vendor_name" validate:"not_blank,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"max=32"`
	Address string `json:"address,omitempty"`
}

type CreateOutletRequest struct {
	VendorID string           `json:"vendor_id,omitempty" validate:"omitempty,uuid"`
	Name     string           `json:"outlet_name" validate:"not_blank,max=255"`
	Email    string           `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string           `json:"phone,omitempty" validate:"max=32"`
	Location *models.Location `json:"location,omitempty"`
}

func NewVendorService(vendors VendorRepository) *VendorService {
	return &VendorService{vendors: vendors}
}

func (s *VendorService) CreateVendor(ctx context.Context, req *CreateVendorRequest) (*models.Vendor, error) {
	vendor := &models.Vendor{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := s.vendors.CreateVendor(ctx, vendor); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrVendorExists
		}
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}
	return vendor, nil
}

func (s *VendorService) GetVendors(ctx context.Context) ([]models.Vendor, error) {
	list, err := s.vendors.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return list, nil
}

func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	vendor, err := s.vendors.FindVendor(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to load vendor: %w", err)
	}
	return vendor, nil
}

func (s *VendorService) CreateOutlet(ctx context.Context, req *CreateOutletRequest) (*models.Outlet, error) {
	outlet := &models.Outlet{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
	}
	if req.VendorID != "" {
		vendorID, err := uuid.Parse(req.VendorID)
		if err != nil {
			return nil, ErrVendorNotFound
		}
		vendor, err := s.GetVendor(ctx, vendorID)
		if err != nil {
			return nil, err
		}
		outlet.VendorID = &vendor.ID
	}
	if err := s.vendors.CreateOutlet(ctx, outlet); err != nil {
		return nil, fmt.Errorf("failed to create outlet: %w", err)
	}
	return outlet, nil
}

// GetOutlets lists every outlet, or one vendor's when vendorID is set.
func (s *VendorService) GetOutlets(ctx context.Context, vendorID *uuid.UUID) ([]models.Outlet, error) {
	list, err := s.vendors.ListOutlets(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list outlets: %w", err)
	}
	return list, nil
}
