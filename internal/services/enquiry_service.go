// internal/services/enquiry_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/repository"
)

var (
	ErrInvalidFunctionDate = errors.New("functionDate must be a date")
	ErrInvalidReference    = errors.New("productId, userId, vendorId and outletId must be valid ids")
)

var functionDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

type EnquiryService struct {
	enquiries EnquiryRepository
	log       *logrus.Entry
	now       func() time.Time
}

type SubmitEnquiryRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email" validate:"omitempty,email"`
	Message      string `json:"message"`
	FunctionDate string `json:"functionDate"`
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	VendorID     string `json:"vendorId,omitempty"`
	VendorName   string `json:"vendorName,omitempty"`
	VendorEmail  string `json:"vendorEmail,omitempty"`
	OutletID     string `json:"outletId,omitempty"`
	OutletName   string `json:"outletName,omitempty"`
	OutletEmail  string `json:"outletEmail,omitempty"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
}

type ReplyEnquiryRequest struct {
	Name    string `json:"name" validate:"not_blank,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"not_blank"`
}

func NewEnquiryService(enquiries EnquiryRepository) *EnquiryService {
	return &EnquiryService{
		enquiries: enquiries,
		log:       logrus.WithField("component", "enquiry"),
		now:       time.Now,
	}
}

// MissingFields lists the required fields that are empty, in form order.
func (r *SubmitEnquiryRequest) MissingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"phone", r.Phone},
		{"email", r.Email},
		{"message", r.Message},
		{"functionDate", r.FunctionDate},
		{"productId", r.ProductID},
		{"productName", r.ProductName},
		{"userId", r.UserID},
		{"userName", r.UserName},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func (s *EnquiryService) SubmitEnquiry(ctx context.Context, req *SubmitEnquiryRequest) (*models.Enquiry, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	functionDate, err := parseFunctionDate(req.FunctionDate)
	if err != nil {
		return nil, err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, ErrInvalidReference
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, ErrInvalidReference
	}
	vendorID, err := optionalID(req.VendorID)
	if err != nil {
		return nil, ErrInvalidReference
	}
	outletID, err := optionalID(req.OutletID)
	if err != nil {
		return nil, ErrInvalidReference
	}

	enquiry := &models.Enquiry{
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		Message:      req.Message,
		FunctionDate: functionDate,
		VendorID:     vendorID,
		VendorName:   req.VendorName,
		VendorEmail:  req.VendorEmail,
		OutletID:     outletID,
		OutletName:   req.OutletName,
		OutletEmail:  req.OutletEmail,
		ProductID:    productID,
		ProductName:  req.ProductName,
		UserID:       userID,
		UserName:     req.UserName,
		Replies:      models.EnquiryReplies{},
	}
	if err := s.enquiries.Create(ctx, enquiry); err != nil {
		return nil, fmt.Errorf("failed to save enquiry: %w", err)
	}

	// Mail delivery is handled outside this service; the entry carries
	// everything a notifier needs.
	s.log.WithFields(logrus.Fields{
		"enquiry_id":    enquiry.ID,
		"product_id":    enquiry.ProductID,
		"product_name":  enquiry.ProductName,
		"user_id":       enquiry.UserID,
		"vendor_email":  enquiry.VendorEmail,
		"outlet_email":  enquiry.OutletEmail,
		"function_date": enquiry.FunctionDate.Format("2006-01-02"),
	}).Info("Enquiry received")
	return enquiry, nil
}

func (s *EnquiryService) ReplyToEnquiry(ctx context.Context, id uuid.UUID, req *ReplyEnquiryRequest) (*models.EnquiryReply, error) {
	reply := models.EnquiryReply{
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		Message:   req.Message,
		Timestamp: s.now().UTC(),
	}
	if _, err := s.enquiries.AppendReply(ctx, id, reply); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, fmt.Errorf("failed to add reply: %w", err)
	}
	return &reply, nil
}

func parseFunctionDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range functionDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidFunctionDate
}

func optionalID(raw string) (*uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
