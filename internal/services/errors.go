// internal/services/errors.go
package services

import (
	"errors"
	"strings"
)

var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryExists     = errors.New("category with this name already exists")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrProductNotFound    = errors.New("product not found")
	ErrSidebarNotFound    = errors.New("sidebar not found")
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrVendorExists       = errors.New("vendor with this email already exists")
	ErrVendorRequired     = errors.New("vendor is required for this category")
	ErrOutletRequired     = errors.New("outlet is required for this category")
	ErrInvalidOutlet      = errors.New("invalid outlet")
	ErrEnquiryNotFound    = errors.New("enquiry not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountSuspended   = errors.New("account suspended")
	ErrUserNotFound       = errors.New("user not found")
	ErrBlogNotFound       = errors.New("blog not found")
)

// MissingFieldsError lists required fields absent from a request.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}
