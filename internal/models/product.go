// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name         string         `json:"product_name" gorm:"size:255;not null"`
	Description  string         `json:"description" gorm:"type:text"`
	CategoryID   uuid.UUID      `json:"category_id" gorm:"type:uuid;not null;index"`
	VendorID     *uuid.UUID     `json:"vendor_id,omitempty" gorm:"type:uuid;index"`
	OutletIDs    pq.StringArray `json:"outlet_ids" gorm:"type:text[]"`
	SellingPrice float64        `json:"selling_price" gorm:"type:decimal(12,2);not null"`
	DisplayPrice *float64       `json:"display_price,omitempty" gorm:"type:decimal(12,2)"`
	Properties   JSONB          `json:"properties" gorm:"type:jsonb"`
	Location     *Location      `json:"location,omitempty" gorm:"type:jsonb"`
	CategoryType string         `json:"category_type,omitempty" gorm:"size:100;index"`
	SKU          string         `json:"sku" gorm:"uniqueIndex;size:64"`
	MainImage    string         `json:"product_image,omitempty" gorm:"size:500"`
	Images       pq.StringArray `json:"additional_images" gorm:"type:text[]"`
	Tags         pq.StringArray `json:"tags" gorm:"type:text[]"`

	// Relationships
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Vendor   *Vendor   `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`
}

// ListedProduct is a product annotated with its review aggregates.
type ListedProduct struct {
	Product
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int64   `json:"totalReviews"`
}

// Annotate pairs products with their review summaries. Products without a
// summary get zero reviews.
func Annotate(products []Product, summaries map[uuid.UUID]ReviewSummary) []ListedProduct {
	listed := make([]ListedProduct, len(products))
	for i, p := range products {
		listed[i] = ListedProduct{Product: p}
		if s, ok := summaries[p.ID]; ok {
			listed[i].AverageRating = s.AverageRating
			listed[i].TotalReviews = s.TotalReviews
		}
	}
	return listed
}
