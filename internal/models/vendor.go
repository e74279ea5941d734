// internal/models/vendor.go
package models

import "github.com/google/uuid"

type Vendor struct {
	BaseModel
	Name    string `json:"vendor_name" gorm:"size:255;not null"`
	Email   string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone   string `json:"phone" gorm:"size:32"`
	Address string `json:"address" gorm:"type:text"`

	Outlets []Outlet `json:"outlets,omitempty" gorm:"foreignKey:VendorID"`
}

type Outlet struct {
	BaseModel
	VendorID *uuid.UUID `json:"vendor_id,omitempty" gorm:"type:uuid;index"`
	Name     string     `json:"outlet_name" gorm:"size:255;not null"`
	Email    string     `json:"email" gorm:"size:255"`
	Phone    string     `json:"phone" gorm:"size:32"`
	Location *Location  `json:"location,omitempty" gorm:"type:jsonb"`
}
