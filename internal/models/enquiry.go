// internal/models/enquiry.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EnquiryReply struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type EnquiryReplies []EnquiryReply

func (r EnquiryReplies) Value() (driver.Value, error) {
	if r == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r)
}

func (r *EnquiryReplies) Scan(value interface{}) error {
	if value == nil {
		*r = EnquiryReplies{}
		return nil
	}
	return json.Unmarshal(scanBytes(value), r)
}

type Enquiry struct {
	BaseModel
	Name         string         `json:"name" gorm:"size:255;not null"`
	Phone        string         `json:"phone" gorm:"size:32;not null"`
	Email        string         `json:"email" gorm:"size:255;not null"`
	Message      string         `json:"message" gorm:"type:text;not null"`
	FunctionDate time.Time      `json:"functionDate" gorm:"not null"`
	VendorID     *uuid.UUID     `json:"vendorId,omitempty" gorm:"type:uuid;index"`
	VendorName   string         `json:"vendorName,omitempty" gorm:"size:255"`
	VendorEmail  string         `json:"vendorEmail,omitempty" gorm:"size:255"`
	OutletID     *uuid.UUID     `json:"outletId,omitempty" gorm:"type:uuid;index"`
	OutletName   string         `json:"outletName,omitempty" gorm:"size:255"`
	OutletEmail  string         `json:"outletEmail,omitempty" gorm:"size:255"`
	ProductID    uuid.UUID      `json:"productId" gorm:"type:uuid;not null;index"`
	ProductName  string         `json:"productName" gorm:"size:255;not null"`
	UserID       uuid.UUID      `json:"userId" gorm:"type:uuid;not null;index"`
	UserName     string         `json:"userName" gorm:"size:255;not null"`
	Replies      EnquiryReplies `json:"replies" gorm:"type:jsonb"`
}
