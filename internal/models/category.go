// internal/models/category.go
package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/lib/pq"
)

type PropertyDefinition struct {
	Name    string       `json:"name"`
	Type    PropertyType `json:"type"`
	Options []string     `json:"options"`
}

type PropertyDefinitions []PropertyDefinition

// Normalize gives every dropdown a non-nil option list.
func (p PropertyDefinitions) Normalize() PropertyDefinitions {
	out := make(PropertyDefinitions, len(p))
	for i, def := range p {
		if def.Type == PropertyTypeDropdown && def.Options == nil {
			def.Options = []string{}
		}
		out[i] = def
	}
	return out
}

func (p PropertyDefinitions) Names() map[string]struct{} {
	names := make(map[string]struct{}, len(p))
	for _, def := range p {
		names[def.Name] = struct{}{}
	}
	return names
}

func (p PropertyDefinitions) Has(name string) bool {
	for _, def := range p {
		if def.Name == name {
			return true
		}
	}
	return false
}

func (p PropertyDefinitions) Value() (driver.Value, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(p)
}

func (p *PropertyDefinitions) Scan(value interface{}) error {
	if value == nil {
		*p = PropertyDefinitions{}
		return nil
	}
	return json.Unmarshal(scanBytes(value), p)
}

type Category struct {
	BaseModel
	Name            string              `json:"category_name" gorm:"uniqueIndex;size:255;not null"`
	Description     string              `json:"description" gorm:"type:text"`
	Image           string              `json:"category_image" gorm:"size:500"`
	VendorEnabled   bool                `json:"vendorEnabled" gorm:"default:false"`
	OutletEnabled   bool                `json:"outletEnabled" gorm:"default:false"`
	LocationEnabled bool                `json:"locationEnabled" gorm:"default:false"`
	Properties      PropertyDefinitions `json:"properties" gorm:"type:jsonb"`
	Tags            pq.StringArray      `json:"tags" gorm:"type:text[]"`
	CategoryTypes   pq.StringArray      `json:"category_types" gorm:"type:text[]"`
	Location        *Location           `json:"location,omitempty" gorm:"type:jsonb"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}

// Types returns the category types, never nil.
func (c *Category) Types() []string {
	if c == nil || c.CategoryTypes == nil {
		return []string{}
	}
	return []string(c.CategoryTypes)
}
