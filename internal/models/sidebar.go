// internal/models/sidebar.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SidebarConfig is the facet configuration of one category. It is replaced
// wholesale on every save and deleted independently of the category.
type SidebarConfig struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CategoryID     uuid.UUID      `json:"categoryId" gorm:"type:uuid;not null;uniqueIndex"`
	PropertyValues StringSets     `json:"propertyValues" gorm:"type:jsonb;not null"`
	DisplayTypes   StringMap      `json:"displayTypes" gorm:"type:jsonb;not null"`
	Locations      pq.StringArray `json:"locations" gorm:"type:text[]"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// SidebarView is a configuration joined with its category at read time.
type SidebarView struct {
	ID             uuid.UUID  `json:"id"`
	CategoryID     uuid.UUID  `json:"categoryId"`
	PropertyValues StringSets `json:"propertyValues"`
	DisplayTypes   StringMap  `json:"displayTypes"`
	Locations      []string   `json:"locations"`
	CategoryName   string     `json:"categoryName"`
	CategoryTypes  []string   `json:"categoryTypes"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewSidebarView joins cfg with its category, which may be nil when the
// category no longer exists.
func NewSidebarView(cfg SidebarConfig, category *Category) SidebarView {
	view := SidebarView{
		ID:             cfg.ID,
		CategoryID:     cfg.CategoryID,
		PropertyValues: cfg.PropertyValues,
		DisplayTypes:   cfg.DisplayTypes,
		Locations:      []string(cfg.Locations),
		CategoryTypes:  category.Types(),
		UpdatedAt:      cfg.UpdatedAt,
	}
	if view.PropertyValues == nil {
		view.PropertyValues = StringSets{}
	}
	if view.DisplayTypes == nil {
		view.DisplayTypes = StringMap{}
	}
	if view.Locations == nil {
		view.Locations = []string{}
	}
	if category != nil {
		view.CategoryName = category.Name
	}
	return view
}
