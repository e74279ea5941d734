// internal/models/blog.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Blog is an editorial post. FeaturedImage is a URL; files are hosted elsewhere.
type Blog struct {
	BaseModel
	Title           string         `json:"title" gorm:"size:255;not null"`
	Summary         string         `json:"summary" gorm:"type:text"`
	Body            string         `json:"body" gorm:"type:text;not null"`
	Author          string         `json:"author" gorm:"size:255"`
	AuthorID        *uuid.UUID     `json:"author_id,omitempty" gorm:"type:uuid;index"`
	Tags            pq.StringArray `json:"tags" gorm:"type:text[]"`
	Category        string         `json:"category" gorm:"size:100;index"`
	FeaturedImage   string         `json:"featuredImage" gorm:"size:500"`
	SeoTitle        string         `json:"seoTitle,omitempty" gorm:"size:255"`
	MetaDescription string         `json:"metaDescription,omitempty" gorm:"size:500"`
	Published       bool           `json:"published" gorm:"default:false;index"`
	PublishedDate   *time.Time     `json:"publishedDate,omitempty"`
}
