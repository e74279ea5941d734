// internal/services/blog_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/repository"
)

type BlogService struct {
	blogs BlogRepository
	log   *logrus.Entry
	now   func() time.Time
}

// TagList decodes either a JSON array or a comma separated string.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*t = strings.Split(joined, ",")
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("tags must be a string or a list of strings: %w", err)
	}
	*t = list
	return nil
}

type CreateBlogRequest struct {
	Title           string  `json:"title" validate:"not_blank,max=255"`
	Summary         string  `json:"summary" validate:"not_blank"`
	Body            string  `json:"body" validate:"not_blank"`
	Author          string  `json:"author,omitempty" validate:"max=255"`
	Tags            TagList `json:"tags"`
	Category        string  `json:"category" validate:"not_blank,max=100"`
	FeaturedImage   string  `json:"featuredImage,omitempty" validate:"omitempty,url,max=500"`
	SeoTitle        string  `json:"seoTitle,omitempty" validate:"max=255"`
	MetaDescription string  `json:"metaDescription,omitempty" validate:"max=500"`
	Published       bool    `json:"published"`

	// Set from the session, never from the body.
	AuthorID *uuid.UUID `json:"-"`
}

func NewBlogService(blogs BlogRepository) *BlogService {
	return &BlogService{
		blogs: blogs,
		log:   logrus.WithField("component", "blog"),
		now:   time.Now,
	}
}

func (s *BlogService) CreateBlog(ctx context.Context, req *CreateBlogRequest) (*models.Blog, error) {
	blog := &models.Blog{
		Title:           strings.TrimSpace(req.Title),
		Summary:         strings.TrimSpace(req.Summary),
		Body:            req.Body,
		Author:          strings.TrimSpace(req.Author),
		AuthorID:        req.AuthorID,
		Tags:            normalizeTags(req.Tags),
		Category:        strings.TrimSpace(req.Category),
		FeaturedImage:   req.FeaturedImage,
		SeoTitle:        req.SeoTitle,
		MetaDescription: req.MetaDescription,
		Published:       req.Published,
	}
	if blog.Published {
		published := s.now().UTC()
		blog.PublishedDate = &published
	}

	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"blog_id":   blog.ID,
		"published": blog.Published,
	}).Info("Blog created")
	return blog, nil
}

// GetBlogs lists posts newest first, optionally only the published ones.
func (s *BlogService) GetBlogs(ctx context.Context, publishedOnly bool) ([]models.Blog, error) {
	list, err := s.blogs.List(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return list, nil
}

func (s *BlogService) GetBlog(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to load blog: %w", err)
	}
	return blog, nil
}

func (s *BlogService) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	if err := s.blogs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBlogNotFound
		}
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	s.log.WithField("blog_id", id).Info("Blog deleted")
	return nil
}

// Tags are trimmed and deduplicated; blanks are dropped.
func normalizeTags(in []string) []string {
	trimmed := make([]string, 0, len(in))
	for _, tag := range in {
		if tag = strings.TrimSpace(tag); tag != "" {
			trimmed = append(trimmed, tag)
		}
	}
	return uniqueStrings(trimmed)
}
