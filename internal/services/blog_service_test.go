package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/repository"
)

func TestTagListAcceptsStringOrList(t *testing.T) {
	var req CreateBlogRequest
	require.NoError(t, json.Unmarshal([]byte(`{"tags":"wedding, decor"}`), &req))
	assert.Equal(t, TagList{"wedding", " decor"}, req.Tags)

	require.NoError(t, json.Unmarshal([]byte(`{"tags":["venues","lawns"]}`), &req))
	assert.Equal(t, TagList{"venues", "lawns"}, req.Tags)

	assert.Error(t, json.Unmarshal([]byte(`{"tags":42}`), &req))
}

func TestCreatePublishedBlog(t *testing.T) {
	blogs := &mockBlogRepo{}
	svc := NewBlogService(blogs)
	fixed := time.Date(2026, 10, 1, 9, 30, 0, 0, time.FixedZone("IST", 19800))
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()
	authorID := uuid.New()

	var saved *models.Blog
	blogs.On("Create", ctx, mock.AnythingOfType("*models.Blog")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.Blog) }).
		Return(nil)

	_, err := svc.CreateBlog(ctx, &CreateBlogRequest{
		Title:         "  Picking a venue  ",
		Summary:       "What to check first",
		Body:          "<p>Capacity, parking, power backup.</p>",
		Author:        "Editorial",
		AuthorID:      &authorID,
		Tags:          TagList{"venues", " venues", "", "planning "},
		Category:      "Guides",
		FeaturedImage: "https://cdn.eventrix.local/venue.jpg",
		Published:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Picking a venue", saved.Title)
	assert.Equal(t, []string{"venues", "planning"}, []string(saved.Tags))
	assert.Equal(t, &authorID, saved.AuthorID)
	require.NotNil(t, saved.PublishedDate)
	assert.Equal(t, fixed.UTC(), *saved.PublishedDate)
}

func TestCreateDraftBlogHasNoPublishedDate(t *testing.T) {
	blogs := &mockBlogRepo{}
	svc := NewBlogService(blogs)
	ctx := context.Background()

	var saved *models.Blog
	blogs.On("Create", ctx, mock.AnythingOfType("*models.Blog")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.Blog) }).
		Return(nil)

	_, err := svc.CreateBlog(ctx, &CreateBlogRequest{Title: "Draft", Summary: "s", Body: "b", Category: "Guides"})
	require.NoError(t, err)
	assert.False(t, saved.Published)
	assert.Nil(t, saved.PublishedDate)
	assert.Equal(t, []string{}, []string(saved.Tags))
}

func TestCreateBlogWrapsRepositoryError(t *testing.T) {
	blogs := &mockBlogRepo{}
	svc := NewBlogService(blogs)
	boom := errors.New("connection reset")
	blogs.On("Create", mock.Anything, mock.Anything).Return(boom)

	_, err := svc.CreateBlog(context.Background(), &CreateBlogRequest{Title: "t", Summary: "s", Body: "b", Category: "c"})
	assert.ErrorIs(t, err, boom)
}

func TestGetBlogs(t *testing.T) {
	blogs := &mockBlogRepo{}
	svc := NewBlogService(blogs)
	ctx := context.Background()
	blogs.On("List", ctx, true).Return([]models.Blog{{Title: "Live"}}, nil).Once()

	list, err := svc.GetBlogs(ctx, true)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Live", list[0].Title)
	blogs.AssertExpectations(t)
}

func TestGetAndDeleteBlogMapNotFound(t *testing.T) {
	blogs := &mockBlogRepo{}
	svc := NewBlogService(blogs)
	ctx := context.Background()
	id := uuid.New()
	blogs.On("FindByID", ctx, id).Return(nil, repository.ErrNotFound)
	blogs.On("Delete", ctx, id).Return(repository.ErrNotFound)

	_, err := svc.GetBlog(ctx, id)
	assert.ErrorIs(t, err, ErrBlogNotFound)
	assert.ErrorIs(t, svc.DeleteBlog(ctx, id), ErrBlogNotFound)
}

func TestDeleteBlog(t *testing.T) {
	blogs := &mockBlogRepo{}
	svc := NewBlogService(blogs)
	ctx := context.Background()
	id := uuid.New()
	blogs.On("Delete", ctx, id).Return(nil).Once()

	require.NoError(t, svc.DeleteBlog(ctx, id))
	blogs.AssertExpectations(t)
}
