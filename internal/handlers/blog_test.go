package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/services"
	"github.com/eventrix/eventrix-backend/internal/session"
)

func blogRouter(svc BlogService, identity *session.Identity) *gin.Engine {
	h := NewBlogHandler(svc)
	r := newEngine()
	if identity != nil {
		r.Use(func(c *gin.Context) {
			s := session.New()
			_ = s.Login(*identity)
			session.Attach(c, s)
		})
	}
	r.POST("/api/add-blog", h.CreateBlog)
	r.GET("/api/all-blogs", h.GetBlogs)
	r.GET("/api/single-blogs/:id", h.GetBlog)
	r.DELETE("/api/blogs/:id", h.DeleteBlog)
	return r
}

func TestCreateBlogTakesAuthorFromSession(t *testing.T) {
	svc := &mockBlogService{}
	editor := session.Identity{UserID: uuid.New(), Name: "Meera", Role: models.UserRoleAdmin}
	r := blogRouter(svc, &editor)

	svc.On("CreateBlog", mock.Anything, mock.MatchedBy(func(req *services.CreateBlogRequest) bool {
		return req.Author == "Meera" && req.AuthorID != nil && *req.AuthorID == editor.UserID &&
			len(req.Tags) == 2
	})).Return(&models.Blog{Title: "Monsoon weddings"}, nil)

	w := perform(r, http.MethodPost, "/api/add-blog", map[string]interface{}{
		"title":    "Monsoon weddings",
		"summary":  "Planning around the rain",
		"body":     "<p>Book a covered venue.</p>",
		"tags":     "weddings,monsoon",
		"category": "Guides",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var data struct {
		Message string      `json:"message"`
		Blog    models.Blog `json:"blog"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, "Blog added successfully", data.Message)
	assert.Equal(t, "Monsoon weddings", data.Blog.Title)
	svc.AssertExpectations(t)
}

func TestCreateBlogValidates(t *testing.T) {
	svc := &mockBlogService{}
	r := blogRouter(svc, nil)

	w := perform(r, http.MethodPost, "/api/add-blog", map[string]interface{}{
		"title":         "Monsoon weddings",
		"body":          "b",
		"category":      "Guides",
		"featuredImage": "not a url",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Error.Code)

	w = perform(r, http.MethodPost, "/api/add-blog", `{"title":"t","tags":7}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CreateBlog", mock.Anything, mock.Anything)
}

func TestGetBlogsPublishedFilter(t *testing.T) {
	svc := &mockBlogService{}
	r := blogRouter(svc, nil)
	svc.On("GetBlogs", mock.Anything, true).Return([]models.Blog{{Title: "Live", Published: true}}, nil).Once()
	svc.On("GetBlogs", mock.Anything, false).Return([]models.Blog{}, nil).Once()

	w := perform(r, http.MethodGet, "/api/all-blogs?published=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Blog
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Live", list[0].Title)

	w = perform(r, http.MethodGet, "/api/all-blogs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(decode(t, w).Data))
	svc.AssertExpectations(t)
}

func TestGetBlogNotFound(t *testing.T) {
	svc := &mockBlogService{}
	r := blogRouter(svc, nil)
	id := uuid.New()
	svc.On("GetBlog", mock.Anything, id).Return(nil, services.ErrBlogNotFound)

	w := perform(r, http.MethodGet, "/api/single-blogs/"+id.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Blog not found", decode(t, w).Error.Message)

	w = perform(r, http.MethodGet, "/api/single-blogs/not-an-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBlog(t *testing.T) {
	svc := &mockBlogService{}
	r := blogRouter(svc, nil)
	found, missing := uuid.New(), uuid.New()
	svc.On("DeleteBlog", mock.Anything, found).Return(nil)
	svc.On("DeleteBlog", mock.Anything, missing).Return(services.ErrBlogNotFound)

	w := perform(r, http.MethodDelete, "/api/blogs/"+found.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Blog deleted successfully"}`, string(decode(t, w).Data))

	w = perform(r, http.MethodDelete, "/api/blogs/"+missing.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBlogInternalError(t *testing.T) {
	svc := &mockBlogService{}
	r := blogRouter(svc, nil)
	id := uuid.New()
	svc.On("DeleteBlog", mock.Anything, id).Return(errors.New("db down"))

	w := perform(r, http.MethodDelete, "/api/blogs/"+id.String(), nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
