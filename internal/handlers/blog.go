// internal/handlers/blog.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventrix/eventrix-backend/internal/i18n"
	"github.com/eventrix/eventrix-backend/internal/services"
	"github.com/eventrix/eventrix-backend/internal/session"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

type BlogHandler struct {
	blogService BlogService
}

func NewBlogHandler(blogService BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// POST /api/add-blog
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if identity, ok := session.From(c).Identity(); ok {
		req.AuthorID = &identity.UserID
		if req.Author == "" {
			req.Author = identity.Name
		}
	}

	blog, err := h.blogService.CreateBlog(c.Request.Context(), &req)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBlogCreated),
		"blog":    blog,
	})
}

// GET /api/all-blogs?published=true
func (h *BlogHandler) GetBlogs(c *gin.Context) {
	publishedOnly, _ := strconv.ParseBool(c.Query("published"))

	blogs, err := h.blogService.GetBlogs(c.Request.Context(), publishedOnly)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, blogs)
}

// GET /api/single-blogs/:id
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyBlog)
		return
	}

	blog, err := h.blogService.GetBlog(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			utils.NotFoundResponse(c, i18n.KeyBlog)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, blog)
}

// DELETE /api/blogs/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := idParam(c, "id")
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyBlog)
		return
	}

	if err := h.blogService.DeleteBlog(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrBlogNotFound) {
			utils.NotFoundResponse(c, i18n.KeyBlog)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyBlogDeleted)})
}
