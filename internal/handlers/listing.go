// internal/handlers/listing.go
package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/eventrix/eventrix-backend/internal/filter"
	"github.com/eventrix/eventrix-backend/internal/i18n"
	"github.com/eventrix/eventrix-backend/internal/services"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

type ListingHandler struct {
	listingService ListingService
}

func NewListingHandler(listingService ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// GET /api/products/category/:categoryId
func (h *ListingHandler) GetCategoryProducts(c *gin.Context) {
	categoryID, ok := idParam(c, "categoryId")
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyCategory)
		return
	}

	listing, err := h.listingService.CategoryProducts(c.Request.Context(), categoryID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	utils.SuccessResponse(c, listing)
}

// POST /api/products/category/:categoryId/filter
//
// The body is a filter criteria; an empty body returns the whole category.
func (h *ListingHandler) FilterCategoryProducts(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	categoryID, ok := idParam(c, "categoryId")
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyCategory)
		return
	}

	var criteria filter.Criteria
	if err := c.ShouldBindJSON(&criteria); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "criteria"), err.Error())
		return
	}

	listing, err := h.listingService.FilterCategory(c.Request.Context(), categoryID, criteria)
	if err != nil {
		h.writeError(c, err)
		return
	}
	utils.SuccessResponse(c, listing)
}

func (h *ListingHandler) writeError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrCategoryNotFound) {
		utils.NotFoundResponse(c, i18n.KeyCategory)
		return
	}
	utils.InternalErrorResponse(c, err.Error())
}
