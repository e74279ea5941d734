// internal/handlers/product.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/eventrix/eventrix-backend/internal/i18n"
	"github.com/eventrix/eventrix-backend/internal/services"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

type ProductHandler struct {
	productService ProductService
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /api/all-added-products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, total, err := h.productService.GetProducts(c.Request.Context(), params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(products, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /api/add-product
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": product,
	})
}

// GET /api/products/:productId
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := idParam(c, "productId")
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyProduct)
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	utils.SuccessResponse(c, product)
}

// PUT /api/update-product/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := idParam(c, "id")
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyProduct)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": product,
	})
}

// DELETE /api/delete-product/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := idParam(c, "id")
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyProduct)
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeleted),
	})
}

func (h *ProductHandler) writeError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, i18n.KeyProduct)
	case errors.Is(err, services.ErrInvalidCategory):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCategoryInvalid), nil)
	case errors.Is(err, services.ErrVendorRequired):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductVendorRequired), nil)
	case errors.Is(err, services.ErrOutletRequired):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductOutletRequired), nil)
	case errors.Is(err, services.ErrVendorNotFound):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductInvalidVendor), nil)
	case errors.Is(err, services.ErrInvalidOutlet):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductInvalidOutlet), nil)
	case errors.Is(err, services.ErrInvalidCategoryType):
		utils.BadRequestResponse(c, err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
