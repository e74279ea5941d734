// internal/handlers/vendor.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eventrix/eventrix-backend/internal/i18n"
	"github.com/eventrix/eventrix-backend/internal/services"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

type VendorHandler struct {
	vendorService VendorService
}

func NewVendorHandler(vendorService VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

// POST /api/vendors
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrVendorExists) {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyVendorExists))
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVendorCreated),
		"vendor":  vendor,
	})
}

// GET /api/vendors
func (h *VendorHandler) GetVendors(c *gin.Context) {
	vendors, err := h.vendorService.GetVendors(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, vendors)
}

// GET /api/vendors/:id
func (h *VendorHandler) GetVendor(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyVendor)
		return
	}

	vendor, err := h.vendorService.GetVendor(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrVendorNotFound) {
			utils.NotFoundResponse(c, i18n.KeyVendor)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, vendor)
}

// POST /api/outlets
func (h *VendorHandler) CreateOutlet(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateOutletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	outlet, err := h.vendorService.CreateOutlet(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrVendorNotFound) {
			utils.NotFoundResponse(c, i18n.KeyVendor)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyOutletCreated),
		"outlet":  outlet,
	})
}

// GET /api/outlets?vendorId=
func (h *VendorHandler) GetOutlets(c *gin.Context) {
	var vendorID *uuid.UUID
	if raw := c.Query("vendorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			utils.NotFoundResponse(c, i18n.KeyVendor)
			return
		}
		vendorID = &id
	}

	outlets, err := h.vendorService.GetOutlets(c.Request.Context(), vendorID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, outlets)
}
