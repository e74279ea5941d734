// internal/handlers/enquiry.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventrix/eventrix-backend/internal/i18n"
	"github.com/eventrix/eventrix-backend/internal/services"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

type EnquiryHandler struct {
	enquiryService EnquiryService
}

func NewEnquiryHandler(enquiryService EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

// POST /api/submit-enquiry
func (h *EnquiryHandler) SubmitEnquiry(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SubmitEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Missing fields are reported together before format checks.
	if missing := req.MissingFields(); len(missing) > 0 {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyEnquiryMissingFields, strings.Join(missing, ", ")), missing)
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	enquiry, err := h.enquiryService.SubmitEnquiry(c.Request.Context(), &req)
	if err != nil {
		var missing *services.MissingFieldsError
		switch {
		case errors.As(err, &missing):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyEnquiryMissingFields, strings.Join(missing.Fields, ", ")), missing.Fields)
		case errors.Is(err, services.ErrInvalidFunctionDate), errors.Is(err, services.ErrInvalidReference):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyEnquirySubmitted),
		"enquiry": enquiry,
	})
}

// POST /api/reply-enquiry/:id
func (h *EnquiryHandler) ReplyEnquiry(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	id, ok := idParam(c, "id")
	if !ok {
		utils.NotFoundResponse(c, i18n.KeyEnquiry)
		return
	}

	var req services.ReplyEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	reply, err := h.enquiryService.ReplyToEnquiry(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrEnquiryNotFound) {
			utils.NotFoundResponse(c, i18n.KeyEnquiry)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyEnquiryReplied),
		"reply":   reply,
	})
}
