// internal/handlers/sidebar.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/eventrix/eventrix-backend/internal/i18n"
	"github.com/eventrix/eventrix-backend/internal/services"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

// listAllSidebars is the identifier that asks for every configuration.
const listAllSidebars = "all"

type SidebarHandler struct {
	sidebarService SidebarService
}

func NewSidebarHandler(sidebarService SidebarService) *SidebarHandler {
	return &SidebarHandler{sidebarService: sidebarService}
}

// POST /api/sidebar
func (h *SidebarHandler) SaveSidebar(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.SaveSidebarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if strings.TrimSpace(req.CategoryID) == "" {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeySidebarCategoryRequired), nil)
		return
	}
	categoryID, err := uuid.Parse(strings.TrimSpace(req.CategoryID))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "categoryId"), nil)
		return
	}

	result, err := h.sidebarService.Upsert(c.Request.Context(), categoryID, &req)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":      i18n.T(lang, i18n.KeySidebarSaved),
		"sidebar":      result.Sidebar,
		"orphanedKeys": result.OrphanedKeys,
	})
}

// GET /api/sidebar/:categoryId
//
// "all" or any id that is not a uuid lists every configuration.
func (h *SidebarHandler) GetSidebar(c *gin.Context) {
	raw := c.Param("categoryId")
	categoryID, err := uuid.Parse(raw)
	if raw == listAllSidebars || err != nil {
		views, err := h.sidebarService.GetAll(c.Request.Context())
		if err != nil {
			utils.InternalErrorResponse(c, err.Error())
			return
		}
		utils.SuccessResponse(c, views)
		return
	}

	view, err := h.sidebarService.GetByCategory(c.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, services.ErrSidebarNotFound) {
			utils.NotFoundResponse(c, i18n.KeySidebarConfig)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, view)
}

// DELETE /api/sidebar/:categoryId
func (h *SidebarHandler) DeleteSidebar(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	categoryID, ok := idParam(c, "categoryId")
	if !ok {
		utils.NotFoundResponse(c, i18n.KeySidebar)
		return
	}

	if err := h.sidebarService.Delete(c.Request.Context(), categoryID); err != nil {
		if errors.Is(err, services.ErrSidebarNotFound) {
			utils.NotFoundResponse(c, i18n.KeySidebar)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeySidebarDeleted),
	})
}
