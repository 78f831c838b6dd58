package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendordesk-io/vendordesk/internal/application/vendormgmt/dto"
	domainVendor "github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	apperrors "github.com/vendordesk-io/vendordesk/internal/shared/errors"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
	"github.com/vendordesk-io/vendordesk/internal/shared/utils"
)

// SettingsService is the application surface the settings handler depends on.
type SettingsService interface {
	GetSettings(ctx context.Context, adminID, vendorID uint) (*dto.SettingsResponse, error)
	UpdateSettings(ctx context.Context, adminID, vendorID uint, request dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
	AddMembership(ctx context.Context, adminID, vendorID uint, scope domainVendor.ScopeType, request dto.AddMembershipRequest) error
	ListMembership(ctx context.Context, adminID, vendorID uint, scope domainVendor.ScopeType) ([]dto.MembershipEntryResponse, error)
	RemoveMembership(ctx context.Context, adminID, vendorID uint, scope domainVendor.ScopeType, entityID uint) error
}

type VendorSettingsHandler struct {
	service SettingsService
	logger  logger.Interface
}

func NewVendorSettingsHandler(service SettingsService) *VendorSettingsHandler {
	return &VendorSettingsHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

// parseScope maps the :scope path segment onto a scope type. The URL uses
// hyphens, the domain uses snake_case.
func parseScope(c *gin.Context) (domainVendor.ScopeType, error) {
	switch c.Param("scope") {
	case "services":
		return domainVendor.ScopeServices, nil
	case "language-pairs":
		return domainVendor.ScopeLanguagePairs, nil
	case "specializations":
		return domainVendor.ScopeSpecializations, nil
	default:
		return "", apperrors.NewValidationError(
			"unknown scope, expected one of [services language-pairs specializations]",
		)
	}
}

func (h *VendorSettingsHandler) GetSettings(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	vendorID, err := utils.ParseUintParam(c, "id", "vendor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetSettings(c.Request.Context(), adminID, vendorID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *VendorSettingsHandler) UpdateSettings(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	vendorID, err := utils.ParseUintParam(c, "id", "vendor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update settings",
			"vendor_id", vendorID,
			"error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.service.UpdateSettings(c.Request.Context(), adminID, vendorID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settings updated successfully", result)
}

func (h *VendorSettingsHandler) AddMembership(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	vendorID, err := utils.ParseUintParam(c, "id", "vendor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	scope, err := parseScope(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.AddMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add membership",
			"vendor_id", vendorID,
			"scope", scope,
			"error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.AddMembership(c.Request.Context(), adminID, vendorID, scope, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, nil, "Entries added successfully")
}

func (h *VendorSettingsHandler) ListMembership(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	vendorID, err := utils.ParseUintParam(c, "id", "vendor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	scope, err := parseScope(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListMembership(c.Request.Context(), adminID, vendorID, scope)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *VendorSettingsHandler) RemoveMembership(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	vendorID, err := utils.ParseUintParam(c, "id", "vendor")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	scope, err := parseScope(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	entityID, err := utils.ParseUintParam(c, "entity_id", "entry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.RemoveMembership(c.Request.Context(), adminID, vendorID, scope, entityID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Entry removed successfully", nil)
}
