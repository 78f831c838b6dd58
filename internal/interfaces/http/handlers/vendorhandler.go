package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendordesk-io/vendordesk/internal/application/vendormgmt/dto"
	apperrors "github.com/vendordesk-io/vendordesk/internal/shared/errors"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
	"github.com/vendordesk-io/vendordesk/internal/shared/utils"
)

// VendorService is the application surface the vendor handler depends on.
type VendorService interface {
	CreateVendor(ctx context.Context, adminID uint, request dto.CreateVendorRequest) (*dto.VendorResponse, error)
	UpdateVendor(ctx context.Context, adminID, vendorID uint, request dto.UpdateVendorRequest) (*dto.VendorResponse, error)
	GetVendor(ctx context.Context, adminID, vendorID uint) (*dto.VendorResponse, error)
	ListVendors(ctx context.Context, adminID uint) ([]*dto.VendorResponse, error)
	DeleteVendor(ctx context.Context, adminID, vendorID uint) error
	ActivateVendor(ctx context.Context, request dto.ActivateVendorRequest) error
}

type VendorHandler struct {
	service VendorService
	logger  logger.Interface
}

func NewVendorHandler(service VendorService) *VendorHandler {
	return &VendorHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

func (h *VendorHandler) CreateVendor(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create vendor",
			"admin_id", adminID,
			"error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateVendor(c.Request.Context(), adminID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Vendor created successfully")
}

func (h *VendorHandler) UpdateVendor(c *gin.Context) {
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

	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update vendor",
			"vendor_id", vendorID,
			"error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.UpdateVendor(c.Request.Context(), adminID, vendorID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vendor updated successfully", result)
}

func (h *VendorHandler) GetVendor(c *gin.Context) {
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

	result, err := h.service.GetVendor(c.Request.Context(), adminID, vendorID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *VendorHandler) ListVendors(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListVendors(c.Request.Context(), adminID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *VendorHandler) DeleteVendor(c *gin.Context) {
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

	if err := h.service.DeleteVendor(c.Request.Context(), adminID, vendorID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vendor deleted successfully", nil)
}

// ActivateVendor is the public endpoint vendors hit from the activation
// email. It runs outside the admin auth middleware.
func (h *VendorHandler) ActivateVendor(c *gin.Context) {
	var req dto.ActivateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for vendor activation", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.ActivateVendor(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Account activated successfully", nil)
}
