package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendordesk-io/vendordesk/internal/application/catalog/dto"
	apperrors "github.com/vendordesk-io/vendordesk/internal/shared/errors"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
	"github.com/vendordesk-io/vendordesk/internal/shared/utils"
)

// CatalogService is the application surface the catalog handler depends on.
type CatalogService interface {
	CreateService(ctx context.Context, adminID uint, request dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	ListServices(ctx context.Context, adminID uint) ([]*dto.ServiceResponse, error)
	DeleteService(ctx context.Context, adminID, serviceID uint) error
	CreateLanguagePair(ctx context.Context, adminID uint, request dto.CreateLanguagePairRequest) (*dto.LanguagePairResponse, error)
	ListLanguagePairs(ctx context.Context, adminID uint) ([]*dto.LanguagePairResponse, error)
	DeleteLanguagePair(ctx context.Context, adminID, pairID uint) error
	CreateSpecialization(ctx context.Context, adminID uint, request dto.CreateSpecializationRequest) (*dto.SpecializationResponse, error)
	ListSpecializations(ctx context.Context, adminID uint) ([]*dto.SpecializationResponse, error)
	DeleteSpecialization(ctx context.Context, adminID, specializationID uint) error
}

type CatalogHandler struct {
	service CatalogService
	logger  logger.Interface
}

func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create service", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateService(c.Request.Context(), adminID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Service created successfully")
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListServices(c.Request.Context(), adminID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	serviceID, err := utils.ParseUintParam(c, "id", "service")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteService(c.Request.Context(), adminID, serviceID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Service deleted successfully", nil)
}

func (h *CatalogHandler) CreateLanguagePair(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateLanguagePairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create language pair", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateLanguagePair(c.Request.Context(), adminID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Language pair created successfully")
}

func (h *CatalogHandler) ListLanguagePairs(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListLanguagePairs(c.Request.Context(), adminID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) DeleteLanguagePair(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pairID, err := utils.ParseUintParam(c, "id", "language pair")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteLanguagePair(c.Request.Context(), adminID, pairID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Language pair deleted successfully", nil)
}

func (h *CatalogHandler) CreateSpecialization(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateSpecializationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create specialization", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.CreateSpecialization(c.Request.Context(), adminID, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Specialization created successfully")
}

func (h *CatalogHandler) ListSpecializations(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.ListSpecializations(c.Request.Context(), adminID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CatalogHandler) DeleteSpecialization(c *gin.Context) {
	adminID, err := utils.AdminIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	specializationID, err := utils.ParseUintParam(c, "id", "specialization")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.DeleteSpecialization(c.Request.Context(), adminID, specializationID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Specialization deleted successfully", nil)
}
