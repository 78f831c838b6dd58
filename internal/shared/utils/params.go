package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vendordesk-io/vendordesk/internal/shared/errors"
)

// ParseUintParam parses a positive integer from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "entry_id").
// entityName is used in error messages (e.g., "vendor", "service").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid %s ID, expected a positive integer", entityName),
		)
	}

	return uint(parsed), nil
}

// AdminIDFromContext extracts the authenticated admin id attached by the
// auth middleware. All tenant-scoped operations receive this explicitly.
func AdminIDFromContext(c *gin.Context) (uint, error) {
	value, exists := c.Get("admin_id")
	if !exists {
		return 0, errors.NewUnauthorizedError("Admin not authenticated")
	}

	adminID, ok := value.(uint)
	if !ok || adminID == 0 {
		return 0, errors.NewInternalError("Internal error")
	}

	return adminID, nil
}
