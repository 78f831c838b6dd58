package routes

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendordesk-io/vendordesk/internal/application/vendormgmt/dto"
	domainVendor "github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/auth"
	"github.com/vendordesk-io/vendordesk/internal/interfaces/http/handlers"
	"github.com/vendordesk-io/vendordesk/internal/interfaces/http/middleware"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

type stubVendorService struct{}

func (s *stubVendorService) CreateVendor(ctx context.Context, adminID uint, request dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	return &dto.VendorResponse{ID: 1}, nil
}

func (s *stubVendorService) UpdateVendor(ctx context.Context, adminID, vendorID uint, request dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	return &dto.VendorResponse{ID: vendorID}, nil
}

func (s *stubVendorService) GetVendor(ctx context.Context, adminID, vendorID uint) (*dto.VendorResponse, error) {
	return &dto.VendorResponse{ID: vendorID}, nil
}

func (s *stubVendorService) ListVendors(ctx context.Context, adminID uint) ([]*dto.VendorResponse, error) {
	return nil, nil
}

func (s *stubVendorService) DeleteVendor(ctx context.Context, adminID, vendorID uint) error {
	return nil
}

func (s *stubVendorService) ActivateVendor(ctx context.Context, request dto.ActivateVendorRequest) error {
	return nil
}

type stubSettingsService struct{}

func (s *stubSettingsService) GetSettings(ctx context.Context, adminID, vendorID uint) (*dto.SettingsResponse, error) {
	return &dto.SettingsResponse{VendorID: vendorID}, nil
}

func (s *stubSettingsService) UpdateSettings(ctx context.Context, adminID, vendorID uint, request dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	return &dto.SettingsResponse{VendorID: vendorID}, nil
}

func (s *stubSettingsService) AddMembership(ctx context.Context, adminID, vendorID uint, scope domainVendor.ScopeType, request dto.AddMembershipRequest) error {
	return nil
}

func (s *stubSettingsService) ListMembership(ctx context.Context, adminID, vendorID uint, scope domainVendor.ScopeType) ([]dto.MembershipEntryResponse, error) {
	return nil, nil
}

func (s *stubSettingsService) RemoveMembership(ctx context.Context, adminID, vendorID uint, scope domainVendor.ScopeType, entityID uint) error {
	return nil
}

func setupTestEngine(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService("test-secret", 15)
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))

	engine := gin.New()
	SetupVendorRoutes(engine, &VendorRouteConfig{
		VendorHandler:   handlers.NewVendorHandler(&stubVendorService{}),
		SettingsHandler: handlers.NewVendorSettingsHandler(&stubSettingsService{}),
		AuthMiddleware:  middleware.NewAuthMiddleware(jwtService, log),
	})

	token, err := jwtService.Generate(42)
	require.NoError(t, err)

	return engine, token
}

func TestVendorUpdateRoutes_PutAndPatch(t *testing.T) {
	engine, token := setupTestEngine(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"patch vendor", http.MethodPatch, "/api/vendors/1", `{"company_name":"Acme"}`},
		{"put vendor", http.MethodPut, "/api/vendors/1", `{"company_name":"Acme"}`},
		{"patch settings", http.MethodPatch, "/api/vendors/1/settings", `{"works_with_all_services":true}`},
		{"put settings", http.MethodPut, "/api/vendors/1/settings", `{"works_with_all_services":true}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			engine.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestVendorRoutes_RequireAuth(t *testing.T) {
	engine, _ := setupTestEngine(t)

	req := httptest.NewRequest(http.MethodPut, "/api/vendors/1", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
