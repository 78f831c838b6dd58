package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendordesk-io/vendordesk/internal/application/vendormgmt/dto"
	"github.com/vendordesk-io/vendordesk/internal/interfaces/http/handlers/testutil"
	"github.com/vendordesk-io/vendordesk/internal/shared/errors"
)

// mockVendorService implements VendorService with function fields so each
// test overrides only what it needs.
type mockVendorService struct {
	createFn   func(ctx context.Context, adminID uint, request dto.CreateVendorRequest) (*dto.VendorResponse, error)
	updateFn   func(ctx context.Context, adminID, vendorID uint, request dto.UpdateVendorRequest) (*dto.VendorResponse, error)
	getFn      func(ctx context.Context, adminID, vendorID uint) (*dto.VendorResponse, error)
	listFn     func(ctx context.Context, adminID uint) ([]*dto.VendorResponse, error)
	deleteFn   func(ctx context.Context, adminID, vendorID uint) error
	activateFn func(ctx context.Context, request dto.ActivateVendorRequest) error
}

func (m *mockVendorService) CreateVendor(ctx context.Context, adminID uint, request dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	return m.createFn(ctx, adminID, request)
}

func (m *mockVendorService) UpdateVendor(ctx context.Context, adminID, vendorID uint, request dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	return m.updateFn(ctx, adminID, vendorID, request)
}

func (m *mockVendorService) GetVendor(ctx context.Context, adminID, vendorID uint) (*dto.VendorResponse, error) {
	return m.getFn(ctx, adminID, vendorID)
}

func (m *mockVendorService) ListVendors(ctx context.Context, adminID uint) ([]*dto.VendorResponse, error) {
	return m.listFn(ctx, adminID)
}

func (m *mockVendorService) DeleteVendor(ctx context.Context, adminID, vendorID uint) error {
	return m.deleteFn(ctx, adminID, vendorID)
}

func (m *mockVendorService) ActivateVendor(ctx context.Context, request dto.ActivateVendorRequest) error {
	return m.activateFn(ctx, request)
}

func testVendorResponse() *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:         1,
		Email:      "vendor@example.com",
		VendorType: "freelancer",
	}
}

func TestVendorHandler_CreateVendor_Success(t *testing.T) {
	var gotAdminID uint
	svc := &mockVendorService{
		createFn: func(ctx context.Context, adminID uint, request dto.CreateVendorRequest) (*dto.VendorResponse, error) {
			gotAdminID = adminID
			return testVendorResponse(), nil
		},
	}
	handler := NewVendorHandler(svc)

	reqBody := dto.CreateVendorRequest{
		Email:      "vendor@example.com",
		VendorType: "freelancer",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/vendors", reqBody)
	testutil.SetAuthContext(c, 42)

	handler.CreateVendor(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(42), gotAdminID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestVendorHandler_CreateVendor_MissingEmail(t *testing.T) {
	handler := NewVendorHandler(&mockVendorService{})

	reqBody := map[string]string{"vendor_type": "freelancer"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/vendors", reqBody)
	testutil.SetAuthContext(c, 42)

	handler.CreateVendor(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestVendorHandler_CreateVendor_Unauthenticated(t *testing.T) {
	handler := NewVendorHandler(&mockVendorService{})

	reqBody := dto.CreateVendorRequest{Email: "vendor@example.com", VendorType: "freelancer"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/vendors", reqBody)

	handler.CreateVendor(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVendorHandler_CreateVendor_DuplicateEmail(t *testing.T) {
	svc := &mockVendorService{
		createFn: func(ctx context.Context, adminID uint, request dto.CreateVendorRequest) (*dto.VendorResponse, error) {
			return nil, errors.NewValidationError("email already registered")
		},
	}
	handler := NewVendorHandler(svc)

	reqBody := dto.CreateVendorRequest{Email: "dup@example.com", VendorType: "freelancer"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/vendors", reqBody)
	testutil.SetAuthContext(c, 42)

	handler.CreateVendor(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "email already registered", resp.Error.Message)
}

func TestVendorHandler_GetVendor_Success(t *testing.T) {
	svc := &mockVendorService{
		getFn: func(ctx context.Context, adminID, vendorID uint) (*dto.VendorResponse, error) {
			return testVendorResponse(), nil
		},
	}
	handler := NewVendorHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/vendors/1", nil)
	testutil.SetAuthContext(c, 42)
	testutil.SetURLParam(c, "id", "1")

	handler.GetVendor(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVendorHandler_GetVendor_InvalidID(t *testing.T) {
	handler := NewVendorHandler(&mockVendorService{})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/vendors/abc", nil)
	testutil.SetAuthContext(c, 42)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetVendor(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVendorHandler_GetVendor_NotFound(t *testing.T) {
	svc := &mockVendorService{
		getFn: func(ctx context.Context, adminID, vendorID uint) (*dto.VendorResponse, error) {
			return nil, errors.NewNotFoundError("Vendor not found")
		},
	}
	handler := NewVendorHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/vendors/99", nil)
	testutil.SetAuthContext(c, 42)
	testutil.SetURLParam(c, "id", "99")

	handler.GetVendor(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Vendor not found", resp.Error.Message)
}

func TestVendorHandler_GetVendor_WrongTenant(t *testing.T) {
	svc := &mockVendorService{
		getFn: func(ctx context.Context, adminID, vendorID uint) (*dto.VendorResponse, error) {
			return nil, errors.NewForbiddenError("This vendor doesn't belong to your admin account")
		},
	}
	handler := NewVendorHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/vendors/7", nil)
	testutil.SetAuthContext(c, 42)
	testutil.SetURLParam(c, "id", "7")

	handler.GetVendor(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVendorHandler_ListVendors_Success(t *testing.T) {
	svc := &mockVendorService{
		listFn: func(ctx context.Context, adminID uint) ([]*dto.VendorResponse, error) {
			return []*dto.VendorResponse{testVendorResponse()}, nil
		},
	}
	handler := NewVendorHandler(svc)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/vendors", nil)
	testutil.SetAuthContext(c, 42)

	handler.ListVendors(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVendorHandler_UpdateVendor_Success(t *testing.T) {
	email := "new@example.com"
	svc := &mockVendorService{
		updateFn: func(ctx context.Context, adminID, vendorID uint, request dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
			require.NotNil(t, request.Email)
			assert.Equal(t, email, *request.Email)
			resp := testVendorResponse()
			resp.Email = email
			return resp, nil
		},
	}
	handler := NewVendorHandler(svc)

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/vendors/1", dto.UpdateVendorRequest{Email: &email})
	testutil.SetAuthContext(c, 42)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateVendor(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVendorHandler_DeleteVendor_Success(t *testing.T) {
	var gotVendorID uint
	svc := &mockVendorService{
		deleteFn: func(ctx context.Context, adminID, vendorID uint) error {
			gotVendorID = vendorID
			return nil
		},
	}
	handler := NewVendorHandler(svc)

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/vendors/5", nil)
	testutil.SetAuthContext(c, 42)
	testutil.SetURLParam(c, "id", "5")

	handler.DeleteVendor(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), gotVendorID)
}

func TestVendorHandler_ActivateVendor_Success(t *testing.T) {
	svc := &mockVendorService{
		activateFn: func(ctx context.Context, request dto.ActivateVendorRequest) error {
			assert.Equal(t, "act_token123", request.Token)
			return nil
		},
	}
	handler := NewVendorHandler(svc)

	reqBody := dto.ActivateVendorRequest{Token: "act_token123", Password: "supersecret"}
	c, w := testutil.NewTestContext(http.MethodPost, "/portal/activate", reqBody)

	handler.ActivateVendor(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVendorHandler_ActivateVendor_ShortPassword(t *testing.T) {
	handler := NewVendorHandler(&mockVendorService{})

	reqBody := dto.ActivateVendorRequest{Token: "act_token123", Password: "short"}
	c, w := testutil.NewTestContext(http.MethodPost, "/portal/activate", reqBody)

	handler.ActivateVendor(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVendorHandler_ActivateVendor_UnknownToken(t *testing.T) {
	svc := &mockVendorService{
		activateFn: func(ctx context.Context, request dto.ActivateVendorRequest) error {
			return errors.NewNotFoundError("Invalid or expired activation token")
		},
	}
	handler := NewVendorHandler(svc)

	reqBody := dto.ActivateVendorRequest{Token: "act_bogus", Password: "supersecret"}
	c, w := testutil.NewTestContext(http.MethodPost, "/portal/activate", reqBody)

	handler.ActivateVendor(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
