package vendors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVendor(t *testing.T) {
	t.Run("creates freelancer vendor", func(t *testing.T) {
		v, err := NewVendor(1, TypeFreelancer, "", "", "DE")
		require.NoError(t, err)
		assert.Equal(t, uint(1), v.AdminID())
		assert.Equal(t, TypeFreelancer, v.VendorType())
		assert.False(t, v.CanLogin())
	})

	t.Run("company requires company name", func(t *testing.T) {
		_, err := NewVendor(1, TypeCompany, "", "", "DE")
		assert.Error(t, err)
	})

	t.Run("rejects missing admin", func(t *testing.T) {
		_, err := NewVendor(0, TypeFreelancer, "", "", "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewVendor(1, Type("agency"), "", "", "")
		assert.Error(t, err)
	})
}

func TestVendor_OwnedBy(t *testing.T) {
	v, err := NewVendor(3, TypeFreelancer, "", "", "")
	require.NoError(t, err)

	assert.True(t, v.OwnedBy(3))
	assert.False(t, v.OwnedBy(4))
}

func TestVendor_ApplyPatch(t *testing.T) {
	v, err := NewVendor(1, TypeFreelancer, "", "", "DE")
	require.NoError(t, err)

	name := "Acme Translations"
	companyType := TypeCompany
	canLogin := true
	err = v.ApplyPatch(Patch{
		VendorType:  &companyType,
		CompanyName: &name,
		CanLogin:    &canLogin,
	})
	require.NoError(t, err)

	assert.Equal(t, TypeCompany, v.VendorType())
	assert.Equal(t, "Acme Translations", v.CompanyName())
	assert.True(t, v.CanLogin())
	// untouched fields keep their values
	assert.Equal(t, "DE", v.Country())
}

func TestVendor_ApplyPatch_EmptyPatchLeavesTimestamp(t *testing.T) {
	v, err := NewVendor(1, TypeFreelancer, "", "", "DE")
	require.NoError(t, err)
	before := v.UpdatedAt()

	require.NoError(t, v.ApplyPatch(Patch{}))
	assert.Equal(t, before, v.UpdatedAt())

	country := "FR"
	require.NoError(t, v.ApplyPatch(Patch{Country: &country}))
	assert.False(t, v.UpdatedAt().Before(before))
}

func TestVendor_ApplyPatch_RejectsInvalidType(t *testing.T) {
	v, err := NewVendor(1, TypeFreelancer, "", "", "")
	require.NoError(t, err)

	bad := Type("collective")
	assert.Error(t, v.ApplyPatch(Patch{VendorType: &bad}))
}

func TestCredential_Lifecycle(t *testing.T) {
	c, err := NewCredential("  Vendor@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "vendor@example.com", c.Email())

	c.IssueActivationToken("act_abc123")
	assert.Equal(t, "act_abc123", c.ActivationToken())
	assert.Nil(t, c.ActivatedAt())

	require.NoError(t, c.Activate("$2a$12$hash"))
	assert.Empty(t, c.ActivationToken())
	assert.NotNil(t, c.ActivatedAt())

	// second activation has no pending token
	assert.Error(t, c.Activate("$2a$12$other"))
}
