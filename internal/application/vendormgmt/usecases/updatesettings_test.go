package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vendordesk-io/vendordesk/internal/application/vendormgmt/dto"
	domainVendor "github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/cache"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/migration"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/repository"
	"github.com/vendordesk-io/vendordesk/internal/shared/db"
	apperrors "github.com/vendordesk-io/vendordesk/internal/shared/errors"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

type settingsFixture struct {
	db             *gorm.DB
	txManager      *db.TransactionManager
	vendorRepo     domainVendor.Repository
	settingsRepo   domainVendor.SettingsRepository
	membershipRepo domainVendor.MembershipRepository
	uc             *UpdateSettingsUseCase
}

func newSettingsFixture(t *testing.T) *settingsFixture {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(migration.AutoMigrateModels()...))

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	txManager := db.NewTransactionManager(gdb)
	vendorRepo := repository.NewVendorRepository(gdb, log)
	settingsRepo := repository.NewVendorSettingsRepository(gdb, log)
	membershipRepo := repository.NewMembershipRepository(gdb, log)

	return &settingsFixture{
		db:             gdb,
		txManager:      txManager,
		vendorRepo:     vendorRepo,
		settingsRepo:   settingsRepo,
		membershipRepo: membershipRepo,
		uc: NewUpdateSettingsUseCase(
			vendorRepo, settingsRepo, membershipRepo, txManager,
			cache.NewNoopSettingsCache(), log,
		),
	}
}

// seedVendor creates a vendor with default settings for adminID.
func (f *settingsFixture) seedVendor(t *testing.T, adminID uint) uint {
	v, err := domainVendor.NewVendor(adminID, domainVendor.TypeFreelancer, "", "", "")
	require.NoError(t, err)
	require.NoError(t, f.vendorRepo.Create(context.Background(), v))
	require.NoError(t, f.settingsRepo.Create(context.Background(), domainVendor.NewSettings(v.ID())))
	return v.ID()
}

func (f *settingsFixture) seedMemberships(t *testing.T, vendorID uint, scope domainVendor.ScopeType, ids []uint) {
	require.NoError(t, f.membershipRepo.Add(context.Background(), vendorID, scope, ids))
}

func (f *settingsFixture) setFlag(t *testing.T, vendorID uint, scope domainVendor.ScopeType, value bool) {
	s, err := f.settingsRepo.FindByVendorID(context.Background(), vendorID)
	require.NoError(t, err)
	patch := domainVendor.SettingsPatch{}
	switch scope {
	case domainVendor.ScopeServices:
		patch.WorksWithAllServices = &value
	case domainVendor.ScopeLanguagePairs:
		patch.WorksWithAllLanguagePairs = &value
	case domainVendor.ScopeSpecializations:
		patch.WorksWithAllSpecializations = &value
	}
	s.ApplyPatch(patch)
	require.NoError(t, f.settingsRepo.Update(context.Background(), s))
}

func (f *settingsFixture) membershipCount(t *testing.T, vendorID uint, scope domainVendor.ScopeType) int {
	entries, err := f.membershipRepo.List(context.Background(), vendorID, scope)
	require.NoError(t, err)
	return len(entries)
}

func boolPtr(b bool) *bool { return &b }

func TestUpdateSettings_CascadeOnEnable(t *testing.T) {
	f := newSettingsFixture(t)
	ctx := context.Background()
	vendorID := f.seedVendor(t, 1)
	f.seedMemberships(t, vendorID, domainVendor.ScopeServices, []uint{1, 2, 3})
	f.seedMemberships(t, vendorID, domainVendor.ScopeLanguagePairs, []uint{4, 5})

	response, err := f.uc.Execute(ctx, 1, vendorID, dto.UpdateSettingsRequest{
		WorksWithAllServices: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, response.WorksWithAllServices)

	// The enabled scope is purged, the untouched scope keeps its rows
	assert.Equal(t, 0, f.membershipCount(t, vendorID, domainVendor.ScopeServices))
	assert.Equal(t, 2, f.membershipCount(t, vendorID, domainVendor.ScopeLanguagePairs))
}

func TestUpdateSettings_NoCascadeTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("true to true keeps rows", func(t *testing.T) {
		f := newSettingsFixture(t)
		vendorID := f.seedVendor(t, 1)
		f.setFlag(t, vendorID, domainVendor.ScopeServices, true)
		f.seedMemberships(t, vendorID, domainVendor.ScopeServices, []uint{1, 2})

		_, err := f.uc.Execute(ctx, 1, vendorID, dto.UpdateSettingsRequest{
			WorksWithAllServices: boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, f.membershipCount(t, vendorID, domainVendor.ScopeServices))
	})

	t.Run("true to false keeps rows", func(t *testing.T) {
		f := newSettingsFixture(t)
		vendorID := f.seedVendor(t, 1)
		f.setFlag(t, vendorID, domainVendor.ScopeLanguagePairs, true)
		f.seedMemberships(t, vendorID, domainVendor.ScopeLanguagePairs, []uint{7})

		response, err := f.uc.Execute(ctx, 1, vendorID, dto.UpdateSettingsRequest{
			WorksWithAllLanguagePairs: boolPtr(false),
		})
		require.NoError(t, err)
		assert.False(t, response.WorksWithAllLanguagePairs)
		assert.Equal(t, 1, f.membershipCount(t, vendorID, domainVendor.ScopeLanguagePairs))
	})

	t.Run("false to false keeps rows", func(t *testing.T) {
		f := newSettingsFixture(t)
		vendorID := f.seedVendor(t, 1)
		f.seedMemberships(t, vendorID, domainVendor.ScopeSpecializations, []uint{9})

		_, err := f.uc.Execute(ctx, 1, vendorID, dto.UpdateSettingsRequest{
			WorksWithAllSpecializations: boolPtr(false),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, f.membershipCount(t, vendorID, domainVendor.ScopeSpecializations))
	})
}

func TestUpdateSettings_PartialPatch(t *testing.T) {
	f := newSettingsFixture(t)
	ctx := context.Background()
	vendorID := f.seedVendor(t, 1)
	f.setFlag(t, vendorID, domainVendor.ScopeLanguagePairs, true)

	response, err := f.uc.Execute(ctx, 1, vendorID, dto.UpdateSettingsRequest{
		WorksWithAllServices: boolPtr(true),
	})
	require.NoError(t, err)

	assert.True(t, response.WorksWithAllServices)
	assert.True(t, response.WorksWithAllLanguagePairs)
	assert.False(t, response.WorksWithAllSpecializations)
}

func TestUpdateSettings_OwnershipAndExistence(t *testing.T) {
	f := newSettingsFixture(t)
	ctx := context.Background()
	vendorID := f.seedVendor(t, 1)

	t.Run("wrong tenant is forbidden", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, 2, vendorID, dto.UpdateSettingsRequest{
			WorksWithAllServices: boolPtr(true),
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
		assert.Contains(t, err.Error(), "This vendor doesn't belong to your admin account")
	})

	t.Run("missing vendor is not found", func(t *testing.T) {
		_, err := f.uc.Execute(ctx, 1, 99999, dto.UpdateSettingsRequest{
			WorksWithAllServices: boolPtr(true),
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "Vendor not found")
	})

	t.Run("missing settings row is not found", func(t *testing.T) {
		v, err := domainVendor.NewVendor(1, domainVendor.TypeFreelancer, "", "", "")
		require.NoError(t, err)
		require.NoError(t, f.vendorRepo.Create(ctx, v))

		_, err = f.uc.Execute(ctx, 1, v.ID(), dto.UpdateSettingsRequest{
			WorksWithAllServices: boolPtr(true),
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
		assert.Contains(t, err.Error(), "No settings for this vendor.")
	})
}

// countingVendorRepo records reads so tests can assert nothing was touched.
type countingVendorRepo struct {
	domainVendor.Repository
	calls int
}

func (r *countingVendorRepo) FindByID(ctx context.Context, id uint) (*domainVendor.Vendor, error) {
	r.calls++
	return r.Repository.FindByID(ctx, id)
}

func TestUpdateSettings_EmptyPatchRejectedBeforeAnyRead(t *testing.T) {
	f := newSettingsFixture(t)
	ctx := context.Background()
	vendorID := f.seedVendor(t, 1)

	counting := &countingVendorRepo{Repository: f.vendorRepo}
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	uc := NewUpdateSettingsUseCase(
		counting, f.settingsRepo, f.membershipRepo, f.txManager,
		cache.NewNoopSettingsCache(), log,
	)

	_, err := uc.Execute(ctx, 1, vendorID, dto.UpdateSettingsRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, 0, counting.calls)
}

// failingMembershipRepo fails the purge to force a mid-transaction error.
type failingMembershipRepo struct {
	domainVendor.MembershipRepository
}

func (r *failingMembershipRepo) DeleteAllForScope(ctx context.Context, vendorID uint, scope domainVendor.ScopeType) error {
	return assert.AnError
}

func TestUpdateSettings_Atomicity(t *testing.T) {
	f := newSettingsFixture(t)
	ctx := context.Background()
	vendorID := f.seedVendor(t, 1)
	f.seedMemberships(t, vendorID, domainVendor.ScopeServices, []uint{1, 2, 3})

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	uc := NewUpdateSettingsUseCase(
		f.vendorRepo, f.settingsRepo, &failingMembershipRepo{f.membershipRepo}, f.txManager,
		cache.NewNoopSettingsCache(), log,
	)

	_, err := uc.Execute(ctx, 1, vendorID, dto.UpdateSettingsRequest{
		WorksWithAllServices: boolPtr(true),
	})
	require.Error(t, err)

	// The failed purge rolled back the flag write as well
	settings, err := f.settingsRepo.FindByVendorID(ctx, vendorID)
	require.NoError(t, err)
	assert.False(t, settings.WorksWithAllServices())
	assert.Equal(t, 3, f.membershipCount(t, vendorID, domainVendor.ScopeServices))
}
