package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vendordesk-io/vendordesk/internal/domain/catalog"
	"github.com/vendordesk-io/vendordesk/internal/domain/vendors"
	"github.com/vendordesk-io/vendordesk/internal/infrastructure/persistence/models"
	"github.com/vendordesk-io/vendordesk/internal/shared/db"
	"github.com/vendordesk-io/vendordesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.VendorModel{},
		&models.VendorSettingsModel{},
		&models.VendorServiceModel{},
		&models.VendorLanguagePairModel{},
		&models.VendorSpecializationModel{},
		&models.CredentialModel{},
		&models.PrimaryContactModel{},
		&models.ServiceModel{},
		&models.LanguagePairModel{},
		&models.SpecializationModel{},
	)
	require.NoError(t, err)

	return gdb
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func createTestVendor(t *testing.T, adminID uint) *vendors.Vendor {
	v, err := vendors.NewVendor(adminID, vendors.TypeFreelancer, "", "", "DE")
	require.NoError(t, err)
	return v
}

func TestVendorRepository_CRUD(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewVendorRepository(gdb, testLogger())
	ctx := context.Background()

	t.Run("create assigns id", func(t *testing.T) {
		v := createTestVendor(t, 1)
		err := repo.Create(ctx, v)
		assert.NoError(t, err)
		assert.NotZero(t, v.ID())
	})

	t.Run("find existing vendor", func(t *testing.T) {
		v := createTestVendor(t, 1)
		require.NoError(t, repo.Create(ctx, v))

		found, err := repo.FindByID(ctx, v.ID())
		assert.NoError(t, err)
		assert.Equal(t, v.ID(), found.ID())
		assert.Equal(t, vendors.TypeFreelancer, found.VendorType())
		assert.Equal(t, "DE", found.Country())
	})

	t.Run("find non-existent vendor", func(t *testing.T) {
		found, err := repo.FindByID(ctx, 99999)
		assert.ErrorIs(t, err, vendors.ErrVendorNotFound)
		assert.Nil(t, found)
	})

	t.Run("list is scoped to the admin", func(t *testing.T) {
		gdb := setupTestDB(t)
		repo := NewVendorRepository(gdb, testLogger())

		require.NoError(t, repo.Create(ctx, createTestVendor(t, 10)))
		require.NoError(t, repo.Create(ctx, createTestVendor(t, 10)))
		require.NoError(t, repo.Create(ctx, createTestVendor(t, 20)))

		mine, err := repo.ListByAdmin(ctx, 10)
		assert.NoError(t, err)
		assert.Len(t, mine, 2)

		theirs, err := repo.ListByAdmin(ctx, 20)
		assert.NoError(t, err)
		assert.Len(t, theirs, 1)
	})

	t.Run("update persists flags flipped to false", func(t *testing.T) {
		v := createTestVendor(t, 1)
		require.NoError(t, repo.Create(ctx, v))

		canLogin := true
		require.NoError(t, v.ApplyPatch(vendors.Patch{CanLogin: &canLogin}))
		require.NoError(t, repo.Update(ctx, v))

		canLogin = false
		require.NoError(t, v.ApplyPatch(vendors.Patch{CanLogin: &canLogin}))
		require.NoError(t, repo.Update(ctx, v))

		found, err := repo.FindByID(ctx, v.ID())
		assert.NoError(t, err)
		assert.False(t, found.CanLogin())
	})

	t.Run("delete existing vendor", func(t *testing.T) {
		v := createTestVendor(t, 1)
		require.NoError(t, repo.Create(ctx, v))

		err := repo.Delete(ctx, v.ID())
		assert.NoError(t, err)

		_, err = repo.FindByID(ctx, v.ID())
		assert.ErrorIs(t, err, vendors.ErrVendorNotFound)
	})

	t.Run("delete non-existent vendor", func(t *testing.T) {
		err := repo.Delete(ctx, 99999)
		assert.ErrorIs(t, err, vendors.ErrVendorNotFound)
	})
}

func TestVendorSettingsRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewVendorSettingsRepository(gdb, testLogger())
	ctx := context.Background()

	boolPtr := func(b bool) *bool { return &b }

	t.Run("new settings default to allow-list mode", func(t *testing.T) {
		s := vendors.NewSettings(1)
		require.NoError(t, repo.Create(ctx, s))
		assert.NotZero(t, s.ID())

		found, err := repo.FindByVendorID(ctx, 1)
		assert.NoError(t, err)
		assert.False(t, found.WorksWithAllServices())
		assert.False(t, found.WorksWithAllLanguagePairs())
		assert.False(t, found.WorksWithAllSpecs())
	})

	t.Run("missing row maps to domain sentinel", func(t *testing.T) {
		_, err := repo.FindByVendorID(ctx, 99999)
		assert.ErrorIs(t, err, vendors.ErrSettingsNotFound)

		_, err = repo.FindByVendorIDForUpdate(ctx, 99999)
		assert.ErrorIs(t, err, vendors.ErrSettingsNotFound)
	})

	t.Run("update persists flags flipped back to false", func(t *testing.T) {
		s := vendors.NewSettings(2)
		require.NoError(t, repo.Create(ctx, s))

		s.ApplyPatch(vendors.SettingsPatch{WorksWithAllServices: boolPtr(true)})
		require.NoError(t, repo.Update(ctx, s))

		s.ApplyPatch(vendors.SettingsPatch{WorksWithAllServices: boolPtr(false)})
		require.NoError(t, repo.Update(ctx, s))

		found, err := repo.FindByVendorID(ctx, 2)
		assert.NoError(t, err)
		assert.False(t, found.WorksWithAllServices())
	})

	t.Run("one settings row per vendor", func(t *testing.T) {
		s := vendors.NewSettings(3)
		require.NoError(t, repo.Create(ctx, s))

		dup := vendors.NewSettings(3)
		err := repo.Create(ctx, dup)
		assert.Error(t, err)
	})

	t.Run("delete by vendor id", func(t *testing.T) {
		s := vendors.NewSettings(4)
		require.NoError(t, repo.Create(ctx, s))

		require.NoError(t, repo.DeleteByVendorID(ctx, 4))

		_, err := repo.FindByVendorID(ctx, 4)
		assert.ErrorIs(t, err, vendors.ErrSettingsNotFound)
	})
}

func TestMembershipRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMembershipRepository(gdb, testLogger())
	ctx := context.Background()

	t.Run("add and list per scope", func(t *testing.T) {
		err := repo.Add(ctx, 1, vendors.ScopeServices, []uint{3, 1, 2})
		assert.NoError(t, err)

		entries, err := repo.List(ctx, 1, vendors.ScopeServices)
		assert.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, uint(1), entries[0].EntityID)
		assert.Equal(t, uint(3), entries[2].EntityID)

		other, err := repo.List(ctx, 1, vendors.ScopeLanguagePairs)
		assert.NoError(t, err)
		assert.Len(t, other, 0)
	})

	t.Run("add is idempotent", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, 2, vendors.ScopeLanguagePairs, []uint{7}))
		require.NoError(t, repo.Add(ctx, 2, vendors.ScopeLanguagePairs, []uint{7, 8}))

		entries, err := repo.List(ctx, 2, vendors.ScopeLanguagePairs)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("add with no ids is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.Add(ctx, 3, vendors.ScopeServices, nil))
	})

	t.Run("remove existing entry", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, 4, vendors.ScopeSpecializations, []uint{5}))

		err := repo.Remove(ctx, 4, vendors.ScopeSpecializations, 5)
		assert.NoError(t, err)

		entries, err := repo.List(ctx, 4, vendors.ScopeSpecializations)
		assert.NoError(t, err)
		assert.Len(t, entries, 0)
	})

	t.Run("remove missing entry maps to sentinel", func(t *testing.T) {
		err := repo.Remove(ctx, 4, vendors.ScopeSpecializations, 99)
		assert.ErrorIs(t, err, vendors.ErrMembershipEntryNotFound)
	})

	t.Run("purge one scope leaves the others", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, 5, vendors.ScopeServices, []uint{1, 2}))
		require.NoError(t, repo.Add(ctx, 5, vendors.ScopeLanguagePairs, []uint{1}))

		require.NoError(t, repo.DeleteAllForScope(ctx, 5, vendors.ScopeServices))

		services, err := repo.List(ctx, 5, vendors.ScopeServices)
		assert.NoError(t, err)
		assert.Len(t, services, 0)

		pairs, err := repo.List(ctx, 5, vendors.ScopeLanguagePairs)
		assert.NoError(t, err)
		assert.Len(t, pairs, 1)
	})

	t.Run("purge scope is vendor scoped", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, 6, vendors.ScopeServices, []uint{1}))
		require.NoError(t, repo.Add(ctx, 7, vendors.ScopeServices, []uint{1}))

		require.NoError(t, repo.DeleteAllForScope(ctx, 6, vendors.ScopeServices))

		entries, err := repo.List(ctx, 7, vendors.ScopeServices)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("delete all for vendor clears every scope", func(t *testing.T) {
		require.NoError(t, repo.Add(ctx, 8, vendors.ScopeServices, []uint{1}))
		require.NoError(t, repo.Add(ctx, 8, vendors.ScopeLanguagePairs, []uint{2}))
		require.NoError(t, repo.Add(ctx, 8, vendors.ScopeSpecializations, []uint{3}))

		require.NoError(t, repo.DeleteAllForVendor(ctx, 8))

		for _, scope := range vendors.AllScopes() {
			entries, err := repo.List(ctx, 8, scope)
			assert.NoError(t, err)
			assert.Len(t, entries, 0)
		}
	})
}

func TestCredentialRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCredentialRepository(gdb, testLogger())
	ctx := context.Background()

	t.Run("create and find by id", func(t *testing.T) {
		c, err := vendors.NewCredential("Alice@Example.com")
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, c))
		assert.NotZero(t, c.ID())

		found, err := repo.FindByID(ctx, c.ID())
		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", found.Email())
	})

	t.Run("duplicate email maps to sentinel", func(t *testing.T) {
		c1, err := vendors.NewCredential("dup@example.com")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, c1))

		c2, err := vendors.NewCredential("dup@example.com")
		require.NoError(t, err)
		err = repo.Create(ctx, c2)
		assert.ErrorIs(t, err, vendors.ErrDuplicateEmail)
	})

	t.Run("find by activation token", func(t *testing.T) {
		c, err := vendors.NewCredential("token@example.com")
		require.NoError(t, err)
		c.IssueActivationToken("act_testtoken123")
		require.NoError(t, repo.Create(ctx, c))

		found, err := repo.FindByActivationToken(ctx, "act_testtoken123")
		assert.NoError(t, err)
		assert.Equal(t, c.ID(), found.ID())

		_, err = repo.FindByActivationToken(ctx, "act_unknown")
		assert.ErrorIs(t, err, vendors.ErrCredentialNotFound)
	})

	t.Run("activation clears the token", func(t *testing.T) {
		c, err := vendors.NewCredential("activate@example.com")
		require.NoError(t, err)
		c.IssueActivationToken("act_pending456")
		require.NoError(t, repo.Create(ctx, c))

		require.NoError(t, c.Activate("hashed-password"))
		require.NoError(t, repo.Update(ctx, c))

		_, err = repo.FindByActivationToken(ctx, "act_pending456")
		assert.ErrorIs(t, err, vendors.ErrCredentialNotFound)

		found, err := repo.FindByID(ctx, c.ID())
		assert.NoError(t, err)
		assert.NotNil(t, found.ActivatedAt())
		assert.Equal(t, "hashed-password", found.PasswordHash())
	})
}

func TestContactRepository(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewContactRepository(gdb, testLogger())
	ctx := context.Background()

	t.Run("create and find by vendor id", func(t *testing.T) {
		p := vendors.NewPrimaryContact(1, "Jane", "Doe", "jane@example.com", "+49123")
		require.NoError(t, repo.Create(ctx, p))
		assert.NotZero(t, p.ID())

		found, err := repo.FindByVendorID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Jane", found.FirstName())
	})

	t.Run("missing contact maps to sentinel", func(t *testing.T) {
		_, err := repo.FindByVendorID(ctx, 99999)
		assert.ErrorIs(t, err, vendors.ErrContactNotFound)
	})

	t.Run("update contact fields", func(t *testing.T) {
		p := vendors.NewPrimaryContact(2, "John", "Smith", "john@example.com", "")
		require.NoError(t, repo.Create(ctx, p))

		phone := "+3412345"
		p.ApplyPatch(vendors.ContactPatch{Phone: &phone})
		require.NoError(t, repo.Update(ctx, p))

		found, err := repo.FindByVendorID(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, phone, found.Phone())
	})

	t.Run("delete by vendor id", func(t *testing.T) {
		p := vendors.NewPrimaryContact(3, "Ann", "Lee", "ann@example.com", "")
		require.NoError(t, repo.Create(ctx, p))

		require.NoError(t, repo.DeleteByVendorID(ctx, 3))

		_, err := repo.FindByVendorID(ctx, 3)
		assert.ErrorIs(t, err, vendors.ErrContactNotFound)
	})
}

func TestCatalogRepositories(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	t.Run("services are unique per admin", func(t *testing.T) {
		repo := NewServiceRepository(gdb, testLogger())

		s1, err := catalog.NewService(1, "Translation")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, s1))

		dup, err := catalog.NewService(1, "Translation")
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		assert.ErrorIs(t, err, catalog.ErrDuplicateService)

		otherAdmin, err := catalog.NewService(2, "Translation")
		require.NoError(t, err)
		assert.NoError(t, repo.Create(ctx, otherAdmin))
	})

	t.Run("language pairs are unique per admin", func(t *testing.T) {
		repo := NewLanguagePairRepository(gdb, testLogger())

		p1, err := catalog.NewLanguagePair(1, "EN", "de")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, p1))
		assert.Equal(t, "en", p1.Source())
		assert.Equal(t, "de", p1.Target())

		dup, err := catalog.NewLanguagePair(1, "en", "DE")
		require.NoError(t, err)
		err = repo.Create(ctx, dup)
		assert.ErrorIs(t, err, catalog.ErrDuplicateLanguagePair)
	})

	t.Run("list is scoped to the admin", func(t *testing.T) {
		repo := NewSpecializationRepository(gdb, testLogger())

		s1, err := catalog.NewSpecialization(1, "Legal")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, s1))

		s2, err := catalog.NewSpecialization(1, "Medical")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, s2))

		s3, err := catalog.NewSpecialization(2, "Legal")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, s3))

		mine, err := repo.ListByAdmin(ctx, 1)
		assert.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, "Legal", mine[0].Title())
		assert.Equal(t, "Medical", mine[1].Title())
	})

	t.Run("delete non-existent entry maps to sentinel", func(t *testing.T) {
		repo := NewServiceRepository(gdb, testLogger())
		err := repo.Delete(ctx, 99999)
		assert.ErrorIs(t, err, catalog.ErrServiceNotFound)
	})
}

func TestTransactionRollback(t *testing.T) {
	gdb := setupTestDB(t)
	log := testLogger()
	txManager := db.NewTransactionManager(gdb)
	settingsRepo := NewVendorSettingsRepository(gdb, log)
	membershipRepo := NewMembershipRepository(gdb, log)
	ctx := context.Background()

	boolPtr := func(b bool) *bool { return &b }

	s := vendors.NewSettings(1)
	require.NoError(t, settingsRepo.Create(ctx, s))
	require.NoError(t, membershipRepo.Add(ctx, 1, vendors.ScopeServices, []uint{1, 2, 3}))

	t.Run("rollback leaves flags and allow-list untouched", func(t *testing.T) {
		err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			locked, err := settingsRepo.FindByVendorIDForUpdate(txCtx, 1)
			if err != nil {
				return err
			}

			locked.ApplyPatch(vendors.SettingsPatch{WorksWithAllServices: boolPtr(true)})
			if err := settingsRepo.Update(txCtx, locked); err != nil {
				return err
			}
			if err := membershipRepo.DeleteAllForScope(txCtx, 1, vendors.ScopeServices); err != nil {
				return err
			}

			return assert.AnError
		})
		assert.Error(t, err)

		found, err := settingsRepo.FindByVendorID(ctx, 1)
		assert.NoError(t, err)
		assert.False(t, found.WorksWithAllServices())

		entries, err := membershipRepo.List(ctx, 1, vendors.ScopeServices)
		assert.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("commit applies flag flip and purge together", func(t *testing.T) {
		err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
			locked, err := settingsRepo.FindByVendorIDForUpdate(txCtx, 1)
			if err != nil {
				return err
			}

			locked.ApplyPatch(vendors.SettingsPatch{WorksWithAllServices: boolPtr(true)})
			if err := settingsRepo.Update(txCtx, locked); err != nil {
				return err
			}
			return membershipRepo.DeleteAllForScope(txCtx, 1, vendors.ScopeServices)
		})
		assert.NoError(t, err)

		found, err := settingsRepo.FindByVendorID(ctx, 1)
		assert.NoError(t, err)
		assert.True(t, found.WorksWithAllServices())

		entries, err := membershipRepo.List(ctx, 1, vendors.ScopeServices)
		assert.NoError(t, err)
		assert.Len(t, entries, 0)
	})
}
