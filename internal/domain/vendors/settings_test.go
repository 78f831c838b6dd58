package vendors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func reconstructAllOff(t *testing.T) *Settings {
	t.Helper()
	now := time.Now().UTC()
	return ReconstructSettings(1, 42, false, false, false, now, now)
}

func TestSettings_ApplyPatch_EnableTransitions(t *testing.T) {
	t.Run("false to true reports the scope", func(t *testing.T) {
		s := reconstructAllOff(t)

		enabled := s.ApplyPatch(SettingsPatch{WorksWithAllServices: boolPtr(true)})

		assert.Equal(t, []ScopeType{ScopeServices}, enabled)
		assert.True(t, s.WorksWithAllServices())
		assert.False(t, s.WorksWithAllLanguagePairs())
		assert.False(t, s.WorksWithAllSpecs())
	})

	t.Run("all three flags enabled at once", func(t *testing.T) {
		s := reconstructAllOff(t)

		enabled := s.ApplyPatch(SettingsPatch{
			WorksWithAllServices:        boolPtr(true),
			WorksWithAllLanguagePairs:   boolPtr(true),
			WorksWithAllSpecializations: boolPtr(true),
		})

		assert.ElementsMatch(t,
			[]ScopeType{ScopeServices, ScopeLanguagePairs, ScopeSpecializations},
			enabled)
	})

	t.Run("true to true is not a transition", func(t *testing.T) {
		now := time.Now().UTC()
		s := ReconstructSettings(1, 42, true, false, false, now, now)

		enabled := s.ApplyPatch(SettingsPatch{WorksWithAllServices: boolPtr(true)})

		assert.Empty(t, enabled)
		assert.True(t, s.WorksWithAllServices())
	})

	t.Run("true to false disables without side effect", func(t *testing.T) {
		now := time.Now().UTC()
		s := ReconstructSettings(1, 42, true, true, true, now, now)

		enabled := s.ApplyPatch(SettingsPatch{WorksWithAllLanguagePairs: boolPtr(false)})

		assert.Empty(t, enabled)
		assert.False(t, s.WorksWithAllLanguagePairs())
		assert.True(t, s.WorksWithAllServices())
		assert.True(t, s.WorksWithAllSpecs())
	})

	t.Run("false to false is a no-op", func(t *testing.T) {
		s := reconstructAllOff(t)

		enabled := s.ApplyPatch(SettingsPatch{WorksWithAllSpecializations: boolPtr(false)})

		assert.Empty(t, enabled)
		assert.False(t, s.WorksWithAllSpecs())
	})
}

func TestSettings_ApplyPatch_PartialPatch(t *testing.T) {
	now := time.Now().UTC()
	s := ReconstructSettings(1, 42, false, true, false, now, now)

	enabled := s.ApplyPatch(SettingsPatch{WorksWithAllServices: boolPtr(true)})

	assert.Equal(t, []ScopeType{ScopeServices}, enabled)
	// absent fields keep their prior values
	assert.True(t, s.WorksWithAllLanguagePairs())
	assert.False(t, s.WorksWithAllSpecs())
}

func TestSettingsPatch_IsEmpty(t *testing.T) {
	assert.True(t, SettingsPatch{}.IsEmpty())
	assert.False(t, SettingsPatch{WorksWithAllServices: boolPtr(false)}.IsEmpty())
}

func TestSettings_WorksWithAll(t *testing.T) {
	now := time.Now().UTC()
	s := ReconstructSettings(1, 42, true, false, true, now, now)

	assert.True(t, s.WorksWithAll(ScopeServices))
	assert.False(t, s.WorksWithAll(ScopeLanguagePairs))
	assert.True(t, s.WorksWithAll(ScopeSpecializations))
	assert.False(t, s.WorksWithAll(ScopeType("unknown")))
}

func TestNewSettings_DefaultsToAllowListMode(t *testing.T) {
	s := NewSettings(7)

	assert.Equal(t, uint(7), s.VendorID())
	assert.False(t, s.WorksWithAllServices())
	assert.False(t, s.WorksWithAllLanguagePairs())
	assert.False(t, s.WorksWithAllSpecs())
}
