package usecases

import (
	"context"
	"testing"

	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsFormMessages(t *testing.T) {
	f := NewSettingsForm(&fakeSettings{}, nil, logging.Nop{})
	assert.Equal(t, "Company email is required", f.Errors()["company_email"])

	f.UpdateData(func(s *model.SystemSettings) {
		s.WebsiteName = model.PlainText("")
		s.CompanyEmail = "sales-at-example"
		s.FacebookURL = "facebook"
		s.PrimaryColor = "blue"
		s.CarsPerPage = 0
	})

	errs := f.Errors()
	assert.Equal(t, "Website name is required", errs["website_name"])
	assert.Equal(t, "Company email format is invalid", errs["company_email"])
	assert.Equal(t, "Facebook URL must be a valid URL", errs["facebook_url"])
	assert.Equal(t, "Primary color must be a hex color", errs["primary_color"])
	assert.Equal(t, "Cars per page must be at least 1", errs["cars_per_page"])
	assert.False(t, f.IsValid())
	assert.True(t, f.IsDirty())
}

func TestSettingsLoadFallsBackToDefaults(t *testing.T) {
	svc := &fakeSettings{}
	f := NewSettingsForm(svc, nil, logging.Nop{})

	res := f.Load(context.Background())

	require.True(t, res.Success)
	assert.Equal(t, "Using default settings", res.Message)
	assert.Equal(t, model.DefaultSettings().PrimaryColor, res.Data.PrimaryColor)
	assert.Zero(t, f.Data().ID)
}

func TestSettingsLoadFailureNotifies(t *testing.T) {
	notes := &recordingNotifier{}
	f := NewSettingsForm(&fakeSettings{err: errBackend}, notes, logging.Nop{})

	res := f.Load(context.Background())

	assert.False(t, res.Success)
	assert.Equal(t, "Failed to load settings", res.Message)
}

func TestSettingsSaveCreatesThenUpdates(t *testing.T) {
	svc := &fakeSettings{}
	notes := &recordingNotifier{}
	f := NewSettingsForm(svc, notes, logging.Nop{})
	f.UpdateData(func(s *model.SystemSettings) { s.CompanyEmail = "info@example.com" })
	require.True(t, f.IsValid())

	res := f.Save(context.Background())
	require.True(t, res.Success)
	assert.Equal(t, "Settings saved successfully", res.Message)
	assert.Zero(t, svc.saved[0].ID)
	assert.Equal(t, int64(1), f.Data().ID)

	f.UpdateData(func(s *model.SystemSettings) {
		s.ID = 99
		s.MaintenanceMode = true
	})
	assert.Equal(t, int64(1), f.Data().ID)

	res = f.Save(context.Background())
	require.True(t, res.Success)
	require.Len(t, svc.saved, 2)
	assert.Equal(t, int64(1), svc.saved[1].ID)
	assert.True(t, svc.saved[1].MaintenanceMode)
	assert.False(t, f.IsDirty())
	assert.Equal(t, model.LevelSuccess, notes.last().Level)
}

func TestSettingsSaveInvalid(t *testing.T) {
	svc := &fakeSettings{}
	f := NewSettingsForm(svc, nil, logging.Nop{})

	res := f.Save(context.Background())

	assert.False(t, res.Success)
	assert.Equal(t, fixValidationMessage, res.Message)
	assert.Contains(t, res.Errors, "company_email")
	assert.Empty(t, svc.saved)
}
