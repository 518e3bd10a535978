package usecases

import (
	"context"
	"errors"

	"dealership-backoffice/internal/adapters/odoo"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

// SettingsForm edits the single system settings record. It is created on
// the first save when the backend has none yet.
type SettingsForm struct {
	formState
	settings odoo.SettingsService
	reporter reporter

	data model.SystemSettings
}

func NewSettingsForm(settings odoo.SettingsService, notifier Notifier, logger logging.LoggerService) *SettingsForm {
	f := &SettingsForm{settings: settings, reporter: newReporter(notifier, logger), data: model.DefaultSettings()}
	f.errors = validateSettings(f.data)
	return f
}

func (f *SettingsForm) Data() model.SystemSettings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

// Load reads the record; a missing record keeps the defaults and still succeeds.
func (f *SettingsForm) Load(ctx context.Context) Result[model.SystemSettings] {
	settings, err := f.settings.GetSettings(ctx)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return Result[model.SystemSettings]{Success: true, Data: f.Data(), Message: "Using default settings"}
	case err != nil:
		return Result[model.SystemSettings]{Data: f.Data(), Message: f.reporter.failure("settings", "load", 0, err), Err: err}
	}

	f.mu.Lock()
	f.data = settings
	f.dirty = false
	f.errors = validateSettings(f.data)
	f.mu.Unlock()
	return Result[model.SystemSettings]{Success: true, Data: settings}
}

// UpdateData applies mutate to a copy; the record id cannot be changed.
func (f *SettingsForm) UpdateData(mutate func(*model.SystemSettings)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := f.data
	mutate(&next)
	next.ID = f.data.ID
	f.data = next
	f.dirty = true
	f.errors = validateSettings(f.data)
}

func (f *SettingsForm) IsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errors) == 0
}

func validateSettings(s model.SystemSettings) map[string]string {
	errs := validateStruct(s)
	if s.WebsiteName.IsBlank() {
		errs["website_name"] = "Website name is required"
	}
	return errs
}

func (f *SettingsForm) Save(ctx context.Context) Result[model.SystemSettings] {
	f.mu.Lock()
	f.errors = validateSettings(f.data)
	if len(f.errors) > 0 {
		errs := copyErrors(f.errors)
		f.mu.Unlock()
		f.reporter.failure("settings", "save", 0, &model.ValidationError{Fields: errs})
		return invalidResult(model.SystemSettings{}, errs)
	}
	if err := f.beginSave(); err != nil {
		f.mu.Unlock()
		return busyResult(model.SystemSettings{})
	}
	data := f.data
	f.mu.Unlock()

	saved, err := f.settings.SaveSettings(ctx, data)
	if err != nil {
		f.endSave(false)
		return Result[model.SystemSettings]{Message: f.reporter.failure("settings", "save", data.ID, err), Err: err}
	}

	f.mu.Lock()
	f.data = saved
	f.errors = validateSettings(f.data)
	f.mu.Unlock()
	f.endSave(true)

	f.reporter.success("settings", "save", saved.ID, "Settings saved successfully")
	return Result[model.SystemSettings]{Success: true, Data: saved, Message: "Settings saved successfully"}
}
