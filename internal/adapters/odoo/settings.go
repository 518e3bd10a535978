package odoo

import (
	"context"
	"encoding/json"

	"dealership-backoffice/internal/adapters/odoo/dto"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

const settingsFields = `
	id website_name company_phone company_email company_address whatsapp_business_number
	customer_support_email copyright_text
	facebook_url instagram_url youtube_url snapchat_url tiktok_url linkedin_url x_url app_store_url play_store_url
	meta_title meta_description meta_keywords
	google_analytics_id google_tag_manager_id tiktok_pixel_id meta_pixel_id snapchat_pixel_id linkedin_pixel_id x_pixel_id
	primary_color secondary_color app_primary_color app_secondary_color
	app_name android_app_version android_min_version ios_app_version ios_min_version force_update
	enable_app_notifications enable_in_app_chat enable_car_comparison enable_app_booking enable_app_reviews
	cars_per_page featured_cars_limit maintenance_mode cache_duration`

type SettingsService interface {
	// GetSettings returns the single settings record, or ErrNotFound.
	GetSettings(ctx context.Context) (model.SystemSettings, error)
	SaveSettings(ctx context.Context, settings model.SystemSettings) (model.SystemSettings, error)
}

type SettingsClient struct {
	requester Requester
	logger    logging.LoggerService
}

func NewSettingsService(requester Requester, logger logging.LoggerService) SettingsService {
	return &SettingsClient{requester: requester, logger: logger}
}

func (c *SettingsClient) GetSettings(ctx context.Context) (model.SystemSettings, error) {
	query := `
query GetSystemSettings {
	AlromaihSystemSettings(limit: 1) {` + settingsFields + `
	}
}`

	var data struct {
		AlromaihSystemSettings json.RawMessage `json:"AlromaihSystemSettings"`
	}
	if err := c.requester.Query(ctx, "load settings", query, nil, &data); err != nil {
		return model.SystemSettings{}, err
	}
	var rec dto.Settings
	if err := decodeOne(data.AlromaihSystemSettings, &rec); err != nil {
		return model.SystemSettings{}, err
	}
	return mapSettings(rec), nil
}

// SaveSettings creates the record when settings.ID is zero.
func (c *SettingsClient) SaveSettings(ctx context.Context, settings model.SystemSettings) (model.SystemSettings, error) {
	vars := map[string]any{"values": settingsValues(settings)}
	op := "create settings"
	mutation := `
mutation CreateSystemSettings($values: AlromaihSystemSettingsValues!) {
	AlromaihSystemSettings(AlromaihSystemSettingsValues: $values) {` + settingsFields + `
	}
}`
	if settings.ID != 0 {
		op = "update settings"
		vars["id"] = idString(settings.ID)
		mutation = `
mutation UpdateSystemSettings($id: String!, $values: AlromaihSystemSettingsValues!) {
	AlromaihSystemSettings(id: $id, AlromaihSystemSettingsValues: $values) {` + settingsFields + `
	}
}`
	}

	var out struct {
		AlromaihSystemSettings json.RawMessage `json:"AlromaihSystemSettings"`
	}
	if err := c.requester.Mutate(ctx, op, mutation, vars, &out); err != nil {
		return model.SystemSettings{}, err
	}
	var rec dto.Settings
	if err := decodeOne(out.AlromaihSystemSettings, &rec); err != nil {
		return model.SystemSettings{}, err
	}
	return mapSettings(rec), nil
}
