package model

type SystemSettings struct {
	ID                     int64         `json:"id"`
	WebsiteName            LocalizedText `json:"website_name"`
	CompanyPhone           string        `json:"company_phone"`
	CompanyEmail           string        `json:"company_email" validate:"required,email"`
	CompanyAddress         LocalizedText `json:"company_address"`
	WhatsappBusinessNumber string        `json:"whatsapp_business_number"`
	CustomerSupportEmail   string        `json:"customer_support_email" validate:"omitempty,email"`
	CopyrightText          LocalizedText `json:"copyright_text"`

	FacebookURL  string `json:"facebook_url" validate:"omitempty,http_url"`
	InstagramURL string `json:"instagram_url" validate:"omitempty,http_url"`
	YoutubeURL   string `json:"youtube_url" validate:"omitempty,http_url"`
	SnapchatURL  string `json:"snapchat_url" validate:"omitempty,http_url"`
	TiktokURL    string `json:"tiktok_url" validate:"omitempty,http_url"`
	LinkedinURL  string `json:"linkedin_url" validate:"omitempty,http_url"`
	XURL         string `json:"x_url" validate:"omitempty,http_url"`
	AppStoreURL  string `json:"app_store_url" validate:"omitempty,http_url"`
	PlayStoreURL string `json:"play_store_url" validate:"omitempty,http_url"`

	MetaTitle       LocalizedText `json:"meta_title"`
	MetaDescription LocalizedText `json:"meta_description"`
	MetaKeywords    LocalizedText `json:"meta_keywords"`

	GoogleAnalyticsID  string `json:"google_analytics_id"`
	GoogleTagManagerID string `json:"google_tag_manager_id"`
	TiktokPixelID      string `json:"tiktok_pixel_id"`
	MetaPixelID        string `json:"meta_pixel_id"`
	SnapchatPixelID    string `json:"snapchat_pixel_id"`
	LinkedinPixelID    string `json:"linkedin_pixel_id"`
	XPixelID           string `json:"x_pixel_id"`

	PrimaryColor      string `json:"primary_color" validate:"required,hexcolor"`
	SecondaryColor    string `json:"secondary_color" validate:"omitempty,hexcolor"`
	AppPrimaryColor   string `json:"app_primary_color" validate:"omitempty,hexcolor"`
	AppSecondaryColor string `json:"app_secondary_color" validate:"omitempty,hexcolor"`

	AppName                LocalizedText `json:"app_name"`
	AndroidAppVersion      string        `json:"android_app_version"`
	AndroidMinVersion      string        `json:"android_min_version"`
	IOSAppVersion          string        `json:"ios_app_version"`
	IOSMinVersion          string        `json:"ios_min_version"`
	ForceUpdate            bool          `json:"force_update"`
	EnableAppNotifications bool          `json:"enable_app_notifications"`
	EnableInAppChat        bool          `json:"enable_in_app_chat"`
	EnableCarComparison    bool          `json:"enable_car_comparison"`
	EnableAppBooking       bool          `json:"enable_app_booking"`
	EnableAppReviews       bool          `json:"enable_app_reviews"`

	CarsPerPage       int  `json:"cars_per_page" validate:"min=1,max=100"`
	FeaturedCarsLimit int  `json:"featured_cars_limit" validate:"min=0"`
	MaintenanceMode   bool `json:"maintenance_mode"`
	CacheDuration     int  `json:"cache_duration" validate:"min=0"`
}

func DefaultSettings() SystemSettings {
	return SystemSettings{
		WebsiteName:            PlainText("Alromaih Cars"),
		CopyrightText:          PlainText("© 2025 Alromaih. All rights reserved"),
		PrimaryColor:           "#1E40AF",
		SecondaryColor:         "#64748B",
		EnableAppNotifications: true,
		EnableInAppChat:        true,
		EnableCarComparison:    true,
		EnableAppBooking:       true,
		EnableAppReviews:       true,
		CarsPerPage:            12,
		FeaturedCarsLimit:      6,
		CacheDuration:          60,
	}
}
