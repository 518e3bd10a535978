package dto

import "encoding/json"

type Settings struct {
	ID                     ID              `json:"id"`
	WebsiteName            json.RawMessage `json:"website_name"`
	CompanyPhone           Text            `json:"company_phone"`
	CompanyEmail           Text            `json:"company_email"`
	CompanyAddress         json.RawMessage `json:"company_address"`
	WhatsappBusinessNumber Text            `json:"whatsapp_business_number"`
	CustomerSupportEmail   Text            `json:"customer_support_email"`
	CopyrightText          json.RawMessage `json:"copyright_text"`
	FacebookURL            Text            `json:"facebook_url"`
	InstagramURL           Text            `json:"instagram_url"`
	YoutubeURL             Text            `json:"youtube_url"`
	SnapchatURL            Text            `json:"snapchat_url"`
	TiktokURL              Text            `json:"tiktok_url"`
	LinkedinURL            Text            `json:"linkedin_url"`
	XURL                   Text            `json:"x_url"`
	AppStoreURL            Text            `json:"app_store_url"`
	PlayStoreURL           Text            `json:"play_store_url"`
	MetaTitle              json.RawMessage `json:"meta_title"`
	MetaDescription        json.RawMessage `json:"meta_description"`
	MetaKeywords           json.RawMessage `json:"meta_keywords"`
	GoogleAnalyticsID      Text            `json:"google_analytics_id"`
	GoogleTagManagerID     Text            `json:"google_tag_manager_id"`
	TiktokPixelID          Text            `json:"tiktok_pixel_id"`
	MetaPixelID            Text            `json:"meta_pixel_id"`
	SnapchatPixelID        Text            `json:"snapchat_pixel_id"`
	LinkedinPixelID        Text            `json:"linkedin_pixel_id"`
	XPixelID               Text            `json:"x_pixel_id"`
	PrimaryColor           Text            `json:"primary_color"`
	SecondaryColor         Text            `json:"secondary_color"`
	AppPrimaryColor        Text            `json:"app_primary_color"`
	AppSecondaryColor      Text            `json:"app_secondary_color"`
	AppName                json.RawMessage `json:"app_name"`
	AndroidAppVersion      Text            `json:"android_app_version"`
	AndroidMinVersion      Text            `json:"android_min_version"`
	IOSAppVersion          Text            `json:"ios_app_version"`
	IOSMinVersion          Text            `json:"ios_min_version"`
	ForceUpdate            bool            `json:"force_update"`
	EnableAppNotifications bool            `json:"enable_app_notifications"`
	EnableInAppChat        bool            `json:"enable_in_app_chat"`
	EnableCarComparison    bool            `json:"enable_car_comparison"`
	EnableAppBooking       bool            `json:"enable_app_booking"`
	EnableAppReviews       bool            `json:"enable_app_reviews"`
	CarsPerPage            int             `json:"cars_per_page"`
	FeaturedCarsLimit      int             `json:"featured_cars_limit"`
	MaintenanceMode        bool            `json:"maintenance_mode"`
	CacheDuration          int             `json:"cache_duration"`
}
