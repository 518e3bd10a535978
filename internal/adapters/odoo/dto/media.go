package dto

import "encoding/json"

type Media struct {
	ID             ID              `json:"id"`
	Name           json.RawMessage `json:"name"`
	CarID          Ref             `json:"car_id"`
	CarVariantID   Ref             `json:"car_variant_id"`
	MediaType      Text            `json:"media_type"`
	ContentType    Text            `json:"content_type"`
	ImageURL       Text            `json:"image_url"`
	VideoURL       Text            `json:"video_url"`
	ExternalLink   Text            `json:"external_link"`
	IframeCode     Text            `json:"iframe_code"`
	Sequence       int             `json:"sequence"`
	Description    json.RawMessage `json:"description"`
	AltText        json.RawMessage `json:"alt_text"`
	IsPrimary      bool            `json:"is_primary"`
	IsFeatured     bool            `json:"is_featured"`
	IsPublic       bool            `json:"is_public"`
	Active         *bool           `json:"active"`
	WebsiteVisible bool            `json:"website_visible"`
	MimeType       Text            `json:"mime_type"`
	FileSize       Float           `json:"file_size"`
	SEOTitle       json.RawMessage `json:"seo_title"`
	SEODescription json.RawMessage `json:"seo_description"`
}
