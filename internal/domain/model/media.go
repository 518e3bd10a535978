package model

type ContentType string

const (
	ContentImage        ContentType = "image"
	ContentVideoFile    ContentType = "video_file"
	ContentVideoURL     ContentType = "video_url"
	ContentIframe360    ContentType = "iframe_360"
	ContentIframeCode   ContentType = "iframe_code"
	ContentDocument     ContentType = "document"
	ContentExternalLink ContentType = "external_link"
)

// InputKind is what the media form must collect for a content type.
type InputKind string

const (
	InputFile InputKind = "file"
	InputURL  InputKind = "url"
	InputHTML InputKind = "html"
)

func (c ContentType) Input() (InputKind, bool) {
	switch c {
	case ContentImage, ContentVideoFile, ContentDocument:
		return InputFile, true
	case ContentVideoURL, ContentExternalLink:
		return InputURL, true
	case ContentIframe360, ContentIframeCode:
		return InputHTML, true
	}
	return "", false
}

var MediaTypes = []string{"interior", "exterior", "engine", "trunk", "dashboard", "360_view", "video", "brochure", "other"}

type Media struct {
	ID             int64         `json:"id"`
	Name           LocalizedText `json:"name"`
	CarID          int64         `json:"car_id"`
	CarVariantID   int64         `json:"car_variant_id"`
	MediaType      string        `json:"media_type"`
	ContentType    ContentType   `json:"content_type"`
	ImageURL       string        `json:"image_url"`
	VideoURL       string        `json:"video_url"`
	ExternalLink   string        `json:"external_link"`
	IframeCode     string        `json:"iframe_code"`
	Sequence       int           `json:"sequence"`
	Description    LocalizedText `json:"description"`
	AltText        LocalizedText `json:"alt_text"`
	IsPrimary      bool          `json:"is_primary"`
	IsFeatured     bool          `json:"is_featured"`
	IsPublic       bool          `json:"is_public"`
	Active         bool          `json:"active"`
	WebsiteVisible bool          `json:"website_visible"`
	MimeType       string        `json:"mime_type"`
	FileSize       float64       `json:"file_size"`
	SEOTitle       LocalizedText `json:"seo_title"`
	SEODescription LocalizedText `json:"seo_description"`
}

// Upload is a file already encoded for the GraphQL payload.
type Upload struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
	Base64   string `json:"base64"`
}

type MediaData struct {
	Name           LocalizedText `json:"name"`
	CarID          int64         `json:"car_id"`
	CarVariantID   int64         `json:"car_variant_id"`
	MediaType      string        `json:"media_type" validate:"oneof=interior exterior engine trunk dashboard 360_view video brochure other"`
	ContentType    ContentType   `json:"content_type" validate:"oneof=image video_file video_url iframe_360 iframe_code document external_link"`
	File           *Upload       `json:"file"`
	URL            string        `json:"url"`
	HTML           string        `json:"html"`
	Sequence       int           `json:"sequence"`
	Description    LocalizedText `json:"description"`
	AltText        LocalizedText `json:"alt_text"`
	IsPrimary      bool          `json:"is_primary"`
	IsFeatured     bool          `json:"is_featured"`
	IsPublic       bool          `json:"is_public"`
	WebsiteVisible bool          `json:"website_visible"`
	SEOTitle       LocalizedText `json:"seo_title"`
	SEODescription LocalizedText `json:"seo_description"`
}

func NewMediaData() MediaData {
	return MediaData{
		MediaType:      "exterior",
		ContentType:    ContentImage,
		Sequence:       10,
		IsPublic:       true,
		WebsiteVisible: true,
	}
}

func (m Media) Data() MediaData {
	d := MediaData{
		Name:           m.Name,
		CarID:          m.CarID,
		CarVariantID:   m.CarVariantID,
		MediaType:      m.MediaType,
		ContentType:    m.ContentType,
		Sequence:       m.Sequence,
		Description:    m.Description,
		AltText:        m.AltText,
		IsPrimary:      m.IsPrimary,
		IsFeatured:     m.IsFeatured,
		IsPublic:       m.IsPublic,
		WebsiteVisible: m.WebsiteVisible,
		SEOTitle:       m.SEOTitle,
		SEODescription: m.SEODescription,
	}
	switch m.ContentType {
	case ContentVideoURL:
		d.URL = m.VideoURL
	case ContentExternalLink:
		d.URL = m.ExternalLink
	case ContentIframe360, ContentIframeCode:
		d.HTML = m.IframeCode
	}
	return d
}

type MediaFilter struct {
	CarID           int64  `json:"car_id"`
	MediaType       string `json:"media_type"`
	IncludeInactive bool   `json:"include_inactive"`
	Limit           int    `json:"limit"`
	Offset          int    `json:"offset"`
}

type MediaSequence struct {
	ID       int64 `json:"id"`
	Sequence int   `json:"sequence"`
}

type MediaPatch struct {
	Name           *LocalizedText `json:"name"`
	CarID          *int64         `json:"car_id"`
	CarVariantID   *int64         `json:"car_variant_id"`
	MediaType      *string        `json:"media_type"`
	ContentType    *ContentType   `json:"content_type"`
	URL            *string        `json:"url"`
	HTML           *string        `json:"html"`
	Sequence       *int           `json:"sequence"`
	Description    *LocalizedText `json:"description"`
	AltText        *LocalizedText `json:"alt_text"`
	IsPrimary      *bool          `json:"is_primary"`
	IsFeatured     *bool          `json:"is_featured"`
	IsPublic       *bool          `json:"is_public"`
	WebsiteVisible *bool          `json:"website_visible"`
	SEOTitle       *LocalizedText `json:"seo_title"`
	SEODescription *LocalizedText `json:"seo_description"`
}

// Apply merges p; switching the content type drops inputs of the old kind.
func (d MediaData) Apply(p MediaPatch) MediaData {
	if p.ContentType != nil && *p.ContentType != d.ContentType {
		oldKind, _ := d.ContentType.Input()
		newKind, _ := p.ContentType.Input()
		d.ContentType = *p.ContentType
		if oldKind != newKind {
			d.File = nil
			d.URL = ""
			d.HTML = ""
		}
	}
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.CarID != nil {
		d.CarID = *p.CarID
	}
	if p.CarVariantID != nil {
		d.CarVariantID = *p.CarVariantID
	}
	if p.MediaType != nil {
		d.MediaType = *p.MediaType
	}
	if p.URL != nil {
		d.URL = *p.URL
	}
	if p.HTML != nil {
		d.HTML = *p.HTML
	}
	if p.Sequence != nil {
		d.Sequence = *p.Sequence
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.AltText != nil {
		d.AltText = *p.AltText
	}
	if p.IsPrimary != nil {
		d.IsPrimary = *p.IsPrimary
	}
	if p.IsFeatured != nil {
		d.IsFeatured = *p.IsFeatured
	}
	if p.IsPublic != nil {
		d.IsPublic = *p.IsPublic
	}
	if p.WebsiteVisible != nil {
		d.WebsiteVisible = *p.WebsiteVisible
	}
	if p.SEOTitle != nil {
		d.SEOTitle = *p.SEOTitle
	}
	if p.SEODescription != nil {
		d.SEODescription = *p.SEODescription
	}
	return d
}
