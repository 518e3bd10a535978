package dto

import "encoding/json"

type Category struct {
	ID                      ID              `json:"id"`
	Name                    json.RawMessage `json:"name"`
	DisplayName             json.RawMessage `json:"display_name"`
	Description             json.RawMessage `json:"description"`
	Active                  *bool           `json:"active"`
	Sequence                int             `json:"sequence"`
	WebsiteSequence         int             `json:"website_sequence"`
	DisplayType             Text            `json:"display_type"`
	Icon                    Text            `json:"icon"`
	IconImage               Text            `json:"icon_image"`
	IconDisplayType         Text            `json:"icon_display_type"`
	IsInformationCategory   bool            `json:"is_information_category"`
	IsInlineEditable        bool            `json:"is_inline_editable"`
	IsWebsiteVisible        bool            `json:"is_website_visible"`
	WebsiteMetaTitle        json.RawMessage `json:"website_meta_title"`
	WebsiteMetaDescription  json.RawMessage `json:"website_meta_description"`
	WebsiteMetaKeywords     json.RawMessage `json:"website_meta_keywords"`
	WebsiteShortDescription json.RawMessage `json:"website_short_description"`
	WebsiteURLKey           Text            `json:"website_url_key"`
	WebsiteDisplayStyle     Text            `json:"website_display_style"`
	WebsiteFoldByDefault    bool            `json:"website_fold_by_default"`
	AttributeCount          int             `json:"attribute_count"`
}
