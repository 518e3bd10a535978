package model

const (
	CategoryDisplayList      = "list"
	CategoryDisplayGrid      = "grid"
	CategoryDisplayAccordion = "accordion"
	CategoryDisplayTabs      = "tabs"
	CategoryDisplayCards     = "cards"
)

var CategoryDisplayTypes = []string{
	CategoryDisplayList, CategoryDisplayGrid, CategoryDisplayAccordion, CategoryDisplayTabs, CategoryDisplayCards,
}

var IconDisplayTypes = []string{"icon", "image", "color", "text"}

var WebsiteDisplayStyles = []string{"default", "compact", "detailed", "minimal"}

type AttributeCategory struct {
	ID                      int64         `json:"id"`
	Name                    LocalizedText `json:"name"`
	DisplayName             LocalizedText `json:"display_name"`
	Description             LocalizedText `json:"description"`
	Active                  bool          `json:"active"`
	Sequence                int           `json:"sequence"`
	WebsiteSequence         int           `json:"website_sequence"`
	DisplayType             string        `json:"display_type"`
	Icon                    string        `json:"icon"`
	IconImage               string        `json:"icon_image"`
	IconDisplayType         string        `json:"icon_display_type"`
	IsInformationCategory   bool          `json:"is_information_category"`
	IsInlineEditable        bool          `json:"is_inline_editable"`
	IsWebsiteVisible        bool          `json:"is_website_visible"`
	WebsiteMetaTitle        LocalizedText `json:"website_meta_title"`
	WebsiteMetaDescription  LocalizedText `json:"website_meta_description"`
	WebsiteMetaKeywords     LocalizedText `json:"website_meta_keywords"`
	WebsiteShortDescription LocalizedText `json:"website_short_description"`
	WebsiteURLKey           string        `json:"website_url_key"`
	WebsiteDisplayStyle     string        `json:"website_display_style"`
	WebsiteFoldByDefault    bool          `json:"website_fold_by_default"`
	AttributeCount          int           `json:"attribute_count"`
}

type CategoryDraft struct {
	Name                    LocalizedText `json:"name"`
	DisplayName             LocalizedText `json:"display_name"`
	Description             LocalizedText `json:"description"`
	Active                  *bool         `json:"active"`
	Sequence                int           `json:"sequence"`
	WebsiteSequence         int           `json:"website_sequence"`
	DisplayType             string        `json:"display_type" validate:"omitempty,oneof=list grid accordion tabs cards"`
	Icon                    string        `json:"icon"`
	IconDisplayType         string        `json:"icon_display_type" validate:"omitempty,oneof=icon image color text"`
	IsInformationCategory   bool          `json:"is_information_category"`
	IsInlineEditable        bool          `json:"is_inline_editable"`
	IsWebsiteVisible        bool          `json:"is_website_visible"`
	WebsiteMetaTitle        LocalizedText `json:"website_meta_title"`
	WebsiteMetaDescription  LocalizedText `json:"website_meta_description"`
	WebsiteMetaKeywords     LocalizedText `json:"website_meta_keywords"`
	WebsiteShortDescription LocalizedText `json:"website_short_description"`
	WebsiteURLKey           string        `json:"website_url_key"`
	WebsiteDisplayStyle     string        `json:"website_display_style" validate:"omitempty,oneof=default compact detailed minimal"`
	WebsiteFoldByDefault    bool          `json:"website_fold_by_default"`
}

// CategoryFlags carries the boolean switches; nil fields are left untouched.
type CategoryFlags struct {
	IsWebsiteVisible      *bool `json:"is_website_visible"`
	IsInformationCategory *bool `json:"is_information_category"`
	IsInlineEditable      *bool `json:"is_inline_editable"`
}

func (f CategoryFlags) Empty() bool {
	return f.IsWebsiteVisible == nil && f.IsInformationCategory == nil && f.IsInlineEditable == nil
}

type CategoryFilter struct {
	IncludeInactive bool `json:"include_inactive"`
	WebsiteVisible  bool `json:"website_visible"`
	Information     bool `json:"information"`
	InlineEditable  bool `json:"inline_editable"`
}

type CategoryPatch struct {
	Name                    *LocalizedText `json:"name"`
	DisplayName             *LocalizedText `json:"display_name"`
	Description             *LocalizedText `json:"description"`
	Active                  *bool          `json:"active"`
	Sequence                *int           `json:"sequence"`
	WebsiteSequence         *int           `json:"website_sequence"`
	DisplayType             *string        `json:"display_type"`
	Icon                    *string        `json:"icon"`
	IconImage               *string        `json:"icon_image"`
	IconDisplayType         *string        `json:"icon_display_type"`
	IsInformationCategory   *bool          `json:"is_information_category"`
	IsInlineEditable        *bool          `json:"is_inline_editable"`
	IsWebsiteVisible        *bool          `json:"is_website_visible"`
	WebsiteMetaTitle        *LocalizedText `json:"website_meta_title"`
	WebsiteMetaDescription  *LocalizedText `json:"website_meta_description"`
	WebsiteMetaKeywords     *LocalizedText `json:"website_meta_keywords"`
	WebsiteShortDescription *LocalizedText `json:"website_short_description"`
	WebsiteURLKey           *string        `json:"website_url_key"`
	WebsiteDisplayStyle     *string        `json:"website_display_style"`
	WebsiteFoldByDefault    *bool          `json:"website_fold_by_default"`
}

func (f CategoryFlags) Patch() CategoryPatch {
	return CategoryPatch{
		IsWebsiteVisible:      f.IsWebsiteVisible,
		IsInformationCategory: f.IsInformationCategory,
		IsInlineEditable:      f.IsInlineEditable,
	}
}

// Draft rebuilds a create payload from an existing category.
func (c AttributeCategory) Draft() CategoryDraft {
	active := c.Active
	return CategoryDraft{
		Name:                    c.Name,
		DisplayName:             c.DisplayName,
		Description:             c.Description,
		Active:                  &active,
		Sequence:                c.Sequence,
		WebsiteSequence:         c.WebsiteSequence,
		DisplayType:             c.DisplayType,
		Icon:                    c.Icon,
		IconDisplayType:         c.IconDisplayType,
		IsInformationCategory:   c.IsInformationCategory,
		IsInlineEditable:        c.IsInlineEditable,
		IsWebsiteVisible:        c.IsWebsiteVisible,
		WebsiteMetaTitle:        c.WebsiteMetaTitle,
		WebsiteMetaDescription:  c.WebsiteMetaDescription,
		WebsiteMetaKeywords:     c.WebsiteMetaKeywords,
		WebsiteShortDescription: c.WebsiteShortDescription,
		WebsiteURLKey:           c.WebsiteURLKey,
		WebsiteDisplayStyle:     c.WebsiteDisplayStyle,
		WebsiteFoldByDefault:    c.WebsiteFoldByDefault,
	}
}

type CategoryStatistics struct {
	Total          int `json:"total"`
	Active         int `json:"active"`
	WebsiteVisible int `json:"website_visible"`
	Information    int `json:"information"`
	InlineEditable int `json:"inline_editable"`
	Attributes     int `json:"attributes"`
}
