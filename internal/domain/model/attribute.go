package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DisplayType string

const (
	DisplayText        DisplayType = "text"
	DisplaySelect      DisplayType = "select"
	DisplayMultiselect DisplayType = "multiselect"
	DisplayRadio       DisplayType = "radio"
	DisplayCheckbox    DisplayType = "checkbox"
	DisplayColor       DisplayType = "color"
	DisplayNumeric     DisplayType = "numeric"
	DisplayBoolean     DisplayType = "boolean"
	DisplayImage       DisplayType = "image"
)

var AttributeDisplayTypes = []DisplayType{
	DisplayText, DisplaySelect, DisplayMultiselect, DisplayRadio, DisplayCheckbox,
	DisplayColor, DisplayNumeric, DisplayBoolean, DisplayImage,
}

func (d DisplayType) Valid() bool {
	for _, v := range AttributeDisplayTypes {
		if v == d {
			return true
		}
	}
	return false
}

const DefaultFilterPriority = 10

type Attribute struct {
	ID               int64            `json:"id"`
	Name             LocalizedText    `json:"name"`
	DisplayName      LocalizedText    `json:"display_name"`
	Description      LocalizedText    `json:"description"`
	DisplayType      DisplayType      `json:"display_type"`
	CategoryType     string           `json:"category_type"`
	IsKeyAttribute   bool             `json:"is_key_attribute"`
	IsFilterable     bool             `json:"is_filterable"`
	IsWebsiteSpec    bool             `json:"is_website_spec"`
	DisplayInCarInfo bool             `json:"display_in_car_info"`
	CreateVariant    bool             `json:"create_variant"`
	AllowMultiSelect bool             `json:"allow_multi_select"`
	FilterPriority   int              `json:"filter_priority"`
	EditWidget       string           `json:"edit_widget"`
	Icon             string           `json:"icon"`
	CarInfoIcon      string           `json:"car_info_icon"`
	Sequence         int              `json:"sequence"`
	Active           bool             `json:"active"`
	Values           []AttributeValue `json:"values"`
	WriteDate        time.Time        `json:"write_date"`
}

// AttributeDraft is the create payload; Values are never part of it.
type AttributeDraft struct {
	Name             LocalizedText `json:"name"`
	DisplayName      LocalizedText `json:"display_name"`
	Description      LocalizedText `json:"description"`
	DisplayType      DisplayType   `json:"display_type" validate:"omitempty,oneof=text select multiselect radio checkbox color numeric boolean image"`
	CategoryType     string        `json:"category_type"`
	IsKeyAttribute   bool          `json:"is_key_attribute"`
	IsFilterable     bool          `json:"is_filterable"`
	IsWebsiteSpec    bool          `json:"is_website_spec"`
	DisplayInCarInfo bool          `json:"display_in_car_info"`
	CreateVariant    bool          `json:"create_variant"`
	AllowMultiSelect bool          `json:"allow_multi_select"`
	FilterPriority   int           `json:"filter_priority" validate:"gte=0"`
	EditWidget       string        `json:"edit_widget"`
	Icon             string        `json:"icon"`
	CarInfoIcon      string        `json:"car_info_icon"`
}

type AttributeFilter struct {
	OnlyFilterable  bool `json:"only_filterable"`
	OnlyKey         bool `json:"only_key"`
	OnlyWebsiteSpec bool `json:"only_website_spec"`
}

type AttributeStatistics struct {
	Total       int `json:"total"`
	Filterable  int `json:"filterable"`
	Key         int `json:"key"`
	WebsiteSpec int `json:"website_spec"`
	CarInfo     int `json:"car_info"`
	Active      int `json:"active"`
	ValuesTotal int `json:"values_total"`
}

type AttributeValue struct {
	ID                int64           `json:"id"`
	AttributeID       int64           `json:"attribute_id"`
	Name              LocalizedText   `json:"name"`
	DisplayName       LocalizedText   `json:"display_name"`
	DisplayValue      string          `json:"display_value"`
	Sequence          int             `json:"sequence"`
	Active            bool            `json:"active"`
	Color             int             `json:"color"`
	HTMLColor         string          `json:"html_color"`
	Image             string          `json:"image"`
	IsCustom          bool            `json:"is_custom"`
	DefaultExtraPrice decimal.Decimal `json:"default_extra_price"`
}

type AttributeValueDraft struct {
	Name              LocalizedText   `json:"name"`
	Sequence          int             `json:"sequence"`
	Active            *bool           `json:"active"`
	Color             int             `json:"color"`
	HTMLColor         string          `json:"html_color" validate:"omitempty,hexcolor"`
	Image             string          `json:"image"`
	IsCustom          bool            `json:"is_custom"`
	DefaultExtraPrice decimal.Decimal `json:"default_extra_price"`
}

func (a Attribute) DisplayLabel(locale Locale) string {
	if label := a.DisplayName.Resolve(locale); label != "" {
		return label
	}
	return a.Name.Resolve(locale)
}

// AttributePatch is a partial update; nil fields are not sent.
type AttributePatch struct {
	Name             *LocalizedText `json:"name"`
	DisplayName      *LocalizedText `json:"display_name"`
	Description      *LocalizedText `json:"description"`
	DisplayType      *DisplayType   `json:"display_type"`
	CategoryType     *string        `json:"category_type"`
	IsKeyAttribute   *bool          `json:"is_key_attribute"`
	IsFilterable     *bool          `json:"is_filterable"`
	IsWebsiteSpec    *bool          `json:"is_website_spec"`
	DisplayInCarInfo *bool          `json:"display_in_car_info"`
	CreateVariant    *bool          `json:"create_variant"`
	AllowMultiSelect *bool          `json:"allow_multi_select"`
	FilterPriority   *int           `json:"filter_priority"`
	EditWidget       *string        `json:"edit_widget"`
	Icon             *string        `json:"icon"`
	CarInfoIcon      *string        `json:"car_info_icon"`
	Sequence         *int           `json:"sequence"`
	Active           *bool          `json:"active"`
}

type AttributeValuePatch struct {
	Name              *LocalizedText   `json:"name"`
	Sequence          *int             `json:"sequence"`
	Active            *bool            `json:"active"`
	Color             *int             `json:"color"`
	HTMLColor         *string          `json:"html_color"`
	Image             *string          `json:"image"`
	IsCustom          *bool            `json:"is_custom"`
	DefaultExtraPrice *decimal.Decimal `json:"default_extra_price"`
}

func (v AttributeValue) Apply(p AttributeValuePatch) AttributeValue {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Sequence != nil {
		v.Sequence = *p.Sequence
	}
	if p.Active != nil {
		v.Active = *p.Active
	}
	if p.Color != nil {
		v.Color = *p.Color
	}
	if p.HTMLColor != nil {
		v.HTMLColor = *p.HTMLColor
	}
	if p.Image != nil {
		v.Image = *p.Image
	}
	if p.IsCustom != nil {
		v.IsCustom = *p.IsCustom
	}
	if p.DefaultExtraPrice != nil {
		v.DefaultExtraPrice = *p.DefaultExtraPrice
	}
	return v
}
