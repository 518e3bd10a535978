package dto

import "encoding/json"

type Attribute struct {
	ID               ID               `json:"id"`
	Name             json.RawMessage  `json:"name"`
	DisplayName      json.RawMessage  `json:"display_name"`
	Description      json.RawMessage  `json:"description"`
	DisplayType      Text             `json:"display_type"`
	CategoryType     Text             `json:"category_type"`
	IsKeyAttribute   bool             `json:"is_key_attribute"`
	IsFilterable     bool             `json:"is_filterable"`
	IsWebsiteSpec    bool             `json:"is_website_spec"`
	DisplayInCarInfo bool             `json:"display_in_car_info"`
	CreateVariant    json.RawMessage  `json:"create_variant"`
	AllowMultiSelect bool             `json:"allow_multi_select"`
	FilterPriority   int              `json:"filter_priority"`
	EditWidget       Text             `json:"edit_widget"`
	Icon             Text             `json:"icon"`
	CarInfoIcon      Text             `json:"car_info_icon"`
	Sequence         int              `json:"sequence"`
	Active           *bool            `json:"active"`
	WriteDate        Text             `json:"write_date"`
	ValueIDs         []AttributeValue `json:"value_ids"`
}

type AttributeValue struct {
	ID                ID              `json:"id"`
	AttributeID       Ref             `json:"attribute_id"`
	Name              json.RawMessage `json:"name"`
	DisplayName       json.RawMessage `json:"display_name"`
	DisplayValue      Text            `json:"display_value"`
	Sequence          int             `json:"sequence"`
	Active            *bool           `json:"active"`
	Color             int             `json:"color"`
	HTMLColor         Text            `json:"html_color"`
	Image             Text            `json:"image"`
	IsCustom          bool            `json:"is_custom"`
	DefaultExtraPrice Money           `json:"default_extra_price"`
}
