package dto

import "encoding/json"

type Template struct {
	ID                 ID              `json:"id"`
	Name               json.RawMessage `json:"name"`
	DisplayName        json.RawMessage `json:"display_name"`
	Description        json.RawMessage `json:"description"`
	DisplayStyle       Text            `json:"display_style"`
	Sequence           int             `json:"sequence"`
	IsDefault          bool            `json:"is_default"`
	WebsiteVisible     bool            `json:"website_visible"`
	WebsiteDescription json.RawMessage `json:"website_description"`
	Active             *bool           `json:"active"`
	ApplyToBrandIDs    Refs            `json:"apply_to_brand_ids"`
	ApplyToModelIDs    Refs            `json:"apply_to_model_ids"`
	CategoryIDs        Refs            `json:"category_ids"`
	CategoryCount      int             `json:"category_count"`
	Lines              []TemplateLine  `json:"specification_line_ids"`
}

type TemplateLine struct {
	ID               ID              `json:"id"`
	AttributeID      Ref             `json:"attribute_id"`
	Sequence         int             `json:"sequence"`
	IsRequired       bool            `json:"is_required"`
	IsVisible        bool            `json:"is_visible"`
	IsFilterable     bool            `json:"is_filterable"`
	HelpText         json.RawMessage `json:"help_text"`
	Placeholder      json.RawMessage `json:"placeholder"`
	CategorySequence int             `json:"category_sequence"`
}
