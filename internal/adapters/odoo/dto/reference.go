package dto

import "encoding/json"

type Brand struct {
	ID     ID              `json:"id"`
	Name   json.RawMessage `json:"name"`
	Logo   Text            `json:"logo"`
	Active *bool           `json:"active"`
}

type CarModel struct {
	ID      ID              `json:"id"`
	BrandID Ref             `json:"brand_id"`
	Name    json.RawMessage `json:"name"`
	Active  *bool           `json:"active"`
}

type Trim struct {
	ID      ID              `json:"id"`
	ModelID Ref             `json:"model_id"`
	Name    json.RawMessage `json:"name"`
	Active  *bool           `json:"active"`
}

type Year struct {
	ID     ID              `json:"id"`
	Name   json.RawMessage `json:"name"`
	Active *bool           `json:"active"`
}

type Color struct {
	ID          ID              `json:"id"`
	BrandID     Ref             `json:"brand_id"`
	Name        json.RawMessage `json:"name"`
	ColorPicker Text            `json:"color_picker"`
	Active      *bool           `json:"active"`
}
