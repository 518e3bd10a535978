package dto

import "encoding/json"

type Car struct {
	ID               ID              `json:"id"`
	Name             json.RawMessage `json:"name"`
	BrandID          Ref             `json:"brand_id"`
	ModelID          Ref             `json:"model_id"`
	TrimID           Ref             `json:"trim_id"`
	YearID           Ref             `json:"year_id"`
	ColorIDs         Refs            `json:"color_ids"`
	PrimaryColorID   Ref             `json:"primary_color_id"`
	CashPrice        Money           `json:"cash_price"`
	CashPriceWithVAT Money           `json:"cash_price_with_vat"`
	FinancePrice     Money           `json:"finance_price"`
	VATPercentage    Money           `json:"vat_percentage"`
	Status           Text            `json:"status"`
	Active           *bool           `json:"active"`
	IsFeatured       bool            `json:"is_featured"`
	Sequence         int             `json:"sequence"`
}

type NamePreview struct {
	Name json.RawMessage `json:"name"`
}
