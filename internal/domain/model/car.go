package model

import "github.com/shopspring/decimal"

type CarStatus string

const (
	CarDraft     CarStatus = "draft"
	CarAvailable CarStatus = "available"
	CarReserved  CarStatus = "reserved"
	CarSold      CarStatus = "sold"
)

const DefaultCarName = "New Car"

var DefaultVATPercentage = decimal.NewFromInt(15)

type Car struct {
	ID               int64           `json:"id"`
	Name             LocalizedText   `json:"name"`
	BrandID          int64           `json:"brand_id"`
	ModelID          int64           `json:"model_id"`
	TrimID           int64           `json:"trim_id"`
	YearID           int64           `json:"year_id"`
	ColorIDs         []int64         `json:"color_ids"`
	PrimaryColorID   int64           `json:"primary_color_id"`
	CashPrice        decimal.Decimal `json:"cash_price"`
	CashPriceWithVAT decimal.Decimal `json:"cash_price_with_vat"`
	FinancePrice     decimal.Decimal `json:"finance_price"`
	VATPercentage    decimal.Decimal `json:"vat_percentage"`
	Status           CarStatus       `json:"status"`
	Active           bool            `json:"active"`
	IsFeatured       bool            `json:"is_featured"`
	Sequence         int             `json:"sequence"`
}

// CarData is the editable part of a car as held by the form.
type CarData struct {
	BrandID        int64           `json:"brand_id"`
	ModelID        int64           `json:"model_id"`
	TrimID         int64           `json:"trim_id"`
	YearID         int64           `json:"year_id"`
	ColorIDs       []int64         `json:"color_ids"`
	PrimaryColorID int64           `json:"primary_color_id"`
	CashPrice      decimal.Decimal `json:"cash_price"`
	FinancePrice   decimal.Decimal `json:"finance_price"`
	VATPercentage  decimal.Decimal `json:"vat_percentage"`
	Status         CarStatus       `json:"status"`
	Active         bool            `json:"active"`
	IsFeatured     bool            `json:"is_featured"`
	Sequence       int             `json:"sequence"`
}

func NewCarData() CarData {
	return CarData{
		VATPercentage: DefaultVATPercentage,
		Status:        CarDraft,
		Active:        true,
		Sequence:      10,
	}
}

func (c Car) Data() CarData {
	return CarData{
		BrandID:        c.BrandID,
		ModelID:        c.ModelID,
		TrimID:         c.TrimID,
		YearID:         c.YearID,
		ColorIDs:       append([]int64(nil), c.ColorIDs...),
		PrimaryColorID: c.PrimaryColorID,
		CashPrice:      c.CashPrice,
		FinancePrice:   c.FinancePrice,
		VATPercentage:  c.VATPercentage,
		Status:         c.Status,
		Active:         c.Active,
		IsFeatured:     c.IsFeatured,
		Sequence:       c.Sequence,
	}
}

// PriceWithVAT rounds to two decimals like the backend's monetary fields.
func (d CarData) PriceWithVAT() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(d.VATPercentage.Div(decimal.NewFromInt(100)))
	return d.CashPrice.Mul(factor).Round(2)
}

// CarPatch is applied by the car form; nil fields are untouched.
type CarPatch struct {
	BrandID        *int64           `json:"brand_id"`
	ModelID        *int64           `json:"model_id"`
	TrimID         *int64           `json:"trim_id"`
	YearID         *int64           `json:"year_id"`
	ColorIDs       *[]int64         `json:"color_ids"`
	PrimaryColorID *int64           `json:"primary_color_id"`
	CashPrice      *decimal.Decimal `json:"cash_price"`
	FinancePrice   *decimal.Decimal `json:"finance_price"`
	VATPercentage  *decimal.Decimal `json:"vat_percentage"`
	Status         *CarStatus       `json:"status"`
	Active         *bool            `json:"active"`
	IsFeatured     *bool            `json:"is_featured"`
	Sequence       *int             `json:"sequence"`
}

type CarFilter struct {
	IncludeInactive bool  `json:"include_inactive"`
	BrandID         int64 `json:"brand_id"`
	Limit           int   `json:"limit"`
	Offset          int   `json:"offset"`
}
