package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

type OfferTag string

const (
	TagHotDeal   OfferTag = "hot_deal"
	TagClearance OfferTag = "clearance"
	TagLimited   OfferTag = "limited"
	TagSpecial   OfferTag = "special"
)

type OfferStatus string

const (
	OfferActive   OfferStatus = "active"
	OfferExpired  OfferStatus = "expired"
	OfferUpcoming OfferStatus = "upcoming"
)

const DateLayout = "2006-01-02"

type Offer struct {
	ID                 int64           `json:"id"`
	Name               LocalizedText   `json:"name"`
	Description        LocalizedText   `json:"description"`
	CarID              int64           `json:"car_id"`
	CarVariantID       int64           `json:"car_variant_id"`
	ApplyToAllVariants bool            `json:"apply_to_all_variants"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	DiscountType       DiscountType    `json:"discount_type"`
	DiscountValue      decimal.Decimal `json:"discount_value"`
	OriginalPrice      decimal.Decimal `json:"original_price"`
	FinalPrice         decimal.Decimal `json:"final_price"`
	IsActive           bool            `json:"is_active"`
	OfferTag           OfferTag        `json:"offer_tag"`
	BannerURL          string          `json:"banner_url"`
}

// Status is derived from the date window; an inactive offer is reported expired.
func (o Offer) Status(now time.Time) OfferStatus {
	today := truncateDay(now)
	switch {
	case !o.IsActive:
		return OfferExpired
	case today.Before(truncateDay(o.StartDate)):
		return OfferUpcoming
	case today.After(truncateDay(o.EndDate)):
		return OfferExpired
	default:
		return OfferActive
	}
}

type OfferData struct {
	Name               LocalizedText   `json:"name"`
	Description        LocalizedText   `json:"description"`
	CarID              int64           `json:"car_id"`
	CarVariantID       int64           `json:"car_variant_id"`
	ApplyToAllVariants bool            `json:"apply_to_all_variants"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	DiscountType       DiscountType    `json:"discount_type" validate:"oneof=fixed percentage"`
	DiscountValue      decimal.Decimal `json:"discount_value"`
	OfferTag           OfferTag        `json:"offer_tag" validate:"oneof=hot_deal clearance limited special"`
}

func NewOfferData(now time.Time) OfferData {
	start := truncateDay(now)
	return OfferData{
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, 30),
		DiscountType: DiscountFixed,
		OfferTag:     TagSpecial,
	}
}

func (o Offer) Data() OfferData {
	return OfferData{
		Name:               o.Name,
		Description:        o.Description,
		CarID:              o.CarID,
		CarVariantID:       o.CarVariantID,
		ApplyToAllVariants: o.ApplyToAllVariants,
		StartDate:          o.StartDate,
		EndDate:            o.EndDate,
		DiscountType:       o.DiscountType,
		DiscountValue:      o.DiscountValue,
		OfferTag:           o.OfferTag,
	}
}

// FinalPrice applies the discount to original, never going below zero.
func (d OfferData) FinalPrice(original decimal.Decimal) decimal.Decimal {
	var final decimal.Decimal
	switch d.DiscountType {
	case DiscountPercentage:
		rate := decimal.NewFromInt(1).Sub(d.DiscountValue.Div(decimal.NewFromInt(100)))
		final = original.Mul(rate)
	default:
		final = original.Sub(d.DiscountValue)
	}
	if final.IsNegative() {
		return decimal.Zero
	}
	return final.Round(2)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

type OfferPatch struct {
	Name               *LocalizedText   `json:"name"`
	Description        *LocalizedText   `json:"description"`
	CarID              *int64           `json:"car_id"`
	CarVariantID       *int64           `json:"car_variant_id"`
	ApplyToAllVariants *bool            `json:"apply_to_all_variants"`
	StartDate          *time.Time       `json:"start_date"`
	EndDate            *time.Time       `json:"end_date"`
	DiscountType       *DiscountType    `json:"discount_type"`
	DiscountValue      *decimal.Decimal `json:"discount_value"`
	OfferTag           *OfferTag        `json:"offer_tag"`
}

func (d OfferData) Apply(p OfferPatch) OfferData {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.CarID != nil {
		d.CarID = *p.CarID
	}
	if p.CarVariantID != nil {
		d.CarVariantID = *p.CarVariantID
	}
	if p.ApplyToAllVariants != nil {
		d.ApplyToAllVariants = *p.ApplyToAllVariants
	}
	if p.StartDate != nil {
		d.StartDate = truncateDay(*p.StartDate)
	}
	if p.EndDate != nil {
		d.EndDate = truncateDay(*p.EndDate)
	}
	if p.DiscountType != nil {
		d.DiscountType = *p.DiscountType
	}
	if p.DiscountValue != nil {
		d.DiscountValue = *p.DiscountValue
	}
	if p.OfferTag != nil {
		d.OfferTag = *p.OfferTag
	}
	return d
}
