package dto

import "encoding/json"

type Offer struct {
	ID                 ID              `json:"id"`
	Name               json.RawMessage `json:"name"`
	Description        json.RawMessage `json:"description"`
	CarID              Ref             `json:"car_id"`
	CarVariantID       Ref             `json:"car_variant_id"`
	ApplyToAllVariants bool            `json:"apply_to_all_variants"`
	StartDate          Text            `json:"start_date"`
	EndDate            Text            `json:"end_date"`
	DiscountType       Text            `json:"discount_type"`
	DiscountValue      Money           `json:"discount_value"`
	OriginalPrice      Money           `json:"original_price"`
	FinalPrice         Money           `json:"final_price"`
	IsActive           bool            `json:"is_active"`
	OfferTag           Text            `json:"offer_tag"`
	BannerURL          Text            `json:"banner_url"`
}
