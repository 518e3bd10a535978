package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOfferStatus(t *testing.T) {
	offer := Offer{IsActive: true, StartDate: day("2024-01-10"), EndDate: day("2024-01-20")}
	assert.Equal(t, OfferUpcoming, offer.Status(day("2024-01-09")))
	assert.Equal(t, OfferActive, offer.Status(day("2024-01-10")))
	assert.Equal(t, OfferActive, offer.Status(day("2024-01-20").Add(23*time.Hour)))
	assert.Equal(t, OfferExpired, offer.Status(day("2024-01-21")))

	offer.IsActive = false
	assert.Equal(t, OfferExpired, offer.Status(day("2024-01-15")))
}

func TestOfferFinalPrice(t *testing.T) {
	original := decimal.NewFromInt(100000)

	fixed := OfferData{DiscountType: DiscountFixed, DiscountValue: decimal.NewFromInt(5000)}
	assert.True(t, fixed.FinalPrice(original).Equal(decimal.NewFromInt(95000)))

	pct := OfferData{DiscountType: DiscountPercentage, DiscountValue: decimal.NewFromInt(10)}
	assert.True(t, pct.FinalPrice(original).Equal(decimal.NewFromInt(90000)))

	tooMuch := OfferData{DiscountType: DiscountFixed, DiscountValue: decimal.NewFromInt(200000)}
	assert.True(t, tooMuch.FinalPrice(original).IsZero())
}

func TestNewOfferDataDefaults(t *testing.T) {
	data := NewOfferData(time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, DiscountFixed, data.DiscountType)
	assert.Equal(t, TagSpecial, data.OfferTag)
	assert.Equal(t, day("2024-03-01"), data.StartDate)
	assert.Equal(t, day("2024-03-31"), data.EndDate)
}

func TestCarPriceWithVAT(t *testing.T) {
	data := NewCarData()
	data.CashPrice = decimal.RequireFromString("100000.50")
	assert.Equal(t, "115000.58", data.PriceWithVAT().StringFixed(2))
}
