package usecases

import (
	"bytes"
	"context"
	"testing"
	"time"

	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var offerNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func TestNewOfferFormDefaults(t *testing.T) {
	f := NewOfferForm(&fakeOffers{}, offerNow, nil, logging.Nop{})

	d := f.Data()
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), d.StartDate)
	assert.Equal(t, time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC), d.EndDate)
	assert.Equal(t, model.DiscountFixed, d.DiscountType)
	assert.Equal(t, model.TagSpecial, d.OfferTag)
	assert.False(t, f.IsValid())
	assert.Equal(t, "Please fill in offer name in at least one language", f.Errors()["name"])
}

func TestOfferFormDateMessages(t *testing.T) {
	f := NewOfferForm(&fakeOffers{}, offerNow, nil, logging.Nop{})
	same := offerNow
	f.UpdateData(model.OfferPatch{Name: textPtr("Ramadan"), EndDate: &same})
	assert.Equal(t, "End date must be after start date", f.Errors()["end_date"])

	zero := time.Time{}
	f.UpdateData(model.OfferPatch{StartDate: &zero})
	assert.Equal(t, "Please fill in start and end dates", f.Errors()["start_date"])
}

func TestOfferFormDiscountMessages(t *testing.T) {
	f := NewOfferForm(&fakeOffers{}, offerNow, nil, logging.Nop{})
	negative := decimal.NewFromInt(-5)
	f.UpdateData(model.OfferPatch{Name: textPtr("Sale"), DiscountValue: &negative})
	assert.Equal(t, "Discount value must be positive", f.Errors()["discount_value"])

	pct := model.DiscountPercentage
	tooMuch := decimal.NewFromInt(150)
	f.UpdateData(model.OfferPatch{DiscountType: &pct, DiscountValue: &tooMuch})
	assert.Equal(t, "Percentage discount cannot exceed 100", f.Errors()["discount_value"])

	ok := decimal.NewFromInt(20)
	f.UpdateData(model.OfferPatch{DiscountValue: &ok})
	assert.True(t, f.IsValid())
	assert.Equal(t, "80000", f.FinalPrice(decimal.NewFromInt(100000)).String())
}

func TestOfferFormRejectsUnknownTag(t *testing.T) {
	f := NewOfferForm(&fakeOffers{}, offerNow, nil, logging.Nop{})
	tag := model.OfferTag("flash")
	f.UpdateData(model.OfferPatch{Name: textPtr("Sale"), OfferTag: &tag})

	assert.Contains(t, f.Errors()["offer_tag"], "must be one of")
}

func TestOfferFinalPriceNeverNegative(t *testing.T) {
	d := model.OfferData{DiscountType: model.DiscountFixed, DiscountValue: decimal.NewFromInt(500)}
	assert.True(t, d.FinalPrice(decimal.NewFromInt(100)).IsZero())
}

func TestOfferFormSaveWithBanner(t *testing.T) {
	svc := &fakeOffers{}
	notes := &recordingNotifier{}
	f := NewOfferForm(svc, offerNow, notes, logging.Nop{})
	f.UpdateData(model.OfferPatch{Name: textPtr("Summer"), CarID: int64Ptr(3)})
	require.NoError(t, f.SetBanner("banner.png", bytes.NewReader(pngHeader)))

	res := f.Save(context.Background())

	require.True(t, res.Success)
	assert.Equal(t, "Offer created successfully", res.Message)
	assert.Equal(t, int64(5), f.ID())
	require.Len(t, svc.banners, 1)
	require.NotNil(t, svc.banners[0])
	assert.Equal(t, "image/png", svc.banners[0].MimeType)
	assert.Equal(t, int64(5), notes.last().EntityID)
}

func TestOfferFormSaveInvalidMakesNoCall(t *testing.T) {
	svc := &fakeOffers{}
	f := NewOfferForm(svc, offerNow, nil, logging.Nop{})

	res := f.Save(context.Background())

	assert.False(t, res.Success)
	assert.Equal(t, fixValidationMessage, res.Message)
	assert.Zero(t, svc.calls)
}

func TestOfferStatus(t *testing.T) {
	o := model.Offer{IsActive: true, StartDate: offerNow.AddDate(0, 0, 1), EndDate: offerNow.AddDate(0, 0, 5)}
	assert.Equal(t, model.OfferUpcoming, o.Status(offerNow))
	assert.Equal(t, model.OfferActive, o.Status(offerNow.AddDate(0, 0, 5)))
	assert.Equal(t, model.OfferExpired, o.Status(offerNow.AddDate(0, 0, 6)))

	o.IsActive = false
	assert.Equal(t, model.OfferExpired, o.Status(offerNow.AddDate(0, 0, 2)))
}

func TestOfferControllerSoftDeleteAndReactivate(t *testing.T) {
	svc := &fakeOffers{}
	c := NewOfferController(svc, nil, logging.Nop{})

	assert.ErrorIs(t, c.Delete(context.Background(), 4, Confirmed(false)), model.ErrNotConfirmed)
	assert.Zero(t, svc.calls)

	require.NoError(t, c.Delete(context.Background(), 4, Confirmed(true)))
	assert.False(t, svc.active[4])

	require.NoError(t, c.Reactivate(context.Background(), 4))
	assert.True(t, svc.active[4])
}

func TestExpiredActiveOffers(t *testing.T) {
	svc := &fakeOffers{list: []model.Offer{
		{ID: 1, IsActive: true, StartDate: offerNow.AddDate(0, -2, 0), EndDate: offerNow.AddDate(0, -1, 0)},
		{ID: 2, IsActive: true, StartDate: offerNow.AddDate(0, 0, -1), EndDate: offerNow.AddDate(0, 0, 1)},
		{ID: 3, IsActive: false, StartDate: offerNow.AddDate(0, -2, 0), EndDate: offerNow.AddDate(0, -1, 0)},
	}}
	c := NewOfferController(svc, nil, logging.Nop{})

	expired, err := c.ExpiredActive(context.Background(), offerNow)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, int64(1), expired[0].ID)
}

func TestOfferControllerDeletePermanentlyDeclinedMakesNoCall(t *testing.T) {
	svc := &fakeOffers{}
	notes := &recordingNotifier{}
	c := NewOfferController(svc, notes, logging.Nop{})

	err := c.DeletePermanently(context.Background(), 4, Confirmed(false))

	assert.ErrorIs(t, err, model.ErrNotConfirmed)
	assert.Zero(t, svc.calls)
	assert.Empty(t, notes.all())

	require.NoError(t, c.DeletePermanently(context.Background(), 4, Confirmed(true)))
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "Offer deleted permanently", notes.last().Message)
}
