package usecases

import (
	"context"
	"io"
	"time"

	"dealership-backoffice/internal/adapters/odoo"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"

	"github.com/shopspring/decimal"
)

type OfferForm struct {
	formState
	offers   odoo.OfferService
	reporter reporter

	id     int64
	data   model.OfferData
	banner *model.Upload
}

func NewOfferForm(offers odoo.OfferService, now time.Time, notifier Notifier, logger logging.LoggerService) *OfferForm {
	f := &OfferForm{offers: offers, reporter: newReporter(notifier, logger), data: model.NewOfferData(now)}
	f.errors = validateOffer(f.data)
	return f
}

func EditOfferForm(offer model.Offer, offers odoo.OfferService, notifier Notifier, logger logging.LoggerService) *OfferForm {
	f := &OfferForm{offers: offers, reporter: newReporter(notifier, logger), id: offer.ID, data: offer.Data()}
	f.errors = validateOffer(f.data)
	return f
}

func (f *OfferForm) ID() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id
}

func (f *OfferForm) Data() model.OfferData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *OfferForm) UpdateData(patch model.OfferPatch) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = f.data.Apply(patch)
	f.dirty = true
	f.errors = validateOffer(f.data)
}

// SetBanner stages a new banner image; it is sent with the next Save.
func (f *OfferForm) SetBanner(filename string, r io.Reader) error {
	upload, err := EncodeUpload("banner_image", filename, r, ImagePolicy)
	if err != nil {
		f.reporter.failure("banner", "upload", f.ID(), err)
		return err
	}
	f.mu.Lock()
	f.banner = upload
	f.dirty = true
	f.mu.Unlock()
	return nil
}

func (f *OfferForm) IsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errors) == 0
}

// FinalPrice previews the discounted price of original.
func (f *OfferForm) FinalPrice(original decimal.Decimal) decimal.Decimal {
	return f.Data().FinalPrice(original)
}

func validateOffer(d model.OfferData) map[string]string {
	errs := validateStruct(d)
	if d.Name.IsBlank() {
		errs["name"] = "Please fill in offer name in at least one language"
	}
	switch {
	case d.StartDate.IsZero() || d.EndDate.IsZero():
		errs["start_date"] = "Please fill in start and end dates"
	case !d.EndDate.After(d.StartDate):
		errs["end_date"] = "End date must be after start date"
	}
	if d.DiscountValue.IsNegative() {
		errs["discount_value"] = "Discount value must be positive"
	} else if d.DiscountType == model.DiscountPercentage && d.DiscountValue.GreaterThan(decimal.NewFromInt(100)) {
		errs["discount_value"] = "Percentage discount cannot exceed 100"
	}
	return errs
}

func (f *OfferForm) Save(ctx context.Context) Result[model.Offer] {
	f.mu.Lock()
	f.errors = validateOffer(f.data)
	if len(f.errors) > 0 {
		errs, id := copyErrors(f.errors), f.id
		f.mu.Unlock()
		f.reporter.failure("offer", "save", id, &model.ValidationError{Fields: errs})
		return invalidResult(model.Offer{}, errs)
	}
	if err := f.beginSave(); err != nil {
		f.mu.Unlock()
		return busyResult(model.Offer{})
	}
	id, data, banner := f.id, f.data, f.banner
	f.mu.Unlock()

	var (
		offer  model.Offer
		err    error
		action = "update"
	)
	if id == 0 {
		action = "create"
		offer, err = f.offers.CreateOffer(ctx, data, banner)
	} else {
		offer, err = f.offers.UpdateOffer(ctx, id, data, banner)
	}
	if err != nil {
		f.endSave(false)
		return Result[model.Offer]{Message: f.reporter.failure("offer", action, id, err), Err: err}
	}

	f.mu.Lock()
	f.id = offer.ID
	f.data = offer.Data()
	f.banner = nil
	f.errors = validateOffer(f.data)
	f.mu.Unlock()
	f.endSave(true)

	message := "Offer updated successfully"
	if action == "create" {
		message = "Offer created successfully"
	}
	f.reporter.success("offer", action, offer.ID, message)
	return Result[model.Offer]{Success: true, Data: offer, Message: message}
}

type OfferController struct {
	offers   odoo.OfferService
	reporter reporter
	notifier Notifier
	logger   logging.LoggerService
	now      func() time.Time
}

func NewOfferController(offers odoo.OfferService, notifier Notifier, logger logging.LoggerService) *OfferController {
	return &OfferController{offers: offers, reporter: newReporter(notifier, logger), notifier: notifier, logger: logger, now: time.Now}
}

func (c *OfferController) List(ctx context.Context, includeInactive bool) ([]model.Offer, error) {
	offers, err := c.offers.ListOffers(ctx, includeInactive)
	if err != nil {
		c.reporter.failure("offers", "load", 0, err)
		return nil, err
	}
	return offers, nil
}

func (c *OfferController) Get(ctx context.Context, id int64) (model.Offer, error) {
	offer, err := c.offers.GetOffer(ctx, id)
	if err != nil {
		c.reporter.failure("offer", "load", id, err)
		return model.Offer{}, err
	}
	return offer, nil
}

func (c *OfferController) New() *OfferForm {
	return NewOfferForm(c.offers, c.now(), c.notifier, c.logger)
}

func (c *OfferController) Open(ctx context.Context, id int64) (*OfferForm, error) {
	offer, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return EditOfferForm(offer, c.offers, c.notifier, c.logger), nil
}

// Delete deactivates the offer; it can be brought back with Reactivate.
func (c *OfferController) Delete(ctx context.Context, id int64, confirmer Confirmer) error {
	if err := confirm(ctx, confirmer, "Are you sure you want to deactivate this offer?"); err != nil {
		return err
	}
	if err := c.offers.SetOfferActive(ctx, id, false); err != nil {
		c.reporter.failure("offer", "delete", id, err)
		return err
	}
	c.reporter.success("offer", "delete", id, "Offer deactivated successfully")
	return nil
}

func (c *OfferController) Reactivate(ctx context.Context, id int64) error {
	if err := c.offers.SetOfferActive(ctx, id, true); err != nil {
		c.reporter.failure("offer", "reactivate", id, err)
		return err
	}
	c.reporter.success("offer", "reactivate", id, "Offer reactivated successfully")
	return nil
}

func (c *OfferController) DeletePermanently(ctx context.Context, id int64, confirmer Confirmer) error {
	if err := confirm(ctx, confirmer, "This offer will be removed permanently. Continue?"); err != nil {
		return err
	}
	if err := c.offers.DeleteOffer(ctx, id); err != nil {
		c.reporter.failure("offer", "delete", id, err)
		return err
	}
	c.reporter.success("offer", "delete", id, "Offer deleted permanently")
	return nil
}

func (c *OfferController) RemoveBanner(ctx context.Context, id int64) error {
	if err := c.offers.RemoveBanner(ctx, id); err != nil {
		c.reporter.failure("banner", "remove", id, err)
		return err
	}
	c.reporter.success("offer", "update", id, "Banner removed successfully")
	return nil
}

// ExpiredActive lists offers still flagged active whose window already closed.
func (c *OfferController) ExpiredActive(ctx context.Context, now time.Time) ([]model.Offer, error) {
	offers, err := c.List(ctx, false)
	if err != nil {
		return nil, err
	}
	var expired []model.Offer
	for _, o := range offers {
		if o.IsActive && o.Status(now) == model.OfferExpired {
			expired = append(expired, o)
		}
	}
	return expired, nil
}
