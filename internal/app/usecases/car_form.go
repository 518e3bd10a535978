package usecases

import (
	"context"
	"math"
	"slices"

	"dealership-backoffice/internal/adapters/odoo"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"

	"github.com/shopspring/decimal"
)

const validCompletion = 80

var carStatuses = []model.CarStatus{model.CarDraft, model.CarAvailable, model.CarReserved, model.CarSold}

type CarForm struct {
	formState
	cars     odoo.CarService
	reporter reporter

	id   int64
	data model.CarData
}

func NewCarForm(cars odoo.CarService, notifier Notifier, logger logging.LoggerService) *CarForm {
	f := &CarForm{cars: cars, reporter: newReporter(notifier, logger), data: model.NewCarData()}
	f.errors = validateCar(f.data)
	return f
}

func EditCarForm(car model.Car, cars odoo.CarService, notifier Notifier, logger logging.LoggerService) *CarForm {
	f := NewCarForm(cars, notifier, logger)
	f.id = car.ID
	f.data = car.Data()
	f.errors = validateCar(f.data)
	return f
}

func (f *CarForm) ID() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id
}

func (f *CarForm) Data() model.CarData {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.data
	d.ColorIDs = append([]int64(nil), f.data.ColorIDs...)
	return d
}

// UpdateData merges patch. A new brand clears model, trim, year and colors;
// a new model clears trim and year; a new trim clears year. Fields in the
// same patch are applied after the cascade, parents first.
func (f *CarForm) UpdateData(patch model.CarPatch) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = applyCarPatch(f.data, patch)
	f.dirty = true
	f.errors = validateCar(f.data)
}

func applyCarPatch(d model.CarData, p model.CarPatch) model.CarData {
	if p.BrandID != nil && *p.BrandID != d.BrandID {
		d.BrandID = *p.BrandID
		d.ModelID, d.TrimID, d.YearID = 0, 0, 0
		d.ColorIDs = nil
		d.PrimaryColorID = 0
	}
	if p.ModelID != nil && *p.ModelID != d.ModelID {
		d.ModelID = *p.ModelID
		d.TrimID, d.YearID = 0, 0
	}
	if p.TrimID != nil && *p.TrimID != d.TrimID {
		d.TrimID = *p.TrimID
		d.YearID = 0
	}
	if p.YearID != nil {
		d.YearID = *p.YearID
	}
	if p.ColorIDs != nil {
		d.ColorIDs = append([]int64(nil), (*p.ColorIDs)...)
	}
	if p.PrimaryColorID != nil {
		d.PrimaryColorID = *p.PrimaryColorID
	}
	d.PrimaryColorID = primaryColor(d.ColorIDs, d.PrimaryColorID)

	if p.CashPrice != nil {
		d.CashPrice = *p.CashPrice
	}
	if p.FinancePrice != nil {
		d.FinancePrice = *p.FinancePrice
	}
	if p.VATPercentage != nil {
		d.VATPercentage = *p.VATPercentage
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.Active != nil {
		d.Active = *p.Active
	}
	if p.IsFeatured != nil {
		d.IsFeatured = *p.IsFeatured
	}
	if p.Sequence != nil {
		d.Sequence = *p.Sequence
	}
	return d
}

// primaryColor keeps current when still selected, else falls back to the first color.
func primaryColor(colors []int64, current int64) int64 {
	if current != 0 && slices.Contains(colors, current) {
		return current
	}
	if len(colors) > 0 {
		return colors[0]
	}
	return 0
}

func validateCar(d model.CarData) map[string]string {
	errs := make(map[string]string)
	if d.BrandID == 0 {
		errs["brand_id"] = "Brand is required"
	}
	if d.ModelID == 0 {
		errs["model_id"] = "Model is required"
	}
	if d.TrimID == 0 {
		errs["trim_id"] = "Trim is required"
	}
	if d.YearID == 0 {
		errs["year_id"] = "Year is required"
	}
	if d.CashPrice.IsNegative() {
		errs["cash_price"] = "Cash price must be positive"
	}
	if d.FinancePrice.IsNegative() {
		errs["finance_price"] = "Finance price must be positive"
	}
	if d.VATPercentage.IsNegative() || d.VATPercentage.GreaterThan(decimal.NewFromInt(100)) {
		errs["vat_percentage"] = "VAT must be between 0 and 100"
	}
	if len(d.ColorIDs) == 0 {
		errs["color_ids"] = "At least one color must be selected"
	}
	if d.Status != "" && !slices.Contains(carStatuses, d.Status) {
		errs["status"] = "Status is invalid"
	}
	return errs
}

// CompletionPercentage counts the four required selectors and three optional fields.
func (f *CarForm) CompletionPercentage() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return carCompletion(f.data)
}

func carCompletion(d model.CarData) int {
	checks := []bool{
		d.BrandID != 0,
		d.ModelID != 0,
		d.TrimID != 0,
		d.YearID != 0,
		len(d.ColorIDs) > 0,
		d.CashPrice.IsPositive(),
		d.FinancePrice.IsPositive(),
	}
	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}
	return int(math.Round(float64(filled) * 100 / float64(len(checks))))
}

func (f *CarForm) IsValid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errors) == 0 && carCompletion(f.data) >= validCompletion
}

func (f *CarForm) PriceWithVAT() decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.PriceWithVAT()
}

// NamePreview returns the name the backend would generate, or the default
// name until brand, model, trim and year are all chosen.
func (f *CarForm) NamePreview(ctx context.Context) string {
	d := f.Data()
	if d.BrandID == 0 || d.ModelID == 0 || d.TrimID == 0 || d.YearID == 0 {
		return model.DefaultCarName
	}
	name, err := f.cars.NamePreview(ctx, d)
	if err != nil {
		f.reporter.logger.LogWarning("car name preview failed: " + err.Error())
		return model.DefaultCarName
	}
	return name
}

func (f *CarForm) Save(ctx context.Context) Result[model.Car] {
	f.mu.Lock()
	f.errors = validateCar(f.data)
	if len(f.errors) > 0 {
		errs, id := copyErrors(f.errors), f.id
		f.mu.Unlock()
		f.reporter.failure("car", "save", id, &model.ValidationError{Fields: errs})
		return invalidResult(model.Car{}, errs)
	}
	if err := f.beginSave(); err != nil {
		f.mu.Unlock()
		return busyResult(model.Car{})
	}
	id := f.id
	data := f.data
	data.ColorIDs = append([]int64(nil), f.data.ColorIDs...)
	f.mu.Unlock()

	var (
		car    model.Car
		err    error
		action = "update"
	)
	if id == 0 {
		action = "create"
		car, err = f.cars.CreateCar(ctx, data)
	} else {
		car, err = f.cars.UpdateCar(ctx, id, data)
	}
	if err != nil {
		f.endSave(false)
		return Result[model.Car]{Message: f.reporter.failure("car", action, id, err), Err: err}
	}

	f.mu.Lock()
	f.id = car.ID
	f.data = car.Data()
	f.errors = validateCar(f.data)
	f.mu.Unlock()
	f.endSave(true)

	message := "Car updated successfully"
	if action == "create" {
		message = "Car created successfully"
	}
	f.reporter.success("car", action, car.ID, message)
	return Result[model.Car]{Success: true, Data: car, Message: message}
}

// CarController serves the car list and opens forms.
type CarController struct {
	cars     odoo.CarService
	reporter reporter
	notifier Notifier
	logger   logging.LoggerService
}

func NewCarController(cars odoo.CarService, notifier Notifier, logger logging.LoggerService) *CarController {
	return &CarController{cars: cars, reporter: newReporter(notifier, logger), notifier: notifier, logger: logger}
}

func (c *CarController) List(ctx context.Context, filter model.CarFilter) ([]model.Car, error) {
	cars, err := c.cars.ListCars(ctx, filter)
	if err != nil {
		c.reporter.failure("cars", "load", 0, err)
		return nil, err
	}
	return cars, nil
}

func (c *CarController) Get(ctx context.Context, id int64) (model.Car, error) {
	car, err := c.cars.GetCar(ctx, id)
	if err != nil {
		c.reporter.failure("car", "load", id, err)
		return model.Car{}, err
	}
	return car, nil
}

func (c *CarController) New() *CarForm {
	return NewCarForm(c.cars, c.notifier, c.logger)
}

func (c *CarController) Open(ctx context.Context, id int64) (*CarForm, error) {
	car, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return EditCarForm(car, c.cars, c.notifier, c.logger), nil
}

// Delete archives the car after confirmation.
func (c *CarController) Delete(ctx context.Context, id int64, confirmer Confirmer) error {
	if err := confirm(ctx, confirmer, "Are you sure you want to delete this car?"); err != nil {
		return err
	}
	if err := c.cars.DeleteCar(ctx, id); err != nil {
		c.reporter.failure("car", "delete", id, err)
		return err
	}
	c.reporter.success("car", "delete", id, "Car deleted successfully")
	return nil
}
