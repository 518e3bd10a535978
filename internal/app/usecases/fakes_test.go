package usecases

import (
	"context"
	"errors"
	"sync"

	"dealership-backoffice/internal/domain/model"
)

var errBackend = &model.BackendRejection{Op: "test", Messages: []string{"boom"}}

type recordingNotifier struct {
	mu    sync.Mutex
	items []model.Notification
}

func (r *recordingNotifier) Notify(n model.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

func (r *recordingNotifier) all() []model.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Notification(nil), r.items...)
}

func (r *recordingNotifier) last() model.Notification {
	items := r.all()
	if len(items) == 0 {
		return model.Notification{}
	}
	return items[len(items)-1]
}

type fakeAttributes struct {
	items   map[int64]model.Attribute
	created []model.AttributeDraft
	patches []model.AttributePatch
	deleted []int64
	calls   int
	err     error
}

func (f *fakeAttributes) ListAttributes(ctx context.Context, filter model.AttributeFilter) ([]model.Attribute, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var res []model.Attribute
	for _, a := range f.items {
		res = append(res, a)
	}
	return res, nil
}

func (f *fakeAttributes) GetAttribute(ctx context.Context, id int64) (model.Attribute, error) {
	f.calls++
	a, ok := f.items[id]
	if !ok {
		return model.Attribute{}, model.ErrNotFound
	}
	return a, nil
}

func (f *fakeAttributes) CreateAttribute(ctx context.Context, draft model.AttributeDraft) (model.Attribute, error) {
	f.calls++
	if f.err != nil {
		return model.Attribute{}, f.err
	}
	f.created = append(f.created, draft)
	return model.Attribute{ID: 100 + int64(len(f.created)), Name: draft.Name, DisplayName: draft.DisplayName, DisplayType: draft.DisplayType}, nil
}

func (f *fakeAttributes) UpdateAttribute(ctx context.Context, id int64, patch model.AttributePatch) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.patches = append(f.patches, patch)
	return nil
}

func (f *fakeAttributes) DeleteAttribute(ctx context.Context, id int64) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeValues struct {
	list    []model.AttributeValue
	created []model.AttributeValueDraft
	patches []model.AttributeValuePatch
	calls   int
	nextID  int64
	err     error
}

func (f *fakeValues) ListValues(ctx context.Context, attributeID int64) ([]model.AttributeValue, error) {
	f.calls++
	return f.list, f.err
}

func (f *fakeValues) CreateValue(ctx context.Context, attributeID int64, draft model.AttributeValueDraft) (model.AttributeValue, error) {
	f.calls++
	if f.err != nil {
		return model.AttributeValue{}, f.err
	}
	f.created = append(f.created, draft)
	f.nextID++
	return model.AttributeValue{ID: f.nextID, AttributeID: attributeID, Name: draft.Name, Sequence: draft.Sequence, HTMLColor: draft.HTMLColor}, nil
}

func (f *fakeValues) UpdateValue(ctx context.Context, valueID int64, patch model.AttributeValuePatch) (model.AttributeValue, error) {
	f.calls++
	if f.err != nil {
		return model.AttributeValue{}, f.err
	}
	f.patches = append(f.patches, patch)
	return model.AttributeValue{}.Apply(patch), nil
}

func (f *fakeValues) DeleteValue(ctx context.Context, valueID int64) error {
	f.calls++
	return f.err
}

type fakeCategories struct {
	items   map[int64]model.AttributeCategory
	created []model.CategoryDraft
	patches []model.CategoryPatch
	filters []model.CategoryFilter
	calls   int
	err     error
}

func (f *fakeCategories) ListCategories(ctx context.Context, filter model.CategoryFilter) ([]model.AttributeCategory, error) {
	f.calls++
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	var res []model.AttributeCategory
	for _, c := range f.items {
		res = append(res, c)
	}
	return res, nil
}

func (f *fakeCategories) GetCategory(ctx context.Context, id int64) (model.AttributeCategory, error) {
	f.calls++
	c, ok := f.items[id]
	if !ok {
		return model.AttributeCategory{}, model.ErrNotFound
	}
	return c, nil
}

func (f *fakeCategories) CreateCategory(ctx context.Context, draft model.CategoryDraft) (model.AttributeCategory, error) {
	f.calls++
	if f.err != nil {
		return model.AttributeCategory{}, f.err
	}
	f.created = append(f.created, draft)
	return model.AttributeCategory{ID: 50, Name: draft.Name, WebsiteURLKey: draft.WebsiteURLKey}, nil
}

func (f *fakeCategories) UpdateCategory(ctx context.Context, id int64, patch model.CategoryPatch) (model.AttributeCategory, error) {
	f.calls++
	if f.err != nil {
		return model.AttributeCategory{}, f.err
	}
	f.patches = append(f.patches, patch)
	return model.AttributeCategory{ID: id}, nil
}

func (f *fakeCategories) DeleteCategory(ctx context.Context, id int64) error {
	f.calls++
	return f.err
}

type templateSave struct {
	id     int64
	fields model.TemplateFields
	lines  []model.LineCommand
}

type fakeTemplates struct {
	items  map[int64]model.SpecificationTemplate
	saves  []templateSave
	calls  int
	err    error
	nextID int64
}

func (f *fakeTemplates) ListTemplates(ctx context.Context, includeInactive bool) ([]model.SpecificationTemplate, error) {
	f.calls++
	var res []model.SpecificationTemplate
	for _, t := range f.items {
		res = append(res, t)
	}
	return res, f.err
}

func (f *fakeTemplates) GetTemplate(ctx context.Context, id int64) (model.SpecificationTemplate, error) {
	f.calls++
	t, ok := f.items[id]
	if !ok {
		return model.SpecificationTemplate{}, model.ErrNotFound
	}
	return t, nil
}

// SaveTemplate applies the commands the way the backend would.
func (f *fakeTemplates) SaveTemplate(ctx context.Context, id int64, fields model.TemplateFields, cmds []model.LineCommand) (model.SpecificationTemplate, error) {
	f.calls++
	f.saves = append(f.saves, templateSave{id: id, fields: fields, lines: cmds})
	if f.err != nil {
		return model.SpecificationTemplate{}, f.err
	}
	if f.items == nil {
		f.items = map[int64]model.SpecificationTemplate{}
	}
	var lines []model.SpecificationLine
	if id != 0 {
		lines = append(lines, f.items[id].Lines...)
	} else {
		f.nextID++
		id = 900 + f.nextID
	}
	for _, cmd := range cmds {
		switch cmd.Op {
		case model.LineCreate:
			f.nextID++
			line := cmd.Line
			line.ID = 1000 + f.nextID
			lines = append(lines, line)
		case model.LineUpdate:
			for i := range lines {
				if lines[i].ID == cmd.ID {
					line := cmd.Line
					line.ID = cmd.ID
					lines[i] = line
				}
			}
		case model.LineDelete:
			for i := range lines {
				if lines[i].ID == cmd.ID {
					lines = append(lines[:i], lines[i+1:]...)
					break
				}
			}
		}
	}
	t := model.SpecificationTemplate{
		ID:           id,
		Name:         fields.Name,
		DisplayName:  fields.DisplayName,
		DisplayStyle: fields.DisplayStyle,
		IsDefault:    fields.IsDefault,
		Active:       fields.Active,
		Lines:        lines,
	}
	f.items[id] = t
	return t, nil
}

func (f *fakeTemplates) UpdateTemplateFlags(ctx context.Context, id int64, isDefault *bool, websiteVisible *bool) error {
	f.calls++
	return f.err
}

func (f *fakeTemplates) DeleteTemplate(ctx context.Context, id int64) error {
	f.calls++
	return f.err
}

type fakeCars struct {
	mu      sync.Mutex
	created []model.CarData
	updated []model.CarData
	calls   int
	err     error
	block   chan struct{}
	started chan struct{}
}

func (f *fakeCars) ListCars(ctx context.Context, filter model.CarFilter) ([]model.Car, error) {
	return nil, f.err
}

func (f *fakeCars) GetCar(ctx context.Context, id int64) (model.Car, error) {
	return model.Car{}, model.ErrNotFound
}

func (f *fakeCars) CreateCar(ctx context.Context, data model.CarData) (model.Car, error) {
	f.mu.Lock()
	f.calls++
	f.created = append(f.created, data)
	f.mu.Unlock()
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return model.Car{}, f.err
	}
	return carFromData(77, data), nil
}

func (f *fakeCars) UpdateCar(ctx context.Context, id int64, data model.CarData) (model.Car, error) {
	f.mu.Lock()
	f.calls++
	f.updated = append(f.updated, data)
	f.mu.Unlock()
	if f.err != nil {
		return model.Car{}, f.err
	}
	return carFromData(id, data), nil
}

func (f *fakeCars) DeleteCar(ctx context.Context, id int64) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.err
}

func (f *fakeCars) NamePreview(ctx context.Context, data model.CarData) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "Toyota Camry GLE 2025", nil
}

func carFromData(id int64, d model.CarData) model.Car {
	return model.Car{
		ID:             id,
		BrandID:        d.BrandID,
		ModelID:        d.ModelID,
		TrimID:         d.TrimID,
		YearID:         d.YearID,
		ColorIDs:       d.ColorIDs,
		PrimaryColorID: d.PrimaryColorID,
		CashPrice:      d.CashPrice,
		FinancePrice:   d.FinancePrice,
		VATPercentage:  d.VATPercentage,
		Status:         d.Status,
		Active:         d.Active,
		Sequence:       d.Sequence,
	}
}

type fakeOffers struct {
	created []model.OfferData
	banners []*model.Upload
	active  map[int64]bool
	calls   int
	err     error
	list    []model.Offer
}

func (f *fakeOffers) ListOffers(ctx context.Context, includeInactive bool) ([]model.Offer, error) {
	f.calls++
	return f.list, f.err
}

func (f *fakeOffers) GetOffer(ctx context.Context, id int64) (model.Offer, error) {
	return model.Offer{}, model.ErrNotFound
}

func (f *fakeOffers) CreateOffer(ctx context.Context, data model.OfferData, banner *model.Upload) (model.Offer, error) {
	f.calls++
	if f.err != nil {
		return model.Offer{}, f.err
	}
	f.created = append(f.created, data)
	f.banners = append(f.banners, banner)
	return model.Offer{ID: 5, Name: data.Name, StartDate: data.StartDate, EndDate: data.EndDate, DiscountType: data.DiscountType, OfferTag: data.OfferTag, IsActive: true}, nil
}

func (f *fakeOffers) UpdateOffer(ctx context.Context, id int64, data model.OfferData, banner *model.Upload) (model.Offer, error) {
	f.calls++
	return model.Offer{ID: id, Name: data.Name, StartDate: data.StartDate, EndDate: data.EndDate, DiscountType: data.DiscountType, OfferTag: data.OfferTag}, f.err
}

func (f *fakeOffers) SetOfferActive(ctx context.Context, id int64, active bool) error {
	f.calls++
	if f.active == nil {
		f.active = map[int64]bool{}
	}
	f.active[id] = active
	return f.err
}

func (f *fakeOffers) DeleteOffer(ctx context.Context, id int64) error {
	f.calls++
	return f.err
}

func (f *fakeOffers) RemoveBanner(ctx context.Context, id int64) error {
	f.calls++
	return f.err
}

type fakeMedia struct {
	created []model.MediaData
	flags   []map[string]bool
	orders  [][]model.MediaSequence
	calls   int
	err     error
}

func (f *fakeMedia) ListMedia(ctx context.Context, filter model.MediaFilter) ([]model.Media, error) {
	return nil, f.err
}

func (f *fakeMedia) GetMedia(ctx context.Context, id int64) (model.Media, error) {
	return model.Media{}, model.ErrNotFound
}

func (f *fakeMedia) CreateMedia(ctx context.Context, data model.MediaData) (model.Media, error) {
	f.calls++
	if f.err != nil {
		return model.Media{}, f.err
	}
	f.created = append(f.created, data)
	return model.Media{ID: 8, CarID: data.CarID, MediaType: data.MediaType, ContentType: data.ContentType, VideoURL: data.URL, ImageURL: "https://cdn/x.png"}, nil
}

func (f *fakeMedia) UpdateMedia(ctx context.Context, id int64, data model.MediaData) (model.Media, error) {
	f.calls++
	return model.Media{ID: id, CarID: data.CarID, MediaType: data.MediaType, ContentType: data.ContentType}, f.err
}

func (f *fakeMedia) UpdateMediaFlags(ctx context.Context, id int64, flags map[string]bool) error {
	f.calls++
	f.flags = append(f.flags, flags)
	return f.err
}

func (f *fakeMedia) DeleteMedia(ctx context.Context, id int64) error {
	f.calls++
	return f.err
}

func (f *fakeMedia) BulkUpdateSequence(ctx context.Context, updates []model.MediaSequence) error {
	f.calls++
	f.orders = append(f.orders, updates)
	return f.err
}

type fakeSettings struct {
	current *model.SystemSettings
	saved   []model.SystemSettings
	err     error
}

func (f *fakeSettings) GetSettings(ctx context.Context) (model.SystemSettings, error) {
	if f.err != nil {
		return model.SystemSettings{}, f.err
	}
	if f.current == nil {
		return model.SystemSettings{}, model.ErrNotFound
	}
	return *f.current, nil
}

func (f *fakeSettings) SaveSettings(ctx context.Context, s model.SystemSettings) (model.SystemSettings, error) {
	if f.err != nil {
		return model.SystemSettings{}, f.err
	}
	f.saved = append(f.saved, s)
	if s.ID == 0 {
		s.ID = 1
	}
	return s, nil
}

type fakeReferences struct {
	failYears bool
}

func (f *fakeReferences) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return []model.Brand{{ID: 1, Name: model.PlainText("Toyota")}}, nil
}

func (f *fakeReferences) ListModels(ctx context.Context, brandID int64) ([]model.CarModel, error) {
	return []model.CarModel{{ID: 2, BrandID: brandID}}, nil
}

func (f *fakeReferences) ListTrims(ctx context.Context, modelID int64) ([]model.Trim, error) {
	return []model.Trim{{ID: 3, ModelID: modelID}}, nil
}

func (f *fakeReferences) ListYears(ctx context.Context) ([]model.Year, error) {
	if f.failYears {
		return nil, errors.New("years unavailable")
	}
	return []model.Year{{ID: 4}}, nil
}

func (f *fakeReferences) ListColors(ctx context.Context) ([]model.Color, error) {
	return []model.Color{{ID: 5}}, nil
}

func boolPtr(b bool) *bool    { return &b }
func int64Ptr(n int64) *int64 { return &n }
func textPtr(s string) *model.LocalizedText {
	t := model.PlainText(s)
	return &t
}
