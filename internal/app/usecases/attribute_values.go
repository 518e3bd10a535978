package usecases

import (
	"context"
	"strings"
	"sync"

	"dealership-backoffice/internal/adapters/odoo"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"

	"github.com/shopspring/decimal"
)

const FallbackSwatchColor = "#6B7280"

type PaletteColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// PredefinedColors is the quick-pick palette offered for color attributes.
var PredefinedColors = []PaletteColor{
	{Name: "Red", Hex: "#EF4444"},
	{Name: "Orange", Hex: "#F97316"},
	{Name: "Yellow", Hex: "#EAB308"},
	{Name: "Green", Hex: "#22C55E"},
	{Name: "Blue", Hex: "#3B82F6"},
	{Name: "Indigo", Hex: "#6366F1"},
	{Name: "Purple", Hex: "#A855F7"},
	{Name: "Pink", Hex: "#EC4899"},
	{Name: "Gray", Hex: "#6B7280"},
	{Name: "Black", Hex: "#000000"},
	{Name: "White", Hex: "#FFFFFF"},
	{Name: "Silver", Hex: "#C0C0C0"},
	{Name: "Gold", Hex: "#FFD700"},
	{Name: "Bronze", Hex: "#CD7F32"},
}

type ValueDisplayKind string

const (
	ValueSwatch    ValueDisplayKind = "swatch"
	ValueThumbnail ValueDisplayKind = "thumbnail"
	ValueText      ValueDisplayKind = "text"
)

type ValueDisplay struct {
	Kind     ValueDisplayKind `json:"kind"`
	Text     string           `json:"text"`
	Color    string           `json:"color,omitempty"`
	ImageURL string           `json:"image_url,omitempty"`
}

// DisplayFor decides how a value renders under its attribute's display type.
func DisplayFor(value model.AttributeValue, displayType model.DisplayType, locale model.Locale) ValueDisplay {
	text := strings.TrimSpace(value.DisplayValue)
	if text == "" {
		text = value.Name.Resolve(locale)
	}

	switch displayType {
	case model.DisplayColor:
		color := strings.TrimSpace(value.HTMLColor)
		if color == "" {
			color = FallbackSwatchColor
		}
		return ValueDisplay{Kind: ValueSwatch, Text: text, Color: color}
	case model.DisplayImage:
		if isResolvableImage(value.Image) {
			return ValueDisplay{Kind: ValueThumbnail, Text: text, ImageURL: strings.TrimSpace(value.Image)}
		}
	}
	return ValueDisplay{Kind: ValueText, Text: text}
}

func isResolvableImage(src string) bool {
	src = strings.ToLower(strings.TrimSpace(src))
	return strings.HasPrefix(src, "http://") ||
		strings.HasPrefix(src, "https://") ||
		strings.HasPrefix(src, "data:")
}

// ValueSet holds the ordered values of one attribute. Local state only
// changes after the backend accepted the mutation.
type ValueSet struct {
	attributeID int64
	displayType model.DisplayType
	service     odoo.AttributeValueService
	reporter    reporter
	onChange    func()

	mu     sync.RWMutex
	values []model.AttributeValue
}

func NewValueSet(attribute model.Attribute, service odoo.AttributeValueService, notifier Notifier, logger logging.LoggerService, onChange func()) *ValueSet {
	return &ValueSet{
		attributeID: attribute.ID,
		displayType: attribute.DisplayType,
		service:     service,
		reporter:    newReporter(notifier, logger),
		onChange:    onChange,
		values:      append([]model.AttributeValue(nil), attribute.Values...),
	}
}

func (s *ValueSet) Values() []model.AttributeValue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.AttributeValue(nil), s.values...)
}

func (s *ValueSet) Display(value model.AttributeValue, locale model.Locale) ValueDisplay {
	return DisplayFor(value, s.displayType, locale)
}

// Load replaces the set with the backend's list, kept in backend order.
func (s *ValueSet) Load(ctx context.Context) error {
	values, err := s.service.ListValues(ctx, s.attributeID)
	if err != nil {
		s.reporter.failure("attribute values", "load", s.attributeID, err)
		return err
	}
	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
	return nil
}

func (s *ValueSet) Add(ctx context.Context, draft model.AttributeValueDraft) (model.AttributeValue, error) {
	errs := validateStruct(draft)
	if draft.Name.IsBlank() {
		errs["name"] = "Value name is required"
	}
	if err := validationError(errs); err != nil {
		s.reporter.failure("attribute value", "create", 0, err)
		return model.AttributeValue{}, err
	}

	s.mu.RLock()
	n := len(s.values)
	s.mu.RUnlock()
	if draft.Sequence == 0 {
		draft.Sequence = (n + 1) * 10
	}

	created, err := s.service.CreateValue(ctx, s.attributeID, draft)
	if err != nil {
		s.reporter.failure("attribute value", "create", 0, err)
		return model.AttributeValue{}, err
	}

	s.mu.Lock()
	s.values = append(s.values, created)
	s.mu.Unlock()
	s.reporter.success("attribute value", "create", created.ID, "Value added successfully")
	s.refresh()
	return created, nil
}

func (s *ValueSet) Update(ctx context.Context, valueID int64, patch model.AttributeValuePatch) (model.AttributeValue, error) {
	if patch.Name != nil && patch.Name.IsBlank() {
		err := model.NewValidationError("name", "Value name is required")
		s.reporter.failure("attribute value", "update", valueID, err)
		return model.AttributeValue{}, err
	}
	if patch.HTMLColor != nil && *patch.HTMLColor != "" {
		if err := validate.Var(*patch.HTMLColor, "hexcolor"); err != nil {
			verr := model.NewValidationError("html_color", "HTML color must be a hex color")
			s.reporter.failure("attribute value", "update", valueID, verr)
			return model.AttributeValue{}, verr
		}
	}

	updated, err := s.service.UpdateValue(ctx, valueID, patch)
	if err != nil {
		s.reporter.failure("attribute value", "update", valueID, err)
		return model.AttributeValue{}, err
	}

	s.mu.Lock()
	for i := range s.values {
		if s.values[i].ID == valueID {
			if updated.ID == 0 {
				updated = s.values[i].Apply(patch)
			}
			s.values[i] = updated
			break
		}
	}
	s.mu.Unlock()
	s.reporter.success("attribute value", "update", valueID, "Value updated successfully")
	s.refresh()
	return updated, nil
}

func (s *ValueSet) SetCustom(ctx context.Context, valueID int64, custom bool) (model.AttributeValue, error) {
	return s.Update(ctx, valueID, model.AttributeValuePatch{IsCustom: &custom})
}

func (s *ValueSet) UpdatePrice(ctx context.Context, valueID int64, price decimal.Decimal) (model.AttributeValue, error) {
	return s.Update(ctx, valueID, model.AttributeValuePatch{DefaultExtraPrice: &price})
}

func (s *ValueSet) Remove(ctx context.Context, valueID int64, confirmer Confirmer) error {
	if err := confirm(ctx, confirmer, "Are you sure you want to delete this value?"); err != nil {
		return err
	}
	if err := s.service.DeleteValue(ctx, valueID); err != nil {
		s.reporter.failure("attribute value", "delete", valueID, err)
		return err
	}

	s.mu.Lock()
	for i := range s.values {
		if s.values[i].ID == valueID {
			s.values = append(s.values[:i], s.values[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.reporter.success("attribute value", "delete", valueID, "Value deleted successfully")
	s.refresh()
	return nil
}

func (s *ValueSet) refresh() {
	if s.onChange != nil {
		s.onChange()
	}
}
