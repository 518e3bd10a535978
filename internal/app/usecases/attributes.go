package usecases

import (
	"context"
	"strings"

	"dealership-backoffice/internal/adapters/odoo"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

const copySuffix = " (Copy)"

type AttributeController struct {
	attributes odoo.AttributeService
	values     odoo.AttributeValueService
	reporter   reporter
	logger     logging.LoggerService
	notifier   Notifier
}

func NewAttributeController(attributes odoo.AttributeService, values odoo.AttributeValueService, notifier Notifier, logger logging.LoggerService) *AttributeController {
	return &AttributeController{
		attributes: attributes,
		values:     values,
		reporter:   newReporter(notifier, logger),
		logger:     logger,
		notifier:   notifier,
	}
}

func (c *AttributeController) List(ctx context.Context, filter model.AttributeFilter) ([]model.Attribute, error) {
	attrs, err := c.attributes.ListAttributes(ctx, filter)
	if err != nil {
		c.reporter.failure("attributes", "load", 0, err)
		return nil, err
	}
	return attrs, nil
}

func (c *AttributeController) Get(ctx context.Context, id int64) (model.Attribute, error) {
	attr, err := c.attributes.GetAttribute(ctx, id)
	if err != nil {
		c.reporter.failure("attribute", "load", id, err)
		return model.Attribute{}, err
	}
	return attr, nil
}

// Values opens the value set of an attribute; onChange fires after each accepted mutation.
func (c *AttributeController) Values(attr model.Attribute, onChange func()) *ValueSet {
	return NewValueSet(attr, c.values, c.notifier, c.logger, onChange)
}

func (c *AttributeController) Create(ctx context.Context, draft model.AttributeDraft) (model.Attribute, error) {
	draft = normalizeAttributeDraft(draft)
	if err := validateAttributeDraft(draft); err != nil {
		c.reporter.failure("attribute", "create", 0, err)
		return model.Attribute{}, err
	}

	created, err := c.attributes.CreateAttribute(ctx, draft)
	if err != nil {
		c.reporter.failure("attribute", "create", 0, err)
		return model.Attribute{}, err
	}
	c.reporter.success("attribute", "create", created.ID, "Attribute created successfully")
	return created, nil
}

func (c *AttributeController) Update(ctx context.Context, id int64, patch model.AttributePatch) error {
	errs := make(map[string]string)
	if patch.Name != nil && patch.Name.IsBlank() {
		errs["name"] = "Attribute name is required"
	}
	if patch.DisplayType != nil && !patch.DisplayType.Valid() {
		errs["display_type"] = "Display type is invalid"
	}
	if patch.FilterPriority != nil && *patch.FilterPriority < 0 {
		errs["filter_priority"] = "Filter priority must be at least 0"
	}
	if err := validationError(errs); err != nil {
		c.reporter.failure("attribute", "update", id, err)
		return err
	}

	if err := c.attributes.UpdateAttribute(ctx, id, patch); err != nil {
		c.reporter.failure("attribute", "update", id, err)
		return err
	}
	c.reporter.success("attribute", "update", id, "Attribute updated successfully")
	return nil
}

func (c *AttributeController) Delete(ctx context.Context, id int64, confirmer Confirmer) error {
	if err := confirm(ctx, confirmer, "Are you sure you want to delete this attribute?"); err != nil {
		return err
	}
	if err := c.attributes.DeleteAttribute(ctx, id); err != nil {
		c.reporter.failure("attribute", "delete", id, err)
		return err
	}
	c.reporter.success("attribute", "delete", id, "Attribute deleted successfully")
	return nil
}

// Duplicate creates a copy with the visibility flags cleared. Values stay with the source.
func (c *AttributeController) Duplicate(ctx context.Context, id int64) (model.Attribute, error) {
	src, err := c.attributes.GetAttribute(ctx, id)
	if err != nil {
		c.reporter.failure("attribute", "duplicate", id, err)
		return model.Attribute{}, err
	}

	displayName := src.DisplayName
	if displayName.IsBlank() {
		displayName = src.Name
	}
	draft := model.AttributeDraft{
		Name:             src.Name.WithSuffix(copySuffix),
		DisplayName:      displayName.WithSuffix(copySuffix),
		Description:      src.Description,
		DisplayType:      src.DisplayType,
		CategoryType:     src.CategoryType,
		AllowMultiSelect: src.AllowMultiSelect,
		FilterPriority:   src.FilterPriority,
		EditWidget:       src.EditWidget,
		Icon:             src.Icon,
		CarInfoIcon:      src.CarInfoIcon,
	}
	draft = normalizeAttributeDraft(draft)
	if err := validateAttributeDraft(draft); err != nil {
		c.reporter.failure("attribute", "duplicate", id, err)
		return model.Attribute{}, err
	}

	created, err := c.attributes.CreateAttribute(ctx, draft)
	if err != nil {
		c.reporter.failure("attribute", "duplicate", id, err)
		return model.Attribute{}, err
	}
	c.reporter.success("attribute", "duplicate", created.ID, "Attribute duplicated successfully")
	return created, nil
}

func (c *AttributeController) ToggleKeyAttribute(ctx context.Context, id int64) (bool, error) {
	return c.toggle(ctx, id, func(a model.Attribute) bool { return a.IsKeyAttribute }, func(p *model.AttributePatch, v *bool) { p.IsKeyAttribute = v })
}

func (c *AttributeController) ToggleFilterable(ctx context.Context, id int64) (bool, error) {
	return c.toggle(ctx, id, func(a model.Attribute) bool { return a.IsFilterable }, func(p *model.AttributePatch, v *bool) { p.IsFilterable = v })
}

func (c *AttributeController) toggle(ctx context.Context, id int64, get func(model.Attribute) bool, set func(*model.AttributePatch, *bool)) (bool, error) {
	attr, err := c.attributes.GetAttribute(ctx, id)
	if err != nil {
		c.reporter.failure("attribute", "update", id, err)
		return false, err
	}
	next := !get(attr)
	var patch model.AttributePatch
	set(&patch, &next)
	if err := c.attributes.UpdateAttribute(ctx, id, patch); err != nil {
		c.reporter.failure("attribute", "update", id, err)
		return get(attr), err
	}
	c.reporter.success("attribute", "update", id, "Attribute updated successfully")
	return next, nil
}

// AssignCategory moves an attribute under the category identified by key.
func (c *AttributeController) AssignCategory(ctx context.Context, id int64, categoryKey string) error {
	key := strings.TrimSpace(categoryKey)
	return c.Update(ctx, id, model.AttributePatch{CategoryType: &key})
}

func (c *AttributeController) Statistics(ctx context.Context) (model.AttributeStatistics, error) {
	attrs, err := c.List(ctx, model.AttributeFilter{})
	if err != nil {
		return model.AttributeStatistics{}, err
	}
	var stats model.AttributeStatistics
	stats.Total = len(attrs)
	for _, a := range attrs {
		if a.IsFilterable {
			stats.Filterable++
		}
		if a.IsKeyAttribute {
			stats.Key++
		}
		if a.IsWebsiteSpec {
			stats.WebsiteSpec++
		}
		if a.DisplayInCarInfo {
			stats.CarInfo++
		}
		if a.Active {
			stats.Active++
		}
		stats.ValuesTotal += len(a.Values)
	}
	return stats, nil
}

func normalizeAttributeDraft(d model.AttributeDraft) model.AttributeDraft {
	if d.DisplayName.IsBlank() {
		d.DisplayName = d.Name
	}
	if d.DisplayType == "" {
		d.DisplayType = model.DisplaySelect
	}
	if d.FilterPriority == 0 {
		d.FilterPriority = model.DefaultFilterPriority
	}
	return d
}

func validateAttributeDraft(d model.AttributeDraft) error {
	errs := validateStruct(d)
	if d.Name.IsBlank() {
		errs["name"] = "Attribute name is required"
	}
	return validationError(errs)
}
