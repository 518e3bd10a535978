package usecases

import (
	"context"

	"dealership-backoffice/internal/adapters/odoo"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

type TemplateController struct {
	templates odoo.TemplateService
	reporter  reporter
	notifier  Notifier
	logger    logging.LoggerService
}

func NewTemplateController(templates odoo.TemplateService, notifier Notifier, logger logging.LoggerService) *TemplateController {
	return &TemplateController{
		templates: templates,
		reporter:  newReporter(notifier, logger),
		notifier:  notifier,
		logger:    logger,
	}
}

func (c *TemplateController) List(ctx context.Context, includeInactive bool) ([]model.SpecificationTemplate, error) {
	templates, err := c.templates.ListTemplates(ctx, includeInactive)
	if err != nil {
		c.reporter.failure("templates", "load", 0, err)
		return nil, err
	}
	return templates, nil
}

func (c *TemplateController) Get(ctx context.Context, id int64) (model.SpecificationTemplate, error) {
	template, err := c.templates.GetTemplate(ctx, id)
	if err != nil {
		c.reporter.failure("template", "load", id, err)
		return model.SpecificationTemplate{}, err
	}
	return template, nil
}

func (c *TemplateController) New() *TemplateEditor {
	return NewTemplateEditor(c.templates, c.notifier, c.logger)
}

func (c *TemplateController) Open(ctx context.Context, id int64) (*TemplateEditor, error) {
	template, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return OpenTemplateEditor(template, c.templates, c.notifier, c.logger), nil
}

// Save applies a complete draft (fields and lines) through an editor, so the
// backend receives one mutation with the line diff. id zero creates.
func (c *TemplateController) Save(ctx context.Context, id int64, patch model.TemplatePatch, lines []model.SpecificationLine) (model.SpecificationTemplate, error) {
	editor := c.New()
	if id != 0 {
		var err error
		if editor, err = c.Open(ctx, id); err != nil {
			return model.SpecificationTemplate{}, err
		}
	}
	if err := editor.SetFields(patch); err != nil {
		return model.SpecificationTemplate{}, err
	}
	if lines != nil {
		if err := editor.SetLines(lines); err != nil {
			return model.SpecificationTemplate{}, err
		}
	}
	return editor.Submit(ctx)
}

// Duplicate clones the scalar fields only; the copy is never the default and has no lines.
func (c *TemplateController) Duplicate(ctx context.Context, id int64) (model.SpecificationTemplate, error) {
	src, err := c.templates.GetTemplate(ctx, id)
	if err != nil {
		c.reporter.failure("template", "duplicate", id, err)
		return model.SpecificationTemplate{}, err
	}
	fields := src.Fields()
	fields.Name = src.Name.WithSuffix(copySuffix)
	if src.DisplayName.IsBlank() {
		fields.DisplayName = fields.Name
	} else {
		fields.DisplayName = src.DisplayName.WithSuffix(copySuffix)
	}
	fields.IsDefault = false
	if err := validationError(validateTemplate(fields, nil)); err != nil {
		c.reporter.failure("template", "duplicate", id, err)
		return model.SpecificationTemplate{}, err
	}

	created, err := c.templates.SaveTemplate(ctx, 0, fields, nil)
	if err != nil {
		c.reporter.failure("template", "duplicate", id, err)
		return model.SpecificationTemplate{}, err
	}
	c.reporter.success("template", "duplicate", created.ID, "Template duplicated successfully")
	return created, nil
}

func (c *TemplateController) Delete(ctx context.Context, id int64, confirmer Confirmer) error {
	if err := confirm(ctx, confirmer, "Are you sure you want to delete this template?"); err != nil {
		return err
	}
	if err := c.templates.DeleteTemplate(ctx, id); err != nil {
		c.reporter.failure("template", "delete", id, err)
		return err
	}
	c.reporter.success("template", "delete", id, "Template deleted successfully")
	return nil
}

func (c *TemplateController) SetDefault(ctx context.Context, id int64) error {
	isDefault := true
	if err := c.templates.UpdateTemplateFlags(ctx, id, &isDefault, nil); err != nil {
		c.reporter.failure("template", "update", id, err)
		return err
	}
	c.reporter.success("template", "update", id, "Default template updated")
	return nil
}

func (c *TemplateController) SetWebsiteVisible(ctx context.Context, id int64, visible bool) error {
	if err := c.templates.UpdateTemplateFlags(ctx, id, nil, &visible); err != nil {
		c.reporter.failure("template", "update", id, err)
		return err
	}
	c.reporter.success("template", "update", id, "Template visibility updated")
	return nil
}

func (c *TemplateController) Statistics(ctx context.Context) (model.TemplateStatistics, error) {
	templates, err := c.List(ctx, false)
	if err != nil {
		return model.TemplateStatistics{}, err
	}
	var stats model.TemplateStatistics
	stats.Total = len(templates)
	for _, t := range templates {
		if t.IsDefault {
			stats.Default++
		}
		if t.WebsiteVisible {
			stats.WebsiteVisible++
		}
		stats.Lines += len(t.Lines)
	}
	return stats, nil
}
