package usecases

import (
	"context"
	"io"
	"slices"

	"dealership-backoffice/internal/adapters/odoo"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

type CategoryController struct {
	categories odoo.CategoryService
	reporter   reporter
}

func NewCategoryController(categories odoo.CategoryService, notifier Notifier, logger logging.LoggerService) *CategoryController {
	return &CategoryController{categories: categories, reporter: newReporter(notifier, logger)}
}

func (c *CategoryController) List(ctx context.Context, filter model.CategoryFilter) ([]model.AttributeCategory, error) {
	categories, err := c.categories.ListCategories(ctx, filter)
	if err != nil {
		c.reporter.failure("categories", "load", 0, err)
		return nil, err
	}
	return categories, nil
}

func (c *CategoryController) Get(ctx context.Context, id int64) (model.AttributeCategory, error) {
	category, err := c.categories.GetCategory(ctx, id)
	if err != nil {
		c.reporter.failure("category", "load", id, err)
		return model.AttributeCategory{}, err
	}
	return category, nil
}

func (c *CategoryController) Create(ctx context.Context, draft model.CategoryDraft) (model.AttributeCategory, error) {
	if draft.DisplayName.IsBlank() {
		draft.DisplayName = draft.Name
	}
	if draft.Sequence == 0 {
		draft.Sequence = 10
	}
	if err := validateCategoryDraft(draft); err != nil {
		c.reporter.failure("category", "create", 0, err)
		return model.AttributeCategory{}, err
	}

	created, err := c.categories.CreateCategory(ctx, draft)
	if err != nil {
		c.reporter.failure("category", "create", 0, err)
		return model.AttributeCategory{}, err
	}
	c.reporter.success("category", "create", created.ID, "Category created successfully")
	return created, nil
}

func (c *CategoryController) Update(ctx context.Context, id int64, patch model.CategoryPatch) (model.AttributeCategory, error) {
	if err := validateCategoryPatch(patch); err != nil {
		c.reporter.failure("category", "update", id, err)
		return model.AttributeCategory{}, err
	}
	updated, err := c.categories.UpdateCategory(ctx, id, patch)
	if err != nil {
		c.reporter.failure("category", "update", id, err)
		return model.AttributeCategory{}, err
	}
	c.reporter.success("category", "update", id, "Category updated successfully")
	return updated, nil
}

// SetFlags writes exactly the provided switches, true or false.
func (c *CategoryController) SetFlags(ctx context.Context, id int64, flags model.CategoryFlags) (model.AttributeCategory, error) {
	if flags.Empty() {
		err := model.NewValidationError("flags", "No category flag to update")
		c.reporter.failure("category", "update", id, err)
		return model.AttributeCategory{}, err
	}
	return c.Update(ctx, id, flags.Patch())
}

// UploadIcon stores an image icon and switches the category to image display.
func (c *CategoryController) UploadIcon(ctx context.Context, id int64, filename string, r io.Reader) (model.AttributeCategory, error) {
	upload, err := EncodeUpload("icon_image", filename, r, ImagePolicy)
	if err != nil {
		c.reporter.failure("category icon", "upload", id, err)
		return model.AttributeCategory{}, err
	}
	displayType := "image"
	patch := model.CategoryPatch{IconImage: &upload.Base64, IconDisplayType: &displayType}
	updated, err := c.categories.UpdateCategory(ctx, id, patch)
	if err != nil {
		c.reporter.failure("category icon", "upload", id, err)
		return model.AttributeCategory{}, err
	}
	c.reporter.success("category", "update", id, "Icon uploaded successfully")
	return updated, nil
}

func (c *CategoryController) Delete(ctx context.Context, id int64, confirmer Confirmer) error {
	if err := confirm(ctx, confirmer, "Are you sure you want to delete this category?"); err != nil {
		return err
	}
	if err := c.categories.DeleteCategory(ctx, id); err != nil {
		c.reporter.failure("category", "delete", id, err)
		return err
	}
	c.reporter.success("category", "delete", id, "Category deleted successfully")
	return nil
}

// Duplicate copies the category's own fields; attributes are not moved and the URL key is cleared.
func (c *CategoryController) Duplicate(ctx context.Context, id int64) (model.AttributeCategory, error) {
	src, err := c.categories.GetCategory(ctx, id)
	if err != nil {
		c.reporter.failure("category", "duplicate", id, err)
		return model.AttributeCategory{}, err
	}
	draft := src.Draft()
	draft.Name = src.Name.WithSuffix(copySuffix)
	if src.DisplayName.IsBlank() {
		draft.DisplayName = draft.Name
	} else {
		draft.DisplayName = src.DisplayName.WithSuffix(copySuffix)
	}
	draft.WebsiteURLKey = ""
	if err := validateCategoryDraft(draft); err != nil {
		c.reporter.failure("category", "duplicate", id, err)
		return model.AttributeCategory{}, err
	}

	created, err := c.categories.CreateCategory(ctx, draft)
	if err != nil {
		c.reporter.failure("category", "duplicate", id, err)
		return model.AttributeCategory{}, err
	}
	c.reporter.success("category", "duplicate", created.ID, "Category duplicated successfully")
	return created, nil
}

func (c *CategoryController) Statistics(ctx context.Context) (model.CategoryStatistics, error) {
	categories, err := c.List(ctx, model.CategoryFilter{IncludeInactive: true})
	if err != nil {
		return model.CategoryStatistics{}, err
	}
	var stats model.CategoryStatistics
	stats.Total = len(categories)
	for _, cat := range categories {
		if cat.Active {
			stats.Active++
		}
		if cat.IsWebsiteVisible {
			stats.WebsiteVisible++
		}
		if cat.IsInformationCategory {
			stats.Information++
		}
		if cat.IsInlineEditable {
			stats.InlineEditable++
		}
		stats.Attributes += cat.AttributeCount
	}
	return stats, nil
}

func validateCategoryDraft(d model.CategoryDraft) error {
	errs := validateStruct(d)
	if d.Name.IsBlank() {
		errs["name"] = "Category name is required"
	}
	return validationError(errs)
}

func validateCategoryPatch(p model.CategoryPatch) error {
	errs := make(map[string]string)
	if p.Name != nil && p.Name.IsBlank() {
		errs["name"] = "Category name is required"
	}
	if p.DisplayType != nil && *p.DisplayType != "" && !slices.Contains(model.CategoryDisplayTypes, *p.DisplayType) {
		errs["display_type"] = "Display type is invalid"
	}
	if p.IconDisplayType != nil && *p.IconDisplayType != "" && !slices.Contains(model.IconDisplayTypes, *p.IconDisplayType) {
		errs["icon_display_type"] = "Icon display type is invalid"
	}
	if p.WebsiteDisplayStyle != nil && *p.WebsiteDisplayStyle != "" && !slices.Contains(model.WebsiteDisplayStyles, *p.WebsiteDisplayStyle) {
		errs["website_display_style"] = "Website display style is invalid"
	}
	return validationError(errs)
}
