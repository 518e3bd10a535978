package odoo

import (
	"context"
	"encoding/json"

	"dealership-backoffice/internal/adapters/odoo/dto"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

const categoryFields = `
	id name display_name description active sequence website_sequence display_type
	icon icon_image icon_display_type is_information_category is_inline_editable is_website_visible
	website_meta_title website_meta_description website_meta_keywords website_short_description
	website_url_key website_display_style website_fold_by_default attribute_count`

type CategoryService interface {
	ListCategories(ctx context.Context, filter model.CategoryFilter) ([]model.AttributeCategory, error)
	GetCategory(ctx context.Context, id int64) (model.AttributeCategory, error)
	CreateCategory(ctx context.Context, draft model.CategoryDraft) (model.AttributeCategory, error)
	UpdateCategory(ctx context.Context, id int64, patch model.CategoryPatch) (model.AttributeCategory, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type CategoryClient struct {
	requester Requester
	logger    logging.LoggerService
}

func NewCategoryService(requester Requester, logger logging.LoggerService) CategoryService {
	return &CategoryClient{requester: requester, logger: logger}
}

// categoryDomain pushes the active/visibility filtering to the backend.
func categoryDomain(filter model.CategoryFilter) string {
	var conds []string
	if !filter.IncludeInactive {
		conds = append(conds, "active=true")
	}
	if filter.WebsiteVisible {
		conds = append(conds, "is_website_visible=true")
	}
	if filter.Information {
		conds = append(conds, "is_information_category=true")
	}
	if filter.InlineEditable {
		conds = append(conds, "is_inline_editable=true")
	}
	return domain(conds...)
}

func (c *CategoryClient) ListCategories(ctx context.Context, filter model.CategoryFilter) ([]model.AttributeCategory, error) {
	query := `
query GetProductAttributeCategories($domain: String) {
	ProductAttributeCategory(domain: $domain, order: "sequence asc") {` + categoryFields + `
	}
}`

	var data struct {
		ProductAttributeCategory []dto.Category `json:"ProductAttributeCategory"`
	}
	if err := c.requester.Query(ctx, "load categories", query, map[string]any{"domain": categoryDomain(filter)}, &data); err != nil {
		return nil, err
	}

	res := make([]model.AttributeCategory, 0, len(data.ProductAttributeCategory))
	for _, v := range data.ProductAttributeCategory {
		res = append(res, mapCategory(v))
	}
	return res, nil
}

func (c *CategoryClient) GetCategory(ctx context.Context, id int64) (model.AttributeCategory, error) {
	if err := requireID("get category", id); err != nil {
		return model.AttributeCategory{}, err
	}

	query := `
query GetProductAttributeCategoryById($id: String!) {
	ProductAttributeCategory(id: $id) {` + categoryFields + `
	}
}`

	var data struct {
		ProductAttributeCategory json.RawMessage `json:"ProductAttributeCategory"`
	}
	if err := c.requester.Query(ctx, "load category", query, map[string]any{"id": idString(id)}, &data); err != nil {
		return model.AttributeCategory{}, err
	}
	var rec dto.Category
	if err := decodeOne(data.ProductAttributeCategory, &rec); err != nil {
		return model.AttributeCategory{}, err
	}
	return mapCategory(rec), nil
}

func (c *CategoryClient) CreateCategory(ctx context.Context, draft model.CategoryDraft) (model.AttributeCategory, error) {
	mutation := `
mutation CreateProductAttributeCategory($values: ProductAttributeCategoryInput!) {
	createProductAttributeCategory(values: $values) {` + categoryFields + `
	}
}`

	var data struct {
		CreateProductAttributeCategory json.RawMessage `json:"createProductAttributeCategory"`
	}
	if err := c.requester.Mutate(ctx, "create category", mutation, map[string]any{"values": categoryDraftValues(draft)}, &data); err != nil {
		return model.AttributeCategory{}, err
	}
	var rec dto.Category
	if err := decodeOne(data.CreateProductAttributeCategory, &rec); err != nil {
		return model.AttributeCategory{}, err
	}
	return mapCategory(rec), nil
}

func (c *CategoryClient) UpdateCategory(ctx context.Context, id int64, patch model.CategoryPatch) (model.AttributeCategory, error) {
	if err := requireID("update category", id); err != nil {
		return model.AttributeCategory{}, err
	}

	mutation := `
mutation UpdateProductAttributeCategory($id: ID!, $values: ProductAttributeCategoryInput!) {
	updateProductAttributeCategory(id: $id, values: $values) {` + categoryFields + `
	}
}`

	var data struct {
		UpdateProductAttributeCategory json.RawMessage `json:"updateProductAttributeCategory"`
	}
	vars := map[string]any{"id": idString(id), "values": categoryPatchValues(patch)}
	if err := c.requester.Mutate(ctx, "update category", mutation, vars, &data); err != nil {
		return model.AttributeCategory{}, err
	}
	var rec dto.Category
	if err := decodeOne(data.UpdateProductAttributeCategory, &rec); err != nil {
		return model.AttributeCategory{}, err
	}
	return mapCategory(rec), nil
}

func (c *CategoryClient) DeleteCategory(ctx context.Context, id int64) error {
	if err := requireID("delete category", id); err != nil {
		return err
	}

	mutation := `
mutation DeleteProductAttributeCategory($id: ID!) {
	deleteProductAttributeCategory(id: $id) { id }
}`

	return c.requester.Mutate(ctx, "delete category", mutation, map[string]any{"id": idString(id)}, nil)
}
