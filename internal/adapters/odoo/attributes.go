package odoo

import (
	"context"
	"encoding/json"
	"strconv"

	"dealership-backoffice/internal/adapters/odoo/dto"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

const attributeValueFields = `
	id name display_name display_value sequence active color html_color image is_custom default_extra_price
	attribute_id { id }`

const attributeFields = `
	id name display_name description display_type category_type
	is_key_attribute is_filterable is_website_spec display_in_car_info create_variant allow_multi_select
	filter_priority edit_widget icon car_info_icon sequence active write_date
	value_ids {` + attributeValueFields + `
	}`

type AttributeService interface {
	ListAttributes(ctx context.Context, filter model.AttributeFilter) ([]model.Attribute, error)
	GetAttribute(ctx context.Context, id int64) (model.Attribute, error)
	CreateAttribute(ctx context.Context, draft model.AttributeDraft) (model.Attribute, error)
	UpdateAttribute(ctx context.Context, id int64, patch model.AttributePatch) error
	DeleteAttribute(ctx context.Context, id int64) error
}

type AttributeClient struct {
	requester Requester
	logger    logging.LoggerService
}

func NewAttributeService(requester Requester, logger logging.LoggerService) AttributeService {
	return &AttributeClient{requester: requester, logger: logger}
}

func (c *AttributeClient) ListAttributes(ctx context.Context, filter model.AttributeFilter) ([]model.Attribute, error) {
	var conds []string
	if filter.OnlyFilterable {
		conds = append(conds, "is_filterable=true")
	}
	if filter.OnlyKey {
		conds = append(conds, "is_key_attribute=true")
	}
	if filter.OnlyWebsiteSpec {
		conds = append(conds, "is_website_spec=true")
	}

	query := `
query GetProductAttributes($domain: String) {
	ProductAttribute(domain: $domain, order: "sequence asc") {` + attributeFields + `
	}
}`

	var data struct {
		ProductAttribute []dto.Attribute `json:"ProductAttribute"`
	}
	if err := c.requester.Query(ctx, "load attributes", query, map[string]any{"domain": domain(conds...)}, &data); err != nil {
		return nil, err
	}

	res := make([]model.Attribute, 0, len(data.ProductAttribute))
	for _, v := range data.ProductAttribute {
		res = append(res, mapAttribute(v))
	}
	return res, nil
}

func (c *AttributeClient) GetAttribute(ctx context.Context, id int64) (model.Attribute, error) {
	if err := requireID("get attribute", id); err != nil {
		return model.Attribute{}, err
	}

	query := `
query GetProductAttributeById($id: String!) {
	ProductAttribute(id: $id) {` + attributeFields + `
	}
}`

	var data struct {
		ProductAttribute json.RawMessage `json:"ProductAttribute"`
	}
	if err := c.requester.Query(ctx, "load attribute", query, map[string]any{"id": idString(id)}, &data); err != nil {
		return model.Attribute{}, err
	}
	var rec dto.Attribute
	if err := decodeOne(data.ProductAttribute, &rec); err != nil {
		return model.Attribute{}, err
	}
	return mapAttribute(rec), nil
}

func (c *AttributeClient) CreateAttribute(ctx context.Context, draft model.AttributeDraft) (model.Attribute, error) {
	mutation := `
mutation CreateProductAttribute($values: ProductAttributeInput!) {
	createProductAttribute(values: $values) {` + attributeFields + `
	}
}`

	var data struct {
		CreateProductAttribute json.RawMessage `json:"createProductAttribute"`
	}
	if err := c.requester.Mutate(ctx, "create attribute", mutation, map[string]any{"values": attributeDraftValues(draft)}, &data); err != nil {
		return model.Attribute{}, err
	}
	var rec dto.Attribute
	if err := decodeOne(data.CreateProductAttribute, &rec); err != nil {
		return model.Attribute{}, err
	}
	created := mapAttribute(rec)
	if c.logger != nil {
		c.logger.Log("odoo attribute created id=" + strconv.FormatInt(created.ID, 10))
	}
	return created, nil
}

func (c *AttributeClient) UpdateAttribute(ctx context.Context, id int64, patch model.AttributePatch) error {
	if err := requireID("update attribute", id); err != nil {
		return err
	}
	values := attributePatchValues(patch)
	if len(values) == 0 {
		return nil
	}

	mutation := `
mutation UpdateProductAttribute($id: Int!, $values: JSON!) {
	updateRecord(model: "ProductAttribute", id: $id, values: $values) { id }
}`

	return c.requester.Mutate(ctx, "update attribute", mutation, map[string]any{"id": id, "values": values}, nil)
}

func (c *AttributeClient) DeleteAttribute(ctx context.Context, id int64) error {
	if err := requireID("delete attribute", id); err != nil {
		return err
	}

	mutation := `
mutation DeleteProductAttribute($id: ID!) {
	deleteProductAttribute(id: $id) { id }
}`

	return c.requester.Mutate(ctx, "delete attribute", mutation, map[string]any{"id": idString(id)}, nil)
}
