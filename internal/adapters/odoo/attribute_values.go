package odoo

import (
	"context"
	"encoding/json"

	"dealership-backoffice/internal/adapters/odoo/dto"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

type AttributeValueService interface {
	ListValues(ctx context.Context, attributeID int64) ([]model.AttributeValue, error)
	CreateValue(ctx context.Context, attributeID int64, draft model.AttributeValueDraft) (model.AttributeValue, error)
	UpdateValue(ctx context.Context, valueID int64, patch model.AttributeValuePatch) (model.AttributeValue, error)
	DeleteValue(ctx context.Context, valueID int64) error
}

type AttributeValueClient struct {
	requester Requester
	logger    logging.LoggerService
}

func NewAttributeValueService(requester Requester, logger logging.LoggerService) AttributeValueService {
	return &AttributeValueClient{requester: requester, logger: logger}
}

func (c *AttributeValueClient) ListValues(ctx context.Context, attributeID int64) ([]model.AttributeValue, error) {
	if err := requireID("load attribute values", attributeID); err != nil {
		return nil, err
	}

	query := `
query GetAttributeValues($domain: String) {
	ProductAttributeValue(domain: $domain, order: "sequence asc") {` + attributeValueFields + `
	}
}`

	var data struct {
		ProductAttributeValue []dto.AttributeValue `json:"ProductAttributeValue"`
	}
	vars := map[string]any{"domain": domain("attribute_id=" + idString(attributeID))}
	if err := c.requester.Query(ctx, "load attribute values", query, vars, &data); err != nil {
		return nil, err
	}

	res := make([]model.AttributeValue, 0, len(data.ProductAttributeValue))
	for _, v := range data.ProductAttributeValue {
		mapped := mapAttributeValue(v)
		if mapped.AttributeID == 0 {
			mapped.AttributeID = attributeID
		}
		res = append(res, mapped)
	}
	return res, nil
}

func (c *AttributeValueClient) CreateValue(ctx context.Context, attributeID int64, draft model.AttributeValueDraft) (model.AttributeValue, error) {
	if err := requireID("create attribute value", attributeID); err != nil {
		return model.AttributeValue{}, err
	}

	mutation := `
mutation CreateProductAttributeValue($values: ProductAttributeValueInput!) {
	createProductAttributeValue(values: $values) {` + attributeValueFields + `
	}
}`

	var data struct {
		CreateProductAttributeValue json.RawMessage `json:"createProductAttributeValue"`
	}
	vars := map[string]any{"values": attributeValueDraftValues(attributeID, draft)}
	if err := c.requester.Mutate(ctx, "create attribute value", mutation, vars, &data); err != nil {
		return model.AttributeValue{}, err
	}
	var rec dto.AttributeValue
	if err := decodeOne(data.CreateProductAttributeValue, &rec); err != nil {
		return model.AttributeValue{}, err
	}
	created := mapAttributeValue(rec)
	created.AttributeID = attributeID
	return created, nil
}

func (c *AttributeValueClient) UpdateValue(ctx context.Context, valueID int64, patch model.AttributeValuePatch) (model.AttributeValue, error) {
	if err := requireID("update attribute value", valueID); err != nil {
		return model.AttributeValue{}, err
	}

	mutation := `
mutation UpdateProductAttributeValue($id: ID!, $values: ProductAttributeValueInput!) {
	updateProductAttributeValue(id: $id, values: $values) {` + attributeValueFields + `
	}
}`

	var data struct {
		UpdateProductAttributeValue json.RawMessage `json:"updateProductAttributeValue"`
	}
	vars := map[string]any{"id": idString(valueID), "values": attributeValuePatchValues(patch)}
	if err := c.requester.Mutate(ctx, "update attribute value", mutation, vars, &data); err != nil {
		return model.AttributeValue{}, err
	}
	var rec dto.AttributeValue
	if err := decodeOne(data.UpdateProductAttributeValue, &rec); err != nil {
		return model.AttributeValue{}, err
	}
	return mapAttributeValue(rec), nil
}

func (c *AttributeValueClient) DeleteValue(ctx context.Context, valueID int64) error {
	if err := requireID("delete attribute value", valueID); err != nil {
		return err
	}

	mutation := `
mutation DeleteProductAttributeValue($id: ID!) {
	deleteProductAttributeValue(id: $id) { id }
}`

	return c.requester.Mutate(ctx, "delete attribute value", mutation, map[string]any{"id": idString(valueID)}, nil)
}
