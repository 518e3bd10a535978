package odoo

import (
	"context"
	"encoding/json"

	"dealership-backoffice/internal/adapters/odoo/dto"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

const templateLineFields = `
	id sequence is_required is_visible is_filterable help_text placeholder category_sequence
	attribute_id { id name }`

const templateFields = `
	id name display_name description display_style sequence is_default website_visible website_description
	active category_count
	apply_to_brand_ids { id }
	apply_to_model_ids { id }
	category_ids { id }
	specification_line_ids {` + templateLineFields + `
	}`

type TemplateService interface {
	ListTemplates(ctx context.Context, includeInactive bool) ([]model.SpecificationTemplate, error)
	GetTemplate(ctx context.Context, id int64) (model.SpecificationTemplate, error)
	// SaveTemplate creates when id is zero, otherwise writes fields and line
	// commands in one mutation.
	SaveTemplate(ctx context.Context, id int64, fields model.TemplateFields, lines []model.LineCommand) (model.SpecificationTemplate, error)
	UpdateTemplateFlags(ctx context.Context, id int64, isDefault *bool, websiteVisible *bool) error
	DeleteTemplate(ctx context.Context, id int64) error
}

type TemplateClient struct {
	requester Requester
	logger    logging.LoggerService
}

func NewTemplateService(requester Requester, logger logging.LoggerService) TemplateService {
	return &TemplateClient{requester: requester, logger: logger}
}

func (c *TemplateClient) ListTemplates(ctx context.Context, includeInactive bool) ([]model.SpecificationTemplate, error) {
	var conds []string
	if !includeInactive {
		conds = append(conds, "active=true")
	}

	query := `
query GetSpecificationTemplates($domain: String) {
	AlromaihCarSpecificationTemplate(domain: $domain, order: "sequence asc") {` + templateFields + `
	}
}`

	var data struct {
		Templates []dto.Template `json:"AlromaihCarSpecificationTemplate"`
	}
	if err := c.requester.Query(ctx, "load templates", query, map[string]any{"domain": domain(conds...)}, &data); err != nil {
		return nil, err
	}

	res := make([]model.SpecificationTemplate, 0, len(data.Templates))
	for _, v := range data.Templates {
		res = append(res, mapTemplate(v))
	}
	return res, nil
}

func (c *TemplateClient) GetTemplate(ctx context.Context, id int64) (model.SpecificationTemplate, error) {
	if err := requireID("get template", id); err != nil {
		return model.SpecificationTemplate{}, err
	}

	query := `
query GetSpecificationTemplateById($id: String!) {
	AlromaihCarSpecificationTemplate(id: $id) {` + templateFields + `
	}
}`

	var data struct {
		Template json.RawMessage `json:"AlromaihCarSpecificationTemplate"`
	}
	if err := c.requester.Query(ctx, "load template", query, map[string]any{"id": idString(id)}, &data); err != nil {
		return model.SpecificationTemplate{}, err
	}
	var rec dto.Template
	if err := decodeOne(data.Template, &rec); err != nil {
		return model.SpecificationTemplate{}, err
	}
	return mapTemplate(rec), nil
}

func (c *TemplateClient) SaveTemplate(ctx context.Context, id int64, fields model.TemplateFields, lines []model.LineCommand) (model.SpecificationTemplate, error) {
	values := templateFieldValues(fields)
	if len(lines) > 0 {
		values["specification_line_ids"] = lineCommands(lines)
	}

	var (
		op       string
		mutation string
		key      string
		vars     = map[string]any{"values": values}
	)
	if id == 0 {
		op, key = "create template", "createAlromaihCarSpecificationTemplate"
		mutation = `
mutation CreateSpecificationTemplate($values: AlromaihCarSpecificationTemplateInput!) {
	createAlromaihCarSpecificationTemplate(values: $values) {` + templateFields + `
	}
}`
	} else {
		op, key = "update template", "updateAlromaihCarSpecificationTemplate"
		vars["id"] = idString(id)
		mutation = `
mutation UpdateSpecificationTemplate($id: ID!, $values: AlromaihCarSpecificationTemplateInput!) {
	updateAlromaihCarSpecificationTemplate(id: $id, values: $values) {` + templateFields + `
	}
}`
	}

	var data map[string]json.RawMessage
	if err := c.requester.Mutate(ctx, op, mutation, vars, &data); err != nil {
		return model.SpecificationTemplate{}, err
	}
	var rec dto.Template
	if err := decodeOne(data[key], &rec); err != nil {
		return model.SpecificationTemplate{}, err
	}
	return mapTemplate(rec), nil
}

func (c *TemplateClient) UpdateTemplateFlags(ctx context.Context, id int64, isDefault *bool, websiteVisible *bool) error {
	if err := requireID("update template", id); err != nil {
		return err
	}
	values := make(map[string]any)
	putBool(values, "is_default", isDefault)
	putBool(values, "website_visible", websiteVisible)
	if len(values) == 0 {
		return nil
	}

	mutation := `
mutation UpdateSpecificationTemplateFlags($id: ID!, $values: AlromaihCarSpecificationTemplateInput!) {
	updateAlromaihCarSpecificationTemplate(id: $id, values: $values) { id }
}`

	return c.requester.Mutate(ctx, "update template", mutation, map[string]any{"id": idString(id), "values": values}, nil)
}

func (c *TemplateClient) DeleteTemplate(ctx context.Context, id int64) error {
	if err := requireID("delete template", id); err != nil {
		return err
	}

	mutation := `
mutation DeleteSpecificationTemplate($id: ID!) {
	deleteAlromaihCarSpecificationTemplate(id: $id) { id }
}`

	return c.requester.Mutate(ctx, "delete template", mutation, map[string]any{"id": idString(id)}, nil)
}
