package odoo

import (
	"context"
	"encoding/json"

	"dealership-backoffice/internal/adapters/odoo/dto"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

const mediaFields = `
	id name media_type content_type image_url video_url external_link iframe_code sequence
	description alt_text is_primary is_featured is_public active website_visible
	mime_type file_size seo_title seo_description
	car_id { id name }
	car_variant_id { id name }`

type MediaService interface {
	ListMedia(ctx context.Context, filter model.MediaFilter) ([]model.Media, error)
	GetMedia(ctx context.Context, id int64) (model.Media, error)
	CreateMedia(ctx context.Context, data model.MediaData) (model.Media, error)
	UpdateMedia(ctx context.Context, id int64, data model.MediaData) (model.Media, error)
	// UpdateMediaFlags writes only the given switches (is_primary, is_featured, website_visible).
	UpdateMediaFlags(ctx context.Context, id int64, flags map[string]bool) error
	DeleteMedia(ctx context.Context, id int64) error
	BulkUpdateSequence(ctx context.Context, updates []model.MediaSequence) error
}

type MediaClient struct {
	requester Requester
	logger    logging.LoggerService
}

func NewMediaService(requester Requester, logger logging.LoggerService) MediaService {
	return &MediaClient{requester: requester, logger: logger}
}

func (c *MediaClient) ListMedia(ctx context.Context, filter model.MediaFilter) ([]model.Media, error) {
	var conds []string
	if !filter.IncludeInactive {
		conds = append(conds, "active=true")
	}
	if filter.CarID != 0 {
		conds = append(conds, "car_id="+idString(filter.CarID))
	}
	if filter.MediaType != "" {
		conds = append(conds, "media_type="+filter.MediaType)
	}

	vars := map[string]any{"domain": domain(conds...)}
	if filter.Limit > 0 {
		vars["limit"] = filter.Limit
	}
	if filter.Offset > 0 {
		vars["offset"] = filter.Offset
	}

	query := `
query GetCarMedia($domain: String, $limit: Int, $offset: Int) {
	AlromaihCarMedia(domain: $domain, limit: $limit, offset: $offset, order: "sequence asc") {` + mediaFields + `
	}
}`

	var data struct {
		AlromaihCarMedia []dto.Media `json:"AlromaihCarMedia"`
	}
	if err := c.requester.Query(ctx, "load media", query, vars, &data); err != nil {
		return nil, err
	}

	res := make([]model.Media, 0, len(data.AlromaihCarMedia))
	for _, v := range data.AlromaihCarMedia {
		res = append(res, mapMedia(v))
	}
	return res, nil
}

func (c *MediaClient) GetMedia(ctx context.Context, id int64) (model.Media, error) {
	if err := requireID("get media", id); err != nil {
		return model.Media{}, err
	}

	query := `
query GetCarMediaById($id: String!) {
	AlromaihCarMedia(id: $id) {` + mediaFields + `
	}
}`

	var data struct {
		AlromaihCarMedia json.RawMessage `json:"AlromaihCarMedia"`
	}
	if err := c.requester.Query(ctx, "load media item", query, map[string]any{"id": idString(id)}, &data); err != nil {
		return model.Media{}, err
	}
	var rec dto.Media
	if err := decodeOne(data.AlromaihCarMedia, &rec); err != nil {
		return model.Media{}, err
	}
	return mapMedia(rec), nil
}

func (c *MediaClient) CreateMedia(ctx context.Context, data model.MediaData) (model.Media, error) {
	mutation := `
mutation CreateCarMedia($values: AlromaihCarMediaInput!) {
	createAlromaihCarMedia(values: $values) {` + mediaFields + `
	}
}`

	var out struct {
		CreateAlromaihCarMedia json.RawMessage `json:"createAlromaihCarMedia"`
	}
	if err := c.requester.Mutate(ctx, "create media", mutation, map[string]any{"values": mediaValues(data)}, &out); err != nil {
		return model.Media{}, err
	}
	var rec dto.Media
	if err := decodeOne(out.CreateAlromaihCarMedia, &rec); err != nil {
		return model.Media{}, err
	}
	return mapMedia(rec), nil
}

func (c *MediaClient) UpdateMedia(ctx context.Context, id int64, data model.MediaData) (model.Media, error) {
	if err := requireID("update media", id); err != nil {
		return model.Media{}, err
	}

	mutation := `
mutation UpdateCarMedia($id: ID!, $values: AlromaihCarMediaInput!) {
	updateAlromaihCarMedia(id: $id, values: $values) {` + mediaFields + `
	}
}`

	var out struct {
		UpdateAlromaihCarMedia json.RawMessage `json:"updateAlromaihCarMedia"`
	}
	vars := map[string]any{"id": idString(id), "values": mediaValues(data)}
	if err := c.requester.Mutate(ctx, "update media", mutation, vars, &out); err != nil {
		return model.Media{}, err
	}
	var rec dto.Media
	if err := decodeOne(out.UpdateAlromaihCarMedia, &rec); err != nil {
		return model.Media{}, err
	}
	return mapMedia(rec), nil
}

func (c *MediaClient) UpdateMediaFlags(ctx context.Context, id int64, flags map[string]bool) error {
	if err := requireID("update media", id); err != nil {
		return err
	}
	if len(flags) == 0 {
		return nil
	}

	mutation := `
mutation UpdateCarMediaFlags($id: ID!, $values: AlromaihCarMediaInput!) {
	updateAlromaihCarMedia(id: $id, values: $values) { id }
}`

	return c.requester.Mutate(ctx, "update media", mutation, map[string]any{"id": idString(id), "values": flags}, nil)
}

func (c *MediaClient) DeleteMedia(ctx context.Context, id int64) error {
	if err := requireID("delete media", id); err != nil {
		return err
	}

	mutation := `
mutation DeleteCarMedia($id: ID!) {
	deleteAlromaihCarMedia(id: $id) { id }
}`

	return c.requester.Mutate(ctx, "delete media", mutation, map[string]any{"id": idString(id)}, nil)
}

func (c *MediaClient) BulkUpdateSequence(ctx context.Context, updates []model.MediaSequence) error {
	if len(updates) == 0 {
		return nil
	}

	mutation := `
mutation BulkUpdateCarMediaSequence($updates: [MediaSequenceInput!]!) {
	bulkUpdateAlromaihCarMediaSequence(updates: $updates) { success }
}`

	return c.requester.Mutate(ctx, "reorder media", mutation, map[string]any{"updates": updates}, nil)
}
