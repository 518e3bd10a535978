package odoo

import (
	"context"
	"encoding/json"

	"dealership-backoffice/internal/adapters/odoo/dto"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

const offerFields = `
	id name description apply_to_all_variants start_date end_date
	discount_type discount_value original_price final_price is_active offer_tag banner_url
	car_id { id name }
	car_variant_id { id name }`

type OfferService interface {
	ListOffers(ctx context.Context, includeInactive bool) ([]model.Offer, error)
	GetOffer(ctx context.Context, id int64) (model.Offer, error)
	CreateOffer(ctx context.Context, data model.OfferData, banner *model.Upload) (model.Offer, error)
	UpdateOffer(ctx context.Context, id int64, data model.OfferData, banner *model.Upload) (model.Offer, error)
	SetOfferActive(ctx context.Context, id int64, active bool) error
	DeleteOffer(ctx context.Context, id int64) error
	RemoveBanner(ctx context.Context, id int64) error
}

type OfferClient struct {
	requester Requester
	logger    logging.LoggerService
}

func NewOfferService(requester Requester, logger logging.LoggerService) OfferService {
	return &OfferClient{requester: requester, logger: logger}
}

func (c *OfferClient) ListOffers(ctx context.Context, includeInactive bool) ([]model.Offer, error) {
	var conds []string
	if !includeInactive {
		conds = append(conds, "is_active=true")
	}

	query := `
query GetCarOffers($domain: String) {
	AlromaihCarOffer(domain: $domain, order: "start_date desc") {` + offerFields + `
	}
}`

	var data struct {
		AlromaihCarOffer []dto.Offer `json:"AlromaihCarOffer"`
	}
	if err := c.requester.Query(ctx, "load offers", query, map[string]any{"domain": domain(conds...)}, &data); err != nil {
		return nil, err
	}

	res := make([]model.Offer, 0, len(data.AlromaihCarOffer))
	for _, v := range data.AlromaihCarOffer {
		res = append(res, mapOffer(v))
	}
	return res, nil
}

func (c *OfferClient) GetOffer(ctx context.Context, id int64) (model.Offer, error) {
	if err := requireID("get offer", id); err != nil {
		return model.Offer{}, err
	}

	query := `
query GetCarOfferById($id: String!) {
	AlromaihCarOffer(id: $id) {` + offerFields + `
	}
}`

	var data struct {
		AlromaihCarOffer json.RawMessage `json:"AlromaihCarOffer"`
	}
	if err := c.requester.Query(ctx, "load offer", query, map[string]any{"id": idString(id)}, &data); err != nil {
		return model.Offer{}, err
	}
	var rec dto.Offer
	if err := decodeOne(data.AlromaihCarOffer, &rec); err != nil {
		return model.Offer{}, err
	}
	return mapOffer(rec), nil
}

func (c *OfferClient) CreateOffer(ctx context.Context, data model.OfferData, banner *model.Upload) (model.Offer, error) {
	values := offerValues(data, banner)
	values["is_active"] = true

	mutation := `
mutation CreateCarOffer($values: CarOfferValues!) {
	AlromaihCarOffer(CarOfferValues: $values) {` + offerFields + `
	}
}`

	return c.writeOffer(ctx, "create offer", mutation, map[string]any{"values": values})
}

func (c *OfferClient) UpdateOffer(ctx context.Context, id int64, data model.OfferData, banner *model.Upload) (model.Offer, error) {
	if err := requireID("update offer", id); err != nil {
		return model.Offer{}, err
	}

	mutation := `
mutation UpdateCarOffer($id: String!, $values: CarOfferValues!) {
	AlromaihCarOffer(id: $id, CarOfferValues: $values) {` + offerFields + `
	}
}`

	return c.writeOffer(ctx, "update offer", mutation, map[string]any{"id": idString(id), "values": offerValues(data, banner)})
}

func (c *OfferClient) writeOffer(ctx context.Context, op string, mutation string, vars map[string]any) (model.Offer, error) {
	var out struct {
		AlromaihCarOffer json.RawMessage `json:"AlromaihCarOffer"`
	}
	if err := c.requester.Mutate(ctx, op, mutation, vars, &out); err != nil {
		return model.Offer{}, err
	}
	var rec dto.Offer
	if err := decodeOne(out.AlromaihCarOffer, &rec); err != nil {
		return model.Offer{}, err
	}
	return mapOffer(rec), nil
}

// SetOfferActive covers both soft delete and reactivation.
func (c *OfferClient) SetOfferActive(ctx context.Context, id int64, active bool) error {
	op := "deactivate offer"
	if active {
		op = "reactivate offer"
	}
	return c.patchOffer(ctx, op, id, map[string]any{"is_active": active})
}

func (c *OfferClient) RemoveBanner(ctx context.Context, id int64) error {
	return c.patchOffer(ctx, "remove offer banner", id, map[string]any{"banner_image": false})
}

func (c *OfferClient) patchOffer(ctx context.Context, op string, id int64, values map[string]any) error {
	if err := requireID(op, id); err != nil {
		return err
	}

	mutation := `
mutation PatchCarOffer($id: String!, $values: CarOfferValues!) {
	AlromaihCarOffer(id: $id, CarOfferValues: $values) { id }
}`

	return c.requester.Mutate(ctx, op, mutation, map[string]any{"id": idString(id), "values": values}, nil)
}

// DeleteOffer removes the record permanently.
func (c *OfferClient) DeleteOffer(ctx context.Context, id int64) error {
	if err := requireID("delete offer", id); err != nil {
		return err
	}

	mutation := `
mutation DeleteCarOffer($id: ID!) {
	deleteAlromaihCarOffer(id: $id) { id }
}`

	return c.requester.Mutate(ctx, "delete offer", mutation, map[string]any{"id": idString(id)}, nil)
}
