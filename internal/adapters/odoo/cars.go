package odoo

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"dealership-backoffice/internal/adapters/odoo/dto"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

const carFields = `
	id name status active is_featured sequence
	cash_price cash_price_with_vat finance_price vat_percentage
	brand_id { id name }
	model_id { id name }
	trim_id { id name }
	year_id { id name }
	color_ids { id name }
	primary_color_id { id name }`

type CarService interface {
	ListCars(ctx context.Context, filter model.CarFilter) ([]model.Car, error)
	GetCar(ctx context.Context, id int64) (model.Car, error)
	CreateCar(ctx context.Context, data model.CarData) (model.Car, error)
	UpdateCar(ctx context.Context, id int64, data model.CarData) (model.Car, error)
	DeleteCar(ctx context.Context, id int64) error
	NamePreview(ctx context.Context, data model.CarData) (string, error)
}

type CarClient struct {
	requester Requester
	logger    logging.LoggerService
	locale    model.Locale
}

func NewCarService(requester Requester, locale model.Locale, logger logging.LoggerService) CarService {
	return &CarClient{requester: requester, logger: logger, locale: locale.OrDefault()}
}

func (c *CarClient) ListCars(ctx context.Context, filter model.CarFilter) ([]model.Car, error) {
	var conds []string
	if !filter.IncludeInactive {
		conds = append(conds, "active=true")
	}
	if filter.BrandID != 0 {
		conds = append(conds, "brand_id="+idString(filter.BrandID))
	}

	vars := map[string]any{"domain": domain(conds...)}
	if filter.Limit > 0 {
		vars["limit"] = filter.Limit
	}
	if filter.Offset > 0 {
		vars["offset"] = filter.Offset
	}

	query := `
query GetCars($domain: String, $limit: Int, $offset: Int) {
	AlromaihCar(domain: $domain, limit: $limit, offset: $offset, order: "sequence asc") {` + carFields + `
	}
}`

	var data struct {
		AlromaihCar []dto.Car `json:"AlromaihCar"`
	}
	if err := c.requester.Query(ctx, "load cars", query, vars, &data); err != nil {
		return nil, err
	}

	res := make([]model.Car, 0, len(data.AlromaihCar))
	for _, v := range data.AlromaihCar {
		res = append(res, mapCar(v))
	}
	return res, nil
}

func (c *CarClient) GetCar(ctx context.Context, id int64) (model.Car, error) {
	if err := requireID("get car", id); err != nil {
		return model.Car{}, err
	}

	query := `
query GetCarById($id: String!) {
	AlromaihCar(id: $id) {` + carFields + `
	}
}`

	var data struct {
		AlromaihCar json.RawMessage `json:"AlromaihCar"`
	}
	if err := c.requester.Query(ctx, "load car", query, map[string]any{"id": idString(id)}, &data); err != nil {
		return model.Car{}, err
	}
	var rec dto.Car
	if err := decodeOne(data.AlromaihCar, &rec); err != nil {
		return model.Car{}, err
	}
	return mapCar(rec), nil
}

func (c *CarClient) CreateCar(ctx context.Context, data model.CarData) (model.Car, error) {
	mutation := `
mutation CreateCar($values: AlromaihCarValues!) {
	AlromaihCar(AlromaihCarValues: $values) {` + carFields + `
	}
}`

	var out struct {
		AlromaihCar json.RawMessage `json:"AlromaihCar"`
	}
	if err := c.requester.Mutate(ctx, "create car", mutation, map[string]any{"values": carValues(data)}, &out); err != nil {
		return model.Car{}, err
	}
	var rec dto.Car
	if err := decodeOne(out.AlromaihCar, &rec); err != nil {
		return model.Car{}, err
	}
	created := mapCar(rec)
	if c.logger != nil {
		c.logger.Log("odoo car created id=" + strconv.FormatInt(created.ID, 10))
	}
	return created, nil
}

func (c *CarClient) UpdateCar(ctx context.Context, id int64, data model.CarData) (model.Car, error) {
	if err := requireID("update car", id); err != nil {
		return model.Car{}, err
	}

	mutation := `
mutation UpdateCar($id: String!, $values: AlromaihCarValues!) {
	AlromaihCar(id: $id, AlromaihCarValues: $values) {` + carFields + `
	}
}`

	var out struct {
		AlromaihCar json.RawMessage `json:"AlromaihCar"`
	}
	vars := map[string]any{"id": idString(id), "values": carValues(data)}
	if err := c.requester.Mutate(ctx, "update car", mutation, vars, &out); err != nil {
		return model.Car{}, err
	}
	var rec dto.Car
	if err := decodeOne(out.AlromaihCar, &rec); err != nil {
		return model.Car{}, err
	}
	return mapCar(rec), nil
}

// DeleteCar archives the car; the backend keeps its history.
func (c *CarClient) DeleteCar(ctx context.Context, id int64) error {
	if err := requireID("delete car", id); err != nil {
		return err
	}

	mutation := `
mutation ArchiveCar($id: String!, $values: AlromaihCarValues!) {
	AlromaihCar(id: $id, AlromaihCarValues: $values) { id }
}`

	vars := map[string]any{"id": idString(id), "values": map[string]any{"active": false}}
	return c.requester.Mutate(ctx, "delete car", mutation, vars, nil)
}

// NamePreview asks the backend how it would name a car built from data.
// Any failure or empty answer yields the default name.
func (c *CarClient) NamePreview(ctx context.Context, data model.CarData) (string, error) {
	params := map[string]any{}
	setRef(params, "brand_id", data.BrandID)
	setRef(params, "model_id", data.ModelID)
	setRef(params, "trim_id", data.TrimID)
	setRef(params, "year_id", data.YearID)
	if len(params) == 0 {
		return model.DefaultCarName, nil
	}

	query := `
query GetCarNamePreview($params: JSON) {
	AlromaihCar(method_name: "get_name_preview", method_parameters: $params) { name }
}`

	var out struct {
		AlromaihCar json.RawMessage `json:"AlromaihCar"`
	}
	if err := c.requester.Query(ctx, "preview car name", query, map[string]any{"params": params}, &out); err != nil {
		return model.DefaultCarName, err
	}
	var rec dto.NamePreview
	if err := decodeOne(out.AlromaihCar, &rec); err != nil {
		return model.DefaultCarName, nil
	}
	name := strings.TrimSpace(model.ParseLocalizedText(rec.Name).Resolve(c.locale))
	if name == "" {
		return model.DefaultCarName, nil
	}
	return name, nil
}
