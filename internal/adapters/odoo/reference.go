package odoo

import (
	"context"
	"strings"

	"dealership-backoffice/internal/adapters/odoo/dto"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"
)

// ReferenceService reads the lookup tables the car form cascades over.
type ReferenceService interface {
	ListBrands(ctx context.Context) ([]model.Brand, error)
	ListModels(ctx context.Context, brandID int64) ([]model.CarModel, error)
	ListTrims(ctx context.Context, modelID int64) ([]model.Trim, error)
	ListYears(ctx context.Context) ([]model.Year, error)
	ListColors(ctx context.Context) ([]model.Color, error)
}

type ReferenceClient struct {
	requester Requester
	logger    logging.LoggerService
}

func NewReferenceService(requester Requester, logger logging.LoggerService) ReferenceService {
	return &ReferenceClient{requester: requester, logger: logger}
}

func (c *ReferenceClient) ListBrands(ctx context.Context) ([]model.Brand, error) {
	query := `
query GetCarBrands($domain: String) {
	CarBrand(domain: $domain, order: "name asc") { id name logo active }
}`

	var data struct {
		CarBrand []dto.Brand `json:"CarBrand"`
	}
	if err := c.requester.Query(ctx, "load brands", query, map[string]any{"domain": domain("active=true")}, &data); err != nil {
		return nil, err
	}
	res := make([]model.Brand, 0, len(data.CarBrand))
	for _, v := range data.CarBrand {
		res = append(res, model.Brand{
			ID:     int64(v.ID),
			Name:   model.ParseLocalizedText(v.Name),
			Logo:   strings.TrimSpace(string(v.Logo)),
			Active: activeOrDefault(v.Active),
		})
	}
	return res, nil
}

func (c *ReferenceClient) ListModels(ctx context.Context, brandID int64) ([]model.CarModel, error) {
	if brandID == 0 {
		return []model.CarModel{}, nil
	}

	query := `
query GetCarModels($domain: String) {
	CarModel(domain: $domain, order: "name asc") { id name active brand_id { id } }
}`

	var data struct {
		CarModel []dto.CarModel `json:"CarModel"`
	}
	vars := map[string]any{"domain": domain("brand_id="+idString(brandID), "active=true")}
	if err := c.requester.Query(ctx, "load models", query, vars, &data); err != nil {
		return nil, err
	}
	res := make([]model.CarModel, 0, len(data.CarModel))
	for _, v := range data.CarModel {
		m := model.CarModel{
			ID:      int64(v.ID),
			BrandID: int64(v.BrandID.ID),
			Name:    model.ParseLocalizedText(v.Name),
			Active:  activeOrDefault(v.Active),
		}
		if m.BrandID == 0 {
			m.BrandID = brandID
		}
		res = append(res, m)
	}
	return res, nil
}

func (c *ReferenceClient) ListTrims(ctx context.Context, modelID int64) ([]model.Trim, error) {
	if modelID == 0 {
		return []model.Trim{}, nil
	}

	query := `
query GetCarTrims($domain: String) {
	CarTrim(domain: $domain, order: "name asc") { id name active model_id { id } }
}`

	var data struct {
		CarTrim []dto.Trim `json:"CarTrim"`
	}
	vars := map[string]any{"domain": domain("model_id="+idString(modelID), "active=true")}
	if err := c.requester.Query(ctx, "load trims", query, vars, &data); err != nil {
		return nil, err
	}
	res := make([]model.Trim, 0, len(data.CarTrim))
	for _, v := range data.CarTrim {
		t := model.Trim{
			ID:      int64(v.ID),
			ModelID: int64(v.ModelID.ID),
			Name:    model.ParseLocalizedText(v.Name),
			Active:  activeOrDefault(v.Active),
		}
		if t.ModelID == 0 {
			t.ModelID = modelID
		}
		res = append(res, t)
	}
	return res, nil
}

func (c *ReferenceClient) ListYears(ctx context.Context) ([]model.Year, error) {
	query := `
query GetCarYears($domain: String) {
	CarYear(domain: $domain, order: "name desc") { id name active }
}`

	var data struct {
		CarYear []dto.Year `json:"CarYear"`
	}
	if err := c.requester.Query(ctx, "load years", query, map[string]any{"domain": domain("active=true")}, &data); err != nil {
		return nil, err
	}
	res := make([]model.Year, 0, len(data.CarYear))
	for _, v := range data.CarYear {
		res = append(res, model.Year{
			ID:     int64(v.ID),
			Name:   model.ParseLocalizedText(v.Name),
			Active: activeOrDefault(v.Active),
		})
	}
	return res, nil
}

func (c *ReferenceClient) ListColors(ctx context.Context) ([]model.Color, error) {
	query := `
query GetCarColors($domain: String) {
	CarColor(domain: $domain, order: "name asc") { id name color_picker active brand_id { id } }
}`

	var data struct {
		CarColor []dto.Color `json:"CarColor"`
	}
	if err := c.requester.Query(ctx, "load colors", query, map[string]any{"domain": domain("active=true")}, &data); err != nil {
		return nil, err
	}
	res := make([]model.Color, 0, len(data.CarColor))
	for _, v := range data.CarColor {
		res = append(res, model.Color{
			ID:          int64(v.ID),
			BrandID:     int64(v.BrandID.ID),
			Name:        model.ParseLocalizedText(v.Name),
			ColorPicker: strings.TrimSpace(string(v.ColorPicker)),
			Active:      activeOrDefault(v.Active),
		})
	}
	return res, nil
}
