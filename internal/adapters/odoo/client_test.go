package odoo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"dealership-backoffice/internal/config"
	"dealership-backoffice/internal/domain/model"
	"dealership-backoffice/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.OdooConfig{
		BaseUrl:    srv.URL,
		ApiKey:     "secret",
		Timeout:    time.Second,
		Retries:    2,
		RetryDelay: time.Millisecond,
	}
	return NewClient(cfg, srv.Client(), model.LocaleArabic, logging.Nop{})
}

func TestClientSendsHeadersAndDecodesData(t *testing.T) {
	var body graphQLRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/graphql", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		assert.Equal(t, "ar_001", r.Header.Get("Accept-Language"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"data":{"CarBrand":[{"id":1,"name":"Toyota","logo":false,"active":true}]}}`))
	})

	brands, err := NewReferenceService(client, logging.Nop{}).ListBrands(context.Background())
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, int64(1), brands[0].ID)
	assert.Equal(t, "Toyota", brands[0].Name.Resolve(model.LocaleEnglish))
	assert.Equal(t, "", brands[0].Logo)
	assert.Equal(t, "active=true", body.Variables["domain"])
}

func TestQueryRetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"CarYear":[]}}`))
	})

	years, err := NewReferenceService(client, logging.Nop{}).ListYears(context.Background())
	require.NoError(t, err)
	assert.Empty(t, years)
	assert.Equal(t, int32(2), calls.Load())
}

func TestMutationIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	err := NewAttributeService(client, logging.Nop{}).DeleteAttribute(context.Background(), 7)
	require.Error(t, err)

	var transport *model.TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, http.StatusBadGateway, transport.StatusCode)
	assert.Equal(t, "delete attribute", transport.Op)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGraphQLErrorsBecomeRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"Access denied"}],"data":null}`))
	})

	_, err := NewCategoryService(client, logging.Nop{}).ListCategories(context.Background(), model.CategoryFilter{})

	var rejection *model.BackendRejection
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, []string{"Access denied"}, rejection.Messages)
}

func TestClientErrorStatusIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := NewReferenceService(client, logging.Nop{}).ListYears(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetReturnsNotFoundForEmptyList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"AlromaihCarOffer":[]}}`))
	})

	_, err := NewOfferService(client, logging.Nop{}).GetOffer(context.Background(), 3)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestTemplateSaveSendsLineCommandsInOneMutation(t *testing.T) {
	var calls atomic.Int32
	var body graphQLRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"data":{"updateAlromaihCarSpecificationTemplate":{"id":5,"name":"Base","active":true,"specification_line_ids":[]}}}`))
	})

	cmds := []model.LineCommand{
		{Op: model.LineCreate, Line: model.SpecificationLine{AttributeID: 9, Sequence: 30}},
		{Op: model.LineUpdate, ID: 11, Line: model.SpecificationLine{AttributeID: 4, Sequence: 10}},
		{Op: model.LineDelete, ID: 12},
	}
	tpl, err := NewTemplateService(client, logging.Nop{}).SaveTemplate(context.Background(), 5, model.TemplateFields{Name: model.PlainText("Base")}, cmds)
	require.NoError(t, err)
	assert.Equal(t, int64(5), tpl.ID)
	assert.Equal(t, int32(1), calls.Load())

	values := body.Variables["values"].(map[string]any)
	lines := values["specification_line_ids"].([]any)
	require.Len(t, lines, 3)
	assert.Equal(t, float64(0), lines[0].([]any)[0])
	assert.Equal(t, []any{float64(1), float64(11)}, lines[1].([]any)[:2])
	assert.Equal(t, []any{float64(2), float64(12), float64(0)}, lines[2].([]any))
	assert.Equal(t, "5", body.Variables["id"])
}

func TestTemplateSaveClearsBlankTexts(t *testing.T) {
	var body graphQLRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"data":{"updateAlromaihCarSpecificationTemplate":{"id":5,"name":"Base","active":true,"specification_line_ids":[]}}}`))
	})

	cmds := []model.LineCommand{
		{Op: model.LineUpdate, ID: 11, Line: model.SpecificationLine{AttributeID: 4, Sequence: 10, HelpText: model.PlainText("")}},
	}
	fields := model.TemplateFields{Name: model.PlainText("Base"), Description: model.PlainText("")}
	_, err := NewTemplateService(client, logging.Nop{}).SaveTemplate(context.Background(), 5, fields, cmds)
	require.NoError(t, err)

	values := body.Variables["values"].(map[string]any)
	assert.Equal(t, false, values["description"])
	assert.Equal(t, false, values["website_description"])

	lines := values["specification_line_ids"].([]any)
	require.Len(t, lines, 1)
	line := lines[0].([]any)[2].(map[string]any)
	assert.Equal(t, false, line["help_text"])
	assert.Equal(t, false, line["placeholder"])
}

func TestFullWritesCarryClearedTexts(t *testing.T) {
	offer := offerValues(model.OfferData{Name: model.PlainText("Spring")}, nil)
	assert.Equal(t, false, offer["description"])

	media := mediaValues(model.MediaData{Name: model.PlainText("Front"), ContentType: model.ContentImage})
	assert.Equal(t, false, media["alt_text"])

	settings := settingsValues(model.SystemSettings{WebsiteName: model.PlainText("Cars")})
	assert.Equal(t, "Cars", settings["website_name"])
	assert.Equal(t, false, settings["meta_title"])
}

func TestNamePreviewFallsBackToDefault(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"AlromaihCar":{"name":false}}}`))
	})
	cars := NewCarService(client, model.LocaleEnglish, logging.Nop{})

	name, err := cars.NamePreview(context.Background(), model.CarData{BrandID: 1})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCarName, name)

	name, err = cars.NamePreview(context.Background(), model.CarData{})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCarName, name)
}

func TestRetryDelayIsCapped(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, retryDelay(100*time.Millisecond, 0))
	assert.Equal(t, 400*time.Millisecond, retryDelay(100*time.Millisecond, 2))
	assert.Equal(t, retryMaxDelay, retryDelay(time.Second, 8))
}

func TestCategoryDomain(t *testing.T) {
	assert.Equal(t, "active=true", categoryDomain(model.CategoryFilter{}))
	assert.Equal(t, "is_website_visible=true", categoryDomain(model.CategoryFilter{IncludeInactive: true, WebsiteVisible: true}))
}
