package odoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"dealership-backoffice/internal/adapters/odoo/dto"
	"dealership-backoffice/internal/config"
	"dealership-backoffice/internal/domain/model"
	infrahttp "dealership-backoffice/internal/infra/http"
	"dealership-backoffice/internal/logging"

	"github.com/go-resty/resty/v2"
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Requester is the GraphQL collaborator the entity services talk to.
type Requester interface {
	Query(ctx context.Context, op string, query string, variables map[string]any, out any) error
	Mutate(ctx context.Context, op string, mutation string, variables map[string]any, out any) error
}

type Client struct {
	config config.OdooConfig
	rest   *resty.Client
	locale model.Locale
	logger logging.LoggerService
}

func NewClient(cfg config.OdooConfig, httpClient *http.Client, locale model.Locale, logger logging.LoggerService) *Client {
	if httpClient == nil {
		httpClient = infrahttp.NewClient(cfg.Timeout)
	}
	rest := resty.NewWithClient(httpClient).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("Accept-Language", string(locale.OrDefault()))
	if cfg.ApiKey != "" {
		rest.SetHeader("X-API-KEY", cfg.ApiKey)
	}
	return &Client{
		config: cfg,
		rest:   rest,
		locale: locale.OrDefault(),
		logger: logger,
	}
}

// Query is retried on throttling and transient HTTP failures.
func (c *Client) Query(ctx context.Context, op string, query string, variables map[string]any, out any) error {
	return c.graphqlRequest(ctx, op, query, variables, out, c.config.Retries)
}

// Mutate is sent exactly once.
func (c *Client) Mutate(ctx context.Context, op string, mutation string, variables map[string]any, out any) error {
	return c.graphqlRequest(ctx, op, mutation, variables, out, 0)
}

func (c *Client) endpoint() (string, error) {
	endpoint := strings.TrimSpace(c.config.BaseUrl)
	if endpoint == "" {
		return "", errors.New("odoo graphql url is empty")
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	endpoint = strings.TrimRight(endpoint, "/")
	if !strings.HasSuffix(endpoint, "/graphql") {
		endpoint += "/graphql"
	}
	return endpoint, nil
}

func (c *Client) graphqlRequest(ctx context.Context, op string, query string, variables map[string]any, out any, retries int) error {
	endpoint, err := c.endpoint()
	if err != nil {
		return &model.TransportError{Op: op, Err: err}
	}

	payload := graphQLRequest{
		Query:     strings.TrimSpace(query),
		Variables: variables,
	}

	for attempt := 0; ; attempt++ {
		raw, err := c.post(ctx, op, endpoint, payload)
		if err != nil {
			if attempt < retries && isRetryableHTTPError(err) {
				if err := sleepWithContext(ctx, retryDelay(c.config.RetryDelay, attempt)); err != nil {
					return &model.TransportError{Op: op, Err: err}
				}
				continue
			}
			c.logError("odoo graphql request failed op="+op, err)
			return err
		}

		var resp dto.GraphQLResponse[json.RawMessage]
		if err := json.Unmarshal(raw, &resp); err != nil {
			c.logError("odoo graphql response unmarshal failed op="+op, err)
			return &model.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
		if len(resp.Errors) > 0 {
			if isThrottleGraphQLError(resp.Errors) && attempt < retries {
				if err := sleepWithContext(ctx, retryDelay(c.config.RetryDelay, attempt)); err != nil {
					return &model.TransportError{Op: op, Err: err}
				}
				continue
			}
			rejection := &model.BackendRejection{Op: op, Messages: graphQLMessages(resp.Errors)}
			c.logError("odoo graphql response errors", rejection)
			return rejection
		}
		if out == nil {
			return nil
		}
		if len(resp.Data) == 0 || string(resp.Data) == "null" {
			return &model.TransportError{Op: op, Err: errors.New("odoo graphql response missing data")}
		}
		if err := json.Unmarshal(resp.Data, out); err != nil {
			return &model.TransportError{Op: op, Err: fmt.Errorf("decode data: %w", err)}
		}
		return nil
	}
}

func (c *Client) post(ctx context.Context, op string, endpoint string, payload graphQLRequest) ([]byte, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(payload).
		Post(endpoint)
	if err != nil {
		return nil, &model.TransportError{Op: op, Err: err}
	}
	if resp.IsError() {
		return nil, &model.TransportError{
			Op:         op,
			StatusCode: resp.StatusCode(),
			Err:        newHTTPStatusError(resp.StatusCode(), resp.Status(), resp.Body()),
		}
	}
	return resp.Body(), nil
}

func (c *Client) logError(msg string, err error) {
	if c.logger != nil {
		c.logger.LogError(msg, err)
	}
}

func graphQLMessages(errs []dto.GraphQLError) []string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := strings.TrimSpace(e.Message)
		if msg == "" {
			continue
		}
		if len(e.Path) > 0 {
			msg = fmt.Sprintf("%s (path: %v)", msg, e.Path)
		}
		parts = append(parts, msg)
	}
	if len(parts) == 0 {
		return []string{"unknown graphql error"}
	}
	return parts
}
