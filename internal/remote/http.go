package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/offlinekit/docsync/internal/config"
	"github.com/offlinekit/docsync/internal/logger"
	"github.com/offlinekit/docsync/internal/utils"
	"github.com/offlinekit/docsync/models"
)

type httpStore struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPStore constructs the HTTP/REST implementation of [Store]. It
// normalises and validates the base URL from cfg.Address and configures the
// underlying client with the resolved base URL and request timeout.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a URL.
func NewHTTPStore(cfg config.Remote, log *logger.Logger) (Store, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid remote store address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpStore{client: client, token: strings.TrimSpace(cfg.Token), logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Create implements [Store]. It POSTs payload to POST /api/{collection} and
// decodes the server-assigned document from the response body.
func (h *httpStore) Create(ctx context.Context, collection string, payload json.RawMessage) (models.Document, error) {
	var doc models.Document

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&doc).
		Post("/api/" + url.PathEscape(collection))
	if err != nil {
		return models.Document{}, wrapTransportError("create request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

// Update implements [Store]. It PUTs the partial field set to
// PUT /api/{collection}/{id} and decodes the resulting document.
func (h *httpStore) Update(ctx context.Context, collection, documentID string, payload json.RawMessage) (models.Document, error) {
	var doc models.Document

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		SetResult(&doc).
		Put(documentPath(collection, documentID))
	if err != nil {
		return models.Document{}, wrapTransportError("update request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

// Delete implements [Store]. It sends DELETE /api/{collection}/{id}.
func (h *httpStore) Delete(ctx context.Context, collection, documentID string) error {
	resp, err := h.request(ctx).Delete(documentPath(collection, documentID))
	if err != nil {
		return wrapTransportError("delete request", err)
	}

	return mapHTTPError(resp)
}

// Get implements [Store]. It GETs /api/{collection}/{id} and decodes a single
// document.
func (h *httpStore) Get(ctx context.Context, collection, documentID string) (models.Document, error) {
	var doc models.Document

	resp, err := h.request(ctx).
		SetResult(&doc).
		Get(documentPath(collection, documentID))
	if err != nil {
		return models.Document{}, wrapTransportError("get request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Document{}, err
	}

	return doc, nil
}

// List implements [Store]. It GETs /api/{collection} with the query
// parameters applied and decodes the document slice from the body.
func (h *httpStore) List(ctx context.Context, collection string, query map[string]string) ([]models.Document, error) {
	req := h.request(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get("/api/" + url.PathEscape(collection))
	if err != nil {
		return nil, wrapTransportError("list request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var docs []models.Document
	if err = json.Unmarshal(resp.Body(), &docs); err != nil {
		return nil, &StoreError{Class: Permanent, Message: "decode list response: " + err.Error(), cause: err}
	}

	return docs, nil
}

func (h *httpStore) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}

func documentPath(collection, documentID string) string {
	return "/api/" + url.PathEscape(collection) + "/" + url.PathEscape(documentID)
}
