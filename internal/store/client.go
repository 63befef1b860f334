// Package store is a thin client for the generic collection data store the
// API fronts. The store exposes one REST resource per collection with
// equality filters and relation expansion; it assigns identifiers, performs
// no validation and enforces no referential integrity.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ErrNotFound = errors.New("store: record not found")

// RequestError is any non-2xx store response other than a 404.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("store: %s %s returned %d", e.Method, e.URL, e.StatusCode)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// ListOptions narrows a collection listing. Filter entries become equality
// constraints; Expand names referenced records to inline.
type ListOptions struct {
	Filter map[string]string
	Expand []string
}

func (c *Client) List(ctx context.Context, collection string, opts *ListOptions, dst any) error {
	query := url.Values{}

	if opts != nil {
		for field, value := range opts.Filter {
			query.Set(field, value)
		}
		for _, rel := range opts.Expand {
			query.Add("_expand", rel)
		}
	}

	return c.do(ctx, http.MethodGet, "/"+collection, query, nil, dst)
}

func (c *Client) Get(ctx context.Context, collection string, id int, expand []string, dst any) error {
	query := url.Values{}

	for _, rel := range expand {
		query.Add("_expand", rel)
	}

	return c.do(ctx, http.MethodGet, c.recordPath(collection, id), query, nil, dst)
}

func (c *Client) Create(ctx context.Context, collection string, body, dst any) error {
	return c.do(ctx, http.MethodPost, "/"+collection, nil, body, dst)
}

func (c *Client) Update(ctx context.Context, collection string, id int, body, dst any) error {
	return c.do(ctx, http.MethodPut, c.recordPath(collection, id), nil, body, dst)
}

func (c *Client) Delete(ctx context.Context, collection string, id int) error {
	return c.do(ctx, http.MethodDelete, c.recordPath(collection, id), nil, nil, nil)
}

func (c *Client) recordPath(collection string, id int) string {
	return "/" + collection + "/" + strconv.Itoa(id)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dst any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("store: failed to encode %s %s body: %w", method, u, err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("store: %s %s failed: %w", method, u, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &RequestError{Method: method, URL: u, StatusCode: resp.StatusCode}
	}

	if dst == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(dst)
	if err != nil {
		return fmt.Errorf("store: failed to decode %s %s response: %w", method, u, err)
	}

	return nil
}
