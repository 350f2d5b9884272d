// Package empleados provides a thin typed client for the empleados
// microservice, which exposes GET /health, GET /get and POST /post.
package empleados

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the in-cluster service address used when neither an
	// explicit base URL nor the environment override is set. Consumers in a
	// different namespace must set the override to the fully qualified form,
	// e.g. `http://parte1-ms-service.<namespace>.svc.cluster.local:8000`.
	DefaultBaseURL = "http://parte1-ms-service:8000"

	// EnvBaseURL is the environment variable overriding the base URL.
	EnvBaseURL = "PARTE1_MS_URL"

	defaultTimeout = 5 * time.Second
	userAgent      = "empleados-ms/1.0"
)

// ErrUnexpectedStatus marks responses with a non-2xx status code, so callers
// can tell an HTTP-level failure apart from a transport failure with errors.Is.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// Empleado is an employee record as served by the remote service.
type Empleado struct {
	ID       int    `json:"id"`
	Nombres  string `json:"nombres"`
	Telefono string `json:"telefono"`
}

// NuevoEmpleado is the creation payload for POST /post.
type NuevoEmpleado struct {
	Nombres  string `json:"nombres"`
	Telefono string `json:"telefono"`
}

// Client calls the remote empleados service. It is immutable after
// construction and safe for concurrent use; each operation is an independent
// request/response round trip with no retries or caching.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// ResolveBaseURL resolves the service address: the explicit value wins, then
// the PARTE1_MS_URL environment variable, then the in-cluster default.
func ResolveBaseURL(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if fromEnv := os.Getenv(EnvBaseURL); fromEnv != "" {
		return fromEnv
	}
	return DefaultBaseURL
}

// NewClient creates a Client for the given base URL (resolved through
// ResolveBaseURL). A non-positive timeout falls back to the default of 5s.
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(ResolveBaseURL(baseURL), "/")).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	return &Client{http: httpClient, log: log}
}

// BaseURL returns the resolved service address.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// Health issues a GET to /health and returns the body verbatim. The status
// payload schema belongs to the remote service and is not interpreted here.
func (c *Client) Health(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/health")
}

// ListEmpleados issues a GET to /get and returns the empleado records in the
// order the server sent them.
func (c *Client) ListEmpleados(ctx context.Context) ([]Empleado, error) {
	body, err := c.get(ctx, "/get")
	if err != nil {
		return nil, err
	}

	var empleados []Empleado
	if err = json.Unmarshal(body, &empleados); err != nil {
		return nil, fmt.Errorf("failed to decode empleados list: %w", err)
	}

	return empleados, nil
}

// CreateEmpleado issues a POST to /post with the record serialized as JSON
// and returns the created-record body verbatim, including any server-assigned
// fields.
func (c *Client) CreateEmpleado(ctx context.Context, record NuevoEmpleado) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post("/post")
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", c.http.BaseURL+"/post", err)
	}

	return c.checkResponse(resp)
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("failed to request %s: %w", c.http.BaseURL+path, err)
	}

	return c.checkResponse(resp)
}

func (c *Client) checkResponse(resp *resty.Response) (json.RawMessage, error) {
	if resp.IsError() {
		return nil, fmt.Errorf("%w %d from %s: %s",
			ErrUnexpectedStatus, resp.StatusCode(), resp.Request.URL, bodySnippet(resp.Body()))
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("malformed JSON response from %s: %s", resp.Request.URL, bodySnippet(body))
	}

	if c.log != nil {
		c.log.Debug("remote call completed", "url", resp.Request.URL, "status", resp.StatusCode())
	}

	return json.RawMessage(body), nil
}

func bodySnippet(body []byte) string {
	if len(body) == 0 {
		return "<empty body>"
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
