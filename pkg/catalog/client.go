// Package catalog is the HTTP client for the Lokarni catalog backend. The
// backend is treated as a black box: it owns asset persistence and the
// Civitai imports, the gateway only consumes the confirmed results.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lokarni/pkg/assets"
)

const userAgent = "Lokarni-Gateway/1.0"

// Client covers the backend operations the gateway triggers. Every call is a
// single attempt; retrying is left to an explicit user action.
type Client interface {
	ListAssets(ctx context.Context) ([]assets.Asset, error)
	GetAsset(ctx context.Context, id int64) (assets.Asset, error)
	CreateFromModelURL(ctx context.Context, sourceURL, apiKey string) (assets.Asset, error)
	ImportImage(ctx context.Context, imageID, apiKey string) (assets.Asset, error)
	UpdateAsset(ctx context.Context, id int64, fields UpdateFields) (assets.Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
	ToggleFavorite(ctx context.Context, id int64) (assets.Asset, error)
}

// UpdateFields is the full editable field set sent on every save. Untouched
// fields are re-sent unchanged rather than diffed.
type UpdateFields struct {
	Name           string `json:"name"`
	Tags           string `json:"tags"`
	Description    string `json:"description"`
	Type           string `json:"type"`
	ModelVersion   string `json:"model_version"`
	BaseModel      string `json:"base_model"`
	Creator        string `json:"creator"`
	NSFWLevel      string `json:"nsfw_level"`
	TriggerWords   string `json:"trigger_words"`
	PositivePrompt string `json:"positive_prompt"`
	NegativePrompt string `json:"negative_prompt"`
}

// APIError is a completed request the backend rejected. Detail carries the
// server-supplied message verbatim when one was present.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("catalog returned status %d", e.StatusCode)
}

// GenericFailureMessage is shown when a request never completed.
const GenericFailureMessage = "could not reach the catalog backend"

// UserMessage maps any catalog error to the string surfaced to the user:
// the server detail for rejections, a generic transport message otherwise.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return GenericFailureMessage
}

// HTTPStatus passes a rejection's status code through and maps anything
// that never completed to 502.
func HTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}

// HTTPClient implements Client against a base URL.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

type fromModelURLRequest struct {
	CivitaiURL string `json:"civitai_url"`
	// APIKey must serialize as an explicit null when absent, never "".
	APIKey *string `json:"api_key"`
}

func (c *HTTPClient) ListAssets(ctx context.Context) ([]assets.Asset, error) {
	var out []assets.Asset
	if err := c.do(ctx, http.MethodGet, "/api/assets", nil, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) GetAsset(ctx context.Context, id int64) (assets.Asset, error) {
	var out assets.Asset
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/assets/%d", id), nil, "", &out)
	return out, err
}

func (c *HTTPClient) CreateFromModelURL(ctx context.Context, sourceURL, apiKey string) (assets.Asset, error) {
	body := fromModelURLRequest{CivitaiURL: sourceURL}
	if apiKey != "" {
		body.APIKey = &apiKey
	}

	var out assets.Asset
	err := c.do(ctx, http.MethodPost, "/api/assets/from-civitai", body, apiKey, &out)
	return out, err
}

func (c *HTTPClient) ImportImage(ctx context.Context, imageID, apiKey string) (assets.Asset, error) {
	var out assets.Asset
	err := c.do(ctx, http.MethodPost, "/api/import/from-civitai-image/"+imageID, nil, apiKey, &out)
	return out, err
}

func (c *HTTPClient) UpdateAsset(ctx context.Context, id int64, fields UpdateFields) (assets.Asset, error) {
	var out assets.Asset
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/assets/%d", id), fields, "", &out)
	return out, err
}

func (c *HTTPClient) DeleteAsset(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/assets/%d", id), nil, "", nil)
}

func (c *HTTPClient) ToggleFavorite(ctx context.Context, id int64) (assets.Asset, error) {
	var out assets.Asset
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/assets/%d/favorite", id), nil, "", &out)
	return out, err
}

// do executes one request. A non-nil body is sent as JSON; apiKey, when
// non-empty, goes out as a bearer authorization header only.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, apiKey string, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("catalog request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

type errorBody struct {
	Detail string `json:"detail"`
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(raw) > 0 {
		var body errorBody
		if json.Unmarshal(raw, &body) == nil {
			apiErr.Detail = body.Detail
		}
	}
	return apiErr
}
