package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"
	"redadmin/internal/config"
	"redadmin/internal/models"

	"github.com/google/uuid"
)

var log = config.InitLogger()

const basePath = "/v1/admin"

// Client is the single point of HTTP egress to the platform backend.
// The bearer token is read from the token source on every call, so a token
// set after login (or cleared by logout) is observed on the next request.
type Client struct {
	baseUrl        string
	httpClient     *http.Client
	tokenSource    func() string
	onUnauthorized func()
}

func NewClient(cfg *config.ApiConfig, tokenSource func() string) *Client {
	return &Client{
		baseUrl: cfg.BaseUrl + basePath,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		tokenSource: tokenSource,
	}
}

// SetOnUnauthorized registers the hook fired on any 401 response. The hook
// owns its own deduplication, the client calls it for every 401 it sees.
func (c *Client) SetOnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	err := c.do(ctx, http.MethodGet, path, params, nil, out)
	if shouldRetry(err) {
		log.Warn("Retrying request: ", path)
		err = c.do(ctx, http.MethodGet, path, params, nil, out)
	}
	return err
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// mutate posts and unwraps the success/error envelope every mutation
// endpoint returns. Mutations are never retried.
func (c *Client) mutate(ctx context.Context, path string, body any) error {
	var res models.MutationResult
	if err := c.post(ctx, path, body, &res); err != nil {
		return err
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "operation rejected"
		}
		return &Error{Message: msg}
	}
	return nil
}

func (c *Client) del(ctx context.Context, path string) error {
	var res models.MutationResult
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, &res); err != nil {
		return err
	}
	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = "operation rejected"
		}
		return &Error{Message: msg}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, params map[string]string, body any, out any) error {
	u := c.baseUrl + path
	if len(params) > 0 {
		vals := url.Values{}
		for k, v := range params {
			vals.Set(k, v)
		}
		u += "?" + vals.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			log.Error("Failed to marshal request body: ", err)
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		log.Error("Failed to build request: ", err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokenSource(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Request failed: ", method, " ", path, " ", err)
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response: ", err)
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}

	if resp.StatusCode >= 400 {
		return parseError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Error("Failed to unmarshal response: ", path, " ", err)
		return err
	}
	return nil
}

// getBinary fetches a file download. Returns the raw bytes and the file name
// from Content-Disposition when the server set one.
func (c *Client) getBinary(ctx context.Context, path string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseUrl+path, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token := c.tokenSource(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Download failed: ", path, " ", err)
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, "", ErrUnauthorized
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode >= 400 {
		return nil, "", parseError(resp.StatusCode, data)
	}

	name := ""
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, p, err := mime.ParseMediaType(cd); err == nil {
			name = p["filename"]
		}
	}
	return data, name, nil
}
