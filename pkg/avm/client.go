package avm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"homevalue-aggregator/pkg/logger"

	"github.com/tidwall/gjson"
)

// requestTimeout is the hard per-call deadline. One attempt only, no retries.
const requestTimeout = 10 * time.Second

// client holds the request plumbing shared by the concrete providers.
type client struct {
	desc       Descriptor
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func newClient(desc Descriptor, baseURL, apiKey string) *client {
	return &client{
		desc:    desc,
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *client) Descriptor() Descriptor {
	return c.desc
}

// fetchDetails builds the authenticated GET for the address and decodes the
// response body into a RawResponse. Every failure comes back as one of the
// typed errors in errors.go.
func (c *client) fetchDetails(ctx context.Context, address string) (RawResponse, error) {
	reqURL := c.baseURL + "?address=" + url.QueryEscape(address)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create request: provider=%s, url=%s, error=%v", c.desc.ID, reqURL, err)
		return nil, &UnknownError{Provider: c.desc, Err: err}
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GlobalLogger.Errorf("Request failed: provider=%s, url=%s, error=%v", c.desc.ID, c.baseURL, err)
		return nil, &NetworkError{Provider: c.desc, Err: err}
	}
	defer resp.Body.Close()

	// Body read is best-effort on the error path: a non-2xx status wins over
	// an unreadable body.
	body, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.GlobalLogger.Errorf("Provider returned error status: provider=%s, status=%s, response=%s", c.desc.ID, resp.Status, string(body))
		return nil, &HTTPError{Provider: c.desc, StatusCode: resp.StatusCode, Body: string(body)}
	}
	if readErr != nil {
		logger.GlobalLogger.Errorf("Failed to read response body: provider=%s, status=%s, error=%v", c.desc.ID, resp.Status, readErr)
		return nil, &UnknownError{Provider: c.desc, Err: readErr}
	}

	if !gjson.ValidBytes(body) {
		logger.GlobalLogger.Errorf("Provider returned invalid JSON: provider=%s, response=%s", c.desc.ID, string(body))
		return nil, &DecodeError{Provider: c.desc, Err: fmt.Errorf("body is not valid JSON")}
	}

	var raw RawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode response: provider=%s, response=%s, error=%v", c.desc.ID, string(body), err)
		return nil, &DecodeError{Provider: c.desc, Err: err}
	}

	logger.GlobalLogger.Debugf("Provider responded: provider=%s, bytes=%d", c.desc.ID, len(body))
	return raw, nil
}
