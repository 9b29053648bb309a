package avm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"homevalue-aggregator/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger(io.Discard, "ERROR")
	os.Exit(m.Run())
}

func TestProvider1FetchDetails(t *testing.T) {
	var gotAPIKey, gotAccept, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("X-API-KEY")
		gotAccept = r.Header.Get("Accept")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cached": true, "data": {"formattedAddress": "123 Main St, Boston, MA 02101"}}`))
	}))
	defer srv.Close()

	p := NewProvider1(srv.URL, "test-key")
	raw, err := p.FetchDetails(context.Background(), "123 Main St, Boston, MA 02101")
	if err != nil {
		t.Fatalf("FetchDetails returned unexpected error: %v", err)
	}

	if gotAPIKey != "test-key" {
		t.Errorf("Expected X-API-KEY 'test-key', got '%s'", gotAPIKey)
	}
	if gotAccept != "application/json" {
		t.Errorf("Expected Accept 'application/json', got '%s'", gotAccept)
	}
	if gotQuery != "address=123+Main+St%2C+Boston%2C+MA+02101" {
		t.Errorf("Address was not URL-escaped as expected, got query '%s'", gotQuery)
	}
	if cached, ok := raw["cached"].(bool); !ok || !cached {
		t.Errorf("Expected cached=true in raw response, got %v", raw["cached"])
	}
	if _, ok := raw["data"].(map[string]interface{}); !ok {
		t.Errorf("Expected data object in raw response, got %v", raw["data"])
	}
}

func TestFetchDetailsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "address not found"}`))
	}))
	defer srv.Close()

	p := NewProvider2(srv.URL, "test-key")
	_, err := p.FetchDetails(context.Background(), "nowhere")
	if err == nil {
		t.Fatal("Expected an error for a 404 response")
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Expected *HTTPError, got %T: %v", err, err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", httpErr.StatusCode)
	}
	if httpErr.Body != `{"error": "address not found"}` {
		t.Errorf("Expected response body to be carried, got '%s'", httpErr.Body)
	}
	if httpErr.Provider.DisplayName != Provider2DisplayName {
		t.Errorf("Expected provider '%s', got '%s'", Provider2DisplayName, httpErr.Provider.DisplayName)
	}
}

func TestFetchDetailsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": not json`))
	}))
	defer srv.Close()

	p := NewProvider1(srv.URL, "test-key")
	_, err := p.FetchDetails(context.Background(), "123 Main St")
	if err == nil {
		t.Fatal("Expected an error for an invalid JSON body")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("Expected *DecodeError, got %T: %v", err, err)
	}
}

func TestFetchDetailsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	p := NewProvider1(srv.URL, "test-key")
	_, err := p.FetchDetails(context.Background(), "123 Main St")
	if err == nil {
		t.Fatal("Expected an error when the provider is unreachable")
	}

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Expected *NetworkError, got %T: %v", err, err)
	}
}

func TestFetchDetailsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	p := NewProvider2(srv.URL, "test-key")
	p.httpClient.Timeout = 50 * time.Millisecond

	_, err := p.FetchDetails(context.Background(), "123 Main St")
	if err == nil {
		t.Fatal("Expected an error when the provider times out")
	}

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("Expected *NetworkError for a timeout, got %T: %v", err, err)
	}
}

func TestDescriptors(t *testing.T) {
	for _, test := range []struct {
		provider Provider
		id       ProviderID
		name     string
	}{
		{NewProvider1("http://example.com", "k"), Provider1, "Provider 1"},
		{NewProvider2("http://example.com", "k"), Provider2, "Provider 2"},
	} {
		desc := test.provider.Descriptor()
		if desc.ID != test.id {
			t.Errorf("Expected ID %v, got %v", test.id, desc.ID)
		}
		if desc.DisplayName != test.name {
			t.Errorf("Expected display name '%s', got '%s'", test.name, desc.DisplayName)
		}
	}
}
