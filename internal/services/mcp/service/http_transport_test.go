package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequireAuthWithoutToken(t *testing.T) {
	transport := NewHTTPTransport("", nil)
	var called bool
	handler := transport.requireAuth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/mcp", nil))
	if !called {
		t.Fatal("expected request to pass through with no token configured")
	}
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	transport := NewHTTPTransport("", nil)
	transport.authToken = "secret"
	handler := transport.requireAuth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler should not run")
	}))

	for _, header := range []string{"", "Bearer wrong", "secret"} {
		request := httptest.NewRequest(http.MethodPost, "/mcp", nil)
		if header != "" {
			request.Header.Set("Authorization", header)
		}
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, recorder.Code)
		}
	}
}

func TestRequireAuthAcceptsMatchingToken(t *testing.T) {
	transport := NewHTTPTransport("", nil)
	transport.authToken = "secret"
	var called bool
	handler := transport.requireAuth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	request := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	request.Header.Set("Authorization", "Bearer secret")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if !called {
		t.Fatal("expected request with matching token to pass")
	}
}

func TestHandleHealth(t *testing.T) {
	transport := NewHTTPTransport("", nil)

	recorder := httptest.NewRecorder()
	transport.handleHealth(recorder, httptest.NewRequest(http.MethodGet, "/mcp/health", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if body := recorder.Body.String(); body != "{\"status\":\"ok\"}\n" {
		t.Fatalf("unexpected body %q", body)
	}

	recorder = httptest.NewRecorder()
	transport.handleHealth(recorder, httptest.NewRequest(http.MethodPost, "/mcp/health", nil))
	if recorder.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", recorder.Code)
	}
}

func TestNewHTTPTransportDefaultsToLocalhost(t *testing.T) {
	transport := NewHTTPTransport("", nil)
	if transport.addr != "localhost:8091" {
		t.Fatalf("expected localhost default, got %q", transport.addr)
	}
}
