package web

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"finnhub-mcp/internal/finnhub"
	"finnhub-mcp/internal/httpclient"
)

func newTestServer(t *testing.T, providerBody string, configured bool) *Server {
	t.Helper()
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, providerBody)
	}))
	t.Cleanup(provider.Close)

	token := "test-token"
	if !configured {
		token = ""
	}
	rest := httpclient.New(token)
	rest.SetBaseURL(provider.URL)
	return New(finnhub.New(rest), configured)
}

func postForm(t *testing.T, s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)
	return rec
}

func TestIndexRendersTabs(t *testing.T) {
	s := newTestServer(t, `{}`, true)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Press Releases", "Insider Transactions", "Financial Metrics", "Company Profile", "Earnings Surprises"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing tab %q", want)
		}
	}
	if strings.Contains(body, "FINNHUB_API_KEY is not set") {
		t.Errorf("warning banner shown despite configured token")
	}
}

func TestIndexWarnsWhenNotConfigured(t *testing.T) {
	s := newTestServer(t, `{}`, false)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "FINNHUB_API_KEY is not set") {
		t.Errorf("degraded mode banner missing")
	}
}

func TestCallReturnsRenderedAnswer(t *testing.T) {
	body := `{"majorDevelopment":[{"datetime":"2024-05-01 09:00:00","headline":"H","summary":"S","url":"u"}]}`
	s := newTestServer(t, body, true)

	rec := postForm(t, s, "/api/call/get_press_releases", url.Values{
		"symbol":    {"aapl"},
		"from_date": {"2024-01-01"},
		"to_date":   {"2024-05-01"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), `"press_releases"`) {
		t.Errorf("body missing answer: %s", rec.Body.String())
	}
}

func TestCallNotConfiguredShortCircuits(t *testing.T) {
	s := newTestServer(t, `{}`, false)

	rec := postForm(t, s, "/api/call/get_company_profile", url.Values{"symbol": {"AAPL"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "FINNHUB_API_KEY not configured") {
		t.Errorf("expected not-configured answer, got: %s", rec.Body.String())
	}
}

func TestCallMissingSymbol(t *testing.T) {
	s := newTestServer(t, `{}`, true)

	rec := postForm(t, s, "/api/call/get_company_profile", url.Values{"symbol": {"  "}})
	if !strings.Contains(rec.Body.String(), "symbol is required") {
		t.Errorf("expected symbol-required answer, got: %s", rec.Body.String())
	}
}

func TestCallUnknownTool(t *testing.T) {
	s := newTestServer(t, `{}`, true)

	rec := postForm(t, s, "/api/call/get_unknown", url.Values{"symbol": {"AAPL"}})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, `{}`, true)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	s.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if rec.Body.String() != `{"status":"ok"}` {
		t.Errorf("body %q", rec.Body.String())
	}
}
