// Package finnhub implements the five Finnhub lookup operations. Each
// operation issues exactly one GET against the provider and folds every
// outcome, including transport and decode failures, into a tagged Result.
package finnhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var (
	errNotConfigured  = errors.New("FINNHUB_API_KEY not configured")
	errSymbolRequired = errors.New("symbol is required")
)

func init() {
	// Answer payloads carry prices as JSON numbers, matching the
	// provider's own encoding.
	decimal.MarshalJSONWithoutQuotes = true
}

// Client runs lookups against a shared, immutable-after-init HTTP client.
// The clock hook exists so tests can pin the default date windows.
type Client struct {
	rest *resty.Client
	now  func() time.Time
}

// New wraps an already-configured resty client (see internal/httpclient).
func New(rest *resty.Client) *Client {
	return &Client{rest: rest, now: time.Now}
}

func (c *Client) configured() bool {
	return c.rest.QueryParam.Get("token") != ""
}

// validate applies the shared preamble: token present, symbol non-empty
// after trimming and uppercasing. Returns the normalized symbol.
func (c *Client) validate(symbol string) (string, error) {
	if !c.configured() {
		return "", errNotConfigured
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", errSymbolRequired
	}
	return symbol, nil
}

// dateRange fills in the operation's default window: "to" defaults to
// today, "from" to today minus days. Explicit values pass through
// untouched, which is what keeps those calls deterministic.
func (c *Client) dateRange(from, to string, days int) (string, string) {
	if to == "" {
		to = c.now().Format(dateLayout)
	}
	if from == "" {
		from = c.now().AddDate(0, 0, -days).Format(dateLayout)
	}
	return from, to
}

// get issues one GET and decodes the body into out. Timeouts, non-2xx
// statuses and malformed JSON all come back as a single error value.
func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("API error %d: %s", resp.StatusCode(), resp.String())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
