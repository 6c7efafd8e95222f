package finnhub

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"finnhub-mcp/internal/trace"
)

const (
	defaultPressReleaseDays = 30
	defaultInsiderDays      = 90
	maxPressReleases        = 10
	maxInsiderTransactions  = 20
	defaultEarningsLimit    = 4
	maxEarningsLimit        = 20
)

// PressRelease is one reshaped majorDevelopment entry.
type PressRelease struct {
	Date     string `json:"date"`
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// PressReleasesAnswer echoes the resolved query plus the reshaped rows.
type PressReleasesAnswer struct {
	Symbol        string         `json:"symbol"`
	DateRange     string         `json:"date_range"`
	PressReleases []PressRelease `json:"press_releases"`
}

// PressReleases returns up to 10 major press releases for the symbol.
// Omitted dates default to the last 30 days ending today.
func (c *Client) PressReleases(ctx context.Context, symbol, fromDate, toDate string) Result {
	ctx, span := trace.StartSpan(ctx, "finnhub.press_releases")
	defer span.End()

	symbol, err := c.validate(symbol)
	if err != nil {
		return spanError(span, symbol, err)
	}
	fromDate, toDate = c.dateRange(fromDate, toDate, defaultPressReleaseDays)
	span.SetAttributes(
		attribute.String("symbol", symbol),
		attribute.String("from", fromDate),
		attribute.String("to", toDate),
	)

	var resp struct {
		MajorDevelopment []struct {
			Datetime string `json:"datetime"`
			Headline string `json:"headline"`
			Summary  string `json:"summary"`
			URL      string `json:"url"`
		} `json:"majorDevelopment"`
	}
	params := map[string]string{"symbol": symbol, "from": fromDate, "to": toDate}
	if err := c.get(ctx, "/press-releases", params, &resp); err != nil {
		return spanError(span, symbol, err)
	}
	if len(resp.MajorDevelopment) == 0 {
		return emptyResult(symbol, fmt.Sprintf(
			"No press releases found for %s between %s and %s", symbol, fromDate, toDate))
	}

	rows := resp.MajorDevelopment
	if len(rows) > maxPressReleases {
		rows = rows[:maxPressReleases]
	}
	releases := make([]PressRelease, 0, len(rows))
	for _, r := range rows {
		releases = append(releases, PressRelease{
			Date:     r.Datetime,
			Headline: r.Headline,
			Summary:  r.Summary,
			URL:      r.URL,
		})
	}
	return dataResult(symbol, PressReleasesAnswer{
		Symbol:        symbol,
		DateRange:     fmt.Sprintf("%s to %s", fromDate, toDate),
		PressReleases: releases,
	})
}

// InsiderTransaction is one reshaped insider trading row.
type InsiderTransaction struct {
	Date             string          `json:"date"`
	Name             string          `json:"name"`
	Share            int64           `json:"share"`
	Change           int64           `json:"change"`
	FilingDate       string          `json:"filingDate"`
	TransactionCode  string          `json:"transactionCode"`
	TransactionPrice decimal.Decimal `json:"transactionPrice"`
}

type InsiderTransactionsAnswer struct {
	Symbol              string               `json:"symbol"`
	DateRange           string               `json:"date_range"`
	InsiderTransactions []InsiderTransaction `json:"insider_transactions"`
}

// InsiderTransactions returns up to 20 insider trades for the symbol.
// Omitted dates default to the last 90 days ending today.
func (c *Client) InsiderTransactions(ctx context.Context, symbol, fromDate, toDate string) Result {
	ctx, span := trace.StartSpan(ctx, "finnhub.insider_transactions")
	defer span.End()

	symbol, err := c.validate(symbol)
	if err != nil {
		return spanError(span, symbol, err)
	}
	fromDate, toDate = c.dateRange(fromDate, toDate, defaultInsiderDays)
	span.SetAttributes(
		attribute.String("symbol", symbol),
		attribute.String("from", fromDate),
		attribute.String("to", toDate),
	)

	var resp struct {
		Data []struct {
			Name             string  `json:"name"`
			Share            int64   `json:"share"`
			Change           int64   `json:"change"`
			FilingDate       string  `json:"filingDate"`
			TransactionDate  string  `json:"transactionDate"`
			TransactionCode  string  `json:"transactionCode"`
			TransactionPrice float64 `json:"transactionPrice"`
		} `json:"data"`
	}
	params := map[string]string{"symbol": symbol, "from": fromDate, "to": toDate}
	if err := c.get(ctx, "/stock/insider-transactions", params, &resp); err != nil {
		return spanError(span, symbol, err)
	}
	if len(resp.Data) == 0 {
		return emptyResult(symbol, fmt.Sprintf(
			"No insider transactions found for %s between %s and %s", symbol, fromDate, toDate))
	}

	rows := resp.Data
	if len(rows) > maxInsiderTransactions {
		rows = rows[:maxInsiderTransactions]
	}
	transactions := make([]InsiderTransaction, 0, len(rows))
	for _, t := range rows {
		transactions = append(transactions, InsiderTransaction{
			Date:             t.TransactionDate,
			Name:             t.Name,
			Share:            t.Share,
			Change:           t.Change,
			FilingDate:       t.FilingDate,
			TransactionCode:  t.TransactionCode,
			TransactionPrice: decimal.NewFromFloat(t.TransactionPrice),
		})
	}
	return dataResult(symbol, InsiderTransactionsAnswer{
		Symbol:              symbol,
		DateRange:           fmt.Sprintf("%s to %s", fromDate, toDate),
		InsiderTransactions: transactions,
	})
}

// metricFilters maps a requested category to the substrings a metric key
// must contain (case-insensitive) to pass through.
var metricFilters = map[string][]string{
	"price":     {"price", "52week", "beta"},
	"valuation": {"pe", "pb", "ps", "ev", "ratio"},
	"margin":    {"margin", "roe", "roa", "roic"},
}

type BasicFinancialsAnswer struct {
	Symbol     string         `json:"symbol"`
	MetricType string         `json:"metric_type"`
	Metrics    map[string]any `json:"metrics"`
	Series     map[string]any `json:"series"`
}

// BasicFinancials returns the symbol's metric map, optionally narrowed to
// one category. Unrecognized categories behave like "all".
func (c *Client) BasicFinancials(ctx context.Context, symbol, metricType string) Result {
	ctx, span := trace.StartSpan(ctx, "finnhub.basic_financials")
	defer span.End()

	symbol, err := c.validate(symbol)
	if err != nil {
		return spanError(span, symbol, err)
	}
	if metricType == "" {
		metricType = "all"
	}
	span.SetAttributes(
		attribute.String("symbol", symbol),
		attribute.String("metric_type", metricType),
	)

	var resp struct {
		Metric map[string]any `json:"metric"`
		Series map[string]any `json:"series"`
	}
	params := map[string]string{"symbol": symbol, "metric": "all"}
	if err := c.get(ctx, "/stock/metric", params, &resp); err != nil {
		return spanError(span, symbol, err)
	}
	if len(resp.Metric) == 0 {
		return emptyResult(symbol, fmt.Sprintf("No financial metrics found for %s", symbol))
	}

	metrics := resp.Metric
	if terms, ok := metricFilters[metricType]; ok {
		metrics = filterMetrics(resp.Metric, terms)
	}
	return dataResult(symbol, BasicFinancialsAnswer{
		Symbol:     symbol,
		MetricType: metricType,
		Metrics:    metrics,
		Series:     resp.Series,
	})
}

func filterMetrics(metrics map[string]any, terms []string) map[string]any {
	out := make(map[string]any)
	for k, v := range metrics {
		lower := strings.ToLower(k)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				out[k] = v
				break
			}
		}
	}
	return out
}

// CompanyProfile returns the provider's profile object as-is. An empty
// object is the provider's way of saying the symbol is unknown.
func (c *Client) CompanyProfile(ctx context.Context, symbol string) Result {
	ctx, span := trace.StartSpan(ctx, "finnhub.company_profile")
	defer span.End()

	symbol, err := c.validate(symbol)
	if err != nil {
		return spanError(span, symbol, err)
	}
	span.SetAttributes(attribute.String("symbol", symbol))

	var profile map[string]any
	if err := c.get(ctx, "/stock/profile2", map[string]string{"symbol": symbol}, &profile); err != nil {
		return spanError(span, symbol, err)
	}
	if len(profile) == 0 {
		return emptyResult(symbol, fmt.Sprintf("No company profile found for %s", symbol))
	}
	return dataResult(symbol, profile)
}

type EarningsSurprisesAnswer struct {
	Symbol            string           `json:"symbol"`
	EarningsSurprises []map[string]any `json:"earnings_surprises"`
}

// EarningsSurprises returns actual-vs-estimate rows for the last quarters.
// The provider honors the limit; it is clamped to 1..20 here, default 4.
func (c *Client) EarningsSurprises(ctx context.Context, symbol string, limit int) Result {
	ctx, span := trace.StartSpan(ctx, "finnhub.earnings_surprises")
	defer span.End()

	symbol, err := c.validate(symbol)
	if err != nil {
		return spanError(span, symbol, err)
	}
	if limit <= 0 {
		limit = defaultEarningsLimit
	}
	if limit > maxEarningsLimit {
		limit = maxEarningsLimit
	}
	span.SetAttributes(
		attribute.String("symbol", symbol),
		attribute.Int("limit", limit),
	)

	var rows []map[string]any
	params := map[string]string{"symbol": symbol, "limit": fmt.Sprintf("%d", limit)}
	if err := c.get(ctx, "/stock/earnings", params, &rows); err != nil {
		return spanError(span, symbol, err)
	}
	if len(rows) == 0 {
		return emptyResult(symbol, fmt.Sprintf("No earnings data found for %s", symbol))
	}
	return dataResult(symbol, EarningsSurprisesAnswer{
		Symbol:            symbol,
		EarningsSurprises: rows,
	})
}

// spanError records the failure on the span and folds it into a Result.
func spanError(span oteltrace.Span, symbol string, err error) Result {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return errorResult(symbol, err)
}
