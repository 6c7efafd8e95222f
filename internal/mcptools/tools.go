// Package mcptools advertises the five lookup operations as MCP tools
// and dispatches incoming calls to the operation set.
package mcptools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"finnhub-mcp/internal/finnhub"
)

// Register adds the full tool manifest to the server: symbol is required
// everywhere, dates are optional YYYY-MM-DD strings, metric is an enum,
// limit is a bounded integer.
func Register(s *server.MCPServer, client *finnhub.Client) {
	s.AddTool(mcp.NewTool("get_press_releases",
		mcp.WithDescription("Get major press releases for a company. Returns recent press releases with headlines, summaries, and publication dates."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol (e.g., AAPL, TSLA)"),
		),
		mcp.WithString("from_date",
			mcp.Description("Start date in YYYY-MM-DD format (optional, defaults to 30 days ago)"),
		),
		mcp.WithString("to_date",
			mcp.Description("End date in YYYY-MM-DD format (optional, defaults to today)"),
		),
	), handlePressReleases(client))

	s.AddTool(mcp.NewTool("get_insider_transactions",
		mcp.WithDescription("Get insider trading transactions for a company. Returns recent insider buy/sell activities."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol (e.g., AAPL, TSLA)"),
		),
		mcp.WithString("from_date",
			mcp.Description("Start date in YYYY-MM-DD format (optional, defaults to 90 days ago)"),
		),
		mcp.WithString("to_date",
			mcp.Description("End date in YYYY-MM-DD format (optional, defaults to today)"),
		),
	), handleInsiderTransactions(client))

	s.AddTool(mcp.NewTool("get_basic_financials",
		mcp.WithDescription("Get basic financial metrics and ratios for a company."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol (e.g., AAPL, TSLA)"),
		),
		mcp.WithString("metric",
			mcp.Description("Metric type: 'all' for all metrics, 'price' for price metrics, 'valuation' for valuation ratios, 'margin' for margin metrics"),
			mcp.Enum("all", "price", "valuation", "margin"),
			mcp.DefaultString("all"),
		),
	), handleBasicFinancials(client))

	s.AddTool(mcp.NewTool("get_company_profile",
		mcp.WithDescription("Get detailed company profile information including business description, industry, market cap, and key metrics."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol (e.g., AAPL, TSLA)"),
		),
	), handleCompanyProfile(client))

	s.AddTool(mcp.NewTool("get_earnings_surprises",
		mcp.WithDescription("Get earnings surprise data showing actual vs estimated earnings."),
		mcp.WithString("symbol",
			mcp.Required(),
			mcp.Description("Stock symbol (e.g., AAPL, TSLA)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of quarters to retrieve (default: 4)"),
			mcp.Min(1),
			mcp.Max(20),
			mcp.DefaultNumber(4),
		),
	), handleEarningsSurprises(client))
}

func handlePressReleases(c *finnhub.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return errorResult("Error: symbol parameter is required"), nil
		}
		from := request.GetString("from_date", "")
		to := request.GetString("to_date", "")
		return render(c.PressReleases(ctx, symbol, from, to)), nil
	}
}

func handleInsiderTransactions(c *finnhub.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return errorResult("Error: symbol parameter is required"), nil
		}
		from := request.GetString("from_date", "")
		to := request.GetString("to_date", "")
		return render(c.InsiderTransactions(ctx, symbol, from, to)), nil
	}
}

func handleBasicFinancials(c *finnhub.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return errorResult("Error: symbol parameter is required"), nil
		}
		metric := request.GetString("metric", "all")
		return render(c.BasicFinancials(ctx, symbol, metric)), nil
	}
}

func handleCompanyProfile(c *finnhub.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return errorResult("Error: symbol parameter is required"), nil
		}
		return render(c.CompanyProfile(ctx, symbol)), nil
	}
}

func handleEarningsSurprises(c *finnhub.Client) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, err := request.RequireString("symbol")
		if err != nil {
			return errorResult("Error: symbol parameter is required"), nil
		}
		limit := request.GetInt("limit", 4)
		return render(c.EarningsSurprises(ctx, symbol, limit)), nil
	}
}

// render wraps an operation result in the protocol's content envelope.
// Empty results come back as the bare message text; errors are flagged
// with IsError but still answered, never raised.
func render(res finnhub.Result) *mcp.CallToolResult {
	switch res.Kind {
	case finnhub.KindEmpty:
		return textResult(res.Message)
	case finnhub.KindError:
		msg := "unknown error"
		if res.Err != nil {
			msg = res.Err.Error()
		}
		return errorResult(msg)
	default:
		return textResult(res.Render())
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
