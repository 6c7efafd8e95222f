// Package web serves the interactive form front end: one page with a tab
// per lookup operation, each submit invoking the operation and rendering
// its text answer verbatim.
package web

import (
	"embed"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"finnhub-mcp/internal/finnhub"
)

//go:embed page.html
var pageFS embed.FS

var pageTmpl = template.Must(template.ParseFS(pageFS, "page.html"))

type Server struct {
	client     *finnhub.Client
	configured bool
}

// New builds the front end. configured=false puts the page in degraded
// mode: a visible warning, and every call answers "not configured".
func New(client *finnhub.Client, configured bool) *Server {
	return &Server{client: client, configured: configured}
}

// Routes returns the mux for the form UI and its call endpoints.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /api/call/{tool}", s.handleCall)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct{ Configured bool }{Configured: s.configured}
	if err := pageTmpl.Execute(w, data); err != nil {
		slog.Error("render page failed", "error", err)
	}
}

// handleCall maps one form submit to one operation call. The response is
// the operation's rendered text, shown verbatim in the output area.
func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}
	ctx := r.Context()
	symbol := r.FormValue("symbol")

	var res finnhub.Result
	switch tool := r.PathValue("tool"); tool {
	case "get_press_releases":
		res = s.client.PressReleases(ctx, symbol, r.FormValue("from_date"), r.FormValue("to_date"))
	case "get_insider_transactions":
		res = s.client.InsiderTransactions(ctx, symbol, r.FormValue("from_date"), r.FormValue("to_date"))
	case "get_basic_financials":
		res = s.client.BasicFinancials(ctx, symbol, r.FormValue("metric"))
	case "get_company_profile":
		res = s.client.CompanyProfile(ctx, symbol)
	case "get_earnings_surprises":
		limit := 4
		if v := r.FormValue("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}
		res = s.client.EarningsSurprises(ctx, symbol, limit)
	default:
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, res.Render())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, `{"status":"ok"}`)
}
