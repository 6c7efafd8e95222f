package finnhub

import "encoding/json"

// Kind tags the three outcomes an operation can produce.
type Kind int

const (
	// KindData means the provider returned rows and Payload holds the
	// reshaped answer object.
	KindData Kind = iota
	// KindEmpty means the provider answered but had no rows for the
	// query. This is a successful outcome, not an error.
	KindEmpty
	// KindError covers validation failures and anything that went wrong
	// between building the query and decoding the response.
	KindError
)

// Result is the outcome of one lookup. Operations never let an error
// escape past this boundary; callers switch on Kind instead.
type Result struct {
	Kind    Kind
	Symbol  string
	Payload any    // answer object when Kind == KindData
	Message string // human-readable text when Kind == KindEmpty
	Err     error  // cause when Kind == KindError
}

func dataResult(symbol string, payload any) Result {
	return Result{Kind: KindData, Symbol: symbol, Payload: payload}
}

func emptyResult(symbol, message string) Result {
	return Result{Kind: KindEmpty, Symbol: symbol, Message: message}
}

func errorResult(symbol string, err error) Result {
	return Result{Kind: KindError, Symbol: symbol, Err: err}
}

// Render serializes the result the way the web form displays it:
// indented JSON for data, a {symbol, message} object for empty results,
// an {error} object for failures.
func (r Result) Render() string {
	switch r.Kind {
	case KindData:
		return renderJSON(r.Payload)
	case KindEmpty:
		return renderJSON(map[string]string{"symbol": r.Symbol, "message": r.Message})
	default:
		msg := "unknown error"
		if r.Err != nil {
			msg = r.Err.Error()
		}
		return renderJSON(map[string]string{"error": msg})
	}
}

func renderJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return `{"error": "failed to serialize result"}`
	}
	return string(b)
}
