package httpclient

import (
	"time"

	"github.com/go-resty/resty/v2"
)

const baseURL = "https://finnhub.io/api/v1"

// perCallTimeout bounds every outbound provider call.
const perCallTimeout = 10 * time.Second

// New builds the single long-lived Finnhub HTTP client. The API token is
// merged into every outbound request as the "token" query parameter, the
// way the provider expects it. TLS verification stays at the platform
// trust-store default.
func New(apiKey string) *resty.Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(perCallTimeout)
	if apiKey != "" {
		client.SetQueryParam("token", apiKey)
	}
	return client
}
