package wailib

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

type httpClient struct {
	userAgent   string
	client      *http.Client
	rateLimiter *rate.Limiter
}

func (h httpClient) Do(req *http.Request) (*http.Response, error) {
	if h.client.Timeout > 0 {
		ctx, _ := context.WithTimeout(req.Context(), h.client.Timeout) // nolint: govet
		req = req.WithContext(ctx)
	}

	if err := h.rateLimiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", h.userAgent)

	return h.client.Do(req)
}

// NewHTTPClient wraps a prepared HTTP client, adds a rate limiter and
// sets a user agent. Responses are returned as is, whatever the status
// code: a 429 means something special to geolocation providers, so
// interpreting statuses is their job, not the client's.
//
// Please see https://pkg.go.dev/golang.org/x/time/rate to get a
// meaning of rate limiter parameters.
func NewHTTPClient(client *http.Client,
	userAgent string,
	rateLimiterInterval time.Duration,
	rateLimitBurst int) HTTPClient {
	return httpClient{
		userAgent:   userAgent,
		client:      client,
		rateLimiter: rate.NewLimiter(rate.Every(rateLimiterInterval), rateLimitBurst),
	}
}

// NewTransport builds an HTTP transport for outgoing provider
// requests. proxyURL is optional and nil means a direct connection.
// skipTLSVerify disables certificate checks so the tool keeps working
// behind TLS-intercepting proxies.
func NewTransport(proxyURL *url.URL, skipTLSVerify bool) *http.Transport {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: skipTLSVerify, // nolint: gosec
		},
	}

	if proxyURL != nil {
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return transport
}
