package wailib

import (
	"context"
	"net/http"
)

// HTTPClient is an abstraction over *http.Client. Providers should
// not care about user agents or rate limits, they just need something
// which executes their requests.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// EchoProvider is a remote endpoint which responds with the public
// address of the caller as it is seen from the outside.
type EchoProvider interface {
	Name() string
	Addr(ctx context.Context) (string, error)
}

// GeoProvider returns a geolocation record for the given IP address.
// The address is passed as a string because it arrives verbatim from
// an echo endpoint and is never reinterpreted on the way.
type GeoProvider interface {
	Name() string
	Lookup(ctx context.Context, ip string) (Record, error)
}

// Store keeps geolocation records between lookups. Get reports a miss
// for entries it considers expired.
type Store interface {
	Get(ip string) (Record, bool)
	Put(ip string, rec Record) error
}

// Logger is a contract for logging within Resolver and Locator. Only
// recoverable events are logged here, terminal failures are returned
// to the caller.
type Logger interface {
	EchoError(name string, err error)
	RateLimited(name, next string)
	CacheError(err error)
}

type nopLogger struct{}

func (n nopLogger) EchoError(name string, err error) {}

func (n nopLogger) RateLimited(name, next string) {}

func (n nopLogger) CacheError(err error) {}
