package wailib

import (
	"context"
	"sort"
)

// Resolver discovers the public IP address of the current host. It
// walks an ordered chain of echo endpoints for the requested IP
// version and returns the first answer it gets.
type Resolver struct {
	v4     []EchoProvider
	v6     []EchoProvider
	logger Logger
	stats  map[string]*UsageStats
}

// Resolve returns the public address of the requested version, taken
// verbatim from the first endpoint of the chain which responded. A
// failed endpoint is reported to the logger and the chain moves on.
//
// When the whole chain fails, the error depends on the version: an
// IPv6-less environment is an ordinary situation, so the failure kind
// is FailureIPv6Unsupported there, while for IPv4 it is
// FailureNetwork wrapping the last endpoint error.
func (r *Resolver) Resolve(ctx context.Context, version IPVersion) (string, error) {
	var chain []EchoProvider

	switch version {
	case IPv4:
		chain = r.v4
	case IPv6:
		chain = r.v6
	default:
		return "", &Error{
			Kind:    FailureInvalidIPVersion,
			Message: "unknown ip version: " + string(version),
		}
	}

	var lastErr error

	for _, prov := range chain {
		addr, err := prov.Addr(ctx)

		r.stats[prov.Name()].Used(err)

		if err == nil {
			return addr, nil
		}

		r.logger.EchoError(prov.Name(), err)

		lastErr = err
	}

	if version == IPv6 {
		return "", &Error{
			Kind:    FailureIPv6Unsupported,
			Message: "ipv6 does not seem to be supported in this environment",
			Err:     lastErr,
		}
	}

	return "", &Error{
		Kind:    FailureNetwork,
		Message: "cannot discover the public ipv4 address",
		Err:     lastErr,
	}
}

// UsageStats returns a snapshot of per-endpoint usage counters sorted
// by endpoint name.
func (r *Resolver) UsageStats() []*UsageStats {
	rv := make([]*UsageStats, 0, len(r.stats))

	for _, v := range r.stats {
		rv = append(rv, v)
	}

	sort.Slice(rv, func(i, j int) bool {
		return rv[i].Name < rv[j].Name
	})

	return rv
}

// NewResolver builds a Resolver from per-version echo endpoint
// chains. Endpoints are tried in the given order. A nil logger is
// replaced with a no-op one.
func NewResolver(v4, v6 []EchoProvider, logger Logger) *Resolver {
	if logger == nil {
		logger = nopLogger{}
	}

	stats := map[string]*UsageStats{}

	for _, chain := range [][]EchoProvider{v4, v6} {
		for _, prov := range chain {
			stats[prov.Name()] = &UsageStats{Name: prov.Name()}
		}
	}

	return &Resolver{
		v4:     v4,
		v6:     v6,
		logger: logger,
		stats:  stats,
	}
}
