package wailib

import (
	"errors"
)

// ErrRateLimited marks a 429 answer of a geolocation provider. This
// is the only recoverable provider failure: Locator reacts to it by
// advancing to the next provider of the chain.
var ErrRateLimited = errors.New("provider is rate limited")

// FailureKind classifies terminal failures of the pipeline. Each kind
// is produced at exactly one stage, so callers can choose wording and
// exit behavior without parsing error texts.
type FailureKind string

const (
	// Requested IP version is neither ipv4 nor ipv6.
	FailureInvalidIPVersion FailureKind = "invalid_ip_version"

	// Every IPv6 echo endpoint has failed. Most likely the
	// environment has no IPv6 connectivity at all.
	FailureIPv6Unsupported FailureKind = "ipv6_unsupported"

	// Transport-level trouble: dial, TLS, timeout.
	FailureNetwork FailureKind = "network"

	// Primary provider answered fine on the transport level but
	// flagged an application error in the body.
	FailureAPI FailureKind = "api"

	// Primary provider responded with an unexpected HTTP status.
	FailureProvider FailureKind = "provider"

	// A fallback provider failed after the chain had already moved
	// past the primary one.
	FailureFallback FailureKind = "fallback"
)

// Error is a terminal failure of the pipeline.
type Error struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.Err != nil && e.Message != "":
		return e.Message + ": " + e.Err.Error()
	case e.Err != nil:
		return string(e.Kind) + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	}

	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// KindOf extracts a failure kind from any error. An empty kind is
// returned for errors which did not originate from this package.
func KindOf(err error) FailureKind {
	var e *Error

	if errors.As(err, &e) {
		return e.Kind
	}

	return ""
}
