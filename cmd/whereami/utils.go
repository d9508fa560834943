package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/9seconds/whereami/wailib"
)

const version = "0.1.0"

const (
	httpTimeout       = 5 * time.Second
	rateLimitInterval = 100 * time.Millisecond
	rateLimitBurst    = 10
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeHTTPClient(proxyURL *url.URL) wailib.HTTPClient {
	httpClient := &http.Client{
		Timeout:   httpTimeout,
		Transport: wailib.NewTransport(proxyURL, true),
	}

	return wailib.NewHTTPClient(httpClient,
		"whereami/"+version,
		rateLimitInterval,
		rateLimitBurst)
}

func exitResolveError(err error) {
	if wailib.KindOf(err) == wailib.FailureIPv6Unsupported {
		fmt.Fprintln(os.Stderr,
			"Unable to retrieve an IPv6 address: your environment does not appear to support IPv6 or DNS resolution failed.")
	} else {
		fmt.Fprintf(os.Stderr, "Error fetching IPv4 address: %v\n", err)
	}

	os.Exit(1)
}

func exitLookupError(err error) {
	switch wailib.KindOf(err) {
	case wailib.FailureAPI:
		fmt.Fprintf(os.Stderr, "API error: %v\n", err)
	case wailib.FailureFallback:
		fmt.Fprintf(os.Stderr, "Fallback service error: %v\n", err)
	case wailib.FailureNetwork:
		fmt.Fprintf(os.Stderr, "Network error fetching IP information: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "Error fetching IP information: %v\n", err)
	}

	os.Exit(1)
}
