package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/9seconds/whereami/config"
	"github.com/9seconds/whereami/wailib"
)

const (
	version = "0.1.0"

	shutdownTimeout = 10 * time.Second

	rateLimitInterval = 100 * time.Millisecond
	rateLimitBurst    = 10
)

func makeRootContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return ctx, cancel
}

func makeHTTPClient(conf *config.Config) wailib.HTTPClient {
	httpClient := &http.Client{
		Timeout:   conf.HTTPTimeout.Duration,
		Transport: wailib.NewTransport(conf.Proxy.URL, conf.InsecureSkipVerify),
	}

	return wailib.NewHTTPClient(httpClient,
		"whereamid/"+version,
		rateLimitInterval,
		rateLimitBurst)
}
