package main

import (
	log "github.com/sirupsen/logrus"
)

type cliLogger struct{}

func (c cliLogger) EchoError(name string, err error) {
	log.WithFields(log.Fields{
		"endpoint": name,
	}).Debugf("Echo endpoint has failed: %v", err)
}

func (c cliLogger) RateLimited(name, next string) {
	log.WithFields(log.Fields{
		"provider": name,
		"next":     next,
	}).Warnf("Rate limit reached on %s, using fallback...", name)
}

func (c cliLogger) CacheError(err error) {
	log.Warnf("Cache problem: %v", err)
}
