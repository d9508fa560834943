package main

import (
	log "github.com/sirupsen/logrus"
)

type daemonLogger struct{}

func (d daemonLogger) EchoError(name string, err error) {
	log.WithFields(log.Fields{
		"endpoint": name,
	}).Warnf("Echo endpoint has failed: %v", err)
}

func (d daemonLogger) RateLimited(name, next string) {
	log.WithFields(log.Fields{
		"provider": name,
		"next":     next,
	}).Warnf("Provider %s is rate limited, switching over", name)
}

func (d daemonLogger) CacheError(err error) {
	log.Warnf("Cache problem: %v", err)
}
