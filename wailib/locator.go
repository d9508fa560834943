package wailib

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Locator answers where an IP address is located. Providers are
// queried in the configured order, a cache is consulted first.
type Locator struct {
	providers []GeoProvider
	store     Store
	logger    Logger
	stats     map[string]*UsageStats
}

// Lookup returns a geolocation record for the given IP address.
//
// Unless skipCache is set, a fresh cached record short-circuits the
// whole pipeline with no network activity at all. Otherwise providers
// are asked one by one: a rate limited provider hands over to the
// next one in the chain, any other failure is terminal. A successful
// answer is stored in the cache even when skipCache was set.
//
// Errors of the first provider are returned as they are. Whatever
// goes wrong later in the chain is a FailureFallback wrapping the
// underlying error.
func (l *Locator) Lookup(ctx context.Context, ip string, skipCache bool) (Record, error) {
	if !skipCache {
		if rec, ok := l.store.Get(ip); ok {
			return rec, nil
		}
	}

	for i, prov := range l.providers {
		rec, err := prov.Lookup(ctx, ip)

		l.stats[prov.Name()].Used(err)

		if err == nil {
			if err := l.store.Put(ip, rec); err != nil {
				l.logger.CacheError(fmt.Errorf("cannot store a record for %s: %w", ip, err))
			}

			return rec, nil
		}

		if errors.Is(err, ErrRateLimited) && i+1 < len(l.providers) {
			l.logger.RateLimited(prov.Name(), l.providers[i+1].Name())

			continue
		}

		if i > 0 {
			return Record{}, &Error{
				Kind:    FailureFallback,
				Message: "fallback provider " + prov.Name() + " has failed",
				Err:     err,
			}
		}

		return Record{}, err
	}

	// only reachable when the provider list is empty
	return Record{}, &Error{
		Kind:    FailureProvider,
		Message: "no geolocation providers are configured",
	}
}

// UsageStats returns a snapshot of per-provider usage counters sorted
// by provider name.
func (l *Locator) UsageStats() []*UsageStats {
	rv := make([]*UsageStats, 0, len(l.stats))

	for _, v := range l.stats {
		rv = append(rv, v)
	}

	sort.Slice(rv, func(i, j int) bool {
		return rv[i].Name < rv[j].Name
	})

	return rv
}

// NewLocator builds a Locator. Providers are queried in the given
// order: the first one is the primary source of truth, the rest are
// fallbacks engaged when preceding providers report a rate limit. A
// nil logger is replaced with a no-op one.
func NewLocator(providers []GeoProvider, store Store, logger Logger) *Locator {
	if logger == nil {
		logger = nopLogger{}
	}

	stats := map[string]*UsageStats{}

	for _, prov := range providers {
		stats[prov.Name()] = &UsageStats{Name: prov.Name()}
	}

	return &Locator{
		providers: providers,
		store:     store,
		logger:    logger,
		stats:     stats,
	}
}
