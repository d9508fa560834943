// Package web serves the browser form and the JSON API of the
// whereami daemon.
package web

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/9seconds/whereami/wailib"
)

// MakeServer builds a router for the daemon: the HTML form at /, the
// form handler at /lookup and the JSON API under /api.
func MakeServer(resolver *wailib.Resolver, locator *wailib.Locator) *chi.Mux {
	handler := httpHandler{
		resolver: resolver,
		locator:  locator,
	}

	router := chi.NewRouter()

	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)

	router.Get("/", handler.handleIndex)
	router.Post("/lookup", handler.handleLookup)
	router.Post("/api/lookup", handler.handleAPILookup)
	router.Get("/api/stats", handler.handleAPIStats)

	return router
}
