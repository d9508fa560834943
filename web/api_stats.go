package web

import (
	"net/http"

	"github.com/9seconds/whereami/wailib"
)

func (h httpHandler) handleAPIStats(w http.ResponseWriter, req *http.Request) {
	results := h.resolver.UsageStats()
	results = append(results, h.locator.UsageStats()...)

	response := struct {
		Results []*wailib.UsageStats `json:"results"`
	}{
		Results: results,
	}

	h.encodeJSON(w, response)
}
