package web

import (
	"encoding/json"
	"net/http"

	"github.com/9seconds/whereami/wailib"
)

type httpHandler struct {
	resolver *wailib.Resolver
	locator  *wailib.Locator
}

func (h httpHandler) encodeJSON(w http.ResponseWriter, data interface{}) {
	encoder := json.NewEncoder(w)

	w.Header().Add("Content-Type", "application/json")
	encoder.SetEscapeHTML(false)
	encoder.Encode(data) // nolint: errcheck
}

func (h httpHandler) sendError(w http.ResponseWriter, err error, message string, statusCode int) {
	e := &httpError{
		message:    message,
		statusCode: statusCode,
		err:        err,
	}

	w.WriteHeader(e.StatusCode())
	h.encodeJSON(w, e)
}

// errorMessage translates a pipeline failure into the wording a person
// sees on the page. The IPv6 case deliberately does not sound like an
// error: a v6-less network is a normal situation.
func errorMessage(err error) string {
	switch wailib.KindOf(err) {
	case wailib.FailureInvalidIPVersion:
		return "Error: invalid IP type specified. Must be 'ipv4' or 'ipv6'."
	case wailib.FailureIPv6Unsupported:
		return "Unable to retrieve an IPv6 address: your environment does not appear to support IPv6 or DNS resolution failed."
	case wailib.FailureAPI:
		return "API error: " + err.Error()
	case wailib.FailureFallback:
		return "Fallback service error: " + err.Error()
	case wailib.FailureNetwork:
		return "Network error fetching IP information: " + err.Error()
	default:
		return "Error fetching IP information: " + err.Error()
	}
}
