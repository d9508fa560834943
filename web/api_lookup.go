package web

import (
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"
	"strings"

	"github.com/qri-io/jsonschema"

	"github.com/9seconds/whereami/wailib"
)

var handleAPILookupJSONSchema = func() *jsonschema.Schema {
	data := `{
        "type": "object",
        "additionalProperties": false,
        "properties": {
            "ip": {
                "anyOf": [
                    {
                        "type": "string",
                        "format": "ipv4",
                        "minLength": 7,
                        "maxLength": 15
                    },
                    {
                        "type": "string",
                        "format": "ipv6",
                        "minLength": 2,
                        "maxLength": 39
                    }
                ]
            },
            "ip_version": {
                "type": "string",
                "enum": ["ipv4", "ipv6"]
            },
            "skip_cache": {
                "type": "boolean"
            }
        }
    }`

	rv := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(data), rv); err != nil {
		panic(err)
	}

	return rv
}()

type handleAPILookupRequest struct {
	IP        string `json:"ip"`
	IPVersion string `json:"ip_version"`
	SkipCache bool   `json:"skip_cache"`
}

type handleAPILookupResponse struct {
	IP     string        `json:"ip"`
	Result wailib.Record `json:"result"`
}

func (h httpHandler) handleAPILookup(w http.ResponseWriter, req *http.Request) {
	if !strings.Contains(req.Header.Get("Content-Type"), "application/json") {
		h.sendError(w, nil, "Incorrect content type", http.StatusUnsupportedMediaType)

		return
	}

	bodyBytes, err := ioutil.ReadAll(req.Body)

	req.Body.Close()

	if err != nil {
		h.sendError(w, err, "Cannot read request body", http.StatusBadRequest)

		return
	}

	errs, err := handleAPILookupJSONSchema.ValidateBytes(req.Context(), bodyBytes)
	if err != nil {
		h.sendError(w, err, "Cannot parse request JSON", http.StatusBadRequest)

		return
	}

	if len(errs) > 0 {
		h.sendError(w, errs[0], "Invalid request body", http.StatusBadRequest)

		return
	}

	parsedRequest := &handleAPILookupRequest{}
	if err := json.Unmarshal(bodyBytes, parsedRequest); err != nil {
		h.sendError(w, err, "Cannot parse request JSON", http.StatusBadRequest)

		return
	}

	ip := parsedRequest.IP

	if ip != "" {
		parsed := net.ParseIP(ip)
		if parsed == nil || !wailib.IsPublic(parsed) {
			h.sendError(w, nil, messagePrivateIP, http.StatusBadRequest)

			return
		}

		ip = parsed.String()
	} else {
		version := wailib.IPv4

		if parsedRequest.IPVersion != "" {
			version, err = wailib.ParseIPVersion(parsedRequest.IPVersion)
			if err != nil {
				h.sendError(w, err, "Incorrect ip version", http.StatusBadRequest)

				return
			}
		}

		ip, err = h.resolver.Resolve(req.Context(), version)
		if err != nil {
			h.sendError(w, err, "Cannot detect the public IP address", apiStatusCode(err))

			return
		}
	}

	record, err := h.locator.Lookup(req.Context(), ip, parsedRequest.SkipCache)
	if err != nil {
		h.sendError(w, err, "Cannot resolve IP address", apiStatusCode(err))

		return
	}

	respEnvelope := handleAPILookupResponse{
		IP:     ip,
		Result: record,
	}

	h.encodeJSON(w, respEnvelope)
}

func apiStatusCode(err error) int {
	switch wailib.KindOf(err) {
	case wailib.FailureInvalidIPVersion:
		return http.StatusBadRequest
	case wailib.FailureIPv6Unsupported:
		return http.StatusServiceUnavailable
	default:
		return 0
	}
}
