package web

import (
	"embed"
	"html/template"
	"net"
	"net/http"
	"strings"

	"github.com/pariz/gountries"
	log "github.com/sirupsen/logrus"

	"github.com/9seconds/whereami/wailib"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTemplates = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{"orNA": wailib.OrNA}).
		ParseFS(templatesFS, "templates/index.html"))

var countriesQuery = gountries.New()

// messagePrivateIP is shown whenever a user-supplied address does not
// parse or belongs to a reserved range.
const messagePrivateIP = "Private or invalid IPs are not allowed."

type countryDetails struct {
	Alpha2   string
	Alpha3   string
	Official string
}

type pageData struct {
	Error   string
	IP      string
	Record  *wailib.Record
	Country *countryDetails
}

func (h httpHandler) handleIndex(w http.ResponseWriter, req *http.Request) {
	h.renderPage(w, pageData{})
}

func (h httpHandler) handleLookup(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		h.renderPage(w, pageData{Error: "Cannot parse the submitted form."})

		return
	}

	customIP := strings.TrimSpace(req.PostFormValue("custom_ip"))

	var ip string

	if customIP != "" {
		parsed := net.ParseIP(customIP)
		if parsed == nil || !wailib.IsPublic(parsed) {
			h.renderPage(w, pageData{Error: messagePrivateIP})

			return
		}

		ip = parsed.String()
	} else {
		version, err := wailib.ParseIPVersion(req.PostFormValue("ip_type"))
		if err != nil {
			h.renderPage(w, pageData{Error: errorMessage(err)})

			return
		}

		ip, err = h.resolver.Resolve(req.Context(), version)
		if err != nil {
			h.renderPage(w, pageData{Error: errorMessage(err)})

			return
		}
	}

	record, err := h.locator.Lookup(req.Context(), ip, false)
	if err != nil {
		h.renderPage(w, pageData{Error: errorMessage(err)})

		return
	}

	h.renderPage(w, pageData{
		IP:      ip,
		Record:  &record,
		Country: lookupCountry(record.CountryName),
	})
}

func (h httpHandler) renderPage(w http.ResponseWriter, data pageData) {
	w.Header().Add("Content-Type", "text/html; charset=utf-8")

	if err := pageTemplates.Execute(w, data); err != nil {
		log.Errorf("Cannot render page: %s", err.Error())
	}
}

func lookupCountry(name string) *countryDetails {
	if name == "" || name == wailib.NotAvailable {
		return nil
	}

	country, err := countriesQuery.FindCountryByName(name)
	if err != nil {
		return nil
	}

	return &countryDetails{
		Alpha2:   country.Alpha2,
		Alpha3:   country.Alpha3,
		Official: country.Name.Official,
	}
}
