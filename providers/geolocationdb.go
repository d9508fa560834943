package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/9seconds/whereami/wailib"
)

type geolocationDBResponse struct {
	CountryName string `json:"country_name"`
	Country     string `json:"country"`
	City        string `json:"city"`

	// the service reports the string "Not found" instead of a number
	// for addresses it has no coordinates for
	Latitude  interface{} `json:"latitude"`
	Longitude interface{} `json:"longitude"`

	IPv4 string `json:"IPv4"`
}

type geolocationDBProvider struct {
	client wailib.HTTPClient
}

func (g geolocationDBProvider) Name() string {
	return NameGeolocationDB
}

func (g geolocationDBProvider) Lookup(ctx context.Context, ip string) (wailib.Record, error) {
	rec := wailib.Record{}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodGet, "https://geolocation-db.com/json/"+ip+"&position=true", nil)
	if err != nil {
		return rec, &wailib.Error{
			Kind: wailib.FailureNetwork,
			Err:  fmt.Errorf("cannot build a request: %w", err),
		}
	}

	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return rec, &wailib.Error{
			Kind: wailib.FailureNetwork,
			Err:  fmt.Errorf("cannot send a request: %w", err),
		}
	}

	defer flushResponse(resp.Body)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return rec, &wailib.Error{
			Kind: wailib.FailureProvider,
			Err:  wailib.ErrRateLimited,
		}
	case resp.StatusCode != http.StatusOK:
		return rec, &wailib.Error{
			Kind: wailib.FailureProvider,
			Err:  fmt.Errorf("unexpected status code: %d", resp.StatusCode),
		}
	}

	jsonResponse := geolocationDBResponse{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&jsonResponse); err != nil {
		return rec, &wailib.Error{
			Kind: wailib.FailureProvider,
			Err:  fmt.Errorf("cannot parse a response: %w", err),
		}
	}

	switch {
	case jsonResponse.CountryName != "":
		rec.CountryName = jsonResponse.CountryName
	case jsonResponse.Country != "":
		rec.CountryName = jsonResponse.Country
	default:
		rec.CountryName = wailib.NotAvailable
	}

	if jsonResponse.City != "" {
		rec.City = jsonResponse.City
	} else {
		rec.City = wailib.NotAvailable
	}

	if lat, ok := jsonResponse.Latitude.(float64); ok {
		rec.Latitude = lat
	}

	if lon, ok := jsonResponse.Longitude.(float64); ok {
		rec.Longitude = lon
	}

	if jsonResponse.IPv4 != "" {
		rec.Org = jsonResponse.IPv4
	} else {
		rec.Org = wailib.NotAvailable
	}

	// the service does not know ASNs at all
	rec.ASN = wailib.NotAvailable

	return rec, nil
}

// NewGeolocationDB returns a geolocation provider backed by
// https://geolocation-db.com. It serves as a fallback for ipapi.co:
// the response carries no org or ASN data, so the address echoed in
// the IPv4 field substitutes the org and coordinates default to 0
// when missing.
func NewGeolocationDB(client wailib.HTTPClient) wailib.GeoProvider {
	return geolocationDBProvider{client: client}
}
