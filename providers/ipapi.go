package providers

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/9seconds/whereami/wailib"
)

type ipapiResponse struct {
	Error       string  `json:"error"`
	CountryName string  `json:"country_name"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Org         string  `json:"org"`
	ASN         string  `json:"asn"`
}

type ipapiProvider struct {
	client wailib.HTTPClient
}

func (i ipapiProvider) Name() string {
	return NameIPAPI
}

func (i ipapiProvider) Lookup(ctx context.Context, ip string) (wailib.Record, error) {
	rec := wailib.Record{}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodGet, "https://ipapi.co/"+ip+"/json/", nil)
	if err != nil {
		return rec, &wailib.Error{
			Kind: wailib.FailureNetwork,
			Err:  fmt.Errorf("cannot build a request: %w", err),
		}
	}

	req.Header.Set("Accept", "application/json")

	resp, err := i.client.Do(req)
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

	jsonResponse := ipapiResponse{}
	jsonDecoder := json.NewDecoder(bufio.NewReader(resp.Body))

	if err := jsonDecoder.Decode(&jsonResponse); err != nil {
		return rec, &wailib.Error{
			Kind: wailib.FailureProvider,
			Err:  fmt.Errorf("cannot parse a response: %w", err),
		}
	}

	if jsonResponse.Error != "" {
		return rec, &wailib.Error{
			Kind:    wailib.FailureAPI,
			Message: jsonResponse.Error,
		}
	}

	rec.CountryName = jsonResponse.CountryName
	rec.City = jsonResponse.City
	rec.Latitude = jsonResponse.Latitude
	rec.Longitude = jsonResponse.Longitude
	rec.Org = jsonResponse.Org
	rec.ASN = jsonResponse.ASN

	return rec, nil
}

// NewIPAPI returns the primary geolocation provider backed by
// https://ipapi.co. The free tier signals an exhausted quota with
// HTTP 429, reported here as wailib.ErrRateLimited so that Locator
// can advance to a fallback provider.
func NewIPAPI(client wailib.HTTPClient) wailib.GeoProvider {
	return ipapiProvider{client: client}
}
