package wailib

// NotAvailable is rendered in place of record fields a provider did
// not supply.
const NotAvailable = "N/A"

// Record is a geolocation report for a single IP address. JSON tags
// match both the primary provider response and the cache file layout,
// so records travel between them without any remapping.
//
// Providers are allowed to omit any field. Missing strings stay empty
// here and get the NotAvailable placeholder at display time only;
// missing coordinates are plain numeric zeroes.
type Record struct {
	CountryName string  `json:"country_name"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Org         string  `json:"org"`
	ASN         string  `json:"asn"`
}

// OrNA substitutes the NotAvailable placeholder for empty values.
func OrNA(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}
