package providers

const (
	// Identifier for the api.ipify.org echo endpoint.
	NameIpify = "ipify"

	// Identifier for the api6.ipify.org echo endpoint.
	NameIpify6 = "ipify6"

	// Identifier for the ipv6.icanhazip.com echo endpoint.
	NameICanHazIP6 = "icanhazip6"

	// Identifier for ipapi.co.
	NameIPAPI = "ipapi"

	// Identifier for geolocation-db.com.
	NameGeolocationDB = "geolocationdb"
)
