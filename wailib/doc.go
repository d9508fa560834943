// This package provides a set of structs and functions which are used
// to discover the public IP address of the current host and to
// geolocate IP addresses in general.
//
// wailib is core of the whereami project. You can treat the rest of
// the application as an _example_ on how to use this library: how to
// pass parameters from command line flags or HTTP requests, how to
// render responses, how to implement providers.
//
// There are two main entities here. Resolver walks an ordered chain
// of echo endpoints and returns the first public address they report.
// Locator asks geolocation providers about a given IP address: it
// consults a cache first, falls over to the next provider when the
// current one is rate limited and stores whatever it has learned.
package wailib
