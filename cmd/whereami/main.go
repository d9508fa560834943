package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/whereami/cache"
	"github.com/9seconds/whereami/providers"
	"github.com/9seconds/whereami/wailib"
)

var (
	app = kingpin.New(
		"whereami",
		"Displays a public IP address (your own by default) and its geolocation.")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("WHEREAMI_DEBUG").
		Bool()
	noCache = app.Flag("no-cache", "Skip local cache and force API call.").
		Bool()
	proxy = app.Flag("proxy", "Proxy URL to use for requests.").
		Short('p').
		URL()
	targetIP = app.Flag("target-ip", "If set, query this IP instead of fetching your own.").
			Short('t').
			IP()
	cacheFile = app.Flag("cache-file", "Path to the cache file.").
			String()
	ipVersion = app.Arg("ip-version", "IP version to query (ipv4 or ipv6).").
			Default("ipv4").
			String()
)

func init() {
	app.Version(version)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.WarnLevel)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	client := makeHTTPClient(*proxy)
	logger := cliLogger{}
	store := cache.NewFileStore(afero.NewOsFs(), *cacheFile, cache.DefaultTTL)

	resolver := wailib.NewResolver(
		[]wailib.EchoProvider{
			providers.NewIpify(client),
		},
		[]wailib.EchoProvider{
			providers.NewIpify6(client),
			providers.NewICanHazIP6(client),
		},
		logger)
	locator := wailib.NewLocator(
		[]wailib.GeoProvider{
			providers.NewIPAPI(client),
			providers.NewGeolocationDB(client),
		},
		store,
		logger)

	if *proxy != nil {
		fmt.Println("Using proxy:", (*proxy).String())
	}

	var ip string

	if *targetIP != nil {
		ip = targetIP.String()

		fmt.Println("Using target IP:", ip)
	} else {
		ver, err := wailib.ParseIPVersion(*ipVersion)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: invalid IP type specified. Must be 'ipv4' or 'ipv6'.")
			os.Exit(1)
		}

		label := strings.ToUpper(*ipVersion)

		fmt.Printf("Querying %s address…\n", label)

		ip, err = resolver.Resolve(ctx, ver)
		if err != nil {
			exitResolveError(err)
		}

		fmt.Printf("Your public %s address is: %s\n", label, ip)
	}

	record, err := locator.Lookup(ctx, ip, *noCache)
	if err != nil {
		exitLookupError(err)
	}

	fmt.Println("\nGeolocation and ISP information:")
	fmt.Println("  Country  :", wailib.OrNA(record.CountryName))
	fmt.Println("  City     :", wailib.OrNA(record.City))
	fmt.Println("  Latitude :", record.Latitude)
	fmt.Println("  Longitude:", record.Longitude)
	fmt.Println("  ISP      :", wailib.OrNA(record.Org))
	fmt.Println("  ASN      :", wailib.OrNA(record.ASN))
}
