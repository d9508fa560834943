package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/9seconds/whereami/cache"
	"github.com/9seconds/whereami/config"
	"github.com/9seconds/whereami/providers"
	"github.com/9seconds/whereami/wailib"
	"github.com/9seconds/whereami/web"
)

var (
	app = kingpin.New(
		"whereamid",
		"Web service which shows public IP addresses and their geolocation.")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("WHEREAMID_DEBUG").
		Bool()
	configFile = app.Arg("config-path", "Path to the config.").
			Required().
			File()
)

func init() {
	godotenv.Load() // nolint: errcheck

	app.Version(version)
	log.SetFormatter(&log.TextFormatter{})
	log.SetLevel(log.InfoLevel)
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	conf, err := config.Parse(*configFile)
	if err != nil {
		log.Fatalf(err.Error())
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	client := makeHTTPClient(conf)
	logger := daemonLogger{}
	store := cache.NewFileStore(afero.NewOsFs(), conf.CachePath, conf.CacheTTL.Duration)

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

	srv := &http.Server{
		Addr:    conf.Listen,
		Handler: web.MakeServer(resolver, locator),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		srv.Shutdown(shutdownCtx) // nolint: errcheck
	}()

	log.WithFields(log.Fields{
		"listen": conf.Listen,
		"cache":  store.Path(),
	}).Info("Starting the server")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf(err.Error())
	}
}
