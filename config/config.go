package config

import (
	"io"
	"io/ioutil"
	"net"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"

	"github.com/9seconds/whereami/cache"
)

// DefaultHTTPTimeout limits every request to a remote endpoint.
const DefaultHTTPTimeout = 5 * time.Second

var VALID_PROXY_SCHEMES = map[string]bool{
	"http":   true,
	"https":  true,
	"socks5": true,
}

type duration struct {
	time.Duration
}

func (dur *duration) UnmarshalText(text []byte) (err error) {
	dur.Duration, err = time.ParseDuration(string(text))
	return
}

type proxyURL struct {
	*url.URL
}

func (p *proxyURL) UnmarshalText(text []byte) (err error) {
	p.URL, err = url.Parse(string(text))
	return
}

type Config struct {
	Listen             string
	CachePath          string   `toml:"cache_path"`
	CacheTTL           duration `toml:"cache_ttl"`
	HTTPTimeout        duration `toml:"http_timeout"`
	Proxy              proxyURL
	InsecureSkipVerify bool `toml:"insecure_skip_verify"`
}

func Parse(file io.Reader) (*Config, error) {
	conf := &Config{
		CacheTTL:           duration{cache.DefaultTTL},
		HTTPTimeout:        duration{DefaultHTTPTimeout},
		InsecureSkipVerify: true,
	}

	buf, err := ioutil.ReadAll(file)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot read config file")
	}

	if _, err := toml.Decode(string(buf), conf); err != nil {
		return nil, errors.Annotate(err, "Cannot parse config file")
	}

	if err = validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid value")
	}

	return conf, nil
}

func validate(conf *Config) error {
	if conf.Listen == "" {
		return errors.New("Listen address is not defined")
	}

	if _, _, err := net.SplitHostPort(conf.Listen); err != nil {
		return errors.Annotatef(err, "Incorrect listen address %s", conf.Listen)
	}

	if conf.CacheTTL.Duration <= 0 {
		return errors.Errorf("Incorrect cache ttl %v", conf.CacheTTL.Duration)
	}

	if conf.HTTPTimeout.Duration <= 0 {
		return errors.Errorf("Incorrect http timeout %v", conf.HTTPTimeout.Duration)
	}

	if conf.Proxy.URL != nil && !VALID_PROXY_SCHEMES[conf.Proxy.Scheme] {
		return errors.Errorf("Incorrect proxy url %s", conf.Proxy.URL)
	}

	return nil
}
