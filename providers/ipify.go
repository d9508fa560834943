package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/9seconds/whereami/wailib"
)

type ipifyProvider struct {
	client wailib.HTTPClient
	name   string
	url    string
}

func (i ipifyProvider) Name() string {
	return i.name
}

func (i ipifyProvider) Addr(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.url, nil)
	if err != nil {
		return "", fmt.Errorf("cannot build a request: %w", err)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot send a request: %w", err)
	}

	defer flushResponse(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	buf := &strings.Builder{}

	if err := copyResponse(buf, resp.Body); err != nil {
		return "", fmt.Errorf("cannot read a response: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

// NewIpify returns an echo provider backed by https://www.ipify.org
// which reports the public IPv4 address of the caller.
func NewIpify(client wailib.HTTPClient) wailib.EchoProvider {
	return ipifyProvider{
		client: client,
		name:   NameIpify,
		url:    "https://api.ipify.org",
	}
}

// NewIpify6 returns an echo provider backed by the IPv6 endpoint of
// https://www.ipify.org.
func NewIpify6(client wailib.HTTPClient) wailib.EchoProvider {
	return ipifyProvider{
		client: client,
		name:   NameIpify6,
		url:    "https://api6.ipify.org",
	}
}
