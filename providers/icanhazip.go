package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/9seconds/whereami/wailib"
)

type icanhazipProvider struct {
	client wailib.HTTPClient
}

func (i icanhazipProvider) Name() string {
	return NameICanHazIP6
}

func (i icanhazipProvider) Addr(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx,
		http.MethodGet, "https://ipv6.icanhazip.com", nil)
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

// NewICanHazIP6 returns an echo provider backed by the IPv6 endpoint
// of https://icanhazip.com. It is used as a second opinion when ipify
// cannot be reached.
func NewICanHazIP6(client wailib.HTTPClient) wailib.EchoProvider {
	return icanhazipProvider{client: client}
}
