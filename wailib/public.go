package wailib

import (
	"net"

	cidrman "github.com/EvilSuperstars/go-cidrman"
	"github.com/asergeyev/nradix"
)

// Special-purpose ranges which must never be sent to geolocation
// providers. Taken from the IANA special-purpose address registries.
var (
	reservedV4 = []string{
		"0.0.0.0/8",
		"10.0.0.0/8",
		"100.64.0.0/10",
		"127.0.0.0/8",
		"169.254.0.0/16",
		"172.16.0.0/12",
		"192.0.0.0/24",
		"192.0.2.0/24",
		"192.88.99.0/24",
		"192.168.0.0/16",
		"198.18.0.0/15",
		"198.51.100.0/24",
		"203.0.113.0/24",
		"224.0.0.0/4",
		"240.0.0.0/4",
	}

	reservedV6 = []string{
		"::/128",
		"::1/128",
		"::ffff:0:0/96",
		"100::/64",
		"2001::/23",
		"2001:db8::/32",
		"2002::/16",
		"fc00::/7",
		"fe80::/10",
		"ff00::/8",
	}
)

var reservedTree = func() *nradix.Tree {
	tree := nradix.NewTree(0)

	for _, group := range [][]string{reservedV4, reservedV6} {
		merged, err := cidrman.MergeCIDRs(group)
		if err != nil {
			panic(err)
		}

		for _, cidr := range merged {
			if err := tree.AddCIDR(cidr, true); err != nil {
				panic(err)
			}
		}
	}

	return tree
}()

// IsPublic reports whether the given address is globally routable.
// Private, loopback, link-local, multicast and other special-purpose
// addresses are not.
func IsPublic(ip net.IP) bool {
	if ip == nil {
		return false
	}

	suffix := "/128"

	if ip.To4() != nil {
		suffix = "/32"
	}

	data, err := reservedTree.FindCIDR(ip.String() + suffix)

	return err == nil && data == nil
}
