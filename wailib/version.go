package wailib

// IPVersion selects which IP protocol family an address should be
// discovered for.
type IPVersion string

const (
	IPv4 IPVersion = "ipv4"
	IPv6 IPVersion = "ipv6"
)

// ParseIPVersion converts a user supplied value into an IPVersion.
// Only the two exact identifiers are recognized.
func ParseIPVersion(value string) (IPVersion, error) {
	switch IPVersion(value) {
	case IPv4:
		return IPv4, nil
	case IPv6:
		return IPv6, nil
	}

	return "", &Error{
		Kind:    FailureInvalidIPVersion,
		Message: "unknown ip version: " + value,
	}
}
