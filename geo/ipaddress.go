// Package geo looks up the geographic location of an IPv4 address
// through a pluggable resolver. The default resolver queries the Free IP
// API over HTTP; the domain types carry no I/O of their own.
package geo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidIP marks a string that is not a well-formed IPv4 address.
var ErrInvalidIP = errors.New("invalid IP address")

// IPAddress is an immutable IPv4 value object.
type IPAddress struct {
	octets [4]uint8
}

// ParseIPAddress parses dotted-decimal IPv4 notation: exactly four
// octets, each a decimal number between 0 and 255. Anything else —
// missing or extra segments, empty segments, non-numeric text — fails
// with an error wrapping ErrInvalidIP. IPv6 and shorthand forms are not
// accepted, which is why this does not delegate to net.ParseIP.
func ParseIPAddress(s string) (IPAddress, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return IPAddress{}, fmt.Errorf("%w: %q", ErrInvalidIP, s)
	}

	var ip IPAddress
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return IPAddress{}, fmt.Errorf("%w: %q", ErrInvalidIP, s)
		}
		if n < 0 || n > 255 {
			return IPAddress{}, fmt.Errorf("%w: octet %d out of range in %q", ErrInvalidIP, n, s)
		}
		ip.octets[i] = uint8(n)
	}
	return ip, nil
}

// String renders the address in dotted-decimal notation.
func (ip IPAddress) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", ip.octets[0], ip.octets[1], ip.octets[2], ip.octets[3])
}
