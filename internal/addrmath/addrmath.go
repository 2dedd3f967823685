// Package addrmath converts between dotted-quad notation, 32-bit integers and
// CIDR prefixes, and derives subnet boundaries from them.
//
// Every function in this package is pure. Addresses are carried as uint32 in
// network byte order; dotted quads are only a display encoding.
package addrmath

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ParseAddr parses an IPv4 dotted quad. IPv6 literals, IPv4-mapped IPv6 and
// any literal netip refuses (truncated, zero-padded, out of range octets) are
// rejected with ErrInvalidAddress.
func ParseAddr(text string) (uint32, error) {
	addr, err := netip.ParseAddr(text)
	if err != nil || !addr.Is4() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, text)
	}
	return FromAddr(addr), nil
}

// ParseCIDR parses "a.b.c.d/n" into its canonical network.
func ParseCIDR(text string) (Network, error) {
	_, n, err := ParseCIDRHost(text)
	return n, err
}

// ParseCIDRHost is ParseCIDR that also returns the host address as written,
// before the host bits are cleared.
func ParseCIDRHost(text string) (uint32, Network, error) {
	parts := strings.Split(text, "/")
	if len(parts) != 2 {
		return 0, Network{}, fmt.Errorf("%w: expected address/prefix, got %q", ErrInvalidFormat, text)
	}

	ip, err := ParseAddr(parts[0])
	if err != nil {
		return 0, Network{}, err
	}

	bits, err := parsePrefixLength(parts[1])
	if err != nil {
		return 0, Network{}, err
	}

	return ip, Network{Base: NetworkAddress(ip, bits), Bits: bits}, nil
}

func parsePrefixLength(text string) (int, error) {
	if text == "" || len(text) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrefix, text)
	}
	for _, c := range text {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrefix, text)
		}
	}
	bits, err := strconv.Atoi(text)
	if err != nil || bits < 0 || bits > 32 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrefix, text)
	}
	return bits, nil
}

// ToDottedQuad renders ip as a.b.c.d.
func ToDottedQuad(ip uint32) string {
	return ToAddr(ip).String()
}

// ToAddr converts ip to a netip.Addr.
func ToAddr(ip uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], ip)
	return netip.AddrFrom4(b)
}

// FromAddr converts an IPv4 (or IPv4-mapped) netip.Addr to its integer form.
func FromAddr(addr netip.Addr) uint32 {
	b := addr.Unmap().As4()
	return binary.BigEndian.Uint32(b[:])
}

// NetworkMask returns the subnet mask for a prefix length. Lengths outside
// [0,32] are clamped.
func NetworkMask(bits int) uint32 {
	switch {
	case bits <= 0:
		return 0
	case bits >= 32:
		return ^uint32(0)
	default:
		return ^uint32(0) << (32 - bits)
	}
}

// WildcardMask is the bitwise complement of NetworkMask.
func WildcardMask(bits int) uint32 {
	return ^NetworkMask(bits)
}

func NetworkAddress(ip uint32, bits int) uint32 {
	return ip & NetworkMask(bits)
}

func BroadcastAddress(ip uint32, bits int) uint32 {
	return NetworkAddress(ip, bits) | WildcardMask(bits)
}

// UsableHostRange returns the first and last assignable host of a subnet.
//
// Prefixes up to /30 exclude the network and broadcast addresses. A /31 is a
// point-to-point link (RFC 3021) where both addresses are usable, and a /32
// is the single address itself.
func UsableHostRange(network, broadcast uint32, bits int) (uint32, uint32) {
	switch {
	case bits >= 32:
		return network, network
	case bits == 31:
		return network, broadcast
	default:
		return network + 1, broadcast - 1
	}
}

// TotalHosts is 2^(32-bits).
func TotalHosts(bits int) uint64 {
	if bits < 0 {
		bits = 0
	}
	if bits > 32 {
		bits = 32
	}
	return uint64(1) << (32 - bits)
}

// UsableHosts follows the same edge policy as UsableHostRange.
func UsableHosts(bits int) uint64 {
	switch {
	case bits >= 32:
		return 1
	case bits == 31:
		return 2
	default:
		return TotalHosts(bits) - 2
	}
}
