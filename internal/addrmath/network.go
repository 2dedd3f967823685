package addrmath

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// Network is a CIDR block in canonical form: Base always has its host bits
// cleared. The zero value is 0.0.0.0/0.
type Network struct {
	Base uint32
	Bits int
}

// NewNetwork builds the canonical network containing ip.
func NewNetwork(ip uint32, bits int) (Network, error) {
	if bits < 0 || bits > 32 {
		return Network{}, fmt.Errorf("%w: /%d", ErrInvalidPrefix, bits)
	}
	return Network{Base: NetworkAddress(ip, bits), Bits: bits}, nil
}

// MustParseCIDR is ParseCIDR that panics on error. For tests and constants.
func MustParseCIDR(text string) Network {
	n, err := ParseCIDR(text)
	if err != nil {
		panic(err)
	}
	return n
}

// FromPrefix converts an IPv4 netip.Prefix.
func FromPrefix(p netip.Prefix) (Network, error) {
	if !p.IsValid() || !p.Addr().Unmap().Is4() {
		return Network{}, fmt.Errorf("%w: %s", ErrInvalidAddress, p)
	}
	bits := p.Bits()
	if p.Addr().Is4In6() {
		bits -= 96
	}
	return NewNetwork(FromAddr(p.Addr()), bits)
}

func (n Network) String() string {
	return fmt.Sprintf("%s/%d", ToDottedQuad(n.Base), n.Bits)
}

func (n Network) Valid() bool {
	return n.Bits >= 0 && n.Bits <= 32 && n.Base == NetworkAddress(n.Base, n.Bits)
}

func (n Network) Mask() uint32      { return NetworkMask(n.Bits) }
func (n Network) Wildcard() uint32  { return WildcardMask(n.Bits) }
func (n Network) Broadcast() uint32 { return BroadcastAddress(n.Base, n.Bits) }

// Contains reports whether ip falls inside the block, network and broadcast
// addresses included.
func (n Network) Contains(ip uint32) bool {
	return NetworkAddress(ip, n.Bits) == n.Base
}

// Covers reports whether other lies entirely inside n.
func (n Network) Covers(other Network) bool {
	return other.Bits >= n.Bits && n.Contains(other.Base)
}

func (n Network) Overlaps(other Network) bool {
	return n.Covers(other) || other.Covers(n)
}

// UsableRange returns the first and last usable host.
func (n Network) UsableRange() (uint32, uint32) {
	return UsableHostRange(n.Base, n.Broadcast(), n.Bits)
}

func (n Network) TotalHosts() uint64  { return TotalHosts(n.Bits) }
func (n Network) UsableHosts() uint64 { return UsableHosts(n.Bits) }

// Less orders networks by base address, then by prefix length.
func (n Network) Less(other Network) bool {
	if n.Base != other.Base {
		return n.Base < other.Base
	}
	return n.Bits < other.Bits
}

// Compare is Less in the three-way form used by slices.SortFunc.
func (n Network) Compare(other Network) int {
	switch {
	case n.Less(other):
		return -1
	case other.Less(n):
		return 1
	default:
		return 0
	}
}

func (n Network) Prefix() netip.Prefix {
	return netip.PrefixFrom(ToAddr(n.Base), n.Bits)
}

// IPRange is the full block as a netipx range.
func (n Network) IPRange() netipx.IPRange {
	return netipx.RangeOfPrefix(n.Prefix())
}

func (n Network) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Network) UnmarshalText(text []byte) error {
	parsed, err := ParseCIDR(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
