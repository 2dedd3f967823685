package addrmath

import (
	"fmt"
	"strings"
)

// Calculation is everything the subnet calculator reports for one input.
type Calculation struct {
	Input       string
	Address     uint32
	Network     Network
	Mask        uint32
	Wildcard    uint32
	Broadcast   uint32
	FirstUsable uint32
	LastUsable  uint32
	TotalHosts  uint64
	UsableHosts uint64
	Class       Class
	Type        AddressType
}

// Calculate parses text as CIDR and derives the subnet boundaries. Class and
// type are taken from the address as written, not from the network address.
func Calculate(text string) (Calculation, error) {
	ip, n, err := ParseCIDRHost(strings.TrimSpace(text))
	if err != nil {
		return Calculation{}, err
	}

	first, last := n.UsableRange()
	return Calculation{
		Input:       text,
		Address:     ip,
		Network:     n,
		Mask:        n.Mask(),
		Wildcard:    n.Wildcard(),
		Broadcast:   n.Broadcast(),
		FirstUsable: first,
		LastUsable:  last,
		TotalHosts:  n.TotalHosts(),
		UsableHosts: n.UsableHosts(),
		Class:       Classify(ip),
		Type:        TypeOf(ip),
	}, nil
}

// BinaryMask renders a mask as four dot-separated 8-bit groups.
func BinaryMask(mask uint32) string {
	return fmt.Sprintf("%08b.%08b.%08b.%08b", mask>>24, (mask>>16)&0xff, (mask>>8)&0xff, mask&0xff)
}
