package addrmath

// Class is the legacy classful bucket of an address, decided by its first
// octet. 0 and 127 fall outside the classful scheme and get their own
// buckets instead of being folded into class A.
type Class string

const (
	ClassA           Class = "A"
	ClassB           Class = "B"
	ClassC           Class = "C"
	ClassD           Class = "D"
	ClassE           Class = "E"
	ClassLoopback    Class = "Loopback"
	ClassUnspecified Class = "Unspecified"
)

// Label is the calculator display text.
func (c Class) Label() string {
	switch c {
	case ClassD:
		return "D (Multicast)"
	case ClassE:
		return "E (Reserved)"
	default:
		return string(c)
	}
}

func Classify(ip uint32) Class {
	first := ip >> 24
	switch {
	case first == 0:
		return ClassUnspecified
	case first == 127:
		return ClassLoopback
	case first <= 126:
		return ClassA
	case first <= 191:
		return ClassB
	case first <= 223:
		return ClassC
	case first <= 239:
		return ClassD
	default:
		return ClassE
	}
}

// AddressType buckets an address by the well-known special-purpose ranges.
type AddressType string

const (
	TypePublic    AddressType = "Public"
	TypePrivateA  AddressType = "PrivateA"
	TypePrivateB  AddressType = "PrivateB"
	TypePrivateC  AddressType = "PrivateC"
	TypeLoopback  AddressType = "Loopback"
	TypeLinkLocal AddressType = "APIPA"
)

func (t AddressType) Label() string {
	switch t {
	case TypePrivateA:
		return "Private (Class A)"
	case TypePrivateB:
		return "Private (Class B)"
	case TypePrivateC:
		return "Private (Class C)"
	default:
		return string(t)
	}
}

var specialRanges = []struct {
	network Network
	kind    AddressType
}{
	{MustParseCIDR("10.0.0.0/8"), TypePrivateA},
	{MustParseCIDR("172.16.0.0/12"), TypePrivateB},
	{MustParseCIDR("192.168.0.0/16"), TypePrivateC},
	{MustParseCIDR("127.0.0.0/8"), TypeLoopback},
	{MustParseCIDR("169.254.0.0/16"), TypeLinkLocal},
}

// TypeOf uses RFC 1918 for the private ranges, 127.0.0.0/8 for loopback and
// 169.254.0.0/16 for APIPA. Everything else is public.
func TypeOf(ip uint32) AddressType {
	for _, r := range specialRanges {
		if r.network.Contains(ip) {
			return r.kind
		}
	}
	return TypePublic
}
