package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
)

func TestCatalogDefineRejectsOverlap(t *testing.T) {
	c := NewSubnetCatalog(NewAddressRegistry())

	s, err := c.Define(Subnet{Network: addrmath.MustParseCIDR("10.0.0.0/24"), Description: "lan"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.ID)

	_, err = c.Define(Subnet{Network: addrmath.MustParseCIDR("10.0.0.128/25")})
	require.ErrorIs(t, err, ErrConflict)
	_, err = c.Define(Subnet{Network: addrmath.MustParseCIDR("10.0.0.0/16")})
	require.ErrorIs(t, err, ErrConflict)

	s2, err := c.Define(Subnet{Network: addrmath.MustParseCIDR("10.0.1.0/24")})
	require.NoError(t, err)
	assert.Equal(t, int64(2), s2.ID)

	require.ErrorIs(t, c.CheckOverlap(addrmath.MustParseCIDR("10.0.1.7/32")), ErrConflict)
	require.NoError(t, c.CheckOverlap(addrmath.MustParseCIDR("10.0.2.0/24")))
}

func TestCatalogDefineRejectsNonCanonical(t *testing.T) {
	c := NewSubnetCatalog(NewAddressRegistry())
	_, err := c.Define(Subnet{Network: addrmath.Network{Base: 0x0a000001, Bits: 24}})
	require.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestCatalogGetAndUndefine(t *testing.T) {
	c := NewSubnetCatalog(NewAddressRegistry())
	s, err := c.Define(Subnet{Network: addrmath.MustParseCIDR("192.168.1.0/24")})
	require.NoError(t, err)

	got, err := c.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, got)

	assert.True(t, c.Undefine(s.ID))
	assert.False(t, c.Undefine(s.ID))
	_, err = c.Get(s.ID)
	require.ErrorIs(t, err, ErrSubnetNotFound)
}

func TestCatalogListOrderedByBase(t *testing.T) {
	c := NewSubnetCatalog(NewAddressRegistry())
	for _, cidr := range []string{"192.168.0.0/24", "10.0.0.0/8", "172.16.0.0/12"} {
		_, err := c.Define(Subnet{Network: addrmath.MustParseCIDR(cidr)})
		require.NoError(t, err)
	}

	var got []string
	for _, s := range c.List() {
		got = append(got, s.Network.String())
	}
	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/24"}, got)
}

func TestCatalogSummarize(t *testing.T) {
	r := NewAddressRegistry()
	c := NewSubnetCatalog(r)
	n := addrmath.MustParseCIDR("10.0.0.0/24")

	require.NoError(t, r.Upsert(addr(t, "10.0.0.1", "10.0.0.0/24", StatusAllocated, "a")))
	require.NoError(t, r.Upsert(addr(t, "10.0.0.2", "10.0.0.0/24", StatusAllocated, "b")))
	require.NoError(t, r.Upsert(addr(t, "10.0.0.3", "10.0.0.0/24", StatusAvailable, "")))

	s := c.Summarize(n)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Allocated)
	assert.Equal(t, 1, s.Available)
	assert.Equal(t, 67, s.UtilizationPercent)
	assert.Equal(t, uint64(254), s.Capacity)
	assert.False(t, s.Defined)
}

func TestCatalogSummarizeEmptySubnetIsZeroPercent(t *testing.T) {
	c := NewSubnetCatalog(NewAddressRegistry())
	s := c.Summarize(addrmath.MustParseCIDR("10.9.0.0/16"))
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.UtilizationPercent)
}

func TestCatalogSummarizeAllUnionAndOrder(t *testing.T) {
	r := NewAddressRegistry()
	c := NewSubnetCatalog(r)

	_, err := c.Define(Subnet{Network: addrmath.MustParseCIDR("192.168.1.0/24"), Description: "office"})
	require.NoError(t, err)
	require.NoError(t, r.Upsert(addr(t, "10.0.0.1", "10.0.0.0/24", StatusAllocated, "a")))
	require.NoError(t, r.Upsert(addr(t, "10.0.0.1", "10.0.0.0/16", StatusAllocated, "a")))
	require.NoError(t, r.Upsert(addr(t, "10.0.1.1", "10.0.0.0/16", StatusReserved, "")))

	all := c.SummarizeAll()
	require.Len(t, all, 2)
	assert.Equal(t, "10.0.0.0/16", all[0].Network.String())
	assert.Equal(t, 2, all[0].Total)
	assert.Equal(t, 50, all[0].UtilizationPercent)
	assert.Equal(t, "192.168.1.0/24", all[1].Network.String())
	assert.True(t, all[1].Defined)
	assert.Equal(t, "office", all[1].Description)
	assert.Equal(t, 0, all[1].Total)
}

func TestCatalogTotals(t *testing.T) {
	r := NewAddressRegistry()
	c := NewSubnetCatalog(r)
	require.NoError(t, r.Upsert(addr(t, "10.0.0.1", "10.0.0.0/24", StatusAllocated, "a")))
	require.NoError(t, r.Upsert(addr(t, "10.0.0.2", "10.0.0.0/24", StatusQuarantine, "")))
	require.NoError(t, r.Upsert(addr(t, "10.0.1.2", "10.0.1.0/24", StatusAvailable, "")))

	assert.Equal(t, Totals{Total: 3, Allocated: 1, Available: 1, Quarantine: 1}, c.Totals())
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 0, Percent(5, 0))
	assert.Equal(t, 50, Percent(1, 2))
	assert.Equal(t, 33, Percent(1, 3))
	assert.Equal(t, 67, Percent(2, 3))
	assert.Equal(t, 100, Percent(4, 4))
}
