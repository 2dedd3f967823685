package scopefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flarenzy/simple-ipam/internal/domain"
)

const sample = `version: "1"
subnets:
  - cidr: 10.1.0.0/24
    description: guest wifi
scopes:
  - name: guest
    subnet: 10.1.0.0/24
    range_start: 10.1.0.100
    range_end: 10.1.0.199
    gateway: 10.1.0.1
    dns_servers: [10.1.0.2, 1.1.1.1]
    lease_time: 8h
    allocated: 42
  - name: lab
    range_start: 10.1.0.10
    range_end: 10.1.0.20
`

func TestParseMapsScopes(t *testing.T) {
	seed, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	require.Len(t, seed.Subnets, 1)
	assert.Equal(t, domain.CreateSubnetInput{CIDR: "10.1.0.0/24", Description: "guest wifi"}, seed.Subnets[0])

	require.Len(t, seed.Scopes, 2)
	guest := seed.Scopes[0]
	assert.Equal(t, "guest", guest.Name)
	assert.Equal(t, "10.1.0.100", guest.RangeStart)
	assert.Equal(t, []string{"10.1.0.2", "1.1.1.1"}, guest.DNSServers)
	assert.Equal(t, 42, guest.AllocatedCount)
	assert.Zero(t, guest.TotalCount)
	assert.Empty(t, seed.Scopes[1].Subnet)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse(strings.NewReader("scopes:\n  - name: a\n    rnage_start: 10.0.0.1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseRequiresScopeName(t *testing.T) {
	_, err := Parse(strings.NewReader("scopes:\n  - range_start: 10.0.0.1\n    range_end: 10.0.0.2\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseRejectsUnsupportedVersion(t *testing.T) {
	_, err := Parse(strings.NewReader("version: \"2\"\nscopes: []\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseEmptyDocument(t *testing.T) {
	seed, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, seed.Scopes)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scopes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	seed, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, seed.Scopes, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
