package dnstwist

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresDomain(t *testing.T) {
	_, err := New(Options{})
	require.Error(t, err)
}

func TestNew_RejectsRegisteredAndUnregisteredTogether(t *testing.T) {
	_, err := New(Options{Domain: "example.com", Registered: true, Unregistered: true})
	require.Error(t, err)
}

func TestRun_IdleFormatSkipsResolution(t *testing.T) {
	engine, err := New(Options{Domain: "example.com", Format: "idle"})
	require.NoError(t, err)

	out, err := engine.Run(context.Background(), nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines, "example.com")
	assert.Greater(t, len(lines), 1)
}

func TestGetResults_IdleFormatReturnsUnresolvedCandidates(t *testing.T) {
	engine, err := New(Options{Domain: "example.com", Format: "idle"})
	require.NoError(t, err)

	results, err := engine.GetResults(context.Background(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, r := range results {
		assert.Nil(t, r.DNS)
	}
}

func TestGenerate_RejectsInvalidDomain(t *testing.T) {
	engine, err := New(Options{Domain: "not a domain", Format: "idle"})
	require.NoError(t, err)

	_, err = engine.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestGenerate_HonorsDictionaryAndTLDOptions(t *testing.T) {
	withExtras, err := New(Options{
		Domain:          "example.com",
		Format:          "idle",
		DictionaryWords: []string{"secure"},
		TLDs:            []string{"net", "org"},
	})
	require.NoError(t, err)

	plain, err := New(Options{Domain: "example.com", Format: "idle"})
	require.NoError(t, err)

	withResults, err := withExtras.GetResults(context.Background(), nil)
	require.NoError(t, err)
	plainResults, err := plain.GetResults(context.Background(), nil)
	require.NoError(t, err)

	assert.Greater(t, len(withResults), len(plainResults))
}

func TestEndpoints_DefaultsWhenNoNameserversConfigured(t *testing.T) {
	engine, err := New(Options{Domain: "example.com"})
	require.NoError(t, err)

	endpoints, err := engine.endpoints()
	require.NoError(t, err)
	require.Len(t, endpoints, 1)
	assert.Equal(t, 53, endpoints[0].Port)
}

func TestEndpoints_UsesConfiguredPort(t *testing.T) {
	engine, err := New(Options{Domain: "example.com", Nameservers: []string{"1.1.1.1"}, Port: 5353})
	require.NoError(t, err)

	endpoints, err := engine.endpoints()
	require.NoError(t, err)
	require.Len(t, endpoints, 1)
	assert.Equal(t, 5353, endpoints[0].Port)
}
