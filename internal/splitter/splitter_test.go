package splitter

import (
	"strings"
	"testing"

	"golang.org/x/net/publicsuffix"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravensec/domaintwist/internal/model"
	"github.com/ravensec/domaintwist/internal/suffix"
)

func idxWithUK(t *testing.T) *suffix.Index {
	t.Helper()
	idx, err := suffix.Load(strings.NewReader("co.uk\norg.uk\n"))
	require.NoError(t, err)
	return idx
}

func TestSplit_SimpleTwoLabelDomain(t *testing.T) {
	s := New(suffix.Empty())
	split, err := s.Split("example.com")
	require.NoError(t, err)
	assert.Equal(t, model.Split{Stem: "example", TLD: "com"}, split)
}

func TestSplit_StripsSchemeAndPath(t *testing.T) {
	s := New(suffix.Empty())
	split, err := s.Split("https://example.com/path?query=1")
	require.NoError(t, err)
	assert.Equal(t, model.Split{Stem: "example", TLD: "com"}, split)
}

func TestSplit_CompoundTLDRecognized(t *testing.T) {
	s := New(idxWithUK(t))
	split, err := s.Split("example.co.uk")
	require.NoError(t, err)
	assert.Equal(t, model.Split{Stem: "example", TLD: "co.uk"}, split)
}

func TestSplit_UnregisteredCompoundFallsBackToLastLabel(t *testing.T) {
	s := New(idxWithUK(t))
	split, err := s.Split("foo.bar.uk")
	require.NoError(t, err)
	assert.Equal(t, model.Split{Stem: "foo.bar", TLD: "uk"}, split)
}

func TestSplit_NilIndexFallsBackToLastLabel(t *testing.T) {
	s := New(nil)
	split, err := s.Split("a.b.example.com")
	require.NoError(t, err)
	assert.Equal(t, model.Split{Stem: "a.b.example", TLD: "com"}, split)
}

func TestSplit_LowercasesHost(t *testing.T) {
	s := New(suffix.Empty())
	split, err := s.Split("EXAMPLE.COM")
	require.NoError(t, err)
	assert.Equal(t, model.Split{Stem: "example", TLD: "com"}, split)
}

func TestSplit_RejectsEmptyHost(t *testing.T) {
	s := New(suffix.Empty())
	_, err := s.Split("http://")
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

func TestSplit_RejectsInvalidCharacters(t *testing.T) {
	s := New(suffix.Empty())
	_, err := s.Split("not a domain")
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

func TestSplit_RejectsSingleLabelHost(t *testing.T) {
	s := New(suffix.Empty())
	_, err := s.Split("localhost")
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

// TestSplit_AgreesWithPublicSuffixOracle cross-checks the compound-TLD
// branch against golang.org/x/net/publicsuffix, an independent source of
// truth for which "co.uk"-shaped suffixes are actually registered.
func TestSplit_AgreesWithPublicSuffixOracle(t *testing.T) {
	host := "example.co.uk"
	_, icann := publicsuffix.PublicSuffix(host)
	require.True(t, icann, "co.uk is expected to be an ICANN-managed public suffix")

	s := New(idxWithUK(t))
	split, err := s.Split(host)
	require.NoError(t, err)
	assert.Equal(t, "co.uk", split.TLD)
}

func TestSplit_RejectsOverlongHost(t *testing.T) {
	s := New(suffix.Empty())
	long := strings.Repeat("a", 253) + ".com"
	_, err := s.Split(long)
	assert.ErrorIs(t, err, ErrInvalidDomain)
}
