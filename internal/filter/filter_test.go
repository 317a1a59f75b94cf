package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ravensec/domaintwist/internal/model"
)

func TestApply_PassesValidASCIINames(t *testing.T) {
	in := []model.Candidate{
		{Algorithm: model.Original, Name: "example.com"},
		{Algorithm: model.Addition, Name: "examplea.com"},
	}
	out := New().Apply(in)
	assert.Len(t, out, 2)
}

func TestApply_EncodesUnicodeLabelsToPunycode(t *testing.T) {
	in := []model.Candidate{
		{Algorithm: model.Homoglyph, Name: "exаmple.com"}, // Cyrillic 'а'
	}
	out := New().Apply(in)
	if assert.Len(t, out, 1) {
		assert.Contains(t, out[0].Name, "xn--")
	}
}

func TestApply_DeduplicatesByOriginalName(t *testing.T) {
	in := []model.Candidate{
		{Algorithm: model.Original, Name: "example.com"},
		{Algorithm: model.Addition, Name: "example.com"},
	}
	out := New().Apply(in)
	if assert.Len(t, out, 1) {
		assert.Equal(t, model.Original, out[0].Algorithm, "first occurrence wins")
	}
}

func TestApply_RejectsMalformedNames(t *testing.T) {
	in := []model.Candidate{
		{Algorithm: model.Various, Name: "examplecom.com"}, // well-formed, should pass
		{Algorithm: model.Subdomain, Name: "..broken.com"},
	}
	out := New().Apply(in)
	require := assert.New(t)
	require.Len(out, 1)
	require.Equal("examplecom.com", out[0].Name)
}

func TestApply_PreservesOrder(t *testing.T) {
	in := []model.Candidate{
		{Algorithm: model.Original, Name: "c.com"},
		{Algorithm: model.Original, Name: "a.com"},
		{Algorithm: model.Original, Name: "b.com"},
	}
	out := New().Apply(in)
	names := []string{out[0].Name, out[1].Name, out[2].Name}
	assert.Equal(t, []string{"c.com", "a.com", "b.com"}, names)
}
