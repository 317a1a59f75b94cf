package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravensec/domaintwist/internal/model"
)

func TestLoadWords_KeepsOnlyAlphabeticLines(t *testing.T) {
	words, err := LoadWords(strings.NewReader("secure\nlogin123\n\nbank\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"secure", "bank"}, words)
}

func TestGenerate_ProducesFourVariantsPerWord(t *testing.T) {
	set := model.NewCandidateSet()
	split := model.Split{Stem: "example", TLD: "com"}

	New().Generate(set, split, []string{"secure"})

	names := make(map[string]bool)
	for _, c := range set.Slice() {
		assert.Equal(t, model.Dictionary, c.Algorithm)
		names[c.Name] = true
	}

	assert.True(t, names["example-secure.com"])
	assert.True(t, names["examplesecure.com"])
	assert.True(t, names["secure-example.com"])
	assert.True(t, names["secureexample.com"])
	assert.Len(t, names, 4)
}

func TestGenerate_MultipleWords(t *testing.T) {
	set := model.NewCandidateSet()
	split := model.Split{Stem: "example", TLD: "com"}

	New().Generate(set, split, []string{"secure", "login"})
	assert.Equal(t, 8, set.Len())
}
