package homoglyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_CoversEveryLowercaseLetter(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		glyphs, ok := Table[c]
		assert.Truef(t, ok, "missing homoglyph entry for %q", c)
		assert.NotEmptyf(t, glyphs, "empty homoglyph entry for %q", c)
	}
}

func TestTable_MEntryIncludesMultiCharGlyphs(t *testing.T) {
	assert.Contains(t, Table['m'], "rn", "rn is the classic m homoglyph")
}
