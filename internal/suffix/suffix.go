// Package suffix builds the PublicSuffixIndex: a mapping from a two-letter
// country TLD to the second-level labels registered under it, parsed once
// from a public-suffix data file at startup.
package suffix

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var lineRe = regexp.MustCompile(`(?i)^[a-z]{2,4}\.[a-z]{2}$`)

// Index is a read-only lookup built once at startup and never mutated.
type Index struct {
	ccTLD map[string][]string
}

// Load parses r line by line, keeping only lines matching
// ^[a-z]{2,4}\.[a-z]{2}$ (case-insensitive); every other line is ignored.
func Load(r io.Reader) (*Index, error) {
	idx := &Index{ccTLD: make(map[string][]string)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || !lineRe.MatchString(line) {
			continue
		}
		parts := strings.SplitN(line, ".", 2)
		sld, tld := parts[0], parts[1]
		idx.ccTLD[tld] = append(idx.ccTLD[tld], sld)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return idx, nil
}

// Empty returns an index with no entries, for inputs that never use a
// compound TLD (e.g. in tests, or when no suffix file was supplied).
func Empty() *Index {
	return &Index{ccTLD: make(map[string][]string)}
}

// SecondLevels returns the second-level labels registered under cc (e.g.
// "uk" -> ["co", "org", "me", ...]), and whether cc is present at all.
func (idx *Index) SecondLevels(cc string) ([]string, bool) {
	sld, ok := idx.ccTLD[strings.ToLower(cc)]
	return sld, ok
}

// Has reports whether sld is a registered second-level label under cc
// (e.g. Has("uk", "co") for "co.uk").
func (idx *Index) Has(cc, sld string) bool {
	slds, ok := idx.ccTLD[strings.ToLower(cc)]
	if !ok {
		return false
	}
	sld = strings.ToLower(sld)
	for _, s := range slds {
		if s == sld {
			return true
		}
	}
	return false
}
