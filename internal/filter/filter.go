// Package filter implements the CandidateFilter: it IDNA-encodes every
// generated candidate, rejects invalid labels, and deduplicates on the
// un-encoded name, keeping the first-inserted algorithm tag.
package filter

import (
	"regexp"

	"golang.org/x/net/idna"

	"github.com/ravensec/domaintwist/internal/model"
)

// labelRe mirrors the source program's post-IDNA validation: 4-253 total
// characters, dot-separated labels of 1-63 characters that don't start or
// end with a hyphen, and a final alphabetic label of 2-63 characters.
var labelRe = regexp.MustCompile(`^(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}\.?$`)

// Filter applies IDNA validation and name-level deduplication.
type Filter struct{}

// New returns a ready-to-use CandidateFilter.
func New() *Filter {
	return &Filter{}
}

// Apply walks candidates in order, keeping the first occurrence of each
// un-encoded name that passes IDNA encoding and the label regex. The
// candidate's Name is replaced with its IDNA-encoded, ASCII-safe form.
func (f *Filter) Apply(candidates []model.Candidate) []model.Candidate {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]model.Candidate, 0, len(candidates))

	for _, c := range candidates {
		encoded, ok := f.encode(c.Name)
		if !ok {
			continue
		}
		if _, dup := seen[c.Name]; dup {
			continue
		}
		seen[c.Name] = struct{}{}
		c.Name = encoded
		out = append(out, c)
	}
	return out
}

// encode IDNA-encodes name and validates the result, returning false if
// the name should be dropped.
func (f *Filter) encode(name string) (string, bool) {
	encoded, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", false
	}
	// Stray non-ASCII bytes that IDNA silently passed through without
	// Punycode-transforming would show up as equal-length-but-different
	// strings; that indicates the encoder did not actually map anything.
	if len(name) == len(encoded) && name != encoded {
		return "", false
	}
	if len(encoded) < 4 || len(encoded) > 253 || !labelRe.MatchString(encoded) {
		return "", false
	}
	return encoded, true
}
