// Package tld implements the TldSwapper: it replaces a domain's TLD with
// every entry of a configured TLD list, tagging each result TLD-swap.
package tld

import (
	"bufio"
	"io"
	"strings"

	"github.com/ravensec/domaintwist/internal/model"
)

// Swapper generates TLD-swap candidates.
type Swapper struct{}

// New returns a ready-to-use TldSwapper.
func New() *Swapper {
	return &Swapper{}
}

// LoadTLDs reads one TLD per line from r. Blank lines and lines starting
// with "//" are ignored, matching the format of the dictionary files this
// engine was seeded from.
func LoadTLDs(r io.Reader) ([]string, error) {
	var tlds []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if idx := strings.Index(line, "//"); idx != -1 {
			line = strings.TrimSpace(line[:idx])
		}
		line = strings.ToLower(line)
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		tlds = append(tlds, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tlds, nil
}

// Generate emits one candidate per tld in tlds other than split's own TLD.
func (s *Swapper) Generate(set *model.CandidateSet, split model.Split, tlds []string) {
	for _, t := range tlds {
		if t == split.TLD {
			continue
		}
		set.Add(model.Candidate{Algorithm: model.TLDSwap, Name: split.Stem + "." + t})
	}
}
