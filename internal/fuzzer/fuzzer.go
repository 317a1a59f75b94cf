// Package fuzzer implements the FuzzEngine: a dozen deterministic
// perturbation algorithms that turn a single (stem, tld) Split into a
// family of candidate domain names, each tagged with the algorithm that
// produced it.
package fuzzer

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/ravensec/domaintwist/internal/homoglyph"
	"github.com/ravensec/domaintwist/internal/keyboard"
	"github.com/ravensec/domaintwist/internal/model"
)

// MaxHomoglyphCandidates caps the two-pass homoglyph expansion per input
// label. Homoglyph interaction is combinatorial in the number of
// confusable letters in the stem; without a ceiling a long stem with many
// substitutable letters can blow up into millions of candidates. Once the
// cap is hit, the second pass is skipped for any seed not yet processed.
const MaxHomoglyphCandidates = 2000

const vowels = "aeiou"

// Engine runs every perturbation algorithm against a Split and appends the
// resulting candidates to a CandidateSet. The warning latches below fire at
// most once per Engine (i.e. once per Generate call, since callers construct
// a fresh Engine per run).
type Engine struct {
	variousWarnOnce   sync.Once
	homoglyphWarnOnce sync.Once
}

// New returns a ready-to-use FuzzEngine.
func New() *Engine {
	return &Engine{}
}

// Generate always emits the Original* candidate first, then runs each
// perturbation algorithm in the fixed order documented in spec.md so
// reports are reproducible across runs.
func (e *Engine) Generate(set *model.CandidateSet, split model.Split) {
	set.Add(model.Candidate{Algorithm: model.Original, Name: split.Name()})

	for _, name := range e.addition(split.Stem) {
		set.Add(model.Candidate{Algorithm: model.Addition, Name: name + "." + split.TLD})
	}
	for _, name := range e.bitsquatting(split.Stem) {
		set.Add(model.Candidate{Algorithm: model.Bitsquatting, Name: name + "." + split.TLD})
	}
	for _, name := range e.homoglyph(split.Stem) {
		set.Add(model.Candidate{Algorithm: model.Homoglyph, Name: name + "." + split.TLD})
	}
	for _, name := range e.hyphenation(split.Stem) {
		set.Add(model.Candidate{Algorithm: model.Hyphenation, Name: name + "." + split.TLD})
	}
	for _, name := range e.insertion(split.Stem) {
		set.Add(model.Candidate{Algorithm: model.Insertion, Name: name + "." + split.TLD})
	}
	for _, name := range e.omission(split.Stem) {
		set.Add(model.Candidate{Algorithm: model.Omission, Name: name + "." + split.TLD})
	}
	for _, name := range e.repetition(split.Stem) {
		set.Add(model.Candidate{Algorithm: model.Repetition, Name: name + "." + split.TLD})
	}
	for _, name := range e.replacement(split.Stem) {
		set.Add(model.Candidate{Algorithm: model.Replacement, Name: name + "." + split.TLD})
	}
	for _, name := range e.subdomain(split.Stem) {
		set.Add(model.Candidate{Algorithm: model.Subdomain, Name: name + "." + split.TLD})
	}
	for _, name := range e.transposition(split.Stem) {
		set.Add(model.Candidate{Algorithm: model.Transposition, Name: name + "." + split.TLD})
	}
	for _, name := range e.vowelSwap(split.Stem) {
		set.Add(model.Candidate{Algorithm: model.VowelSwap, Name: name + "." + split.TLD})
	}
	for _, name := range e.various(split) {
		set.Add(model.Candidate{Algorithm: model.Various, Name: name})
	}
}

func (e *Engine) addition(s string) []string {
	out := make([]string, 0, 26)
	for c := byte('a'); c <= 'z'; c++ {
		out = append(out, s+string(c))
	}
	return out
}

func (e *Engine) bitsquatting(s string) []string {
	masks := [8]byte{1, 2, 4, 8, 16, 32, 64, 128}
	var out []string
	for i := 0; i < len(s); i++ {
		for _, mask := range masks {
			flipped := s[i] ^ mask
			if isDomainByte(flipped) {
				out = append(out, s[:i]+string(flipped)+s[i+1:])
			}
		}
	}
	return out
}

func isDomainByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || b == '-'
}

// homoglyph runs two passes: pass 1 substitutes confusable letters within
// every contiguous window of the stem; pass 2 repeats the same expansion
// starting from every pass-1 output, capturing multi-letter homoglyph
// interactions (e.g. "rn" standing in for "m").
func (e *Engine) homoglyph(s string) []string {
	pass1 := e.homoglyphPass(map[string]struct{}{s: {}}, make(map[string]struct{}))
	union := make(map[string]struct{}, len(pass1))
	for name := range pass1 {
		union[name] = struct{}{}
	}
	// Pass 2 adds into the same union, so the cap bounds the combined total.
	if len(union) < MaxHomoglyphCandidates {
		e.homoglyphPass(pass1, union)
	}
	delete(union, s)

	out := make([]string, 0, len(union))
	for name := range union {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// homoglyphPass expands every seed string, in sorted order, by substituting,
// within every window, every occurrence of a confusable letter with every
// glyph that can stand in for it. New names are added to result, and the
// expansion stops once result holds MaxHomoglyphCandidates names.
func (e *Engine) homoglyphPass(seeds, result map[string]struct{}) map[string]struct{} {
	domains := make([]string, 0, len(seeds))
	for domain := range seeds {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	for _, domain := range domains {
		for ws := 1; ws < len(domain); ws++ {
			for i := 0; i+ws <= len(domain); i++ {
				win := domain[i : i+ws]
				for j := 0; j < ws; j++ {
					c := win[j]
					glyphs, ok := homoglyph.Table[c]
					if !ok {
						continue
					}
					for _, g := range glyphs {
						replaced := strings.ReplaceAll(win, string(c), g)
						result[domain[:i]+replaced+domain[i+ws:]] = struct{}{}
						if len(result) >= MaxHomoglyphCandidates {
							e.homoglyphWarnOnce.Do(func() {
								log.Printf("fuzzer: homoglyph: hit the %d-candidate cap, truncating expansion", MaxHomoglyphCandidates)
							})
							return result
						}
					}
				}
			}
		}
	}
	return result
}

func (e *Engine) hyphenation(s string) []string {
	out := make([]string, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		out = append(out, s[:i]+"-"+s[i:])
	}
	return out
}

func (e *Engine) insertion(s string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := 1; i < len(s)-1; i++ {
		for _, layout := range keyboard.Layouts {
			neighbors, ok := layout.Neighbors(s[i])
			if !ok {
				continue
			}
			for _, c := range neighbors {
				before := s[:i] + string(c) + s[i:]
				after := s[:i] + s[i:i+1] + string(c) + s[i+1:]
				for _, name := range [2]string{before, after} {
					if _, dup := seen[name]; !dup {
						seen[name] = struct{}{}
						out = append(out, name)
					}
				}
			}
		}
	}
	return out
}

func (e *Engine) omission(s string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(s)+1)
	for i := 0; i < len(s); i++ {
		name := s[:i] + s[i+1:]
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}

	collapsed := collapseRuns(s)
	if collapsed != s {
		if _, dup := seen[collapsed]; !dup {
			out = append(out, collapsed)
		}
	}
	return out
}

// collapseRuns reduces every maximal run of identical characters to a
// single character.
func collapseRuns(s string) string {
	if len(s) == 0 {
		return s
	}
	var b strings.Builder
	b.WriteByte(s[0])
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func (e *Engine) repetition(s string) []string {
	var out []string
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			out = append(out, s[:i]+string(c)+s[i:])
		}
	}
	return out
}

func (e *Engine) replacement(s string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := 0; i < len(s); i++ {
		for _, layout := range keyboard.Layouts {
			neighbors, ok := layout.Neighbors(s[i])
			if !ok {
				continue
			}
			for _, c := range neighbors {
				name := s[:i] + string(c) + s[i+1:]
				if _, dup := seen[name]; !dup {
					seen[name] = struct{}{}
					out = append(out, name)
				}
			}
		}
	}
	return out
}

func (e *Engine) subdomain(s string) []string {
	var out []string
	for i := 1; i < len(s)-1; i++ {
		if s[i] != '-' && s[i] != '.' && s[i-1] != '-' && s[i-1] != '.' {
			out = append(out, s[:i]+"."+s[i:])
		}
	}
	return out
}

func (e *Engine) transposition(s string) []string {
	var out []string
	for i := 0; i < len(s)-1; i++ {
		if s[i] != s[i+1] {
			out = append(out, s[:i]+string(s[i+1])+string(s[i])+s[i+2:])
		}
	}
	return out
}

func (e *Engine) vowelSwap(s string) []string {
	var out []string
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(vowels, rune(s[i])) {
			continue
		}
		for _, v := range vowels {
			if byte(v) == s[i] {
				continue
			}
			out = append(out, s[:i]+string(v)+s[i+1:])
		}
	}
	return out
}

// various reproduces the source program's miscellaneous TLD mutations,
// including the documented bug where a compound tld yields a name with no
// separator between stem and tld (see SPEC_FULL.md Open Question 1). The
// result (e.g. "exampleco.uk" for example + co.uk) is still a syntactically
// valid name, so CandidateFilter keeps it like any other candidate.
func (e *Engine) various(split model.Split) []string {
	var out []string
	if strings.Contains(split.TLD, ".") {
		e.variousWarnOnce.Do(func() {
			log.Printf("fuzzer: various: compound tld %q yields a candidate with no separator between stem and tld", split.TLD)
		})
		parts := strings.Split(split.TLD, ".")
		last := parts[len(parts)-1]
		out = append(out, fmt.Sprintf("%s.%s", split.Stem, last))
		out = append(out, split.Stem+split.TLD)
	} else {
		out = append(out, fmt.Sprintf("%s%s.%s", split.Stem, split.TLD, split.TLD))
		if split.TLD != "com" {
			out = append(out, fmt.Sprintf("%s-%s.com", split.Stem, split.TLD))
		}
	}
	return out
}
