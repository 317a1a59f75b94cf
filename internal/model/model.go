// Package model holds the shared data types that flow through the
// generator, filter, resolver and reporter stages: a Candidate, the
// ordered deduplicating set the generators feed, and the append-only
// list of live results the worker pool produces.
package model

import "sync"

// Algorithm tags the generator that first produced a Candidate name.
type Algorithm string

const (
	Original      Algorithm = "Original*"
	Addition      Algorithm = "Addition"
	Bitsquatting  Algorithm = "Bitsquatting"
	Homoglyph     Algorithm = "Homoglyph"
	Hyphenation   Algorithm = "Hyphenation"
	Insertion     Algorithm = "Insertion"
	Omission      Algorithm = "Omission"
	Repetition    Algorithm = "Repetition"
	Replacement   Algorithm = "Replacement"
	Subdomain     Algorithm = "Subdomain"
	Transposition Algorithm = "Transposition"
	VowelSwap     Algorithm = "Vowel-swap"
	Various       Algorithm = "Various"
	Dictionary    Algorithm = "Dictionary"
	TLDSwap       Algorithm = "TLD-swap"
)

// RecordKind names the DNS record families a Candidate can carry once
// resolved.
type RecordKind string

const (
	RecordA  RecordKind = "dns-a"
	RecordNS RecordKind = "dns-ns"
	RecordMX RecordKind = "dns-mx"
)

// Split is the (stem, tld) pair a domain name normalizes to.
type Split struct {
	Stem string
	TLD  string
}

// Name joins the split back into a dotted domain name.
func (s Split) Name() string {
	return s.Stem + "." + s.TLD
}

// Candidate is one generated variant, pre- or post-resolution. Records is
// nil until a worker resolves the name; after resolution it holds entries
// only for the families that produced answers.
type Candidate struct {
	Algorithm Algorithm
	Name      string
	Records   map[RecordKind][]string
}

// HasRecords reports whether resolution attached any record family.
func (c *Candidate) HasRecords() bool {
	return len(c.Records) > 0
}

// AppendRecord appends a value to the named record family, creating the
// map and the slice on first use.
func (c *Candidate) AppendRecord(kind RecordKind, value string) {
	if c.Records == nil {
		c.Records = make(map[RecordKind][]string)
	}
	c.Records[kind] = append(c.Records[kind], value)
}

// CandidateSet is a FIFO queue with membership semantics: inserting a name
// that is already present is a silent no-op, so the first-inserted
// algorithm tag wins and insertion order is preserved for reproducible
// reports.
type CandidateSet struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	ordered []Candidate
}

// NewCandidateSet returns an empty set.
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{seen: make(map[string]struct{})}
}

// Add inserts a candidate if its name has not been seen before. It returns
// true if the candidate was newly added.
func (s *CandidateSet) Add(c Candidate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[c.Name]; ok {
		return false
	}
	s.seen[c.Name] = struct{}{}
	s.ordered = append(s.ordered, c)
	return true
}

// Len returns the number of distinct candidates currently held.
func (s *CandidateSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ordered)
}

// Slice returns a copy of the candidates in first-insertion order.
func (s *CandidateSet) Slice() []Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Candidate, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// SuccessList is an ordered, append-only, multi-producer-safe collection
// of candidates that resolved to at least one non-NXDOMAIN answer.
// Ordering reflects worker completion order, not generation order.
type SuccessList struct {
	mu    sync.Mutex
	items []Candidate
}

// NewSuccessList returns an empty success list.
func NewSuccessList() *SuccessList {
	return &SuccessList{}
}

// Append adds a resolved candidate to the list.
func (s *SuccessList) Append(c Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, c)
}

// Len returns the number of successes recorded so far.
func (s *SuccessList) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Freeze returns a stable snapshot of the successes collected so far. Once
// the worker pool has drained, no further Append calls occur and the
// snapshot is final.
func (s *SuccessList) Freeze() []Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Candidate, len(s.items))
	copy(out, s.items)
	return out
}
