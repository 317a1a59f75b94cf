// Package dnstwist wires the generator and resolution subsystems
// (fuzzer, dictionary, tld, filter, resolver, pool, progress, formatter)
// into the single Engine the CLI drives.
package dnstwist

import (
	"io"

	"github.com/ravensec/domaintwist/internal/model"
)

// Options configures a single Engine run.
type Options struct {
	// Domain is the target domain or URL to analyze.
	Domain string

	// All prints every record in CLI/CSV output instead of just the first.
	All bool

	// DictionaryWords, if non-empty, drives DictionaryComposer.
	DictionaryWords []string

	// TLDs, if non-empty, drives TldSwapper.
	TLDs []string

	// SuffixData is the parsed public-suffix file content. A nil reader
	// means DomainSplitter falls back to the simple two-label split for
	// any three-plus label input.
	SuffixData io.Reader

	// Format selects the Reporter shape: cli, csv, json, or idle.
	Format string

	// Workers is the WorkerPool size; non-positive values fall back to
	// pool.DefaultWorkers.
	Workers int

	// Nameservers is the ordered list of resolver hosts the ResolverPool
	// round-robins across.
	Nameservers []string

	// Port is the UDP/TCP port every resolver endpoint is queried on.
	Port int

	// Registered, if true, keeps only candidates with at least one A
	// record. Unregistered, if true, keeps only candidates without one.
	// The two are mutually exclusive.
	Registered   bool
	Unregistered bool

	// NoColor forces plain-text CLI/progress output even on a TTY.
	NoColor bool
}

// Result is the public, serializable shape of a resolved candidate.
type Result struct {
	Fuzzer string              `json:"fuzzer"`
	Domain string              `json:"domain"`
	DNS    map[string][]string `json:"dns,omitempty"`
}

// Results is an ordered collection of Result.
type Results []Result

func fromCandidate(c model.Candidate) Result {
	r := Result{Fuzzer: string(c.Algorithm), Domain: c.Name}
	if len(c.Records) > 0 {
		r.DNS = make(map[string][]string, len(c.Records))
		for kind, values := range c.Records {
			r.DNS[string(kind)] = values
		}
	}
	return r
}
