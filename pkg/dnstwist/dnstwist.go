package dnstwist

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ravensec/domaintwist/internal/dictionary"
	"github.com/ravensec/domaintwist/internal/filter"
	"github.com/ravensec/domaintwist/internal/formatter"
	"github.com/ravensec/domaintwist/internal/fuzzer"
	"github.com/ravensec/domaintwist/internal/model"
	"github.com/ravensec/domaintwist/internal/pool"
	"github.com/ravensec/domaintwist/internal/progress"
	"github.com/ravensec/domaintwist/internal/resolver"
	"github.com/ravensec/domaintwist/internal/splitter"
	"github.com/ravensec/domaintwist/internal/styler"
	"github.com/ravensec/domaintwist/internal/suffix"
	"github.com/ravensec/domaintwist/internal/tld"
)

// defaultPort is the standard DNS port used when Options.Port is unset.
const defaultPort = 53

// Engine ties the generator, filter, resolver and reporting subsystems
// together for a single Options-driven run.
type Engine struct {
	opts Options
}

// New validates opts and returns a ready-to-run Engine.
func New(opts Options) (*Engine, error) {
	if opts.Domain == "" {
		return nil, fmt.Errorf("dnstwist: domain is required")
	}
	if opts.Registered && opts.Unregistered {
		return nil, fmt.Errorf("dnstwist: registered and unregistered are mutually exclusive")
	}
	return &Engine{opts: opts}, nil
}

// GetResults runs the full generate -> filter -> resolve pipeline and
// returns the resolved candidates. For the "idle" format, resolution is
// skipped entirely and every filtered candidate is returned unresolved,
// per spec.md's scenario for listing variants without querying DNS.
func (e *Engine) GetResults(ctx context.Context, progressOut io.Writer) (Results, error) {
	candidates, err := e.generate()
	if err != nil {
		return nil, err
	}

	if e.opts.Format == "idle" {
		return toResults(candidates), nil
	}

	resolved, err := e.resolve(ctx, candidates, progressOut)
	if err != nil {
		return nil, err
	}

	resolved = e.applyRegistrationFilter(resolved)
	return toResults(resolved), nil
}

// Run executes the same generate -> filter -> resolve pipeline as
// GetResults and renders the result through a Reporter in the shape
// Options.Format names, returning the final report text.
func (e *Engine) Run(ctx context.Context, progressOut io.Writer) (string, error) {
	candidates, err := e.generate()
	if err != nil {
		return "", err
	}

	var style *styler.Styler
	if e.opts.Format == "cli" || e.opts.Format == "" {
		style = styler.New(os.Stdout, e.opts.NoColor)
	}
	report := formatter.New(style)

	if e.opts.Format == "idle" {
		return report.Format(candidates, "idle", e.opts.All)
	}

	resolved, err := e.resolve(ctx, candidates, progressOut)
	if err != nil {
		return "", err
	}
	resolved = e.applyRegistrationFilter(resolved)

	return report.Format(resolved, e.opts.Format, e.opts.All)
}

func (e *Engine) generate() ([]model.Candidate, error) {
	idx := suffix.Empty()
	if e.opts.SuffixData != nil {
		loaded, err := suffix.Load(e.opts.SuffixData)
		if err != nil {
			return nil, fmt.Errorf("dnstwist: loading suffix data: %w", err)
		}
		idx = loaded
	}

	split, err := splitter.New(idx).Split(e.opts.Domain)
	if err != nil {
		return nil, err
	}

	set := model.NewCandidateSet()
	fuzzer.New().Generate(set, split)

	if len(e.opts.DictionaryWords) > 0 {
		dictionary.New().Generate(set, split, e.opts.DictionaryWords)
	}
	if len(e.opts.TLDs) > 0 {
		tld.New().Generate(set, split, e.opts.TLDs)
	}

	return filter.New().Apply(set.Slice()), nil
}

func (e *Engine) resolve(ctx context.Context, candidates []model.Candidate, progressOut io.Writer) ([]model.Candidate, error) {
	endpoints, err := e.endpoints()
	if err != nil {
		return nil, err
	}
	resolvers, err := resolver.New(endpoints)
	if err != nil {
		return nil, err
	}

	workerPool := pool.New(e.opts.Workers, resolvers)

	// reporter is passed to Run as a pool.Progress interface; a nil
	// *progress.Reporter boxed into that interface would compare unequal
	// to nil inside Run, so a genuinely nil interface value is kept when
	// no progress output was requested rather than a nil-valued pointer.
	var reporter *progress.Reporter
	var progressReporter pool.Progress
	if progressOut != nil {
		reporter = progress.New(len(candidates), progressOut)
		progressReporter = reporter
		go reporter.Run(ctx)
	}

	successes := workerPool.Run(ctx, candidates, progressReporter)

	if reporter != nil {
		reporter.Stop()
		reporter.Wait()
	}

	return successes.Freeze(), nil
}

// endpoints builds the resolver endpoint list from Options.Nameservers,
// falling back to a single well-known public resolver when none were
// configured; dnstwist never reads the host's own resolver configuration,
// since the entire point of a twist scan is to query authoritatively
// rather than inherit whatever forwarder the host happens to use.
func (e *Engine) endpoints() ([]resolver.Endpoint, error) {
	port := e.opts.Port
	if port == 0 {
		port = defaultPort
	}

	hosts := e.opts.Nameservers
	if len(hosts) == 0 {
		hosts = []string{"8.8.8.8"}
	}

	endpoints := make([]resolver.Endpoint, 0, len(hosts))
	for _, h := range hosts {
		if h == "" {
			continue
		}
		endpoints = append(endpoints, resolver.Endpoint{Host: h, Port: port})
	}
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("dnstwist: no usable nameservers configured")
	}
	return endpoints, nil
}

// applyRegistrationFilter narrows resolved candidates to only those with
// (Registered) or without (Unregistered) at least one live A record.
func (e *Engine) applyRegistrationFilter(candidates []model.Candidate) []model.Candidate {
	if !e.opts.Registered && !e.opts.Unregistered {
		return candidates
	}
	out := make([]model.Candidate, 0, len(candidates))
	for _, c := range candidates {
		live := len(c.Records[model.RecordA]) > 0
		if e.opts.Registered && live {
			out = append(out, c)
		}
		if e.opts.Unregistered && !live {
			out = append(out, c)
		}
	}
	return out
}

func toResults(candidates []model.Candidate) Results {
	out := make(Results, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, fromCandidate(c))
	}
	return out
}
