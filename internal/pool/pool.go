// Package pool implements the WorkerPool: K cooperative goroutines drain a
// shared candidate queue, resolve each name through a ResolverPool, and
// append live candidates to a SuccessList. The queue pop is the only
// mutually-exclusive operation besides the SuccessList append; the single
// suspension point per candidate is the DNS query itself.
package pool

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/ravensec/domaintwist/internal/model"
	"github.com/ravensec/domaintwist/internal/resolver"
)

// DefaultWorkers is the worker count used when the caller specifies none
// or a non-positive value.
const DefaultWorkers = 10

// Progress is the subset of ProgressReporter state the pool updates as it
// works; kept as an interface so the pool and the reporter don't need to
// know about each other's internals.
type Progress interface {
	Tick(remaining, hits int)
}

// Pool drains a queue of candidates against a resolver.Pool using a fixed
// number of workers.
type Pool struct {
	workers  int
	resolver *resolver.Pool
}

// New returns a Pool with workers workers querying through resolvers; a
// non-positive count is replaced by DefaultWorkers.
func New(workers int, resolvers *resolver.Pool) *Pool {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &Pool{workers: workers, resolver: resolvers}
}

// Run drains candidates and returns the resolved SuccessList. Cancelling
// ctx stops each worker after its current in-flight query completes or
// times out; the SuccessList returned in that case is the partial result
// collected so far.
func (p *Pool) Run(ctx context.Context, candidates []model.Candidate, progress Progress) *model.SuccessList {
	successes := model.NewSuccessList()

	var next uint64
	total := len(candidates)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if ctx.Err() != nil {
					return
				}
				idx := atomic.AddUint64(&next, 1) - 1
				if idx >= uint64(total) {
					return
				}
				candidate := candidates[idx]
				p.resolveOne(ctx, &candidate, successes)
				if progress != nil {
					remaining := total - int(atomic.LoadUint64(&next))
					if remaining < 0 {
						remaining = 0
					}
					progress.Tick(remaining, successes.Len())
				}
			}
		}()
	}
	wg.Wait()

	return successes
}

// resolveOne issues the A-class lookup for one candidate, discards it on
// NXDOMAIN or query failure, and otherwise attaches every record family
// present in the answer section before appending it to successes.
func (p *Pool) resolveOne(ctx context.Context, candidate *model.Candidate, successes *model.SuccessList) {
	reply, err := p.resolver.LookupA(ctx, candidate.Name)
	if err != nil {
		// DNSQueryFailure: timeout, network error, or refusal. Treated as
		// "no live records"; the candidate is simply dropped.
		return
	}
	if reply.IsNXDOMAIN() {
		return
	}

	for _, ans := range reply.Answers {
		switch ans.Kind {
		case "A", "AAAA":
			candidate.AppendRecord(model.RecordA, ans.Value)
		case "NS":
			candidate.AppendRecord(model.RecordNS, ans.Value)
		case "MX":
			candidate.AppendRecord(model.RecordMX, ans.Value)
		}
	}

	successes.Append(*candidate)
}
