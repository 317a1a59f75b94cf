// Package progress implements the ProgressReporter: a single cooperative
// task that periodically overwrites one terminal line with a
// remaining/hits/rate summary, backed by github.com/schollz/progressbar/v3
// for the actual line rendering.
package progress

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/schollz/progressbar/v3"
)

// refreshInterval is fixed at 500ms per spec.md section 4.7.
const refreshInterval = 500 * time.Millisecond

// Reporter drives a progressbar.ProgressBar on a fixed tick and exposes
// Tick for workers to report their own progress out of band, satisfying
// pool.Progress.
type Reporter struct {
	total   int
	bar     *progressbar.ProgressBar
	w       io.Writer
	start   time.Time
	remain  int64
	hits    int64
	mu      sync.Mutex
	done    chan struct{}
	stopped chan struct{}
}

// New builds a Reporter over total candidates, writing to w.
func New(total int, w io.Writer) *Reporter {
	remain := int64(total)
	return &Reporter{
		total:  total,
		remain: remain,
		w:      w,
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(describe(total, 0, total)),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSpinnerType(14),
		),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Tick records progress from a worker; it is safe to call concurrently.
func (r *Reporter) Tick(remaining, hits int) {
	atomic.StoreInt64(&r.remain, int64(remaining))
	atomic.StoreInt64(&r.hits, int64(hits))
}

// Run refreshes the progress line every 500ms until ctx is cancelled or
// Stop is called, then prints one final line plus elapsed wall time.
func (r *Reporter) Run(ctx context.Context) {
	r.start = time.Now()
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()
	defer close(r.stopped)

	for {
		select {
		case <-ctx.Done():
			r.refresh()
			r.finish()
			return
		case <-r.done:
			r.refresh()
			r.finish()
			return
		case <-ticker.C:
			r.refresh()
		}
	}
}

// Stop signals Run to print its final line and return. Callers should
// wait on Wait() after calling Stop to avoid racing the final print.
func (r *Reporter) Stop() {
	select {
	case <-r.stopped:
	default:
		close(r.done)
	}
}

// Wait blocks until Run has produced its final line.
func (r *Reporter) Wait() {
	<-r.stopped
}

func (r *Reporter) refresh() {
	r.mu.Lock()
	defer r.mu.Unlock()
	remaining := int(atomic.LoadInt64(&r.remain))
	hits := int(atomic.LoadInt64(&r.hits))
	r.bar.Describe(describe(remaining, hits, r.total))
	_ = r.bar.Set(r.total - remaining)
}

func (r *Reporter) finish() {
	elapsed := time.Since(r.start)
	fmt.Fprintf(r.w, "\nTook %s to complete.\n", elapsed)
}

// describe renders the exact "<remaining> remaining. <hits> hits (<pct>%)"
// line shape spec.md section 4.7 requires, with the percentage taken
// against the original candidate total.
func describe(remaining, hits, total int) string {
	pct := 0.0
	if total > 0 {
		pct = 100 * float64(hits) / float64(total)
	}
	return fmt.Sprintf("%d remaining. %d hits (%.2f%%)", remaining, hits, pct)
}
