package picsel

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// ReloadOptions tunes a reload pass.
type ReloadOptions struct {
	// Workers bounds concurrent decodes. 0 means one per CPU.
	Workers int
	// Progress, when non-nil, is called after each decoded item with the
	// running count and the total. Calls are serialised but may come from
	// decode goroutines.
	Progress func(done, total int)
	// Logger receives progress and skipped-item messages. nil uses
	// log.Default().
	Logger *log.Logger
}

// ReloadReport summarises a completed reload pass.
type ReloadReport struct {
	Items    int
	Skipped  int
	Coverage Coverage
	Elapsed  time.Duration
}

// Reload rebuilds every strategy from sel. Samples for all items are decoded
// first, concurrently, and the strategies are only touched once decoding has
// finished: if ctx is cancelled the strategies keep their previous state and
// the context error is returned. Items that fail to decode are logged and
// skipped; they are absent from the returned Coverage. Process is then
// called on the calling goroutine in source order and index order.
func Reload(ctx context.Context, sel *Selection, strategies []Strategy, dec Decoder, opts ReloadOptions) (ReloadReport, error) {
	start := time.Now()
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pixels := false
	for _, s := range strategies {
		pixels = pixels || s.wantsPixels()
	}

	total := sel.ItemCount()
	logger.Info("Reloading", "sources", sel.Len(), "items", total)

	samples := make([][]Sample, sel.Len())
	var (
		mu      sync.Mutex
		done    int
		skipped int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for si, src := range sel.Sources() {
		samples[si] = make([]Sample, src.Len())
		for i := range src.Items {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				s, err := dec.Decode(src.AbsPath(i), pixels)
				mu.Lock()
				defer mu.Unlock()
				done++
				if err != nil {
					skipped++
					logger.Warn("Skipping item", "source", src.Name(), "item", src.Items[i], "err", err)
				} else {
					samples[si][i] = s
				}
				if opts.Progress != nil {
					opts.Progress(done, total)
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return ReloadReport{}, err
	}
	if err := ctx.Err(); err != nil {
		return ReloadReport{}, err
	}

	for _, s := range strategies {
		s.Reset(sel)
	}
	cov := make(Coverage, sel.Len())
	for si, src := range sel.Sources() {
		flags := make([]bool, src.Len())
		for i, sample := range samples[si] {
			if sample == nil {
				continue
			}
			for _, s := range strategies {
				s.Process(src, i, sample)
			}
			flags[i] = true
		}
		cov[src.ID] = flags
		logger.Debug("Loaded source", "source", src.Name(), "items", src.Len())
	}

	report := ReloadReport{Items: total, Skipped: skipped, Coverage: cov, Elapsed: time.Since(start)}
	logger.Info("Reload complete", "items", total, "skipped", skipped, "elapsed", report.Elapsed.Round(time.Millisecond))
	return report, nil
}
