// Package batch generates many scales concurrently over a bounded worker
// pool while preserving input order in the results.
package batch

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/tick"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/errors"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/observability"
)

// Options controls pool sizing and tick generation for a batch run.
type Options struct {
	// Workers caps the number of concurrent generators. Zero means one
	// worker per CPU.
	Workers int
	// Tick is passed through to every generation job.
	Tick tick.Options
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return o
}

// Result is the outcome of one generation job. Slot i of the returned
// slice always corresponds to input definition i, whatever order the
// workers finished in.
type Result struct {
	// JobID identifies the job in logs and cache traces.
	JobID uuid.UUID `json:"jobId"`
	// Generated is nil when Err is set.
	Generated *scale.Generated `json:"generated,omitempty"`
	Err       error            `json:"-"`
}

type job struct {
	index int
	id    uuid.UUID
	def   *scale.Definition
}

// Generate runs tick generation for every definition on a bounded pool.
// The returned slice has one result per input, in input order. It stops
// dispatching new jobs once ctx is canceled; jobs never started report the
// context error.
func Generate(ctx context.Context, defs []*scale.Definition, opts Options) []Result {
	opts = opts.withDefaults()
	results := make([]Result, len(defs))

	workers := opts.Workers
	if workers > len(defs) {
		workers = len(defs)
	}
	if workers == 0 {
		return results
	}

	jobs := make(chan job)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = runJob(ctx, j, opts.Tick)
			}
		}()
	}

dispatch:
	for i, def := range defs {
		if ctx.Err() != nil {
			markCanceled(results, i, ctx.Err())
			break
		}
		select {
		case jobs <- job{index: i, id: uuid.New(), def: def}:
		case <-ctx.Done():
			markCanceled(results, i, ctx.Err())
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()
	return results
}

// markCanceled fills every slot from first onward with the context error.
// Those jobs were never dispatched, so no worker writes to these slots.
func markCanceled(results []Result, first int, cause error) {
	for k := first; k < len(results); k++ {
		results[k] = Result{JobID: uuid.New(), Err: errors.Wrap(errors.ErrCodeInternal, cause,
			"batch canceled before job %d started", k)}
	}
}

func runJob(ctx context.Context, j job, opts tick.Options) Result {
	observability.Generation().OnGenerateStart(ctx, j.def.Name, opts.Algorithm.String())
	start := time.Now()
	gen := tick.Generate(j.def, opts)
	observability.Generation().OnGenerateComplete(ctx, j.def.Name, len(gen.Ticks), time.Since(start))
	return Result{JobID: j.id, Generated: &gen}
}
