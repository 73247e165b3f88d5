package batch

import (
	"context"
	"testing"
	"time"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/catalog"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/tick"
)

func batchDefs(t *testing.T, names ...string) []*scale.Definition {
	t.Helper()
	defs := make([]*scale.Definition, len(names))
	for i, name := range names {
		def, ok := catalog.Lookup(name, 250)
		if !ok {
			t.Fatalf("catalog has no scale %q", name)
		}
		defs[i] = def
	}
	return defs
}

func TestGeneratePreservesOrder(t *testing.T) {
	names := []string{"c", "a", "k", "s", "l", "ci", "cf", "t"}
	defs := batchDefs(t, names...)

	results := Generate(context.Background(), defs, Options{Workers: 4})
	if len(results) != len(defs) {
		t.Fatalf("got %d results for %d inputs", len(results), len(defs))
	}
	for i, res := range results {
		if res.Err != nil {
			t.Fatalf("job %d (%s) failed: %v", i, names[i], res.Err)
		}
		if res.Generated.Definition.Name != defs[i].Name {
			t.Errorf("slot %d holds %q, want %q", i, res.Generated.Definition.Name, defs[i].Name)
		}
		if len(res.Generated.Ticks) == 0 {
			t.Errorf("slot %d has no ticks", i)
		}
	}
}

func TestGenerateUniqueJobIDs(t *testing.T) {
	defs := batchDefs(t, "c", "d", "a")
	results := Generate(context.Background(), defs, Options{Workers: 2})
	seen := make(map[string]bool)
	for _, res := range results {
		id := res.JobID.String()
		if seen[id] {
			t.Errorf("job id %s issued twice", id)
		}
		seen[id] = true
	}
}

func TestGenerateMatchesSequential(t *testing.T) {
	defs := batchDefs(t, "c", "a", "k", "s")
	opts := tick.Options{Algorithm: tick.AlgorithmModulo}

	concurrent := Generate(context.Background(), defs, Options{Workers: 3, Tick: opts})
	for i, def := range defs {
		want := tick.Generate(def, opts)
		got := concurrent[i].Generated
		if len(got.Ticks) != len(want.Ticks) {
			t.Errorf("%q: pool produced %d ticks, sequential %d", def.Name, len(got.Ticks), len(want.Ticks))
		}
	}
}

func TestGenerateSingleWorker(t *testing.T) {
	defs := batchDefs(t, "c", "d")
	results := Generate(context.Background(), defs, Options{Workers: 1})
	for i, res := range results {
		if res.Err != nil {
			t.Fatalf("job %d failed: %v", i, res.Err)
		}
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	results := Generate(context.Background(), nil, Options{})
	if len(results) != 0 {
		t.Errorf("got %d results for empty input", len(results))
	}
}

func TestGenerateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	defs := batchDefs(t, "c", "d", "a", "k", "s", "t", "l", "ci")
	done := make(chan []Result, 1)
	go func() { done <- Generate(ctx, defs, Options{Workers: 2}) }()

	select {
	case results := <-done:
		failed := 0
		for _, res := range results {
			if res.Err != nil {
				failed++
			}
		}
		if failed == 0 {
			t.Error("canceled batch reported no canceled jobs")
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Generate did not return after cancellation")
	}
}
