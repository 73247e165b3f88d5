// Package pkg provides the core libraries for the Electric Slide scale engine.
//
// # Overview
//
// Electric Slide computes slide rule scales: it maps values through
// logarithmic, trigonometric, and electrical-engineering transforms onto
// normalized positions, generates graduated tick marks, and renders or
// exports the result. The pkg directory is organized into three main areas:
//
//  1. [core] - Domain logic (transforms, tick generation, calculation, validation)
//  2. Infrastructure (caching, persistence, configuration, batch execution)
//  3. Surfaces (HTTP API, exporters, PNG rendering, rule assembly notation)
//
// # Architecture
//
// The typical data flow:
//
//	Scale Definition (catalog preset, store, or inline)
//	         ↓
//	    [core/transform] (value → normalized position)
//	         ↓
//	    [core/tick] (graduated tick marks, legacy or modulo strategy)
//	         ↓
//	    [export] / [render] (CSV, JSON, PNG output)
//
// # Quick Start
//
// Generate the C scale and export it as JSON:
//
//	def, _ := catalog.Lookup("c", 250)
//	gen := tick.Generate(def, tick.Options{})
//	export.ExportJSON(&gen, "c.json")
//
// # Main Packages
//
// ## Core Domain Logic
//
// [core/transform] - The transform function family. Every scale is defined
// by a transform kind plus a cycle count, from the plain decade log of the
// C/D scales through log-log exponentials to reactance and SWR scales.
//
// [core/tick] - Tick generation. Two strategies: an interval-walk kept for
// historical output compatibility and an integer modulo strategy that is
// exact at subsection boundaries.
//
// [core/scale] - Scale definitions, subsections, layouts, and the generated
// tick model shared by every other package.
//
// [core/calc] - Point lookups on a scale: value at a position, position of
// a value, offsets in points and degrees.
//
// [core/validate] - Definition and assembly checking with aggregated,
// code-tagged issues.
//
// ## Infrastructure
//
// [cache] - Content-addressed caching of generated scales with file, Redis,
// and null backends.
//
// [store] - MongoDB persistence for custom scale definitions.
//
// [config] - TOML configuration with defaults, search paths, and named
// assemblies.
//
// [batch] - Bounded worker pool running many generations concurrently while
// preserving input order.
//
// [observability] - Optional hooks for generation and cache events.
//
// ## Surfaces
//
// [catalog] - The built-in preset library with alias lookup.
//
// [rules] - Bracketed assembly notation parsing ("[L, K, A] [B, CI, C] [D]")
// and face composition.
//
// [export] - CSV and JSON writers plus JSON import.
//
// [render] - PNG rendering of single scales, circular dials, and assembled
// faces.
//
// [server] - The HTTP API serving catalog lookups and on-demand generation.
//
// [core]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/core
// [core/transform]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/transform
// [core/tick]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/tick
// [core/scale]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale
// [core/calc]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/calc
// [core/validate]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/validate
// [catalog]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/catalog
// [rules]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/rules
// [export]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/export
// [render]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/render
// [server]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/server
// [cache]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/cache
// [store]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/store
// [config]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/config
// [batch]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/batch
// [observability]: https://pkg.go.dev/github.com/adamhill/TheElectricSlideV3-sub000/pkg/observability
package pkg
