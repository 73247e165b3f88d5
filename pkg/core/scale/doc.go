// Package scale defines the structural data model of a slide-rule scale:
// its value range and transform, its physical layout (linear or circular),
// the subsections that configure the tick lattice, and the tick marks that
// generation produces.
//
// The types here are plain data. All computation lives in the calc, tick,
// and validate packages; all presentation lives in the render and export
// packages. A [Definition] is immutable once built and safe to share across
// goroutines.
package scale
