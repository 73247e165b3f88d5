// Package transform implements the mathematical mappings between slide-rule
// scale values and normalized transform coordinates.
//
// Every scale on a slide rule is defined by a pure function pair: a forward
// transform from a value to a coordinate, and its exact algebraic inverse.
// The [Func] type bundles a [Kind] (which formula family member to use) with
// the parameters that family needs, and dispatches exhaustively on the kind.
//
// # Families
//
//   - Pure logarithmic, linear, and power variants (C, D, CI, CF, A, K, R1, ...)
//   - Trigonometric and hyperbolic variants with a decimal multiplier baked
//     into the logarithm argument (S, T, ST, SH1, TH, ...)
//   - Multi-level log-log variants spanning enormous dynamic range (LL0-LL3
//     and their reciprocal LL00-LL03 counterparts)
//   - Parameterized N-cycle variants where an integer cycle count divides the
//     logarithmic coordinate so a decade occupies exactly 1/N of the scale
//   - Electrical-engineering formulas (reactance, resonance, reflection
//     coefficient, standing-wave ratio, decibel ratio, wavelength)
//
// # Contract
//
// Both directions are total over the documented domain of each kind. For
// out-of-domain input the transform returns a finite-but-meaningless
// coordinate where the elementary functions allow it; where they do not
// (logarithm of zero, arcsine beyond one) the result is non-finite and the
// validator is responsible for rejecting the configuration. Round-trips
// satisfy InverseTransform(Transform(x)) == x within each kind's documented
// tolerance.
package transform
