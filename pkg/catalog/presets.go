package catalog

import (
	"math"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/transform"
)

// logSubsections is the classic single-decade lattice: dense near 1 where
// the logarithm stretches, sparser toward 10.
func logSubsections() []scale.Subsection {
	return []scale.Subsection{
		sub(1, 1, 0.1, 0.05, 0.01),
		sub(2, 1, 0.5, 0.1, 0.02),
		sub(5, 1, 0.5, 0.1, 0.05),
	}
}

func simple(name string, f transform.Func, begin, end float64, subs []scale.Subsection) builder {
	return func(layout scale.Layout) *scale.Definition {
		// Each call gets its own copy of the subsections; callers may
		// mutate the returned definition without corrupting later lookups.
		return &scale.Definition{
			Name:        name,
			Func:        f,
			BeginValue:  begin,
			EndValue:    end,
			Layout:      layout,
			Subsections: cloneSubsections(subs),
		}
	}
}

func cloneSubsections(subs []scale.Subsection) []scale.Subsection {
	out := make([]scale.Subsection, len(subs))
	copy(out, subs)
	for i := range out {
		out[i].LabelLevels = append([]scale.TickStyle(nil), subs[i].LabelLevels...)
	}
	return out
}

func init() {
	// Core logarithmic scales. C and D share the transform; C rides the
	// slide, D the stator.
	register("c", withConstants(simple("C", transform.Func{Kind: transform.KindLog}, 1, 10, logSubsections())))
	register("d", withConstants(simple("D", transform.Func{Kind: transform.KindLog}, 1, 10, logSubsections())))
	register("ci", simple("CI", transform.Func{Kind: transform.KindLogInverted}, 10, 1, reverseSubsections()))
	register("cf", simple("CF", transform.Func{Kind: transform.KindLogFolded}, math.Pi, 10*math.Pi, foldedSubsections()))
	register("cif", simple("CIF", transform.Func{Kind: transform.KindLogFoldedInverted}, 10*math.Pi, math.Pi, []scale.Subsection{
		sub(10*math.Pi, 5, 1, 0.5, 0.1),
		sub(10, 1, 0.5, 0.1, 0.02),
	}))
	register("a", simple("A", transform.Func{Kind: transform.KindLogTwoCycle}, 1, 100, []scale.Subsection{
		sub(1, 1, 0.5, 0.1, 0.05),
		sub(10, 10, 5, 1, 0.5),
	}))
	register("b", simple("B", transform.Func{Kind: transform.KindLogTwoCycle}, 1, 100, []scale.Subsection{
		sub(1, 1, 0.5, 0.1, 0.05),
		sub(10, 10, 5, 1, 0.5),
	}))
	register("k", simple("K", transform.Func{Kind: transform.KindLogThreeCycle}, 1, 1000, []scale.Subsection{
		sub(1, 1, 0.5, 0.1, 0),
		sub(10, 10, 5, 1, 0),
		sub(100, 100, 50, 10, 0),
	}))
	register("r1", simple("R1", transform.Func{Kind: transform.KindSquareRootLow}, 1, math.Sqrt(10), []scale.Subsection{
		sub(1, 1, 0.1, 0.05, 0.01),
		sub(2, 1, 0.1, 0.05, 0.02),
	}))
	register("r2", simple("R2", transform.Func{Kind: transform.KindSquareRootHigh}, math.Sqrt(10), 10, []scale.Subsection{
		sub(4, 1, 0.5, 0.1, 0.02),
		sub(7, 1, 0.5, 0.1, 0.05),
	}))
	register("l", simple("L", transform.Func{Kind: transform.KindLinear}, 0, 1, []scale.Subsection{
		sub(0, 0.1, 0.05, 0.01, 0.002),
	}))

	// Trigonometric scales, values in degrees.
	register("s", simple("S", transform.Func{Kind: transform.KindSin}, 5.74, 90, []scale.Subsection{
		sub(6, 1, 0.5, 0.1, 0),
		sub(20, 5, 1, 0.5, 0),
		sub(60, 10, 5, 1, 0),
	}))
	register("t", simple("T", transform.Func{Kind: transform.KindTan}, 5.71, 45, []scale.Subsection{
		sub(6, 1, 0.5, 0.1, 0),
		sub(20, 5, 1, 0.5, 0),
	}))
	register("t2", simple("T2", transform.Func{Kind: transform.KindTanLarge}, 45, 84.29, []scale.Subsection{
		sub(45, 5, 1, 0.5, 0),
		sub(70, 5, 1, 0.5, 0),
	}))
	register("st", simple("ST", transform.Func{Kind: transform.KindSinTan}, 0.573, 5.73, []scale.Subsection{
		sub(0.6, 0.1, 0.05, 0.01, 0),
		sub(2, 0.5, 0.1, 0.05, 0),
	}))
	register("p", simple("P", transform.Func{Kind: transform.KindPythagorean}, 0.995, 0.1, []scale.Subsection{
		sub(0.995, 0.01, 0.005, 0.001, 0),
		sub(0.9, 0.1, 0.05, 0.01, 0),
	}))

	// Hyperbolic scales.
	register("sh1", simple("Sh1", transform.Func{Kind: transform.KindSinh1}, 0.1, 0.8813, []scale.Subsection{
		sub(0.1, 0.1, 0.05, 0.01, 0),
	}))
	register("sh2", simple("Sh2", transform.Func{Kind: transform.KindSinh2}, 0.8814, 3, []scale.Subsection{
		sub(0.9, 0.5, 0.1, 0.05, 0),
	}))
	register("th", simple("Th", transform.Func{Kind: transform.KindTanh}, 0.1, 3, []scale.Subsection{
		sub(0.1, 0.1, 0.05, 0.01, 0),
		sub(1, 0.5, 0.1, 0.05, 0),
	}))
	register("ch", simple("Ch", transform.Func{Kind: transform.KindCosh}, 0.1, 3, []scale.Subsection{
		sub(0.1, 0.5, 0.1, 0.05, 0),
	}))
	register("h1", simple("H1", transform.Func{Kind: transform.KindHyperbolic1}, 1.005, 1.4142, []scale.Subsection{
		sub(1.01, 0.1, 0.05, 0.01, 0),
	}))
	register("h2", simple("H2", transform.Func{Kind: transform.KindHyperbolic2}, 1.4143, 10.05, []scale.Subsection{
		sub(1.5, 1, 0.5, 0.1, 0),
	}))

	// Log-log scales.
	register("ll0", simple("LL0", transform.Func{Kind: transform.KindLL0}, 1.0010005, 1.0100502, []scale.Subsection{
		sub(1.001, 0.001, 0.0005, 0.0001, 0),
	}))
	register("ll1", simple("LL1", transform.Func{Kind: transform.KindLL1}, 1.0100502, 1.1051709, []scale.Subsection{
		sub(1.01, 0.01, 0.005, 0.001, 0),
	}))
	register("ll2", simple("LL2", transform.Func{Kind: transform.KindLL2}, 1.1051709, math.E, []scale.Subsection{
		sub(1.1, 0.1, 0.05, 0.01, 0),
		sub(2, 0.1, 0.05, 0.02, 0),
	}))
	register("ll3", simple("LL3", transform.Func{Kind: transform.KindLL3}, math.E, 22026.4658, []scale.Subsection{
		sub(3, 1, 0.5, 0.1, 0),
		sub(10, 10, 5, 1, 0),
		sub(100, 100, 50, 10, 0),
		sub(1000, 1000, 500, 100, 0),
		sub(10000, 10000, 5000, 1000, 0),
	}))
	register("ll00", simple("LL00", transform.Func{Kind: transform.KindLL00}, 0.999, 0.9900498, []scale.Subsection{
		sub(0.999, 0.001, 0.0005, 0.0001, 0),
	}))
	register("ll01", simple("LL01", transform.Func{Kind: transform.KindLL01}, 0.9900498, 0.9048374, []scale.Subsection{
		sub(0.99, 0.01, 0.005, 0.001, 0),
	}))
	register("ll02", simple("LL02", transform.Func{Kind: transform.KindLL02}, 0.9048374, 0.3678794, []scale.Subsection{
		sub(0.9, 0.05, 0.01, 0.005, 0),
	}))
	register("ll03", simple("LL03", transform.Func{Kind: transform.KindLL03}, 0.368, 0.001, []scale.Subsection{
		sub(0.368, 0.05, 0.01, 0.005, 0),
		sub(0.05, 0.01, 0.005, 0.001, 0),
	}))

	// Electrical-engineering scales. Values are in engineering units with
	// the decade tracked by the reader, as on the original rule.
	register("xl", simple("XL", transform.Func{Kind: transform.KindInductiveReactance, Cycles: 12}, 1, 1000, []scale.Subsection{
		sub(1, 1, 0.5, 0.1, 0),
		sub(10, 10, 5, 1, 0),
		sub(100, 100, 50, 10, 0),
	}))
	register("xc", simple("XC", transform.Func{Kind: transform.KindCapacitiveReactance, Cycles: 12}, 1, 1000, []scale.Subsection{
		sub(1, 1, 0.5, 0.1, 0),
		sub(10, 10, 5, 1, 0),
		sub(100, 100, 50, 10, 0),
	}))
	register("fr", simple("FR", transform.Func{Kind: transform.KindResonance, Cycles: 24}, 1, 1000, []scale.Subsection{
		sub(1, 1, 0.5, 0.1, 0),
		sub(10, 10, 5, 1, 0),
		sub(100, 100, 50, 10, 0),
	}))
	register("z", simple("Z", transform.Func{Kind: transform.KindImpedance}, 1, 100, []scale.Subsection{
		sub(1, 1, 0.5, 0.1, 0.05),
		sub(10, 10, 5, 1, 0.5),
	}))
	register("y", simple("Y", transform.Func{Kind: transform.KindAdmittance}, 100, 1, []scale.Subsection{
		sub(100, 10, 5, 1, 0.5),
		sub(10, 1, 0.5, 0.1, 0.05),
	}))
	register("gamma", simple("Γ", transform.Func{Kind: transform.KindReflectionCoefficient}, 1, 2500, []scale.Subsection{
		sub(1, 10, 5, 1, 0),
		sub(100, 100, 50, 10, 0),
		sub(1000, 500, 100, 50, 0),
	}))
	register("swr", simple("SWR", transform.Func{Kind: transform.KindSWR}, 1.01, 100, []scale.Subsection{
		sub(1.01, 0.1, 0.05, 0.01, 0),
		sub(2, 1, 0.5, 0.1, 0),
		sub(10, 10, 5, 1, 0),
	}))
	register("db", simple("dB", transform.Func{Kind: transform.KindDecibel}, 0, 100, []scale.Subsection{
		sub(0, 10, 5, 1, 0.5),
	}))
	register("np", simple("Np", transform.Func{Kind: transform.KindNeper}, 1, 100, []scale.Subsection{
		sub(1, 1, 0.5, 0.1, 0),
		sub(10, 10, 5, 1, 0),
	}))
	register("wl", simple("λ", transform.Func{Kind: transform.KindWavelength, Cycles: 9}, 1, 1000, []scale.Subsection{
		sub(1, 1, 0.5, 0.1, 0),
		sub(10, 10, 5, 1, 0),
		sub(100, 100, 50, 10, 0),
	}))
	register("deg", simple("deg", transform.Func{Kind: transform.KindDegree}, 0, 360, []scale.Subsection{
		sub(0, 10, 5, 1, 0.5),
	}))
	register("pct", simple("pct", transform.Func{Kind: transform.KindPercent}, 0, 100, []scale.Subsection{
		sub(0, 10, 5, 1, 0.5),
	}))
}

// reverseSubsections mirrors the single-decade lattice for scales read
// backward (CI reads 10 down to 1).
func reverseSubsections() []scale.Subsection {
	return []scale.Subsection{
		sub(10, 1, 0.5, 0.1, 0.05),
		sub(5, 1, 0.5, 0.1, 0.02),
		sub(2, 1, 0.1, 0.05, 0.01),
	}
}

// foldedSubsections covers the π-folded decade.
func foldedSubsections() []scale.Subsection {
	return []scale.Subsection{
		sub(math.Pi, 1, 0.5, 0.1, 0.02),
		sub(10, 5, 1, 0.5, 0.1),
	}
}

// withConstants marks π and e on a preset.
func withConstants(b builder) builder {
	return func(layout scale.Layout) *scale.Definition {
		def := b(layout)
		def.Constants = append([]scale.Constant(nil), piConstants...)
		return def
	}
}
