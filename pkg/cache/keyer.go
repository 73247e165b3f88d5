package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/scale"
	"github.com/adamhill/TheElectricSlideV3-sub000/pkg/core/tick"
)

// Keyer derives cache keys for generated scales.
type Keyer interface {
	// ScaleKey returns a key identifying one (definition, options) pair.
	// Equal inputs always produce equal keys; any change to the definition
	// or the generation options changes the key.
	ScaleKey(def *scale.Definition, opts tick.Options) string
}

// DefaultKeyer hashes the definition JSON together with the algorithm and
// its tuning values. The full SHA-256 hex digest is used to rule out
// collisions between distinct definitions.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard content-hash keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// scaleKeyInput is what actually gets hashed. Formatter closures are not
// part of the definition's JSON form, so two definitions differing only in
// formatting share a key; labels are formatted at render time.
type scaleKeyInput struct {
	Definition *scale.Definition `json:"definition"`
	Algorithm  string            `json:"algorithm"`
	Multiplier int               `json:"multiplier,omitempty"`
	MinSep     float64           `json:"minSeparation,omitempty"`
}

// ScaleKey implements Keyer.
func (DefaultKeyer) ScaleKey(def *scale.Definition, opts tick.Options) string {
	data, _ := json.Marshal(scaleKeyInput{
		Definition: def,
		Algorithm:  opts.Algorithm.String(),
		Multiplier: opts.PrecisionMultiplier,
		MinSep:     opts.MinSeparation,
	})
	return "scale:" + Hash(data)
}

// Hash computes the full SHA-256 hex digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ScopedKeyer prefixes every key from an inner keyer, isolating cache
// namespaces (per user, per config profile) on a shared backend.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner with a key prefix. A nil inner uses the
// default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ScaleKey implements Keyer.
func (k *ScopedKeyer) ScaleKey(def *scale.Definition, opts tick.Options) string {
	return k.prefix + k.inner.ScaleKey(def, opts)
}
