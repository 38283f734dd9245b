package mosaic

import "math/rand/v2"

// NoisePolicy decides whether the encoder inserts a noise character
// after a given block's symbols, and which one. It replaces the
// source's process-wide, time-seeded `rand()` call (spec.md §9,
// "Global randomness for noise") with an explicit, caller-supplied
// collaborator: encoding is reproducible whenever the policy is.
//
// A decoder never consults a NoisePolicy — noise characters are
// recognized structurally (any byte in the noise set) and skipped,
// never interpreted (spec.md §4.4).
type NoisePolicy interface {
	// sample is called once per encoded block. It returns the noise
	// character to emit and ok == true to emit it, or ok == false to
	// emit nothing for this block. block is the zero-based block
	// index being encoded.
	sample(block uint64) (char byte, ok bool)

	// mayInsert reports whether this policy can ever return ok == true.
	// RequiredEncodeCapacity uses this to decide whether to reserve the
	// extra per-block byte required by spec.md §9's capacity fix.
	mayInsert() bool
}

// NoNoise is the deterministic policy: it never inserts noise. Encoding
// under NoNoise is exactly reproducible and its output length exactly
// matches RequiredEncodeCapacity (spec.md §8, property 3).
func NoNoise() NoisePolicy { return noNoise{} }

type noNoise struct{}

func (noNoise) sample(uint64) (byte, bool) { return 0, false }
func (noNoise) mayInsert() bool            { return false }

// DeterministicNoise returns a policy seeded from seed that reproduces
// the source's behavior — a 50% chance of inserting one noise
// character per block — but deterministically, so the same seed always
// produces the same stream (spec.md §9; SPEC_FULL.md supplemented
// feature #3).
func DeterministicNoise(seed uint64) NoisePolicy {
	return &deterministicNoise{
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		noiseSet: defaultParams.NoiseSet,
	}
}

type deterministicNoise struct {
	rng      *rand.Rand
	noiseSet string
}

func (d *deterministicNoise) sample(uint64) (byte, bool) {
	if d.rng.IntN(2) == 0 {
		return 0, false
	}
	return d.noiseSet[d.rng.IntN(len(d.noiseSet))], true
}

func (d *deterministicNoise) mayInsert() bool { return true }

// ExternalNoise adapts a caller-supplied source into a NoisePolicy.
// source must only ever return characters drawn from the codec's
// NoiseSet; the encoder does not validate this and a misbehaving
// source will produce a stream the decoder cannot parse.
func ExternalNoise(source func(block uint64) (char byte, ok bool)) NoisePolicy {
	return externalNoise{source: source}
}

type externalNoise struct {
	source func(block uint64) (byte, bool)
}

func (e externalNoise) sample(block uint64) (byte, bool) { return e.source(block) }
func (e externalNoise) mayInsert() bool                  { return true }
