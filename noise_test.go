package mosaic

import "testing"

func TestNoNoise(t *testing.T) {
	n := NoNoise()
	if n.mayInsert() {
		t.Fatalf("NoNoise.mayInsert() = true, want false")
	}
	for b := uint64(0); b < 100; b++ {
		if _, ok := n.sample(b); ok {
			t.Fatalf("NoNoise.sample(%d) inserted noise", b)
		}
	}
}

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42)
	b := DeterministicNoise(42)

	if !a.mayInsert() || !b.mayInsert() {
		t.Fatalf("DeterministicNoise.mayInsert() = false, want true")
	}

	for block := uint64(0); block < 200; block++ {
		ca, oka := a.sample(block)
		cb, okb := b.sample(block)
		if oka != okb || ca != cb {
			t.Fatalf("block %d: seed 42 diverged: (%q,%v) vs (%q,%v)", block, ca, oka, cb, okb)
		}
	}
}

func TestDeterministicNoiseDiffersBySeed(t *testing.T) {
	a := DeterministicNoise(1)
	b := DeterministicNoise(2)

	diverged := false
	for block := uint64(0); block < 200; block++ {
		ca, oka := a.sample(block)
		cb, okb := b.sample(block)
		if oka != okb || ca != cb {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Fatalf("seeds 1 and 2 produced identical streams over 200 blocks")
	}
}

func TestDeterministicNoiseEmitsFromNoiseSet(t *testing.T) {
	n := DeterministicNoise(7)
	set := DefaultParams().NoiseSet
	found := false
	for block := uint64(0); block < 500; block++ {
		c, ok := n.sample(block)
		if !ok {
			continue
		}
		found = true
		member := false
		for i := 0; i < len(set); i++ {
			if set[i] == c {
				member = true
				break
			}
		}
		if !member {
			t.Fatalf("block %d: emitted %q which is not in the noise set", block, c)
		}
	}
	if !found {
		t.Fatalf("DeterministicNoise never inserted noise over 500 blocks")
	}
}

func TestExternalNoise(t *testing.T) {
	calls := 0
	n := ExternalNoise(func(block uint64) (byte, bool) {
		calls++
		if block%2 == 0 {
			return 'x', true
		}
		return 0, false
	})
	if !n.mayInsert() {
		t.Fatalf("ExternalNoise.mayInsert() = false, want true")
	}
	c, ok := n.sample(0)
	if !ok || c != 'x' {
		t.Fatalf("sample(0) = %q, %v; want 'x', true", c, ok)
	}
	if _, ok := n.sample(1); ok {
		t.Fatalf("sample(1) should not insert")
	}
	if calls != 2 {
		t.Fatalf("source called %d times, want 2", calls)
	}
}
