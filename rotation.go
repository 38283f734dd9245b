package mosaic

// rotationFor computes the per-block rotation amount r = (13*b + 11) mod 47
// (spec.md §4.2). The coefficients are coprime with the prime base 47,
// so the schedule visits all 47 residues as b varies.
func rotationFor(block uint64, base int) int {
	return int((block*13 + 11) % uint64(base))
}

// rotatedAlphabet is a precomputed rotated copy of the base alphabet
// together with its reverse index, cached per block so encodeSymbol/
// decodeSymbol don't rebuild either on every character (mirrors
// table.go's rebuildIndices: derive once, reuse until the block
// advances).
type rotatedAlphabet struct {
	rotation int
	symbols  []byte // rotation-ordered: symbols[i] = alphabet[(i+rotation) % base]
	reverse  [256]int8
}

// newRotatedAlphabet builds the rotated alphabet and its reverse map for
// the given rotation amount (spec.md §4.2: rotated[i] = alphabet[(i+r) % base]).
func newRotatedAlphabet(alphabet string, rotation int) *rotatedAlphabet {
	base := len(alphabet)
	ra := &rotatedAlphabet{
		rotation: rotation,
		symbols:  make([]byte, base),
	}
	for i := range ra.reverse {
		ra.reverse[i] = -1
	}
	for i := 0; i < base; i++ {
		c := alphabet[(i+rotation)%base]
		ra.symbols[i] = c
		ra.reverse[c] = int8(i)
	}
	return ra
}

// encodeSymbol maps a digit to its character under this rotation.
func (ra *rotatedAlphabet) encodeSymbol(digit int) byte {
	return ra.symbols[digit]
}

// decodeSymbol maps a character back to its digit under this rotation,
// or reports ok == false if c is not a member of this rotated alphabet.
func (ra *rotatedAlphabet) decodeSymbol(c byte) (digit int, ok bool) {
	v := ra.reverse[c]
	if v < 0 {
		return 0, false
	}
	return int(v), true
}

// baseIndex looks a character up in the unrotated base alphabet, used
// for the trailer pad digit and the periodic checksum symbol, both of
// which are always expressed against the canonical (unrotated) order
// (spec.md §6, "base-symbol").
type baseIndex struct {
	reverse [256]int8
}

func newBaseIndex(alphabet string) *baseIndex {
	bi := &baseIndex{}
	for i := range bi.reverse {
		bi.reverse[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		bi.reverse[alphabet[i]] = int8(i)
	}
	return bi
}

func (bi *baseIndex) lookup(c byte) (digit int, ok bool) {
	v := bi.reverse[c]
	if v < 0 {
		return 0, false
	}
	return int(v), true
}
