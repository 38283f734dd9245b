package mosaic

// EncodeOptions controls a single Encode/EncodeInto call. The zero
// value uses NoNoise, matching the "noise insertion disabled" case
// spec.md §8's capacity-exactness property is stated against.
type EncodeOptions struct {
	Noise NoisePolicy
}

func (o EncodeOptions) noise() NoisePolicy {
	if o.Noise == nil {
		return NoNoise()
	}
	return o.Noise
}

// RequiredEncodeCapacity returns the number of bytes EncodeInto needs
// in dst for an n-byte input under opts (spec.md §4.3, §6). When the
// noise policy can never insert a character (NoNoise), this is exact
// per spec.md §8's capacity-exactness property. When the policy might
// insert noise, one extra byte per block is reserved, so the value is
// an upper bound on the bytes actually written, resolving the overflow
// Open Question noted in spec.md §9.
func RequiredEncodeCapacity(n int, opts EncodeOptions) int {
	p := defaultParams
	blocks := ceilDiv(n, p.BlockBytes)
	size := blocks*(p.BlockSymbols+1) + blocks/p.ChecksumPeriod + 3
	if opts.noise().mayInsert() {
		size += blocks
	}
	return size
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// EncodeInto writes the Mosaic encoding of src into dst and returns the
// number of bytes written. dst must be at least RequiredEncodeCapacity(
// len(src), opts) bytes; otherwise EncodeInto returns ErrBufferTooSmall
// without writing anything (spec.md §6, "two-call (query-then-fill)
// idiom").
func EncodeInto(dst, src []byte, opts EncodeOptions) (int, error) {
	p := defaultParams
	need := RequiredEncodeCapacity(len(src), opts)
	if len(dst) < need {
		return 0, ErrBufferTooSmall
	}

	noise := opts.noise()
	blocks := ceilDiv(len(src), p.BlockBytes)
	fullBlocks := len(src) / p.BlockBytes
	remainder := len(src) % p.BlockBytes

	window := newChecksumWindow(p.ChecksumPeriod)
	o := 0

	for b := 0; b < blocks; b++ {
		var buf5 [blockBytesConst]byte
		switch {
		case b < fullBlocks:
			copy(buf5[:], src[b*p.BlockBytes:(b+1)*p.BlockBytes])
		case remainder > 0:
			copy(buf5[:], src[b*p.BlockBytes:b*p.BlockBytes+remainder])
		}

		digits := bytesToDigits(buf5, p.Base)
		ra := newRotatedAlphabet(p.Alphabet, rotationFor(uint64(b), p.Base))

		for i := 0; i < p.BlockSymbols; i++ {
			dst[o] = ra.encodeSymbol(digits[i])
			o++
		}

		if char, ok := noise.sample(uint64(b)); ok {
			dst[o] = char
			o++
		}

		dst[o] = p.Term
		o++

		window.add(buf5)
		if window.full() {
			dst[o] = p.Alphabet[window.checksum(p.Base)]
			o++
			window.reset()
		}
	}

	padCount := (p.BlockBytes - len(src)%p.BlockBytes) % p.BlockBytes
	dst[o] = p.Term
	o++
	dst[o] = p.Term
	o++
	dst[o] = p.Alphabet[padCount]
	o++

	return o, nil
}

// Encode returns the Mosaic encoding of src as a newly allocated byte
// slice, sized exactly via RequiredEncodeCapacity (spec.md §6).
func Encode(src []byte, opts EncodeOptions) []byte {
	dst := make([]byte, RequiredEncodeCapacity(len(src), opts))
	n, err := EncodeInto(dst, src, opts)
	if err != nil {
		// dst is sized by the same formula EncodeInto validates
		// against; this can only fail if the two computations
		// disagree, which would be a bug in this package.
		panic(err)
	}
	return dst[:n]
}
