package mosaic

import "fmt"

// isASCIISpace reports whether c is one of the ASCII whitespace bytes
// skipped by the decoder (spec.md §4.4: "this tolerates line wrapping
// in transport").
func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// isNoiseByte reports whether c is a member of NoiseSet.
func isNoiseByte(c byte) bool {
	for i := 0; i < len(defaultParams.NoiseSet); i++ {
		if defaultParams.NoiseSet[i] == c {
			return true
		}
	}
	return false
}

// skipIgnorable advances past any run of ASCII whitespace or noise-set
// characters, both of which are permitted between any two tokens on
// decode (spec.md §6, §8 properties 4 and 5).
func skipIgnorable(src []byte, i int) int {
	for i < len(src) && (isASCIISpace(src[i]) || isNoiseByte(src[i])) {
		i++
	}
	return i
}

// DecodeInto decodes src into dst and returns the number of bytes
// written. dst must hold at least as many bytes as the decoded payload
// (after trailer padding is removed); if it does not, DecodeInto
// returns ErrBufferTooSmall. Use DecodeCapacity to size dst in advance,
// or Decode for a self-sizing convenience wrapper.
func DecodeInto(dst, src []byte) (int, error) {
	return decodeCore(dst, src)
}

// DecodeCapacity validates src and returns the number of bytes its
// decoded payload would occupy, without writing any output. This is
// the decode half of spec.md §6's "two-call (query-then-fill)" idiom.
func DecodeCapacity(src []byte) (int, error) {
	return decodeCore(nil, src)
}

// Decode decodes src and returns a newly allocated byte slice holding
// the result, or an error per spec.md §7.
func Decode(src []byte) ([]byte, error) {
	n, err := DecodeCapacity(src)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	if _, err := DecodeInto(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// decodeCore implements the §4.4 scanning state machine. When dst is
// nil it runs in dry-run mode (DecodeCapacity): every check still
// runs, but no bytes are written and buffer-size failures cannot
// occur. When dst is non-nil, decoded bytes are written as they are
// produced and a short dst yields ErrBufferTooSmall (mirroring
// table.go's Decode, which also writes as it goes rather than
// buffering the whole result before copying out).
func decodeCore(dst, src []byte) (int, error) {
	p := defaultParams
	write := dst != nil
	baseIdx := newBaseIndex(p.Alphabet)
	window := newChecksumWindow(p.ChecksumPeriod)

	var block uint64
	i := 0
	o := 0

	for {
		i = skipIgnorable(src, i)
		if i >= len(src) {
			return o, newError(MissingTrailer, i, "input exhausted before trailer")
		}

		if src[i] == p.Term && i+1 < len(src) && src[i+1] == p.Term {
			if i+2 >= len(src) {
				return o, newError(BadTrailer, i, "truncated trailer")
			}
			padDigit, ok := baseIdx.lookup(src[i+2])
			if !ok || padDigit >= p.BlockBytes {
				return o, newError(BadTrailer, i+2, "pad digit out of range")
			}
			if padDigit > o {
				return o, newError(BadTrailer, i+2, "pad count exceeds decoded length")
			}
			o -= padDigit
			i += 3
			if i != len(src) {
				return o, newError(TrailingGarbage, i, "bytes follow trailer")
			}
			return o, nil
		}

		// Block read (spec.md §4.4 "Block read"/"Block terminator").
		ra := newRotatedAlphabet(p.Alphabet, rotationFor(block, p.Base))
		var digits [blockSymbolsConst]int
		for k := 0; k < p.BlockSymbols; k++ {
			i = skipIgnorable(src, i)
			if i >= len(src) {
				return o, newError(MissingTrailer, i, "input exhausted mid-block")
			}
			c := src[i]
			if c == p.Term {
				return o, newError(ShortBlock, i, "terminator before 8 symbols")
			}
			digit, ok := ra.decodeSymbol(c)
			if !ok {
				return o, newError(InvalidCharacter, i, fmt.Sprintf("unexpected character %q", c))
			}
			digits[k] = digit
			i++
		}

		i = skipIgnorable(src, i)
		if i >= len(src) || src[i] != p.Term {
			return o, newError(MissingTerminator, i, "expected block terminator")
		}
		i++

		block5 := digitsToBytes(digits, p.Base)
		if write {
			if o+p.BlockBytes > len(dst) {
				return o, ErrBufferTooSmall
			}
			copy(dst[o:o+p.BlockBytes], block5[:])
		}
		o += p.BlockBytes
		window.add(block5)
		block++

		if window.full() {
			i = skipIgnorable(src, i)
			if i >= len(src) {
				return o, newError(MissingTrailer, i, "input exhausted before checksum")
			}
			got, ok := baseIdx.lookup(src[i])
			if !ok {
				return o, newError(InvalidCharacter, i, fmt.Sprintf("unexpected checksum character %q", src[i]))
			}
			if got != window.checksum(p.Base) {
				return o, newError(ChecksumMismatch, i, "checksum does not match window")
			}
			i++
			window.reset()
		}
	}
}
