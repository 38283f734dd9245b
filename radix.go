package mosaic

// bytesToDigits treats in as a big-endian 40-bit unsigned integer V and
// produces 8 base-47 digits such that V = sum(digits[i] * 47^(7-i)),
// each digit in [0, base). Computed by repeated long division of the
// 5-byte accumulator, filling digits from least to most significant
// (spec.md §4.1).
func bytesToDigits(in [blockBytesConst]byte, base int) [blockSymbolsConst]int {
	var buf [blockBytesConst]byte
	buf = in

	var digits [blockSymbolsConst]int
	for d := blockSymbolsConst - 1; d >= 0; d-- {
		rem := 0
		for i := 0; i < blockBytesConst; i++ {
			cur := rem<<8 | int(buf[i])
			buf[i] = byte(cur / base)
			rem = cur % base
		}
		digits[d] = rem
	}
	return digits
}

// digitsToBytes is the inverse of bytesToDigits: it computes
// V = sum(digits[i] * 47^(7-i)) via Horner's method, multiplying a
// 5-byte accumulator by base and adding each digit in turn with
// byte-wise carry propagation (spec.md §4.1).
func digitsToBytes(digits [blockSymbolsConst]int, base int) [blockBytesConst]byte {
	var acc [blockBytesConst]byte
	for _, digit := range digits {
		carry := digit
		for i := blockBytesConst - 1; i >= 0; i-- {
			v := int(acc[i])*base + carry
			acc[i] = byte(v & 0xFF)
			carry = v >> 8
		}
	}
	return acc
}
