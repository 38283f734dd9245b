// Package mosaic implements the Mosaic codec: a reversible text
// encoding that turns an arbitrary byte sequence into a sequence of
// printable characters drawn from a fixed 47-symbol alphabet,
// interleaved with optional noise characters, block terminators, a
// periodic checksum, and a trailing padding marker.
//
// # Overview
//
// The codec performs a radix conversion (base-256 to base-47) over
// 5-byte blocks, applies a deterministic per-block alphabet rotation so
// identical plaintext blocks don't visually repeat, frames each block
// with a terminator character, and periodically inserts a checksum
// symbol over the last few blocks. A trailing marker records how many
// zero-padding bytes were appended to the final block.
//
// # When to Use Mosaic
//
// Mosaic is useful when you need:
//   - A reversible, printable-only encoding of arbitrary binary data,
//     similar in purpose to base64 but with built-in framing and a
//     tamper-evident checksum
//   - Tolerance of noise or whitespace inserted into the stream in
//     transit (e.g. copy-pasted through a lossy terminal or manually
//     retyped)
//   - Lightweight obfuscation of text when composed with the XOR
//     cipher overlay (see Cipher, MosaicCipher)
//
// # When NOT to Use Mosaic
//
// Mosaic is not suitable for:
//   - Cryptographic confidentiality — it is obfuscation, not
//     encryption; the XOR overlay built on top of it is not a
//     cryptographic primitive either
//   - Streaming data — both Encode and Decode operate on whole,
//     in-memory buffers
//   - Compact encoding — at 8 symbols plus a terminator per 5 bytes
//     (with checksums and noise further inflating it), Mosaic expands
//     input by roughly 2x, more than base64's 4/3x
//
// # Basic Usage
//
//	encoded := mosaic.Encode([]byte("hello"), mosaic.EncodeOptions{})
//	decoded, err := mosaic.Decode(encoded)
//	_ = decoded // "hello"
//
//	// With the repeating-key XOR overlay:
//	cipher := mosaic.MosaicCipher{}
//	ciphertext := cipher.Encrypt([]byte("hello"), []byte("key"))
//	plaintext, err := cipher.Decrypt(ciphertext, []byte("key"))
//
//	// Sizing a fixed output buffer ahead of time:
//	dst := make([]byte, mosaic.RequiredEncodeCapacity(len("hello"), mosaic.EncodeOptions{}))
//	n, err := mosaic.EncodeInto(dst, []byte("hello"), mosaic.EncodeOptions{})
//
// # Noise
//
// Encode accepts a NoisePolicy that decides whether to insert a
// throwaway character (ignored on decode) after each block's symbols,
// before its terminator. NoNoise
// disables it. DeterministicNoise(seed) reproduces a fixed 50%-per-block
// insertion rate from a seed, for tests that need byte-identical
// output. ExternalNoise adapts a caller-supplied source.
//
// # Performance Characteristics
//
// Both Encode and Decode are O(n) in input length, single-pass, and
// allocate no more than one growable output buffer; interior scratch
// state (the rotated alphabet, its reverse index, the checksum window)
// is bounded by the block and checksum-period sizes and does not scale
// with input (spec.md §5).
package mosaic
