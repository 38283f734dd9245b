package mosaic

import (
	"bytes"
	"strings"
	"testing"
)

// FuzzEncodeDecodeRoundtrip verifies that any byte sequence survives an
// Encode/Decode round trip under both NoNoise and a seeded noise policy.
func FuzzEncodeDecodeRoundtrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello"))
	f.Add([]byte{0x00, 0xFF, 0x7F})
	f.Add([]byte(strings.Repeat("mosaic", 20)))

	f.Fuzz(func(t *testing.T, data []byte) {
		plain := Encode(data, EncodeOptions{Noise: NoNoise()})
		got, err := Decode(plain)
		if err != nil {
			t.Fatalf("NoNoise round trip error: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("NoNoise round trip mismatch: in=%v out=%v", data, got)
		}

		noisy := Encode(data, EncodeOptions{Noise: DeterministicNoise(7)})
		got, err = Decode(noisy)
		if err != nil {
			t.Fatalf("noisy round trip error: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("noisy round trip mismatch: in=%v out=%v", data, got)
		}
	})
}

// FuzzDecodeNoPanic asserts the decoder only ever returns a value or an
// error for arbitrary, likely-malformed input — it never panics.
func FuzzDecodeNoPanic(f *testing.F) {
	f.Add([]byte("~~A"))
	f.Add([]byte(""))
	f.Add([]byte("~"))
	f.Add([]byte("not mosaic at all"))
	f.Add([]byte("~~~~~~~~~~"))

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = Decode(data)
	})
}

// FuzzCipherRoundtrip verifies MosaicCipher.Decrypt inverts Encrypt for
// arbitrary plaintext/key pairs.
func FuzzCipherRoundtrip(f *testing.F) {
	f.Add([]byte("plaintext"), []byte("key"))
	f.Add([]byte(""), []byte(""))
	f.Add([]byte{0x01, 0x02, 0x03}, []byte{0xFF})

	f.Fuzz(func(t *testing.T, plaintext, key []byte) {
		c := MosaicCipher{Options: EncodeOptions{Noise: NoNoise()}}
		ct := c.Encrypt(plaintext, key)
		pt, err := c.Decrypt(ct, key)
		if err != nil {
			t.Fatalf("Decrypt error: %v", err)
		}
		if !bytes.Equal(pt, plaintext) {
			t.Fatalf("cipher round trip mismatch: in=%v out=%v", plaintext, pt)
		}
	})
}

// FuzzDecodeOfMutatedEncoding checks that inverting every bit of one
// byte of a valid NoNoise encoding never makes Decode panic, whatever
// result or error it returns.
func FuzzDecodeOfMutatedEncoding(f *testing.F) {
	f.Add([]byte("Hello, Mosaic!"), 3)

	f.Fuzz(func(t *testing.T, data []byte, mutateAt int) {
		if len(data) == 0 {
			return
		}
		enc := Encode(data, EncodeOptions{Noise: NoNoise()})
		idx := ((mutateAt % len(enc)) + len(enc)) % len(enc)
		mutated := append([]byte(nil), enc...)
		mutated[idx] ^= 0xFF
		_, _ = Decode(mutated) // must not panic regardless of outcome
	})
}
