package mosaic

// Cipher is the shape shared by every plaintext<->ciphertext overlay in
// this system (spec.md §1: "encoder and decoder expose the same
// signature so a caller can select between the two"). MosaicCipher is
// the only implementation in this package; a hex-wrapped XOR-only
// cipher with the same shape exists as a separate, out-of-scope
// collaborator (spec.md §1) and is not implemented here.
type Cipher interface {
	Encrypt(plaintext, key []byte) []byte
	Decrypt(ciphertext, key []byte) ([]byte, error)
}

// MosaicCipher composes repeating-key XOR with the Mosaic codec
// (spec.md §4.5): encrypt XORs then encodes, decrypt decodes then
// XORs. It is not a cryptographic primitive — key security derives
// entirely from the XOR overlay, which is not itself cryptographic
// (spec.md §1, §9 "Key security").
type MosaicCipher struct {
	Options EncodeOptions
}

var _ Cipher = MosaicCipher{}

// Encrypt XORs plaintext with the repeating key, then encodes the
// result (spec.md §4.5). An empty key is treated as identity
// uniformly (spec.md §9, resolving the source's inconsistent
// empty-key handling).
func (c MosaicCipher) Encrypt(plaintext, key []byte) []byte {
	xored := make([]byte, len(plaintext))
	copy(xored, plaintext)
	xorWithKey(xored, key)
	return Encode(xored, c.Options)
}

// Decrypt decodes ciphertext, then XORs the result with the repeating
// key (spec.md §4.5). Decode errors are returned as-is; Decrypt itself
// never fails once decoding succeeds, since XOR cannot fail.
func (c MosaicCipher) Decrypt(ciphertext, key []byte) ([]byte, error) {
	plain, err := Decode(ciphertext)
	if err != nil {
		return nil, err
	}
	xorWithKey(plain, key)
	return plain, nil
}

// xorWithKey XORs data in place with a repeating key. An empty key is
// a no-op (spec.md §9's resolution of the Open Question around
// empty-key handling).
func xorWithKey(data, key []byte) {
	if len(key) == 0 {
		return
	}
	for i := range data {
		data[i] ^= key[i%len(key)]
	}
}

// EncryptText is the string-level convenience wrapper named in
// spec.md §6. It uses MosaicCipher with NoNoise, so repeated calls
// with the same inputs produce byte-identical ciphertext.
func EncryptText(plaintext, key string) string {
	c := MosaicCipher{Options: EncodeOptions{Noise: NoNoise()}}
	return string(c.Encrypt([]byte(plaintext), []byte(key)))
}

// DecryptText is the string-level convenience wrapper named in
// spec.md §6.
func DecryptText(ciphertext, key string) (string, error) {
	c := MosaicCipher{Options: EncodeOptions{Noise: NoNoise()}}
	plain, err := c.Decrypt([]byte(ciphertext), []byte(key))
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
