package mosaic

import "fmt"

// ErrorKind names a class of decode or encode failure (spec.md §7).
// Kinds travel as a tagged value rather than a raw sentinel integer —
// the source's convention is incidental, per spec.md §9's "Error
// signalling" design note.
type ErrorKind int

const (
	// InvalidCharacter: a non-whitespace, non-noise, non-alphabet,
	// non-terminator character appears in the stream.
	InvalidCharacter ErrorKind = iota
	// ShortBlock: term encountered before reading 8 symbols.
	ShortBlock
	// MissingTerminator: eight symbols read but the next meaningful
	// character is not term.
	MissingTerminator
	// ChecksumMismatch: the emitted checksum character does not equal
	// the computed checksum for the completed window.
	ChecksumMismatch
	// BadTrailer: "term term ?" where ? is not a base-alphabet symbol,
	// or the pad value is out of range.
	BadTrailer
	// TrailingGarbage: bytes remain after the trailer's third character.
	TrailingGarbage
	// MissingTrailer: input exhausted before the trailer was seen.
	MissingTrailer
	// BufferTooSmall: the output buffer is insufficient for the
	// required capacity (encode) or decoded payload (decode).
	BufferTooSmall
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCharacter:
		return "InvalidCharacter"
	case ShortBlock:
		return "ShortBlock"
	case MissingTerminator:
		return "MissingTerminator"
	case ChecksumMismatch:
		return "ChecksumMismatch"
	case BadTrailer:
		return "BadTrailer"
	case TrailingGarbage:
		return "TrailingGarbage"
	case MissingTrailer:
		return "MissingTrailer"
	case BufferTooSmall:
		return "BufferTooSmall"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error type returned by every failing operation in this
// package. Offset is the byte offset in the input stream where the
// failure was detected, or -1 when not applicable (e.g. BufferTooSmall
// on encode).
type Error struct {
	Kind   ErrorKind
	Offset int
	msg    string
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("mosaic: %s at offset %d: %s", e.Kind, e.Offset, e.msg)
	}
	return fmt.Sprintf("mosaic: %s: %s", e.Kind, e.msg)
}

// Is reports whether target is a sentinel for the same ErrorKind,
// so callers can write errors.Is(err, mosaic.ErrChecksumMismatch).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind ErrorKind, offset int, msg string) *Error {
	return &Error{Kind: kind, Offset: offset, msg: msg}
}

// Sentinels for errors.Is comparisons. Offset is unused for equality
// (see Error.Is) so these may be compared against errors carrying any
// offset.
var (
	ErrInvalidCharacter  = &Error{Kind: InvalidCharacter, Offset: -1, msg: "invalid character"}
	ErrShortBlock        = &Error{Kind: ShortBlock, Offset: -1, msg: "terminator before 8 symbols"}
	ErrMissingTerminator = &Error{Kind: MissingTerminator, Offset: -1, msg: "missing block terminator"}
	ErrChecksumMismatch  = &Error{Kind: ChecksumMismatch, Offset: -1, msg: "checksum mismatch"}
	ErrBadTrailer        = &Error{Kind: BadTrailer, Offset: -1, msg: "malformed trailer"}
	ErrTrailingGarbage   = &Error{Kind: TrailingGarbage, Offset: -1, msg: "trailing garbage after trailer"}
	ErrMissingTrailer    = &Error{Kind: MissingTrailer, Offset: -1, msg: "missing trailer"}
	ErrBufferTooSmall    = &Error{Kind: BufferTooSmall, Offset: -1, msg: "output buffer too small"}
)
