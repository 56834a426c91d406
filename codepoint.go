package utf8seg

import "fmt"

// Leading-byte masks and signatures for the four UTF-8 sequence lengths.
const (
	mask1 = 0b1000_0000 // 0xxxxxxx
	mask2 = 0b1110_0000 // 110xxxxx
	sig2  = 0b1100_0000
	mask3 = 0b1111_0000 // 1110xxxx
	sig3  = 0b1110_0000
	mask4 = 0b1111_1000 // 11110xxx
	sig4  = 0b1111_0000
)

// CodePointLen returns the number of bytes (1 to 4) occupied by the UTF-8
// code point starting at b[0], decided purely from the leading byte's high
// bits.
//
// The caller must guarantee that b is not empty and that b[0] is the first
// byte of a valid UTF-8 code point. Violating either precondition panics:
// a continuation byte or invalid byte in the leading position means the
// input is not the code-point-aligned, valid UTF-8 the caller promised, and
// guessing a length would silently corrupt every following boundary. Use
// [DecodeCodePointLen] where a checked answer is preferred.
func CodePointLen(b []byte) int {
	return leadingByteLen(b[0])
}

// CodePointLenInString is like [CodePointLen] but its input is a string.
func CodePointLenInString(str string) int {
	return leadingByteLen(str[0])
}

// DecodeCodePointLen is the checked variant of [CodePointLen]. It reports
// (0, false) if b is empty or b[0] is not a valid leading byte, instead of
// panicking.
func DecodeCodePointLen(b []byte) (length int, ok bool) {
	if len(b) == 0 {
		return 0, false
	}
	first := b[0]
	switch {
	case first&mask1 == 0:
		return 1, true
	case first&mask2 == sig2:
		return 2, true
	case first&mask3 == sig3:
		return 3, true
	case first&mask4 == sig4:
		return 4, true
	}
	return 0, false
}

func leadingByteLen(first byte) int {
	switch {
	case first&mask1 == 0:
		return 1
	case first&mask2 == sig2:
		return 2
	case first&mask3 == sig3:
		return 3
	case first&mask4 == sig4:
		return 4
	}
	panic(fmt.Sprintf("utf8seg: invalid leading byte 0b%08b", first))
}

// nextCodePoint splits b after its first code point. An empty b reports
// not-ok; that is ordinary end of input, not an error.
func nextCodePoint(b []byte) (cp, rest []byte, ok bool) {
	if len(b) == 0 {
		return nil, nil, false
	}
	length := CodePointLen(b)
	return b[:length], b[length:], true
}

// nextCodePointInString is like nextCodePoint but operates on a string.
func nextCodePointInString(str string) (cp, rest string, ok bool) {
	if len(str) == 0 {
		return "", "", false
	}
	length := CodePointLenInString(str)
	return str[:length], str[length:], true
}
