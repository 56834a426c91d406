package utf8seg

// FirstUTF8Char returns the first extended user-perceived character found in
// the given byte slice, as well as the remainder of the slice after it.
//
// The character is formed by taking one code point and extending it to the
// right: an immediately following U+FE0F variation selector is absorbed, and
// after that any number of (U+200D zero-width joiner, code point) pairs are
// absorbed, with no cap on the chain length. Both return values are
// sub-slices of b; nothing is copied.
//
// This function can be called continuously to extract all characters from a
// byte slice: the returned slices are contiguous, never overlap, and
// concatenated in order they reproduce b exactly. Given an empty byte slice,
// the function returns nil values.
//
// The input must be valid, code-point-aligned UTF-8; see [CodePointLen] for
// the contract.
func FirstUTF8Char(b []byte) (char, rest []byte) {
	cp, remaining, ok := nextCodePoint(b)
	if !ok {
		return nil, nil
	}
	length := len(cp)

	if sel, selRemaining, ok := variationSelector(remaining); ok {
		length += len(sel)
		remaining = selRemaining
	}

	// A character can consist of any number of joined code points.
	for {
		joined, joinRemaining, ok := zeroWidthJoiner(remaining)
		if !ok {
			break
		}
		length += len(joined)
		remaining = joinRemaining
	}

	return b[:length], remaining
}

// FirstUTF8CharInString is like [FirstUTF8Char] but its input and outputs
// are strings.
func FirstUTF8CharInString(str string) (char, rest string) {
	cp, remaining, ok := nextCodePointInString(str)
	if !ok {
		return "", ""
	}
	length := len(cp)

	if sel, selRemaining, ok := variationSelectorInString(remaining); ok {
		length += len(sel)
		remaining = selRemaining
	}

	for {
		joined, joinRemaining, ok := zeroWidthJoinerInString(remaining)
		if !ok {
			break
		}
		length += len(joined)
		remaining = joinRemaining
	}

	return str[:length], remaining
}

// UTF8CharCount returns the number of extended user-perceived characters in
// the given string. For composed emoji this differs from both len(str) and
// len([]rune(str)).
func UTF8CharCount(str string) (n int) {
	for len(str) > 0 {
		_, str = FirstUTF8CharInString(str)
		n++
	}
	return
}
