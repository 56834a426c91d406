package utf8seg

// UTF8Chars implements an iterator over the extended user-perceived
// characters of a string. While [FirstUTF8CharInString] is the faster,
// allocation-free way to scan, this class is more convenient when you also
// want byte positions or [UTF8Char] values.
//
// The iterator is forward-only and finite. Once [UTF8Chars.Next] has
// returned false it keeps returning false; to scan the text again,
// construct a new iterator with [NewUTF8Chars].
type UTF8Chars struct {
	remaining string // The not-yet-consumed suffix of the source.
	char      string // The current character, or "" before Next / at the end.
	offset    int    // Byte offset of the current character in the source.
}

// NewUTF8Chars returns an iterator over the extended user-perceived
// characters of the given string. The iterator holds a view of str and does
// not copy it.
func NewUTF8Chars(str string) *UTF8Chars {
	return &UTF8Chars{remaining: str}
}

// Next advances the iterator by one character, returning false if the text
// is exhausted. Calling Next after exhaustion is harmless and keeps
// returning false.
func (c *UTF8Chars) Next() bool {
	c.offset += len(c.char)
	if len(c.remaining) == 0 {
		c.char = ""
		return false
	}
	c.char, c.remaining = FirstUTF8CharInString(c.remaining)
	return true
}

// Str returns the current character as a sub-string of the source string.
// It returns "" before the first call to [UTF8Chars.Next] and after
// exhaustion.
func (c *UTF8Chars) Str() string {
	return c.char
}

// Bytes returns a copy of the current character's bytes.
func (c *UTF8Chars) Bytes() []byte {
	return []byte(c.char)
}

// Positions returns the byte positions of the current character in the
// source string: from is inclusive, to is exclusive. Over a full scan the
// returned ranges are contiguous and cover the source exactly.
func (c *UTF8Chars) Positions() (from, to int) {
	return c.offset, c.offset + len(c.char)
}

// Char returns the current character wrapped as a [UTF8Char], suitable for
// direct comparison in assertions.
func (c *UTF8Chars) Char() UTF8Char {
	return UTF8Char{c.char}
}
