package utf8seg

// UTF8Char wraps one extended user-perceived character as a comparable
// value. Two UTF8Chars are equal under == exactly when their underlying
// bytes are equal. The wrapper holds a view of the text it was cut from and
// does not copy it.
type UTF8Char struct {
	str string
}

// NewUTF8Char wraps the given text directly, with no segmentation applied.
// This is mostly useful for building expected values in tests and
// assertions.
func NewUTF8Char(str string) UTF8Char {
	return UTF8Char{str}
}

// Str returns the character's underlying text.
func (c UTF8Char) Str() string {
	return c.str
}

// Is reports whether the character's text equals the given string.
func (c UTF8Char) Is(right string) bool {
	return c.str == right
}

// String implements [fmt.Stringer], rendering the character's text in
// single quotes.
func (c UTF8Char) String() string {
	return "'" + c.str + "'"
}
