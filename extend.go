package utf8seg

// The two code points that extend a base code point into a longer
// user-perceived character. Exported for reuse; both are untyped string
// constants holding the UTF-8 encoding of the code point.
const (
	// VariationSelector is U+FE0F VARIATION SELECTOR-16, which requests
	// emoji presentation for the preceding code point.
	VariationSelector = "\ufe0f"

	// ZeroWidthJoiner is U+200D ZERO WIDTH JOINER, which joins the
	// surrounding code points into a single composed character.
	ZeroWidthJoiner = "\u200d"
)

// variationSelector reports the variation selector at the start of b, if
// there is one. On a non-match nothing is consumed and the caller's view of
// b is unaffected.
func variationSelector(b []byte) (sel, rest []byte, ok bool) {
	cp, rest, ok := nextCodePoint(b)
	if !ok || string(cp) != VariationSelector {
		return nil, nil, false
	}
	return cp, rest, true
}

// variationSelectorInString is like variationSelector but operates on a
// string.
func variationSelectorInString(str string) (sel, rest string, ok bool) {
	cp, rest, ok := nextCodePointInString(str)
	if !ok || cp != VariationSelector {
		return "", "", false
	}
	return cp, rest, true
}

// zeroWidthJoiner reports the joiner group at the start of b, if there is
// one. A group is the joiner plus the code point it joins, consumed
// together. A joiner with nothing after it is consumed alone, as its own
// closing unit.
// TODO: decide whether a dangling trailing joiner should be reported to the
// caller instead of quietly consumed.
func zeroWidthJoiner(b []byte) (joined, rest []byte, ok bool) {
	joiner, rest, ok := nextCodePoint(b)
	if !ok || string(joiner) != ZeroWidthJoiner {
		return nil, nil, false
	}
	if joinWith, afterJoin, ok := nextCodePoint(rest); ok {
		return b[:len(joiner)+len(joinWith)], afterJoin, true
	}
	return joiner, rest, true
}

// zeroWidthJoinerInString is like zeroWidthJoiner but operates on a string.
func zeroWidthJoinerInString(str string) (joined, rest string, ok bool) {
	joiner, rest, ok := nextCodePointInString(str)
	if !ok || joiner != ZeroWidthJoiner {
		return "", "", false
	}
	if joinWith, afterJoin, ok := nextCodePointInString(rest); ok {
		return str[:len(joiner)+len(joinWith)], afterJoin, true
	}
	return joiner, rest, true
}
