/*
Package utf8seg segments UTF-8 encoded text into extended user-perceived
characters: sequences of one or more code points that render as a single
visible character, including emoji composed with variation selectors and
zero-width joiners.

# Overview

Go's built-in notions of length report code units, not what users see:

	len("👨‍🦰")                   // 11 (bytes)
	len([]rune("👨‍🦰"))            // 3 (code points)
	utf8seg.UTF8CharCount("👨‍🦰") // 1 (what users see)

This package recognizes exactly two composition rules on top of plain code
points:

  - an optional trailing U+FE0F VARIATION SELECTOR-16 ([VariationSelector])
  - any number of chained (U+200D ZERO WIDTH JOINER, code point) pairs
    ([ZeroWidthJoiner])

That covers composed emoji such as 👨‍🦰, 👨‍👩‍👦, and 🏳️‍🌈. It is not a full
implementation of Unicode Standard Annex #29: combining marks, regional
indicator pairs (country flags), and Indic conjuncts are not joined. If you
need full grapheme cluster segmentation, use a UAX #29 implementation
instead.

# Getting Started

For simple use cases:
  - [UTF8CharCount] - Count user-perceived characters

For iteration:
  - [FirstUTF8Char] / [FirstUTF8CharInString] - Zero-allocation scanning
  - [UTF8Chars] - Convenient iterator class

For low-level decoding:
  - [CodePointLen] / [CodePointLenInString] - Leading-byte length decoding
  - [DecodeCodePointLen] - Checked variant

# Input Contract

All functions assume their input is valid UTF-8 and, where a byte slice is
passed, that it starts on a code point boundary. The package performs no
validation: feeding it malformed or misaligned bytes is a contract violation
and the length decoder panics rather than guessing (see [CodePointLen]).
Use [DecodeCodePointLen] where a checked answer is preferred.

# Zero Copying

The segmentation functions never copy text. [FirstUTF8Char] and
[FirstUTF8CharInString] return sub-slices of their input, and [UTF8Chars.Str]
returns a sub-string of the source string. Every returned view is only valid
as long as the text it was cut from.
*/
package utf8seg
