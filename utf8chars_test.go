package utf8seg

import "testing"

func TestUTF8CharsScan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"mixed widths", "A±⚽🫥", []string{"A", "±", "⚽", "🫥"}},
		{"family", "👨‍👩‍👦", []string{"👨‍👩‍👦"}},
		{"rainbow flag in text", "a🏳️‍🌈b", []string{"a", "🏳️‍🌈", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewUTF8Chars(tt.input)
			var got []string
			for c.Next() {
				got = append(got, c.Str())
			}

			if len(got) != len(tt.want) {
				t.Fatalf("got %d characters %q, want %d %q", len(got), got, len(tt.want), tt.want)
			}
			for i, char := range got {
				if char != tt.want[i] {
					t.Errorf("character %d: got %q, want %q", i, char, tt.want[i])
				}
			}
		})
	}
}

func TestUTF8CharsPositions(t *testing.T) {
	// The reported ranges must tile the source string: contiguous,
	// non-overlapping, covering every byte.
	input := "A±⚽🫥 👨‍👩‍👦 🏳️‍🌈"
	c := NewUTF8Chars(input)
	next := 0
	for c.Next() {
		from, to := c.Positions()
		if from != next {
			t.Fatalf("character %q starts at %d, want %d", c.Str(), from, next)
		}
		if input[from:to] != c.Str() {
			t.Fatalf("range [%d, %d) is %q, Str is %q", from, to, input[from:to], c.Str())
		}
		next = to
	}
	if next != len(input) {
		t.Errorf("scan covered %d bytes of %d", next, len(input))
	}
}

func TestUTF8CharsBytes(t *testing.T) {
	c := NewUTF8Chars("🏳️‍🌈")
	if !c.Next() {
		t.Fatal("Next returned false on non-empty input")
	}
	if got := string(c.Bytes()); got != "🏳️‍🌈" {
		t.Errorf("Bytes = %q, want %q", got, "🏳️‍🌈")
	}
}

func TestUTF8CharsExhaustionStable(t *testing.T) {
	c := NewUTF8Chars("ab")
	for c.Next() {
	}
	for i := 0; i < 3; i++ {
		if c.Next() {
			t.Fatalf("Next returned true after exhaustion (call %d)", i+1)
		}
		if c.Str() != "" {
			t.Errorf("Str after exhaustion = %q, want empty", c.Str())
		}
	}
}

func TestUTF8CharsRescan(t *testing.T) {
	// Two iterators over the same string yield identical sequences.
	input := "A±⚽🫥👨‍👩‍👦"
	first := NewUTF8Chars(input)
	second := NewUTF8Chars(input)
	for first.Next() {
		if !second.Next() {
			t.Fatal("second scan ended before first")
		}
		if first.Str() != second.Str() {
			t.Errorf("scans disagree: %q vs %q", first.Str(), second.Str())
		}
	}
	if second.Next() {
		t.Error("second scan has characters left after first ended")
	}
}

func TestUTF8CharsChar(t *testing.T) {
	c := NewUTF8Chars("👨‍🦰!")
	if !c.Next() {
		t.Fatal("Next returned false on non-empty input")
	}
	if got, want := c.Char(), NewUTF8Char("👨‍🦰"); got != want {
		t.Errorf("Char = %v, want %v", got, want)
	}
}
