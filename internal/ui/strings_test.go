package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"日本語のテスト", 4, "日本語…"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.max); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Fatalf("pad(ab, 5) = %q", got)
	}
	if got := pad("abcdef", 4); got != "abc…" {
		t.Fatalf("pad(abcdef, 4) = %q", got)
	}
	if got := len([]rune(pad("日本語", 6))); got != 6 {
		t.Fatalf("pad width = %d runes, want 6", got)
	}
}
