package watermark

import (
	"strings"
	"testing"
)

func TestAlphabetHas64Symbols(t *testing.T) {
	if n := len([]rune(Alphabet)); n != 64 {
		t.Fatalf("alphabet has %d symbols, want 64", n)
	}
	if Alphabet[0] != ' ' {
		t.Error("alphabet must start with space (code 0)")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello World", "hello world"},
		{"¡This is a TEST!", "this is a test!"},
		{"tabs\tand\temoji🎉", "tabsandemoji"},
		{"keep .-,:/()?!\"'#*+_%$&=<>[];@§\n", "keep .-,:/()?!\"'#*+_%$&=<>[];@§\n"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTextRoundTripInMemory(t *testing.T) {
	w, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	msgs := []string{
		"hello world",
		"",
		"   ", // all spaces trim to empty
		"a",
		"0123456789.-,:/(",  // exactly capacity
		"this is a test!",
	}
	for _, m := range msgs {
		bits := w.encodeText(m)
		if bits.Len() != 6*w.MaxTextLen() {
			t.Fatalf("%q: encoded %d bits, want %d", m, bits.Len(), 6*w.MaxTextLen())
		}
		got := w.decodeText(bits)
		want := strings.TrimRight(m, " ")
		if got != want {
			t.Errorf("%q: round trip gave %q, want %q", m, got, want)
		}
	}
}

func TestTextTruncatesToCapacity(t *testing.T) {
	w, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	long := "the quick brown fox jumps over the lazy dog"
	got := w.decodeText(w.encodeText(long))
	want := strings.TrimRight(long[:w.MaxTextLen()], " ")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
