package watermark

import (
	"strings"

	"github.com/muhaimin059/dct-watermark/internal/bitbuf"
)

// Alphabet is the 6-bit character set.  A character's position is its
// code; anything else is dropped after lower-casing.
const Alphabet = " abcdefghijklmnopqrstuvwxyz0123456789.-,:/()?!\"'#*+_%$&=<>[];@§\n"

var (
	alphabetRunes []rune
	alphabetCode  map[rune]int
)

func init() {
	alphabetRunes = []rune(Alphabet)
	alphabetCode = make(map[rune]int, len(alphabetRunes))
	for i, r := range alphabetRunes {
		alphabetCode[r] = i
	}
}

// Normalize lower-cases s and removes every character outside the
// alphabet.  The result is what a round trip through the mark can
// reproduce, before truncation to capacity.
func Normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if _, ok := alphabetCode[r]; ok {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// encodeText packs s into exactly 6·maxTextLen bits: normalized,
// truncated to capacity and right-padded with spaces.
func (w *Watermark) encodeText(s string) *bitbuf.Buffer {
	runes := []rune(Normalize(s))
	if len(runes) > w.maxTextLen {
		runes = runes[:w.maxTextLen]
	}
	bits := bitbuf.New(6 * w.maxTextLen)
	for _, r := range runes {
		bits.AppendValue(uint64(alphabetCode[r]), 6)
	}
	for i := len(runes); i < w.maxTextLen; i++ {
		bits.AppendValue(uint64(alphabetCode[' ']), 6)
	}
	return bits
}

// decodeText reads maxTextLen 6-bit codes and trims the space padding.
func (w *Watermark) decodeText(bits *bitbuf.Buffer) string {
	runes := make([]rune, w.maxTextLen)
	for i := 0; i < w.maxTextLen; i++ {
		runes[i] = alphabetRunes[bits.Value(6*i, 6)]
	}
	return strings.TrimRight(string(runes), " ")
}
