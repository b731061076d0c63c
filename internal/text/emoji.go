package text

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// emojiRanges covers the symbol blocks WhatsApp emoji live in. Joiners
// and variation selectors are deliberately absent: they only matter as
// part of a cluster whose base character already falls in a range here.
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x20e3, Hi: 0x20e3, Stride: 1}, // combining enclosing keycap
		{Lo: 0x2600, Hi: 0x27bf, Stride: 1}, // misc symbols, dingbats
		{Lo: 0x2b00, Hi: 0x2bff, Stride: 1}, // arrows, stars
	},
	R32: []unicode.Range32{
		{Lo: 0x1f1e6, Hi: 0x1f1ff, Stride: 1}, // regional indicators (flags)
		{Lo: 0x1f300, Hi: 0x1faff, Stride: 1}, // pictographs through symbols-extended
	},
}

// ExtractEmoji returns the emoji found in body, one entry per occurrence
// and in order of appearance. Each entry is a full grapheme cluster, so
// multi-codepoint sequences (skin tones, ZWJ families, keycaps, flags)
// come back as single atomic tokens rather than their constituent code
// points.
func ExtractEmoji(body string) []string {
	var found []string

	gr := uniseg.NewGraphemes(body)
	for gr.Next() {
		cluster := gr.Str()
		if containsEmoji(cluster) {
			found = append(found, cluster)
		}
	}

	return found
}

func containsEmoji(cluster string) bool {
	for _, r := range cluster {
		if unicode.Is(emojiRanges, r) {
			return true
		}
	}

	return false
}
