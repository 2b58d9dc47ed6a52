package render

import (
	"strings"

	"github.com/modaltext/selectengine/buffer"
	"github.com/modaltext/selectengine/internal/ui"
	"github.com/modaltext/selectengine/selection"
)

// Line renders a single buffer line with every selection that overlaps it
// painted in reverse video, and the main selection additionally bolded so
// it stands out among secondary selections.
func Line(buf *buffer.Buffer, lineNo int, l selection.List, colors *ui.ANSIColors) string {
	content := strings.TrimSuffix(buf.Line(lineNo), "\n")
	runes := []rune(content)

	highlighted := make([]bool, len(runes))
	mainHighlighted := make([]bool, len(runes))
	byteToRune := byteOffsetsToRuneIndices(content)

	for i, sel := range l.Selections {
		begin, end := sel.Min(), sel.Max()
		if lineNo < begin.Line || lineNo > end.Line {
			continue
		}
		startByte, endByte := 0, len(content)
		if lineNo == begin.Line {
			startByte = begin.Column
		}
		if lineNo == end.Line {
			endByte = end.Column + 1
			if endByte > len(content) {
				endByte = len(content)
			}
		}
		startRune := byteToRune[clampByte(startByte, len(content))]
		endRune := byteToRune[clampByte(endByte, len(content))]
		for r := startRune; r < endRune && r < len(runes); r++ {
			highlighted[r] = true
			if i == l.Main {
				mainHighlighted[r] = true
			}
		}
	}

	var sb strings.Builder
	for i, r := range runes {
		switch {
		case mainHighlighted[i]:
			sb.WriteString(colors.Bold)
			sb.WriteString(colors.Reverse)
			sb.WriteRune(r)
			sb.WriteString(colors.Reset)
		case highlighted[i]:
			sb.WriteString(colors.Reverse)
			sb.WriteRune(r)
			sb.WriteString(colors.Reset)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func clampByte(b, max int) int {
	if b < 0 {
		return 0
	}
	if b > max {
		return max
	}
	return b
}

// byteOffsetsToRuneIndices maps every byte offset in s (0..len(s)) to the
// rune index it falls within, so selection boundaries expressed in bytes
// (buffer.Coord.Column) can be translated to the rune-indexed slice that
// Line paints one rune at a time.
func byteOffsetsToRuneIndices(s string) []int {
	out := make([]int, len(s)+1)
	runeIdx := 0
	prevByte := 0
	for byteIdx := range s {
		for b := prevByte; b < byteIdx; b++ {
			out[b] = runeIdx - 1
		}
		out[byteIdx] = runeIdx
		prevByte = byteIdx
		runeIdx++
	}
	for b := prevByte + 1; b < len(s); b++ {
		out[b] = runeIdx - 1
	}
	out[len(s)] = runeIdx
	return out
}
