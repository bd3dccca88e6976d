package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"teeny/internal/lexer"
)

// LSP characters count UTF-16 code units while lexer columns count bytes.

// lineText returns the 1-based line of text without its line break.
func lineText(text string, line int) string {
	for i := 1; i < line; i++ {
		next := strings.IndexByte(text, '\n')
		if next < 0 {
			return ""
		}
		text = text[next+1:]
	}
	if end := strings.IndexByte(text, '\n'); end >= 0 {
		text = text[:end]
	}
	return strings.TrimSuffix(text, "\r")
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if size := utf16RuneLen(r); size > 0 {
			n += size
		} else {
			n++
		}
	}
	return n
}

// characterRange maps a byte span starting at pos onto UTF-16 characters.
// Bytes past the end of the line (a newline, the end of input) count one
// character each.
func characterRange(text string, pos lexer.Position, length int) (start, end protocol.UInteger) {
	line := lineText(text, pos.Line)
	startByte := min(max(0, pos.Column-1), len(line))
	endByte := min(startByte+max(0, length), len(line))

	beforeStart := utf16Len(line[:startByte]) + max(0, pos.Column-1-startByte)
	span := utf16Len(line[startByte:endByte]) + max(0, length-(endByte-startByte))
	return protocol.UInteger(beforeStart), protocol.UInteger(beforeStart + span)
}

// bytePosition converts a client position into the same shape with the
// character counted in bytes, matching lexer columns.
func bytePosition(text string, pos protocol.Position) protocol.Position {
	line := lineText(text, int(pos.Line)+1)

	want := int(pos.Character)
	units, offset := 0, len(line)
	for i, r := range line {
		if units >= want {
			offset = i
			break
		}
		if size := utf16RuneLen(r); size > 0 {
			units += size
		} else {
			units++
		}
	}
	if units < want {
		// past the end of the line
		offset += want - units
	}
	return protocol.Position{Line: pos.Line, Character: protocol.UInteger(offset)}
}
