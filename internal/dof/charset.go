package dof

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeToUTF8 converts a response body to UTF-8. The DOF still serves
// legacy windows-1252 and ISO-8859-1 pages, so anything that is not
// already valid UTF-8 goes through a single-byte decoder chosen by
// scoring the high bytes.
func decodeToUTF8(data []byte) string {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return string(data)
	}

	enc := charmap.ISO8859_1
	if scoreWindows1252(data) > 0 {
		enc = charmap.Windows1252
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

// scoreWindows1252 counts bytes in the 0x80-0x9F block, which holds
// printable punctuation in windows-1252 but control characters in
// ISO-8859-1. Any hit means the page is windows-1252.
func scoreWindows1252(data []byte) int {
	score := 0
	for _, b := range data {
		if b >= 0x80 && b <= 0x9F {
			score++
		}
	}
	return score
}
