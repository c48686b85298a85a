package qualifier

import "strings"

// FindField locates a qualifier in a font string by its tag, returning
// the byte offset of the qualifier's marker. A leading bare font name
// counts as the TagFont qualifier at offset 0.
//
// FindField deliberately does not parse the string: offsets must be
// reported against the caller's original bytes, and an existence check
// must not carry the cost or failure modes of a full parse. Payloads are
// skipped by their boundaries only, without validation; if the string is
// broken before the wanted tag could be reached, the answer is simply
// ok=false.
func FindField(fontString string, tag Tag) (offset int, ok bool) {
	if fontString == "" {
		return 0, false
	}
	pos := 0
	if fontString[0] != '\\' {
		if tag == TagFont {
			return 0, true
		}
		next := strings.IndexByte(fontString, '\\')
		if next < 0 {
			return 0, false
		}
		pos = next
	}
	for pos < len(fontString) {
		// fontString[pos] == '\\'
		if pos+1 == len(fontString) {
			// marker without a tag
			return 0, false
		}
		if Tag(fontString[pos+1]) == tag {
			return pos, true
		}
		next := strings.IndexByte(fontString[pos+2:], '\\')
		if next < 0 {
			return 0, false
		}
		pos += 2 + next
	}
	return 0, false
}
