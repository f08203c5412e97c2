package reverse

import "unicode/utf8"

// ByIteration returns text with its code units in reverse order.
//
// Units are visited front to back and each one is inserted ahead of the
// units already placed. The result buffer is sized up front and filled from
// its end, so an insertion never shifts earlier units.
func ByIteration(text string) string {
	rev := make([]byte, len(text))
	front := len(rev)

	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		front -= size
		copy(rev[front:], text[i:i+size])
		i += size
	}

	return string(rev)
}
