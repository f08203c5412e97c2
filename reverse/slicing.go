package reverse

import "unicode/utf8"

// BySlicing returns text with its code units in reverse order.
func BySlicing(text string) string {
	rev := make([]byte, 0, len(text))

	// Traverse text in reverse, adding each unit to rev.
	for end := len(text); end > 0; {
		_, size := utf8.DecodeLastRuneInString(text[:end])
		rev = append(rev, text[end-size:end]...)
		end -= size
	}

	return string(rev)
}
