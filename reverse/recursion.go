package reverse

import "unicode/utf8"

// DefaultMaxRecursionDepth bounds how deep ByRecursion recurses, counted in
// code units. Longer inputs are cut into chunks of at most this many units,
// starting from the end, and each chunk is reversed recursively.
const DefaultMaxRecursionDepth = 4096

// ByRecursion returns text with its code units in reverse order: the last
// unit followed by the reversal of everything before it.
func ByRecursion(text string) string {
	return reverseRecursive(text, DefaultMaxRecursionDepth)
}

func reverseRecursive(text string, maxDepth int) string {
	// Base case: zero or one unit.
	if _, size := utf8.DecodeLastRuneInString(text); size == len(text) {
		return text
	}

	rev := make([]byte, 0, len(text))
	for len(text) > 0 {
		start := chunkStart(text, maxDepth)
		rev = appendReversed(rev, text[start:])
		text = text[:start]
	}
	return string(rev)
}

// appendReversed appends the last unit of text to dst, then recurses on the
// remainder. Depth equals the number of units in text.
func appendReversed(dst []byte, text string) []byte {
	if len(text) == 0 {
		return dst
	}
	_, size := utf8.DecodeLastRuneInString(text)
	cut := len(text) - size
	return appendReversed(append(dst, text[cut:]...), text[:cut])
}

// chunkStart returns the byte offset at which the final n units of text
// begin, or 0 if text holds n units or fewer.
func chunkStart(text string, n int) int {
	end := len(text)
	for ; n > 0 && end > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(text[:end])
		end -= size
	}
	return end
}
