// Package reverse reverses text one code unit at a time.
//
// A code unit is one UTF-8 encoded code point. A byte that does not begin a
// valid UTF-8 sequence counts as a unit of its own and is copied through
// unchanged, so the output is always a permutation of the input's bytes.
// Grapheme clusters are not kept together: a base letter followed by a
// combining mark comes out as mark then letter.
//
// Three strategies produce identical output:
//
//	BySlicing    reads the input back to front once
//	ByIteration  reads front to back, inserting each unit at the front
//	ByRecursion  last unit, then the reversal of the rest
package reverse
