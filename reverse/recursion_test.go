package reverse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkStart(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		n        int
		expected int
	}{
		{
			name: "empty",
			n:    3,
		},
		{
			name:     "fewer units than n",
			text:     "ab",
			n:        3,
			expected: 0,
		},
		{
			name:     "ascii",
			text:     "abcdef",
			n:        2,
			expected: 4,
		},
		{
			name:     "multi-byte units",
			text:     "aé€",
			n:        2,
			expected: 1,
		},
		{
			name:     "invalid byte",
			text:     "ab\xff",
			n:        1,
			expected: 2,
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, chunkStart(tc.text, tc.n), tc.name)
	}
}

func TestReverseRecursiveChunked(t *testing.T) {
	testCases := []struct {
		name  string
		text  string
		depth int
	}{
		{
			name:  "depth one",
			text:  "hello world",
			depth: 1,
		},
		{
			name:  "chunk boundary inside multi-byte text",
			text:  "café 日本語 \U0001F600!",
			depth: 3,
		},
		{
			name:  "exact multiple of depth",
			text:  "abcdef",
			depth: 2,
		},
		{
			name:  "depth larger than input",
			text:  "abc",
			depth: 100,
		},
	}

	for _, tc := range testCases {
		assert.Equal(t, BySlicing(tc.text), reverseRecursive(tc.text, tc.depth), tc.name)
	}
}

func TestByRecursionBeyondDepthLimit(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 3*DefaultMaxRecursionDepth+7; i++ {
		b.WriteByte(byte('a' + i%26))
		if i%10 == 0 {
			b.WriteString("é")
		}
	}
	text := b.String()

	assert.Equal(t, BySlicing(text), ByRecursion(text))
	assert.Equal(t, text, ByRecursion(ByRecursion(text)))
}
