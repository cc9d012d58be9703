package token

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		word string
		want Token
	}{
		{"fn", Token{Kind: FN, Text: "fn"}},
		{"type", Token{Kind: STRUCT, Text: "type"}},
		{"true", Token{Kind: BOOL, Text: "true"}},
		{"Uuid", Token{Kind: TYPE, Text: UuidType}},
		{"Option", Token{Kind: OPTION, Text: "Option"}},
		{"Self", Token{Kind: SELF, Text: "Self"}},
		{"Foo", Token{Kind: OBJECT, Text: "Foo"}},
		{"foo", Token{Kind: IDENT, Text: "foo"}},
		{"_tmp", Token{Kind: IDENT, Text: "_tmp"}},
		{"use", Token{Kind: IDENT, Text: "use"}},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Lookup(tt.word))
		})
	}
}

func TestKeywords(t *testing.T) {
	words := Keywords()
	sort.Strings(words)

	assert.Len(t, words, 13)
	assert.Contains(t, words, "impl")
	assert.NotContains(t, words, "use")
	for _, w := range words {
		assert.True(t, IsKeyword(w), w)
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "end of input", Token{Kind: EOF}.Describe())
	assert.Equal(t, "identifier", Token{Kind: IDENT}.Describe())
	assert.Equal(t, "'foo'", Token{Kind: IDENT, Text: "foo"}.Describe())
	assert.Equal(t, "type name", Token{Kind: OBJECT}.Describe())
	assert.Equal(t, "integer", Token{Kind: INTEGER, Text: "42"}.Describe())
	assert.Equal(t, "':'", Token{Kind: PUNCT, Text: COLON}.Describe())
	assert.Equal(t, "PUNCT", Token{Kind: PUNCT}.Describe())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "STRUCT", STRUCT.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `"hi"`, Token{Kind: STRING, Text: "hi"}.String())
	assert.Equal(t, "EOF", Token{Kind: EOF}.String())
	assert.True(t, Token{Kind: PUNCT, Text: ARROW}.Is(PUNCT, "->"))
}
