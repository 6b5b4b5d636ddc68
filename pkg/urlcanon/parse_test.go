package urlcanon

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse("HTTPS://user:pw@Example.com:8080/a b/c?one=1&two=%20x+y&flag#top")
	require.NoError(t, err)

	assert.Equal(t, "https", p.Scheme)
	assert.Equal(t, "user:pw@Example.com:8080", p.Host)
	assert.Equal(t, "/a%20b/c", p.Path)
	assert.Equal(t, []QueryPair{
		{Key: []byte("one"), Value: []byte("1")},
		{Key: []byte("two"), Value: []byte(" x y")},
		{Key: []byte("flag"), Value: []byte("")},
	}, p.Pairs)
	assert.True(t, p.HasFragment)
	assert.Equal(t, "top", p.Fragment)
}

func TestParseSkipsEmptySegments(t *testing.T) {
	p, err := Parse("https://example.com/?a=1&&b=2&")
	require.NoError(t, err)

	assert.Equal(t, []QueryPair{
		{Key: []byte("a"), Value: []byte("1")},
		{Key: []byte("b"), Value: []byte("2")},
	}, p.Pairs)
}

func TestParseSplitsOnFirstEquals(t *testing.T) {
	p, err := Parse("https://example.com/?a=b=c")
	require.NoError(t, err)

	require.Len(t, p.Pairs, 1)
	assert.Equal(t, "a", string(p.Pairs[0].Key))
	assert.Equal(t, "b=c", string(p.Pairs[0].Value))
}

func TestParseNoQueryNoFragment(t *testing.T) {
	p, err := Parse("https://example.com")
	require.NoError(t, err)

	assert.Empty(t, p.Pairs)
	assert.False(t, p.HasFragment)
	assert.Equal(t, "", p.Path)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no scheme", input: "hw chen/aggregate?one=[two =three].[four]&five=six"},
		{name: "empty", input: ""},
		{name: "bad host", input: "http://exa mple.com/"},
		{name: "bad port", input: "http://example.com:port/"},
		{name: "bad path escape", input: "https://example.com/%zz"},
		{name: "bad query escape", input: "https://example.com/?q=%zz"},
		{name: "bad key escape", input: "https://example.com/?%g1=v"},
		{name: "bad opaque escape", input: "mailto:%zz?x=1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse(tc.input)
			assert.Nil(t, p)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidURL)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tc.input, perr.Raw)
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}
