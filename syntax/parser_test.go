package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	a = Literal{Char: 'a'}
	b = Literal{Char: 'b'}
	c = Literal{Char: 'c'}
	d = Literal{Char: 'd'}
)

func abc() CharClass {
	return CharClass{Chars: []rune{'a', 'b', 'c'}}
}

func TestParse(t *testing.T) {
	tests := []struct {
		pattern string
		want    Node
	}{
		{"a", a},
		{"ab", Concat{Nodes: []Node{a, b}}},
		{"a*", ZeroOrMore{Node: a}},
		{"a+", OneOrMore{Node: a}},
		{"a?", ZeroOrOne{Node: a}},
		{"a*b", Concat{Nodes: []Node{ZeroOrMore{Node: a}, b}}},
		{".", AnyChar{}},
		{".*", ZeroOrMore{Node: AnyChar{}}},
		{"a|b", Union{Left: a, Right: b}},
		{"a|b|c", Union{Left: Union{Left: a, Right: b}, Right: c}},
		{"a*|b", Union{Left: ZeroOrMore{Node: a}, Right: b}},
		{"abc|d", Union{Left: Concat{Nodes: []Node{a, b, c}}, Right: d}},
		{"ab|cd", Union{Left: Concat{Nodes: []Node{a, b}}, Right: Concat{Nodes: []Node{c, d}}}},
		{"(ab)*", ZeroOrMore{Node: Group{Node: Concat{Nodes: []Node{a, b}}}}},
		{"(a|b)c", Concat{Nodes: []Node{Group{Node: Union{Left: a, Right: b}}, c}}},
		{"[abc]", abc()},
		{"[a-c]", abc()},
		{"[abc]*", ZeroOrMore{Node: abc()}},
		{"[abc]+", OneOrMore{Node: abc()}},
		{"[a-c]?", ZeroOrOne{Node: abc()}},
		{"([a-c])", Group{Node: abc()}},
		{"a|([a-c])", Union{Left: a, Right: Group{Node: abc()}}},
		{"[x0-2]", CharClass{Chars: []rune{'x', '0', '1', '2'}}},
		{"[]", CharClass{Chars: []rune{}}},
		{`\*`, Literal{Char: '*'}},
		{`\-`, Literal{Char: '-'}},
		{`\\`, Literal{Char: '\\'}},
		{`[\]\-]`, CharClass{Chars: []rune{']', '-'}}},
		{" a b ", Concat{Nodes: []Node{a, b}}},
		{`a\ b`, Concat{Nodes: []Node{a, Literal{Char: ' '}, b}}},
		{"é+", OneOrMore{Node: Literal{Char: 'é'}}},
		{"()", Group{Node: Concat{}}},
		{"", Concat{}},
		{"  ", Concat{}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := Parse(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseError(t *testing.T) {
	patterns := []string{
		"(",
		")",
		"a)",
		"[",
		"[(a-c)]",
		"[a-]",
		"*a",
		"a**",
		"a|",
		"|a",
		"a-b",
		`a\`,
		"[c-a]",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			n, err := Parse(pattern)
			assert.Nil(t, n)
			require.Error(t, err)

			var se *Error
			require.True(t, errors.As(err, &se))
			assert.Equal(t, pattern, se.Pattern)
			assert.GreaterOrEqual(t, se.Offset, 0)
			assert.LessOrEqual(t, se.Offset, len(pattern))
		})
	}
}

func TestParseInvalidRange(t *testing.T) {
	_, err := Parse("x[c-a]")
	var se *Error
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 2, se.Offset)
	assert.Contains(t, se.Msg, "c-a")
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, a, MustParse("a"))
	assert.Panics(t, func() { MustParse("(") })
}
