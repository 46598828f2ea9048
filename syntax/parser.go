package syntax

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Error is a pattern that could not be parsed.
type Error struct {
	Pattern string
	Offset  int // byte offset into Pattern
	Msg     string
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax: %s at offset %d in %q", e.Msg, e.Offset, e.Pattern)
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Escaped", Pattern: `\\.`},
	{Name: "Meta", Pattern: `[*+?.|()\[\]-]`},
	{Name: "Char", Pattern: `[^\s*+?.|()\[\]\\-]`},
})

type expression struct {
	Alternatives []*sequence `parser:"@@ ( '|' @@ )*"`
}

type sequence struct {
	Factors []*factor `parser:"@@+"`
}

type factor struct {
	Atom       *atom  `parser:"@@"`
	Quantifier string `parser:"@( '*' | '+' | '?' )?"`
}

type atom struct {
	Char  *string    `parser:"  @( Char | Escaped )"`
	Any   bool       `parser:"| @'.'"`
	Class *charClass `parser:"| @@"`
	Group *group     `parser:"| @@"`
}

type charClass struct {
	Open  bool         `parser:"@'['"`
	Items []*classItem `parser:"@@* ']'"`
}

type classItem struct {
	Pos lexer.Position

	From string  `parser:"@( Char | Escaped )"`
	To   *string `parser:"( '-' @( Char | Escaped ) )?"`
}

type group struct {
	Open bool        `parser:"@'('"`
	Body *expression `parser:"@@? ')'"`
}

var parser = participle.MustBuild[expression](
	participle.Lexer(patternLexer),
	participle.Elide("Whitespace"),
)

// Parse parses pattern into a tree. Whitespace outside escapes is ignored;
// an empty pattern yields an empty Concat.
func Parse(pattern string) (Node, error) {
	if strings.TrimSpace(pattern) == "" {
		return Concat{}, nil
	}
	expr, err := parser.ParseString("", pattern)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &Error{Pattern: pattern, Offset: perr.Position().Offset, Msg: perr.Message()}
		}
		return nil, &Error{Pattern: pattern, Msg: err.Error()}
	}
	return expr.node(pattern)
}

// MustParse is like Parse but panics if the pattern cannot be parsed.
func MustParse(pattern string) Node {
	n, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

func (e *expression) node(pattern string) (Node, error) {
	var result Node
	for i, alt := range e.Alternatives {
		n, err := alt.node(pattern)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			result = n
		} else {
			result = Union{Left: result, Right: n}
		}
	}
	return result, nil
}

func (s *sequence) node(pattern string) (Node, error) {
	nodes := make([]Node, 0, len(s.Factors))
	for _, f := range s.Factors {
		n, err := f.node(pattern)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return Concat{Nodes: nodes}, nil
}

func (f *factor) node(pattern string) (Node, error) {
	n, err := f.Atom.node(pattern)
	if err != nil {
		return nil, err
	}
	switch f.Quantifier {
	case "*":
		return ZeroOrMore{Node: n}, nil
	case "+":
		return OneOrMore{Node: n}, nil
	case "?":
		return ZeroOrOne{Node: n}, nil
	}
	return n, nil
}

func (a *atom) node(pattern string) (Node, error) {
	switch {
	case a.Char != nil:
		return Literal{Char: unescape(*a.Char)}, nil
	case a.Any:
		return AnyChar{}, nil
	case a.Class != nil:
		return a.Class.node(pattern)
	case a.Group != nil:
		if a.Group.Body == nil {
			return Group{Node: Concat{}}, nil
		}
		n, err := a.Group.Body.node(pattern)
		if err != nil {
			return nil, err
		}
		return Group{Node: n}, nil
	}
	return nil, &Error{Pattern: pattern, Msg: "empty atom"}
}

func (c *charClass) node(pattern string) (Node, error) {
	chars := make([]rune, 0, len(c.Items))
	for _, item := range c.Items {
		from := unescape(item.From)
		if item.To == nil {
			chars = append(chars, from)
			continue
		}
		to := unescape(*item.To)
		if from > to {
			return nil, &Error{
				Pattern: pattern,
				Offset:  item.Pos.Offset,
				Msg:     fmt.Sprintf("invalid character class range %c-%c", from, to),
			}
		}
		for r := from; r <= to; r++ {
			chars = append(chars, r)
		}
	}
	return CharClass{Chars: chars}, nil
}

// unescape returns the character of a Char or Escaped token.
func unescape(tok string) rune {
	tok = strings.TrimPrefix(tok, `\`)
	r, _ := utf8.DecodeRuneInString(tok)
	return r
}
