// Package syntax defines the abstract syntax tree of a pattern and parses
// pattern text into it.
package syntax

import (
	"fmt"
	"strings"
)

type Kind int

const (
	KindLiteral    Kind = iota // A single character
	KindAnyChar                // Any single character
	KindCharClass              // One character out of an explicit set
	KindConcat                 // A sequence of expressions
	KindUnion                  // The union of two expressions
	KindZeroOrMore             // An expression repeated any number of times
	KindOneOrMore              // An expression repeated at least once
	KindZeroOrOne              // An optional expression
	KindGroup                  // A parenthesized expression
)

var kindNames = [...]string{
	KindLiteral:    "Literal",
	KindAnyChar:    "AnyChar",
	KindCharClass:  "CharClass",
	KindConcat:     "Concat",
	KindUnion:      "Union",
	KindZeroOrMore: "ZeroOrMore",
	KindOneOrMore:  "OneOrMore",
	KindZeroOrOne:  "ZeroOrOne",
	KindGroup:      "Group",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is one node of a pattern tree. Trees are values and are never
// modified after construction.
type Node interface {
	Kind() Kind
	// String renders the node back to pattern text.
	String() string
}

// Literal matches exactly one occurrence of Char.
type Literal struct {
	Char rune
}

// AnyChar matches any single character.
type AnyChar struct{}

// CharClass matches any one character of Chars. Ranges are already expanded.
type CharClass struct {
	Chars []rune
}

// Concat matches its nodes one after another.
type Concat struct {
	Nodes []Node
}

// Union matches either Left or Right.
type Union struct {
	Left, Right Node
}

// ZeroOrMore matches Node repeated zero or more times.
type ZeroOrMore struct {
	Node Node
}

// OneOrMore matches Node repeated one or more times.
type OneOrMore struct {
	Node Node
}

// ZeroOrOne matches Node at most once.
type ZeroOrOne struct {
	Node Node
}

// Group wraps Node without changing what it matches.
type Group struct {
	Node Node
}

func (Literal) Kind() Kind    { return KindLiteral }
func (AnyChar) Kind() Kind    { return KindAnyChar }
func (CharClass) Kind() Kind  { return KindCharClass }
func (Concat) Kind() Kind     { return KindConcat }
func (Union) Kind() Kind      { return KindUnion }
func (ZeroOrMore) Kind() Kind { return KindZeroOrMore }
func (OneOrMore) Kind() Kind  { return KindOneOrMore }
func (ZeroOrOne) Kind() Kind  { return KindZeroOrOne }
func (Group) Kind() Kind      { return KindGroup }

// metachars must be escaped to be read as literals.
const metachars = `*+?.|()[]-\`

func writeChar(b *strings.Builder, r rune) {
	if strings.ContainsRune(metachars, r) || r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		b.WriteByte('\\')
	}
	b.WriteRune(r)
}

func (n Literal) String() string {
	b := new(strings.Builder)
	writeChar(b, n.Char)
	return b.String()
}

func (AnyChar) String() string {
	return "."
}

func (n CharClass) String() string {
	b := new(strings.Builder)
	b.WriteByte('[')
	for _, r := range n.Chars {
		writeChar(b, r)
	}
	b.WriteByte(']')
	return b.String()
}

func (n Concat) String() string {
	b := new(strings.Builder)
	for _, node := range n.Nodes {
		if _, ok := node.(Union); ok {
			b.WriteString("(" + node.String() + ")")
			continue
		}
		b.WriteString(node.String())
	}
	return b.String()
}

func (n Union) String() string {
	return str(n.Left) + "|" + str(n.Right)
}

func (n ZeroOrMore) String() string { return quantified(n.Node, "*") }
func (n OneOrMore) String() string  { return quantified(n.Node, "+") }
func (n ZeroOrOne) String() string  { return quantified(n.Node, "?") }

func (n Group) String() string {
	return "(" + str(n.Node) + ")"
}

func str(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}

// quantified parenthesizes operands that would otherwise bind differently.
func quantified(n Node, op string) string {
	switch n := n.(type) {
	case Literal, AnyChar, CharClass, Group:
		return n.String() + op
	case Concat:
		if len(n.Nodes) == 1 {
			return quantified(n.Nodes[0], op)
		}
	}
	return "(" + str(n) + ")" + op
}
