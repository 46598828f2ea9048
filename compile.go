package enfa

import (
	"github.com/geange/enfa/syntax"
)

// fragment is a piece of an automaton under construction with one entry and
// one exit. The exit is marked accept until the fragment is composed into a
// larger one.
type fragment struct {
	entry int
	exit  int
}

// compiler owns the builder shared by every recursive call, so state ids
// come from a single counter for the whole compilation.
type compiler struct {
	b *Builder
}

// Compile builds an ε-NFA for node using Thompson's construction. The start
// state is 0 and state ids are contiguous. Either the whole tree compiles or
// an error is returned.
func Compile(node syntax.Node) (*Automaton, error) {
	c := &compiler{b: NewBuilderWithCapacity(16, 16)}
	if _, err := c.compile(node); err != nil {
		return nil, err
	}
	return c.b.Finish()
}

// MustCompile is like Compile but panics on error.
func MustCompile(node syntax.Node) *Automaton {
	a, err := Compile(node)
	if err != nil {
		panic(err)
	}
	return a
}

// CompilePattern parses pattern and compiles it.
func CompilePattern(pattern string) (*Automaton, error) {
	node, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Compile(node)
}

func (c *compiler) compile(node syntax.Node) (fragment, error) {
	switch n := node.(type) {
	case syntax.Literal:
		return c.makeChar(Label(n.Char))
	case syntax.AnyChar:
		return c.makeChar(AnyChar)
	case syntax.CharClass:
		return c.makeCharClass(n.Chars)
	case syntax.Concat:
		return c.concatenate(n.Nodes)
	case syntax.Union:
		return c.union(n.Left, n.Right)
	case syntax.ZeroOrMore:
		return c.repeat(n.Node)
	case syntax.OneOrMore:
		return c.repeatMin1(n.Node)
	case syntax.ZeroOrOne:
		return c.optional(n.Node)
	case syntax.Group:
		return c.compile(n.Node)
	}
	return fragment{}, &UnsupportedConstructError{Node: node}
}

// epsilon adds an epsilon transition from source to each of dests.
func (c *compiler) epsilon(source int, dests ...int) error {
	for _, dest := range dests {
		if err := c.b.AddEpsilon(source, dest); err != nil {
			return err
		}
	}
	return nil
}
