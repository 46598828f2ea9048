package enfa

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// WriteDot writes a Graphviz description of a to w. Accept states are drawn
// as double circles; epsilon edges are labeled ε and wildcard edges Σ.
func WriteDot(w io.Writer, a *Automaton) error {
	if a == nil {
		return ErrNilAutomaton
	}
	bw := bufio.NewWriter(w)

	bw.WriteString("digraph finite_state_machine {\n")
	bw.WriteString("\trankdir=LR\n")

	if accept := a.AcceptStates(); len(accept) > 0 {
		bw.WriteString("\tnode [shape=doublecircle];")
		for _, s := range accept {
			bw.WriteString(" " + strconv.Itoa(s))
		}
		bw.WriteString(";\n")
	}
	bw.WriteString("\tnode [shape=circle];\n")

	for t := range a.Transitions() {
		bw.WriteString("\t" + strconv.Itoa(t.Source) + " -> " + strconv.Itoa(t.Dest))
		bw.WriteString(" [label=\"" + dotLabel(t.Label) + "\"]\n")
	}
	bw.WriteString("}\n")
	return bw.Flush()
}

// Dot returns the Graphviz description of a, or "" if a is nil.
func Dot(a *Automaton) string {
	b := new(strings.Builder)
	_ = WriteDot(b, a)
	return b.String()
}

func dotLabel(l Label) string {
	switch l {
	case Epsilon, AnyChar:
		return l.String()
	case '"':
		return `\"`
	case '\\':
		return `\\`
	}
	r := rune(l)
	if !strconv.IsPrint(r) {
		return strings.Trim(strconv.QuoteRune(r), "'")
	}
	return string(r)
}
