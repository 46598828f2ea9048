package enfa

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geange/enfa/syntax"
)

func TestWriteDot(t *testing.T) {
	a := MustCompile(syntax.Union{Left: litA, Right: syntax.AnyChar{}})

	var buf bytes.Buffer
	require.NoError(t, WriteDot(&buf, a))

	want := "digraph finite_state_machine {\n" +
		"\trankdir=LR\n" +
		"\tnode [shape=doublecircle]; 5;\n" +
		"\tnode [shape=circle];\n" +
		"\t0 -> 1 [label=\"ε\"]\n" +
		"\t0 -> 3 [label=\"ε\"]\n" +
		"\t1 -> 2 [label=\"a\"]\n" +
		"\t2 -> 5 [label=\"ε\"]\n" +
		"\t3 -> 4 [label=\"Σ\"]\n" +
		"\t4 -> 5 [label=\"ε\"]\n" +
		"}\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, want, Dot(a))
}

func TestWriteDotWithoutAcceptStates(t *testing.T) {
	b := NewBuilder()
	b.CreateState()
	a, err := b.Finish()
	require.NoError(t, err)

	assert.Equal(t, "digraph finite_state_machine {\n\trankdir=LR\n\tnode [shape=circle];\n}\n", Dot(a))
}

func TestDotLabel(t *testing.T) {
	tests := []struct {
		label Label
		want  string
	}{
		{'a', "a"},
		{'é', "é"},
		{'"', `\"`},
		{'\\', `\\`},
		{'\n', `\n`},
		{Epsilon, "ε"},
		{AnyChar, "Σ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dotLabel(tt.label))
	}
}

func TestWriteDotNil(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, WriteDot(&buf, nil), ErrNilAutomaton)
	assert.Empty(t, buf.String())
	assert.Equal(t, "", Dot(nil))
}
