package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunFilterStdin(t *testing.T) {
	input := "ab\nb\nabc\nxab\n"

	code, stdout, stderr := run(t, input, "ab")
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, "ab\nabc\n", stdout)
	assert.Empty(t, stderr)

	code, stdout, _ = run(t, input, "-full", "ab")
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, "ab\n", stdout)

	code, stdout, _ = run(t, input, "zz")
	assert.Equal(t, ExitNoMatch, code)
	assert.Empty(t, stdout)
}

func TestRunFilterFiles(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.txt")
	two := filepath.Join(dir, "two.txt")
	require.NoError(t, os.WriteFile(one, []byte("cat\ndog\n"), 0o644))
	require.NoError(t, os.WriteFile(two, []byte("cow\ncod\n"), 0o644))

	code, stdout, _ := run(t, "", "-full", "c(at|o[wd])", one, two)
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, one+":cat\n"+two+":cow\n"+two+":cod\n", stdout)

	code, stdout, _ = run(t, "", "-full", "do.", one)
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, "dog\n", stdout)

	code, _, stderr := run(t, "", "a", filepath.Join(dir, "missing.txt"))
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "missing.txt")
}

func TestRunDot(t *testing.T) {
	code, stdout, _ := run(t, "", "-dot", "a")
	assert.Equal(t, ExitMatch, code)
	assert.Equal(t, "digraph finite_state_machine {\n"+
		"\trankdir=LR\n"+
		"\tnode [shape=doublecircle]; 1;\n"+
		"\tnode [shape=circle];\n"+
		"\t0 -> 1 [label=\"a\"]\n"+
		"}\n", stdout)
}

func TestRunGoSource(t *testing.T) {
	code, stdout, _ := run(t, "", "-go", "-pkg", "gen", "-name", "Foo", "a+")
	assert.Equal(t, ExitMatch, code)
	assert.Contains(t, stdout, "package gen")
	assert.Contains(t, stdout, "func NewFoo() (*enfa.Automaton, error) {")

	code, stdout, _ = run(t, "", "-go", "ab")
	assert.Equal(t, ExitMatch, code)
	assert.Contains(t, stdout, "package main")
	assert.Contains(t, stdout, "func NewAb() (*enfa.Automaton, error) {")

	code, _, stderr := run(t, "", "-go", "-pkg", "bad-pkg", "a")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "invalid package name")
}

func TestRunErrors(t *testing.T) {
	code, _, stderr := run(t, "")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "usage: enfa")

	code, _, stderr = run(t, "a\n", "(")
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "enfa: syntax:")

	code, _, _ = run(t, "", "-nope", "a")
	assert.Equal(t, ExitError, code)

	code, _, _ = run(t, "", "-h")
	assert.Equal(t, ExitMatch, code)
}

func TestRunStepLimit(t *testing.T) {
	line := strings.Repeat("a", 30) + "c\n"
	code, stdout, stderr := run(t, "aab\n"+line, "-max-steps", "500", "(a|a)*b")
	assert.Equal(t, ExitError, code)
	assert.Equal(t, "aab\n", stdout)
	assert.Contains(t, stderr, "(standard input):2:")
	assert.Contains(t, stderr, "step limit exceeded")
}

func TestRunVerbose(t *testing.T) {
	code, _, stderr := run(t, "a\n", "-v", "a")
	assert.Equal(t, ExitMatch, code)
	assert.Contains(t, stderr, `[enfa] parsed "a" as a`)
	assert.Contains(t, stderr, "[enfa] compiled 2 states, 1 transitions, accept [1]")
	assert.Contains(t, stderr, "[enfa] 1 of 1 lines matched")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(false, &buf)
	l.Log("hidden %d", 1)
	assert.False(t, l.Enabled())
	assert.Empty(t, buf.String())

	l = NewLogger(true, &buf)
	l.Log("shown %d", 2)
	assert.True(t, l.Enabled())
	assert.Equal(t, "[enfa] shown 2\n", buf.String())
}
