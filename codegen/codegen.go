// Package codegen emits Go source that rebuilds a compiled automaton without
// parsing or compiling the pattern at run time.
package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"github.com/geange/enfa"
)

const enfaPath = "github.com/geange/enfa"

// Config holds the configuration for code generation.
type Config struct {
	Package string // Package clause of the generated file
	Name    string // Suffix of the generated New<Name> function
	Pattern string // Source pattern, only used in comments
}

func (c Config) validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("invalid package name %q", c.Package)
	}
	if !token.IsIdentifier(c.Name) {
		return fmt.Errorf("invalid name %q", c.Name)
	}
	return nil
}

// Generate returns a file declaring the transition table of a and a
// constructor New<Name> that rebuilds it with enfa.Builder.
func Generate(a *enfa.Automaton, cfg Config) (*jen.File, error) {
	if a == nil {
		return nil, errors.New("nil automaton")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	f := jen.NewFile(cfg.Package)
	f.HeaderComment("Code generated by enfa. DO NOT EDIT.")

	table := tableName(cfg.Name)
	rows := make([]jen.Code, 0, a.NumTransitions())
	for t := range a.Transitions() {
		rows = append(rows, jen.Values(jen.Dict{
			jen.Id("Source"): jen.Lit(t.Source),
			jen.Id("Label"):  label(t.Label),
			jen.Id("Dest"):   jen.Lit(t.Dest),
		}))
	}
	f.Var().Id(table).Op("=").Index().Qual(enfaPath, "Transition").Custom(jen.Options{
		Open:      "{",
		Close:     "}",
		Separator: ",",
		Multi:     true,
	}, rows...)

	body := []jen.Code{
		jen.Id("b").Op(":=").Qual(enfaPath, "NewBuilderWithCapacity").Call(
			jen.Lit(a.NumStates()),
			jen.Len(jen.Id(table)),
		),
		jen.For(jen.Range().Lit(a.NumStates())).Block(
			jen.Id("b").Dot("CreateState").Call(),
		),
	}
	for _, s := range a.AcceptStates() {
		body = append(body, jen.Id("b").Dot("SetAccept").Call(jen.Lit(s), jen.True()))
	}
	body = append(body,
		jen.For(jen.List(jen.Id("_"), jen.Id("t")).Op(":=").Range().Id(table)).Block(
			jen.If(
				jen.Err().Op(":=").Id("b").Dot("AddTransition").Call(
					jen.Id("t").Dot("Source"),
					jen.Id("t").Dot("Dest"),
					jen.Id("t").Dot("Label"),
				),
				jen.Err().Op("!=").Nil(),
			).Block(
				jen.Return(jen.Nil(), jen.Err()),
			),
		),
		jen.Return(jen.Id("b").Dot("Finish").Call()),
	)

	if cfg.Pattern != "" {
		f.Commentf("New%s builds the automaton compiled from the pattern %q.", cfg.Name, cfg.Pattern)
	} else {
		f.Commentf("New%s builds the automaton.", cfg.Name)
	}
	f.Func().Id("New"+cfg.Name).Params().Params(
		jen.Op("*").Qual(enfaPath, "Automaton"),
		jen.Error(),
	).Block(body...)

	return f, nil
}

// Render generates the file for a and writes the formatted source to w.
func Render(w io.Writer, a *enfa.Automaton, cfg Config) error {
	f, err := Generate(a, cfg)
	if err != nil {
		return err
	}
	return f.Render(w)
}

func label(l enfa.Label) jen.Code {
	switch l {
	case enfa.Epsilon:
		return jen.Qual(enfaPath, "Epsilon")
	case enfa.AnyChar:
		return jen.Qual(enfaPath, "AnyChar")
	}
	return jen.LitRune(rune(l))
}

// tableName returns the unexported name of the transition table for name.
func tableName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:] + "Transitions"
}

// DefaultName derives an exported identifier from a file or pattern name.
func DefaultName(s string) string {
	b := new(strings.Builder)
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if b.Len() == 0 && unicode.IsDigit(r) {
			b.WriteString("Pattern")
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "Pattern"
	}
	return b.String()
}
