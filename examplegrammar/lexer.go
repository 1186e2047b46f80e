package examplegrammar

import (
	"fmt"
	"strings"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"

	"github.com/nihei9/indentlr/lr"
	"github.com/nihei9/indentlr/text"
	"github.com/nihei9/indentlr/tree"
)

// lexSpec is compiled once, at package init, from a two-entry maleeni
// lexical spec covering this grammar's terminals. The entries are small
// enough to write out literally instead of parsing them from a grammar
// source file.
var lexSpec = mustCompileLexSpec()

func mustCompileLexSpec() *mlspec.CompiledLexSpec {
	spec := &mlspec.LexSpec{
		Name: "examplegrammar",
		Entries: []*mlspec.LexEntry{
			{
				Kind:    mlspec.LexKindName("num"),
				Pattern: mlspec.LexPattern(`[0-9]+`),
			},
			{
				Kind:    mlspec.LexKindName("plus"),
				Pattern: mlspec.LexPattern(`\+`),
			},
		},
	}
	compiled, err, cErrs := mlcompiler.Compile(spec)
	if err != nil {
		if len(cErrs) > 0 {
			panic(fmt.Sprintf("%v: %v: %v", err, cErrs[0].Kind, cErrs[0].Cause))
		}
		panic(err)
	}
	return compiled
}

// lexAt runs the compiled lexer against the remainder of model's line at
// (line, col) and returns the recognized kind name and matched width, or
// ok == false if nothing matched there.
func lexAt(model text.TextModel, line, col int) (kind string, width int, ok bool) {
	ln := model.LineAt(line)
	if col > len(ln) {
		return "", 0, false
	}
	lx, err := mldriver.NewLexer(mldriver.NewLexSpec(lexSpec), strings.NewReader(string(ln[col:])))
	if err != nil {
		return "", 0, false
	}
	tok, err := lx.Next()
	if err != nil || tok.Invalid || tok.EOF || tok.Row != 0 || tok.Col != 0 {
		return "", 0, false
	}
	if len(tok.Lexeme) == 0 {
		return "", 0, false
	}
	return string(lexSpec.KindNames[tok.KindID]), len([]rune(string(tok.Lexeme))), true
}

func terminalParser(wantKind string, sym lr.Symbol, label Label) lr.TerminalParser[struct{}, Label] {
	return func(state struct{}, model text.TextModel, line, col int) []lr.Candidate[struct{}, Label] {
		kind, width, ok := lexAt(model, line, col)
		if !ok || kind != wantKind {
			return nil
		}
		span := text.NewSpan(
			text.Position{Line: line, Col: col},
			text.Position{Line: line, Col: col + width},
		)
		return []lr.Candidate[struct{}, Label]{
			{Symbol: sym, State: state, Result: tree.Label(label, span, nil)},
		}
	}
}

var registry = lr.Registry[struct{}, Label]{
	symNum:  terminalParser("num", symNum, LabelNum),
	symPlus: terminalParser("plus", symPlus, LabelPlus),
}
