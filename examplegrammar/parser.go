package examplegrammar

import (
	"github.com/nihei9/indentlr/lr"
)

var invalidLabel = LabelInvalid

// Parsers is the arithmetic example's built pair, ready to run against a
// text.TextModel via text.New. User state is unused (struct{}); Label is
// the result tree's label type.
var Parsers = lr.BuildParsers[struct{}, Label](grammar{}, nonterminalLabels, registry, &invalidLabel)
