package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nihei9/indentlr/examplegrammar"
	"github.com/nihei9/indentlr/text"
	"github.com/nihei9/indentlr/tree"
)

var parseFlags = struct {
	source  *string
	invalid *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse",
		Short:   "Parse a text stream against the worked arithmetic grammar",
		Example: `  echo '1+2+3' | indentlr parse`,
		Args:    cobra.NoArgs,
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "source file path (default stdin)")
	parseFlags.invalid = cmd.Flags().Bool("invalid", false, "use the maximum-invalid failure policy instead of maximum-valid")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	src := os.Stdin
	if *parseFlags.source != "" {
		f, err := os.Open(*parseFlags.source)
		if err != nil {
			return fmt.Errorf("cannot open source file %s: %w", *parseFlags.source, err)
		}
		defer f.Close()
		src = f
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("cannot read source: %w", err)
	}

	model := text.New(strings.TrimRight(string(data), "\n"))

	var result tree.ResultTree[examplegrammar.Label]
	var ok bool
	if *parseFlags.invalid {
		_, result, ok = examplegrammar.Parsers.MaximumInvalid(struct{}{}, model, 0, 0)
	} else {
		_, result, ok = examplegrammar.Parsers.MaximumValid(struct{}{}, model, 0, 0)
	}
	if !ok {
		return fmt.Errorf("parse failed")
	}

	return tree.Print(os.Stdout, model, result, nameOfLabel, isOpaqueLabel)
}

func nameOfLabel(l examplegrammar.Label) string {
	return string(l)
}

func isOpaqueLabel(l examplegrammar.Label) bool {
	return l == examplegrammar.LabelE || l == examplegrammar.LabelInvalid
}
