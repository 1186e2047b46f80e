package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "indentlr",
	Short: "Parse indentation-structured text against a worked LR(1) grammar",
	Long: `indentlr drives the library's worked arithmetic grammar end to end:
it reads a source text, runs it through the table-driven LR(1) parser,
and prints the resulting parse tree.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
