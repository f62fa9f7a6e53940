package main

import (
	"fmt"

	"github.com/mattn/matcalc"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens EXPR...",
		Short: "Print the tokens of each expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadSettings(cmd); err != nil {
				return err
			}
			for _, arg := range args {
				toks, err := matcalc.Tokenize(arg)
				if err != nil {
					return err
				}
				for _, tok := range toks {
					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%v\n", tok.Pos, tok)
				}
			}
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse EXPR...",
		Short: "Print each expression in canonical form without evaluating it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadSettings(cmd); err != nil {
				return err
			}
			for _, arg := range args {
				node, err := matcalc.Parse(arg)
				if err != nil {
					return err
				}
				theLog.Debug("parsed", "type", node.Type(), "pos", node.Pos())
				fmt.Fprintln(cmd.OutOrStdout(), node)
			}
			return nil
		},
	}
}
