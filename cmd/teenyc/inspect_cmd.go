package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"teeny/internal/ast"
	"teeny/internal/errors"
	"teeny/internal/lexer"
	"teeny/internal/parser"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a teeny file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}
			tokens, err := lexer.Lex(source)
			if err != nil {
				report(cmd.ErrOrStderr(), args[0], source, err, nil)
				return err
			}
			printTokens(cmd.OutOrStdout(), tokens)
			return nil
		},
	}
}

func printTokens(out io.Writer, tokens []lexer.Token) {
	for _, tok := range tokens {
		switch tok.Type {
		case lexer.NEWLINE:
			fmt.Fprintf(out, "%-7s %s\n", tok.Position, tok.Type)
		case lexer.NUMBER:
			fmt.Fprintf(out, "%-7s %-13s %d\n", tok.Position, tok.Type, tok.Value)
		case lexer.STRING:
			fmt.Fprintf(out, "%-7s %-13s %q\n", tok.Position, tok.Type, tok.Lexeme)
		default:
			fmt.Fprintf(out, "%-7s %-13s %s\n", tok.Position, tok.Type, tok.Lexeme)
		}
	}
}

func newAstCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the syntax tree of a teeny file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			source, err := readSource(args[0])
			if err != nil {
				return err
			}
			program, err := parser.ParseSource(source, parser.WithMaxDepth(viper.GetInt("max-depth")))
			if err != nil {
				report(cmd.ErrOrStderr(), args[0], source, err, nil)
				return err
			}

			out := cmd.OutOrStdout()
			if !asJSON {
				fmt.Fprint(out, program.String())
				return nil
			}
			data, err := marshalJSON(ast.ToJSON(program))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the tree as JSON")
	return cmd
}

// report prints a pipeline error as a diagnostic.
func report(out io.Writer, path, source string, err error, tokens []lexer.Token) {
	if tokens == nil {
		tokens, _ = lexer.New(source).Tokens()
	}
	reporter := errors.NewErrorReporter(path, source)
	fmt.Fprint(out, reporter.FormatError(errors.FromError(err, tokens)))
}
