package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	"teeny/internal/compiler"
	"teeny/internal/errors"
)

var log = commonlog.GetLogger("teeny.teenyc")

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <file>...",
		Short: "Compile teeny source files to C",
		Long: `Compile each file to <out-dir>/<name>.c. Files are compiled independently;
a failure in one file does not stop the others.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout, _ := cmd.Flags().GetBool("stdout")
			return compileFiles(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, stdout)
		},
	}
	cmd.Flags().Bool("stdout", false, "Print the generated C instead of writing files")
	return cmd
}

func compileFiles(out, errOut io.Writer, paths []string, stdout bool) error {
	start := time.Now()
	c := compiler.New(compilerOptions()...)

	var result *multierror.Error
	for _, path := range paths {
		if err := compileFile(c, out, errOut, path, stdout); err != nil {
			result = multierror.Append(result, err)
		}
	}

	elapsed := formatDuration(time.Since(start))
	if err := result.ErrorOrNil(); err != nil {
		fmt.Fprintln(errOut, red(fmt.Sprintf("Compilation failed for %d of %d files after %s", len(result.Errors), len(paths), elapsed)))
		return err
	}
	fmt.Fprintln(errOut, green(fmt.Sprintf("Successfully compiled %d %s in %s", len(paths), files(len(paths)), elapsed)))
	return nil
}

func compileFile(c *compiler.Compiler, out, errOut io.Writer, path string, stdout bool) error {
	source, err := readSource(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	reporter := errors.NewErrorReporter(path, source)

	result, err := c.Run(source)
	if err != nil {
		fmt.Fprint(errOut, reporter.FormatErrors([]errors.CompilerError{errors.FromError(err, result.Tokens)}))
		return fmt.Errorf("%s: %s failed: %w", path, compiler.StageOf(err), err)
	}
	if warnings := errors.Warnings(result.Symbols, result.Tokens); len(warnings) > 0 {
		fmt.Fprint(errOut, reporter.FormatErrors(warnings))
	}

	code := compiler.Join(result.Lines)
	if stdout {
		_, err := io.WriteString(out, code)
		return err
	}

	target := outputPath(viper.GetString("out-dir"), path)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(target, []byte(code), 0o644); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Infof("wrote %s (%d lines)", target, len(result.Lines))
	return nil
}

// outputPath maps examples/fib.tiny to <dir>/fib.c.
func outputPath(dir, source string) string {
	if dir == "" {
		dir = defaultOutDir
	}
	base := filepath.Base(source)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+".c")
}

func files(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
