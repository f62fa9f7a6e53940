package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mattn/matcalc"
	"github.com/spf13/cobra"
)

// errFailed is returned once every input was processed and at least one
// expression failed; the failures themselves were already reported.
var errFailed = errors.New("evaluation failed")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "matcalc [flags] [file...]",
		Short: "Evaluate 3x3 integer matrix expressions",
		Long: `matcalc evaluates expressions over 3x3 integer matrices such as

  t([1,2,3;4,5,6;7,8,9] - [1,1,1;1,1,1;1,1,1]) * [2,0,0;0,2,0;0,0,2]

Every line of the named files (or of standard input) is one expression.
When standard input is a terminal, expressions are read interactively.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runEval,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringArrayP("expr", "e", nil, "evaluate the given expression (repeatable)")

	rootCmd.PersistentFlags().String("format", matcalc.FormatLiteral, "output format ("+strings.Join(matcalc.Formats, "|")+")")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("header", false, "print a header line before each result")
	rootCmd.PersistentFlags().String("config", "", "config file (default "+defaultConfigPath()+")")
	rootCmd.PersistentFlags().Bool("debug", false, "log tokens, trees and results to stderr")

	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newParseCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			color.New(color.FgRed).Fprintf(os.Stderr, "matcalc: %v\n", err)
		}
		os.Exit(1)
	}
}

// loadSettings merges the config file with the flags the user set.
func loadSettings(cmd *cobra.Command) (Config, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	explicit := flags.Changed("config")
	if !explicit {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return cfg, err
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("header") {
		cfg.Header, _ = flags.GetBool("header")
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	switch cfg.Color {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}
	if debug, _ := flags.GetBool("debug"); debug {
		logLevel.Set(slog.LevelDebug)
	}
	return cfg, nil
}

type evaluator struct {
	cfg    Config
	out    io.Writer
	errOut io.Writer
	failed bool
}

func (e *evaluator) report(err error) {
	e.failed = true
	color.New(color.FgRed).Fprintf(e.errOut, "error: %v\n", err)
}

func (e *evaluator) eval(expr string) {
	node, err := matcalc.Parse(expr)
	if err != nil {
		e.report(err)
		return
	}
	theLog.Debug("parsed", "expr", node.String())
	m, err := matcalc.Eval(node)
	if err != nil {
		e.report(err)
		return
	}
	theLog.Debug("evaluated", "result", m.String())
	if e.cfg.Header {
		color.New(color.Bold).Fprintln(e.out, "--- RESULT ---")
	}
	if err := matcalc.Encode(e.out, m, e.cfg.Format); err != nil {
		e.report(err)
	}
}

// evalLines evaluates every non-blank line of r. With a non-empty prompt
// it is written before each line is read.
func (e *evaluator) evalLines(r io.Reader, prompt string) error {
	scanner := bufio.NewScanner(r)
	for {
		if prompt != "" {
			fmt.Fprint(e.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e.eval(line)
	}
	if prompt != "" {
		fmt.Fprintln(e.out)
	}
	return scanner.Err()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	exprs, err := cmd.Flags().GetStringArray("expr")
	if err != nil {
		return fmt.Errorf("failed to get expr flag: %w", err)
	}
	if len(exprs) > 0 && len(args) > 0 {
		return errors.New("--expr cannot be combined with file arguments")
	}

	e := &evaluator{
		cfg:    cfg,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
	for _, expr := range exprs {
		e.eval(expr)
	}

	if len(exprs) == 0 && len(args) == 0 {
		in := cmd.InOrStdin()
		prompt := ""
		if isTerminal(in) {
			prompt = cfg.Prompt
		}
		if err := e.evalLines(in, prompt); err != nil {
			return fmt.Errorf("error reading: %w", err)
		}
	}

	for _, file := range args {
		if err := evalFile(e, cmd.InOrStdin(), file); err != nil {
			return err
		}
	}

	if e.failed {
		return errFailed
	}
	return nil
}

func evalFile(e *evaluator, stdin io.Reader, file string) error {
	var r io.Reader
	if file == "-" {
		r = stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	if err := e.evalLines(r, ""); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}
