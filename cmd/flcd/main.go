// Command flcd runs the lexical analysis of an FLCD source file and writes
// its program internal form and symbol table.
//
// Usage:
//
//	flcd [flags] <inputFile> <internalFormOutputFile> <symbolTableOutputFile>
//
// Tokens that cannot be classified are printed to standard output, one per
// line, as "<token> <line>". They do not change the exit status.
//
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	flcd "github.com/cata-b/FLCDCompiler"
	"github.com/cata-b/FLCDCompiler/automaton"
	"github.com/cata-b/FLCDCompiler/pif"
	"github.com/cata-b/FLCDCompiler/tokenizer"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, afero.NewOsFs()))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, fs afero.Fs) int {
	cmd := newRootCommand(fs)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		report(stderr, err)
		return 1
	}
	return 0
}

// report prints err and, for tokenizer errors, the token it occurred at.
//
func report(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %s\n", err)
	var te *tokenizer.Error
	if errors.As(err, &te) && te.HasToken {
		fmt.Fprintf(w, "token %q at line %d\n", te.Token.Content, te.Token.Line)
	}
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	var (
		cfg        = DefaultConfig()
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "flcd <inputFile> <internalFormOutputFile> <symbolTableOutputFile>",
		Short:         "Lexical analyzer for the FLCD toy language",
		Args:          cobra.MinimumNArgs(3),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			if configPath != "" {
				fileCfg, err := LoadConfig(fs, configPath)
				if err != nil {
					return err
				}
				cfg = mergeFlags(cmd, fileCfg, cfg)
			}
			return compile(cmd, fs, cfg, args[0], args[1], args[2])
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML configuration file")
	f.StringVar(&cfg.IdentifierFA, "identifier-fa", cfg.IdentifierFA, "YAML automaton recognizing identifiers")
	f.StringVar(&cfg.ConstantFA, "constant-fa", cfg.ConstantFA, "YAML automaton recognizing integer constants")
	f.IntVar(&cfg.BufferSize, "buffer-size", cfg.BufferSize, "tokenizer read buffer size")
	f.IntVar(&cfg.ColumnWidth, "column-width", cfg.ColumnWidth, "width of the token column of the internal form")
	f.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")

	return cmd
}

// mergeFlags returns base with the values of the flags set on the command
// line taken from flags.
//
func mergeFlags(cmd *cobra.Command, base, flags Config) Config {
	f := cmd.Flags()
	if f.Changed("identifier-fa") {
		base.IdentifierFA = flags.IdentifierFA
	}
	if f.Changed("constant-fa") {
		base.ConstantFA = flags.ConstantFA
	}
	if f.Changed("buffer-size") {
		base.BufferSize = flags.BufferSize
	}
	if f.Changed("column-width") {
		base.ColumnWidth = flags.ColumnWidth
	}
	if f.Changed("debug") {
		base.Debug = flags.Debug
	}
	return base
}

func compile(cmd *cobra.Command, fs afero.Fs, cfg Config, in, pifOut, stOut string) error {
	level := zerolog.WarnLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	opts := []flcd.Option{flcd.WithFs(fs), flcd.WithBufferSize(cfg.BufferSize)}
	if cfg.IdentifierFA != "" {
		a, err := automaton.Load(fs, cfg.IdentifierFA)
		if err != nil {
			return err
		}
		opts = append(opts, flcd.WithIdentifierMatcher(a))
	}
	if cfg.ConstantFA != "" {
		a, err := automaton.Load(fs, cfg.ConstantFA)
		if err != nil {
			return err
		}
		opts = append(opts, flcd.WithIntegerMatcher(a))
	}

	res, err := flcd.Compile(ctx, in, opts...)
	if err != nil {
		return err
	}
	defer res.Table.Close()

	if err := writeFile(fs, pifOut, func(w io.Writer) error {
		return pif.WriteInternalForm(w, res.PIF, pif.WithColumnWidth(cfg.ColumnWidth))
	}); err != nil {
		return err
	}
	if err := writeFile(fs, stOut, func(w io.Writer) error {
		return pif.WriteSymbolTable(w, res.Table)
	}); err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	for _, t := range res.Errors {
		fmt.Fprintf(out, "%s %d\n", t.Content, t.Line)
	}
	return out.Flush()
}

func writeFile(fs afero.Fs, name string, write func(io.Writer) error) (err error) {
	f, err := fs.Create(name)
	if err != nil {
		return errors.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Errorf("closing output file %s: %w", name, cerr)
		}
	}()
	return write(f)
}
