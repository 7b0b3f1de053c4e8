// Command slha reads an SLHA file and prints the blocks and decay tables
// requested on the command line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/slha"
)

// Exit code constants, named rather than bare integers.
const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
	ExitParseError       = 3
	ExitNotFound         = 4
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var (
		blockNames []string
		decayIDs   []string
		logLevel   string
		logFormat  string
	)

	rootCmd := &cobra.Command{
		Use:           "slha <file>",
		Short:         "Print blocks and decay tables from an SLHA file",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			handler, err := newHandler(cmd.ErrOrStderr(), logLevel, logFormat)
			if err != nil {
				return invalidArgumentsError{err}
			}
			logger := slog.New(handler)
			return runFile(cmd.OutOrStdout(), logger, cmdArgs[0], blockNames, decayIDs)
		},
	}

	rootCmd.PersistentFlags().StringArrayVar(&blockNames, "block", nil, "Print the raw lines of every occurrence of this block (repeatable)")
	rootCmd.PersistentFlags().StringArrayVar(&decayIDs, "decay", nil, "Print the decay table for this PDG id (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", defaultLogFormat, "Log format: json, logfmt")
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

type invalidArgumentsError struct{ cause error }

func (e invalidArgumentsError) Error() string { return e.cause.Error() }
func (e invalidArgumentsError) Unwrap() error { return e.cause }

type ioError struct{ cause error }

func (e ioError) Error() string { return e.cause.Error() }
func (e ioError) Unwrap() error { return e.cause }

type parseError struct{ cause error }

func (e parseError) Error() string { return e.cause.Error() }
func (e parseError) Unwrap() error { return e.cause }

type notFoundError struct{ cause error }

func (e notFoundError) Error() string { return e.cause.Error() }
func (e notFoundError) Unwrap() error { return e.cause }

func exitCodeFor(err error) int {
	switch err.(type) {
	case invalidArgumentsError:
		return ExitInvalidArguments
	case ioError:
		return ExitIOError
	case parseError:
		return ExitParseError
	case notFoundError:
		return ExitNotFound
	default:
		return ExitInvalidArguments
	}
}

func runFile(out io.Writer, logger *slog.Logger, path string, blockNames, decayIDs []string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read file", "path", path, "error", err)
		return ioError{err}
	}

	doc, err := slha.Parse(string(content))
	if err != nil {
		logger.Error("failed to parse SLHA file", "path", path, "error", err)
		return parseError{err}
	}
	logger.Debug("parsed SLHA file", "path", path)

	for _, name := range blockNames {
		raws := doc.GetRawBlocks(name)
		if len(raws) == 0 {
			logger.Warn("block not found", "name", name)
			return notFoundError{fmt.Errorf("block %q not found", name)}
		}
		for i, raw := range raws {
			fmt.Fprintf(out, "Block %s occurrence %d (scale=%v):\n", strings.ToLower(name), i+1, raw.Scale)
			for _, line := range raw.Lines {
				fmt.Fprintf(out, "  %s\n", line.Data)
			}
		}
	}

	for _, idText := range decayIDs {
		pdgID, err := strconv.ParseInt(idText, 10, 64)
		if err != nil {
			return invalidArgumentsError{fmt.Errorf("invalid PDG id %q: %w", idText, err)}
		}
		dt, ok := doc.GetDecay(pdgID)
		if !ok {
			logger.Warn("decay table not found", "pdg_id", pdgID)
			return notFoundError{fmt.Errorf("decay table for pdg id %d not found", pdgID)}
		}
		fmt.Fprintf(out, "Decay %d (width=%v):\n", pdgID, dt.Width)
		for _, d := range dt.Decays {
			fmt.Fprintf(out, "  %v -> %v\n", d.BranchingRatio, d.Daughters)
		}
	}

	return nil
}
