package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/slyce/internal/config"
)

var (
	cfgFile     string
	inputFile   string
	inputFormat string
	showIndices bool
	highlight   bool
	noColor     bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "slyce '[start:end:step]'",
	Short: "Apply a Python-style slice expression to an array",
	Long: `slyce applies a Python-style slice expression to an array read from
stdin (or --input) and prints the selected elements.

Expressions use the bracketed triple form with optional signed fields:

  slyce '[1:-2:1]'  < array.json     elements 1 through len-3
  slyce '[::-1]'    < array.json     the array reversed
  slyce '[-3::]'    < array.json     the last three elements

Out-of-range bounds clamp to the array edges and a zero step selects
nothing; slicing itself never fails.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(cmd)
		if err != nil {
			printError("invalid options", err)
			return err
		}

		in := os.Stdin
		if inputFile != "" {
			f, err := os.Open(inputFile)
			if err != nil {
				printError("open input", err)
				return err
			}
			defer f.Close()
			in = f
		}

		if err := run(args[0], in, os.Stdout, os.Stderr, opts); err != nil {
			printError("slice", err)
			return err
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "defaults file (TOML or YAML)")
	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "read the array from a file instead of stdin")
	rootCmd.Flags().StringVarP(&inputFormat, "format", "f", "", "array document format: json or yaml")
	rootCmd.Flags().BoolVar(&showIndices, "indices", false, "print selected positions instead of elements")
	rootCmd.Flags().BoolVar(&highlight, "highlight", false, "print the whole array with the selection marked")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output in highlight mode")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report resolved selection details on stderr")
}

// buildOptions merges the optional defaults file with the command line;
// flags that were set explicitly win.
func buildOptions(cmd *cobra.Command) (options, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return options{}, err
		}
		cfg = loaded
	}

	opts := options{
		format:    cfg.Input,
		indices:   cfg.Indices,
		highlight: cfg.Highlight,
		color:     cfg.Color,
		verbose:   verbose,
	}
	if cmd.Flags().Changed("format") {
		opts.format = strings.ToLower(inputFormat)
	} else if inputFile != "" {
		if f, ok := formatFromExtension(inputFile); ok {
			opts.format = f
		}
	}
	if cmd.Flags().Changed("indices") {
		opts.indices = showIndices
	}
	if cmd.Flags().Changed("highlight") {
		opts.highlight = highlight
	}
	if noColor {
		opts.color = false
	}

	if opts.format != "json" && opts.format != "yaml" {
		return options{}, fmt.Errorf("unsupported array format %q (want json or yaml)", opts.format)
	}
	return opts, nil
}

// formatFromExtension guesses the array document format from a file name
func formatFromExtension(path string) (string, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", true
	case ".yaml", ".yml":
		return "yaml", true
	default:
		return "", false
	}
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
