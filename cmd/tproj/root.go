package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spicery/tproj/pkg/config"
	"github.com/spicery/tproj/pkg/projector"
)

const (
	version = "0.1.0"
	long    = `tproj - select rows and columns out of a whitespace-delimited table

EXPR is ROWS;COLS. Each half is '_' for everything, or a comma separated
list of selectors:
  N       the N-th row/column (1-based); negative counts from the end
  N~M     N through M inclusive
  N~      N through the last
  ~M      the first through M

The table is read from FILE, or from stdin when FILE is absent or '-'.
Rows shorter than the widest selected row are padded with a placeholder.
An EXPR starting with '-' (e.g. '-1;_') is never taken for a flag.

Examples:
  tproj '1;2' data.txt             # row 1, column 2
  tproj '1;_' data.txt             # row 1, all columns
  tproj '1,2,3;-4~6' data.txt      # rows 1-3, 4th-from-last column through column 6
  tproj '1~2,8;_' data.txt         # rows 1-2 then row 8
  tproj '-1;_' data.txt            # last row
  tproj --tokens '2~;-1'           # print the expression's tokens as JSON
  ps aux | tproj '2~;2,11'         # read from stdin
  tproj --make-config=toml         # print the default settings as TOML`
)

type options struct {
	configFile  string
	outputFile  string
	makeConfig  string
	tokens      bool
	placeholder string
	separator   string
	logLevel    string
	logFormat   string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "tproj [flags] EXPR [FILE]",
		Short:         "Select rows and columns out of a whitespace-delimited table",
		Long:          long,
		Version:       version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(2)(cmd, args); err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, &opts)
			if err != nil {
				return &ExitError{Code: 1, Message: err.Error()}
			}

			if cmd.Flags().Changed("make-config") {
				return makeConfig(stdout, settings, opts.makeConfig)
			}
			if len(args) == 0 {
				return &ExitError{Code: 2, Message: "missing index expression"}
			}

			p := projector.New(settings, newLogger(settings, stderr))
			var buf bytes.Buffer
			if opts.tokens {
				if err := p.DumpTokens(&buf, args[0]); err != nil {
					return err
				}
				return writeOutput(stdout, opts.outputFile, buf.Bytes())
			}

			text, err := readTable(stdin, args[1:])
			if err != nil {
				return err
			}
			if err := p.Project(&buf, args[0], text); err != nil {
				return err
			}
			return writeOutput(stdout, opts.outputFile, buf.Bytes())
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Settings file, YAML or TOML by extension (optional)")
	flags.StringVarP(&opts.outputFile, "output", "o", "", "Output file (defaults to stdout)")
	flags.StringVar(&opts.makeConfig, "make-config", "", "Print the effective settings as 'yaml' or 'toml' and exit")
	flags.Lookup("make-config").NoOptDefVal = string(config.FormatYAML)
	flags.BoolVar(&opts.tokens, "tokens", false, "Print the tokens of EXPR as JSON, one per line, and exit")
	flags.StringVar(&opts.placeholder, "placeholder", "", "Cell text for fields missing from short rows")
	flags.StringVar(&opts.separator, "separator", "", "Text written after every cell")
	flags.StringVar(&opts.logLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log output format: 'text' or 'json'")

	return cmd
}

// loadSettings merges defaults, the settings file and command line flags, in
// that order of precedence.
func loadSettings(cmd *cobra.Command, opts *options) (*config.Settings, error) {
	file := &config.File{}
	if opts.configFile != "" {
		loaded, err := config.LoadFile(opts.configFile)
		if err != nil {
			return nil, err
		}
		file = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("placeholder") {
		file.Placeholder = opts.placeholder
	}
	if flags.Changed("separator") {
		file.Separator = opts.separator
	}
	if flags.Changed("log-level") {
		file.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		file.LogFormat = opts.logFormat
	}

	settings, err := config.ApplyToDefaults(file)
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// readTable reads the table text from the named file, or from stdin when no
// file or '-' is given.
func readTable(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		text, err := readFromStdin(stdin)
		if err != nil {
			return "", fmt.Errorf("reading from stdin: %w", err)
		}
		return text, nil
	}

	text, err := readFromFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading file '%s': %w", args[0], err)
	}
	return text, nil
}

func writeOutput(stdout io.Writer, outputFile string, data []byte) error {
	if outputFile == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		return fmt.Errorf("writing output file '%s': %w", outputFile, err)
	}
	return nil
}

// makeConfig outputs the effective settings in the requested format.
func makeConfig(stdout io.Writer, settings *config.Settings, formatName string) error {
	format, err := config.ParseFormat(formatName)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	data, err := settings.Marshal(format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}

// protectExpression keeps an index expression that starts with '-' from
// being parsed as a shorthand flag. Once such an argument is found it and all
// later positional arguments are moved behind a "--" terminator, keeping
// their order; flags and flag values stay where they are.
func protectExpression(flags *pflag.FlagSet, args []string) []string {
	var (
		out        []string
		positional []string
		moving     bool
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isFlagValue(flags, args, i):
			out = append(out, arg)
		case negativeExpr.MatchString(arg):
			moving = true
			positional = append(positional, arg)
		case moving && (arg == "-" || !strings.HasPrefix(arg, "-")):
			positional = append(positional, arg)
		default:
			out = append(out, arg)
		}
	}
	if len(positional) == 0 {
		return out
	}
	return append(append(out, "--"), positional...)
}

var negativeExpr = regexp.MustCompile(`^-[0-9~]`)

// isFlagValue reports whether args[i] is the separate value of the flag
// before it, as in "--placeholder -1".
func isFlagValue(flags *pflag.FlagSet, args []string, i int) bool {
	if i == 0 {
		return false
	}
	prev := args[i-1]
	if !strings.HasPrefix(prev, "-") || prev == "-" || prev == "--" || strings.Contains(prev, "=") {
		return false
	}

	var flag *pflag.Flag
	if name, ok := strings.CutPrefix(prev, "--"); ok {
		flag = flags.Lookup(name)
	} else if len(prev) == 2 {
		flag = flags.ShorthandLookup(prev[1:])
	}
	if flag == nil || flag.NoOptDefVal != "" {
		return false
	}
	return flag.Value.Type() != "bool"
}
