package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	apppkg "github.com/kk-code-lab/expplot/internal/app"
	"github.com/kk-code-lab/expplot/internal/chart"
	"github.com/kk-code-lab/expplot/internal/debuglog"
	"github.com/kk-code-lab/expplot/internal/expdata"
)

func printHelp(w io.Writer) {
	fmt.Fprint(w, `expplot - Plot Thermo-Calc experimental datafiles in the terminal

USAGE:
    expplot [OPTIONS] FILE

OPTIONS:
    -h, --help              Show this help message and exit
    -b, --blocks            Keep BLOCK ... BLOCKEND runs as separate series
    -p, --print             Print the parsed data as a table instead of plotting
        --color=NAME        Series color (e.g. red, #ff8800); default cycles per block
        --marker=CHAR       Mark every data point with CHAR
        --label=TEXT        Legend text shown in the top-right corner
        --debug-log=PATH    Append a debug trace to PATH

KEYS:
    b                       Toggle per-block / flattened view
    q, Esc, Ctrl-C          Quit
`)
}

type options struct {
	path     string
	perBlock bool
	print    bool
	help     bool
	debugLog string
	style    chart.Style
}

var errUsage = errors.New("usage: expplot [OPTIONS] FILE (see --help)")

func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			opts.help = true
		case arg == "-b" || arg == "--blocks":
			opts.perBlock = true
		case arg == "-p" || arg == "--print":
			opts.print = true
		case arg == "--debug-log" || arg == "--color" || arg == "--marker" || arg == "--label":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			i++
			if err := opts.setValue(arg, args[i]); err != nil {
				return opts, err
			}
		case strings.HasPrefix(arg, "--") && strings.Contains(arg, "="):
			name, value, _ := strings.Cut(arg, "=")
			if err := opts.setValue(name, value); err != nil {
				return opts, err
			}
		case strings.HasPrefix(arg, "-") && arg != "-":
			return opts, fmt.Errorf("unknown option %s", arg)
		default:
			if opts.path != "" {
				return opts, errUsage
			}
			opts.path = arg
		}
	}
	if !opts.help && opts.path == "" {
		return opts, errUsage
	}
	return opts, nil
}

func (o *options) setValue(name, value string) error {
	switch name {
	case "--debug-log":
		o.debugLog = value
	case "--color":
		o.style.Color = value
	case "--label":
		o.style.Label = value
	case "--marker":
		if utf8.RuneCountInString(value) != 1 {
			return fmt.Errorf("--marker expects a single character, got %q", value)
		}
		r, _ := utf8.DecodeRuneInString(value)
		o.style.Marker = r
	default:
		return fmt.Errorf("unknown option %s", name)
	}
	return nil
}

func run(opts options, stdout io.Writer) error {
	logger := debuglog.New(opts.debugLog)

	if opts.print {
		parser := expdata.Parser{Debugf: logger.Func()}
		res, err := parser.Load(opts.path, opts.perBlock)
		if err != nil {
			return err
		}
		return expdata.WriteTable(stdout, res)
	}

	app, err := apppkg.NewApplication(apppkg.Config{
		Path:     opts.path,
		PerBlock: opts.perBlock,
		Style:    opts.style,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
	return nil
}

func main() {
	// Set UTF-8 as fallback encoding so braille cells and labels survive
	// terminals that do not advertise a charset.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if opts.help {
		printHelp(os.Stdout)
		os.Exit(0)
	}

	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
