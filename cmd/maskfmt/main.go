// Command maskfmt applies a mask to lines of input.
//
// Usage:
//
//	maskfmt -mask "(XXX) XXX-XXXX" -placeholder X -mode fill-in 5551234567
//	maskfmt -config masks.yaml -name phone < numbers.txt
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bjaus/numfmt"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Error().Err(err).Msg("maskfmt failed")
		os.Exit(1)
	}
}

type options struct {
	config      string
	name        string
	mask        string
	placeholder string
	mode        string
	charset     string
	output      string
	verbose     bool
}

func parseFlags(args []string) (options, []string, error) {
	var o options
	fs := flag.NewFlagSet("maskfmt", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", "", "Path to a YAML file of named definitions")
	fs.StringVar(&o.name, "name", "", "Definition to use from -config")
	fs.StringVar(&o.mask, "mask", "", "Mask text (when no -config)")
	fs.StringVar(&o.placeholder, "placeholder", "X", "Placeholder character of -mask")
	fs.StringVar(&o.mode, "mode", numfmt.Strict.String(), "Mode: strict, fill-in or mixed")
	fs.StringVar(&o.charset, "charset", numfmt.CharSetDigits, "Accepted characters: digits, ascii-digits, letters, alphanumeric, hex")
	fs.StringVar(&o.output, "output", string(outputPlain), "Output: plain, json, yaml or csv")
	fs.BoolVar(&o.verbose, "verbose", false, "Log debug output")
	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}
	return o, fs.Args(), nil
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	opts, inputs, err := parseFlags(args)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if opts.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	out, err := parseOutput(opts.output)
	if err != nil {
		return err
	}
	f, err := loadFormatter(opts)
	if err != nil {
		return err
	}
	log.Debug().Stringer("formatter", f).Int("capacity", f.Capacity()).Int("width", f.Width()).Msg("formatter ready")

	if len(inputs) == 0 {
		inputs, err = readLines(stdin)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}

	results := make([]result, 0, len(inputs))
	for _, in := range inputs {
		r := apply(f, in)
		log.Debug().Str("input", in).Str("formatted", r.Formatted).Bool("fulfilled", r.Fulfilled).Msg("formatted")
		results = append(results, r)
	}
	return writeResults(stdout, out, results)
}

func apply(f *numfmt.Formatter, in string) result {
	formatted := f.Format(in)
	unfixed, ok := f.Unfixed(formatted)
	return result{
		Input:     in,
		Formatted: formatted,
		Unfixed:   unfixed,
		Matches:   ok,
		Fulfilled: f.IsFulfilled(in),
	}
}

func loadFormatter(opts options) (*numfmt.Formatter, error) {
	if opts.config == "" {
		if opts.mask == "" {
			return nil, fmt.Errorf("%w: -mask or -config is required", numfmt.ErrConfiguration)
		}
		mode, err := numfmt.ParseMode(opts.mode)
		if err != nil {
			return nil, err
		}
		return numfmt.Definition{
			Mask:        opts.mask,
			Placeholder: opts.placeholder,
			Mode:        mode,
			CharSet:     opts.charset,
		}.Formatter()
	}

	file, err := os.Open(opts.config)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()
	defs, err := numfmt.LoadDefinitions(file)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", opts.config).Strs("definitions", defs.Names()).Msg("loaded definitions")

	name := opts.name
	if name == "" {
		names := defs.Names()
		if len(names) != 1 {
			return nil, fmt.Errorf("%w: -name is required, choose one of %v", numfmt.ErrInvalidDefinition, names)
		}
		name = names[0]
	}
	def, ok := defs[name]
	if !ok {
		return nil, fmt.Errorf("%w: no definition named %q", numfmt.ErrInvalidDefinition, name)
	}
	return def.Formatter()
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
