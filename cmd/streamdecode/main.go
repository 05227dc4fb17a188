// Command streamdecode decodes a raw PDF stream payload through a filter chain.
//
// Usage:
//
//	streamdecode -filter ASCIIHexDecode,FlateDecode [-predictor 12 -columns 5] [-o out.bin] [file]
//
// The payload is read from file, or from standard input when no file is
// given. Filters are applied in the order listed. -predictor and -columns
// become the DecodeParms of every FlateDecode entry in the chain.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tsawler/pdfstream/core"
	"github.com/tsawler/pdfstream/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	filters   string
	predictor int
	columns   int
	output    string
	verbose   bool
	lang      string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options

	fs := flag.NewFlagSet("streamdecode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.filters, "filter", "", "comma-separated filter names, in application order")
	fs.IntVar(&opts.predictor, "predictor", 0, "FlateDecode Predictor parameter (0 leaves it unset)")
	fs.IntVar(&opts.columns, "columns", 0, "FlateDecode Columns parameter (0 leaves it unset)")
	fs.StringVar(&opts.output, "o", "", "write decoded bytes to this file instead of stdout")
	fs.BoolVar(&opts.verbose, "v", false, "log each filter to stderr")
	fs.StringVar(&opts.lang, "lang", "en", "language tag for the summary line")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(stderr, "streamdecode: at most one input file")
		return 2
	}

	if opts.verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer logging.SetLogger(nil)
	}

	in := stdin
	inName := "stdin"
	if fs.NArg() == 1 {
		inName = fs.Arg(0)
		f, err := os.Open(inName)
		if err != nil {
			fmt.Fprintf(stderr, "streamdecode: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	raw, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(stderr, "streamdecode: reading %s: %v\n", inName, err)
		return 1
	}

	filter, parms := opts.streamEntries()
	decoded, err := core.DecodeStream(raw, filter, parms)
	if err != nil {
		fmt.Fprintf(stderr, "streamdecode: %s: %v\n", inName, err)
		return 1
	}

	out := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			fmt.Fprintf(stderr, "streamdecode: %v\n", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	if _, err := out.Write(decoded); err != nil {
		fmt.Fprintf(stderr, "streamdecode: writing output: %v\n", err)
		return 1
	}

	tag, err := language.Parse(opts.lang)
	if err != nil {
		tag = language.English
	}
	message.NewPrinter(tag).Fprintf(stderr, "%s: %d bytes decoded to %d bytes\n", inName, len(raw), len(decoded))
	return 0
}

// streamEntries builds the /Filter and /DecodeParms values for the chain
// named on the command line.
func (o options) streamEntries() (core.Object, core.Object) {
	if strings.TrimSpace(o.filters) == "" {
		return nil, nil
	}

	var names core.Array
	for _, name := range strings.Split(o.filters, ",") {
		names = append(names, core.Name(strings.TrimPrefix(strings.TrimSpace(name), "/")))
	}

	if o.predictor == 0 && o.columns == 0 {
		return names, nil
	}

	flateParms := core.Dict{}
	if o.predictor != 0 {
		flateParms["Predictor"] = core.Int(o.predictor)
	}
	if o.columns != 0 {
		flateParms["Columns"] = core.Int(o.columns)
	}

	parms := make(core.Array, len(names))
	for i, name := range names {
		if name == core.Name("FlateDecode") {
			parms[i] = flateParms
		} else {
			parms[i] = core.Null{}
		}
	}
	return names, parms
}
