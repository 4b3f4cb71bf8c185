package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every output format.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds template and styling flags.
type renderFlags struct {
	template string
	ats      bool
}

// determinismFlags holds artifact normalization flags.
type determinismFlags struct {
	disabled  bool
	fixedDate string
	verify    bool
}

// cliFlags holds all parsed command-line flags.
type cliFlags struct {
	common         commonFlags
	render         renderFlags
	determinism    determinismFlags
	output         string
	format         string
	timeout        string
	skipValidation bool
	version        bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addRenderFlags adds template flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.template, "template", "", "template name: ats, modern")
	fs.BoolVar(&f.ats, "ats", false, "suppress decorative styling (content unchanged)")
}

// addDeterminismFlags adds normalization flags to a FlagSet.
func addDeterminismFlags(fs *flag.FlagSet, f *determinismFlags) {
	fs.BoolVar(&f.disabled, "no-determinism", false, "keep renderer timestamps and IDs in the artifact")
	fs.StringVar(&f.fixedDate, "fixed-date", "", "fixed creation date: D:YYYYMMDDHHmmSS+00'00'")
	fs.BoolVar(&f.verify, "verify", false, "validate artifact structure after normalization")
}

// parseFlags parses the command line and returns positional args
// (the input file, or "-" for stdin).
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("resume2pdf", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.format, "format", "f", "", "output format: pdf, html, txt")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "content-set timeout (e.g. 30s)")
	fs.BoolVar(&f.skipValidation, "skip-validation", false, "skip JSON schema validation of input")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addDeterminismFlags(fs, &f.determinism)

	fs.Usage = func() { printUsage(fs.Output()) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: resume2pdf [flags] <resume.json | ->

Renders a JSON Resume document to a deterministic PDF (or HTML/text).
Reads from stdin when the input argument is "-".

Flags:
  -o, --output string      output file or directory
  -f, --format string      output format: pdf, html, txt (default pdf)
  -c, --config string      config file name or path
      --template string    template name: ats, modern
      --ats                suppress decorative styling (content unchanged)
      --no-determinism     keep renderer timestamps and IDs in the artifact
      --fixed-date string  fixed creation date: D:YYYYMMDDHHmmSS+00'00'
      --verify             validate artifact structure after normalization
      --skip-validation    skip JSON schema validation of input
  -t, --timeout string     content-set timeout (e.g. 30s)
  -q, --quiet              only show errors
  -v, --verbose            show detailed progress
      --version            print version and exit
`)
}
