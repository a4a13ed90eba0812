package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// requestFlags holds flags that describe which recipes to fetch.
type requestFlags struct {
	title string
	stdin bool
}

// outputFlags holds flags that override the config's output and assets.
type outputFlags struct {
	format    string
	assetPath string
	tempDir   string
}

// converterFlags holds flags for the converter job runner.
type converterFlags struct {
	bin     string
	workers int
	timeout string
}

// fetchFlags holds all flags for the fetch command.
type fetchFlags struct {
	common    commonFlags
	request   requestFlags
	output    outputFlags
	converter converterFlags
	library   string
}

// assembleFlags holds all flags for the assemble command.
type assembleFlags struct {
	common  commonFlags
	request requestFlags
	output  outputFlags
	print   bool
	keep    bool
}

// libraryListFlags holds flags for the library list command.
type libraryListFlags struct {
	common     commonFlags
	library    string
	json       bool
	dateFormat string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and converter output")
}

// addRequestFlags adds recipe request flags to a FlagSet.
func addRequestFlags(fs *flag.FlagSet, f *requestFlags) {
	fs.StringVarP(&f.title, "title", "t", "", "book title (default: recipe's own)")
	fs.BoolVar(&f.stdin, "stdin", false, "read URLs from text on standard input")
}

// addOutputFlags adds output and asset flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.format, "format", "f", "", "output format: epub, mobi, azw3, ...")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.tempDir, "temp-dir", "", "directory for scratch files")
}

// addConverterFlags adds job runner flags to a FlagSet.
func addConverterFlags(fs *flag.FlagSet, f *converterFlags) {
	fs.StringVar(&f.bin, "bin", "", "converter executable (default: ebook-convert)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "concurrent converters (0 = auto)")
	fs.StringVar(&f.timeout, "timeout", "", "converter timeout (e.g., 5m, 1h)")
}

// parseFetchFlags parses fetch command flags and returns positional args.
func parseFetchFlags(args []string, usage io.Writer) (*fetchFlags, []string, error) {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &fetchFlags{}

	addCommonFlags(fs, &f.common)
	addRequestFlags(fs, &f.request)
	addOutputFlags(fs, &f.output)
	addConverterFlags(fs, &f.converter)
	fs.StringVar(&f.library, "library", "", "library directory")

	fs.Usage = func() { printFetchUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseAssembleFlags parses assemble command flags and returns positional args.
func parseAssembleFlags(args []string, usage io.Writer) (*assembleFlags, []string, error) {
	fs := flag.NewFlagSet("assemble", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &assembleFlags{}

	addCommonFlags(fs, &f.common)
	addRequestFlags(fs, &f.request)
	addOutputFlags(fs, &f.output)
	fs.BoolVar(&f.print, "print", false, "print the generated recipe")
	fs.BoolVar(&f.keep, "keep", false, "keep the generated files")

	fs.Usage = func() { printAssembleUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseLibraryListFlags parses library list flags.
func parseLibraryListFlags(args []string, usage io.Writer) (*libraryListFlags, []string, error) {
	fs := flag.NewFlagSet("library list", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &libraryListFlags{}

	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.library, "library", "", "library directory")
	fs.BoolVar(&f.json, "json", false, "print books as JSON")
	fs.StringVar(&f.dateFormat, "date-format", "", "date format: preset or tokens (default: iso)")

	fs.Usage = func() { printLibraryUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
