package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: recipebook <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  fetch      Download recipes into an e-book and add it to the library")
	fmt.Fprintln(w, "  assemble   Generate the recipe files without downloading")
	fmt.Fprintln(w, "  library    List books in the library")
	fmt.Fprintln(w, "  about      Show information about recipebook")
	fmt.Fprintln(w, "  doctor     Check the converter, library and environment")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'recipebook help <command>' for details on a specific command.")
}

func printRequestFlags(w io.Writer) {
	fmt.Fprintln(w, "Request:")
	fmt.Fprintln(w, "  -t, --title <s>           Book title (default: the recipe's own)")
	fmt.Fprintln(w, "      --stdin               Read URLs from text on standard input")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: epub, mobi, azw3, ...")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom recipe template and logo directory")
	fmt.Fprintln(w, "      --temp-dir <dir>      Directory for scratch files")
	fmt.Fprintln(w)
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and converter output")
}

// printFetchUsage prints usage for the fetch command.
func printFetchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: recipebook fetch [url...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Download recipes from Cooked Wiki into an e-book and add it to the library.")
	fmt.Fprintln(w, "URLs without a scheme get http:// prepended.")
	fmt.Fprintln(w)
	printRequestFlags(w)
	fmt.Fprintln(w, "Converter:")
	fmt.Fprintln(w, "      --bin <path>          Converter executable (default: ebook-convert)")
	fmt.Fprintln(w, "  -w, --workers <n>         Concurrent converters (0 = auto)")
	fmt.Fprintln(w, "      --timeout <d>         Converter timeout (e.g., 5m, 1h)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Library:")
	fmt.Fprintln(w, "      --library <dir>       Library directory")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printAssembleUsage prints usage for the assemble command.
func printAssembleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: recipebook assemble [url...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate the recipe, logo and output placeholder without running the converter.")
	fmt.Fprintln(w)
	printRequestFlags(w)
	fmt.Fprintln(w, "Inspection:")
	fmt.Fprintln(w, "      --print               Print the generated recipe")
	fmt.Fprintln(w, "      --keep                Keep the generated files")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printLibraryUsage prints usage for the library command.
func printLibraryUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: recipebook library list [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List books in the library, newest first.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --library <dir>       Library directory")
	fmt.Fprintln(w, "      --json                Print books as JSON")
	fmt.Fprintln(w, "      --date-format <s>     Date format for the Added column")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, datetime, european, us, long")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// printAboutUsage prints usage for the about command.
func printAboutUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: recipebook about [--html]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show information about recipebook as markdown, or as HTML with --html.")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: recipebook doctor [--json] [-c config]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check the converter, config, library and temp directories.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "fetch":
		printFetchUsage(env.Stdout)
	case "assemble":
		printAssembleUsage(env.Stdout)
	case "library":
		printLibraryUsage(env.Stdout)
	case "about":
		printAboutUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: recipebook version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: recipebook help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
