package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alnah/go-recipebook/internal/dateutil"
	"github.com/alnah/go-recipebook/internal/hints"
	"github.com/alnah/go-recipebook/internal/library"
)

// runLibrary dispatches library subcommands. Only "list" exists.
func runLibrary(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printLibraryUsage(env.Stderr)
		return fmt.Errorf("%w: library requires a subcommand", ErrUsage)
	}

	switch args[0] {
	case "list":
		return runLibraryList(ctx, args[1:], env)
	case "-h", "--help":
		printLibraryUsage(env.Stdout)
		return nil
	default:
		printLibraryUsage(env.Stderr)
		return fmt.Errorf("%w: unknown library subcommand %q", ErrUsage, args[0])
	}
}

// bookRow is the JSON shape of a listed book.
type bookRow struct {
	library.Book
	Added string `json:"added"`
}

func runLibraryList(ctx context.Context, args []string, env *Environment) error {
	flags, _, err := parseLibraryListFlags(args, env.Stderr)
	if err != nil {
		return flagError(err)
	}

	cfg, err := loadConfig(flags.common, env)
	if err != nil {
		return err
	}
	if flags.library != "" {
		cfg.Library.Dir = flags.library
	}
	if flags.dateFormat != "" {
		cfg.Library.DateFormat = flags.dateFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, flags.common, env)
	if err != nil {
		return err
	}

	lib, err := library.Open(cfg.LibraryDir(), library.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("%w: %w%s", ErrOpenLibrary, err, hints.ForLibraryDirectory())
	}
	defer lib.Close()

	books, err := lib.List(ctx)
	if err != nil {
		return err
	}

	rows := make([]bookRow, 0, len(books))
	for _, b := range books {
		added, err := dateutil.Format(b.AddedAt, cfg.Library.DateFormat)
		if err != nil {
			return err
		}
		rows = append(rows, bookRow{Book: b, Added: added})
	}

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Fprintf(env.Stdout, "No books in %s\n", lib.Dir())
		return nil
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Title, r.Format, r.Added, r.ID})
	}
	fmt.Fprintln(env.Stdout, renderTable(
		[]string{"Title", "Format", "Added", "ID"},
		cells,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	))
	fmt.Fprintf(env.Stdout, "%d book(s) in %s\n", len(rows), lib.Dir())
	return nil
}
