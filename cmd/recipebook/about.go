package main

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-recipebook/internal/assets"
	"github.com/alnah/go-recipebook/internal/config"
	"github.com/alnah/go-recipebook/internal/render"
)

// aboutDocument names the embedded about page.
const aboutDocument = "about"

// runAbout prints the embedded about page as markdown, or as HTML with --html.
func runAbout(ctx context.Context, args []string, env *Environment) error {
	fs := flag.NewFlagSet("about", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	asHTML := fs.Bool("html", false, "render the page as HTML")
	fs.Usage = func() { printAboutUsage(env.Stderr) }
	if err := fs.Parse(args); err != nil {
		return flagError(err)
	}

	doc, err := assets.LoadDocument(aboutDocument)
	if err != nil {
		return err
	}

	if !*asHTML {
		fmt.Fprint(env.Stdout, doc)
		return nil
	}

	html, err := render.NewMarkdownRenderer().ToHTML(ctx, "About "+config.AppName, doc)
	if err != nil {
		return err
	}
	fmt.Fprint(env.Stdout, html)
	return nil
}
