// Package recipebook turns recipe page URLs into an e-book by assembling a
// calibre recipe and handing it to an external conversion job.
//
// # Quick Start
//
// Build the pieces once, then fetch:
//
//	asm, err := recipebook.NewAssembler()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	disp := recipebook.NewDispatcher(runner, handler.OnComplete)
//	svc := recipebook.NewService(asm, disp, notifier)
//
//	job, err := svc.Fetch(recipebook.RecipeRequest{
//	    URLs:  []string{"cooked.wiki/recipe/ramen"},
//	    Title: "Noodles",
//	}, recipebook.OutputPreferences{Format: "epub"})
//
// # Flow
//
//  1. NormalizeURLs trims input and adds a missing http:// scheme.
//  2. Assembler.Assemble fills the recipe template and writes three temp
//     files: the reserved output, the logo and the recipe itself.
//  3. Dispatcher.Submit wraps them in a Job and starts it on a JobRunner.
//  4. The runner finishes the job exactly once; CompletionHandler.OnComplete
//     imports the output into the Library and removes the other temp files.
//
// # Untrusted Input
//
// URLs and titles are written into Python source. They are always encoded
// as Python literals, so no input can change the recipe's code.
//
// # Configuration
//
// Components take functional options:
//
//	asm, err := recipebook.NewAssembler(
//	    recipebook.WithAssetPath("/path/to/assets"),
//	    recipebook.WithTempDir("/var/tmp"),
//	    recipebook.WithLogger(logger),
//	)
package recipebook
