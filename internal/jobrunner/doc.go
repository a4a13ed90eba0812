// Package jobrunner runs recipebook jobs by executing calibre's
// ebook-convert in a bounded pool of worker slots.
//
// Each job runs in its own goroutine and process group. A job waits for a
// free slot, runs the converter, and finishes with Succeeded when the
// converter exits cleanly and wrote a non-empty output file, or Failed
// otherwise. Shutdown kills every running converter group; the affected
// jobs finish as Failed.
package jobrunner
