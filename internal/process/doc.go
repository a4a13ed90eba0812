// Package process starts child processes in their own group and kills
// whole groups on shutdown.
package process
