// Package render turns the about document into HTML and recipes into
// highlighted terminal text.
package render
