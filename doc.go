// Package vcat implements routines for concatenating text streams while
// optionally making tabs and line ends visible, in the manner of GNU cat's
// -A, -e, -t, -E, -T and -v flags.
//
// The package is organized into several sub-packages:
//
// - options: resolution of the command line flags into transformations
// - transform: the Visualizer which applies them to text
// - line: lazy line streams
//
// These are combined into a simple pipeline:
//
//	sources (files or stdin) -> transformer -> printer
//
// When reading from stdin, each line is transformed and printed (and
// flushed) as soon as it is read, so memory usage does not grow with the size
// of the input and the output of an interactive session or a never-ending
// pipe is available straight away.  Files are read whole and printed as one
// block each.
//
// The CLI utility is in the directory cmd/vcat. You can install it with:
//
//	go install github.com/arnodel/vcat/cmd/vcat
//
// Then
//
//	vcat -A file.txt
//
// prints file.txt with tabs shown as ^I and a $ at each line end.
package vcat
