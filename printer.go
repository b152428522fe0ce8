package vcat

import (
	"fmt"
	"io"
)

// A Flusher can push buffered output to its destination.  *bufio.Writer is a
// Flusher.
type Flusher interface {
	Flush() error
}

// Printer writes text units to a Writer, each followed by a line feed.
//
// If Flusher is not nil, it is flushed after each unit so that output is
// visible as soon as it is produced (e.g. when reading interactively from
// stdin).
type Printer struct {
	io.Writer
	Flusher Flusher
}

// PrintLine outputs s and a line feed.  Failures are returned as a
// *PrinterError.
func (p *Printer) PrintLine(s string) error {
	if _, err := io.WriteString(p.Writer, s); err != nil {
		return &PrinterError{Err: err}
	}
	if _, err := io.WriteString(p.Writer, "\n"); err != nil {
		return &PrinterError{Err: err}
	}
	if p.Flusher != nil {
		if err := p.Flusher.Flush(); err != nil {
			return &PrinterError{Err: err}
		}
	}
	return nil
}

// A PrinterError contains an error that occurred while a Printer was sending
// some output.
type PrinterError struct {
	Err error
}

func (e *PrinterError) Error() string {
	return fmt.Sprintf("write error: %s", e.Err)
}

func (e *PrinterError) Unwrap() error {
	return e.Err
}
