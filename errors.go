package vcat

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrInvalidEncoding is the cause of a failure when input is not valid UTF-8.
var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

// A FileError is returned when an input file cannot be opened or read as
// text.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	cause := e.Err
	// Avoid repeating the path which *fs.PathError already mentions.
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	return fmt.Sprintf("%s: %s", e.Path, cause)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// A StdinError is returned when reading from stdin fails for any reason
// other than reaching the end of the stream.
type StdinError struct {
	Err error
}

func (e *StdinError) Error() string {
	return fmt.Sprintf("error reading stdin: %s", e.Err)
}

func (e *StdinError) Unwrap() error {
	return e.Err
}
