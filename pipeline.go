package vcat

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/arnodel/vcat/internal/debug"
	"github.com/arnodel/vcat/line"
)

// A Transformer rewrites a text unit before it is printed.
type Transformer interface {
	Transform(string) string
}

// A Source produces text units into a WriteStream.  Produce returns nil when
// the source is exhausted normally.
type Source interface {
	Produce(out line.WriteStream) error
}

// FileSource reads the whole content of a file and produces it as a single
// unit.  Files are assumed to be of reasonable size.
type FileSource struct {
	Path string
}

var _ Source = FileSource{}

// Produce reads the file.  Opening, reading or decoding failures are returned
// as a *FileError, errors from out are returned unchanged.
func (s FileSource) Produce(out line.WriteStream) error {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		return &FileError{Path: s.Path, Err: err}
	}
	if !utf8.Valid(content) {
		return &FileError{Path: s.Path, Err: ErrInvalidEncoding}
	}
	debug.Printf("read %d bytes from %s", len(content), s.Path)
	return out.Put(string(content))
}

// StdinSource produces the lines of stdin one at a time, until the end of the
// stream.  It never closes stdin.
type StdinSource struct {
	Lines line.ReadStream
}

var _ Source = &StdinSource{}

// NewStdinSource returns a StdinSource reading lines lazily from r.
func NewStdinSource(r io.Reader) *StdinSource {
	return &StdinSource{Lines: line.NewReaderStream(r)}
}

// Produce copies lines to out.  Reaching the end of the stream is a success.
// Read and decoding failures are returned as a *StdinError, errors from out
// are returned unchanged.
func (s *StdinSource) Produce(out line.WriteStream) error {
	count := 0
	for {
		l, err := s.Lines.Next()
		if err == io.EOF {
			debug.Printf("end of stdin after %d lines", count)
			return nil
		}
		if err != nil {
			return &StdinError{Err: err}
		}
		if !utf8.ValidString(l) {
			return &StdinError{Err: ErrInvalidEncoding}
		}
		if err := out.Put(l); err != nil {
			return err
		}
		count++
	}
}

// StdinPath is the path which stands for stdin in a list of paths.
const StdinPath = "-"

// Sources returns a source for each path, in order, or a single StdinSource
// reading from stdin if there are no paths.  Paths are read as files, except
// StdinPath which reads stdin.
func Sources(paths []string, stdin io.Reader) []Source {
	if len(paths) == 0 {
		return []Source{NewStdinSource(stdin)}
	}
	sources := make([]Source, len(paths))
	for i, path := range paths {
		if path == StdinPath {
			sources[i] = NewStdinSource(stdin)
		} else {
			sources[i] = FileSource{Path: path}
		}
	}
	return sources
}

// Sink is a WriteStream which transforms each unit it is given and prints it.
type Sink struct {
	Transformer Transformer
	Printer     *Printer
}

var _ line.WriteStream = &Sink{}

func (s *Sink) Put(unit string) error {
	if s.Transformer != nil {
		unit = s.Transformer.Transform(unit)
	}
	return s.Printer.PrintLine(unit)
}

// Concatenate feeds each source into out in turn.  It stops at the first
// error and returns it; whatever was already written to out stays written.
func Concatenate(sources []Source, out line.WriteStream) error {
	for i, source := range sources {
		debug.Printf("source %d/%d: %T", i+1, len(sources), source)
		if err := source.Produce(out); err != nil {
			return err
		}
	}
	return nil
}
