package vcat

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arnodel/vcat/line"
)

type upper struct{}

func (upper) Transform(s string) string {
	return strings.TrimRight(strings.ToUpper(s), "\n")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newSink(buf *bytes.Buffer) *Sink {
	return &Sink{Transformer: upper{}, Printer: &Printer{Writer: buf}}
}

// TestConcatenateFiles tests that files are printed in order, one block each
func TestConcatenateFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "hello\n")
	b := writeFile(t, dir, "b.txt", "world\nagain\n")

	var buf bytes.Buffer
	if err := Concatenate(Sources([]string{a, b}, nil), newSink(&buf)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got, want := buf.String(), "HELLO\nWORLD\nAGAIN\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestConcatenateMissingFile checks that the first failing file stops
// everything and is named in the error
func TestConcatenateMissingFile(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "a.txt")
	b := writeFile(t, dir, "b.txt", "world\n")

	var buf bytes.Buffer
	err := Concatenate(Sources([]string{missing, b}, nil), newSink(&buf))
	var fileErr *FileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("expected a *FileError, got %v", err)
	}
	if fileErr.Path != missing {
		t.Errorf("expected path %q, got %q", missing, fileErr.Path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected error to wrap fs.ErrNotExist, got %v", err)
	}
	if !strings.Contains(err.Error(), "a.txt") {
		t.Errorf("expected error to mention a.txt, got %q", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

// TestConcatenateKeepsEarlierOutput checks that output for files before the
// failing one is kept
func TestConcatenateKeepsEarlierOutput(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "hello\n")
	missing := filepath.Join(dir, "b.txt")
	c := writeFile(t, dir, "c.txt", "never\n")

	var buf bytes.Buffer
	err := Concatenate(Sources([]string{a, missing, c}, nil), newSink(&buf))
	if err == nil {
		t.Fatal("expected an error")
	}
	if got, want := buf.String(), "HELLO\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFileSourceInvalidEncoding(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.txt", "abc\xff\n")
	err := FileSource{Path: path}.Produce(line.NewAccumulatorStream())
	var fileErr *FileError
	if !errors.As(err, &fileErr) || fileErr.Path != path {
		t.Fatalf("expected a *FileError for %s, got %v", path, err)
	}
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("expected ErrInvalidEncoding, got %v", err)
	}
}

func TestFileSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	err := FileSource{Path: dir}.Produce(line.NewAccumulatorStream())
	var fileErr *FileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("expected a *FileError, got %v", err)
	}
}

// TestFileSourceWholeContent checks that a file is produced as one unit
func TestFileSourceWholeContent(t *testing.T) {
	path := writeFile(t, t.TempDir(), "f.txt", "a\tb\nc\n")
	acc := line.NewAccumulatorStream()
	if err := (FileSource{Path: path}).Produce(acc); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if items := acc.GetItems(); len(items) != 1 || items[0] != "a\tb\nc\n" {
		t.Errorf("got %q", items)
	}
}

// TestConcatenateStdin tests that stdin lines are printed one by one and
// that the end of the stream is a success
func TestConcatenateStdin(t *testing.T) {
	var buf bytes.Buffer
	err := Concatenate(Sources(nil, strings.NewReader("one\ntwo\n")), newSink(&buf))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got, want := buf.String(), "ONE\nTWO\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestStdinSourceLines(t *testing.T) {
	acc := line.NewAccumulatorStream()
	src := &StdinSource{Lines: line.NewSliceReadStream([]string{"one\n", "two\n"})}
	if err := src.Produce(acc); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if items := acc.GetItems(); len(items) != 2 || items[0] != "one\n" || items[1] != "two\n" {
		t.Errorf("got %q", items)
	}
}

type brokenReader struct{}

var errBroken = errors.New("broken pipe")

func (brokenReader) Read([]byte) (int, error) {
	return 0, errBroken
}

func TestStdinSourceReadError(t *testing.T) {
	acc := line.NewAccumulatorStream()
	src := NewStdinSource(io.MultiReader(strings.NewReader("one\n"), brokenReader{}))
	err := src.Produce(acc)
	var stdinErr *StdinError
	if !errors.As(err, &stdinErr) {
		t.Fatalf("expected a *StdinError, got %v", err)
	}
	if !errors.Is(err, errBroken) {
		t.Errorf("expected errBroken, got %v", err)
	}
	if items := acc.GetItems(); len(items) != 1 {
		t.Errorf("expected the line before the error to be produced, got %q", items)
	}
}

func TestStdinSourceInvalidEncoding(t *testing.T) {
	err := NewStdinSource(strings.NewReader("\xfe\n")).Produce(line.NewAccumulatorStream())
	if !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("expected ErrInvalidEncoding, got %v", err)
	}
}

type failingSink struct{}

var errSink = errors.New("sink failed")

func (failingSink) Put(string) error {
	return errSink
}

// TestSinkErrorIsNotWrapped checks that output errors are not mistaken for
// input errors
func TestSinkErrorIsNotWrapped(t *testing.T) {
	err := NewStdinSource(strings.NewReader("x\n")).Produce(failingSink{})
	if err != errSink {
		t.Errorf("expected errSink, got %v", err)
	}
	path := writeFile(t, t.TempDir(), "f.txt", "x\n")
	err = FileSource{Path: path}.Produce(failingSink{})
	if err != errSink {
		t.Errorf("expected errSink, got %v", err)
	}
}

func TestSources(t *testing.T) {
	stdin := strings.NewReader("")
	if sources := Sources(nil, stdin); len(sources) != 1 {
		t.Errorf("expected a single source, got %d", len(sources))
	} else if _, ok := sources[0].(*StdinSource); !ok {
		t.Errorf("expected a *StdinSource, got %T", sources[0])
	}
	sources := Sources([]string{"a", "b"}, stdin)
	if len(sources) != 2 || sources[0] != (FileSource{Path: "a"}) || sources[1] != (FileSource{Path: "b"}) {
		t.Errorf("got %v", sources)
	}
	sources = Sources([]string{"a", "-"}, stdin)
	if len(sources) != 2 || sources[0] != (FileSource{Path: "a"}) {
		t.Errorf("got %v", sources)
	} else if _, ok := sources[1].(*StdinSource); !ok {
		t.Errorf("expected a *StdinSource for -, got %T", sources[1])
	}
}

// TestConcatenateStdinBetweenFiles tests that - reads stdin in place
func TestConcatenateStdinBetweenFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "first\n")
	b := writeFile(t, dir, "b.txt", "last\n")

	var buf bytes.Buffer
	stdin := strings.NewReader("one\ntwo\n")
	if err := Concatenate(Sources([]string{a, "-", b}, stdin), newSink(&buf)); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got, want := buf.String(), "FIRST\nONE\nTWO\nLAST\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
