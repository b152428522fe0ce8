// Package line provides streams of text units, typically lines.
package line

import (
	"bufio"
	"io"
)

// A ReadStream produces text units one at a time.  When there are no more
// units, Next returns io.EOF.
type ReadStream interface {
	Next() (string, error)
}

// A WriteStream accepts text units one at a time.
type WriteStream interface {
	Put(string) error
}

// ReaderStream is a ReadStream which reads lines lazily from an io.Reader.
// Each line keeps its terminating '\n', except possibly the last one.  Only
// the current line is held in memory, whatever its length.
//
// Once the underlying reader is exhausted or has failed, the stream stays
// exhausted: Next keeps returning the same error.
type ReaderStream struct {
	reader *bufio.Reader
	err    error
}

var _ ReadStream = &ReaderStream{}

// NewReaderStream returns a ReaderStream reading from r.
func NewReaderStream(r io.Reader) *ReaderStream {
	return &ReaderStream{reader: bufio.NewReader(r)}
}

// Next returns the next line.
func (s *ReaderStream) Next() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	line, err := s.reader.ReadString('\n')
	if err != nil {
		s.err = err
		// A final line without a line feed is still a line.
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// SliceReadStream is a ReadStream producing the items of a slice.
type SliceReadStream struct {
	items []string
}

var _ ReadStream = &SliceReadStream{}

func NewSliceReadStream(items []string) *SliceReadStream {
	return &SliceReadStream{items: items}
}

func (r *SliceReadStream) Next() (string, error) {
	if len(r.items) == 0 {
		return "", io.EOF
	}
	item := r.items[0]
	r.items = r.items[1:]
	return item, nil
}

// AccumulatorStream is a WriteStream which keeps everything it is given.
type AccumulatorStream struct {
	items []string
}

var _ WriteStream = &AccumulatorStream{}

func NewAccumulatorStream() *AccumulatorStream {
	return &AccumulatorStream{}
}

func (s *AccumulatorStream) Put(item string) error {
	s.items = append(s.items, item)
	return nil
}

// GetItems returns the items put so far.
func (s *AccumulatorStream) GetItems() []string {
	return s.items
}
