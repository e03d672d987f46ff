package client

import (
	"iter"
	"strings"
)

// TextStream wraps a streaming iterator of text deltas and provides
// accumulation into the final response text. It supports range-based
// iteration for real-time display and a convenience Collect method.
//
// Callers must consume the stream, either by iterating Iter (breaking out
// early is fine) or by calling Collect: the underlying HTTP response body is
// only released when the iterator completes or is abandoned through a loop
// break. Constructing a TextStream and never iterating it leaks the
// connection.
type TextStream struct {
	iterator iter.Seq2[string, error]
}

// NewTextStream creates a TextStream from a raw delta iterator. The
// iterator yields text deltas with a nil error, and may yield a non-nil
// error to signal a mid-stream failure.
func NewTextStream(iterator iter.Seq2[string, error]) *TextStream {
	return &TextStream{iterator: iterator}
}

// Iter returns the underlying iterator for use with range-over-func loops.
//
//	for delta, err := range stream.Iter() {
//	    if err != nil { ... }
//	    fmt.Print(delta)
//	}
func (stream *TextStream) Iter() iter.Seq2[string, error] {
	return stream.iterator
}

// Collect consumes the entire stream and returns the accumulated text. A
// mid-stream error terminates collection and returns the partial text with
// the error.
func (stream *TextStream) Collect() (string, error) {
	var accumulated strings.Builder
	for delta, err := range stream.iterator {
		if err != nil {
			return accumulated.String(), err
		}
		accumulated.WriteString(delta)
	}
	return accumulated.String(), nil
}
