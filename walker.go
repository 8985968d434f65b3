package xmlscan

import (
	"github.com/mrjoshuak/xmlscan/internal/scanner"
)

// WalkOption configures a Walker.
type WalkOption func(*Walker)

// WalkName restricts the walk to elements called name. By default every
// element is visited.
func WalkName(name string) WalkOption {
	return func(w *Walker) {
		w.name = name
	}
}

// WalkContent makes the walk report element content instead of full elements.
func WalkContent() WalkOption {
	return func(w *Walker) {
		w.shape = scanner.Content
	}
}

// WalkFrom starts the walk at the given byte offset.
func WalkFrom(offset int) WalkOption {
	return func(w *Walker) {
		w.pos = offset
	}
}

// Walker iterates over consecutive elements of a buffer, left to right,
// resuming each scan where the previous element ended. Only elements at the
// level where the walk starts are visited, since every step skips over the
// whole element it found.
//
// A Walker is not safe for concurrent use.
type Walker struct {
	buf   string
	name  string
	shape scanner.Shape
	pos   int
	cur   Result
	err   error
	done  bool
}

// NewWalker returns a Walker over buf.
func NewWalker(buf string, opts ...WalkOption) *Walker {
	w := &Walker{buf: buf}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Next advances to the next element. It returns false when no element is
// left or a malformed element was met; Err distinguishes the two.
// Elements without content are visited when walking content, with a
// NoContent outcome.
func (w *Walker) Next() bool {
	if w.done {
		return false
	}

	var r Result
	if w.name != "" {
		r = scanNamed(w.name, w.buf, w.pos, w.shape)
	} else {
		r = scanner.Scan(w.buf, w.pos, scanner.Any(), w.shape)
	}

	switch r.Outcome {
	case Found, NoContent:
		w.cur = r
		w.pos = r.Next
		return true
	case Malformed:
		w.err = r.Err()
	}
	w.cur = r
	w.done = true
	return false
}

// Result returns the element found by the last call to Next.
func (w *Walker) Result() Result {
	return w.cur
}

// Offset returns the position the next scan will start at.
func (w *Walker) Offset() int {
	return w.pos
}

// Err returns the cause of a malformed element that ended the walk, or nil
// if the walk ended cleanly.
func (w *Walker) Err() error {
	return w.err
}
