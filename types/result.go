package types

import (
	"errors"
	"fmt"
)

// Outcome tags the result of a single scan.
type Outcome int

const (
	// NotFound means no matching element starts at or after the scan offset.
	NotFound Outcome = iota
	// Found means the element was located and Text holds the requested span.
	Found
	// NoContent means the element exists but is self-closing or has an empty
	// body, and only its content was requested.
	NoContent
	// Malformed means an opening tag was located but the tag is not
	// terminated with '>' or the element has no closing tag.
	Malformed
)

// String returns a string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Found:
		return "Found"
	case NoContent:
		return "NoContent"
	case Malformed:
		return "Malformed"
	default:
		return "NotFound"
	}
}

// Errors reported through Result.Err and by the extractor.
var (
	ErrNotFound        = errors.New("element not found")
	ErrMalformed       = errors.New("malformed element")
	ErrUnterminatedTag = fmt.Errorf("%w: opening tag is not terminated", ErrMalformed)
	ErrUnclosedElement = fmt.Errorf("%w: closing tag not found", ErrMalformed)
	ErrNoContent       = errors.New("element has no content")
	ErrDocumentLarge   = errors.New("document too large")
	ErrTimeout         = errors.New("operation timed out")
)

// Result is the outcome of locating one element in a buffer.
//
// Start and End delimit Text inside the scanned buffer. Next is the offset one
// past the consumed region and is set for Found and NoContent results; passing
// it as the start offset of a follow-up call continues with the next sibling.
// For Malformed results Start is the offset of the offending '<'.
type Result struct {
	Outcome     Outcome
	Name        string
	Text        string
	Start       int
	End         int
	Next        int
	SelfClosing bool
	Cause       error
}

// OK reports whether the element was found and Text is populated.
func (r Result) OK() bool {
	return r.Outcome == Found
}

// Missing reports whether no usable element was located, collapsing NotFound
// and Malformed into one signal.
func (r Result) Missing() bool {
	return r.Outcome == NotFound || r.Outcome == Malformed
}

// Err returns nil for Found results and the cause of the outcome otherwise.
func (r Result) Err() error {
	switch r.Outcome {
	case Found:
		return nil
	case NoContent:
		return ErrNoContent
	case Malformed:
		if r.Cause != nil {
			return r.Cause
		}
		return ErrMalformed
	default:
		return ErrNotFound
	}
}

// Element is a located element as reported by the extractor.
type Element struct {
	Name        string `json:"name"`
	Text        string `json:"text"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	SelfClosing bool   `json:"self_closing,omitempty"`
	PlainText   string `json:"plain_text,omitempty"`
}

// ElementFromResult converts a Found or NoContent result into an Element.
func ElementFromResult(r Result) Element {
	return Element{
		Name:        r.Name,
		Text:        r.Text,
		Start:       r.Start,
		End:         r.End,
		SelfClosing: r.SelfClosing,
	}
}
