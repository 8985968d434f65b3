// Package extractor collects every matching element of a markup document in
// one call. It drives the xmlscan Walker and adds input limits, a timeout and
// optional text post-processing on top of it.
package extractor

import (
	"fmt"
	"io"
	"time"

	"github.com/mrjoshuak/xmlscan"
	"github.com/mrjoshuak/xmlscan/internal/scanner"
	"github.com/mrjoshuak/xmlscan/internal/simplifiers"
	"github.com/mrjoshuak/xmlscan/types"
)

// Extractor defines the interface for batch element extraction.
// It provides methods to extract elements from markup strings or io.Readers.
type Extractor interface {
	// ExtractFromString extracts elements from a markup string
	ExtractFromString(markup string, options *types.ExtractionOptions) ([]types.Element, error)

	// ExtractFromReader extracts elements from an io.Reader
	ExtractFromReader(r io.Reader, options *types.ExtractionOptions) ([]types.Element, error)
}

// Option represents a function that modifies ExtractionOptions.
// This follows the functional options pattern for configuring the extractor.
type Option func(*types.ExtractionOptions)

// WithName restricts extraction to elements with the given name.
// With an empty name (the default) every sibling element is collected.
func WithName(name string) Option {
	return func(o *types.ExtractionOptions) {
		o.Name = name
	}
}

// WithContentOnly reports the content of each element instead of the full
// element including its tags.
func WithContentOnly(enable bool) Option {
	return func(o *types.ExtractionOptions) {
		o.ContentOnly = enable
	}
}

// WithStart sets the byte offset scanning starts at.
func WithStart(offset int) Option {
	return func(o *types.ExtractionOptions) {
		o.Start = offset
	}
}

// WithLimit caps the number of elements returned. Zero means no limit.
func WithLimit(limit int) Option {
	return func(o *types.ExtractionOptions) {
		o.Limit = limit
	}
}

// WithNormalizeText enables Unicode (NFKC) and whitespace normalization of
// the reported text. Offsets still refer to the original input.
func WithNormalizeText(enable bool) Option {
	return func(o *types.ExtractionOptions) {
		o.NormalizeText = enable
	}
}

// WithPlainText adds the tag-stripped text of each element to the result.
func WithPlainText(enable bool) Option {
	return func(o *types.ExtractionOptions) {
		o.PlainText = enable
	}
}

// WithMaxBufferSize sets the maximum input size in bytes.
// Larger documents are rejected with types.ErrDocumentLarge.
func WithMaxBufferSize(size int) Option {
	return func(o *types.ExtractionOptions) {
		o.MaxBufferSize = size
	}
}

// WithTimeout sets the timeout duration for extraction.
// A zero or negative timeout disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(o *types.ExtractionOptions) {
		o.Timeout = timeout
	}
}

// elementExtractor is the concrete implementation of the Extractor interface.
type elementExtractor struct {
	options types.ExtractionOptions
}

type extraction struct {
	elements []types.Element
	err      error
}

// ExtractFromString extracts elements from a markup string.
// When a malformed element is met, the elements collected before it are
// returned together with a parse error wrapping types.ErrMalformed.
func (e *elementExtractor) ExtractFromString(markup string, options *types.ExtractionOptions) ([]types.Element, error) {
	if options == nil {
		options = &e.options
	}

	if options.MaxBufferSize > 0 && len(markup) > options.MaxBufferSize {
		return nil, scanner.WrapValidationError(types.ErrDocumentLarge, "ExtractFromString",
			fmt.Sprintf("%d bytes exceeds limit of %d", len(markup), options.MaxBufferSize))
	}

	if options.Timeout <= 0 {
		return e.extract(markup, options)
	}

	// Buffered so the worker can finish after a timeout without blocking
	resultCh := make(chan extraction, 1)

	go func() {
		elements, err := e.extract(markup, options)
		resultCh <- extraction{elements, err}
	}()

	timer := time.NewTimer(options.Timeout)
	defer timer.Stop()

	select {
	case result := <-resultCh:
		return result.elements, result.err
	case <-timer.C:
		return nil, scanner.WrapTimeoutError(types.ErrTimeout, "ExtractFromString",
			fmt.Sprintf("extraction timed out after %v", options.Timeout))
	}
}

// ExtractFromReader extracts elements from an io.Reader.
// It reads at most MaxBufferSize bytes and passes them to ExtractFromString.
func (e *elementExtractor) ExtractFromReader(r io.Reader, options *types.ExtractionOptions) ([]types.Element, error) {
	if options == nil {
		options = &e.options
	}

	if options.MaxBufferSize > 0 {
		// One byte over the limit is enough to know the input is too large
		r = io.LimitReader(r, int64(options.MaxBufferSize)+1)
	}

	markup, err := io.ReadAll(r)
	if err != nil {
		return nil, scanner.WrapExtractionError(err, "ExtractFromReader", "reading input")
	}

	return e.ExtractFromString(string(markup), options)
}

func (e *elementExtractor) extract(markup string, options *types.ExtractionOptions) ([]types.Element, error) {
	walkOpts := []xmlscan.WalkOption{xmlscan.WalkFrom(options.Start)}
	if options.Name != "" {
		walkOpts = append(walkOpts, xmlscan.WalkName(options.Name))
	}
	if options.ContentOnly {
		walkOpts = append(walkOpts, xmlscan.WalkContent())
	}

	elements := []types.Element{}
	w := xmlscan.NewWalker(markup, walkOpts...)
	for w.Next() {
		r := w.Result()
		element := types.ElementFromResult(r)
		if options.PlainText {
			element.PlainText = simplifiers.PlainText(r.Text)
		}
		if options.NormalizeText {
			element.Text = simplifiers.NormalizeText(element.Text)
			element.PlainText = simplifiers.NormalizeText(element.PlainText)
		}
		elements = append(elements, element)

		if options.Limit > 0 && len(elements) >= options.Limit {
			return elements, nil
		}
	}

	if w.Err() != nil {
		return elements, scanner.ResultError(w.Result(), "extract")
	}
	return elements, nil
}

// New creates a new Extractor instance with the provided options.
// It returns an implementation of the Extractor interface that can be used
// to extract elements from markup.
//
// Example:
//
//	ext := extractor.New(
//	    extractor.WithName("text:p"),
//	    extractor.WithContentOnly(true),
//	)
func New(opts ...Option) Extractor {
	options := types.DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &elementExtractor{
		options: options,
	}
}
