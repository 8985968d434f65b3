package types

import "time"

// ExtractionOptions configures a batch extraction.
// It selects which elements are collected, how their text is post-processed,
// and sets limits on input size and extraction time.
type ExtractionOptions struct {
	Name          string        // Element name to collect; empty collects every sibling
	ContentOnly   bool          // Report inner content instead of the full element
	Start         int           // Byte offset to start scanning at
	Limit         int           // Maximum number of elements, 0 for no limit
	NormalizeText bool          // Normalize Unicode and whitespace in the reported text
	PlainText     bool          // Add tag-stripped plain text to each element
	MaxBufferSize int           // Maximum input size in bytes
	Timeout       time.Duration // Timeout for extraction process
}

// DefaultOptions returns the default extraction options.
// By default every element is collected in full from offset 0, text is left
// untouched, input is limited to 10MB and the timeout is 30 seconds.
func DefaultOptions() ExtractionOptions {
	return ExtractionOptions{
		MaxBufferSize: 10 * 1024 * 1024, // 10MB
		Timeout:       time.Second * 30,
	}
}
