package extractor

import (
	"fmt"
	"strings"
	"testing"
)

func benchmarkDocument(paragraphs int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><office:document-content><office:body><office:text>`)
	for i := 0; i < paragraphs; i++ {
		fmt.Fprintf(&b, `<text:p text:style-name="P%d">Paragraph %d with <text:span text:style-name="T1">inline</text:span> markup</text:p>`, i%7, i)
		if i%10 == 0 {
			b.WriteString(`<text:soft-page-break/>`)
		}
	}
	b.WriteString(`</office:text></office:body></office:document-content>`)
	return b.String()
}

// BenchmarkExtraction measures batch extraction over documents of growing size
// with the options the CLI uses most.
func BenchmarkExtraction(b *testing.B) {
	benchCases := []struct {
		name       string
		paragraphs int
		opts       []Option
	}{
		{"Small/Full", 10, []Option{WithName("text:p")}},
		{"Medium/Full", 1000, []Option{WithName("text:p")}},
		{"Large/Full", 50000, []Option{WithName("text:p"), WithMaxBufferSize(0)}},
		{"Medium/Content", 1000, []Option{WithName("text:p"), WithContentOnly(true)}},
		{"Medium/PlainText", 1000, []Option{WithName("text:p"), WithContentOnly(true), WithPlainText(true)}},
		{"Medium/Normalize", 1000, []Option{WithName("text:p"), WithContentOnly(true), WithNormalizeText(true)}},
	}

	for _, bc := range benchCases {
		b.Run(bc.name, func(b *testing.B) {
			markup := benchmarkDocument(bc.paragraphs)
			ext := New(bc.opts...)

			b.SetBytes(int64(len(markup)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				elements, err := ext.ExtractFromString(markup, nil)
				if err != nil {
					b.Fatalf("Failed to extract elements: %v", err)
				}
				if len(elements) != bc.paragraphs {
					b.Fatalf("Expected %d elements, got %d", bc.paragraphs, len(elements))
				}
			}
		})
	}
}
