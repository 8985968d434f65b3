package simplifiers

import (
	"strings"

	"golang.org/x/net/html"
)

// PlainText returns the character data of a markup fragment with all tags
// removed and whitespace normalized. Text on both sides of a tag is joined
// without a separator, so inline markup such as "He<b>llo</b>" reads "Hello".
func PlainText(markup string) string {
	if markup == "" {
		return ""
	}

	z := html.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	b.Grow(len(markup))

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a tokenizer error; either way we keep what we have
			return NormalizeWhitespace(b.String())
		case html.StartTagToken:
			// title, textarea, style and friends are ordinary elements in XML
			z.NextIsNotRawText()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}
