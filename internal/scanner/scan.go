// Package scanner locates single elements in markup text without building a
// document tree.
//
// The scanner is not a parser. It does not understand comments, CDATA,
// attributes or entities, and it assumes an element never contains a
// descendant of the same name: the first "</NAME>" after an opening tag is
// taken as its closing tag.
package scanner

import (
	"strings"

	"github.com/mrjoshuak/xmlscan/types"
)

// Shape selects which part of a located element is reported.
type Shape int

const (
	// Full reports the element from its opening '<' to the end of its closing tag.
	Full Shape = iota
	// Content reports only the text between the opening and closing tags.
	Content
	// OpenTag reports only the opening tag.
	OpenTag
)

// Scan locates the next element accepted by loc at or after start and reports
// the part of it selected by shape.
//
// An empty buffer, or a start offset at or past its end, yields NotFound
// without calling loc. A negative start is treated as zero.
func Scan(buf string, start int, loc Locator, shape Shape) types.Result {
	if start < 0 {
		start = 0
	}
	if start >= len(buf) {
		return types.Result{Outcome: types.NotFound}
	}

	tag, ok := loc.Locate(buf, start)
	if !ok {
		return types.Result{Outcome: types.NotFound}
	}
	return Extract(buf, tag, shape)
}

// Extract completes a located opening tag into an element span.
func Extract(buf string, tag Tag, shape Shape) types.Result {
	angle := strings.IndexByte(buf[tag.NameEnd:], '>')
	if angle < 0 {
		return malformed(tag, types.ErrUnterminatedTag)
	}
	angle += tag.NameEnd
	afterTag := angle + 1
	selfClosing := buf[angle-1] == '/'

	if selfClosing || shape == OpenTag {
		res := types.Result{
			Outcome:     types.Found,
			Name:        tag.Name,
			Text:        buf[tag.Start:afterTag],
			Start:       tag.Start,
			End:         afterTag,
			Next:        afterTag,
			SelfClosing: selfClosing,
		}
		if shape == Content {
			// self-closing elements never carry content
			res.Outcome = types.NoContent
			res.Text = ""
			res.Start, res.End = afterTag, afterTag
		}
		return res
	}

	closing := "</" + tag.Name + ">"
	i := strings.Index(buf[afterTag:], closing)
	if i < 0 {
		return malformed(tag, types.ErrUnclosedElement)
	}
	contentEnd := afterTag + i
	end := contentEnd + len(closing)

	res := types.Result{
		Outcome: types.Found,
		Name:    tag.Name,
		Next:    end,
	}
	switch shape {
	case Content:
		res.Start, res.End = afterTag, contentEnd
		if contentEnd <= afterTag {
			res.Outcome = types.NoContent
			return res
		}
		res.Text = buf[afterTag:contentEnd]
	default:
		res.Start, res.End = tag.Start, end
		res.Text = buf[tag.Start:end]
	}
	return res
}

func malformed(tag Tag, cause error) types.Result {
	return types.Result{
		Outcome: types.Malformed,
		Name:    tag.Name,
		Start:   tag.Start,
		End:     tag.NameEnd,
		Cause:   cause,
	}
}
