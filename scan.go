package xmlscan

import (
	"github.com/mrjoshuak/xmlscan/internal/scanner"
)

// Element finds the next element called name at or after start and returns
// it in full, from its opening '<' to the end of its closing tag. A
// self-closing element is returned as its single tag.
//
// An empty name or buffer returns NotFound without scanning.
func Element(name, buf string, start int) Result {
	return scanNamed(name, buf, start, scanner.Full)
}

// ElementContent finds the next element called name at or after start and
// returns only the text between its opening and closing tags. Self-closing
// and empty elements are reported as NoContent, never as an empty Found.
func ElementContent(name, buf string, start int) Result {
	return scanNamed(name, buf, start, scanner.Content)
}

// NextElement returns the next element of any name at or after start in
// full. The discovered name is reported in Result.Name.
func NextElement(buf string, start int) Result {
	return scanner.Scan(buf, start, scanner.Any(), scanner.Full)
}

// NextElementContent returns the content of the next element of any name at
// or after start. The discovered name is reported in Result.Name, also when
// the outcome is NoContent.
func NextElementContent(buf string, start int) Result {
	return scanner.Scan(buf, start, scanner.Any(), scanner.Content)
}

// OpenTag returns only the opening tag of the next element called name,
// attributes included. The element does not need a closing tag.
func OpenTag(name, buf string, start int) Result {
	return scanNamed(name, buf, start, scanner.OpenTag)
}

func scanNamed(name, buf string, start int, shape scanner.Shape) Result {
	if name == "" || buf == "" {
		return Result{Outcome: NotFound}
	}
	return scanner.Scan(buf, start, scanner.Named(name), shape)
}
