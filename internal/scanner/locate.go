package scanner

import "strings"

// Tag is an opening tag located in a buffer.
type Tag struct {
	Start   int    // offset of '<'
	NameEnd int    // offset just past the element name
	Name    string // element name
}

// Locator finds the next plausible opening tag at or after pos.
type Locator interface {
	Locate(buf string, pos int) (Tag, bool)
}

// Named locates opening tags of a single, known element name.
type Named string

// Locate finds the next "<NAME" followed by '/', '>' or whitespace.
// Occurrences where NAME is only a prefix of a longer name are skipped.
func (n Named) Locate(buf string, pos int) (Tag, bool) {
	if n == "" {
		return Tag{}, false
	}
	needle := "<" + string(n)

	for pos < len(buf) {
		i := strings.Index(buf[pos:], needle)
		if i < 0 {
			return Tag{}, false
		}
		start := pos + i
		nameEnd := start + len(needle)
		if nameEnd >= len(buf) {
			// "<NAME" at the very end can never be a complete tag
			return Tag{}, false
		}
		if isNameTerminator(buf[nameEnd]) {
			return Tag{Start: start, NameEnd: nameEnd, Name: string(n)}, true
		}
		pos = nameEnd
	}
	return Tag{}, false
}

type anyName struct{}

// Any returns a Locator that accepts the first opening tag of any name and
// reports the discovered name in Tag.Name.
func Any() Locator {
	return anyName{}
}

// Locate finds the next '<' followed by a run of name characters that is
// terminated by '/', '>' or whitespace. A '<' not followed by a name character
// (comments, processing instructions, end tags, stray brackets) is skipped
// together with the byte after it.
func (anyName) Locate(buf string, pos int) (Tag, bool) {
	for pos < len(buf) {
		i := strings.IndexByte(buf[pos:], '<')
		if i < 0 {
			return Tag{}, false
		}
		start := pos + i

		if start+1 >= len(buf) || !IsNameChar(buf[start+1]) {
			pos = start + 2
			continue
		}

		read := start + 1
		for read < len(buf) && IsNameChar(buf[read]) {
			read++
		}
		if read >= len(buf) {
			// name runs into the end of the buffer
			return Tag{}, false
		}
		if isNameTerminator(buf[read]) {
			return Tag{Start: start, NameEnd: read, Name: buf[start+1 : read]}, true
		}
		pos = read
	}
	return Tag{}, false
}
