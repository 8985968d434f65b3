/*
Package xmlscan locates single elements inside markup text without building a
document tree.

It is meant for callers that know the name of the element they want, or that
walk "whatever element comes next", and need back either the element's full
serialized form or just its inner content. Every function is a read-only scan
over a string and returns a Result carrying the text, its offsets and the
cursor for the next call.

Basic Usage:

    import "github.com/mrjoshuak/xmlscan"

    // Full element, tags included
    r := xmlscan.Element("office:body", xml, 0)
    if r.OK() {
        fmt.Println(r.Text)
    }

    // Inner content only
    r = xmlscan.ElementContent("text:p", xml, 0)
    switch r.Outcome {
    case xmlscan.Found:
        fmt.Println(r.Text)
    case xmlscan.NoContent:
        // <text:p/> or <text:p></text:p>
    default:
        // not present, or present but broken: see r.Err()
    }

Walking siblings:

    for pos := 0; ; {
        r := xmlscan.NextElement(body, pos)
        if r.Outcome != xmlscan.Found {
            break
        }
        fmt.Println(r.Name)
        pos = r.Next
    }

    // or with a Walker
    w := xmlscan.NewWalker(body, xmlscan.WalkName("text:p"), xmlscan.WalkContent())
    for w.Next() {
        fmt.Println(w.Result().Text)
    }
    if err := w.Err(); err != nil {
        // a malformed element stopped the walk
    }

Limitations:

- The scanner does not parse: comments, CDATA, entities and attributes are not
  interpreted, and a '>' inside an attribute value ends the opening tag.
- An element must not contain a descendant with the same name. The first
  closing tag of that name is taken as the element's end, so
  "<n>outer<n>inner</n>tail</n>" yields "outer<n>inner" as content.
- Element names are limited to ASCII letters, digits, ':', '-' and '_'.
*/
package xmlscan
