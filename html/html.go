package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/mnemnion/obelizmo"
	"golang.org/x/net/html"
)

// Tag enumerates the inline HTML elements this package understands. It is
// a ready-made mark kind for HTML-shaped output.
type Tag uint8

const (
	B Tag = iota
	I
	Em
	Strong
	Small
	Marked
	U
	S
	Code
)

var tagNames = [...]string{"b", "i", "em", "strong", "small", "mark", "u", "s", "code"}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// Bookends is a bookend table over Tag, emitting the element's open and
// close tags. Hand it to WriteTree together with an Escaper to produce an
// HTML fragment.
func Bookends(t Tag) (string, string) {
	name := t.String()
	return "<" + name + ">", "</" + name + ">"
}

func tagFromName(name string) (Tag, bool) {
	for i, n := range tagNames {
		if n == name {
			return Tag(i), true
		}
	}
	return 0, false
}

// TextFromHTML reads an inline HTML fragment and recovers its text and
// marks: the concatenated text of all text nodes, and one mark per known
// inline element covering the byte range of the element's content. The
// fragment should reflect the content of a paragraph-like element;
// unknown elements contribute their text but no mark.
//
// Rendering the result through WriteTree with the Bookends table restores
// an equivalent fragment, so this is the reading direction of the tree
// render.
func TextFromHTML(input io.Reader) (string, *obelizmo.MarkedString[Tag], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", nil, err
	}
	var sb strings.Builder
	var spans []tagSpan
	for _, n := range nodes {
		collectText(n, &sb, &spans)
	}
	text := sb.String()
	ms := obelizmo.NewMarkedStringWithCapacity[Tag](text, len(spans))
	for _, sp := range spans {
		if err := ms.MarkSlice(sp.tag, uint32(sp.start), uint32(sp.end)); err != nil {
			return "", nil, err
		}
	}
	return text, ms, nil
}

type tagSpan struct {
	tag        Tag
	start, end int
}

func collectText(n *html.Node, sb *strings.Builder, spans *[]tagSpan) {
	var span tagSpan
	marked := false
	if n.Type == html.ElementNode {
		T().Debugf("obelizmo html: collect text of <%s>", n.Data)
		if tag, ok := tagFromName(n.Data); ok {
			span = tagSpan{tag: tag, start: sb.Len()}
			marked = true
		}
	} else if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb, spans)
	}
	if marked {
		span.end = sb.Len()
		*spans = append(*spans, span)
	}
}
