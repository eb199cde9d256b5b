package syndication

import (
	"encoding/xml"
	"io"
)

// Attr is a single XML attribute on a Node. Space holds the resolved
// namespace URI; namespace declarations arrive with Space "xmlns"
// (prefixed form) or an empty Space with Local "xmlns" (default form).
type Attr struct {
	Space string
	Local string
	Value string
}

// Node is a minimal navigable XML element tree used as the input to
// extension loading. Space holds the resolved namespace URI of the
// element; when the source declares no binding for a prefix, the
// literal prefix is retained so lenient lookups can still match.
type Node struct {
	Space    string
	Local    string
	Attrs    []Attr
	Children []*Node

	text string
}

// Text returns the concatenated character data directly inside the node.
func (n *Node) Text() string { return n.text }

// Find returns the first element matching the namespace/local-name pair
// in document order within the node's subtree, or nil if none matches.
func (n *Node) Find(space, local string) *Node {
	for _, child := range n.Children {
		if child.Space == space && child.Local == local {
			return child
		}
		if match := child.Find(space, local); match != nil {
			return match
		}
	}
	return nil
}

// ParseFragment builds a navigable element tree from XML input.
//
// The input is treated as a fragment: multiple top-level elements are
// permitted, as produced by sparse extension serialization. The returned
// node is a synthetic document node whose children are the top-level
// elements; it has no name of its own.
func ParseFragment(r io.Reader, opts ...Option) (*Node, error) {
	if r == nil {
		return nil, ErrInvalidArgument
	}
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	limited := &limitReader{r: r, remaining: options.MaxFragmentBytes}
	dec := xml.NewDecoder(limited)

	doc := &Node{}
	stack := []*Node{doc}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			element := ""
			if len(stack) > 1 {
				element = stack[len(stack)-1].Local
			}
			return nil, wrapParseError(element, dec.InputOffset(), err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) > options.MaxDepth {
				return nil, wrapParseError(t.Name.Local, dec.InputOffset(), ErrDepthExceeded)
			}
			node := &Node{
				Space: t.Name.Space,
				Local: t.Name.Local,
				Attrs: convertAttrs(t.Attr),
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			// Character data outside any element is ignored (whitespace
			// between fragment roots).
			if len(stack) > 1 {
				stack[len(stack)-1].text += string(t)
			}
		}
	}

	return doc, nil
}

func convertAttrs(attrs []xml.Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	converted := make([]Attr, len(attrs))
	for i, attr := range attrs {
		converted[i] = Attr{Space: attr.Name.Space, Local: attr.Name.Local, Value: attr.Value}
	}
	return converted
}

// limitReader returns ErrFragmentTooLarge once the source yields a byte
// beyond the configured budget. An input whose size equals the budget
// has not exceeded it and reads through to EOF.
type limitReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		// The budget is spent; probe whether the source actually holds
		// more data before declaring the fragment too large.
		var probe [1]byte
		n, err := l.r.Read(probe[:])
		if n > 0 {
			return 0, ErrFragmentTooLarge
		}
		return 0, err
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
