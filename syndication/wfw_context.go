package syndication

import (
	"io"
	"net/url"
	"strings"
)

// Element local names recognized by the Well-Formed Web CommentAPI module.
const (
	wfwCommentsElement     = "comments"
	wfwCommentsFeedElement = "commentsFeed"
)

// WellFormedWebContext holds the typed payload of the CommentAPI module:
// a link to a human-readable comments page and a link to a machine-readable
// feed of comments. Both fields are independently optional; nil means no
// value was present in the source XML.
type WellFormedWebContext struct {
	comments     *url.URL
	commentsFeed *url.URL
}

// NewWellFormedWebContext returns an empty context.
func NewWellFormedWebContext() *WellFormedWebContext {
	return &WellFormedWebContext{}
}

// Comments returns the link to the human-readable comments page, or nil.
func (c *WellFormedWebContext) Comments() *url.URL { return c.comments }

// SetComments replaces the comments page link. Nil clears the field.
func (c *WellFormedWebContext) SetComments(u *url.URL) { c.comments = u }

// CommentsFeed returns the link to the machine-readable comment feed, or nil.
func (c *WellFormedWebContext) CommentsFeed() *url.URL { return c.commentsFeed }

// SetCommentsFeed replaces the comment feed link. Nil clears the field.
func (c *WellFormedWebContext) SetCommentsFeed(u *url.URL) { c.commentsFeed = u }

// Load extracts the recognized CommentAPI elements from the node using the
// resolver. Element text that does not parse as an absolute URI is skipped,
// not an error. Load reports whether at least one field was populated.
func (c *WellFormedWebContext) Load(node *Node, ns *Namespaces) (bool, error) {
	if node == nil || ns == nil {
		return false, ErrInvalidArgument
	}
	loaded := false
	if u := parseURIElement(node, ns, WellFormedWebPrefix, wfwCommentsElement); u != nil {
		c.comments = u
		loaded = true
	}
	if u := parseURIElement(node, ns, WellFormedWebPrefix, wfwCommentsFeedElement); u != nil {
		c.commentsFeed = u
		loaded = true
	}
	return loaded, nil
}

// parseURIElement returns the first matching element's text parsed as an
// absolute URI, or nil when the element is missing or its text does not
// parse. Lenient by feed-parsing convention.
func parseURIElement(node *Node, ns *Namespaces, prefix, local string) *url.URL {
	el := findQualified(node, ns, prefix, local)
	if el == nil {
		return nil
	}
	text := strings.TrimSpace(el.Text())
	if text == "" {
		return nil
	}
	u, err := url.Parse(text)
	if err != nil || !u.IsAbs() {
		return nil
	}
	return u
}

// Write serializes the populated fields as prefixed elements, sparsely:
// an unset field produces no element.
func (c *WellFormedWebContext) Write(w io.Writer, prefix string) error {
	if w == nil {
		return ErrInvalidArgument
	}
	if c.comments != nil {
		if err := writeElement(w, prefix, wfwCommentsElement, c.comments.String()); err != nil {
			return err
		}
	}
	if c.commentsFeed != nil {
		return writeElement(w, prefix, wfwCommentsFeedElement, c.commentsFeed.String())
	}
	return nil
}

// Compare orders two contexts by Comments, then CommentsFeed.
func (c *WellFormedWebContext) Compare(other *WellFormedWebContext) Ordering {
	if result := CompareURIs(c.comments, other.comments); result != OrderingEqual {
		return result
	}
	return CompareURIs(c.commentsFeed, other.commentsFeed)
}
