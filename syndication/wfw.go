package syndication

import (
	"bytes"
	"io"
	"strings"
)

// Well-Formed Web CommentAPI module identity.
const (
	WellFormedWebPrefix        = "wfw"
	WellFormedWebNamespace     = "http://wellformedweb.org/CommentAPI/"
	WellFormedWebVersion       = "1.0"
	WellFormedWebDocumentation = "http://wellformedweb.org/news/wfw_namespace_elements/"
)

// WellFormedWebExtension is the addressable unit hosts attach for the
// Well-Formed Web CommentAPI module. It wraps one WellFormedWebContext
// and derives equality and ordering from the context's fields at the
// moment of comparison.
type WellFormedWebExtension struct {
	config    Config
	context   *WellFormedWebContext
	listeners []LoadListener
}

// NewWellFormedWebExtension returns an extension with fixed CommentAPI
// identity metadata and an empty context.
func NewWellFormedWebExtension() *WellFormedWebExtension {
	return &WellFormedWebExtension{
		config: Config{
			Prefix:        WellFormedWebPrefix,
			Namespace:     WellFormedWebNamespace,
			Version:       WellFormedWebVersion,
			Documentation: WellFormedWebDocumentation,
			Name:          "Well-Formed Web Comment API",
			Description:   "Adds comment page and comment feed endpoints to syndicated content.",
		},
		context: NewWellFormedWebContext(),
	}
}

// MatchWellFormedWeb reports whether the candidate is a CommentAPI
// extension instance. Hosts use it to locate an already-attached instance
// among a heterogeneous collection without comparing namespace strings.
func MatchWellFormedWeb(candidate Extension) (bool, error) {
	if candidate == nil {
		return false, ErrInvalidArgument
	}
	_, ok := candidate.(*WellFormedWebExtension)
	return ok, nil
}

// Config returns the extension's identity metadata.
func (e *WellFormedWebExtension) Config() Config { return e.config }

// Context returns the extension's payload.
func (e *WellFormedWebExtension) Context() *WellFormedWebContext { return e.context }

// SetContext replaces the payload. The extension must always have a
// usable context: nil is rejected.
func (e *WellFormedWebExtension) SetContext(ctx *WellFormedWebContext) error {
	if ctx == nil {
		return ErrInvalidArgument
	}
	e.context = ctx
	return nil
}

// Subscribe registers a listener notified after each successful Load.
func (e *WellFormedWebExtension) Subscribe(listener LoadListener) {
	if listener != nil {
		e.listeners = append(e.listeners, listener)
	}
}

// Load parses the source into a navigable fragment, builds a namespace
// resolver scoped to it with the wfw prefix registered, and delegates to
// the context. Subscribed listeners are notified after the parse
// completes without error. Reports whether any field was recovered.
func (e *WellFormedWebExtension) Load(src io.Reader, opts ...Option) (bool, error) {
	if src == nil {
		return false, ErrInvalidArgument
	}
	node, err := ParseFragment(src, opts...)
	if err != nil {
		return false, err
	}
	ns := CollectNamespaces(node)
	ns.Register(WellFormedWebPrefix, WellFormedWebNamespace)
	loaded, err := e.context.Load(node, ns)
	if err != nil {
		return false, err
	}
	notifyLoaded(e.listeners, LoadedEvent{Source: node, Extension: e})
	return loaded, nil
}

// WriteTo serializes the populated fields under the wfw prefix.
func (e *WellFormedWebExtension) WriteTo(w io.Writer) error {
	if w == nil {
		return ErrInvalidArgument
	}
	return e.context.Write(w, e.config.Prefix)
}

// String renders the current state as a declaration-free XML fragment,
// one element per line. Deterministic for a given context state; it is
// the canonical form Hash derives from.
func (e *WellFormedWebExtension) String() string {
	var buf bytes.Buffer
	if err := e.WriteTo(&buf); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Compare orders this extension against another by Comments, then
// CommentsFeed. A nil candidate fails with ErrInvalidArgument; a non-wfw
// candidate fails with ErrInvalidType.
func (e *WellFormedWebExtension) Compare(other Extension) (Ordering, error) {
	if other == nil {
		return OrderingEqual, ErrInvalidArgument
	}
	wfw, ok := other.(*WellFormedWebExtension)
	if !ok {
		return OrderingEqual, ErrInvalidType
	}
	return e.context.Compare(wfw.context), nil
}

// Equal reports whether the other extension is a CommentAPI extension
// with equal payload fields.
func (e *WellFormedWebExtension) Equal(other Extension) bool {
	result, err := e.Compare(other)
	return err == nil && result == OrderingEqual
}

// Hash returns the FNV-1a hash of the serialized form.
func (e *WellFormedWebExtension) Hash() uint64 {
	return HashString(e.String())
}

// LinkedData projects the populated fields as a JSON-LD document with an
// inline @context.
func (e *WellFormedWebExtension) LinkedData() map[string]interface{} {
	doc := map[string]interface{}{
		"@context": map[string]interface{}{
			WellFormedWebPrefix: WellFormedWebNamespace,
		},
	}
	if u := e.context.Comments(); u != nil {
		doc[WellFormedWebPrefix+":"+wfwCommentsElement] = map[string]interface{}{"@id": u.String()}
	}
	if u := e.context.CommentsFeed(); u != nil {
		doc[WellFormedWebPrefix+":"+wfwCommentsFeedElement] = map[string]interface{}{"@id": u.String()}
	}
	return doc
}
