package syndication

import "io"

// Config carries the immutable identity metadata of an extension: the
// namespace it owns and how it presents itself to hosts. Fixed at
// construction, never user-configurable.
type Config struct {
	// Prefix is the conventional short prefix for the namespace.
	Prefix string
	// Namespace is the extension's XML namespace URI.
	Namespace string
	// Version is the supported version of the vendor module.
	Version string
	// Documentation links to the vendor specification.
	Documentation string
	// Name is the human-readable module name.
	Name string
	// Description is the human-readable module description.
	Description string
}

// Extension is a self-contained unit adding vendor-specific namespaced
// XML content to a generic syndication element. Implementations own
// their typed payload and carry namespace-scoped load/write plus a
// deterministic string form.
type Extension interface {
	// Config returns the extension's identity metadata.
	Config() Config
	// Load recognizes and parses the extension's elements out of the
	// source. Options tighten the fragment parser's limits for this
	// load. It reports whether any payload field was recovered.
	Load(src io.Reader, opts ...Option) (bool, error)
	// WriteTo serializes the populated payload fields as namespaced
	// elements into the output, sparsely: unset fields produce nothing.
	WriteTo(w io.Writer) error
	// String renders the current state as a declaration-free XML fragment.
	String() string
}

// LoadedEvent notifies host observers that an extension recognized and
// loaded its payload from a source subtree.
type LoadedEvent struct {
	// Source is the parsed subtree the extension loaded from.
	Source *Node
	// Extension is the instance that loaded.
	Extension Extension
}

// LoadListener receives load notifications. Delivery is synchronous and
// fire-and-forget: a panicking listener is dropped, not propagated.
type LoadListener func(LoadedEvent)

// notifyLoaded delivers the event to each listener in subscription order.
func notifyLoaded(listeners []LoadListener, event LoadedEvent) {
	for _, listener := range listeners {
		deliver(listener, event)
	}
}

func deliver(listener LoadListener, event LoadedEvent) {
	defer func() {
		// Failures in the notification path are the host's concern.
		_ = recover()
	}()
	listener(event)
}

// Set is a heterogeneous collection of extensions attached to one feed
// element. Hosts use it with type predicates such as MatchWellFormedWeb
// to locate an already-attached instance of a given extension kind.
type Set struct {
	extensions []Extension
}

// NewSet returns an empty extension collection.
func NewSet() *Set {
	return &Set{}
}

// Attach adds an extension to the collection.
func (s *Set) Attach(ext Extension) error {
	if ext == nil {
		return ErrInvalidArgument
	}
	s.extensions = append(s.extensions, ext)
	return nil
}

// Find returns the first attached extension satisfying the predicate.
func (s *Set) Find(match func(Extension) bool) (Extension, bool) {
	if match == nil {
		return nil, false
	}
	for _, ext := range s.extensions {
		if match(ext) {
			return ext, true
		}
	}
	return nil, false
}

// All returns the attached extensions in attachment order.
func (s *Set) All() []Extension {
	out := make([]Extension, len(s.extensions))
	copy(out, s.extensions)
	return out
}

// Len returns the number of attached extensions.
func (s *Set) Len() int { return len(s.extensions) }
