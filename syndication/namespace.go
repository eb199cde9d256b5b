package syndication

import "strings"

// Namespaces maps short prefixes to namespace URIs within the scope of a
// parsed subtree. It is the resolver extensions use to locate their
// namespace-qualified child elements.
type Namespaces struct {
	bindings map[string]string
}

// NewNamespaces returns an empty resolver.
func NewNamespaces() *Namespaces {
	return &Namespaces{bindings: make(map[string]string)}
}

// CollectNamespaces gathers every xmlns declaration in the node's subtree
// into a resolver. Feed fragments are shallow enough that subtree-wide
// collection matches per-scope resolution in practice.
func CollectNamespaces(node *Node) *Namespaces {
	ns := NewNamespaces()
	if node == nil {
		return ns
	}
	collectDeclarations(node, ns)
	return ns
}

func collectDeclarations(node *Node, ns *Namespaces) {
	for _, attr := range node.Attrs {
		switch {
		case attr.Space == "xmlns":
			ns.Register(attr.Local, attr.Value)
		case attr.Space == "" && attr.Local == "xmlns":
			ns.Register("", attr.Value)
		case attr.Space == "" && strings.HasPrefix(attr.Local, "xmlns:"):
			ns.Register(strings.TrimPrefix(attr.Local, "xmlns:"), attr.Value)
		}
	}
	for _, child := range node.Children {
		collectDeclarations(child, ns)
	}
}

// Register binds a prefix to a namespace URI. An existing binding for the
// prefix is preserved: declarations in the source win over defaults
// registered afterwards by an extension.
func (n *Namespaces) Register(prefix, uri string) {
	if _, ok := n.bindings[prefix]; ok {
		return
	}
	n.bindings[prefix] = uri
}

// Resolve returns the namespace URI bound to a prefix.
func (n *Namespaces) Resolve(prefix string) (string, bool) {
	uri, ok := n.bindings[prefix]
	return uri, ok
}

// findQualified locates the first element matching the prefix's resolved
// namespace. When the source never declared the prefix, encoding/xml
// retains the literal prefix as the element's space, so a lenient
// fallback lookup by prefix keeps sloppy feeds loadable.
func findQualified(node *Node, ns *Namespaces, prefix, local string) *Node {
	if uri, ok := ns.Resolve(prefix); ok {
		if match := node.Find(uri, local); match != nil {
			return match
		}
	}
	return node.Find(prefix, local)
}
