// Package syndication provides pluggable namespace-scoped feed extensions
// with lenient XML parsing and sparse serialization.
//
// A syndication extension attaches vendor-defined, namespace-qualified
// elements to an otherwise generic feed or entry document. Each extension
// knows how to recognize and parse its own elements out of an arbitrary
// XML subtree, serialize its state back into that namespace, and compare
// itself to other instances by value so a host document can deduplicate
// or sort attached extensions.
//
// The package ships two concrete extensions:
//   - WellFormedWebExtension: the Well-Formed Web CommentAPI module
//     (wfw:comments, wfw:commentsFeed), two endpoint URIs.
//   - SlashExtension: the Slashdot module (slash:section,
//     slash:department, slash:comments, slash:hit_parade).
//
// Parsing is deliberately lenient, matching common feed-reader policy:
// a recognized element whose text does not parse as the expected type is
// treated as absent, never as an error. Load reports via its boolean
// result whether anything usable was recovered.
//
// Example (loading the CommentAPI extension from an entry subtree):
//
//	ext := syndication.NewWellFormedWebExtension()
//	found, err := ext.Load(strings.NewReader(item))
//	if err != nil {
//	    // handle error
//	}
//	if found {
//	    fmt.Println(ext.Context().Comments())
//	}
//
// Example (writing):
//
//	var buf bytes.Buffer
//	if err := ext.WriteTo(&buf); err != nil {
//	    // handle error
//	}
//	// buf holds a declaration-free fragment such as
//	// <wfw:comments>http://example.com/post/1#comments</wfw:comments>
//
// Extensions are not safe for concurrent mutation; distinct instances
// need no synchronization.
package syndication
