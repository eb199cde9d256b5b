package syndication

import (
	"hash/fnv"
	"net/url"
	"strings"
)

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	// OrderingLess sorts before the compared value.
	OrderingLess Ordering = -1
	// OrderingEqual compares equal to the compared value.
	OrderingEqual Ordering = 0
	// OrderingGreater sorts after the compared value.
	OrderingGreater Ordering = 1
)

// String returns a readable name for the ordering.
func (o Ordering) String() string {
	switch {
	case o < 0:
		return "less"
	case o > 0:
		return "greater"
	default:
		return "equal"
	}
}

// CompareURIs compares two optional URIs case-insensitively over their
// absolute string forms. A nil URI compares equal to a nil URI and sorts
// before any non-nil URI.
func CompareURIs(a, b *url.URL) Ordering {
	if a == nil && b == nil {
		return OrderingEqual
	}
	if a == nil {
		return OrderingLess
	}
	if b == nil {
		return OrderingGreater
	}
	left := strings.ToLower(a.String())
	right := strings.ToLower(b.String())
	switch {
	case left < right:
		return OrderingLess
	case left > right:
		return OrderingGreater
	default:
		return OrderingEqual
	}
}

// CompareStrings compares two strings, returning an Ordering.
func CompareStrings(a, b string) Ordering {
	switch {
	case a < b:
		return OrderingLess
	case a > b:
		return OrderingGreater
	default:
		return OrderingEqual
	}
}

// CompareInts compares two ints, returning an Ordering.
func CompareInts(a, b int) Ordering {
	switch {
	case a < b:
		return OrderingLess
	case a > b:
		return OrderingGreater
	default:
		return OrderingEqual
	}
}

// HashString returns the FNV-1a hash of a string. Extensions hash their
// serialized form, so instances with byte-identical fragments hash
// identically.
func HashString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
