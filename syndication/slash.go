package syndication

import (
	"bytes"
	"io"
	"strconv"
	"strings"
)

// Slashdot module identity.
const (
	SlashPrefix        = "slash"
	SlashNamespace     = "http://purl.org/rss/1.0/modules/slash/"
	SlashVersion       = "1.0"
	SlashDocumentation = "http://web.resource.org/rss/1.0/modules/slash/"
)

const (
	slashSectionElement    = "section"
	slashDepartmentElement = "department"
	slashCommentsElement   = "comments"
	slashHitParadeElement  = "hit_parade"
)

// SlashContext holds the typed payload of the Slashdot module. Empty
// strings, a nil count, and a nil hit parade mean the field was not
// present in the source.
type SlashContext struct {
	section    string
	department string
	comments   *int
	hitParade  []int
}

// NewSlashContext returns an empty context.
func NewSlashContext() *SlashContext {
	return &SlashContext{}
}

// Section returns the site section, or "" when unset.
func (c *SlashContext) Section() string { return c.section }

// SetSection replaces the site section. "" clears the field.
func (c *SlashContext) SetSection(section string) { c.section = section }

// Department returns the department, or "" when unset.
func (c *SlashContext) Department() string { return c.department }

// SetDepartment replaces the department. "" clears the field.
func (c *SlashContext) SetDepartment(department string) { c.department = department }

// Comments returns the comment count and whether it was set.
func (c *SlashContext) Comments() (int, bool) {
	if c.comments == nil {
		return 0, false
	}
	return *c.comments, true
}

// SetComments replaces the comment count. Negative counts are rejected.
func (c *SlashContext) SetComments(count int) error {
	if count < 0 {
		return ErrInvalidArgument
	}
	c.comments = &count
	return nil
}

// HitParade returns the hit parade thresholds, or nil when unset.
func (c *SlashContext) HitParade() []int { return c.hitParade }

// SetHitParade replaces the hit parade thresholds. Nil or empty clears
// the field: a hit parade with no entries is not a value, so it never
// serializes.
func (c *SlashContext) SetHitParade(values []int) {
	if len(values) == 0 {
		c.hitParade = nil
		return
	}
	c.hitParade = values
}

// Load extracts the recognized Slash elements from the node. Malformed
// numeric text is skipped, not an error. Reports whether at least one
// field was populated.
func (c *SlashContext) Load(node *Node, ns *Namespaces) (bool, error) {
	if node == nil || ns == nil {
		return false, ErrInvalidArgument
	}
	loaded := false
	if el := findQualified(node, ns, SlashPrefix, slashSectionElement); el != nil {
		if text := strings.TrimSpace(el.Text()); text != "" {
			c.section = text
			loaded = true
		}
	}
	if el := findQualified(node, ns, SlashPrefix, slashDepartmentElement); el != nil {
		if text := strings.TrimSpace(el.Text()); text != "" {
			c.department = text
			loaded = true
		}
	}
	if el := findQualified(node, ns, SlashPrefix, slashCommentsElement); el != nil {
		if count, err := strconv.Atoi(strings.TrimSpace(el.Text())); err == nil && count >= 0 {
			c.comments = &count
			loaded = true
		}
	}
	if el := findQualified(node, ns, SlashPrefix, slashHitParadeElement); el != nil {
		if values := parseHitParade(el.Text()); values != nil {
			c.hitParade = values
			loaded = true
		}
	}
	return loaded, nil
}

// parseHitParade parses comma-separated integers, skipping malformed
// entries. Returns nil when nothing usable remains.
func parseHitParade(text string) []int {
	var values []int
	for _, part := range strings.Split(text, ",") {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		values = append(values, value)
	}
	return values
}

// Write serializes the populated fields as prefixed elements, sparsely.
func (c *SlashContext) Write(w io.Writer, prefix string) error {
	if w == nil {
		return ErrInvalidArgument
	}
	if c.section != "" {
		if err := writeElement(w, prefix, slashSectionElement, c.section); err != nil {
			return err
		}
	}
	if c.department != "" {
		if err := writeElement(w, prefix, slashDepartmentElement, c.department); err != nil {
			return err
		}
	}
	if c.comments != nil {
		if err := writeElement(w, prefix, slashCommentsElement, strconv.Itoa(*c.comments)); err != nil {
			return err
		}
	}
	if len(c.hitParade) > 0 {
		parts := make([]string, len(c.hitParade))
		for i, value := range c.hitParade {
			parts[i] = strconv.Itoa(value)
		}
		return writeElement(w, prefix, slashHitParadeElement, strings.Join(parts, ","))
	}
	return nil
}

// Compare orders two contexts field by field: section, department,
// comment count (absent sorts before present), then hit parade.
func (c *SlashContext) Compare(other *SlashContext) Ordering {
	if result := CompareStrings(c.section, other.section); result != OrderingEqual {
		return result
	}
	if result := CompareStrings(c.department, other.department); result != OrderingEqual {
		return result
	}
	if result := compareOptionalInts(c.comments, other.comments); result != OrderingEqual {
		return result
	}
	return compareIntSlices(c.hitParade, other.hitParade)
}

func compareOptionalInts(a, b *int) Ordering {
	if a == nil && b == nil {
		return OrderingEqual
	}
	if a == nil {
		return OrderingLess
	}
	if b == nil {
		return OrderingGreater
	}
	return CompareInts(*a, *b)
}

func compareIntSlices(a, b []int) Ordering {
	for i := 0; i < len(a) && i < len(b); i++ {
		if result := CompareInts(a[i], b[i]); result != OrderingEqual {
			return result
		}
	}
	return CompareInts(len(a), len(b))
}

// SlashExtension is the addressable unit hosts attach for the Slashdot
// module. Same contract as WellFormedWebExtension with a different
// typed payload.
type SlashExtension struct {
	config    Config
	context   *SlashContext
	listeners []LoadListener
}

// NewSlashExtension returns an extension with fixed Slash identity
// metadata and an empty context.
func NewSlashExtension() *SlashExtension {
	return &SlashExtension{
		config: Config{
			Prefix:        SlashPrefix,
			Namespace:     SlashNamespace,
			Version:       SlashVersion,
			Documentation: SlashDocumentation,
			Name:          "Slash",
			Description:   "Adds Slashdot-style section, department and comment statistics to syndicated content.",
		},
		context: NewSlashContext(),
	}
}

// MatchSlash reports whether the candidate is a Slash extension instance.
func MatchSlash(candidate Extension) (bool, error) {
	if candidate == nil {
		return false, ErrInvalidArgument
	}
	_, ok := candidate.(*SlashExtension)
	return ok, nil
}

// Config returns the extension's identity metadata.
func (e *SlashExtension) Config() Config { return e.config }

// Context returns the extension's payload.
func (e *SlashExtension) Context() *SlashContext { return e.context }

// SetContext replaces the payload. Nil is rejected.
func (e *SlashExtension) SetContext(ctx *SlashContext) error {
	if ctx == nil {
		return ErrInvalidArgument
	}
	e.context = ctx
	return nil
}

// Subscribe registers a listener notified after each successful Load.
func (e *SlashExtension) Subscribe(listener LoadListener) {
	if listener != nil {
		e.listeners = append(e.listeners, listener)
	}
}

// Load parses the source and delegates to the context; see
// WellFormedWebExtension.Load for the contract.
func (e *SlashExtension) Load(src io.Reader, opts ...Option) (bool, error) {
	if src == nil {
		return false, ErrInvalidArgument
	}
	node, err := ParseFragment(src, opts...)
	if err != nil {
		return false, err
	}
	ns := CollectNamespaces(node)
	ns.Register(SlashPrefix, SlashNamespace)
	loaded, err := e.context.Load(node, ns)
	if err != nil {
		return false, err
	}
	notifyLoaded(e.listeners, LoadedEvent{Source: node, Extension: e})
	return loaded, nil
}

// WriteTo serializes the populated fields under the slash prefix.
func (e *SlashExtension) WriteTo(w io.Writer) error {
	if w == nil {
		return ErrInvalidArgument
	}
	return e.context.Write(w, e.config.Prefix)
}

// String renders the current state as a declaration-free XML fragment.
func (e *SlashExtension) String() string {
	var buf bytes.Buffer
	if err := e.WriteTo(&buf); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// Compare orders this extension against another Slash extension.
func (e *SlashExtension) Compare(other Extension) (Ordering, error) {
	if other == nil {
		return OrderingEqual, ErrInvalidArgument
	}
	slash, ok := other.(*SlashExtension)
	if !ok {
		return OrderingEqual, ErrInvalidType
	}
	return e.context.Compare(slash.context), nil
}

// Equal reports whether the other extension is a Slash extension with
// equal payload fields.
func (e *SlashExtension) Equal(other Extension) bool {
	result, err := e.Compare(other)
	return err == nil && result == OrderingEqual
}

// Hash returns the FNV-1a hash of the serialized form.
func (e *SlashExtension) Hash() uint64 {
	return HashString(e.String())
}

// LinkedData projects the populated fields as a JSON-LD document with an
// inline @context.
func (e *SlashExtension) LinkedData() map[string]interface{} {
	doc := map[string]interface{}{
		"@context": map[string]interface{}{
			SlashPrefix: SlashNamespace,
		},
	}
	if c := e.context; c != nil {
		if c.section != "" {
			doc[SlashPrefix+":"+slashSectionElement] = c.section
		}
		if c.department != "" {
			doc[SlashPrefix+":"+slashDepartmentElement] = c.department
		}
		if c.comments != nil {
			doc[SlashPrefix+":"+slashCommentsElement] = *c.comments
		}
		if len(c.hitParade) > 0 {
			values := make([]interface{}, len(c.hitParade))
			for i, value := range c.hitParade {
				values[i] = value
			}
			doc[SlashPrefix+":"+slashHitParadeElement] = values
		}
	}
	return doc
}
