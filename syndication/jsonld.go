package syndication

import (
	"context"

	ld "github.com/piprate/json-gold/ld"
)

// LinkedData is implemented by extensions that can project their payload
// as a JSON-LD document with an inline @context. Projections carry only
// populated fields, mirroring sparse XML serialization.
type LinkedData interface {
	LinkedData() map[string]interface{}
}

// JSONLDOptions configures JSON-LD processing.
type JSONLDOptions struct {
	// BaseIRI resolves relative IRIs.
	BaseIRI string
	// ProcessingMode controls JSON-LD version semantics:
	// "json-ld-1.0" or "json-ld-1.1".
	ProcessingMode string
	// CompactArrays controls compaction of single-element arrays.
	CompactArrays bool
}

// ExpandLinkedData expands a JSON-LD document. Only inline contexts are
// supported: no remote documents are fetched.
func ExpandLinkedData(ctx context.Context, input interface{}, opts JSONLDOptions) ([]interface{}, error) {
	if input == nil {
		return nil, ErrInvalidArgument
	}
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	proc := ld.NewJsonLdProcessor()
	return proc.Expand(input, newGoldOptions(opts))
}

// CompactLinkedData compacts a JSON-LD document against the given
// context. Only inline contexts are supported: no remote documents are
// fetched.
func CompactLinkedData(ctx context.Context, input interface{}, jsonldContext interface{}, opts JSONLDOptions) (map[string]interface{}, error) {
	if input == nil || jsonldContext == nil {
		return nil, ErrInvalidArgument
	}
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	proc := ld.NewJsonLdProcessor()
	return proc.Compact(input, jsonldContext, newGoldOptions(opts))
}

func newGoldOptions(opts JSONLDOptions) *ld.JsonLdOptions {
	goldOpts := ld.NewJsonLdOptions(opts.BaseIRI)
	if opts.ProcessingMode != "" {
		goldOpts.ProcessingMode = opts.ProcessingMode
	}
	if opts.CompactArrays {
		goldOpts.CompactArrays = opts.CompactArrays
	}
	return goldOpts
}
