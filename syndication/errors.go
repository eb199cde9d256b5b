package syndication

import (
	"errors"
	"fmt"
)

// ErrorCode represents a programmatic error code for error handling.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates a required input was absent.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeInvalidType indicates a comparison target of an incompatible type.
	ErrCodeInvalidType ErrorCode = "INVALID_TYPE"
	// ErrCodeDepthExceeded indicates nesting depth exceeded the configured limit.
	ErrCodeDepthExceeded ErrorCode = "DEPTH_EXCEEDED"
	// ErrCodeFragmentTooLarge indicates the fragment exceeded the configured size limit.
	ErrCodeFragmentTooLarge ErrorCode = "FRAGMENT_TOO_LARGE"
	// ErrCodeParseError indicates a general XML parse error.
	ErrCodeParseError ErrorCode = "PARSE_ERROR"
)

var (
	// ErrInvalidArgument indicates a required input (source, writer, context
	// value, comparison candidate) was nil.
	ErrInvalidArgument = errors.New("syndication: invalid argument")
	// ErrInvalidType indicates a comparison received an incompatible extension type.
	ErrInvalidType = errors.New("syndication: invalid extension type")
	// ErrDepthExceeded indicates nesting depth exceeded the configured limit.
	ErrDepthExceeded = errors.New("syndication: nesting depth exceeded configured limit")
	// ErrFragmentTooLarge indicates the fragment exceeded the configured size limit.
	ErrFragmentTooLarge = errors.New("syndication: fragment exceeds configured size limit")
)

// Code returns the error code for an error, or ErrCodeParseError if unknown.
// Returns empty string for nil errors.
func Code(err error) ErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrInvalidArgument):
		return ErrCodeInvalidArgument
	case errors.Is(err, ErrInvalidType):
		return ErrCodeInvalidType
	case errors.Is(err, ErrDepthExceeded):
		return ErrCodeDepthExceeded
	case errors.Is(err, ErrFragmentTooLarge):
		return ErrCodeFragmentTooLarge
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		underlying := Code(parseErr.Err)
		if underlying != ErrCodeParseError && underlying != "" {
			return underlying
		}
		return ErrCodeParseError
	}

	return ErrCodeParseError
}

// ParseError provides structured context for XML fragment parse failures.
type ParseError struct {
	Element string // Enclosing element name at the point of failure, if known
	Offset  int64  // Byte offset in input (0 if unknown)
	Err     error  // Underlying error
}

func (e *ParseError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("syndication: parse %s (offset %d): %v", e.Element, e.Offset, e.Err)
	}
	return fmt.Sprintf("syndication: parse (offset %d): %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// wrapParseError adds element/offset context to a parse error.
func wrapParseError(element string, offset int64, err error) error {
	if err == nil {
		return nil
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return err
	}
	return &ParseError{Element: element, Offset: offset, Err: err}
}
