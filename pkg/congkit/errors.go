package congkit

import "fmt"

// ParseError reports a malformed line in a text table. Parsing is all or
// nothing: the first bad line aborts the whole construction call.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("table parse error on line %d: %s", e.Line, e.Reason)
}

// DecodeError reports a structurally invalid binary artifact.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("table decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// PatternError reports an invalid wildcard pattern. In the batched search
// a single bad pattern aborts the batch before any scanning happens.
type PatternError struct {
	Pattern string
	Reason  string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %s", e.Pattern, e.Reason)
}
