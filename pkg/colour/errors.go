package colour

import "fmt"

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// MalformedSyntax means the input looked like a known notation but didn't
	// follow its grammar.
	MalformedSyntax ErrorKind = iota + 1
	// OutOfRangeChannel means a numeric component was outside its legal range.
	OutOfRangeChannel
	// UnknownFormat means the input didn't resemble any notation.
	UnknownFormat
	// UnknownName means an alphabetic token wasn't in the name table.
	UnknownName
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedSyntax:
		return "malformed syntax"
	case OutOfRangeChannel:
		return "out of range channel"
	case UnknownFormat:
		return "unknown format"
	case UnknownName:
		return "unknown name"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is returned by every failing parse. Use errors.As to get at the
// Kind, or errors.Is with one of the Err* sentinels.
type ParseError struct {
	Kind   ErrorKind
	Input  string
	Reason string
}

// Sentinels for errors.Is. They match any ParseError of the same Kind.
var (
	ErrMalformedSyntax   = &ParseError{Kind: MalformedSyntax}
	ErrOutOfRangeChannel = &ParseError{Kind: OutOfRangeChannel}
	ErrUnknownFormat     = &ParseError{Kind: UnknownFormat}
	ErrUnknownName       = &ParseError{Kind: UnknownName}
)

func newError(kind ErrorKind, input, reason string) *ParseError {
	return &ParseError{Kind: kind, Input: input, Reason: reason}
}

func (e *ParseError) Error() string {
	msg := "colour: " + e.Kind.String()
	if e.Input != "" {
		msg += fmt.Sprintf(" in %q", e.Input)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is matches on Kind only.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}
