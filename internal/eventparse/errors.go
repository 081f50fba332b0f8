package eventparse

import "errors"

// Code identifies which part of the input failed to parse.
type Code string

const (
	CodeUnrecognizedDateTime Code = "unrecognized_datetime"
	CodeAmbiguousTimeRange   Code = "ambiguous_time_range"
	CodeInvalidAlert         Code = "invalid_alert"
	CodeInvalidURL           Code = "invalid_url"
	CodeEmptyTitle           Code = "empty_title"
	CodeInvalidTimeRange     Code = "invalid_time_range"
	CodeUnsupportedGrammar   Code = "unsupported_grammar"
)

// Error is a typed parse failure. It is a normal outcome of ambiguous
// natural-language input, not an exceptional condition: callers are expected
// to show Message to the user and prompt for a rephrase.
type Error struct {
	Code   Code
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Detail
}

// Message returns a one-line user-facing description of the failure.
func (e *Error) Message() string {
	switch e.Code {
	case CodeUnrecognizedDateTime:
		return "couldn't find a date and time in that; try something like \"lunch tomorrow at 1pm\""
	case CodeAmbiguousTimeRange:
		return "that time range reads more than one way; add am/pm to both times"
	case CodeInvalidAlert:
		return "couldn't read the alert amount; try \"with 15min alert\""
	case CodeInvalidURL:
		return "the url: value doesn't look like a URL"
	case CodeEmptyTitle:
		return "nothing left over to use as a title; add a few words describing the event"
	case CodeInvalidTimeRange:
		return "the event would end before it starts"
	case CodeUnsupportedGrammar:
		return "that phrasing isn't supported: " + e.Detail
	}
	return e.Error()
}

// CodeOf extracts the parse error code from an error chain, or "" when the
// error did not originate from this package.
func CodeOf(err error) Code {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

func newError(code Code, detail string) *Error {
	return &Error{Code: code, Detail: detail}
}
