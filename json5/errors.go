package json5

import "fmt"

// ErrorCode classifies a tokenizer failure the way callers who don't want to
// unwrap a Go error can still branch on.
type ErrorCode string

const (
	ErrNone          ErrorCode = ""
	ErrInvalid       ErrorCode = "invalid"
	ErrIncomplete    ErrorCode = "incomplete"
	ErrOverflow      ErrorCode = "overflow"
	ErrInvalidEscape ErrorCode = "invalid-escape-sequence"
)

// SyntaxError reports a lexical failure at the offending construct's start,
// not at the byte where the failure was detected. An object or array left
// unclosed is reported at the end of the input.
type SyntaxError struct {
	Code    ErrorCode
	Message string
	Line    int
	Pos     int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("json5: %s: %s (line %d, pos %d)", e.Code, e.Message, e.Line+1, e.Pos)
}
