package types

import "fmt"

// ErrorCode represents a golists error code.
type ErrorCode string

// Error codes, grouped by class letter.
const (
	// A0xxx: Argument errors
	ErrUnexpectedIndex       ErrorCode = "A0101"
	ErrInvalidDelimiter      ErrorCode = "A0102"
	ErrArgumentCountMismatch ErrorCode = "A0103"
	ErrExpectedRuleset       ErrorCode = "A0104"

	// E1xxx: Evaluation errors
	ErrListLengthMismatch ErrorCode = "E1001"
	ErrInvalidOperand     ErrorCode = "E1002"
	ErrDivisionByZero     ErrorCode = "E1003"
	ErrDepthExceeded      ErrorCode = "E3020"

	// S0xxx: Syntax errors
	ErrSyntaxError         ErrorCode = "S0201"
	ErrUnsupportedSyntax   ErrorCode = "S0202"
	ErrUnsupportedOperator ErrorCode = "S0203"

	// U1xxx: Undefined errors
	ErrUndefinedFunction ErrorCode = "U1002"
)

// ErrorClass categorizes error codes.
type ErrorClass string

const (
	ClassArgument   ErrorClass = "Argument"
	ClassEvaluation ErrorClass = "Evaluation"
	ClassSyntax     ErrorClass = "Syntax"
	ClassUndefined  ErrorClass = "Undefined"
)

// Class returns the class encoded by the code's leading letter.
func (c ErrorCode) Class() ErrorClass {
	if c == "" {
		return ""
	}
	switch c[0] {
	case 'A':
		return ClassArgument
	case 'E':
		return ClassEvaluation
	case 'S':
		return ClassSyntax
	case 'U':
		return ClassUndefined
	}
	return ""
}

// Error represents a structured golists error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error
}

// NewError creates a new error.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Errorf creates a new error without position from a format string.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return NewError(code, fmt.Sprintf(format, args...), -1)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Class returns the error's class.
func (e *Error) Class() ErrorClass {
	return e.Code.Class()
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds token information to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}
