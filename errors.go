package exact

import "strconv"

// ParseError indicates invalid input text. Msg is a free-form diagnostic; Col
// is the 1-based rune column of the token that caused the error.
type ParseError struct {
	Col int
	Msg string
}

func (err *ParseError) Error() string {
	return errpos(err.Col, err.Msg)
}

// Pos returns the column of the error.
func (err *ParseError) Pos() int {
	return err.Col
}

// UndefinedVariableError is an error from a lookup for a variable that is
// bound in no scope of the evaluation context.
type UndefinedVariableError struct {
	// Name is the name that was missing.
	Name string
}

func (err *UndefinedVariableError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// ArityError is an error from calling a user-defined function with the wrong
// number of arguments.
type ArityError struct {
	// Func is the function that was called.
	Func string
	// Want is the number of parameters the function declares.
	Want int
}

func (err *ArityError) Error() string {
	return "function " + strconv.Quote(err.Func) + " requires exactly " + strconv.Itoa(err.Want) + " argument(s)"
}

// UnknownFunctionError is an error from calling a name that is neither a
// user-defined function nor a primitive in the context's library.
type UnknownFunctionError struct {
	// Name is the name that was called.
	Name string
}

func (err *UnknownFunctionError) Error() string {
	return "unknown function: " + strconv.Quote(err.Name)
}

// TypeError is an error from a primitive applied to a Number of the wrong
// domain, e.g. a bitwise operation on a Rational.
type TypeError struct {
	// Want describes the domain the operation requires.
	Want string
	// Got describes the domain it received.
	Got string
}

func (err *TypeError) Error() string {
	return "type mismatch: expected " + err.Want + ", got " + err.Got
}

// DomainError is an error from an operation applied outside its mathematical
// domain, e.g. the factorial of a negative integer.
type DomainError struct {
	Msg string
}

func (err *DomainError) Error() string {
	return err.Msg
}

// DivisionByZeroError is reserved for divisions that must fail. Integer and
// Rational division by zero does not return it: those quotients silently
// produce the IEEE float result, an infinity or NaN. The kind exists for
// primitives that prefer an error over the silent fallback.
type DivisionByZeroError struct{}

func (DivisionByZeroError) Error() string {
	return "division by zero"
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}
