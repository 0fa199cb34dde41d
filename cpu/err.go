package cpu

import (
	"errors"

	"github.com/ezrec/pipesim/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrOperandMissing = errors.New(f("operand missing"))

	// Assembler errors
	ErrExpressionNotInt = errors.New(f("expression is not an integer"))
)

// ErrRegisterUnknown is returned when an operand names a register outside
// of the register bank.
type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("register %v unknown", string(err))
}

// ErrTagUndefined is returned when a jump target is not in the tag table.
type ErrTagUndefined string

func (err ErrTagUndefined) Error() string {
	return f("tag %v undefined", string(err))
}

// ErrTagDuplicate is returned when a tag is defined more than once.
type ErrTagDuplicate string

func (err ErrTagDuplicate) Error() string {
	return f("tag %v duplicated", string(err))
}

// ErrParseExpression is returned when a $() expression fails to evaluate.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax indicates the source line of an assembler error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
