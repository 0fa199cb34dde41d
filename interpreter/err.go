package interpreter

import (
	"errors"

	"github.com/ezrec/pipesim/translate"
)

var f = translate.From

var (
	ErrNotReady   = errors.New(f("program not parsed"))
	ErrHalted     = errors.New(f("program ended"))
	ErrCycleLimit = errors.New(f("cycle limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
