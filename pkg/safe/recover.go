// Package safe runs callbacks with panic protection.
package safe

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrPanic marks errors produced from a recovered panic.
var ErrPanic = errors.New("recovered panic")

// PanicError carries the recovered value and the stack at the panic site.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: %v", ErrPanic, e.Value)
}

func (e *PanicError) Unwrap() error {
	return ErrPanic
}

// Call runs fn and converts a panic into a *PanicError.
func Call(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}
