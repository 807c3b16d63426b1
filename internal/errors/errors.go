// Package errors attaches stack traces to errors via github.com/go-errors/errors
// and adds helpers for tagging errors with one of the exported error kinds.
package errors

import (
	"fmt"
	"reflect"
	"runtime"

	errorsGo "github.com/go-errors/errors"
)

type Error = errorsGo.Error

func As(err error, target any) bool { return errorsGo.As(err, target) }

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func Unwrap(err error) error { return errorsGo.Unwrap(err) }

func Join(errs ...error) error {
	err := errorsGo.Join(errs...)
	if err == nil {
		return nil
	}
	if errGo, okErrGo := err.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(err, 1)
}

// New wraps obj (an error or a message) with the caller's stack.
// An *Error is passed through so the origin of the failure is kept.
// obj must not be nil.
func New(obj any) *Error {
	if errGo, okErrGo := obj.(*errorsGo.Error); okErrGo {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

func Errorf(format string, a ...any) *Error {
	return errorsGo.Wrap(fmt.Errorf(format, a...), 1)
}

func Wrap(e any, skip int) *Error { return errorsGo.Wrap(e, skip+1) }

func WrapPrefix(e any, prefix string, skip int) *Error {
	return errorsGo.WrapPrefix(e, prefix, skip+1)
}

// Kind returns an error of the given kind with a formatted detail message.
// errors.Is(err, kind) holds for the result.
func Kind(kind error, format string, a ...any) *Error {
	return errorsGo.Wrap(fmt.Errorf(`%w: `+format, append([]any{kind}, a...)...), 1)
}

// WithKind tags err with kind while keeping err in the chain.
func WithKind(kind, err error) *Error {
	if err == nil {
		return errorsGo.Wrap(kind, 1)
	}
	if Is(err, kind) {
		return errorsGo.Wrap(err, 1)
	}
	return errorsGo.Wrap(fmt.Errorf(`%w: %w`, kind, err), 1)
}

// NilReceiver returns an error with the function name if any of the arguments are nil
func NilReceiver(args ...any) error {
	return errMsgNilTester(`nil receiver or struct field`, 3, args...)
}

// NilParam returns an error with the function name if any of the arguments are nil
func NilParam(args ...any) error {
	return errMsgNilTester(`nil parameter`, 3, args...)
}

func errMsgNilTester(msg string, skip int, args ...any) error {
	if len(args) == 0 {
		return errMsg(msg, skip)
	}
	for i := range args {
		if isNil(args[i]) {
			return errMsg(msg, skip)
		}
	}
	return nil
}

func isNil(obj any) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func errMsg(msg string, skip int) error {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return Wrap(msg, skip)
	}
	return Wrap(msg+`: `+runtime.FuncForPC(pc).Name()+`()`, skip)
}
