package duitseg

import (
	"fmt"
)

type localError struct {
	err error
}

// errorHandler returns check, which panics with a wrapped error when err is set, and handle,
// to be deferred, which recovers such panics and passes the error to fn.
// Other panics are passed on.
func errorHandler(fn func(xerr error)) (check func(err error, format string, args ...interface{}), handle func()) {
	check = func(err error, format string, args ...interface{}) {
		if err != nil {
			panic(&localError{fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)})
		}
	}
	handle = func() {
		e := recover()
		if e == nil {
			return
		}
		if le, ok := e.(*localError); ok {
			fn(le.err)
		} else {
			panic(e)
		}
	}
	return
}
