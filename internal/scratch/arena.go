// Package scratch provides a request-scoped arena for the temporary arrays built while
// rewriting a creation request. Every buffer handed out stays valid until the arena is
// released, at which point all of them are zeroed and dropped together.
package scratch

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// Arena tracks the buffers allocated for a single intercepted call. It is not safe for
// concurrent use: one arena belongs to one call on one goroutine.
type Arena struct {
	resets   []func()
	released bool
}

// New creates an empty Arena
func New() *Arena {
	return &Arena{}
}

// Alloc returns a zeroed buffer of count elements of T, owned by the arena. T must be
// zero-constructible: channel and function element types are rejected.
func Alloc[T any](a *Arena, count int) []T {
	a.checkLive()
	checkElementType[T]()

	if count < 0 {
		panic(errors.AssertionFailedf("scratch: negative allocation count %d", count))
	}

	buffer := make([]T, count)
	a.track(buffer)
	return buffer
}

// Clone returns a buffer holding a copy of src followed by extra zeroed slots. The
// caller's slice is never written.
func Clone[T any](a *Arena, src []T, extra int) []T {
	a.checkLive()
	checkElementType[T]()

	if extra < 0 {
		panic(errors.AssertionFailedf("scratch: negative extra count %d", extra))
	}

	buffer := make([]T, len(src), len(src)+extra)
	copy(buffer, src)
	buffer = buffer[:len(src)+extra]
	a.track(buffer)
	return buffer
}

func (a *Arena) track(buffer any) {
	value := reflect.ValueOf(buffer)
	a.resets = append(a.resets, func() {
		zero := reflect.Zero(value.Type().Elem())
		for i := 0; i < value.Len(); i++ {
			value.Index(i).Set(zero)
		}
	})
}

func (a *Arena) checkLive() {
	if a.released {
		panic(errors.AssertionFailedf("scratch: allocation from a released arena"))
	}
}

func checkElementType[T any]() {
	kind := reflect.TypeOf((*T)(nil)).Elem().Kind()
	if kind == reflect.Chan || kind == reflect.Func || kind == reflect.UnsafePointer {
		panic(errors.AssertionFailedf("scratch: element kind %s cannot be zero-constructed", kind))
	}
}

// Outstanding is the number of buffers that will be reclaimed by Release
func (a *Arena) Outstanding() int {
	return len(a.resets)
}

// Released reports whether Release has been called
func (a *Arena) Released() bool {
	return a.released
}

// Release zeroes and drops every buffer allocated from the arena. Releasing twice is a
// no-op.
func (a *Arena) Release() {
	if a.released {
		return
	}

	for _, reset := range a.resets {
		reset()
	}
	a.resets = nil
	a.released = true
}
