// Package assert provides the condition checks used inside test group
// methods. A check that does not hold panics with an *AssertionError carrying
// the location of the call; the harness runner recovers it and reports the
// test as failed.
package assert

import (
	"errors"
	"reflect"
)

// Number is the set of types Close accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Equal fails when expected and actual differ.
func Equal[T comparable](expected, actual T) {
	if expected != actual {
		raise("%v does not match %v", actual, expected)
	}
}

// True fails when actual does not coerce to true.
func True(actual any) {
	if !Truthy(actual) {
		raise("false is not true")
	}
}

// False fails when actual coerces to true.
func False(actual any) {
	if Truthy(actual) {
		raise("true is not false")
	}
}

// Close fails when actual lies outside [expected-tolerance, expected+tolerance]
// or tolerance is negative.
func Close[T Number](expected, actual, tolerance T) {
	var zero T
	if tolerance < zero || outsideBand(expected, actual, tolerance) {
		raise("%v is not close enough to %v", actual, expected)
	}
}

// outsideBand compares actual with each bound of the band. A bound that
// overflows the range of T leaves that side of the band open.
func outsideBand[T Number](expected, actual, tolerance T) bool {
	if lower := expected - tolerance; lower <= expected && actual < lower {
		return true
	}
	if upper := expected + tolerance; upper >= expected && actual > upper {
		return true
	}
	return false
}

// IsNil fails when actual holds a non-nil value.
func IsNil(actual any) {
	if !isNil(actual) {
		raise("value was not nil")
	}
}

// IsNotNil fails when actual is nil.
func IsNotNil(actual any) {
	if isNil(actual) {
		raise("value was unexpectedly nil")
	}
}

// NoError fails when err is not nil.
func NoError(err error) {
	if err != nil {
		raise("unexpected error: %v", err)
	}
}

// Raises calls fn and fails unless it panics with an error that errors.As
// can match to E. Panics with any other value propagate unchanged.
func Raises[E error](fn func()) {
	if !raised[E](fn) {
		raise("expected error (%s) was not raised", typeName[E]())
	}
}

// RaisesError is Raises for functions that report failure by returning an
// error instead of panicking. A panic matching E is accepted as well.
func RaisesError[E error](fn func() error) {
	var returned error
	if raised[E](func() { returned = fn() }) {
		return
	}
	var target E
	if returned != nil && errors.As(returned, &target) {
		return
	}
	raise("expected error (%s) was not raised", typeName[E]())
}

// raised reports whether fn panicked with an error matching E. Any other
// panic is re-raised with its original value.
func raised[E error](fn func()) (ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var target E
		if err, isErr := r.(error); isErr && errors.As(err, &target) {
			ok = true
			return
		}
		panic(r)
	}()
	fn()
	return false
}

func typeName[E error]() string {
	return reflect.TypeOf((*E)(nil)).Elem().String()
}

// Truthy coerces v to a boolean: nil is false, a bool is itself, and any
// other value is true unless it is the zero value of its type.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return !reflect.ValueOf(v).IsZero()
}

// isNil treats values of kinds that cannot be nil as present.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
