package hamlet

import (
	"fmt"
	"reflect"
	"testing"
)

// Hamlet is a tiny to-be-or-not-to-be assertion helper for tests.
// Usage: must_be, wont_be := hamlet.Specifications(t)

type Hamlet struct {
	t        *testing.T
	expected bool
}

func Specifications(t *testing.T) (*Hamlet, *Hamlet) {
	t.Helper()
	return &Hamlet{t, true}, &Hamlet{t, false}
}

func (it *Hamlet) fail(form string, details ...interface{}) {
	it.t.Helper()
	it.t.Errorf(form, details...)
}

func (it *Hamlet) True(value bool) {
	it.t.Helper()
	if value != it.expected {
		it.fail("Expected %v but got %v!", it.expected, value)
	}
}

func (it *Hamlet) Nil(value interface{}) {
	it.t.Helper()
	broken := value != nil && !reflect.ValueOf(value).IsNil()
	if broken == it.expected {
		it.fail("Expected nil %v but got %#v!", it.expected, value)
	}
}

func (it *Hamlet) Equal(expected, actual interface{}) {
	it.t.Helper()
	if reflect.DeepEqual(expected, actual) != it.expected {
		it.fail("Expected equality %v between %#v and %#v failed!", it.expected, expected, actual)
	}
}

func (it *Hamlet) Text(expected string, actual interface{}) {
	it.t.Helper()
	textual := fmt.Sprintf("%v", actual)
	if (expected == textual) != it.expected {
		it.fail("Expected text %q vs. %q compare failure (%v)!", expected, textual, it.expected)
	}
}

func (it *Hamlet) Panic(task func()) {
	it.t.Helper()
	defer func() {
		status := recover()
		if (status != nil) != it.expected {
			it.fail("Expected panic %v but got %#v!", it.expected, status)
		}
	}()
	task()
}
