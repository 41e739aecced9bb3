/*
 * Copyright 2026 The doppel Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package doppel

import (
	"fmt"
	"reflect"
)

//T is compatible with builtin testing.T
type T interface {
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Logf(format string, args ...interface{})
	Helper()
}

// Caller dispatches a method invocation by name. Doubles implement it, so a
// double can stand in wherever a delegate is expected.
type Caller interface {
	Call(method string, args ...interface{}) interface{}
}

type dispatch func(args []interface{}) interface{}

/*
A Double is a synthesized object conforming to a Descriptor's method set.

Every invocation goes through the generic entry point Call, which routes to
a dispatch table built once at construction; the method set never changes
afterwards. Typed wrappers embed a *Double and translate each interface
method into a Call - see the examples package.

A stub Double routes each method to its configured behavior. A spy or mock
Double additionally owns a private Ledger and records every call before
dispatching it.
*/
type Double struct {
	t        T
	desc     *Descriptor
	table    map[string]dispatch
	ledger   *Ledger     //spies and mocks only
	delegate interface{} //spies and mocks only
}

func newDouble(t T, desc *Descriptor) *Double {
	if desc == nil {
		t.Fatalf("cannot build a double without a descriptor")
	}
	return &Double{
		t:     t,
		desc:  desc,
		table: make(map[string]dispatch, desc.NumMethods()),
	}
}

func (d *Double) String() string {
	return fmt.Sprintf("DoubleFor(%s)", d.desc.Name())
}

// Protocol returns the Descriptor this double was built from.
func (d *Double) Protocol() *Descriptor {
	return d.desc
}

func (d *Double) T() T {
	return d.t
}

/*
Call invokes method with args and returns its result.

A method the descriptor does not declare, or a call whose arity disagrees
with the declared parameter list, fatally fails the test. Failures raised by
the configured behavior or delegate are not caught: a panic propagates
unchanged, and a returned error is a result value like any other.

Behaviors producing no value yield nil; a behavior producing several values
yields them as a []interface{}.
*/
func (d *Double) Call(method string, args ...interface{}) interface{} {
	d.t.Helper()

	sig, found := d.desc.Method(method)
	if !found {
		d.t.Fatalf("Unexpected call to unknown method %v.%s", d, method)
	}
	if len(args) != len(sig.Params) {
		d.t.Fatalf("%v.%s takes %d arguments (%v), got %d", d, method, len(sig.Params), sig.Params, len(args))
	}
	return d.table[method](args)
}

// Calls returns a read-only snapshot of the private ledger, most recent call
// first. Only spies and mocks record; reading a plain stub fatally fails the
// test.
func (d *Double) Calls() Calls {
	if d.ledger == nil {
		d.t.Fatalf("%v is not a spy, it records no calls", d)
	}
	return d.ledger.Snapshot()
}

// Proxied returns the wrapped delegate of a spy or mock.
func (d *Double) Proxied() interface{} {
	if d.delegate == nil {
		d.t.Fatalf("%v is not a spy, it has no delegate", d)
	}
	return d.delegate
}

// callFunc invokes fn with args via reflection. A nil arg becomes the zero
// value of the parameter. For a variadic fn the last arg is the packed tail
// slice. Panics raised by fn propagate to the caller.
func callFunc(fn reflect.Value, args []interface{}) interface{} {
	ft := fn.Type()
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(ft.In(i))
		} else {
			in[i] = reflect.ValueOf(arg)
		}
	}

	var out []reflect.Value
	if ft.IsVariadic() {
		out = fn.CallSlice(in)
	} else {
		out = fn.Call(in)
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0].Interface()
	default:
		results := make([]interface{}, len(out))
		for i, v := range out {
			results[i] = v.Interface()
		}
		return results
	}
}
