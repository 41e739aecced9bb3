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

// MethodSig declares one method of an interface: its name and the names of
// its formal parameters. Types are not recorded; only arity is checked.
type MethodSig struct {
	Name   string
	Params []string
}

// A Descriptor identifies an interface by name and enumerates its methods.
// Descriptors are immutable once constructed and are passed by reference to
// the double builders.
type Descriptor struct {
	name    string
	order   []string
	methods map[string]MethodSig
}

// NewDescriptor builds a Descriptor from explicit method signatures.
//
// One signature per method name; if a name repeats, the first declaration
// wins.
func NewDescriptor(name string, sigs ...MethodSig) *Descriptor {
	d := &Descriptor{
		name:    name,
		order:   make([]string, 0, len(sigs)),
		methods: make(map[string]MethodSig, len(sigs)),
	}
	for _, sig := range sigs {
		if _, exists := d.methods[sig.Name]; exists {
			continue
		}
		d.order = append(d.order, sig.Name)
		d.methods[sig.Name] = sig
	}
	return d
}

/*
DescriptorOf builds a Descriptor by reflecting over an interface type.

forInterface is expected to be the nil implementation of an interface -
(*Iface)(nil). The descriptor is named after the interface type, and
parameter names are synthesized as arg0, arg1, ... since reflection does not
preserve them. A variadic final parameter is described by its single slice
argument.
*/
func DescriptorOf(t T, forInterface interface{}) *Descriptor {
	doubleFor := reflect.TypeOf(forInterface)

	if doubleFor == nil || doubleFor.Kind() != reflect.Ptr || doubleFor.Elem().Kind() != reflect.Interface {
		t.Fatalf("Expecting '%v' to be a pointer to nil interface", forInterface)
	}
	doubleFor = doubleFor.Elem()

	sigs := make([]MethodSig, doubleFor.NumMethod())
	for i := 0; i < doubleFor.NumMethod(); i++ {
		m := doubleFor.Method(i)
		params := make([]string, m.Type.NumIn())
		for p := range params {
			params[p] = fmt.Sprintf("arg%d", p)
		}
		sigs[i] = MethodSig{Name: m.Name, Params: params}
	}

	return NewDescriptor(doubleFor.Name(), sigs...)
}

// Name returns the interface name.
func (d *Descriptor) Name() string {
	return d.name
}

// NumMethods returns the number of declared methods.
func (d *Descriptor) NumMethods() int {
	return len(d.order)
}

// Method looks up the signature declared for name.
func (d *Descriptor) Method(name string) (MethodSig, bool) {
	sig, found := d.methods[name]
	return sig, found
}

// Methods returns the declared signatures in declaration order.
func (d *Descriptor) Methods() []MethodSig {
	sigs := make([]MethodSig, len(d.order))
	for i, name := range d.order {
		sigs[i] = d.methods[name]
	}
	return sigs
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("Interface(%s)", d.name)
}

// assertArity fatally fails test t unless funcType can receive a call with
// the arity sig declares. A variadic func counts its packed tail slice as
// one parameter, matching the descriptor convention.
func assertArity(t T, sig MethodSig, funcType reflect.Type) {
	t.Helper()
	if funcType.Kind() != reflect.Func {
		t.Fatalf("expected func for %s, got %v", sig.Name, funcType)
	}
	if declared := len(sig.Params); declared != funcType.NumIn() {
		t.Fatalf("%s declares %d arguments, %v takes %d", sig.Name, declared, funcType, funcType.NumIn())
	}
}
