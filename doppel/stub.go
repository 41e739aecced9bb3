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
	"reflect"
	"sync"
)

/*
Implementation maps method names to behaviors for Stub and Mock.

An entry may be

 1. a func - invoked with the call's arguments, its results returned
 2. a Behavior - Invoke is called with the argument tuple
 3. any other value - returned verbatim, ignoring the arguments

The map is partial; a declared method with no entry returns nil.
*/
type Implementation map[string]interface{}

// Behavior generates the result of a stubbed method invocation.
type Behavior interface {

	//Invoke is called with the argument tuple when the method is exercised
	Invoke(args []interface{}) interface{}
}

/*
Stub builds a Double for desc whose methods dispatch through impl.

impl may be nil or empty, producing a double where every method returns nil.
Construction fails fatally for an impl entry the descriptor does not
declare, or a func entry whose arity disagrees with the declared parameter
list; a well-formed descriptor and map never fail. Failures raised later by
a func entry during invocation propagate unmodified to the method's caller.
*/
func Stub(t T, desc *Descriptor, impl Implementation) *Double {
	t.Helper()
	d := newDouble(t, desc)

	for name := range impl {
		if _, found := desc.Method(name); !found {
			t.Fatalf("Cannot stub non existent method %s for %v", name, desc)
		}
	}

	for _, sig := range desc.Methods() {
		d.table[sig.Name] = stubDispatch(t, sig, impl[sig.Name])
	}
	return d
}

func stubDispatch(t T, sig MethodSig, entry interface{}) dispatch {
	if entry == nil {
		return func([]interface{}) interface{} { return nil }
	}

	if behavior, isBehavior := entry.(Behavior); isBehavior {
		return behavior.Invoke
	}

	if fn := reflect.ValueOf(entry); fn.Kind() == reflect.Func {
		assertArity(t, sig, fn.Type())
		return func(args []interface{}) interface{} {
			return callFunc(fn, args)
		}
	}

	return func([]interface{}) interface{} { return entry }
}

type sequenceBehavior struct {
	mutex  sync.Mutex
	values []interface{}
}

func (s *sequenceBehavior) Invoke([]interface{}) interface{} {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if len(s.values) == 0 {
		return nil
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

//Sequence returns each of values for successive invocations, then nil once
//they are exhausted. Safe for concurrent invocation.
func Sequence(values ...interface{}) Behavior {
	return &sequenceBehavior{values: values}
}
