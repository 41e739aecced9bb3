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
)

/*
Spy builds a Double for desc that records every call to a fresh private
Ledger, then forwards it to delegate and returns the result unchanged.

Recording happens before forwarding, so the record survives a delegate that
panics. The delegate is only ever referenced, never copied; it is reachable
again through Proxied(), and the recorded calls through Calls().

A delegate implementing Caller is forwarded to by name through Call;
anything else is forwarded to via reflection. Construction fails fatally
when the delegate is missing a declared method or its arity disagrees, so a
malformed spy is never returned.
*/
func Spy(t T, desc *Descriptor, delegate interface{}) *Double {
	t.Helper()
	d := newDouble(t, desc)
	if delegate == nil {
		t.Fatalf("Cannot spy on nil delegate for %v", desc)
	}
	d.ledger = NewLedger()
	d.delegate = delegate

	for _, sig := range desc.Methods() {
		name := sig.Name
		forward := forwarder(t, desc, sig, delegate)
		d.table[name] = func(args []interface{}) interface{} {
			//Record the call first, in case the forwarded call panics.
			d.ledger.Record(name, args...)
			return forward(args)
		}
	}
	return d
}

func forwarder(t T, desc *Descriptor, sig MethodSig, delegate interface{}) dispatch {
	if caller, isCaller := delegate.(Caller); isCaller {
		return func(args []interface{}) interface{} {
			return caller.Call(sig.Name, args...)
		}
	}

	m := reflect.ValueOf(delegate).MethodByName(sig.Name)
	if !m.IsValid() {
		t.Fatalf("Delegate %T does not implement %s.%s", delegate, desc.Name(), sig.Name)
	}
	assertArity(t, sig, m.Type())
	return func(args []interface{}) interface{} {
		return callFunc(m, args)
	}
}
