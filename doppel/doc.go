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

/*
Package doppel is a runtime test-double framework for Go.

A Descriptor names an interface and enumerates its method signatures. From a
Descriptor the package builds three kinds of double, dispatching every
invocation through a single generic entry point, Call(method, args...).

Stubs, Spies, Mocks

See the canonical sources...

* http://xunitpatterns.com/Test%20Double.html

* https://martinfowler.com/articles/mocksArentStubs.html


A Stub returns caller-configured behavior per method. An implementation map
entry may be a function (invoked with the call's arguments), a Behavior, or
any other value (returned verbatim). Methods left unconfigured return nil and
never fail.

 package examples

 import (
	. "github.com/doppelgo/doppel/doppel" //Note the dot import which assists with readability
	"testing"
 )

 func Test_Stub(t *testing.T) {
	api := DescriptorOf(t, (*API)(nil))

	d := Stub(t, api, Implementation{
		"SomeQuery": func(q string) Results { return Results{Output: q} },
	})

	// Exercise the system under test substituting d for the real API client
	r := d.Call("SomeQuery", "test").(Results)
	// ...
 }


A Spy wraps a real delegate. Every call is appended to the spy's private
ledger before being forwarded, so the record survives even when the delegate
panics. The ledger snapshot is read back through Calls() and queried with
CallCount and Received.

 func Test_Spy(t *testing.T) {
	d := Spy(t, api, realClient)

	// Exercise...

	if !Received(d, "SomeQuery", "test") {
		t.Errorf("expected SomeQuery(%q)", "test")
	}
 }


A Mock is exactly a Spy wrapped around a Stub: calls are recorded, then
dispatched through stub semantics.

 func Test_Mock(t *testing.T) {
	d := Mock(t, api, Implementation{"SomeQuery": Results{Output: "canned"}})

	// Exercise...

	Expect(t, d, "SomeQuery", Once())
 }

Queries filter recorded calls through the matcher engine: plain values match
by structural equality, *regexp.Regexp by a contains-match on the textual
form, single-parameter bool funcs as predicates, slices position by position,
and Anything() matches any value of any type.
*/
package doppel
