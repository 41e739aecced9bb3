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
	"errors"
	"fmt"
)

func calcDescriptor() *Descriptor {
	return NewDescriptor("Calculator",
		MethodSig{Name: "Add", Params: []string{"x", "y"}},
		MethodSig{Name: "Store", Params: []string{"v"}},
		MethodSig{Name: "Flush", Params: nil},
	)
}

// adder is a real delegate for spy tests.
type adder struct {
	stored []string
}

func (a *adder) Add(x, y int) int {
	return x + y
}

func (a *adder) Store(v string) error {
	if v == "" {
		return errors.New("nothing to store")
	}
	a.stored = append(a.stored, v)
	return nil
}

func (a *adder) Flush() {}

// faultyAdder panics on Store, for record-before-forward tests.
type faultyAdder struct {
	adder
}

func (f *faultyAdder) Store(v string) error {
	panic(fmt.Errorf("store exploded on %q", v))
}
