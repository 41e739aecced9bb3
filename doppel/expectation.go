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

import "fmt"

// An Expectation verifies a call count against an expected value
type Expectation interface {
	// Is the expectation met, complete with count?
	Met(count int) bool
}

type callRange struct {
	atLeast int
	atMost  int //negative means unbounded
}

func (c callRange) Met(count int) bool {
	return count >= c.atLeast && (c.atMost < 0 || count <= c.atMost)
}

func (c callRange) String() string {
	switch {
	case c.atLeast == 0 && c.atMost == 0:
		return "never"
	case c.atMost < 0:
		return fmt.Sprintf("at least %d", c.atLeast)
	case c.atLeast == c.atMost:
		return fmt.Sprintf("exactly %d", c.atLeast)
	case c.atLeast <= 0:
		return fmt.Sprintf("at most %d", c.atMost)
	}
	return fmt.Sprintf("between %d and %d", c.atLeast, c.atMost)
}

// Exactly returns an expectation to be called exactly n times
func Exactly(n int) Expectation {
	return callRange{n, n}
}

// Once is shorthand for Exactly(1)
func Once() Expectation {
	return Exactly(1)
}

// Twice is shorthand for Exactly(2)
func Twice() Expectation {
	return Exactly(2)
}

// Never returns an expectation to never be called
func Never() Expectation {
	return callRange{0, 0}
}

// AtLeast returns an expectation to be called at least n times
func AtLeast(n int) Expectation {
	return callRange{n, -1}
}

// AtMost returns an expectation to be called at most n times
func AtMost(n int) Expectation {
	return callRange{0, n}
}

// Between returns an expectation to be called at least min times and at most
// max times
func Between(min int, max int) Expectation {
	return callRange{min, max}
}

// Expect asserts expect against the count of recorded calls to method whose
// arguments satisfy expectedArgs, reporting a failure through t.
func Expect(t T, r Recorder, method string, expect Expectation, expectedArgs ...interface{}) {
	t.Helper()
	count := CallCount(r, method, expectedArgs...)
	if !expect.Met(count) {
		t.Errorf("%s expected %v, found %d calls", method, expect, count)
	}
}
