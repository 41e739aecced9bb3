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

// A Recorder exposes a snapshot of recorded calls. Spies and mocks are
// Recorders, as is a Ledger snapshot holder.
type Recorder interface {
	Calls() Calls
}

/*
CallCount returns the number of recorded calls to method whose argument
tuple satisfies expectedArgs.

With no expectedArgs every call counts. A single Matcher argument is applied
to the whole recorded tuple - CallCount(d, "m", Anything()) counts every
call to m regardless of arity. Otherwise the variadic values are matched
position by position against the recorded arguments, each through the
matcher engine.

Queries operate on a fresh snapshot per call: they never mutate the ledger
and are safe to run concurrently with ongoing recording.
*/
func CallCount(r Recorder, method string, expectedArgs ...interface{}) int {
	recorded := r.Calls()[method]
	if len(expectedArgs) == 0 {
		return len(recorded)
	}

	matcher := queryMatcher(expectedArgs)
	count := 0
	for _, call := range recorded {
		if Match(matcher, call.Args) {
			count++
		}
	}
	return count
}

// Received reports whether method was called at least once with arguments
// satisfying expectedArgs.
func Received(r Recorder, method string, expectedArgs ...interface{}) bool {
	return CallCount(r, method, expectedArgs...) >= 1
}

func queryMatcher(expectedArgs []interface{}) interface{} {
	if len(expectedArgs) == 1 {
		if m, isMatcher := expectedArgs[0].(Matcher); isMatcher {
			return m
		}
	}
	return Args(expectedArgs...)
}
