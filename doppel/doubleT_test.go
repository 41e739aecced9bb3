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
	"regexp"
	"testing"
)

// tDouble is a mock of T built with the framework itself, used to observe
// Errorf and Fatalf from the code under test. Fatalf panics so execution
// stops the way a real testing.T would.
type tDouble struct {
	T
	*Double
}

func newTDouble(t *testing.T) *tDouble {
	desc := DescriptorOf(t, (*T)(nil))
	d := Mock(t, desc, Implementation{
		"Fatalf": func(format string, args []interface{}) {
			panic(fmt.Errorf(format, args...))
		},
	})
	return &tDouble{Double: d}
}

func (t *tDouble) Errorf(format string, args ...interface{}) {
	t.Double.Call("Errorf", format, args)
}

func (t *tDouble) Fatalf(format string, args ...interface{}) {
	t.Double.Call("Fatalf", format, args)
}

func (t *tDouble) Logf(format string, args ...interface{}) {
	t.Double.Call("Logf", format, args)
}

func (t *tDouble) Helper() {
	t.Double.Call("Helper")
}

// printfMatcher matches a recorded (format, args) tuple whose formatted
// output contains a match of re.
func printfMatcher(re string) Matcher {
	exp := regexp.MustCompile(re)
	return Predicate(func(call []interface{}) bool {
		format, _ := call[0].(string)
		args, _ := call[1].([]interface{})
		return exp.MatchString(fmt.Sprintf(format, args...))
	}, "/", re, "/")
}
