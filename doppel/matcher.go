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
	"regexp"
	"strings"
)

// Matcher is used to match a single value, which may itself be a recorded
// argument tuple. Matchers are stateless and reusable across queries.
type Matcher interface {

	//Matches returns true if value satisfies this matcher
	Matches(value interface{}) bool
}

/*
Match reports whether value satisfies matcher. It is pure and never fails;
any pair either matches or does not.

The matcher value is resolved against a closed set of variants:

 1. a Matcher is applied directly
 2. a *regexp.Regexp contains-matches the value rendered as text
 3. a func with one parameter and a single bool result is a predicate;
    a value its parameter cannot receive does not match
 4. a slice or array matches position by position against a slice or array
    value of equal length
 5. anything else matches by reflect.DeepEqual
*/
func Match(matcher, value interface{}) bool {
	switch m := matcher.(type) {
	case Matcher:
		return m.Matches(value)
	case *regexp.Regexp:
		return m.MatchString(text(value))
	}

	switch mv := reflect.ValueOf(matcher); mv.Kind() {
	case reflect.Func:
		return predicateMatches(mv, value)
	case reflect.Slice, reflect.Array:
		return tupleMatches(mv, value)
	}

	return reflect.DeepEqual(matcher, value)
}

func text(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

// predicateMatches invokes fv(value) for a func(x) bool. Funcs with any
// other shape never match, as does a value that is not assignable to the
// predicate's parameter.
func predicateMatches(fv reflect.Value, value interface{}) bool {
	ft := fv.Type()
	if ft.NumIn() != 1 || ft.IsVariadic() || ft.NumOut() != 1 || ft.Out(0).Kind() != reflect.Bool {
		return false
	}

	in := ft.In(0)
	var av reflect.Value
	if value == nil {
		switch in.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
			av = reflect.Zero(in)
		default:
			return false
		}
	} else {
		av = reflect.ValueOf(value)
		if !av.Type().AssignableTo(in) {
			return false
		}
	}

	return fv.Call([]reflect.Value{av})[0].Bool()
}

// tupleMatches applies a positional sequence of sub-matchers. The value must
// be a slice or array of equal arity; every position must independently
// match.
func tupleMatches(mv reflect.Value, value interface{}) bool {
	vv := reflect.ValueOf(value)
	if vv.Kind() != reflect.Slice && vv.Kind() != reflect.Array {
		return false
	}
	if vv.Len() != mv.Len() {
		return false
	}
	for i := 0; i < mv.Len(); i++ {
		if !Match(mv.Index(i).Interface(), vv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

type anythingMatcher struct{}

func (anythingMatcher) Matches(interface{}) bool {
	return true
}

func (anythingMatcher) String() string {
	return "Anything"
}

var singletonAnything = anythingMatcher{}

// Anything returns the universal wildcard: it matches any value of any type,
// including a whole argument tuple.
func Anything() Matcher {
	return singletonAnything
}

type predicateMatcher struct {
	fn          reflect.Value
	explanation string
}

func (p predicateMatcher) String() string {
	return p.explanation
}

func (p predicateMatcher) Matches(value interface{}) bool {
	return predicateMatches(p.fn, value)
}

//Predicate returns a matcher from the arbitrary function f, which must be a
//func(x T) bool where T can receive the matched value.
//
// Custom matchers will generally be a wrapper around Predicate.
// Optionally include an explanation that will be formatted to string to
// describe what is being matched.
func Predicate(f interface{}, explanation ...interface{}) Matcher {
	fv := reflect.ValueOf(f)

	var explainString string
	if len(explanation) == 0 {
		explainString = fmt.Sprintf("%T", f)
	} else {
		explainString = fmt.Sprint(explanation...)
	}

	return predicateMatcher{fv, explainString}
}

// Eql matches a single value v via reflect.DeepEqual
func Eql(v interface{}) Matcher {
	return Predicate(func(arg interface{}) bool {
		return reflect.DeepEqual(arg, v)
	}, "Eql(", v, ")")
}

type patternMatcher struct {
	re *regexp.Regexp
}

func (p patternMatcher) String() string {
	return fmt.Sprintf("Pattern(/%v/)", p.re)
}

func (p patternMatcher) Matches(value interface{}) bool {
	return p.re.MatchString(text(value))
}

// Pattern matches any value whose textual form contains a match of the
// regular expression expr. Panics if expr does not compile.
func Pattern(expr string) Matcher {
	return patternMatcher{regexp.MustCompile(expr)}
}

type argsMatcher struct {
	matchers []interface{}
}

func (a *argsMatcher) String() string {
	s := strings.Builder{}
	s.WriteString("Args(")
	for i, m := range a.matchers {
		if i > 0 {
			s.WriteRune(',')
		}
		s.WriteString(fmt.Sprint(m))
	}
	s.WriteRune(')')
	return s.String()
}

func (a *argsMatcher) Matches(value interface{}) bool {
	vv := reflect.ValueOf(value)
	if vv.Kind() != reflect.Slice && vv.Kind() != reflect.Array {
		return false
	}
	if vv.Len() != len(a.matchers) {
		return false
	}
	for i, m := range a.matchers {
		if !Match(m, vv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

// Args builds an argument tuple matcher from one sub-matcher (or plain
// value) per position.
func Args(matchers ...interface{}) Matcher {
	return &argsMatcher{matchers}
}
