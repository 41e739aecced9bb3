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
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_Equality(t *testing.T) {
	assert.True(t, Match(42, 42))
	assert.False(t, Match(42, "42"))
	assert.False(t, Match(42, 43))
	assert.True(t, Match("hello", "hello"))
	assert.True(t, Match(nil, nil))
	assert.False(t, Match(nil, 0))

	type point struct{ X, Y int }
	assert.True(t, Match(point{1, 2}, point{1, 2}))
	assert.False(t, Match(point{1, 2}, point{2, 1}))
}

func TestMatch_Regexp(t *testing.T) {
	assert.True(t, Match(regexp.MustCompile("ab"), "xaby"))
	assert.False(t, Match(regexp.MustCompile("ab"), "xa by"))

	//non-string values are rendered as text
	assert.True(t, Match(regexp.MustCompile(`^4\d$`), 42))
	assert.True(t, Match(regexp.MustCompile("ab"), []byte("slab")))
}

func TestMatch_Predicate(t *testing.T) {
	even := func(i int) bool { return i%2 == 0 }

	assert.True(t, Match(even, 4))
	assert.False(t, Match(even, 5))

	//a value the predicate cannot receive does not match
	assert.False(t, Match(even, "four"))
	assert.False(t, Match(even, nil))

	//nil is the zero value for nil-able parameter types
	assert.True(t, Match(func(e error) bool { return e == nil }, nil))

	//funcs that are not single-argument predicates never match
	assert.False(t, Match(func(a, b int) bool { return true }, 1))
	assert.False(t, Match(func(i int) int { return i }, 1))
}

func TestMatch_Composite(t *testing.T) {
	assert.True(t, Match([]interface{}{Anything(), 5}, []interface{}{99, 5}))
	assert.False(t, Match([]interface{}{Anything(), 5}, []interface{}{99, 6}))

	//arity mismatch does not match, it is not a failure
	assert.False(t, Match([]interface{}{Anything(), 5}, []interface{}{5}))
	assert.False(t, Match([]interface{}{1}, []interface{}{1, 2}))

	//value must be a positional sequence
	assert.False(t, Match([]interface{}{1}, 1))

	//typed slices match position by position
	assert.True(t, Match([]int{1, 2}, []int{1, 2}))
	assert.False(t, Match([]int{1, 2}, []int{1, 3}))
}

func TestMatch_Anything(t *testing.T) {
	assert.True(t, Match(Anything(), 42))
	assert.True(t, Match(Anything(), nil))
	assert.True(t, Match(Anything(), []interface{}{1, "two", 3.0}))
	assert.Equal(t, "Anything", Anything().(anythingMatcher).String())
}

func TestEql(t *testing.T) {
	assert.True(t, Eql([]string{"a"}).Matches([]string{"a"}))
	assert.False(t, Eql([]string{"a"}).Matches([]string{"b"}))
	assert.True(t, Eql(nil).Matches(nil))
}

func TestPattern(t *testing.T) {
	assert.True(t, Pattern("^ab").Matches("abc"))
	assert.False(t, Pattern("^ab").Matches("cab"))
	assert.Panics(t, func() { Pattern("(") })
}

func TestArgs(t *testing.T) {
	m := Args("get", Anything())

	assert.True(t, m.Matches([]interface{}{"get", 99}))
	assert.False(t, m.Matches([]interface{}{"put", 99}))
	assert.False(t, m.Matches([]interface{}{"get"}))
	assert.False(t, m.Matches("get"))

	//sub-matchers nest
	nested := Args(Pattern("^usr"), []interface{}{1, Anything()})
	assert.True(t, nested.Matches([]interface{}{"usr1", []interface{}{1, "x"}}))
	assert.False(t, nested.Matches([]interface{}{"tmp1", []interface{}{1, "x"}}))
}
