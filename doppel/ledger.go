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
	"sync/atomic"
)

var seq uint64 //global atomic counter to order recorded calls relative to each other

// Call is one completed invocation attempt on a double: the arguments it
// received, plus a sequence number that orders calls across all ledgers.
type Call struct {
	Seq  uint64
	Args []interface{}
}

// Calls is a point-in-time snapshot of a ledger: method name to recorded
// calls, most recent first. Snapshots are read-only; records taken after the
// snapshot never appear in it.
type Calls map[string][]Call

type ledgerState map[string][]Call

// A Ledger is the per-double record of every invocation, keyed by method
// name. It is safe for concurrent recording: the backing map is immutable
// and replaced wholesale through a compare-and-swap retry loop, so
// concurrent records to the same method never lose entries.
type Ledger struct {
	state atomic.Pointer[ledgerState]
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	l := &Ledger{}
	empty := make(ledgerState)
	l.state.Store(&empty)
	return l
}

// Record appends one call for method. The new call becomes the first entry
// of the method's collection: collections read newest-first and are only
// ever prepended to, never reordered or pruned.
func (l *Ledger) Record(method string, args ...interface{}) {
	call := Call{Seq: atomic.AddUint64(&seq, 1), Args: args}
	for {
		old := l.state.Load()
		next := make(ledgerState, len(*old)+1)
		for name, calls := range *old {
			next[name] = calls
		}
		prior := next[method]
		merged := make([]Call, 0, len(prior)+1)
		merged = append(merged, call)
		merged = append(merged, prior...)
		next[method] = merged
		if l.state.CompareAndSwap(old, &next) {
			return
		}
	}
}

// Snapshot returns the current state of the ledger. The returned map is the
// immutable backing state, so later records cannot affect it.
func (l *Ledger) Snapshot() Calls {
	return Calls(*l.state.Load())
}
