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

// Mock builds a Double that is simultaneously stub and spy: a Spy wrapped
// around a Stub built from impl. Calls are recorded, then dispatched through
// stub semantics; Proxied() returns the underlying stub.
func Mock(t T, desc *Descriptor, impl Implementation) *Double {
	t.Helper()
	return Spy(t, desc, Stub(t, desc, impl))
}
