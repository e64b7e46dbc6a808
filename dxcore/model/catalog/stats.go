/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package catalog

import "sync/atomic"

// Stats owns the process-wide catalog counters: how many categories have
// been constructed and how many product additions categories have
// performed, across all categories, over the lifetime of the process.
//
// The counters are deliberately modeled as state owned by a single registry
// object with explicit read and reset operations, rather than as loose
// package variables. They are backed by atomics because they are
// incremented from multiple call sites (category construction and ad-hoc
// AddProduct calls) and Go callers may reach those call sites from multiple
// goroutines.
//
// The counters never reset automatically; Reset is an explicit external
// action, typically test setup.
type Stats struct {
	categories atomic.Int64
	products   atomic.Int64
}

// DefaultStats is the process-wide counter registry used by NewCategory and
// Category.AddProduct. Tests reset it explicitly before asserting on
// counter values.
var DefaultStats = &Stats{}

// CategoryCount returns the number of categories constructed since the last
// Reset (or process start).
func (s *Stats) CategoryCount() int {
	return int(s.categories.Load())
}

// ProductCount returns the number of successful product additions performed
// across all categories since the last Reset (or process start). Both
// additions at category construction and later AddProduct calls count;
// MergeProduct ingestion does not.
func (s *Stats) ProductCount() int {
	return int(s.products.Load())
}

// Reset sets both counters back to zero.
//
// Reset exists for explicit external control, typically test setup; nothing
// in the catalog resets the counters on its own.
func (s *Stats) Reset() {
	s.categories.Store(0)
	s.products.Store(0)
}

// addCategory records one category construction.
func (s *Stats) addCategory() {
	s.categories.Add(1)
}

// addProduct records one successful product addition.
func (s *Stats) addProduct() {
	s.products.Add(1)
}
