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

import "dirpx.dev/dxcat/dxcore/observer"

// creationNotifier is the process-wide sink for construction notifications
// and price-rejection diagnostics. It defaults to a no-op sink so that
// importing the library never writes to the process's standard streams.
var creationNotifier = observer.Nop()

// SetNotifier installs the process-wide notification sink used by product
// construction and the price setter.
//
// Every product construction emits exactly one notification carrying the
// product's debug representation (even when construction subsequently fails
// with an invalid quantity), and every rejected price write emits the
// PriceRejectedNotice diagnostic. Both go through the sink installed here.
//
// Passing nil restores the default no-op sink. Typical installations:
//
//	catalog.SetNotifier(observer.NewWriterNotifier(os.Stdout)) // console
//	catalog.SetNotifier(observer.NewZapNotifier(logger))       // structured
//
// SetNotifier is intended for process initialization and test setup. It is
// not synchronized with catalog operations; callers MUST NOT invoke it
// concurrently with product construction or price writes.
func SetNotifier(n observer.Notifier) {
	if n == nil {
		n = observer.Nop()
	}
	creationNotifier = n
}

// Notifier returns the currently installed notification sink.
//
// This accessor exists so that collaborating code can route its own
// messages through the same channel as the catalog's diagnostics, as the
// price setter does.
func Notifier() observer.Notifier {
	return creationNotifier
}
