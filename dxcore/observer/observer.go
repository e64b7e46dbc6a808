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

// Package observer defines the notification contract used by the dxcat
// catalog for construction-time and diagnostic messages.
//
// Every product construction emits exactly one notification carrying the
// entity's debug representation, and rejected price writes emit a diagnostic
// through the same channel. The catalog core has no dependency on how these
// strings are consumed; consumers choose a sink by installing a Notifier.
//
// The package provides four sinks:
//
//   - Nop, which discards all notifications (the library default),
//   - NotifierFunc, which adapts an ordinary function (test spies),
//   - NewWriterNotifier, which writes newline-terminated messages to an
//     io.Writer (the console behavior of simple tooling),
//   - NewZapNotifier, which forwards messages to a zap logger at Info level
//     for structured production logging.
//
// Notifications are synchronous: Notify is invoked on the caller's
// goroutine before the triggering operation returns. Sinks MUST therefore
// be fast and MUST NOT block on slow I/O in latency-sensitive callers.
package observer

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Notifier is the sink contract for catalog notifications.
//
// Notify receives a single human-readable message: either the debug
// representation of a newly constructed product, or a diagnostic such as a
// rejected price write. Implementations MUST tolerate being called from the
// construction path of an entity that subsequently fails validation; the
// notification is emitted before the fault is raised and fires exactly once
// per attempt.
//
// Implementations MUST NOT panic. A Notifier that is shared across
// goroutines MUST be safe for concurrent use.
type Notifier interface {
	// Notify delivers one notification message to the sink.
	Notify(message string)
}

// NotifierFunc adapts an ordinary function to the Notifier interface.
//
// This is the idiomatic way to install a test spy or a one-off sink:
//
//	var got []string
//	n := observer.NotifierFunc(func(msg string) { got = append(got, msg) })
type NotifierFunc func(message string)

// Notify implements Notifier by invoking the function itself.
func (f NotifierFunc) Notify(message string) {
	f(message)
}

// Nop returns a Notifier that discards all notifications.
//
// This is the default sink of the catalog package: a library MUST NOT write
// to the process's standard streams unless explicitly asked to. Callers that
// want console output install a writer notifier instead.
func Nop() Notifier {
	return NotifierFunc(func(string) {})
}

// writerNotifier writes newline-terminated messages to an io.Writer.
type writerNotifier struct {
	w io.Writer
}

// NewWriterNotifier returns a Notifier that writes each message to w
// followed by a single newline.
//
// This sink reproduces the console behavior of simple catalog tooling:
//
//	catalog.SetNotifier(observer.NewWriterNotifier(os.Stdout))
//
// Write errors are ignored; notifications are a best-effort side channel
// and MUST NOT fail the operation that triggered them. The returned
// Notifier is safe for concurrent use exactly when w is.
func NewWriterNotifier(w io.Writer) Notifier {
	return &writerNotifier{w: w}
}

// Notify implements Notifier by writing the message and a trailing newline.
func (n *writerNotifier) Notify(message string) {
	fmt.Fprintln(n.w, message)
}

// zapNotifier forwards messages to a zap logger.
type zapNotifier struct {
	log *zap.Logger
}

// NewZapNotifier returns a Notifier that forwards each message to the given
// zap logger at Info level under the "message" field.
//
// This is the sink to install in services that already carry a structured
// logging stack:
//
//	catalog.SetNotifier(observer.NewZapNotifier(logger))
//
// A nil logger is replaced with zap.NewNop(), so the returned Notifier is
// always safe to call. The returned Notifier is safe for concurrent use.
func NewZapNotifier(log *zap.Logger) Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &zapNotifier{log: log}
}

// Notify implements Notifier by logging the message at Info level.
func (n *zapNotifier) Notify(message string) {
	n.log.Info("catalog notification", zap.String("message", message))
}
