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

// Package model defines the core contracts and interfaces that all dxcat
// domain model types MUST implement to ensure consistency, type safety, and
// proper behavior across the entire system.
//
// Every domain type representing catalog entities (such as Product, Category,
// Kind) SHOULD implement the Model interface or its constituent parts
// (Validatable, Serializable, Loggable, Identifiable, ZeroCheckable). These
// interfaces establish a common contract for validation, serialization,
// logging, and identity that enables generic operations and guarantees safety
// at compile time.
//
// The contracts defined in this package prioritize data integrity and
// debuggability. Validation ensures that invalid states cannot be constructed
// or serialized. Serialization provides round-trip guarantees for catalog
// fixtures and API payloads. Loggable distinguishes a full debug rendering
// from a representation that is safe for production logs. Identifiable
// enables reflection and structured logging. ZeroCheckable supports optional
// field detection.
//
// Unless explicitly documented otherwise, implementations are not thread-safe
// for concurrent mutation. Most model types are designed as value types,
// making them naturally safe for concurrent read access. Callers MUST
// synchronize any concurrent writes to mutable instances.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, ToJSON, ToYAML,
// Clone, and Equal. These helpers rely on the Model contract and will fail
// at compile time if applied to types that do not implement Model.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxcat domain types. Any type implementing Model gains automatic support
// for validation, serialization to JSON and YAML, safe logging, type
// identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers both safe (redacted) and full
// string representations; Identifiable supplies a canonical type name; and
// ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are generally treated as value types. Methods defined on
// Model SHOULD NOT mutate the receiver unless explicitly documented (setter
// methods and unmarshal methods being the documented exceptions). Concurrent
// reads are safe; concurrent writes require external synchronization.
//
// Example implementation:
//
//	type MyModel struct {
//	    Name string
//	}
//
//	func (m MyModel) Validate() error {
//	    if m.Name == "" {
//	        return errors.New("name required")
//	    }
//	    return nil
//	}
//
//	func (m MyModel) TypeName() string { return "MyModel" }
//	func (m MyModel) IsZero() bool { return m.Name == "" }
//	func (m MyModel) Redacted() string { return "MyModel{...}" }
//	func (m MyModel) String() string { return "MyModel{Name:" + m.Name + "}" }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*MyModel)(nil)  // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state
// to ensure data integrity. Every model type MUST implement Validate to
// verify that all invariants hold and that the instance is in a consistent
// state suitable for use in catalog logic or serialization.
//
// The Validate method MUST check all constrained fields (for example, a
// Product's price MUST be strictly positive and its quantity MUST be
// positive), verify cross-field consistency (for example, a variant payload
// MUST match the entity's declared kind), recursively validate any nested
// objects by calling their Validate methods, and return nil if and only if
// the instance is fully valid. When validation fails, the returned error
// MUST describe what is invalid in a way that helps callers diagnose and fix
// the problem. Generic messages such as "validation failed" are discouraged;
// prefer specific messages like "Product.price must be positive".
//
// Validate MUST be fast, deterministic, and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects such as logging or emitting
// notifications, and MUST NOT depend on external mutable state.
//
// Callers SHOULD invoke Validate at critical boundaries: immediately after
// unmarshaling data from JSON or YAML, after constructing instances from
// user input, and at any API boundary where data crosses trust or ownership
// boundaries.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects. It MUST be safe to call concurrently with other reads
	// but not with concurrent writes.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML formats. All model types MUST support both
// formats to enable catalog fixture files (typically YAML), API request and
// response bodies (typically JSON), and debugging output.
//
// Implementations MUST call Validate before marshaling to ensure that only
// valid instances are serialized. If the instance fails validation, the
// marshal method MUST return the validation error rather than serializing
// the invalid state. Similarly, implementations MUST call Validate after
// unmarshaling; if the deserialized instance is invalid, the unmarshal
// method MUST return the validation error and callers MUST NOT use the
// receiver.
//
// A value serialized to JSON and then deserialized MUST equal the original
// value, and the same MUST hold for YAML.
//
// Marshal methods are safe for concurrent use on immutable receivers.
// Unmarshal methods mutate the receiver and are not safe for concurrent use;
// callers MUST ensure exclusive access to the receiver during unmarshaling.
//
// Implementations SHOULD use the "type alias" pattern (or a dedicated shadow
// struct when unexported fields are involved) to avoid infinite recursion:
// define a local alias of the model type, cast the receiver to the alias,
// and delegate to the standard library's marshal or unmarshal function.
//
// Example:
//
//	func (m MyModel) MarshalJSON() ([]byte, error) {
//	    if err := m.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
//	    }
//	    type alias MyModel
//	    return json.Marshal((alias)(m))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logging and debugging. All model types MUST implement
// Loggable to give logging code a deliberate choice between a full debug
// rendering and a representation vetted for production logs.
//
// The Redacted method returns a string representation suitable for
// production logging. It MUST hide or mask sensitive fields while preserving
// enough information for debugging. Catalog entities carry little sensitive
// data, but descriptions MAY contain supplier or pricing notes that SHOULD
// NOT appear verbatim in shared logs; Redacted implementations therefore
// typically omit free-text description fields and keep identifying fields
// (name, kind, counts). The redacted representation SHOULD include the type
// name to help correlate log entries.
//
// Redacted MUST be fast, MUST NOT perform I/O, MUST be safe to call
// concurrently, and MUST NOT mutate the receiver.
//
// The String method returns a complete human-readable representation that
// MAY include every field. It is intended for development, debugging, test
// assertions, and the creation-notification channel, where full visibility
// is expected. Production logging SHOULD prefer Redacted.
//
// If a type contains nested objects that are also Loggable, Redacted SHOULD
// call Redacted on those nested objects to ensure consistent redaction
// throughout the object graph.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging in
	// production. This method MUST omit or mask fields not meant for shared
	// logs while preserving enough information for debugging.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	Redacted() string

	// String returns a complete human-readable representation of the
	// instance. It MAY include every field and SHOULD NOT be used for
	// production logging; use Redacted instead.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name. All model types MUST provide a type name to
// enable debugging, logging, and error reporting.
//
// The type name returned by TypeName MUST be constant for a given type:
// all instances of the same type MUST return the same name. The name MUST
// be unique within the dxcat domain, SHOULD follow CamelCase convention
// (for example, "Product", "Category", "Kind"), and MUST NOT include a
// package prefix. The name identifies the type, not the instance, so it
// MUST NOT vary based on the instance's field values.
//
// TypeName MUST be fast and MUST NOT allocate memory. It SHOULD typically
// return a string constant. It MUST NOT have side effects and MUST be safe
// to call concurrently.
type Identifiable interface {
	// TypeName returns the canonical name of this model type. The name MUST
	// be constant for the type, unique within dxcat, in CamelCase, and
	// without a package prefix.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently. It SHOULD return a string
	// constant.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state. This enables optional field detection,
// default value handling, and conditional logic based on whether an instance
// contains meaningful data.
//
// An instance is considered zero if all of its fields are at their type's
// zero value and no meaningful data is present. For example, a Product with
// an empty Name, zero price and zero Quantity is zero. Whether the zero
// value is also a valid value is type-specific: the zero Kind is the valid
// base kind, whereas a zero Product fails validation.
//
// IsZero MUST return true if and only if the instance is semantically
// empty. It MUST be fast, MUST NOT mutate the receiver, MUST NOT have side
// effects, and MUST be safe to call concurrently.
type ZeroCheckable interface {
	// IsZero reports whether the instance holds no meaningful data.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	IsZero() bool
}

// Cloneable defines an optional contract for types that provide a custom
// deep-copy implementation. Types that do not implement Cloneable can still
// be cloned with the generic Clone helper, which round-trips through JSON at
// some performance cost.
//
// Implementations MUST return an instance that is completely independent of
// the receiver: modifying the clone MUST NOT affect the original and vice
// versa, including any nested slices, maps, or pointers.
type Cloneable[T any] interface {
	// CloneValue returns a deep copy of the receiver.
	CloneValue() T
}

// Comparable defines an optional contract for types that provide a custom
// equality implementation. Types that do not implement Comparable can still
// be compared with the generic Equal helper, which compares JSON
// representations at some performance cost.
//
// Implementations MUST be reflexive, symmetric, and transitive, and MUST NOT
// mutate either operand.
type Comparable[T any] interface {
	// EqualValue reports whether the receiver and other represent the same
	// data.
	EqualValue(other T) bool
}
