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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered during the batch validation process. This function provides a
// convenient way to validate multiple model instances in a single operation
// while collecting comprehensive error information about all validation
// failures rather than stopping at the first error.
//
// The function iterates through each model in the provided slice and invokes
// its Validate method. When a model fails validation, the error is wrapped
// with contextual information including the model's position in the slice
// (zero-indexed) and its type name obtained from TypeName. This allows
// callers to identify exactly which models failed validation and why.
//
// If one or more models fail validation, ValidateAll returns a single
// combined error that aggregates all individual validation failures using
// rxmerr.Collector. If all models pass validation, the function returns nil.
// The function never panics and always processes the entire slice even when
// early elements fail validation, ensuring complete error reporting.
//
// Empty slices are considered valid and return nil.
//
// Example usage for batch validation of catalog entities:
//
//	products := []*catalog.Product{p1, p2, p3}
//	if err := model.ValidateAll(products); err != nil {
//	    log.Error("validation failed", "error", err)
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only non-zero models by removing
// all instances where IsZero returns true. This function provides a
// convenient way to clean slices of empty or uninitialized model values
// before processing or serialization.
//
// The returned slice is always a new allocation and never shares backing
// array storage with the input slice. If all models in the input are zero,
// the function returns an empty slice (not nil). If the input slice is empty
// or nil, the function returns an empty non-nil slice.
//
// The function does not validate models; it only checks for zero values
// using IsZero.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails, providing a
// convenient way to assert model validity in contexts where invalid models
// represent programming errors rather than recoverable runtime errors.
//
// If validation succeeds, MustValidate returns the model unchanged, allowing
// method chaining and inline initialization patterns. If validation fails,
// the function panics with a formatted message that includes the model's
// type name and the validation error.
//
// Callers MUST only use MustValidate in contexts where panic is an
// acceptable control flow mechanism, such as test setup functions or package
// initialization code. Callers MUST NOT use MustValidate in library code
// paths invoked by consumers at runtime.
//
// Example usage in test setup where invalid data indicates a test bug:
//
//	p := model.MustValidate(someProduct)
//	// Use p knowing it's valid
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default but can optionally include full details when explicitly
// requested.
//
// When the unsafe parameter is false (the recommended value for production
// logging), SafeString invokes the model's Redacted method. When the unsafe
// parameter is true, SafeString invokes the model's String method, which MAY
// include fields not meant for shared logs. Callers MUST only set unsafe to
// true in controlled debugging scenarios.
//
// Example usage showing safe production logging and unsafe debug logging:
//
//	log.Info("processing", "model", model.SafeString(m, false))  // Redacted()
//	log.Debug("details", "model", model.SafeString(m, true))     // String()
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating that the model is
// in a consistent and valid state. This function provides a safe convenience
// wrapper around json.Marshal that enforces the contract that only valid
// models can be serialized.
//
// The function first invokes the model's Validate method. If validation
// fails, ToJSON returns an error that wraps the validation failure with
// context identifying the model type, and no marshaling is attempted. If
// validation succeeds, ToJSON invokes json.Marshal, which in turn calls the
// model's MarshalJSON method if implemented.
//
// Example usage:
//
//	data, err := model.ToJSON(product)
//	if err != nil {
//	    return err
//	}
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating that the model is
// in a consistent and valid state. This function provides a safe convenience
// wrapper around yaml.Marshal that enforces the contract that only valid
// models can be serialized into catalog fixture files or other YAML
// documents.
//
// The function first invokes the model's Validate method. If validation
// fails, ToYAML returns an error that wraps the validation failure with
// context identifying the model type, and no marshaling is attempted. If
// validation succeeds, ToYAML invokes yaml.Marshal, which in turn calls the
// model's MarshalYAML method if implemented.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result to ensure
// that the unmarshaled data represents a consistent and valid model
// instance. This function provides a safe convenience wrapper around
// json.Unmarshal that rejects malformed or invalid data at the boundary
// rather than letting it propagate into catalog logic.
//
// Callers MUST provide a pointer to a model variable that will receive the
// unmarshaled result. If FromJSON returns an error, the model variable's
// state is undefined and MUST NOT be used.
//
// Example usage:
//
//	var p catalog.Product
//	if err := model.FromJSON(data, &p); err != nil {
//	    return err
//	}
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result to ensure
// that the unmarshaled data represents a consistent and valid model
// instance. This function provides a safe convenience wrapper around
// yaml.Unmarshal for loading catalog fixtures and other YAML documents from
// external sources.
//
// Callers MUST provide a pointer to a model variable that will receive the
// unmarshaled result. If FromYAML returns an error, the model variable's
// state is undefined and MUST NOT be used.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a deep copy of a model by serializing it to JSON and then
// deserializing back into a new instance, ensuring complete independence
// between the original and the copy.
//
// The JSON round-trip approach guarantees a deep copy because JSON
// serialization handles nested structures, slices, and pointer indirection
// by value rather than by reference. The cloned model is completely
// independent of the original.
//
// For performance-critical code paths that clone models frequently,
// implementations SHOULD provide a custom copy via the Cloneable[T]
// interface instead. Callers MUST check the returned error before using the
// cloned model; on error, the returned model is a zero value that MUST NOT
// be used.
func Clone[T Model](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal compares two models for equality by serializing both to JSON and
// comparing their JSON representations byte-for-byte.
//
// If either marshaling operation fails (which typically indicates an invalid
// model), Equal returns false without attempting to compare partial results.
// This fail-safe behavior ensures that comparison errors are not mistaken
// for inequality.
//
// The JSON-based comparison only covers data that appears in the JSON
// output; types with unexported state MUST expose it via their MarshalJSON
// implementation for Equal to account for it. For performance-critical code
// paths, implementations SHOULD provide a custom comparison via the
// Comparable[T] interface instead.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
