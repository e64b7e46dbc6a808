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

// Package errors provides reusable error types for the dxcat domain model.
//
// This package defines the common error types used across the dxcat packages
// when constructing, validating, combining, ingesting and serializing catalog
// entities. By centralizing these types, the package eliminates code
// duplication and provides a consistent error handling story across the
// entire dxcat surface.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from construction / validation / ingestion code,
//   - easy to recognize via type assertions and errors.As,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into an enum-like type (such as Kind)
//     fails. Use this when implementing ParseXxx helpers that accept textual
//     input (for example, from configuration files or CLI flags).
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//     Use this in MarshalJSON / MarshalText implementations to reject values
//     that do not correspond to known constants.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails due to
//     invalid input, parse errors or constraint violations.
//
//   - ValidationError
//     Returned when validation of a model type fails.
//     Use this in Validate() methods to report constraint violations,
//     missing required fields, or invalid field values.
//
//   - InvalidQuantityError
//     Returned when a product is constructed with a non-positive quantity.
//     Construction fails and no partial product escapes, although the
//     creation notification has already been emitted by that point.
//
//   - InvalidArgumentError
//     Returned when an aggregate operation receives an argument it cannot
//     accept, such as Category.AddProduct being handed a nil product.
//
//   - IncompatibleOperandsError
//     Returned by the product addition operators when an operand is not a
//     product at all (for example, a string or an unrelated struct).
//
//   - TypeMismatchError
//     Returned by the product addition operators when both operands are
//     products but of different concrete kinds. This is deliberately
//     distinct from IncompatibleOperandsError so that callers can tell
//     "not a product" apart from "a different kind of product".
//
//   - MissingFieldError
//     Returned at the ingestion boundary when raw product data lacks a
//     required key.
package errors

import (
	"fmt"
	"strconv"
)

// ParseError is returned when parsing a string into a strongly typed
// enum-like value fails.
//
// Type identifies the logical type being parsed (for example, "Kind"), and
// Value contains the exact string that could not be interpreted. Callers MAY
// pattern-match on Type to provide type-specific guidance to users.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Kind").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxcat: invalid {Type} value: {Value}"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	return "dxcat: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it
// being outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example, "Kind"),
// and Value contains the underlying numeric value that was deemed invalid.
//
// This error is primarily used as a guardrail: it prevents invalid enum-like
// values from being silently emitted into JSON, YAML or other serialized
// forms. In most cases a MarshalError indicates a programming error (for
// example, a numeric cast that was never validated).
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxcat: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxcat: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated (for example, "Kind" or
// "Product"), Data contains the original raw payload (typically a JSON
// fragment), and Reason provides a human-readable description of what went
// wrong. Callers MAY wrap UnmarshalError with additional context when
// propagating it further up the stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on privacy
	// and size considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxcat: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose logs; callers can log it separately when
// appropriate.
func (e *UnmarshalError) Error() string {
	return "dxcat: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Product", "Category"), Field optionally identifies which field failed
// validation, Reason provides a human-readable explanation of the failure,
// and Value optionally contains the problematic value.
//
// This error is used by Validate() methods in model types to report
// constraint violations, missing required fields, or invalid field values.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxcat: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxcat: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxcat: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxcat: invalid " + e.Type + ": " + e.Reason
}

// InvalidQuantityError is returned when a product is constructed with a
// quantity that is zero or negative.
//
// Quantity is the rejected value. The failure is fatal to that construction
// attempt: no partially initialized product is returned to the caller. Note
// that the creation notification contract requires the notification to have
// fired before this error is returned, so observers will still have seen the
// would-be product's representation.
type InvalidQuantityError struct {
	// Quantity is the non-positive quantity that was rejected.
	Quantity int
}

// Error implements the error interface for InvalidQuantityError.
//
// The error message format is:
//
//	"dxcat: invalid Product quantity: {Quantity} (must be positive)"
func (e *InvalidQuantityError) Error() string {
	return "dxcat: invalid Product quantity: " + strconv.Itoa(e.Quantity) + " (must be positive)"
}

// InvalidArgumentError is returned when an operation receives an argument it
// cannot accept, such as Category.AddProduct being handed a nil product.
//
// Op names the operation that rejected the argument (for example,
// "Category.AddProduct") and Reason explains why the argument was rejected.
type InvalidArgumentError struct {
	// Op is the name of the operation that rejected the argument.
	Op string

	// Reason is a short, human-readable explanation of the rejection.
	Reason string
}

// Error implements the error interface for InvalidArgumentError.
//
// The error message format is:
//
//	"dxcat: {Op}: invalid argument: {Reason}"
func (e *InvalidArgumentError) Error() string {
	return "dxcat: " + e.Op + ": invalid argument: " + e.Reason
}

// IncompatibleOperandsError is returned by the product addition operators
// when an operand is not a product at all.
//
// Got carries the offending value so that its dynamic type can be reported.
// This error is distinct from TypeMismatchError, which covers the case where
// both operands are products but of different concrete kinds.
type IncompatibleOperandsError struct {
	// Got is the operand that is not a product.
	Got any
}

// Error implements the error interface for IncompatibleOperandsError.
//
// The error message format is:
//
//	"dxcat: incompatible operand: {dynamic type of Got}"
func (e *IncompatibleOperandsError) Error() string {
	return fmt.Sprintf("dxcat: incompatible operand: %T", e.Got)
}

// TypeMismatchError is returned by the product addition operators when both
// operands are products but their concrete kinds differ.
//
// Left and Right carry the textual kind names of the two operands in operand
// order. Products of different kinds are never combinable, including a base
// product with any variant and two distinct variants.
type TypeMismatchError struct {
	// Left is the kind name of the left operand.
	Left string

	// Right is the kind name of the right operand.
	Right string
}

// Error implements the error interface for TypeMismatchError.
//
// The error message format is:
//
//	"dxcat: cannot combine products of different kinds: {Left} and {Right}"
func (e *TypeMismatchError) Error() string {
	return "dxcat: cannot combine products of different kinds: " + e.Left + " and " + e.Right
}

// MissingFieldError is returned at the ingestion boundary when raw product
// data lacks a required key.
//
// Field names the missing key (for example, "price"). Raw-data ingestion
// requires the keys "name", "description", "price" and "quantity"; presence
// of these keys is checked before any product construction is attempted.
type MissingFieldError struct {
	// Field is the name of the required key that was absent.
	Field string
}

// Error implements the error interface for MissingFieldError.
//
// The error message format is:
//
//	"dxcat: missing required field: {Field}"
func (e *MissingFieldError) Error() string {
	return "dxcat: missing required field: " + e.Field
}
