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

import (
	"encoding/json"

	"dirpx.dev/dxcat/dxcore/errors"
	"dirpx.dev/dxcat/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Kind identifies the concrete kind of a Product.
//
// The catalog models specialized product types as a single concrete Product
// carrying a closed set of kind tags rather than a type hierarchy. Kind is
// that tag: it selects which extension payload (if any) a Product carries
// and participates in the combination rules, where only products of the
// exact same kind can be combined.
//
// The set of kinds is closed by design. Adding a new specialized product
// type means adding a constant here, its extension payload struct, and a
// constructor; nothing else in the catalog changes.
type Kind int

const (
	// KindProduct identifies a base catalog product with no extension
	// payload.
	//
	// This is the zero value of Kind and is a valid kind: a Product
	// constructed via NewProduct carries KindProduct implicitly. Products
	// of this kind MUST NOT carry a Smartphone or LawnGrass payload.
	KindProduct Kind = iota

	// KindSmartphone identifies a smartphone product.
	//
	// Products of this kind carry a SmartphoneSpec extension payload with
	// performance, model, memory and color attributes. The payload is
	// purely descriptive; it adds no invariants beyond the base product.
	KindSmartphone

	// KindLawnGrass identifies a lawn grass product.
	//
	// Products of this kind carry a LawnGrassSpec extension payload with
	// origin country, germination period and color attributes. The payload
	// is purely descriptive; it adds no invariants beyond the base product.
	KindLawnGrass
)

// String constants for Kind values used in serialization, parsing, and
// human-facing output.
//
// These names form the stable, external representation of Kind and MAY be
// persisted in fixture files and JSON/YAML documents. Changing them is a
// breaking change for any consumer that relies on textual data.
const (
	KindProductStr    = "product"
	KindSmartphoneStr = "smartphone"
	KindLawnGrassStr  = "lawn_grass"
)

// ParseKind converts a textual representation into a Kind value.
//
// The function accepts a small vocabulary of strings and maps them to the
// corresponding constants:
//
//	"product",    "Product",    "PRODUCT"    -> KindProduct
//	"smartphone", "Smartphone", "SMARTPHONE" -> KindSmartphone
//	"lawn_grass", "LawnGrass",  "LAWN_GRASS" -> KindLawnGrass
//
// Any other input is treated as invalid, and ParseKind returns a
// *ParseError. The returned error includes the original string value, which
// can be used in diagnostics or surfaced back to the user.
func ParseKind(s string) (Kind, error) {
	switch s {
	case KindProductStr, "Product", "PRODUCT":
		return KindProduct, nil
	case KindSmartphoneStr, "Smartphone", "SMARTPHONE":
		return KindSmartphone, nil
	case KindLawnGrassStr, "LawnGrass", "LAWN_GRASS":
		return KindLawnGrass, nil
	default:
		return KindProduct, &errors.ParseError{Type: "Kind", Value: s}
	}
}

// String returns the canonical string representation of the Kind value.
//
// The returned value is always lowercase and suitable for use in fixture
// files, logs, and API responses. The mapping is:
//
//	KindProduct    -> "product"
//	KindSmartphone -> "smartphone"
//	KindLawnGrass  -> "lawn_grass"
//
// If the Kind value is not one of the defined constants, String returns
// "unknown". Callers that need to ensure only valid values are emitted
// SHOULD call Valid before invoking String, or treat "unknown" as an
// indicator of a programming error.
func (k Kind) String() string {
	switch k {
	case KindProduct:
		return KindProductStr
	case KindSmartphone:
		return KindSmartphoneStr
	case KindLawnGrass:
		return KindLawnGrassStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Kind value is one of the defined constants.
//
// This method is primarily useful when Kind values may have been created via
// deserialization, numeric casts, or untrusted input. Code that relies on
// Kind being well-formed SHOULD call Valid before using the value in logic
// that assumes a known semantic meaning.
func (k Kind) Valid() bool {
	return k == KindProduct || k == KindSmartphone || k == KindLawnGrass
}

// TypeName returns "Kind", the name of the type for logging and debugging.
//
// This method implements part of the model.Model interface, allowing Kind
// values to be used consistently with other model types in error messages,
// logs, and reflection-based code.
func (k Kind) TypeName() string {
	return "Kind"
}

// Redacted returns the same string representation as String().
//
// Kind values contain no sensitive information (they are simply enum
// constants), so the redacted form is identical to the regular string form.
// This method implements part of the model.Model interface.
func (k Kind) Redacted() string {
	return k.String()
}

// IsZero reports whether the Kind has its zero value.
//
// For Kind (an enum type), the zero value is KindProduct (constant 0).
// This method implements part of the model.Model interface.
//
// Note: The zero value (KindProduct) is a valid Kind, so IsZero returning
// true does not indicate an error condition.
func (k Kind) IsZero() bool {
	return k == KindProduct
}

// Equal reports whether this Kind is equal to another value.
//
// The method accepts any type for other and uses type assertion to check if
// it is a Kind or *Kind. Two Kind values are equal if they represent the
// same enum constant.
func (k Kind) Equal(other any) bool {
	switch v := other.(type) {
	case Kind:
		return k == v
	case *Kind:
		if v == nil {
			return false
		}
		return k == *v
	default:
		return false
	}
}

// Validate checks whether the Kind value is one of the defined constants.
//
// This method returns nil if the Kind is valid (KindProduct, KindSmartphone,
// or KindLawnGrass), and returns a *ValidationError if the value is outside
// the valid range.
//
// This method implements part of the model.Model interface and is typically
// called after deserialization or numeric casts to ensure the value is
// well-formed before using it in combination rules.
func (k Kind) Validate() error {
	if !k.Valid() {
		return &errors.ValidationError{
			Type:   "Kind",
			Field:  "",
			Reason: "invalid Kind value",
			Value:  int(k),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Kind.
//
// A valid Kind is serialized as its lowercase string representation
// (for example, "smartphone"). If the value is not valid, MarshalJSON
// returns a *MarshalError and does not produce any JSON output.
//
// This behavior ensures that invalid Kind values do not silently appear in
// JSON payloads and instead surface as explicit failures during encoding.
func (k Kind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Kind.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: "product", "smartphone", "lawn_grass" (case variants
//     accepted via ParseKind).
//
//   - Number: 0 (KindProduct), 1 (KindSmartphone), 2 (KindLawnGrass).
//
// String input is the preferred, stable representation. Numeric input is
// accepted for compatibility with data that stores enum values as integers.
// If the input cannot be parsed as either string or number, or if it
// resolves to an invalid Kind, UnmarshalJSON returns an *UnmarshalError
// describing the failure.
func (k *Kind) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseKind(s)
		if err != nil {
			return err
		}
		*k = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: err.Error()}
	}
	*k = Kind(i)
	if !k.Valid() {
		return &errors.UnmarshalError{Type: "Kind", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Kind.
//
// A valid Kind is serialized as its canonical string representation
// (for example, "lawn_grass"). If the value is not valid, MarshalYAML
// returns a *MarshalError.
func (k Kind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Kind.
//
// The method accepts string representations of Kind values (for example,
// "smartphone") and resolves them via ParseKind. On failure, it returns the
// underlying *ParseError.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Kind", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Kind.
//
// Textual form is the same lowercase string representation as used by
// String() (for example, "smartphone"). This encoding is commonly used by
// YAML and other text-based formats. If the Kind value is invalid,
// MarshalText returns a *MarshalError.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "Kind", Value: int(k)}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Kind.
//
// The method accepts the same textual vocabulary as ParseKind, using it as
// the single source of truth for mapping strings to Kind values. On
// failure, UnmarshalText returns the underlying *ParseError.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Compile-time check that Kind implements model.Model interface.
var _ model.Model = (*Kind)(nil)
