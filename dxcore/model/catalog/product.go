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

// Package catalog implements the dxcat product catalog domain model:
// products with a closed set of specialized kinds, the merge-or-create
// ingestion operation, and the Category aggregate with its derived
// statistics and process-wide counters.
//
// The model is deliberately small and in-memory. A Product is identified
// for merge purposes solely by exact, case-sensitive equality of its Name;
// no separate identifier field exists. Categories exclusively own their
// product sequences; sharing one *Product across two categories is
// unsupported and the resulting behavior is undefined.
//
// Construction of any product notifies the process-wide creation sink (see
// SetNotifier) with the product's debug representation before any
// validation fault is raised. Rejected price writes emit a diagnostic
// through the same sink; they are not errors.
//
// Unless documented otherwise, the types in this package are not safe for
// concurrent mutation. The process-wide counters (Stats) are the one
// exception: they are backed by atomics because they are incremented from
// multiple call sites.
package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"dirpx.dev/dxcat/dxcore/errors"
	"dirpx.dev/dxcat/dxcore/model"
	"gopkg.in/yaml.v3"
)

// PriceRejectedNotice is the diagnostic emitted through the notification
// sink when a price write is rejected.
//
// The text is part of the display contract inherited from the catalog's
// console tooling and MUST be preserved exactly, including language and
// punctuation.
const PriceRejectedNotice = "Цена не должна быть нулевая или отрицательная"

// Product represents a single catalog item.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection.
//
// A Product combines four base attributes shared by every kind:
//   - Name: the item's name, also its merge identity (exact match)
//   - Description: free-text description
//   - price: the unit price in rubles, guarded by SetPrice
//   - Quantity: units in stock
//
// plus a Kind tag and at most one kind-specific extension payload
// (Smartphone or LawnGrass). Extension payloads are purely descriptive and
// add no invariants beyond the base product.
//
// The price field is unexported so that every write goes through SetPrice,
// which enforces the "strictly positive" invariant by rejecting
// non-positive values as a silent clamp rather than an error. Serialization
// exposes the price under the "price" key via a shadow struct.
//
// The zero value of Product is semantically empty and fails validation;
// construct products with NewProduct, NewSmartphone, NewLawnGrass or
// MergeProduct.
type Product struct {
	// Name is the product's name.
	//
	// Name is the product's merge identity: MergeProduct considers two
	// products "the same" if and only if their names are exactly equal
	// (case-sensitive). Empty names are permitted; they simply never match
	// a non-empty incoming name.
	Name string

	// Description is the free-text description of the product.
	//
	// Description carries no invariants and MAY be empty. It is omitted
	// from Redacted output because free-text fields can carry supplier or
	// pricing notes not meant for shared logs.
	Description string

	// price is the unit price in rubles. It MUST be strictly positive for
	// a valid product; writes go through SetPrice, which rejects
	// non-positive values and keeps the previous value.
	price float64

	// Quantity is the number of units in stock.
	//
	// Quantity MUST be positive at construction. Merging an ingested
	// duplicate increments it; no other operation changes it.
	Quantity int

	// Kind is the product's concrete kind tag. The zero value KindProduct
	// denotes a base product with no extension payload.
	Kind Kind

	// Smartphone is the extension payload carried when Kind is
	// KindSmartphone, and nil otherwise.
	Smartphone *SmartphoneSpec

	// LawnGrass is the extension payload carried when Kind is
	// KindLawnGrass, and nil otherwise.
	LawnGrass *LawnGrassSpec
}

// Compile-time check that Product implements model.Model.
var _ model.Model = (*Product)(nil)

// NewProduct creates a base catalog product and notifies the process-wide
// creation sink.
//
// The constructor performs its steps in a fixed, contractual order:
//
//  1. The instance is assembled. A non-positive price is rejected by the
//     same guarded path as SetPrice: the price stays at zero and one
//     PriceRejectedNotice diagnostic is emitted.
//  2. The debug representation of the instance is formatted and delivered
//     to the creation sink. This notification fires exactly once per
//     construction attempt, including attempts that fail in step 3.
//  3. The quantity invariant is enforced: if quantity <= 0, NewProduct
//     returns nil and an *InvalidQuantityError, and no product escapes.
//
// A product constructed with a rejected price is returned to the caller
// (price rejection is a clamp, not an error) but will fail Validate until a
// positive price is set.
//
// Example usage:
//
//	p, err := catalog.NewProduct("Телефон", "Смартфон", 20000.0, 5)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Display()) // Output: Телефон, 20000 руб. Остаток: 5 шт.
func NewProduct(name string, description string, price float64, quantity int) (*Product, error) {
	return construct(Product{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Kind:        KindProduct,
	}, price)
}

// construct is the single construction path shared by every kind.
//
// The ordering contract lives here: price is applied through the guarded
// setter, the debug representation is formatted, the creation notification
// is emitted, and only then is the quantity fault raised.
func construct(p Product, price float64) (*Product, error) {
	p.applyPrice(price)

	repr := p.String()
	creationNotifier.Notify(repr)

	if p.Quantity <= 0 {
		return nil, &errors.InvalidQuantityError{Quantity: p.Quantity}
	}
	return &p, nil
}

// applyPrice is the guarded price write shared by construction and
// SetPrice. A non-positive value is rejected: the stored price is left
// unchanged and one PriceRejectedNotice diagnostic is emitted through the
// notification sink.
func (p *Product) applyPrice(v float64) {
	if v <= 0 {
		creationNotifier.Notify(PriceRejectedNotice)
		return
	}
	p.price = v
}

// Price returns the product's current unit price.
//
// After a SetPrice call, callers MUST treat the value returned here as
// authoritative rather than assuming the assignment succeeded, because
// non-positive writes are silently rejected.
func (p *Product) Price() float64 {
	return p.price
}

// SetPrice assigns a new unit price.
//
// If v is strictly positive, the write commits. If v is zero or negative,
// the write is rejected: the previous price is retained and exactly one
// PriceRejectedNotice diagnostic is emitted through the notification sink.
// Rejection is NOT an error condition; it is a clamped no-op, which is why
// SetPrice has no error return. Callers that need to know whether the write
// took effect re-read Price.
func (p *Product) SetPrice(v float64) {
	p.applyPrice(v)
}

// Display returns the product's display line.
//
// Format: "{name}, {floor(price)} руб. Остаток: {quantity} шт."
//
// The price is rendered as its integer floor (no rounding); the quantity is
// rendered as-is. This format is a display contract consumed by
// Category.Listing and MUST be preserved exactly, including punctuation and
// units.
//
// Examples:
//
//	Телефон, 20000 руб. Остаток: 5 шт.
//	Ноутбук, 80000 руб. Остаток: 1 шт.   (price 80000.5 floors to 80000)
func (p *Product) Display() string {
	return fmt.Sprintf("%s, %d руб. Остаток: %d шт.", p.Name, int64(math.Floor(p.price)), p.Quantity)
}

// Value returns the product's total stock value: price multiplied by
// quantity. This is the quantity the addition operators combine.
func (p *Product) Value() float64 {
	return p.price * float64(p.Quantity)
}

// String returns the complete debug representation of the Product.
//
// This method implements the fmt.Stringer interface and satisfies the
// model.Loggable contract's String() requirement. The output includes every
// field, and the extension payload when one is present. This is also the
// representation delivered to the creation sink on construction.
//
// Format:
//
//	Product{Name:<name>, Description:<description>, Kind:<kind>, Price:<price>, Quantity:<quantity>}
//
// with ", Smartphone:<payload>" or ", LawnGrass:<payload>" appended before
// the closing brace when the corresponding payload is present.
func (p *Product) String() string {
	s := fmt.Sprintf("Product{Name:%s, Description:%s, Kind:%s, Price:%s, Quantity:%d",
		p.Name,
		p.Description,
		p.Kind,
		strconv.FormatFloat(p.price, 'g', -1, 64),
		p.Quantity)
	if p.Smartphone != nil {
		s += ", Smartphone:" + p.Smartphone.String()
	}
	if p.LawnGrass != nil {
		s += ", LawnGrass:" + p.LawnGrass.String()
	}
	return s + "}"
}

// Redacted returns a representation of the Product safe for production
// logging.
//
// This method implements the model.Loggable contract's Redacted()
// requirement. The free-text Description is omitted because it can carry
// supplier or pricing notes not meant for shared logs; the identifying
// fields (name, kind, price, quantity) are kept in full.
//
// Format:
//
//	Product{Name:<name>, Kind:<kind>, Price:<price>, Quantity:<quantity>}
func (p *Product) Redacted() string {
	return fmt.Sprintf("Product{Name:%s, Kind:%s, Price:%s, Quantity:%d}",
		p.Name,
		p.Kind,
		strconv.FormatFloat(p.price, 'g', -1, 64),
		p.Quantity)
}

// TypeName returns the name of this type for error messages and debugging.
//
// This method implements the model.Identifiable contract. The name is
// constant across kinds; the Kind field, not the type name, distinguishes
// specialized products.
func (p *Product) TypeName() string {
	return "Product"
}

// IsZero reports whether this Product is the zero value.
//
// This method implements the model.ZeroCheckable contract. A Product is
// considered zero if every base attribute is zero, the kind is the zero
// kind, and no extension payload is present. Zero products fail validation.
func (p *Product) IsZero() bool {
	return p.Name == "" &&
		p.Description == "" &&
		p.price == 0 &&
		p.Quantity == 0 &&
		p.Kind == KindProduct &&
		p.Smartphone == nil &&
		p.LawnGrass == nil
}

// Equal reports whether this Product carries the same data as other.
//
// All base attributes, the kind, and the extension payloads are compared.
// Payloads are compared by value, so two distinct *SmartphoneSpec instances
// with identical fields compare equal. A nil other never equals a product.
func (p *Product) Equal(other *Product) bool {
	if other == nil {
		return false
	}
	if p.Name != other.Name ||
		p.Description != other.Description ||
		p.price != other.price ||
		p.Quantity != other.Quantity ||
		p.Kind != other.Kind {
		return false
	}
	if (p.Smartphone == nil) != (other.Smartphone == nil) {
		return false
	}
	if p.Smartphone != nil && *p.Smartphone != *other.Smartphone {
		return false
	}
	if (p.LawnGrass == nil) != (other.LawnGrass == nil) {
		return false
	}
	if p.LawnGrass != nil && *p.LawnGrass != *other.LawnGrass {
		return false
	}
	return true
}

// Validate checks whether this Product satisfies all model contracts and
// invariants. This method implements the model.Validatable interface.
//
// Validate returns nil if the Product conforms to all of the following
// requirements:
//
// Price validation:
//   - price MUST be strictly positive
//
// Quantity validation:
//   - Quantity MUST be positive
//
// Kind validation:
//   - Kind MUST be one of the defined constants
//   - the extension payload MUST match the declared kind: a KindSmartphone
//     product MUST carry a Smartphone payload and no LawnGrass payload, a
//     KindLawnGrass product the reverse, and a KindProduct product neither
//
// Name and Description are intentionally unconstrained: empty names are
// permitted (they simply never merge with a non-empty incoming name).
//
// This method MUST be fast, deterministic, and idempotent. It MUST NOT
// mutate the receiver, MUST NOT have side effects, and MUST be safe to call
// concurrently with reads.
func (p *Product) Validate() error {
	if p.price <= 0 {
		return &errors.ValidationError{
			Type:   p.TypeName(),
			Field:  "price",
			Reason: "must be positive",
			Value:  p.price,
		}
	}
	if p.Quantity <= 0 {
		return &errors.ValidationError{
			Type:   p.TypeName(),
			Field:  "Quantity",
			Reason: "must be positive",
			Value:  p.Quantity,
		}
	}
	if err := p.Kind.Validate(); err != nil {
		return err
	}

	switch p.Kind {
	case KindSmartphone:
		if p.Smartphone == nil {
			return &errors.ValidationError{
				Type:   p.TypeName(),
				Field:  "Smartphone",
				Reason: "payload required for kind smartphone",
			}
		}
		if p.LawnGrass != nil {
			return &errors.ValidationError{
				Type:   p.TypeName(),
				Field:  "LawnGrass",
				Reason: "payload not allowed for kind smartphone",
			}
		}
	case KindLawnGrass:
		if p.LawnGrass == nil {
			return &errors.ValidationError{
				Type:   p.TypeName(),
				Field:  "LawnGrass",
				Reason: "payload required for kind lawn_grass",
			}
		}
		if p.Smartphone != nil {
			return &errors.ValidationError{
				Type:   p.TypeName(),
				Field:  "Smartphone",
				Reason: "payload not allowed for kind lawn_grass",
			}
		}
	default:
		if p.Smartphone != nil || p.LawnGrass != nil {
			return &errors.ValidationError{
				Type:   p.TypeName(),
				Field:  "Kind",
				Reason: "base product must not carry an extension payload",
			}
		}
	}

	return nil
}

// productWire is the serialization shadow of Product. It exists because the
// guarded price field is unexported; the shadow exposes it under the
// "price" key for both JSON and YAML.
type productWire struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Price       float64         `json:"price" yaml:"price"`
	Quantity    int             `json:"quantity" yaml:"quantity"`
	Kind        Kind            `json:"kind" yaml:"kind"`
	Smartphone  *SmartphoneSpec `json:"smartphone,omitempty" yaml:"smartphone,omitempty"`
	LawnGrass   *LawnGrassSpec  `json:"lawn_grass,omitempty" yaml:"lawn_grass,omitempty"`
}

// wire converts the Product to its serialization shadow.
func (p *Product) wire() productWire {
	return productWire{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.price,
		Quantity:    p.Quantity,
		Kind:        p.Kind,
		Smartphone:  p.Smartphone,
		LawnGrass:   p.LawnGrass,
	}
}

// fromWire populates the Product from its serialization shadow.
func (p *Product) fromWire(w productWire) {
	p.Name = w.Name
	p.Description = w.Description
	p.price = w.Price
	p.Quantity = w.Quantity
	p.Kind = w.Kind
	p.Smartphone = w.Smartphone
	p.LawnGrass = w.LawnGrass
}

// MarshalJSON implements json.Marshaler, serializing the Product to a JSON
// object. This method satisfies part of the model.Serializable interface.
//
// MarshalJSON first validates the Product by calling Validate; if
// validation fails, marshaling fails with the validation error, preventing
// invalid data from being serialized. A valid Product is serialized as:
//
//	{
//	  "name": "Телефон",
//	  "description": "Смартфон",
//	  "price": 20000,
//	  "quantity": 5,
//	  "kind": "product"
//	}
//
// with a "smartphone" or "lawn_grass" object added when the corresponding
// extension payload is present.
func (p *Product) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return json.Marshal(p.wire())
}

// UnmarshalJSON implements json.Unmarshaler for Product. This method
// satisfies part of the model.Serializable interface.
//
// The populated Product is validated before the method returns; if
// validation fails, the error is returned and callers MUST NOT use the
// receiver. Deserialization is not construction: it does NOT emit a
// creation notification and does NOT touch the process-wide counters.
func (p *Product) UnmarshalJSON(data []byte) error {
	var w productWire
	if err := json.Unmarshal(data, &w); err != nil {
		return &errors.UnmarshalError{Type: "Product", Data: data, Reason: err.Error()}
	}
	p.fromWire(w)
	if err := p.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Product is invalid: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Product. This method satisfies
// part of the model.Serializable interface.
//
// As with MarshalJSON, the Product is validated first and an invalid
// instance fails with the validation error instead of being serialized.
func (p *Product) MarshalYAML() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}
	return p.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Product. This method
// satisfies part of the model.Serializable interface.
//
// The populated Product is validated before the method returns. As with
// UnmarshalJSON, deserialization emits no creation notification.
func (p *Product) UnmarshalYAML(node *yaml.Node) error {
	var w productWire
	if err := node.Decode(&w); err != nil {
		return &errors.UnmarshalError{Type: "Product", Data: []byte(node.Value), Reason: err.Error()}
	}
	p.fromWire(w)
	if err := p.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Product is invalid: %w", err)
	}
	return nil
}
