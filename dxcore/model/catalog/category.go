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
	"fmt"
	"strings"

	"dirpx.dev/dxcat/dxcore/errors"
	"dirpx.dev/dxcat/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Category is the aggregate owning an ordered sequence of products, with
// derived statistics computed on demand (total quantity, average price,
// formatted listing).
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection.
//
// Ownership is exclusive: a Category owns its product sequence and products
// are not shared across categories. No aliasing contract is defined for a
// *Product added to two categories; callers MUST avoid it.
//
// Deduplication is not Category's job: AddProduct is a raw append. Merging
// ingested duplicates by name is MergeProduct's responsibility, before the
// product reaches a category.
//
// Constructing a Category increments the process-wide category counter, and
// every product addition (at construction or later) increments the
// process-wide product counter; see Stats.
type Category struct {
	// Name is the category's name.
	Name string

	// Description is the free-text description of the category.
	Description string

	// products is the owned, ordered product sequence. It is unexported to
	// enforce that every addition flows through AddProduct, keeping the
	// process-wide product counter consistent.
	products []*Product
}

// Compile-time check that Category implements model.Model.
var _ model.Model = (*Category)(nil)

// NewCategory creates a category holding the given initial products.
//
// The global category counter is incremented exactly once per construction.
// Every initial product is then added through the same AddProduct path used
// for later additions, so the global product counter stays consistent
// regardless of whether products arrive at construction or afterwards.
//
// NewCategory fails with the first AddProduct error (a nil entry in
// products yields an *InvalidArgumentError); products added before the
// failing entry have already been counted.
//
// Example usage:
//
//	c, err := catalog.NewCategory("Смартфоны", "Умные телефоны",
//	    []*catalog.Product{p1, p2})
func NewCategory(name string, description string, products []*Product) (*Category, error) {
	c := &Category{
		Name:        name,
		Description: description,
	}
	DefaultStats.addCategory()

	for _, p := range products {
		if err := c.AddProduct(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddProduct appends a product to the category's owned sequence and
// increments the global product counter.
//
// A nil product is rejected with an *InvalidArgumentError and nothing is
// counted. No deduplication happens here: adding two products with the
// same name results in two entries, in insertion order. Merge-by-name is
// MergeProduct's job at the ingestion boundary.
func (c *Category) AddProduct(p *Product) error {
	if p == nil {
		return &errors.InvalidArgumentError{
			Op:     "Category.AddProduct",
			Reason: "product must not be nil",
		}
	}
	c.products = append(c.products, p)
	DefaultStats.addProduct()
	return nil
}

// Products returns the owned products in insertion order.
//
// The returned slice is a copy; appending to it does not affect the
// category. The elements are the category's own *Product values, so
// mutating them mutates the category's products.
func (c *Category) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of owned products.
func (c *Category) Len() int {
	return len(c.products)
}

// Listing returns the formatted product listing: each owned product's
// Display line, joined with single newlines, in insertion order.
//
// An empty category yields the empty string — not a newline and not an
// error.
//
// Example output for two products:
//
//	Телефон, 20000 руб. Остаток: 5 шт.
//	Ноутбук, 80000 руб. Остаток: 1 шт.
func (c *Category) Listing() string {
	lines := make([]string, len(c.products))
	for i, p := range c.products {
		lines[i] = p.Display()
	}
	return strings.Join(lines, "\n")
}

// TotalQuantity returns the sum of the owned products' quantities, 0 for an
// empty category.
func (c *Category) TotalQuantity() int {
	total := 0
	for _, p := range c.products {
		total += p.Quantity
	}
	return total
}

// AveragePrice returns the arithmetic mean of the owned products' prices.
//
// An empty category yields 0.0 by explicit short-circuit; there is no
// division-by-zero fault.
func (c *Category) AveragePrice() float64 {
	if len(c.products) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, p := range c.products {
		sum += p.price
	}
	return sum / float64(len(c.products))
}

// String returns the canonical short description of the category.
//
// Format: "{name}, количество продуктов: {totalQuantity} шт."
//
// Note that the count in this description is the total quantity across all
// owned products, not the number of product entries. This format is a
// display contract and MUST be preserved exactly, including punctuation and
// units.
func (c *Category) String() string {
	return fmt.Sprintf("%s, количество продуктов: %d шт.", c.Name, c.TotalQuantity())
}

// Redacted returns the debug-style representation of the category, safe for
// production logging: the name and the current count of owned product
// entries. The free-text Description and the product details are omitted.
//
// Format: "Category{Name:<name>, Products:<count>}"
func (c *Category) Redacted() string {
	return fmt.Sprintf("Category{Name:%s, Products:%d}", c.Name, len(c.products))
}

// TypeName returns the name of this type for error messages and debugging.
//
// This method implements the model.Identifiable contract.
func (c *Category) TypeName() string {
	return "Category"
}

// IsZero reports whether this Category is the zero value: empty name, empty
// description, and no owned products.
//
// This method implements the model.ZeroCheckable contract.
func (c *Category) IsZero() bool {
	return c.Name == "" && c.Description == "" && len(c.products) == 0
}

// Validate checks whether this Category satisfies all model contracts.
// This method implements the model.Validatable interface.
//
// The category's own fields are unconstrained (empty names are permitted,
// and an empty product sequence is valid). Validation therefore reduces to
// batch-validating every owned product; all member failures are collected
// and reported together rather than stopping at the first.
func (c *Category) Validate() error {
	if err := model.ValidateAll(c.products); err != nil {
		return &errors.ValidationError{
			Type:   c.TypeName(),
			Field:  "products",
			Reason: err.Error(),
		}
	}
	return nil
}

// categoryWire is the serialization shadow of Category. It exists because
// the owned product sequence is unexported; the shadow exposes it under the
// "products" key for both JSON and YAML.
type categoryWire struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Products    []*Product `json:"products" yaml:"products"`
}

// checkProducts rejects nil entries in a decoded product sequence.
//
// A null element in the "products" array decodes to a nil *Product without
// the product unmarshaler ever running, so it has to be caught here before
// Validate walks the sequence.
func (w categoryWire) checkProducts() error {
	for i, p := range w.Products {
		if p == nil {
			return &errors.ValidationError{
				Type:   "Category",
				Field:  "products",
				Reason: fmt.Sprintf("entry %d is null", i),
			}
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, serializing the Category and its
// owned products to a JSON object. This method satisfies part of the
// model.Serializable interface.
//
// The Category is validated first; an invalid category (one owning invalid
// products) fails with the validation error instead of being serialized.
func (c *Category) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return json.Marshal(categoryWire{
		Name:        c.Name,
		Description: c.Description,
		Products:    c.products,
	})
}

// UnmarshalJSON implements json.Unmarshaler for Category. This method
// satisfies part of the model.Serializable interface.
//
// The populated Category is validated before the method returns. A null
// entry in the "products" array is rejected with a *ValidationError rather
// than being carried as a nil product.
// Deserialization is not construction: it does NOT touch the process-wide
// counters, exactly as product deserialization emits no creation
// notification. Counters track constructions and additions performed by
// this process, not data loaded from elsewhere.
func (c *Category) UnmarshalJSON(data []byte) error {
	var w categoryWire
	if err := json.Unmarshal(data, &w); err != nil {
		return &errors.UnmarshalError{Type: "Category", Data: data, Reason: err.Error()}
	}
	if err := w.checkProducts(); err != nil {
		return err
	}
	c.Name = w.Name
	c.Description = w.Description
	c.products = w.Products
	if err := c.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Category is invalid: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Category. This method satisfies
// part of the model.Serializable interface.
//
// As with MarshalJSON, the Category is validated first.
func (c *Category) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", c.TypeName(), err)
	}
	return categoryWire{
		Name:        c.Name,
		Description: c.Description,
		Products:    c.products,
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Category. This method
// satisfies part of the model.Serializable interface.
//
// The populated Category is validated before the method returns. As with
// UnmarshalJSON, a null product entry is rejected with a *ValidationError
// and deserialization does not touch the process-wide counters.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	var w categoryWire
	if err := node.Decode(&w); err != nil {
		return &errors.UnmarshalError{Type: "Category", Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := w.checkProducts(); err != nil {
		return err
	}
	c.Name = w.Name
	c.Description = w.Description
	c.products = w.Products
	if err := c.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Category is invalid: %w", err)
	}
	return nil
}
