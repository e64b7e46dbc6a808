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
	"math"

	"dirpx.dev/dxcat/dxcore/errors"
)

// ProductData is the raw ingestion payload for MergeProduct: the four base
// attributes of a product as they arrive from an external collaborator.
//
// ProductData carries no invariants of its own; invalid values surface when
// MergeProduct attempts construction. Use ProductDataFromMap to build one
// from an untyped mapping with required-key checking.
type ProductData struct {
	// Name is the incoming product name, and the merge identity.
	Name string `json:"name" yaml:"name"`

	// Description is the incoming free-text description.
	Description string `json:"description" yaml:"description"`

	// Price is the incoming unit price.
	Price float64 `json:"price" yaml:"price"`

	// Quantity is the incoming unit count.
	Quantity int `json:"quantity" yaml:"quantity"`
}

// ProductDataFromMap builds a ProductData from an untyped mapping.
//
// The mapping MUST contain the keys "name", "description", "price" and
// "quantity"; a missing key fails with a *MissingFieldError naming the
// first absent key in that order. Validating key presence is the caller's
// responsibility at the boundary; this function is that boundary.
//
// Value types are coerced tolerantly, the way untyped decoders deliver
// them: "name" and "description" MUST be strings; "price" accepts float64,
// int or int64; "quantity" accepts int, int64, or a whole-number float64
// (JSON decoding into map[string]any yields float64 for every number).
// A present key holding an unusable type fails with a *ValidationError.
//
// Example usage:
//
//	data, err := catalog.ProductDataFromMap(map[string]any{
//	    "name":        "Телефон",
//	    "description": "Обновлённая модель",
//	    "price":       25000.0,
//	    "quantity":    3,
//	})
func ProductDataFromMap(raw map[string]any) (ProductData, error) {
	var d ProductData

	for _, key := range []string{"name", "description", "price", "quantity"} {
		if _, ok := raw[key]; !ok {
			return ProductData{}, &errors.MissingFieldError{Field: key}
		}
	}

	name, ok := raw["name"].(string)
	if !ok {
		return ProductData{}, &errors.ValidationError{
			Type:   "ProductData",
			Field:  "name",
			Reason: "must be a string",
			Value:  raw["name"],
		}
	}
	d.Name = name

	description, ok := raw["description"].(string)
	if !ok {
		return ProductData{}, &errors.ValidationError{
			Type:   "ProductData",
			Field:  "description",
			Reason: "must be a string",
			Value:  raw["description"],
		}
	}
	d.Description = description

	switch v := raw["price"].(type) {
	case float64:
		d.Price = v
	case int:
		d.Price = float64(v)
	case int64:
		d.Price = float64(v)
	default:
		return ProductData{}, &errors.ValidationError{
			Type:   "ProductData",
			Field:  "price",
			Reason: "must be a number",
			Value:  raw["price"],
		}
	}

	switch v := raw["quantity"].(type) {
	case int:
		d.Quantity = v
	case int64:
		d.Quantity = int(v)
	case float64:
		if v != math.Trunc(v) {
			return ProductData{}, &errors.ValidationError{
				Type:   "ProductData",
				Field:  "quantity",
				Reason: "must be a whole number",
				Value:  v,
			}
		}
		d.Quantity = int(v)
	default:
		return ProductData{}, &errors.ValidationError{
			Type:   "ProductData",
			Field:  "quantity",
			Reason: "must be an integer",
			Value:  raw["quantity"],
		}
	}

	return d, nil
}

// MergeProduct is the merge-or-create ingestion operation: given raw
// product data and an optional existing collection, it either merges the
// data into a matching product or constructs a new one.
//
// If existing points at a non-empty collection, the collection is scanned
// in order for the first product whose Name exactly matches data.Name
// (case-sensitive). On a match:
//
//   - the matched product's Quantity is incremented by data.Quantity,
//   - its price is overwritten only when data.Price is strictly greater
//     than the current price (the monotonic "keep the higher price" rule —
//     a merge never lowers a price),
//   - and the SAME product pointer is returned. No new product is
//     constructed, nothing is appended, and no creation notification fires.
//
// If no name matches, a new base product is constructed from data via
// NewProduct (with its usual notification and quantity fault), appended to
// the collection, and returned. If existing is nil, the new product is
// constructed and returned without being appended anywhere.
//
// A missing match is never an error; MergeProduct fails only when the
// underlying construction fails, propagating *InvalidQuantityError.
//
// The global product counter is NOT touched here: counting happens when a
// product is added to a Category, not when it is ingested.
//
// Example usage:
//
//	products := []*catalog.Product{existing}
//	p, err := catalog.MergeProduct(data, &products)
func MergeProduct(data ProductData, existing *[]*Product) (*Product, error) {
	if existing != nil {
		for _, p := range *existing {
			if p == nil || p.Name != data.Name {
				continue
			}
			p.Quantity += data.Quantity
			if data.Price > p.price {
				p.price = data.Price
			}
			return p, nil
		}
	}

	p, err := NewProduct(data.Name, data.Description, data.Price, data.Quantity)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		*existing = append(*existing, p)
	}
	return p, nil
}
