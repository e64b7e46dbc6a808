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

import "dirpx.dev/dxcat/dxcore/errors"

// Combine adds the stock values of two products of the exact same kind.
//
// The result is p.Value() + other.Value(), that is
// p.price*p.Quantity + other.price*other.Quantity, making Combine
// commutative in value for same-kind operands.
//
// The operand is accepted as any so that the two failure modes the
// operation distinguishes stay distinct:
//
//   - other is not a Product or *Product at all (or a nil *Product):
//     Combine returns an *IncompatibleOperandsError carrying the operand.
//   - both operands are products but their Kinds differ: Combine returns a
//     *TypeMismatchError naming both kinds. The match is exact: a base
//     product and any specialized kind do not combine, and neither do two
//     different specialized kinds.
//
// Example usage:
//
//	total, err := a.Combine(b)
//	if err != nil {
//	    var mismatch *errors.TypeMismatchError
//	    if stderrors.As(err, &mismatch) { ... }
//	}
func (p *Product) Combine(other any) (float64, error) {
	var q *Product
	switch v := other.(type) {
	case *Product:
		q = v
	case Product:
		q = &v
	default:
		return 0, &errors.IncompatibleOperandsError{Got: other}
	}
	if q == nil {
		return 0, &errors.IncompatibleOperandsError{Got: other}
	}

	if p.Kind != q.Kind {
		return 0, &errors.TypeMismatchError{Left: p.Kind.String(), Right: q.Kind.String()}
	}

	return p.Value() + q.Value(), nil
}

// AddValue adds a product's stock value to a numeric left operand.
//
// This is the reflected half of the addition operation: it enables generic
// summation over a sequence of products starting from a numeric seed of 0.
// The left operand accepts any numeric type (all int, uint and float
// widths); the result is float64(left) + p.Value().
//
// Any non-numeric left operand is a "not supported" signal: AddValue
// returns an *IncompatibleOperandsError carrying the operand, and the
// caller decides how to proceed.
//
// Example usage:
//
//	total := 0.0
//	for _, p := range products {
//	    total, _ = catalog.AddValue(total, p) // float64 seed never fails
//	}
func AddValue(left any, p *Product) (float64, error) {
	var n float64
	switch v := left.(type) {
	case int:
		n = float64(v)
	case int8:
		n = float64(v)
	case int16:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint8:
		n = float64(v)
	case uint16:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	case float32:
		n = float64(v)
	case float64:
		n = v
	default:
		return 0, &errors.IncompatibleOperandsError{Got: left}
	}
	return n + p.Value(), nil
}

// TotalValue returns the sum of the stock values of all products in the
// slice, folding from a zero seed. Nil entries are skipped. An empty or nil
// slice sums to 0.
//
// TotalValue equals folding the slice with AddValue from a numeric seed of
// 0; it exists so that callers do not have to thread the error that a
// float64 seed can never produce.
func TotalValue(products []*Product) float64 {
	total := 0.0
	for _, p := range products {
		if p == nil {
			continue
		}
		total += p.Value()
	}
	return total
}
