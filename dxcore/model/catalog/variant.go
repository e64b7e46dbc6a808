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

import "fmt"

// SmartphoneSpec is the extension payload carried by products of
// KindSmartphone.
//
// The payload is purely descriptive: it adds no invariants beyond the base
// product, and products carrying it inherit all price, quantity and
// combination behavior unchanged. Fields are stored verbatim as provided to
// NewSmartphone, except Performance, which is coerced to text.
type SmartphoneSpec struct {
	// Performance is the performance score as text. NewSmartphone accepts
	// numeric or string input for this field and always stores it as text.
	Performance string `json:"performance" yaml:"performance"`

	// Model is the device model name.
	Model string `json:"model" yaml:"model"`

	// MemoryGB is the built-in memory size in gigabytes.
	MemoryGB int `json:"memory_gb" yaml:"memory_gb"`

	// Color is the device color.
	Color string `json:"color" yaml:"color"`
}

// String returns the debug representation of the payload, in the format
// "Smartphone{Performance:<p>, Model:<m>, MemoryGB:<n>, Color:<c>}".
func (s SmartphoneSpec) String() string {
	return fmt.Sprintf("Smartphone{Performance:%s, Model:%s, MemoryGB:%d, Color:%s}",
		s.Performance, s.Model, s.MemoryGB, s.Color)
}

// LawnGrassSpec is the extension payload carried by products of
// KindLawnGrass.
//
// Like SmartphoneSpec, the payload is purely descriptive and adds no
// invariants beyond the base product.
type LawnGrassSpec struct {
	// Country is the origin country of the seed stock.
	Country string `json:"country" yaml:"country"`

	// GerminationPeriod is the germination period as free text (for
	// example, "7 дней").
	GerminationPeriod string `json:"germination_period" yaml:"germination_period"`

	// Color is the grass color.
	Color string `json:"color" yaml:"color"`
}

// String returns the debug representation of the payload, in the format
// "LawnGrass{Country:<c>, GerminationPeriod:<g>, Color:<col>}".
func (l LawnGrassSpec) String() string {
	return fmt.Sprintf("LawnGrass{Country:%s, GerminationPeriod:%s, Color:%s}",
		l.Country, l.GerminationPeriod, l.Color)
}

// NewSmartphone creates a smartphone product and notifies the process-wide
// creation sink.
//
// The shared base attributes follow the same construction path as
// NewProduct, including the notify-then-fault ordering and the
// *InvalidQuantityError fault on a non-positive quantity. The extension
// fields are stored verbatim, except performance: it accepts numeric or
// string input (any value, in fact) and is coerced to text with fmt.Sprint,
// so 98.2 and "98.2" store identically.
//
// Example usage:
//
//	p, err := catalog.NewSmartphone("Iphone 15", "512GB", 210000.0, 8,
//	    98.2, "15", 512, "серый")
func NewSmartphone(name string, description string, price float64, quantity int,
	performance any, deviceModel string, memoryGB int, color string) (*Product, error) {
	return construct(Product{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Kind:        KindSmartphone,
		Smartphone: &SmartphoneSpec{
			Performance: coerceText(performance),
			Model:       deviceModel,
			MemoryGB:    memoryGB,
			Color:       color,
		},
	}, price)
}

// NewLawnGrass creates a lawn grass product and notifies the process-wide
// creation sink.
//
// The shared base attributes follow the same construction path as
// NewProduct, including the notify-then-fault ordering and the
// *InvalidQuantityError fault on a non-positive quantity. The extension
// fields are stored verbatim.
//
// Example usage:
//
//	p, err := catalog.NewLawnGrass("Газонная трава", "Элитная",
//	    500.0, 20, "Россия", "7 дней", "Зеленый")
func NewLawnGrass(name string, description string, price float64, quantity int,
	country string, germinationPeriod string, color string) (*Product, error) {
	return construct(Product{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Kind:        KindLawnGrass,
		LawnGrass: &LawnGrassSpec{
			Country:           country,
			GerminationPeriod: germinationPeriod,
			Color:             color,
		},
	}, price)
}

// coerceText renders a performance-score-like value as text. Strings pass
// through unchanged; every other type is rendered with fmt.Sprint.
func coerceText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
