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

package catalog_test

import (
	stderrors "errors"
	"testing"

	"dirpx.dev/dxcat/dxcore/errors"
	"dirpx.dev/dxcat/dxcore/model"
	"dirpx.dev/dxcat/dxcore/model/catalog"
	"gopkg.in/yaml.v3"
)

func TestNewCategory_FieldsAndInitialProducts(t *testing.T) {
	catalog.DefaultStats.Reset()

	phone := mustProduct(t, "Телефон", 20000.0, 5)
	laptop := mustProduct(t, "Ноутбук", 80000.0, 1)

	c, err := catalog.NewCategory("Электроника", "Техника для дома", []*catalog.Product{phone, laptop})
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}

	if c.Name != "Электроника" {
		t.Errorf("Name = %q, want %q", c.Name, "Электроника")
	}
	if c.Description != "Техника для дома" {
		t.Errorf("Description = %q, want %q", c.Description, "Техника для дома")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	got := c.Products()
	if len(got) != 2 || got[0] != phone || got[1] != laptop {
		t.Error("Products() does not preserve the initial products in order")
	}
}

func TestCategory_ProductsReturnsCopy(t *testing.T) {
	catalog.DefaultStats.Reset()

	c, err := catalog.NewCategory("Электроника", "", []*catalog.Product{
		mustProduct(t, "Телефон", 20000.0, 5),
	})
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}

	snapshot := c.Products()
	snapshot[0] = nil
	if c.Products()[0] == nil {
		t.Error("mutating the Products() slice mutated the category")
	}
}

func TestCategory_AddProduct(t *testing.T) {
	catalog.DefaultStats.Reset()

	c, err := catalog.NewCategory("Электроника", "", nil)
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}

	if err := c.AddProduct(mustProduct(t, "Телефон", 20000.0, 5)); err != nil {
		t.Fatalf("AddProduct() error = %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCategory_AddProductNil(t *testing.T) {
	catalog.DefaultStats.Reset()

	c, err := catalog.NewCategory("Электроника", "", nil)
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}

	err = c.AddProduct(nil)
	var invalid *errors.InvalidArgumentError
	if !stderrors.As(err, &invalid) {
		t.Fatalf("AddProduct(nil) error = %v, want *InvalidArgumentError", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after rejected add, want 0", c.Len())
	}
	if catalog.DefaultStats.ProductCount() != 0 {
		t.Errorf("ProductCount() = %d after rejected add, want 0", catalog.DefaultStats.ProductCount())
	}
}

func TestCategory_Listing(t *testing.T) {
	catalog.DefaultStats.Reset()

	c, err := catalog.NewCategory("Электроника", "", []*catalog.Product{
		mustProduct(t, "Телефон", 20000.0, 5),
		mustProduct(t, "Ноутбук", 80000.0, 1),
	})
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}

	want := "Телефон, 20000 руб. Остаток: 5 шт.\nНоутбук, 80000 руб. Остаток: 1 шт."
	if got := c.Listing(); got != want {
		t.Errorf("Listing() = %q, want %q", got, want)
	}
}

func TestCategory_ListingEmpty(t *testing.T) {
	catalog.DefaultStats.Reset()

	c, err := catalog.NewCategory("Электроника", "", nil)
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}
	if got := c.Listing(); got != "" {
		t.Errorf("Listing() = %q, want empty string", got)
	}
}

func TestCategory_TotalQuantityAndString(t *testing.T) {
	catalog.DefaultStats.Reset()

	c, err := catalog.NewCategory("Электроника", "", []*catalog.Product{
		mustProduct(t, "Телефон", 20000.0, 5),
		mustProduct(t, "Ноутбук", 80000.0, 3),
	})
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}

	if got := c.TotalQuantity(); got != 8 {
		t.Errorf("TotalQuantity() = %d, want 8", got)
	}
	want := "Электроника, количество продуктов: 8 шт."
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCategory_AveragePrice(t *testing.T) {
	catalog.DefaultStats.Reset()

	c, err := catalog.NewCategory("Электроника", "", []*catalog.Product{
		mustProduct(t, "Телефон", 20000.0, 5),
		mustProduct(t, "Гарнитура", 5000.0, 2),
	})
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}

	if got := c.AveragePrice(); got != 12500.0 {
		t.Errorf("AveragePrice() = %v, want 12500", got)
	}
}

func TestCategory_AveragePriceEmpty(t *testing.T) {
	catalog.DefaultStats.Reset()

	c, err := catalog.NewCategory("Пустая", "", nil)
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}
	if got := c.AveragePrice(); got != 0.0 {
		t.Errorf("AveragePrice() = %v on empty category, want 0", got)
	}
}

func TestCategory_Redacted(t *testing.T) {
	catalog.DefaultStats.Reset()

	c, err := catalog.NewCategory("Электроника", "Не для логов", []*catalog.Product{
		mustProduct(t, "Телефон", 20000.0, 5),
	})
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}

	want := "Category{Name:Электроника, Products:1}"
	if got := c.Redacted(); got != want {
		t.Errorf("Redacted() = %q, want %q", got, want)
	}
}

func TestStats_CountersTrackConstructionAndAddition(t *testing.T) {
	catalog.DefaultStats.Reset()

	if _, err := catalog.NewCategory("Электроника", "", []*catalog.Product{
		mustProduct(t, "Телефон", 20000.0, 5),
		mustProduct(t, "Ноутбук", 80000.0, 1),
	}); err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}
	second, err := catalog.NewCategory("Сад", "", []*catalog.Product{
		mustProduct(t, "Газонная трава", 500.0, 20),
	})
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}

	if got := catalog.DefaultStats.CategoryCount(); got != 2 {
		t.Errorf("CategoryCount() = %d, want 2", got)
	}
	if got := catalog.DefaultStats.ProductCount(); got != 3 {
		t.Errorf("ProductCount() = %d, want 3", got)
	}

	if err := second.AddProduct(mustProduct(t, "Удобрение", 300.0, 10)); err != nil {
		t.Fatalf("AddProduct() error = %v", err)
	}
	if got := catalog.DefaultStats.ProductCount(); got != 4 {
		t.Errorf("ProductCount() = %d after AddProduct, want 4", got)
	}
}

func TestStats_ResetIsExplicit(t *testing.T) {
	catalog.DefaultStats.Reset()

	if _, err := catalog.NewCategory("Электроника", "", nil); err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}
	if got := catalog.DefaultStats.CategoryCount(); got != 1 {
		t.Fatalf("CategoryCount() = %d, want 1", got)
	}

	catalog.DefaultStats.Reset()
	if got := catalog.DefaultStats.CategoryCount(); got != 0 {
		t.Errorf("CategoryCount() = %d after Reset, want 0", got)
	}
	if got := catalog.DefaultStats.ProductCount(); got != 0 {
		t.Errorf("ProductCount() = %d after Reset, want 0", got)
	}
}

func TestStats_MergeDoesNotCount(t *testing.T) {
	catalog.DefaultStats.Reset()

	existing := mustProduct(t, "Телефон", 20000.0, 5)
	products := []*catalog.Product{existing}

	if _, err := catalog.MergeProduct(catalog.ProductData{
		Name: "Телефон", Description: "", Price: 25000.0, Quantity: 3,
	}, &products); err != nil {
		t.Fatalf("MergeProduct() error = %v", err)
	}

	if got := catalog.DefaultStats.ProductCount(); got != 0 {
		t.Errorf("ProductCount() = %d after merge, want 0 (merge does not add to a category)", got)
	}
}

func TestCategory_JSONRoundTrip(t *testing.T) {
	catalog.DefaultStats.Reset()

	c, err := catalog.NewCategory("Электроника", "Техника", []*catalog.Product{
		mustProduct(t, "Телефон", 20000.0, 5),
	})
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}

	data, err := model.ToJSON(c)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	before := catalog.DefaultStats.CategoryCount()
	decoded := &catalog.Category{}
	if err := model.FromJSON(data, &decoded); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}

	if decoded.Name != c.Name || decoded.Description != c.Description {
		t.Errorf("decoded = %s, want %s", decoded, c)
	}
	if decoded.Len() != 1 || decoded.Products()[0].Name != "Телефон" {
		t.Error("decoded category lost its products")
	}
	if got := catalog.DefaultStats.CategoryCount(); got != before {
		t.Errorf("CategoryCount() = %d after decode, want %d (decoding is not construction)", got, before)
	}
}

func TestCategory_YAMLRoundTrip(t *testing.T) {
	catalog.DefaultStats.Reset()

	c, err := catalog.NewCategory("Сад", "", []*catalog.Product{
		mustProduct(t, "Газонная трава", 500.0, 20),
	})
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}

	data, err := model.ToYAML(c)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}
	decoded := &catalog.Category{}
	if err := model.FromYAML(data, &decoded); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if decoded.Name != "Сад" || decoded.TotalQuantity() != 20 {
		t.Errorf("decoded = %s, want %s", decoded, c)
	}
}

func TestCategory_Unmarshal_RejectsNullProductEntries(t *testing.T) {
	catalog.DefaultStats.Reset()

	// A null array element decodes to a nil *Product without the product
	// unmarshaler running; it must surface as an error, not a panic.
	jsonData := []byte(`{"name":"Электроника","description":"","products":[null]}`)

	c := &catalog.Category{}
	err := c.UnmarshalJSON(jsonData)
	var verr *errors.ValidationError
	if !stderrors.As(err, &verr) {
		t.Fatalf("UnmarshalJSON() error = %v, want *ValidationError", err)
	}
	if verr.Type != "Category" || verr.Field != "products" {
		t.Errorf("ValidationError = %v, want Type Category, Field products", verr)
	}

	yamlData := []byte("name: Электроника\ndescription: \"\"\nproducts:\n  - null\n")

	c2 := &catalog.Category{}
	if err := yaml.Unmarshal(yamlData, c2); !stderrors.As(err, &verr) {
		t.Fatalf("yaml.Unmarshal() error = %v, want *ValidationError", err)
	}
}

func TestCategory_Unmarshal_RejectsNullAmongValidEntries(t *testing.T) {
	catalog.DefaultStats.Reset()

	jsonData := []byte(`{"name":"Электроника","description":"","products":[` +
		`{"name":"Телефон","description":"","price":20000,"quantity":5,"kind":"product"},null]}`)

	c := &catalog.Category{}
	err := c.UnmarshalJSON(jsonData)
	var verr *errors.ValidationError
	if !stderrors.As(err, &verr) {
		t.Fatalf("UnmarshalJSON() error = %v, want *ValidationError", err)
	}
}

func TestCategory_ValidateAggregatesProductFaults(t *testing.T) {
	catalog.DefaultStats.Reset()

	c, err := catalog.NewCategory("Электроника", "", []*catalog.Product{
		mustProduct(t, "Телефон", 20000.0, 5),
	})
	if err != nil {
		t.Fatalf("NewCategory() error = %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v on valid category, want nil", err)
	}

	broken := &catalog.Product{Name: "Сломанный", Quantity: 1}
	if err := c.AddProduct(broken); err != nil {
		t.Fatalf("AddProduct() error = %v", err)
	}

	var verr *errors.ValidationError
	if err := c.Validate(); !stderrors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *ValidationError", err)
	}
	if verr.Type != "Category" || verr.Field != "products" {
		t.Errorf("ValidationError = %v, want Type Category, Field products", verr)
	}
}
