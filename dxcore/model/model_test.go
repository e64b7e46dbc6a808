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

package model_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"dirpx.dev/dxcat/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Supplier demonstrates a complete Model implementation.
type Supplier struct {
	Name    string
	City    string
	Contact string // Not for shared logs
}

// Validate implements Validatable
func (s Supplier) Validate() error {
	if s.Name == "" {
		return errors.New("name required")
	}
	if s.City == "" {
		return errors.New("city required")
	}
	return nil
}

// TypeName implements Identifiable
func (s Supplier) TypeName() string {
	return "Supplier"
}

// IsZero implements ZeroCheckable
func (s Supplier) IsZero() bool {
	return s.Name == "" && s.City == "" && s.Contact == ""
}

// Redacted implements Loggable (safe for production logs)
func (s Supplier) Redacted() string {
	return "Supplier{Name:" + s.Name + ", City:" + s.City + ", Contact:[REDACTED]}"
}

// String implements Loggable (UNSAFE - includes contact details)
func (s Supplier) String() string {
	return "Supplier{Name:" + s.Name + ", City:" + s.City + ", Contact:" + s.Contact + "}"
}

// MarshalJSON implements Serializable
func (s Supplier) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias Supplier
	return json.Marshal((alias)(s))
}

// UnmarshalJSON implements Serializable
func (s *Supplier) UnmarshalJSON(data []byte) error {
	type alias Supplier
	if err := json.Unmarshal(data, (*alias)(s)); err != nil {
		return err
	}
	return s.Validate()
}

// MarshalYAML implements Serializable
func (s Supplier) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias Supplier
	return (alias)(s), nil
}

// UnmarshalYAML implements Serializable
func (s *Supplier) UnmarshalYAML(node *yaml.Node) error {
	type alias Supplier
	if err := node.Decode((*alias)(s)); err != nil {
		return err
	}
	return s.Validate()
}

// Verify Supplier implements Model at compile time
var _ model.Model = (*Supplier)(nil)

func TestModel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		model   Supplier
		wantErr bool
	}{
		{
			name:    "valid model",
			model:   Supplier{Name: "Оптторг", City: "Москва"},
			wantErr: false,
		},
		{
			name:    "missing name",
			model:   Supplier{City: "Москва"},
			wantErr: true,
		},
		{
			name:    "missing city",
			model:   Supplier{Name: "Оптторг"},
			wantErr: true,
		},
		{
			name:    "empty model",
			model:   Supplier{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.model.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestModel_IsZero(t *testing.T) {
	tests := []struct {
		name  string
		model Supplier
		want  bool
	}{
		{
			name:  "zero model",
			model: Supplier{},
			want:  true,
		},
		{
			name:  "non-zero model",
			model: Supplier{Name: "Оптторг"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModel_Redacted(t *testing.T) {
	m := Supplier{
		Name:    "Оптторг",
		City:    "Москва",
		Contact: "sales@optorg.example",
	}

	redacted := m.Redacted()

	if !strings.Contains(redacted, "Оптторг") {
		t.Errorf("Redacted() should contain name, got %q", redacted)
	}
	if strings.Contains(redacted, "sales@") {
		t.Errorf("Redacted() should not contain contact details, got %q", redacted)
	}
	if !strings.Contains(redacted, "[REDACTED]") {
		t.Errorf("Redacted() should indicate redacted fields, got %q", redacted)
	}
}

func TestSafeString(t *testing.T) {
	m := &Supplier{Name: "Оптторг", City: "Москва", Contact: "sales@optorg.example"}

	if got := model.SafeString(m, false); got != m.Redacted() {
		t.Errorf("SafeString(m, false) = %q, want Redacted()", got)
	}
	if got := model.SafeString(m, true); got != m.String() {
		t.Errorf("SafeString(m, true) = %q, want String()", got)
	}
}

func TestValidateAll(t *testing.T) {
	valid := &Supplier{Name: "Оптторг", City: "Москва"}
	invalid := &Supplier{City: "Москва"}

	if err := model.ValidateAll([]*Supplier{valid, valid}); err != nil {
		t.Errorf("ValidateAll() with valid models = %v, want nil", err)
	}
	if err := model.ValidateAll([]*Supplier{}); err != nil {
		t.Errorf("ValidateAll() with empty slice = %v, want nil", err)
	}

	err := model.ValidateAll([]*Supplier{valid, invalid, {}})
	if err == nil {
		t.Fatal("ValidateAll() with invalid models returned nil")
	}
	// Both failures must be reported, with position and type name context.
	msg := err.Error()
	if !strings.Contains(msg, "model[1] (Supplier)") {
		t.Errorf("ValidateAll() error missing first failure context: %q", msg)
	}
	if !strings.Contains(msg, "model[2] (Supplier)") {
		t.Errorf("ValidateAll() error missing second failure context: %q", msg)
	}
}

func TestFilterZero(t *testing.T) {
	in := []*Supplier{
		{},
		{Name: "Оптторг", City: "Москва"},
		{},
		{Name: "Садовод", City: "Тула"},
	}

	got := model.FilterZero(in)
	if len(got) != 2 {
		t.Fatalf("FilterZero() returned %d models, want 2", len(got))
	}
	if got[0].Name != "Оптторг" || got[1].Name != "Садовод" {
		t.Errorf("FilterZero() = %v, order not preserved", got)
	}

	if got := model.FilterZero([]*Supplier{}); got == nil || len(got) != 0 {
		t.Errorf("FilterZero(empty) = %v, want empty non-nil slice", got)
	}
}

func TestMustValidate(t *testing.T) {
	valid := &Supplier{Name: "Оптторг", City: "Москва"}
	if got := model.MustValidate(valid); got != valid {
		t.Errorf("MustValidate() = %v, want the model unchanged", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustValidate() with invalid model did not panic")
		}
	}()
	model.MustValidate(&Supplier{})
}

func TestToJSON_FromJSON(t *testing.T) {
	original := &Supplier{Name: "Оптторг", City: "Москва", Contact: "sales@optorg.example"}

	data, err := model.ToJSON(original)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	decoded := &Supplier{}
	if err := model.FromJSON(data, &decoded); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if *decoded != *original {
		t.Errorf("JSON round-trip failed: got %+v, want %+v", decoded, original)
	}
}

func TestToYAML_FromYAML(t *testing.T) {
	original := &Supplier{Name: "Садовод", City: "Тула"}

	data, err := model.ToYAML(original)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	decoded := &Supplier{}
	if err := model.FromYAML(data, &decoded); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if *decoded != *original {
		t.Errorf("YAML round-trip failed: got %+v, want %+v", decoded, original)
	}
}

func TestToJSON_FailsOnInvalid(t *testing.T) {
	if _, err := model.ToJSON(&Supplier{}); err == nil {
		t.Error("ToJSON() should fail on invalid model")
	}
	if _, err := model.ToYAML(&Supplier{}); err == nil {
		t.Error("ToYAML() should fail on invalid model")
	}
}

func TestFromJSON_FailsOnInvalid(t *testing.T) {
	m := &Supplier{}
	if err := model.FromJSON([]byte(`{"City":"Москва"}`), &m); err == nil {
		t.Error("FromJSON() should fail when validation fails")
	}

	m2 := &Supplier{}
	if err := model.FromYAML([]byte("city: Москва"), &m2); err == nil {
		t.Error("FromYAML() should fail when validation fails")
	}

	m3 := &Supplier{}
	if err := model.FromJSON([]byte(`{not json`), &m3); err == nil {
		t.Error("FromJSON() should fail on malformed input")
	}
}

func TestClone(t *testing.T) {
	original := &Supplier{Name: "Оптторг", City: "Москва", Contact: "sales@optorg.example"}

	clone, err := model.Clone(original)
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if *clone != *original {
		t.Errorf("Clone() = %+v, want %+v", clone, original)
	}

	clone.City = "Тула"
	if original.City != "Москва" {
		t.Error("mutating the clone mutated the original")
	}
}

func TestEqual(t *testing.T) {
	a := &Supplier{Name: "Оптторг", City: "Москва"}
	b := &Supplier{Name: "Оптторг", City: "Москва"}
	c := &Supplier{Name: "Садовод", City: "Тула"}

	if !model.Equal(a, b) {
		t.Error("Equal() = false for identical models")
	}
	if model.Equal(a, c) {
		t.Error("Equal() = true for different models")
	}
	// Invalid models fail marshaling, which reads as inequality.
	if model.Equal(a, &Supplier{}) {
		t.Error("Equal() = true when one operand is invalid")
	}
}

func TestModel_Marshal_FailsOnInvalid(t *testing.T) {
	invalid := Supplier{}

	if _, err := json.Marshal(invalid); err == nil {
		t.Error("json.Marshal() should fail on invalid model")
	}
	if _, err := yaml.Marshal(invalid); err == nil {
		t.Error("yaml.Marshal() should fail on invalid model")
	}
}

func TestModel_TypeName(t *testing.T) {
	m := Supplier{Name: "Оптторг", City: "Москва"}

	if got := m.TypeName(); got != "Supplier" {
		t.Errorf("TypeName() = %q, want %q", got, "Supplier")
	}
}
