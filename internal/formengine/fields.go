package formengine

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type FieldType string

const (
	TypeText         FieldType = "Text"
	TypeTextArea     FieldType = "TextArea"
	TypeDate         FieldType = "Date"
	TypeDynamicTable FieldType = "DynamicTable"
	TypeGeolocation  FieldType = "Geolocation"
	TypeSignature    FieldType = "Signature"
	TypeImageUpload  FieldType = "ImageUpload"
)

// FieldTypes lists every type a template may declare, in display order.
var FieldTypes = []FieldType{
	TypeText,
	TypeTextArea,
	TypeDate,
	TypeDynamicTable,
	TypeGeolocation,
	TypeSignature,
	TypeImageUpload,
}

func KnownType(t FieldType) bool {
	for _, k := range FieldTypes {
		if t == k {
			return true
		}
	}
	return false
}

const MaxLabelLength = 100

// FieldSpec describes one field of a template. The JSON tags match the
// shape stored in the form_templates.structure column.
type FieldSpec struct {
	Label    string    `json:"label" validate:"required,max=100"`
	Type     FieldType `json:"type" validate:"required,fieldtype"`
	Required bool      `json:"required"`
}

// SpecError reports the first invalid field of a definition. Index is
// zero-based.
type SpecError struct {
	Index   int
	Label   string
	Message string
}

func (e *SpecError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("field %q: %s", e.Label, e.Message)
	}
	return fmt.Sprintf("field #%d: %s", e.Index+1, e.Message)
}

// ValidateSpecs checks a template's field list: at least one field, every
// label non-empty and within length, every type recognized, no duplicate
// labels. It stops at the first invalid field.
func ValidateSpecs(fields []FieldSpec) *SpecError {
	if len(fields) == 0 {
		return &SpecError{Index: 0, Message: "at least one field is required"}
	}
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		label := strings.TrimSpace(f.Label)
		if label == "" {
			return &SpecError{Index: i, Message: "label is required"}
		}
		if utf8.RuneCountInString(label) > MaxLabelLength {
			return &SpecError{Index: i, Label: label, Message: fmt.Sprintf("label exceeds %d characters", MaxLabelLength)}
		}
		if !KnownType(f.Type) {
			return &SpecError{Index: i, Label: label, Message: fmt.Sprintf("unknown field type %q", f.Type)}
		}
		if _, dup := seen[label]; dup {
			return &SpecError{Index: i, Label: label, Message: "duplicate label"}
		}
		seen[label] = struct{}{}
	}
	return nil
}
