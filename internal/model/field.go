package model

import (
	"fmt"
	"time"
)

type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldEnum   FieldType = "enum"
	FieldDate   FieldType = "date"
	FieldPeople FieldType = "people"
)

// FieldDefinition belongs to one project; (project, name) is unique.
// EnumOptions is non-empty exactly when Type is FieldEnum.
type FieldDefinition struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	EnumOptions []string  `json:"enum_options,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// FieldValue holds one typed value for a (task, field) pair. The field's
// project must equal the task's project. The value is a tagged variant;
// it is flattened into nullable columns only at the storage boundary.
type FieldValue struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
	FieldID   int64     `json:"field_id"`
	Value     Value     `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

// Value is a tagged variant over the four storable payloads. Exactly the
// payload matching Kind is meaningful; use the constructors.
type Value struct {
	Kind   FieldType `json:"kind"`
	Text   string    `json:"text,omitempty"`
	Number float64   `json:"number,omitempty"`
	Enum   string    `json:"enum,omitempty"`
	Date   time.Time `json:"date,omitempty"`
}

func TextValue(s string) Value {
	return Value{Kind: FieldText, Text: s}
}

func NumberValue(n float64) Value {
	return Value{Kind: FieldNumber, Number: n}
}

func EnumValue(option string) Value {
	return Value{Kind: FieldEnum, Enum: option}
}

func DateValue(d time.Time) Value {
	return Value{Kind: FieldDate, Date: d}
}

func (v Value) String() string {
	switch v.Kind {
	case FieldText:
		return v.Text
	case FieldNumber:
		return fmt.Sprintf("%g", v.Number)
	case FieldEnum:
		return v.Enum
	case FieldDate:
		return v.Date.Format("2006-01-02")
	}
	return ""
}
