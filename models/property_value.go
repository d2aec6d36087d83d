package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the scalar type carried by a PropertyValue.
type ValueKind string

const (
	KindBool   ValueKind = "bool"
	KindInt    ValueKind = "int"
	KindFloat  ValueKind = "float"
	KindString ValueKind = "string"
)

// PropertyValue is a tagged union over the scalar types a custom property
// may hold. It is stored in its tagged form but marshals to plain JSON
// scalars so clients never see the discriminator.
type PropertyValue struct {
	Kind  ValueKind `bson:"kind"`
	Bool  bool      `bson:"bool,omitempty"`
	Int   int64     `bson:"int,omitempty"`
	Float float64   `bson:"float,omitempty"`
	Str   string    `bson:"str,omitempty"`
}

func BoolValue(v bool) PropertyValue     { return PropertyValue{Kind: KindBool, Bool: v} }
func IntValue(v int64) PropertyValue     { return PropertyValue{Kind: KindInt, Int: v} }
func FloatValue(v float64) PropertyValue { return PropertyValue{Kind: KindFloat, Float: v} }
func StringValue(v string) PropertyValue { return PropertyValue{Kind: KindString, Str: v} }

// Interface returns the underlying scalar as an any.
func (v PropertyValue) Interface() interface{} {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	default:
		return v.Str
	}
}

// MarshalJSON emits the raw scalar, not the tagged form.
func (v PropertyValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON infers the kind from the JSON type. Numbers without a
// fractional part become integers.
func (v *PropertyValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case bool:
		*v = BoolValue(val)
	case string:
		*v = StringValue(val)
	case json.Number:
		if i, err := val.Int64(); err == nil {
			*v = IntValue(i)
			return nil
		}
		f, err := val.Float64()
		if err != nil {
			return fmt.Errorf("unsupported numeric property value %q", val.String())
		}
		*v = FloatValue(f)
	default:
		return fmt.Errorf("unsupported property value type %T", raw)
	}
	return nil
}
