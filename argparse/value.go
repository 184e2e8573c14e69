package argparse

import (
	"strconv"
	"strings"
)

// ValueKind tags the variant stored in a Value.
type ValueKind uint8

const (
	ValueAbsent ValueKind = iota
	ValueInt
	ValueFloat
	ValueString
	ValueBool
	ValueList
)

// Value is the tagged bound value of an argument. The zero Value is Absent.
// Exactly one variant is populated; accessors report whether the requested
// variant is the stored one.
type Value struct {
	kind ValueKind
	num  int
	flt  float64
	str  string
	flag bool
	list []string
}

// IntValue creates an integer Value.
func IntValue(v int) Value { return Value{kind: ValueInt, num: v} }

// FloatValue creates a float Value.
func FloatValue(v float64) Value { return Value{kind: ValueFloat, flt: v} }

// StringValue creates a string Value.
func StringValue(v string) Value { return Value{kind: ValueString, str: v} }

// BoolValue creates a boolean Value.
func BoolValue(v bool) Value { return Value{kind: ValueBool, flag: v} }

// ListValue creates a list Value, copying the input slice.
func ListValue(items []string) Value {
	owned := make([]string, len(items))
	copy(owned, items)
	return Value{kind: ValueList, list: owned}
}

// Kind returns the populated variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsAbsent reports whether no value has been bound.
func (v Value) IsAbsent() bool { return v.kind == ValueAbsent }

// Int returns the integer variant.
func (v Value) Int() (int, bool) {
	if v.kind != ValueInt {
		return 0, false
	}
	return v.num, true
}

// Float returns the float variant.
func (v Value) Float() (float64, bool) {
	if v.kind != ValueFloat {
		return 0, false
	}
	return v.flt, true
}

// Str returns the string variant.
func (v Value) Str() (string, bool) {
	if v.kind != ValueString {
		return "", false
	}
	return v.str, true
}

// Bool returns the boolean variant.
func (v Value) Bool() (bool, bool) {
	if v.kind != ValueBool {
		return false, false
	}
	return v.flag, true
}

// List returns the list variant. The slice is owned by the argument;
// callers must not modify it.
func (v Value) List() ([]string, bool) {
	if v.kind != ValueList {
		return nil, false
	}
	return v.list, true
}

// appendItem adds one element to the list variant, converting an absent
// value into a fresh single-element list.
func (v *Value) appendItem(item string) {
	if v.kind != ValueList {
		v.kind = ValueList
		v.num, v.flt, v.str, v.flag = 0, 0, "", false
		v.list = nil
	}
	v.list = append(v.list, item)
}

// String renders the value for display and debugging.
func (v Value) String() string {
	switch v.kind {
	case ValueAbsent:
		return "<absent>"
	case ValueInt:
		return strconv.Itoa(v.num)
	case ValueFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	case ValueString:
		return v.str
	case ValueBool:
		return strconv.FormatBool(v.flag)
	case ValueList:
		return "[" + strings.Join(v.list, ", ") + "]"
	default:
		return "<invalid>"
	}
}
