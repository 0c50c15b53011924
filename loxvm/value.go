package loxvm

import (
	"math"
	"strconv"
)

type Value interface {
	loxValue()
}

type (
	Nil    struct{}
	Bool   bool
	Number float64
	String string
)

func (Nil) loxValue()    {}
func (Bool) loxValue()   {}
func (Number) loxValue() {}
func (String) loxValue() {}

var (
	_ Value = Nil{}
	_ Value = Bool(false)
	_ Value = Number(0)
	_ Value = String("")
	_ Value = (*Native)(nil)
)

func IsTruthy(v Value) bool {
	switch v := v.(type) {
	case nil, Nil:
		return false
	case Bool:
		return bool(v)
	}
	return true
}

func IsEqual(a, b Value) bool {
	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		b, ok := b.(Bool)
		return ok && a == b
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	case *Native:
		b, ok := b.(*Native)
		return ok && a == b
	}
	return false
}

// Stringify returns the text print writes for v
func Stringify(v Value) string {
	switch v := v.(type) {
	case nil, Nil:
		return "nil"
	case Bool:
		return strconv.FormatBool(bool(v))
	case Number:
		return formatNumber(float64(v))
	case String:
		return string(v)
	case *Native:
		return "<native fn " + v.Name + ">"
	}
	return "<unknown>"
}

// repr is like Stringify but quotes strings; used in error messages
func repr(v Value) string {
	if s, ok := v.(String); ok {
		return strconv.Quote(string(s))
	}
	return Stringify(v)
}

func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func typeName(v Value) string {
	switch v.(type) {
	case nil, Nil:
		return "nil"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case *Native:
		return "function"
	}
	return "unknown"
}

// describe names the type and value of v for error messages
func describe(v Value) string {
	switch v.(type) {
	case nil, Nil:
		return "nil"
	}
	return typeName(v) + " " + repr(v)
}
