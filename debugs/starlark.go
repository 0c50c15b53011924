package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/lox/loxvm"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	// lox values
	case loxvm.Nil:
		return starlark.None
	case loxvm.Bool:
		return starlark.Bool(v)
	case loxvm.Number:
		return starlark.Float(v)
	case loxvm.String:
		return starlark.String(v)
	case *loxvm.Native:
		return starlark.NewBuiltin(v.Name, func(
			thread *starlark.Thread,
			fn *starlark.Builtin,
			args starlark.Tuple,
			kwargs []starlark.Tuple,
		) (starlark.Value, error) {
			values := make([]loxvm.Value, 0, len(args))
			for _, arg := range args {
				value, err := fromStarlarkValue(arg)
				if err != nil {
					return nil, err
				}
				values = append(values, value)
			}
			if len(values) != v.Arity() {
				return nil, fmt.Errorf("%s: expected %d arguments but got %d", v.Name, v.Arity(), len(values))
			}
			ret, err := v.Call(nil, values)
			if err != nil {
				return nil, err
			}
			return toStarlarkValue(ret), nil
		})

	case bool:
		return starlark.Bool(v)
	case []byte:
		return starlark.Bytes(v)
	case string:
		return starlark.String(v)

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

func fromStarlarkValue(v starlark.Value) (loxvm.Value, error) {
	switch v := v.(type) {
	case starlark.NoneType:
		return loxvm.Nil{}, nil
	case starlark.Bool:
		return loxvm.Bool(v), nil
	case starlark.Float:
		return loxvm.Number(v), nil
	case starlark.Int:
		return loxvm.Number(v.Float()), nil
	case starlark.String:
		return loxvm.String(v), nil
	}
	return nil, fmt.Errorf("no lox value for starlark %s", v.Type())
}
