package rop

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// GetTag reads a tag as T. The value is returned directly when it already is
// a T; otherwise a best-effort conversion is attempted (numbers between
// numeric kinds when no precision is lost, strings parsed into numbers and
// bools, anything formatted into a string). def is returned on any miss.
func GetTag[T any](r Reason, key string, def T) T {
	if IsNil(r) {
		return def
	}
	v, ok := r.Tag(key)
	if !ok {
		return def
	}
	out, ok := convertTag[T](v)
	if !ok {
		return def
	}
	return out
}

// RequireTag reads a tag as T and reports *KeyNotFoundError when it is
// absent or *TypeConversionError when it cannot be converted.
func RequireTag[T any](r Reason, key string) (T, error) {
	var zero T
	if IsNil(r) {
		return zero, &KeyNotFoundError{Key: key}
	}
	v, ok := r.Tag(key)
	if !ok {
		return zero, &KeyNotFoundError{Key: key}
	}
	out, ok := convertTag[T](v)
	if !ok {
		return zero, &TypeConversionError{
			Key:  key,
			From: fmt.Sprintf("%T", v),
			To:   reflect.TypeFor[T]().String(),
		}
	}
	return out, nil
}

func GetString(r Reason, key, def string) string {
	return GetTag(r, key, def)
}

func GetInt(r Reason, key string, def int) int {
	return GetTag(r, key, def)
}

func GetBool(r Reason, key string, def bool) bool {
	return GetTag(r, key, def)
}

func convertTag[T any](v any) (res T, ok bool) {
	if t, ok := v.(T); ok {
		return t, true
	}

	var zero T
	if v == nil {
		return zero, false
	}
	defer func() {
		// reflect conversions such as slice to array panic on length mismatch
		if recover() != nil {
			res, ok = zero, false
		}
	}()

	target := reflect.TypeFor[T]()
	src := reflect.ValueOf(v)

	var out reflect.Value
	switch {
	case target.Kind() == reflect.String:
		out = reflect.ValueOf(toString(v)).Convert(target)
	case src.Kind() == reflect.String:
		parsed, ok := parseInto(strings.TrimSpace(src.String()), target)
		if !ok {
			return zero, false
		}
		out = parsed
	case isNumeric(src.Kind()) && isNumeric(target.Kind()):
		if src.CanInt() && src.Int() < 0 && isUnsigned(target.Kind()) {
			return zero, false
		}
		converted := src.Convert(target)
		if src.CanUint() && converted.CanInt() && converted.Int() < 0 {
			return zero, false
		}
		// reject conversions that lose the value, e.g. 3.5 -> 3 or 300 -> int8
		if !converted.Convert(src.Type()).Equal(src) {
			return zero, false
		}
		out = converted
	case src.Type().ConvertibleTo(target) && target.Kind() != reflect.Interface:
		out = src.Convert(target)
	default:
		return zero, false
	}

	res, ok = out.Interface().(T)
	return res, ok
}

func parseInto(s string, target reflect.Type) (reflect.Value, bool) {
	out := reflect.New(target).Elem()
	switch target.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return reflect.Value{}, false
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, target.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, target.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		out.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, target.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		out.SetFloat(f)
	default:
		return reflect.Value{}, false
	}
	return out, true
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case error:
		return s.Error()
	}
	return fmt.Sprint(v)
}
