package govalid

import "reflect"

// isNilInstance reports whether the instance handed to Validate is nil in a
// way that makes property access meaningless (nil pointer, interface, map,
// slice, func or channel). Value types are never nil.
func isNilInstance(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
