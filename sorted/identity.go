package sorted

import "reflect"

// identical reports reference identity between two payloads, the notion
// of "exact match" used by FindExact. Pointers, maps, channels and
// functions are identical when they are the same instance; slices when
// they share the same data pointer and length; plainly comparable kinds
// fall back to ==. Everything else (distinct non-comparable values) is
// never identical, even if the comparator considers the values equal.
func identical[T any](a, b T) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)

	if va.Kind() != vb.Kind() {
		return false
	}

	switch va.Kind() {
	case reflect.Invalid:
		// Both are nil interfaces.
		return true
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Len() == vb.Len() && va.UnsafePointer() == vb.UnsafePointer()
	default:
		if va.Type() == vb.Type() && va.Comparable() {
			return va.Interface() == vb.Interface()
		}

		return false
	}
}
