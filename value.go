package liveprops

import "reflect"

// IdentifierKey marks an object value as a reference to a server-owned
// entity. The value under this key is the entity's stable identity;
// the other fields of the object are mutable presentation data.
const IdentifierKey = "@id"

// ExtractIdentifier resolves the identity of a value. An object
// carrying the identifier marker identifies as the marker's value;
// anything else identifies as itself. marked reports whether the
// marker was present.
//
// All marker checks go through here, never inline key probes.
func ExtractIdentifier(v any) (id any, marked bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return v, false
	}
	id, marked = obj[IdentifierKey]
	if !marked {
		return v, false
	}
	return id, true
}

// sameValue is the identity comparison Set uses for its no-op check.
// Comparable values compare with ==; maps, slices and funcs compare by
// underlying reference. Two structurally equal but distinct objects
// count as different values.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return ra.Pointer() == rb.Pointer()
	}
	if !ra.Comparable() {
		return false
	}
	return a == b
}
