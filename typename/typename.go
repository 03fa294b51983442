// Package typename derives the stable display names the container keys its
// registries by. Two types are the same dependency type iff their names are
// equal; names are cached and never change for the lifetime of the process.
package typename

import (
	"reflect"
	"sync"
)

var cache sync.Map // reflect.Type -> string

// Of returns the display name of T. Pointer indirection is normalized away,
// so Of[*Motor] and Of[Motor] yield the same name; a registry can never end
// up with two registers for what a caller considers one type.
func Of[T any]() string {
	return OfType(reflect.TypeOf((*T)(nil)).Elem())
}

// OfType returns the display name for a reflected type, applying the same
// normalization as Of.
func OfType(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name, ok := cache.Load(t); ok {
		return name.(string)
	}
	name := t.String()
	cache.Store(t, name)
	return name
}
