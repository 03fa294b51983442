// Package config provides the typed key/value configuration attached to each
// component instance in a topology. Entries remember the exact type they were
// stored at; reads at another type go through the cast checker and fail with
// a ConfigEntryCastError rather than silently widening or overflowing.
package config

import (
	"reflect"
	"sort"
	"strconv"

	"github.com/c360/wirekit/castcheck"
	pkgerrors "github.com/c360/wirekit/errors"
	"github.com/c360/wirekit/typename"
)

// Scalar enumerates the value types a config entry can store: strings plus
// the integral types understood by the cast checker.
type Scalar interface {
	string | bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// Integral is Scalar without string.
type Integral interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64
}

// Entry is a single typed configuration value. Use Value to read it.
type Entry interface {
	// Key returns the entry key.
	Key() string
	// Type returns the display name of the stored type.
	Type() string
	// String returns the value rendering: identity for strings, canonical
	// decimal for integrals, "true"/"false" for bool.
	String() string

	get(target reflect.Type) (any, error)
}

// Config maps entry keys to entries. Keys are unique; insertion order is
// irrelevant.
type Config map[string]Entry

// Get returns the entry for key, if present.
func (c Config) Get(key string) (Entry, bool) {
	e, ok := c[key]
	return e, ok
}

// Keys returns all entry keys, sorted.
func (c Config) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// New creates an entry storing value at its exact type.
func New[T Scalar](key string, value T) Entry {
	if s, ok := any(value).(string); ok {
		return &stringEntry{key: key, val: s}
	}
	return &integralEntry[T]{key: key, val: value}
}

// Value reads an entry at type T. Strings read back as strings only;
// integral entries read back at any integral type the stored value can be
// safely reinterpreted as. Every other combination fails with a
// ConfigEntryCastError.
func Value[T Scalar](e Entry) (T, error) {
	v, err := e.get(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

type stringEntry struct {
	key string
	val string
}

func (e *stringEntry) Key() string    { return e.key }
func (e *stringEntry) Type() string   { return typename.Of[string]() }
func (e *stringEntry) String() string { return e.val }

func (e *stringEntry) get(target reflect.Type) (any, error) {
	if target.Kind() != reflect.String {
		return nil, &pkgerrors.ConfigEntryCastError{
			Key:        e.key,
			Value:      e.val,
			SourceType: e.Type(),
			TargetType: typename.OfType(target),
		}
	}
	return e.val, nil
}

type integralEntry[T Scalar] struct {
	key string
	val T
}

func (e *integralEntry[T]) Key() string  { return e.key }
func (e *integralEntry[T]) Type() string { return typename.Of[T]() }

func (e *integralEntry[T]) String() string {
	switch v := any(e.val).(type) {
	case bool:
		return strconv.FormatBool(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		return ""
	}
}

func (e *integralEntry[T]) get(target reflect.Type) (any, error) {
	if !castcheck.OK(any(e.val), target) {
		return nil, &pkgerrors.ConfigEntryCastError{
			Key:        e.key,
			Value:      e.String(),
			SourceType: e.Type(),
			TargetType: typename.OfType(target),
		}
	}
	return reinterpret(any(e.val), target), nil
}

// reinterpret converts an integral value that already passed the cast check
// to the target type. Bool conversions are spelled out because reflect will
// not convert between bool and the numeric kinds.
func reinterpret(value any, target reflect.Type) any {
	if b, ok := value.(bool); ok {
		if target.Kind() == reflect.Bool {
			return b
		}
		var n uint64
		if b {
			n = 1
		}
		return reflect.ValueOf(n).Convert(target).Interface()
	}
	rv := reflect.ValueOf(value)
	if target.Kind() == reflect.Bool {
		// Value is known to be 0 or 1.
		if rv.CanInt() {
			return rv.Int() == 1
		}
		return rv.Uint() == 1
	}
	return rv.Convert(target).Interface()
}
