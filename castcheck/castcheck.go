// Package castcheck decides whether an integral value stored at one type may
// be safely re-read at another. A reinterpretation is allowed iff the target
// type is no wider than the source (a wider read would consume bytes the
// stored value never had) and the value lies within the target's range,
// compared in whichever signedness avoids a lossy coercion.
//
// The integral types are the eight sized integer widths plus bool, which
// behaves as a one-byte unsigned integral with range [0, 1].
package castcheck

import (
	"math"
	"reflect"
)

type limits struct {
	size   uintptr
	signed bool
	minMag uint64 // magnitude of the most negative value; 0 for unsigned
	max    uint64
}

var kindLimits = map[reflect.Kind]limits{
	reflect.Bool:   {size: 1, signed: false, max: 1},
	reflect.Int8:   {size: 1, signed: true, minMag: 128, max: math.MaxInt8},
	reflect.Int16:  {size: 2, signed: true, minMag: 32768, max: math.MaxInt16},
	reflect.Int32:  {size: 4, signed: true, minMag: 1 << 31, max: math.MaxInt32},
	reflect.Int64:  {size: 8, signed: true, minMag: 1 << 63, max: math.MaxInt64},
	reflect.Uint8:  {size: 1, max: math.MaxUint8},
	reflect.Uint16: {size: 2, max: math.MaxUint16},
	reflect.Uint32: {size: 4, max: math.MaxUint32},
	reflect.Uint64: {size: 8, max: math.MaxUint64},
}

// OK reports whether value may be re-read as the target type. The value must
// be one of bool, int8..int64, uint8..uint64; anything else is never
// castable, and neither is a non-integral target.
func OK(value any, target reflect.Type) bool {
	neg, mag, src, ok := decompose(value)
	if !ok {
		return false
	}
	tgt, ok := kindLimits[target.Kind()]
	if !ok {
		return false
	}
	if tgt.size > src.size {
		return false
	}
	return inRange(tgt, neg, mag)
}

// decompose splits an integral value into sign and magnitude along with its
// type's limits.
func decompose(value any) (neg bool, mag uint64, src limits, ok bool) {
	switch v := value.(type) {
	case bool:
		if v {
			mag = 1
		}
		return false, mag, kindLimits[reflect.Bool], true
	case int8:
		neg, mag = split(int64(v))
		return neg, mag, kindLimits[reflect.Int8], true
	case int16:
		neg, mag = split(int64(v))
		return neg, mag, kindLimits[reflect.Int16], true
	case int32:
		neg, mag = split(int64(v))
		return neg, mag, kindLimits[reflect.Int32], true
	case int64:
		neg, mag = split(v)
		return neg, mag, kindLimits[reflect.Int64], true
	case uint8:
		return false, uint64(v), kindLimits[reflect.Uint8], true
	case uint16:
		return false, uint64(v), kindLimits[reflect.Uint16], true
	case uint32:
		return false, uint64(v), kindLimits[reflect.Uint32], true
	case uint64:
		return false, v, kindLimits[reflect.Uint64], true
	default:
		return false, 0, limits{}, false
	}
}

func split(v int64) (neg bool, mag uint64) {
	if v < 0 {
		// Avoids overflow for MinInt64.
		return true, uint64(-(v + 1)) + 1
	}
	return false, uint64(v)
}

func inRange(tgt limits, neg bool, mag uint64) bool {
	if neg {
		return tgt.signed && mag <= tgt.minMag
	}
	return mag <= tgt.max
}
