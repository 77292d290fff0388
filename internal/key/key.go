package key

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Digest stands in for a value that cannot be used as a map key.
type Digest struct {
	Type string
	Sum  uint64
}

// Text keys a non-comparable fmt.Stringer. Type keeps values of different
// types with the same String apart.
type Text struct {
	Type string
	Text string
}

// Of turns v into something usable as a map key.
//
//   - nil and comparable values are returned as is.
//   - fmt.Stringer values that are not comparable are keyed by a Text.
//   - anything else is keyed by a Digest of its dynamic types and values,
//     walked recursively.
func Of(v any) any {
	if v == nil {
		return nil
	}
	if Comparable(v) {
		return v
	}
	if stringer, ok := v.(fmt.Stringer); ok {
		return Text{Type: fmt.Sprintf("%T", v), Text: stringer.String()}
	}
	h := xxhash.New()
	write(h, reflect.ValueOf(v))
	return Digest{Type: fmt.Sprintf("%T", v), Sum: h.Sum64()}
}

// All applies Of to every element of vs.
func All(vs []any) []any {
	keys := make([]any, len(vs))
	for i, v := range vs {
		keys[i] = Of(v)
	}
	return keys
}

// Comparable reports whether v can be compared with == without panicking.
func Comparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

// write feeds the type and the content of v to h. Every value is prefixed
// by its type so that 1, int64(1) and 1.0 inside an []any hash apart.
func write(h *xxhash.Digest, v reflect.Value) {
	if !v.IsValid() {
		_, _ = h.WriteString("<nil>;")
		return
	}
	_, _ = h.WriteString(v.Type().String())
	_, _ = h.WriteString(":")

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			_, _ = h.WriteString("<nil>;")
			return
		}
		write(h, v.Elem())
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			_, _ = h.WriteString("<nil>;")
			return
		}
		writeUint(h, uint64(v.Len()))
		for i := 0; i < v.Len(); i++ {
			write(h, v.Index(i))
		}
	case reflect.Map:
		if v.IsNil() {
			_, _ = h.WriteString("<nil>;")
			return
		}
		// entries are hashed on their own and sorted, map order is random
		entries := make([]uint64, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			eh := xxhash.New()
			write(eh, iter.Key())
			write(eh, iter.Value())
			entries = append(entries, eh.Sum64())
		}
		slices.Sort(entries)
		writeUint(h, uint64(len(entries)))
		for _, e := range entries {
			writeUint(h, e)
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			write(h, v.Field(i))
		}
	case reflect.String:
		writeUint(h, uint64(v.Len()))
		_, _ = h.WriteString(v.String())
	case reflect.Bool:
		if v.Bool() {
			writeUint(h, 1)
		} else {
			writeUint(h, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(h, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeUint(h, v.Uint())
	case reflect.Float32, reflect.Float64:
		writeUint(h, math.Float64bits(v.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeUint(h, math.Float64bits(real(c)))
		writeUint(h, math.Float64bits(imag(c)))
	default:
		// pointers, channels, functions: identity
		writeUint(h, uint64(v.Pointer()))
	}
	_, _ = h.WriteString(";")
}

func writeUint(h *xxhash.Digest, n uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	_, _ = h.Write(buf[:])
}
