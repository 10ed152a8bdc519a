package deep

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"time"

	"github.com/hasbyte1/go-datakit/value"
)

// Type tags of the canonical encoding. Every encoded value starts with one.
const (
	tagUndefined = 'u'
	tagNull      = 'z'
	tagBoolean   = 'b'
	tagNumber    = 'n'
	tagBigInt    = 'i'
	tagString    = 's'
	tagSymbol    = 'y'
	tagDate      = 'd'
	tagArray     = 'a'
	tagObject    = 'o'
	tagMap       = 'm'
	tagSet       = 'S'
	tagError     = 'e'
	tagFunction  = 'f'
	tagOpaque    = 'w'
)

// canonical returns a byte encoding of v in which structurally equal values
// encode identically: object keys are sorted, map entries and set members
// are ordered by their own encoding, and numbers are written the same way
// whatever their Go type. With unordered set, array elements are sorted too.
func canonical(v any, unordered bool) []byte {
	var buf bytes.Buffer
	encodeTo(&buf, v, unordered)
	return buf.Bytes()
}

func encodeTo(buf *bytes.Buffer, v any, unordered bool) {
	v = value.Indirect(v)
	switch value.Of(v) {
	case value.KindUndefined:
		buf.WriteByte(tagUndefined)
	case value.KindNull:
		buf.WriteByte(tagNull)
	case value.KindBoolean:
		buf.WriteByte(tagBoolean)
		if reflect.ValueOf(v).Bool() {
			buf.WriteByte(1)
		} else {
			buf.WriteByte(0)
		}
	case value.KindNumber:
		writeBytes(buf, tagNumber, []byte(toNumber(v).String()))
	case value.KindBigInt:
		b, _ := value.BigInt(v)
		writeBytes(buf, tagBigInt, []byte(b.String()))
	case value.KindString:
		writeBytes(buf, tagString, []byte(reflect.ValueOf(v).String()))
	case value.KindSymbol:
		id := v.(value.Symbol).ID()
		writeBytes(buf, tagSymbol, id[:])
	case value.KindDate:
		writeBytes(buf, tagDate, []byte(dateOf(v).UTC().Format(time.RFC3339Nano)))
	case value.KindArray:
		items, _ := value.Elements(v)
		parts := make([][]byte, len(items))
		for i, item := range items {
			parts[i] = canonical(item, unordered)
		}
		if unordered {
			slices.SortFunc(parts, bytes.Compare)
		}
		writeParts(buf, tagArray, parts)
	case value.KindObject:
		if isOpaque(v) {
			var key bytes.Buffer
			writeOpaque(&key, reflect.ValueOf(v))
			writeBytes(buf, tagOpaque, key.Bytes())
			return
		}
		fields, _ := value.Fields(v)
		slices.SortFunc(fields, func(a, b value.Entry) int { return cmpStrings(a.Key, b.Key) })
		parts := make([][]byte, len(fields))
		for i, f := range fields {
			var part bytes.Buffer
			writeBytes(&part, tagString, []byte(f.Key))
			encodeTo(&part, f.Value, unordered)
			parts[i] = part.Bytes()
		}
		writeParts(buf, tagObject, parts)
	case value.KindMap:
		entries, _ := value.MapEntries(v)
		parts := make([][]byte, len(entries))
		for i, e := range entries {
			var part bytes.Buffer
			encodeTo(&part, e.Key, unordered)
			encodeTo(&part, e.Value, unordered)
			parts[i] = part.Bytes()
		}
		slices.SortFunc(parts, bytes.Compare)
		writeParts(buf, tagMap, parts)
	case value.KindSet:
		members := v.(*value.Set).Values()
		parts := make([][]byte, len(members))
		for i, m := range members {
			parts[i] = canonical(m, unordered)
		}
		slices.SortFunc(parts, bytes.Compare)
		writeParts(buf, tagSet, parts)
	case value.KindError:
		writeBytes(buf, tagError, []byte(v.(error).Error()))
	case value.KindFunction:
		writeBytes(buf, tagFunction, []byte(strconv.FormatUint(uint64(reflect.ValueOf(v).Pointer()), 16)))
	default:
		writeBytes(buf, tagOpaque, []byte(fmt.Sprintf("%p", v)))
	}
}

func writeBytes(buf *bytes.Buffer, tag byte, b []byte) {
	buf.WriteByte(tag)
	buf.Write(binary.AppendUvarint(nil, uint64(len(b))))
	buf.Write(b)
}

func writeParts(buf *bytes.Buffer, tag byte, parts [][]byte) {
	buf.WriteByte(tag)
	buf.Write(binary.AppendUvarint(nil, uint64(len(parts))))
	for _, p := range parts {
		buf.Write(p)
	}
}

func dateOf(v any) time.Time {
	if p, ok := v.(*time.Time); ok {
		return *p
	}
	return v.(time.Time)
}

// isOpaque reports whether an object-kind value has no fields to compare,
// such as a channel or a struct without exported fields. Those values
// compare with == when they can, and never equal anything otherwise.
func isOpaque(v any) bool {
	switch v.(type) {
	case *value.Object, map[string]any:
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map:
		return false
	case reflect.Struct:
		return value.Sealed(v)
	}
	return true
}

// writeOpaque encodes v so that values which are == encode identically.
// Reference kinds are written as their address.
func writeOpaque(buf *bytes.Buffer, rv reflect.Value) {
	writeBytes(buf, tagString, []byte(rv.Type().String()))
	switch rv.Kind() {
	case reflect.Struct:
		for i := range rv.NumField() {
			writeOpaque(buf, rv.Field(i))
		}
	case reflect.Array:
		for i := range rv.Len() {
			writeOpaque(buf, rv.Index(i))
		}
	case reflect.Interface:
		if rv.IsNil() {
			buf.WriteByte(tagNull)
			return
		}
		writeOpaque(buf, rv.Elem())
	case reflect.Bool:
		writeBytes(buf, tagBoolean, strconv.AppendBool(nil, rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeBytes(buf, tagNumber, strconv.AppendInt(nil, rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		writeBytes(buf, tagNumber, strconv.AppendUint(nil, rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		writeBytes(buf, tagNumber, appendFloat(nil, rv.Float()))
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		writeBytes(buf, tagNumber, appendFloat(appendFloat(nil, real(c)), imag(c)))
	case reflect.String:
		writeBytes(buf, tagString, []byte(rv.String()))
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer, reflect.Map, reflect.Slice, reflect.Func:
		writeBytes(buf, tagOpaque, strconv.AppendUint(nil, uint64(rv.Pointer()), 16))
	}
}

// appendFloat writes f with negative zero folded into zero, as == does.
func appendFloat(dst []byte, f float64) []byte {
	if f == 0 {
		f = 0
	}
	return strconv.AppendFloat(append(dst, ','), f, 'g', -1, 64)
}

// ─────────────────────────────────────────────────────────────────────────────
// Numbers
// ─────────────────────────────────────────────────────────────────────────────

// number is a number-kind value normalised to one of three representations
// so that integers compare exactly.
type number struct {
	kind byte // 'i', 'u' or 'f'
	i    int64
	u    uint64
	f    float64
}

func toNumber(v any) number {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: 'i', i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{kind: 'u', u: rv.Uint()}
	}
	return number{kind: 'f', f: rv.Float()}
}

func (n number) isNaN() bool { return n.kind == 'f' && math.IsNaN(n.f) }

// String formats integral values as integers whatever their Go type, so
// 1, uint8(1) and 1.0 share a representation. Floats take the integer form
// only inside the int64 and uint64 ranges, where [compareNumbers] can match
// them against an integer.
func (n number) String() string {
	switch n.kind {
	case 'i':
		return strconv.FormatInt(n.i, 10)
	case 'u':
		return strconv.FormatUint(n.u, 10)
	}
	if n.f == math.Trunc(n.f) {
		switch {
		case n.f >= -(1<<63) && n.f < 1<<63:
			return strconv.FormatInt(int64(n.f), 10)
		case n.f >= 1<<63 && n.f < 1<<64:
			return strconv.FormatUint(uint64(n.f), 10)
		}
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
