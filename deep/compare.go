package deep

import (
	"bytes"
	"cmp"
	"math"
	"reflect"

	"github.com/hasbyte1/go-datakit/value"
)

// kindRank orders kinds relative to each other when sorting mixed input.
var kindRank = map[value.Kind]int{
	value.KindUndefined: 0,
	value.KindNull:      1,
	value.KindBoolean:   2,
	value.KindNumber:    3,
	value.KindBigInt:    4,
	value.KindString:    5,
	value.KindSymbol:    6,
	value.KindDate:      7,
	value.KindArray:     8,
	value.KindObject:    9,
	value.KindMap:       10,
	value.KindSet:       11,
	value.KindError:     12,
	value.KindFunction:  13,
	value.KindWeakMap:   14,
	value.KindWeakSet:   15,
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, with or
// after b. Values of different kinds sort by kind; inside a kind, numbers
// and strings use their natural order, false sorts before true, dates sort
// chronologically and arrays compare element by element. Other composites
// sort by their canonical encoding.
//
// Values that are [Equal] always compare as 0, so sorting brings duplicates
// next to each other. The converse does not hold: distinct errors with the
// same message, or opaque values that cannot be compared with ==, tie
// without being equal.
func Compare(a, b any) int { return std.Compare(a, b) }

// Compare is the configured form of the package-level [Compare]. With
// [IgnoreOrder], arrays sort by the encoding of their sorted elements.
func (c *Comparer) Compare(a, b any) int {
	a, b = value.Indirect(a), value.Indirect(b)
	ka, kb := value.Of(a), value.Of(b)
	if ka != kb {
		return cmp.Compare(kindRank[ka], kindRank[kb])
	}
	switch ka {
	case value.KindUndefined, value.KindNull:
		return 0
	case value.KindBoolean:
		x, y := reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case value.KindNumber:
		return compareNumbers(toNumber(a), toNumber(b))
	case value.KindBigInt:
		x, _ := value.BigInt(a)
		y, _ := value.BigInt(b)
		return x.Cmp(y)
	case value.KindString:
		return cmpStrings(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
	case value.KindDate:
		return dateOf(a).Compare(dateOf(b))
	case value.KindError:
		return cmpStrings(a.(error).Error(), b.(error).Error())
	case value.KindArray:
		if !c.ignoreOrder {
			return c.compareArrays(a, b)
		}
	}
	return bytes.Compare(canonical(a, c.ignoreOrder), canonical(b, c.ignoreOrder))
}

func (c *Comparer) compareArrays(a, b any) int {
	xs, _ := value.Elements(a)
	ys, _ := value.Elements(b)
	for i := 0; i < len(xs) && i < len(ys); i++ {
		if n := c.Compare(xs[i], ys[i]); n != 0 {
			return n
		}
	}
	return cmp.Compare(len(xs), len(ys))
}

func compareNumbers(a, b number) int {
	switch {
	case a.kind == 'i' && b.kind == 'i':
		return cmp.Compare(a.i, b.i)
	case a.kind == 'u' && b.kind == 'u':
		return cmp.Compare(a.u, b.u)
	case a.kind == 'i' && b.kind == 'u':
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	case a.kind == 'u' && b.kind == 'i':
		return -compareNumbers(b, a)
	case a.kind == 'f' && b.kind == 'f':
		return cmp.Compare(a.f, b.f)
	case b.kind == 'f':
		return compareIntFloat(a, b.f)
	}
	return -compareIntFloat(b, a.f)
}

// compareIntFloat compares an integer with a float without rounding the
// integer to float64, which would tie neighbours above 2^53.
func compareIntFloat(n number, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case math.IsInf(f, 1):
		return -1
	case math.IsInf(f, -1):
		return 1
	}
	t := math.Trunc(f)
	switch n.kind {
	case 'i':
		if t < -(1 << 63) {
			return 1
		}
		if t >= 1<<63 {
			return -1
		}
		if c := cmp.Compare(n.i, int64(t)); c != 0 {
			return c
		}
	case 'u':
		if t < 0 {
			return 1
		}
		if t >= 1<<64 {
			return -1
		}
		if c := cmp.Compare(n.u, uint64(t)); c != 0 {
			return c
		}
	}
	// Same integer part: the fraction of f decides.
	return cmp.Compare(t, f)
}

func cmpStrings(a, b string) int { return cmp.Compare(a, b) }
