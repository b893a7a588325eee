package core

import "reflect"

// FNV-1a parameters.
const (
	hashOffset64 uint64 = 14695981039346656037
	hashPrime64  uint64 = 1099511628211
)

// Hasher folds widget fields into a structural content hash.
//
// The fold is FNV-1a over the field values with each field length-prefixed,
// so adjacent string fields cannot alias each other. The fold methods return
// the hasher for chaining:
//
//	core.NewHasher("LabelButton").String(label).String(tooltip).Func(onTap).Sum()
//
// The hash is unsalted; distinct configurations colliding is accepted, the
// hash is only a change-detection fingerprint.
type Hasher struct {
	sum uint64
}

// NewHasher returns a hasher seeded with the widget kind so that two widget
// kinds with identical fields hash differently.
func NewHasher(kind string) *Hasher {
	h := &Hasher{sum: hashOffset64}
	return h.String(kind)
}

func (h *Hasher) foldByte(b byte) {
	h.sum ^= uint64(b)
	h.sum *= hashPrime64
}

func (h *Hasher) foldUint64(v uint64) {
	for i := 0; i < 8; i++ {
		h.foldByte(byte(v >> (8 * i)))
	}
}

// String folds a string field.
func (h *Hasher) String(s string) *Hasher {
	h.foldUint64(uint64(len(s)))
	for i := 0; i < len(s); i++ {
		h.foldByte(s[i])
	}
	return h
}

// Strings folds a slice of string fields.
func (h *Hasher) Strings(ss []string) *Hasher {
	h.foldUint64(uint64(len(ss)))
	for _, s := range ss {
		h.String(s)
	}
	return h
}

// Int folds an integer field.
func (h *Hasher) Int(n int) *Hasher {
	h.foldUint64(uint64(n))
	return h
}

// Uint64 folds a raw 64-bit value, typically a child's content hash.
func (h *Hasher) Uint64(v uint64) *Hasher {
	h.foldUint64(v)
	return h
}

// Bool folds a boolean field.
func (h *Hasher) Bool(v bool) *Hasher {
	if v {
		h.foldByte(1)
	} else {
		h.foldByte(0)
	}
	return h
}

// Func folds the identity of a callback value. Identity is the function's
// code pointer, so two distinct callbacks of the same signature hash
// differently while the same function hashes stably across builds. A nil
// callback folds as zero.
func (h *Hasher) Func(fn any) *Hasher {
	var ptr uint64
	if fn != nil {
		v := reflect.ValueOf(fn)
		if v.Kind() == reflect.Func && !v.IsNil() {
			ptr = uint64(v.Pointer())
		}
	}
	h.foldUint64(ptr)
	return h
}

// Sum returns the folded hash.
func (h *Hasher) Sum() uint64 {
	return h.sum
}
