package core

import (
	"reflect"

	"github.com/google/uuid"
)

// Key is an identity tag used to distinguish logically equal widgets.
//
// Keys are immutable once constructed and compared with Matches. The repaint
// pipeline stores keys on every widget but does not yet consult them; they
// exist for a future keyed reconciler.
type Key interface {
	// Matches reports whether the two keys denote the same widget identity.
	Matches(other Key) bool
}

// AnyKey is the default, non-distinguishing identity. An AnyKey matches every
// other key.
type AnyKey struct{}

// Matches always returns true.
func (AnyKey) Matches(Key) bool { return true }

// ValueKey is a key represented by its value. Two ValueKeys match iff their
// values are equal.
type ValueKey struct {
	Value any
}

// Matches reports whether other is a ValueKey with an equal value.
func (k ValueKey) Matches(other Key) bool {
	o, ok := other.(ValueKey)
	if !ok {
		return false
	}
	return reflect.DeepEqual(k.Value, o.Value)
}

// UniqueKey matches only keys carrying the same generated token. Construct
// with NewUniqueKey; the zero UniqueKey matches nothing.
type UniqueKey struct {
	token uuid.UUID
}

// NewUniqueKey returns a key with a fresh process-wide unique token.
func NewUniqueKey() UniqueKey {
	return UniqueKey{token: uuid.New()}
}

// Matches reports whether other is a UniqueKey with the same token.
func (k UniqueKey) Matches(other Key) bool {
	o, ok := other.(UniqueKey)
	if !ok {
		return false
	}
	if k.token == (uuid.UUID{}) {
		return false
	}
	return k.token == o.token
}
