package core

import "testing"

func TestAnyKeyMatchesEverything(t *testing.T) {
	k := AnyKey{}
	if !k.Matches(AnyKey{}) {
		t.Error("AnyKey should match another AnyKey")
	}
	if !k.Matches(ValueKey{Value: 1}) {
		t.Error("AnyKey should match a ValueKey")
	}
	if !k.Matches(NewUniqueKey()) {
		t.Error("AnyKey should match a UniqueKey")
	}
}

func TestValueKeyMatches(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want bool
	}{
		{"equal ints", ValueKey{Value: 1}, ValueKey{Value: 1}, true},
		{"different ints", ValueKey{Value: 1}, ValueKey{Value: 2}, false},
		{"equal strings", ValueKey{Value: "row"}, ValueKey{Value: "row"}, true},
		{"different types", ValueKey{Value: 1}, ValueKey{Value: "1"}, false},
		{"equal slices", ValueKey{Value: []int{1, 2}}, ValueKey{Value: []int{1, 2}}, true},
		{"against AnyKey", ValueKey{Value: 1}, AnyKey{}, false},
		{"against UniqueKey", ValueKey{Value: 1}, NewUniqueKey(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Matches(tt.b); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUniqueKeyMatchesOnlyItself(t *testing.T) {
	a := NewUniqueKey()
	b := NewUniqueKey()

	if !a.Matches(a) {
		t.Error("a UniqueKey should match itself")
	}
	if a.Matches(b) {
		t.Error("two distinct UniqueKeys should never match")
	}
	if a.Matches(AnyKey{}) {
		t.Error("a UniqueKey should not match an AnyKey")
	}
	if a.Matches(ValueKey{Value: a}) {
		t.Error("a UniqueKey should not match a ValueKey")
	}
}

func TestZeroUniqueKeyMatchesNothing(t *testing.T) {
	var zero UniqueKey
	if zero.Matches(zero) {
		t.Error("the zero UniqueKey should not even match itself")
	}
}
