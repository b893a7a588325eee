package testing

import (
	"fmt"

	"github.com/go-veneer/veneer/pkg/host"
)

// Finder locates painted elements in a headless element tree.
type Finder interface {
	// Matches reports whether the element satisfies the finder.
	Matches(element host.Element) bool
	// Description returns a human-readable description for error messages.
	Description() string
}

// ByText matches labels with the given text and buttons with the given
// label.
func ByText(text string) Finder {
	return textFinder{text: text}
}

type textFinder struct {
	text string
}

func (f textFinder) Matches(element host.Element) bool {
	switch el := element.(type) {
	case *Label:
		return el.Text == f.text
	case *Button:
		return el.Label == f.text
	default:
		return false
	}
}

func (f textFinder) Description() string {
	return fmt.Sprintf("text %q", f.text)
}

// ByType matches elements of the given headless element type.
func ByType[T host.Element]() Finder {
	return typeFinder[T]{}
}

type typeFinder[T host.Element] struct{}

func (typeFinder[T]) Matches(element host.Element) bool {
	_, ok := element.(T)
	return ok
}

func (typeFinder[T]) Description() string {
	var zero T
	return fmt.Sprintf("type %T", zero)
}

// ByPredicate matches elements satisfying an arbitrary predicate.
func ByPredicate(description string, fn func(host.Element) bool) Finder {
	return predicateFinder{description: description, fn: fn}
}

type predicateFinder struct {
	description string
	fn          func(host.Element) bool
}

func (f predicateFinder) Matches(element host.Element) bool { return f.fn(element) }
func (f predicateFinder) Description() string               { return f.description }

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	elements []host.Element
	finder   Finder
}

// First returns the first match. Panics if there are no matches.
func (r FinderResult) First() host.Element {
	if len(r.elements) == 0 {
		panic(fmt.Sprintf("finder found no elements: %s", describe(r.finder)))
	}
	return r.elements[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) host.Element {
	if index < 0 || index >= len(r.elements) {
		panic(fmt.Sprintf("finder index %d out of range (found %d): %s",
			index, len(r.elements), describe(r.finder)))
	}
	return r.elements[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []host.Element {
	return r.elements
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.elements)
}

// Exists reports whether at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.elements) > 0
}

func describe(f Finder) string {
	if f == nil {
		return "unknown"
	}
	return f.Description()
}

// Flatten returns root and every descendant in depth-first pre-order.
// Only boxes have descendants.
func Flatten(root host.Element) []host.Element {
	if root == nil {
		return nil
	}
	elements := []host.Element{root}
	if box, ok := root.(*Box); ok {
		for _, child := range box.Children {
			elements = append(elements, Flatten(child)...)
		}
	}
	return elements
}
