// Package core provides the widget descriptor model and build lifecycle.
//
// This package defines the foundational types of the framework: Key,
// BuildContext, the Widget contract and the structural content hasher. It
// follows a declarative UI model where widgets are immutable descriptions of
// what the UI should look like, and the application layer turns a descriptor
// tree into live toolkit widgets.
//
// # Core Types
//
// Widget is an immutable description of a UI element or composite. Widgets are
// lightweight configuration objects that are rebuilt from scratch on every
// state change.
//
// BuildContext is the shared handle threaded through a build pass. It carries
// a back-reference to the owning application and exposes the repaint trigger.
//
// Key is an identity tag that distinguishes logically equal widgets across
// rebuilds. AnyKey is the non-distinguishing default; ValueKey compares by
// value; UniqueKey is equal only to itself.
//
// # Lifecycle
//
// Every widget goes through two phases per frame:
//
//	Build(ctx)  capture the context and recompute the content hash
//	Paint()     allocate one native element via the registered host toolkit
//
// Build must precede Paint. SetState may be called from any built widget; it
// asks the application to rebuild and repaint the whole tree.
//
// # Content Hashing
//
// A widget's hash is a pure function of its declared fields and, for
// composites, the post-build hashes of its children. Use Hasher to fold
// fields:
//
//	func (t *Text) Build(ctx *core.BuildContext) {
//	    t.StartBuild(ctx)
//	    t.FinishBuild(core.NewHasher("Text").String(t.Content).Sum())
//	}
//
// Callback values are folded by function identity (their code pointer), never
// by type name, so two different callbacks of the same shape hash differently.
package core
