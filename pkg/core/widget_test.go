package core

import (
	"errors"
	"testing"
)

type countingRepainter struct {
	calls int
	err   error
}

func (r *countingRepainter) Repaint() error {
	r.calls++
	return r.err
}

func TestSetStateBeforeBuild(t *testing.T) {
	var base WidgetBase
	if err := base.SetState(); !errors.Is(err, ErrUnbuiltWidget) {
		t.Errorf("SetState before Build = %v, want ErrUnbuiltWidget", err)
	}
}

func TestSetStateDelegatesToApplication(t *testing.T) {
	sink := &countingRepainter{}
	ctx := NewBuildContext(sink)

	var base WidgetBase
	base.StartBuild(ctx)
	base.FinishBuild(42)

	if err := base.SetState(); err != nil {
		t.Fatalf("SetState after Build: %v", err)
	}
	if sink.calls != 1 {
		t.Errorf("repaint calls = %d, want 1", sink.calls)
	}
	if base.ContentHash() != 42 {
		t.Errorf("ContentHash = %d, want 42", base.ContentHash())
	}
}

func TestSetStatePropagatesRepaintError(t *testing.T) {
	want := errors.New("paint failed")
	ctx := NewBuildContext(&countingRepainter{err: want})

	var base WidgetBase
	base.StartBuild(ctx)

	if err := base.SetState(); !errors.Is(err, want) {
		t.Errorf("SetState = %v, want %v", err, want)
	}
}

func TestStartBuildResetsHash(t *testing.T) {
	ctx := NewBuildContext(nil)

	var base WidgetBase
	base.StartBuild(ctx)
	base.FinishBuild(7)
	base.StartBuild(ctx)

	if base.ContentHash() != 0 {
		t.Errorf("ContentHash after StartBuild = %d, want 0", base.ContentHash())
	}
}

func TestContextRepaintWithoutApplication(t *testing.T) {
	ctx := NewBuildContext(nil)
	if err := ctx.Repaint(); !errors.Is(err, ErrNoApplication) {
		t.Errorf("Repaint without application = %v, want ErrNoApplication", err)
	}
}

func TestContextAttachReplacesSink(t *testing.T) {
	first := &countingRepainter{}
	second := &countingRepainter{}
	ctx := NewBuildContext(first)
	ctx.Attach(second)

	if err := ctx.Repaint(); err != nil {
		t.Fatalf("Repaint: %v", err)
	}
	if first.calls != 0 || second.calls != 1 {
		t.Errorf("repaint went to the wrong sink: first=%d second=%d", first.calls, second.calls)
	}
}

func TestDefaultKeyIsAnyKey(t *testing.T) {
	var base WidgetBase
	if _, ok := base.Key().(AnyKey); !ok {
		t.Errorf("default key = %T, want AnyKey", base.Key())
	}

	base.WidgetKey = ValueKey{Value: 3}
	if _, ok := base.Key().(ValueKey); !ok {
		t.Errorf("key = %T, want ValueKey", base.Key())
	}
}
