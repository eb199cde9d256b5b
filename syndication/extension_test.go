package syndication

import (
	"errors"
	"testing"
)

func TestSetAttachAndFind(t *testing.T) {
	set := NewSet()
	wfw := NewWellFormedWebExtension()
	slash := NewSlashExtension()

	if err := set.Attach(slash); err != nil {
		t.Fatalf("attach error: %v", err)
	}
	if err := set.Attach(wfw); err != nil {
		t.Fatalf("attach error: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("unexpected length: %d", set.Len())
	}

	found, ok := set.Find(func(ext Extension) bool {
		match, err := MatchWellFormedWeb(ext)
		return err == nil && match
	})
	if !ok {
		t.Fatal("expected to find the wfw extension")
	}
	if found != Extension(wfw) {
		t.Fatal("expected the attached wfw instance")
	}

	_, ok = set.Find(func(Extension) bool { return false })
	if ok {
		t.Fatal("expected no match")
	}
}

func TestSetAttachNil(t *testing.T) {
	set := NewSet()
	if err := set.Attach(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSetAllPreservesOrder(t *testing.T) {
	set := NewSet()
	first := NewWellFormedWebExtension()
	second := NewSlashExtension()
	_ = set.Attach(first)
	_ = set.Attach(second)

	all := set.All()
	if len(all) != 2 || all[0] != Extension(first) || all[1] != Extension(second) {
		t.Fatal("expected attachment order to be preserved")
	}

	// Mutating the returned slice must not affect the set.
	all[0] = nil
	if got, _ := set.Find(func(ext Extension) bool { return ext == Extension(first) }); got == nil {
		t.Fatal("expected set contents to be unchanged")
	}
}

func TestSetFindNilPredicate(t *testing.T) {
	set := NewSet()
	_ = set.Attach(NewSlashExtension())
	if _, ok := set.Find(nil); ok {
		t.Fatal("expected nil predicate to match nothing")
	}
}
