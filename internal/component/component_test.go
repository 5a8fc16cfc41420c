package component

import (
	"reflect"
	"testing"
)

func TestStoreAddReplacesSameKind(t *testing.T) {
	s := NewStore()
	first := NewCheckbox()
	second := &Checkbox{Checked: true}
	s.Add(first)
	s.Add(second)

	if s.Len() != 1 {
		t.Fatalf("expected exactly one component, got %d", s.Len())
	}
	got, ok := As[*Checkbox](s, KindCheckbox)
	if !ok {
		t.Fatalf("expected checkbox to be attached")
	}
	if got != second {
		t.Fatalf("expected the second instance to win")
	}
}

func TestStoreRemoveAndHas(t *testing.T) {
	s := NewStore()
	s.Add(NewPage())
	if !s.Has(KindPage) {
		t.Fatalf("expected page to be attached")
	}
	if !s.Remove(KindPage) {
		t.Fatalf("expected remove to report an existing component")
	}
	if s.Has(KindPage) {
		t.Fatalf("expected page to be detached")
	}
	if s.Remove(KindPage) {
		t.Fatalf("expected second remove to report nothing removed")
	}
	if _, ok := s.Get(KindPage); ok {
		t.Fatalf("expected Get to miss after remove")
	}
}

func TestStoreKindsSorted(t *testing.T) {
	s := NewStore()
	s.Add(NewPage())
	s.Add(NewCheckbox())
	want := []Kind{KindCheckbox, KindPage}
	if got := s.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected empty store after Clear, got %d", s.Len())
	}
}

type fakeCheckbox struct{}

func (fakeCheckbox) Kind() Kind { return KindCheckbox }

func TestAsRejectsMismatchedType(t *testing.T) {
	s := NewStore()
	s.Add(fakeCheckbox{})
	if _, ok := As[*Checkbox](s, KindCheckbox); ok {
		t.Fatalf("expected type mismatch to fail")
	}
	var zero Store
	zero.Add(NewPage())
	if !zero.Has(KindPage) {
		t.Fatalf("expected zero-value store to accept components")
	}
}

func TestLiveInstances(t *testing.T) {
	s := NewStore()
	s.Add(NewCheckbox())
	cb, _ := As[*Checkbox](s, KindCheckbox)
	cb.Checked = true
	again, _ := As[*Checkbox](s, KindCheckbox)
	if !again.Checked {
		t.Fatalf("expected Get to return the live instance")
	}
}
