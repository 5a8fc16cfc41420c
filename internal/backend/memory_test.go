package backend

import (
	"context"
	"errors"
	"sync"
	"testing"
)

var (
	_ Backend       = (*Memory)(nil)
	_ Initializer   = (*Memory)(nil)
	_ Authenticator = (*Memory)(nil)
)

func TestMemoryLoadSave(t *testing.T) {
	ctx := context.Background()
	seed := []Record{{ID: "a", Name: "alpha"}}
	m := NewMemory(seed...)
	seed[0].Name = "mutated"

	got, err := m.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Name != "alpha" {
		t.Fatalf("expected seeded records to be copied, got %#v", got)
	}
	got[0].Name = "changed"

	if err := m.Save(ctx, []Record{{ID: "b", Name: "beta"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, _ := m.Load(ctx)
	if len(again) != 1 || again[0].ID != "b" {
		t.Fatalf("expected saved snapshot, got %#v", again)
	}
	if m.SaveCount() != 1 {
		t.Fatalf("expected 1 save, got %d", m.SaveCount())
	}
}

func TestMemoryLoadError(t *testing.T) {
	m := NewMemory()
	boom := errors.New("offline")
	m.FailLoad(boom)
	if _, err := m.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected load error, got %v", err)
	}
	m.FailLoad(nil)
	if _, err := m.Load(context.Background()); err != nil {
		t.Fatalf("expected cleared error, got %v", err)
	}
}

func TestMemoryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMemory()
	if err := m.Initialize(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if m.InitializeCount() != 0 {
		t.Fatalf("expected cancelled initialize not to count")
	}
	if _, err := m.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from load, got %v", err)
	}
}

func TestMemoryInitializeConcurrent(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Initialize(context.Background())
		}()
	}
	wg.Wait()
	if m.InitializeCount() != 8 {
		t.Fatalf("expected 8 initialize calls, got %d", m.InitializeCount())
	}
}

func TestMemoryAuth(t *testing.T) {
	m := NewMemory()
	if m.Authenticated() || m.CurrentUser() != "" {
		t.Fatalf("expected signed out by default")
	}
	if err := m.Logout(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	m.SetUser("ada")
	if err := m.Login(); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !m.Authenticated() || m.CurrentUser() != "ada" {
		t.Fatalf("expected ada signed in, got %q", m.CurrentUser())
	}
	if err := m.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if m.Authenticated() {
		t.Fatalf("expected signed out after logout")
	}
}
