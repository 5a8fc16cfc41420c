package backend

import (
	"context"
	"errors"
	"sync"
)

// ErrNotAuthenticated is returned by Logout when nobody is signed in.
var ErrNotAuthenticated = errors.New("not authenticated")

// Memory keeps records in process memory. It is safe for concurrent use.
type Memory struct {
	mu       sync.Mutex
	records  []Record
	inits    int
	saves    int
	user     string
	signedIn bool
	loadErr  error
}

// NewMemory returns a backend preloaded with records.
func NewMemory(records ...Record) *Memory {
	m := &Memory{user: "demo"}
	m.records = cloneRecords(records)
	return m
}

// Initialize counts invocations so callers can assert it ran once.
func (m *Memory) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inits++
	return nil
}

// InitializeCount reports how many times Initialize has run.
func (m *Memory) InitializeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inits
}

// FailLoad makes subsequent Load calls return err. A nil err clears it.
func (m *Memory) FailLoad(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *Memory) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return cloneRecords(m.records), nil
}

func (m *Memory) Save(ctx context.Context, records []Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = cloneRecords(records)
	m.saves++
	return nil
}

// SaveCount reports how many snapshots have been stored.
func (m *Memory) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// SetUser changes the name reported once signed in.
func (m *Memory) SetUser(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = name
}

func (m *Memory) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.signedIn
}

// CurrentUser returns the signed-in user, or "" when signed out.
func (m *Memory) CurrentUser() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.signedIn {
		return ""
	}
	return m.user
}

func (m *Memory) Login() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.signedIn = true
	return nil
}

func (m *Memory) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.signedIn {
		return ErrNotAuthenticated
	}
	m.signedIn = false
	return nil
}

func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	return out
}
