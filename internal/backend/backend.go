// Package backend defines the storage collaborator the workspace loads its
// tree from, plus an in-memory implementation used by tests and the default
// binary.
package backend

import "context"

// Record is the flat form of a node as stored by a backend.
type Record struct {
	ID       string
	ParentID string
	Name     string
	Index    int
}

// Backend loads and stores tree snapshots.
type Backend interface {
	Load(ctx context.Context) ([]Record, error)
	Save(ctx context.Context, records []Record) error
}

// Initializer is implemented by backends that need a one-time setup step
// before the first Load.
type Initializer interface {
	Initialize(ctx context.Context) error
}

// Authenticator is implemented by backends that know about a signed-in user.
type Authenticator interface {
	Authenticated() bool
	CurrentUser() string
	Login() error
	Logout() error
}
