package liveprops

import (
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/LunkLoafGrumble/ux/liveprops_errors"
)

// Registry resolves component ids to their stores. Each store is
// confined to its component's flow, but the registry itself is shared
// by every flow in the runtime, hence the concurrent map.
type Registry struct {
	stores *xsync.MapOf[string, *Store]
}

func NewRegistry() *Registry {
	return &Registry{stores: xsync.NewMapOf[string, *Store]()}
}

// Register binds a store to a component id. An empty id gets a
// generated one. Returns the id the store is reachable under.
func (reg *Registry) Register(id string, store *Store) string {
	if id == "" {
		id = uuid.NewString()
	}
	reg.stores.Store(id, store)
	return id
}

func (reg *Registry) Lookup(id string) (*Store, bool) {
	return reg.stores.Load(id)
}

// Resolve is Lookup for callers that treat an unknown id as a fault.
func (reg *Registry) Resolve(id string) (*Store, error) {
	store, ok := reg.stores.Load(id)
	if !ok {
		return nil, liveprops_errors.ErrStoreUnknown
	}
	return store, nil
}

// Remove drops the binding when the component is torn down.
func (reg *Registry) Remove(id string) {
	reg.stores.Delete(id)
}

func (reg *Registry) Range(f func(id string, store *Store) bool) {
	reg.stores.Range(f)
}
