// Package liveprops tracks a live component's props across the
// request/response cycle with the server that owns the authoritative
// state.
//
// # Three-tier resolution
//
// Every prop name resolves against three layers, newest first:
//
//  1. **dirty** — local edits not yet sent to the server
//  2. **pending** — edits dispatched in a request still in flight
//  3. **original** — the last state the server confirmed
//
// The request lifecycle moves values between the layers. Dispatching a
// request flushes dirty into pending wholesale; a successful response
// replaces original and drops pending; a failed response folds pending
// back into dirty without clobbering edits made in the meantime. Edits
// made while a request is in flight accumulate in a fresh dirty layer,
// which is why the flush and the reinitialize are two separate calls.
//
// The store is confined to one logical flow: the orchestrator that
// owns the request state machine serializes all calls, and at most one
// request is in flight per store. Nothing here locks.
package liveprops

import (
	"fmt"
	"maps"
	"sort"

	"github.com/cespare/xxhash"

	"github.com/LunkLoafGrumble/ux/paths"
	"github.com/LunkLoafGrumble/ux/utils"
)

// Store is one component's prop state. Construct with NewStore once
// per component instance; mutate in place for the component's
// lifetime.
type Store struct {
	original map[string]any
	dirty    map[string]any
	pending  map[string]any

	hooks map[string][]*Hook

	log utils.Logger
}

// NewStore takes ownership of props as the initial server-confirmed
// state (the initial render).
func NewStore(props map[string]any, opts Options) *Store {
	opts.SetDefaults()
	if props == nil {
		props = make(map[string]any)
	}
	return &Store{
		original: props,
		dirty:    make(map[string]any),
		pending:  make(map[string]any),
		hooks:    make(map[string][]*Hook),
		log:      opts.Logger,
	}
}

// Get resolves a name, dirty first, then pending, then the
// server-confirmed props via nested lookup. ok is false only when the
// name resolves nowhere; an explicit nil resolves to (nil, true).
//
// A top-level name whose value carries the identifier marker resolves
// to the marker's value, so callers compare entity identity without
// caring about the mutable fields embedded next to it.
func (store *Store) Get(name string) (value any, ok bool) {
	norm := paths.Normalize(name)
	value, ok = store.resolve(norm)
	if !ok {
		return nil, false
	}
	if paths.IsTopLevel(norm) {
		if id, marked := ExtractIdentifier(value); marked {
			return id, true
		}
	}
	return value, true
}

func (store *Store) resolve(norm string) (any, bool) {
	if v, ok := store.dirty[norm]; ok {
		return v, true
	}
	if v, ok := store.pending[norm]; ok {
		return v, true
	}
	return paths.DeepGet(store.original, norm)
}

// Has reports whether the name resolves at any tier. A nil value
// counts as present.
func (store *Store) Has(name string) bool {
	_, ok := store.Get(name)
	return ok
}

// Set records a local edit. The write lands in dirty only when the
// value differs from what Get currently resolves, compared by
// identity (see sameValue); a no-op write returns false and mutates
// nothing. This is the sole write path for user edits — it never
// touches original or pending.
func (store *Store) Set(name string, value any) bool {
	norm := paths.Normalize(name)
	current, ok := store.Get(norm)
	if ok && sameValue(current, value) {
		SetCount.WithLabelValues("unchanged").Inc()
		return false
	}
	store.dirty[norm] = value
	SetCount.WithLabelValues("changed").Inc()
	store.fireHooks(norm, value)
	return true
}

// OriginalProps returns a non-aliasing shallow copy of the
// server-confirmed props.
func (store *Store) OriginalProps() map[string]any {
	return maps.Clone(store.original)
}

// DirtyProps returns a non-aliasing shallow copy of the unsent edits.
func (store *Store) DirtyProps() map[string]any {
	return maps.Clone(store.dirty)
}

// PendingProps returns a non-aliasing shallow copy of the in-flight
// snapshot.
func (store *Store) PendingProps() map[string]any {
	return maps.Clone(store.pending)
}

// FlushDirtyPropsToPending snapshots the dirty set at the moment a
// reconciliation request is dispatched. The outstanding request is
// responsible for confirming exactly this snapshot; later edits go to
// a fresh dirty layer it does not cover. Call once per dispatch.
func (store *Store) FlushDirtyPropsToPending() {
	store.pending = store.dirty
	store.dirty = make(map[string]any)
	FlushCount.Inc()
	store.log.Debug("flushed dirty props to pending", "pending", len(store.pending))
}

// ReinitializeAllProps installs the server-confirmed props after a
// successful round trip and drops the in-flight snapshot. Dirty stays
// untouched: edits made between dispatch and confirmation remain live
// and ride the next cycle.
func (store *Store) ReinitializeAllProps(newProps map[string]any) {
	if newProps == nil {
		newProps = make(map[string]any)
	}
	store.original = newProps
	store.pending = make(map[string]any)
	ReconcileCount.WithLabelValues("success").Inc()
	store.log.Debug("reinitialized props", "props", len(newProps), "dirty", len(store.dirty))
	for name := range store.hooks {
		if v, ok := store.Get(name); ok {
			store.fireHooks(name, v)
		}
	}
}

// PushPendingPropsBackToDirty folds a failed request's snapshot back
// into dirty. A name edited again while the request was in flight
// keeps its newer dirty value; the stale in-flight value only fills
// the gaps. No edit is lost, none regresses.
func (store *Store) PushPendingPropsBackToDirty() {
	for name, value := range store.pending {
		if _, ok := store.dirty[name]; !ok {
			store.dirty[name] = value
		}
	}
	store.pending = make(map[string]any)
	ReconcileCount.WithLabelValues("failure").Inc()
	store.log.Debug("pushed pending props back to dirty", "dirty", len(store.dirty))
}

// ReinitializeProvidedProps selectively overwrites read-only props a
// parent component supplied anew, say on a parent re-render. A key is
// overwritten wholesale only when its identity changed; a matching
// identity keeps the stored value, so writable edits nested inside it
// survive. Identity, not deep equality: two objects with the same
// identifier but different embedded fields count as unchanged.
// Reports whether any key changed.
func (store *Store) ReinitializeProvidedProps(patch map[string]any) bool {
	changed := false
	for key, value := range patch {
		current, _ := store.Get(key)
		currentID, _ := ExtractIdentifier(current)
		newID, _ := ExtractIdentifier(value)
		if sameValue(currentID, newID) {
			continue
		}
		store.original[key] = value
		changed = true
		store.fireHooks(key, value)
	}
	if changed {
		store.log.Debug("reinitialized provided props", "patch", len(patch))
	}
	return changed
}

// DirtyFingerprint is a cheap change signal for the send scheduler:
// equal fingerprints mean the dirty set holds nothing new to dispatch.
// An empty dirty set is always 0.
func (store *Store) DirtyFingerprint() uint64 {
	if len(store.dirty) == 0 {
		return 0
	}
	names := make([]string, 0, len(store.dirty))
	for name := range store.dirty {
		names = append(names, name)
	}
	sort.Strings(names)
	h := xxhash.New()
	for _, name := range names {
		_, _ = fmt.Fprintf(h, "%s=%v;", name, store.dirty[name])
	}
	return h.Sum64()
}
