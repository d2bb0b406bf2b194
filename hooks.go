package liveprops

import (
	"github.com/pkg/errors"

	"github.com/LunkLoafGrumble/ux/paths"
)

// Hook observes a single prop. It fires synchronously after the prop
// gets a new dirty value and after reconciliation replaces it. A hook
// error is logged, never propagated.
type Hook func(name string, value any) error

var ErrHookNotFound = errors.New("hook not found")

func (store *Store) AddHook(name string, hook *Hook) {
	norm := paths.Normalize(name)
	store.hooks[norm] = append(store.hooks[norm], hook)
}

func (store *Store) RemoveHook(name string, hook *Hook) error {
	norm := paths.Normalize(name)
	list := store.hooks[norm]
	for i, h := range list {
		if h == hook {
			list[i] = list[len(list)-1]
			store.hooks[norm] = list[:len(list)-1]
			return nil
		}
	}
	return ErrHookNotFound
}

func (store *Store) fireHooks(name string, value any) {
	for _, hook := range store.hooks[name] {
		if err := (*hook)(name, value); err != nil {
			store.log.Warn("hook failed", "error", errors.Wrapf(err, "hook for %q", name))
		}
	}
}
