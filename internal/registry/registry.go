// Package registry maps opaque driver handles to the layer's private context objects.
//
// Association is explicit: a context is registered under its own handle, and child
// handles the driver hands out on its behalf (physical devices, queues) are aliased to
// the owning context. A Registry holds no lock of its own; callers serialize access.
package registry

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
)

// ErrNotRegistered is wrapped by the error returned when resolving a handle that was
// never registered, or was already unregistered
var ErrNotRegistered = errors.New("handle is not registered")

const initialCapacity = 16

type entry[V comparable] struct {
	value V
	alias bool
}

// Registry associates handles of type K with contexts of type V. Contexts are compared by
// identity when aliasing, so V is normally a pointer type.
type Registry[K comparable, V comparable] struct {
	name    string
	entries *swiss.Map[K, entry[V]]
}

// New creates an empty Registry. name is used only in error messages.
func New[K comparable, V comparable](name string) *Registry[K, V] {
	return &Registry[K, V]{
		name:    name,
		entries: swiss.NewMap[K, entry[V]](initialCapacity),
	}
}

// Register associates key with value. Registering a key that is already present is a
// contract violation.
func (r *Registry[K, V]) Register(key K, value V) error {
	if r.entries.Has(key) {
		return errors.AssertionFailedf("%s registry: %v is already registered", r.name, key)
	}

	r.entries.Put(key, entry[V]{value: value})
	return nil
}

// Alias associates a child handle with its owning context. A child handle can be
// reported by the driver many times, so aliasing the same key to the same owner again
// succeeds. Aliasing it to a different owner is a contract violation, as is shadowing
// a primary registration.
func (r *Registry[K, V]) Alias(key K, value V) error {
	existing, ok := r.entries.Get(key)
	if !ok {
		r.entries.Put(key, entry[V]{value: value, alias: true})
		return nil
	}

	if !existing.alias {
		return errors.AssertionFailedf("%s registry: cannot alias %v over a primary registration", r.name, key)
	}
	if existing.value != value {
		return errors.AssertionFailedf("%s registry: %v is already aliased to a different owner", r.name, key)
	}
	return nil
}

// Resolve returns the context for key. An unknown key is a contract violation; the
// returned error wraps ErrNotRegistered.
func (r *Registry[K, V]) Resolve(key K) (V, error) {
	found, ok := r.entries.Get(key)
	if !ok {
		var zero V
		return zero, errors.WithAssertionFailure(errors.Wrapf(ErrNotRegistered, "%s registry: %v", r.name, key))
	}
	return found.value, nil
}

// Lookup returns the context for key, if any
func (r *Registry[K, V]) Lookup(key K) (V, bool) {
	found, ok := r.entries.Get(key)
	return found.value, ok
}

// Unregister removes key. Removing an unknown key is a contract violation.
func (r *Registry[K, V]) Unregister(key K) error {
	if !r.entries.Delete(key) {
		return errors.WithAssertionFailure(errors.Wrapf(ErrNotRegistered, "%s registry: cannot unregister %v", r.name, key))
	}
	return nil
}

// UnregisterOwnedBy removes every alias whose owner satisfies owned, returning how many
// were removed
func (r *Registry[K, V]) UnregisterOwnedBy(owned func(V) bool) int {
	var keys []K
	r.entries.Iter(func(key K, found entry[V]) bool {
		if found.alias && owned(found.value) {
			keys = append(keys, key)
		}
		return false
	})

	for _, key := range keys {
		r.entries.Delete(key)
	}
	return len(keys)
}

// Len is the number of keys present, aliases included
func (r *Registry[K, V]) Len() int {
	return r.entries.Count()
}

// Each calls f for every primary registration until f returns false. Aliases are
// skipped. Iteration order is unspecified.
func (r *Registry[K, V]) Each(f func(key K, value V) bool) {
	r.entries.Iter(func(key K, found entry[V]) bool {
		if found.alias {
			return false
		}
		return !f(key, found.value)
	})
}
