package registry

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

type handle uintptr

type context struct {
	name string
}

func TestRegistry_RegisterResolve(t *testing.T) {
	r := New[handle, *context]("test")
	first := &context{name: "first"}
	second := &context{name: "second"}

	require.NoError(t, r.Register(1, first))
	require.NoError(t, r.Register(2, second))

	resolved, err := r.Resolve(1)
	require.NoError(t, err)
	require.Same(t, first, resolved)

	resolved, err = r.Resolve(2)
	require.NoError(t, err)
	require.Same(t, second, resolved)
	require.Equal(t, 2, r.Len())
}

func TestRegistry_RegisterTwice(t *testing.T) {
	r := New[handle, *context]("test")
	require.NoError(t, r.Register(1, &context{}))

	err := r.Register(1, &context{})
	require.Error(t, err)
	require.True(t, errors.HasAssertionFailure(err))
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	r := New[handle, *context]("test")

	resolved, err := r.Resolve(7)
	require.Nil(t, resolved)
	require.True(t, errors.Is(err, ErrNotRegistered))
	require.True(t, errors.HasAssertionFailure(err))

	_, ok := r.Lookup(7)
	require.False(t, ok)
}

func TestRegistry_Unregister(t *testing.T) {
	r := New[handle, *context]("test")
	require.NoError(t, r.Register(1, &context{}))

	require.NoError(t, r.Unregister(1))
	_, err := r.Resolve(1)
	require.True(t, errors.Is(err, ErrNotRegistered))

	err = r.Unregister(1)
	require.True(t, errors.Is(err, ErrNotRegistered))
	require.Equal(t, 0, r.Len())
}

func TestRegistry_ReRegisterAfterUnregister(t *testing.T) {
	r := New[handle, *context]("test")
	first := &context{name: "first"}
	second := &context{name: "second"}

	require.NoError(t, r.Register(1, first))
	require.NoError(t, r.Unregister(1))
	require.NoError(t, r.Register(1, second))

	resolved, err := r.Resolve(1)
	require.NoError(t, err)
	require.Same(t, second, resolved)
}

func TestRegistry_Alias(t *testing.T) {
	r := New[handle, *context]("test")
	owner := &context{name: "owner"}
	other := &context{name: "other"}

	require.NoError(t, r.Alias(10, owner))
	require.NoError(t, r.Alias(10, owner))
	require.Equal(t, 1, r.Len())

	resolved, err := r.Resolve(10)
	require.NoError(t, err)
	require.Same(t, owner, resolved)

	err = r.Alias(10, other)
	require.True(t, errors.HasAssertionFailure(err))
}

func TestRegistry_AliasOverPrimary(t *testing.T) {
	r := New[handle, *context]("test")
	owner := &context{}
	require.NoError(t, r.Register(1, owner))

	err := r.Alias(1, owner)
	require.True(t, errors.HasAssertionFailure(err))
}

func TestRegistry_UnregisterOwnedBy(t *testing.T) {
	r := New[handle, *context]("test")
	owner := &context{name: "owner"}
	other := &context{name: "other"}

	require.NoError(t, r.Alias(1, owner))
	require.NoError(t, r.Alias(2, owner))
	require.NoError(t, r.Alias(3, other))
	require.NoError(t, r.Register(4, owner))

	removed := r.UnregisterOwnedBy(func(c *context) bool { return c == owner })
	require.Equal(t, 2, removed)
	require.Equal(t, 2, r.Len())

	_, ok := r.Lookup(1)
	require.False(t, ok)
	_, ok = r.Lookup(3)
	require.True(t, ok)
	_, ok = r.Lookup(4)
	require.True(t, ok)
}

func TestRegistry_EachSkipsAliases(t *testing.T) {
	r := New[handle, *context]("test")
	owner := &context{name: "owner"}
	require.NoError(t, r.Register(1, owner))
	require.NoError(t, r.Register(2, &context{}))
	require.NoError(t, r.Alias(3, owner))

	seen := map[handle]bool{}
	r.Each(func(key handle, value *context) bool {
		seen[key] = true
		return true
	})
	require.Equal(t, map[handle]bool{1: true, 2: true}, seen)

	count := 0
	r.Each(func(key handle, value *context) bool {
		count++
		return false
	})
	require.Equal(t, 1, count)
}
