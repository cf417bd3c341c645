package scratch

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v2/core1_0"
)

func TestAlloc_Zeroed(t *testing.T) {
	arena := New()
	defer arena.Release()

	names := Alloc[string](arena, 3)
	require.Equal(t, []string{"", "", ""}, names)

	infos := Alloc[core1_0.DeviceQueueCreateInfo](arena, 2)
	require.Len(t, infos, 2)
	require.Equal(t, core1_0.DeviceQueueCreateInfo{}, infos[1])

	require.Equal(t, 2, arena.Outstanding())
}

func TestAlloc_Empty(t *testing.T) {
	arena := New()
	defer arena.Release()

	buffer := Alloc[float32](arena, 0)
	require.Len(t, buffer, 0)
}

func TestClone_CopiesAndExtends(t *testing.T) {
	arena := New()
	defer arena.Release()

	src := []float32{0.25, 0.5}
	buffer := Clone(arena, src, 1)
	require.Equal(t, []float32{0.25, 0.5, 0}, buffer)

	buffer[0] = 1
	require.Equal(t, []float32{0.25, 0.5}, src)
}

func TestRelease_ZeroesBuffers(t *testing.T) {
	arena := New()

	buffer := Alloc[int](arena, 4)
	for i := range buffer {
		buffer[i] = i + 1
	}
	cloned := Clone(arena, []string{"a", "b"}, 0)

	arena.Release()
	require.True(t, arena.Released())
	require.Equal(t, 0, arena.Outstanding())
	require.Equal(t, []int{0, 0, 0, 0}, buffer)
	require.Equal(t, []string{"", ""}, cloned)
}

func TestRelease_Twice(t *testing.T) {
	arena := New()
	Alloc[int](arena, 1)

	arena.Release()
	require.NotPanics(t, arena.Release)
	require.True(t, arena.Released())
}

func TestAlloc_AfterRelease(t *testing.T) {
	arena := New()
	arena.Release()

	require.Panics(t, func() {
		Alloc[int](arena, 1)
	})
}

func TestAlloc_RejectsNonZeroConstructible(t *testing.T) {
	arena := New()
	defer arena.Release()

	defer func() {
		recovered := recover()
		require.NotNil(t, recovered)
		err, ok := recovered.(error)
		require.True(t, ok)
		require.True(t, errors.HasAssertionFailure(err))
	}()

	Alloc[chan int](arena, 1)
}

func TestAlloc_RejectsFunc(t *testing.T) {
	arena := New()
	defer arena.Release()

	require.Panics(t, func() {
		Alloc[func()](arena, 1)
	})
}
