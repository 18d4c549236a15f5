package storage

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/goalboard/internal/config"
)

func TestMemoryStorage_SaveLoadDelete(t *testing.T) {
	s := NewMemoryStorage()

	_, err := s.Load("guests/a/goals.json")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save("guests/a/goals.json", strings.NewReader(`[1]`)))
	require.NoError(t, s.Save("guests/a/goals.json", strings.NewReader(`[2]`)))

	got, err := s.Load("guests/a/goals.json")
	require.NoError(t, err)
	assert.Equal(t, `[2]`, string(got))

	require.NoError(t, s.Delete("guests/a/goals.json"))
	require.NoError(t, s.Delete("guests/a/goals.json"))

	_, err = s.Load("guests/a/goals.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStorage_LoadReturnsCopy(t *testing.T) {
	s := NewMemoryStorage()
	require.NoError(t, s.Save("k", strings.NewReader("abc")))

	got, err := s.Load("k")
	require.NoError(t, err)
	got[0] = 'x'

	again, err := s.Load("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestMemoryStorage_ConcurrentAccess(t *testing.T) {
	s := NewMemoryStorage()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Save("shared", strings.NewReader("v"))
			_, _ = s.Load("shared")
		}()
	}
	wg.Wait()

	got, err := s.Load("shared")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestNew_SelectsMemoryByDefault(t *testing.T) {
	store, err := New(&config.Config{GuestStore: config.GuestStoreMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, store)

	_, err = New(&config.Config{GuestStore: "disk"})
	assert.Error(t, err)
}
