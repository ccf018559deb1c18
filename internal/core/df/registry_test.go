package df

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{KindMulti, KindSingle}, r.Kinds())

	f, err := r.New("Single", Params{Tolerance: 1e-6})
	require.NoError(t, err)
	single, ok := f.(*SingleElement)
	require.True(t, ok)
	assert.Equal(t, 1e-6, single.Tolerance())
	assert.Equal(t, KindSingle, f.Name())

	f, err = r.New(" multi ", Params{Elements: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, f.(*MultiElement).K())

	_, err = r.New(KindMulti, Params{})
	assert.ErrorIs(t, err, ErrInvalidElementCount)

	_, err = r.New("phased-array", Params{})
	assert.ErrorIs(t, err, ErrUnknownFinder)
}

func TestRegistryCustomFinder(t *testing.T) {
	r := NewRegistry()
	r.Register("fixed", func(Params) (Finder, error) { return NewSingleElement(), nil })
	_, err := r.New("FIXED", Params{})
	assert.NoError(t, err)
	assert.Contains(t, r.Kinds(), "fixed")
}

func TestRegistryConcurrentUse(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register(fmt.Sprintf("custom%d", i), func(Params) (Finder, error) { return NewSingleElement(), nil })
		}()
		go func() {
			defer wg.Done()
			_, err := r.New(KindSingle, Params{})
			assert.NoError(t, err)
			r.Kinds()
		}()
	}
	wg.Wait()
	assert.Len(t, r.Kinds(), 6)
}
