package lazy_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/delaneyj/cellparty/lazy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should run the initializer exactly once across sequential reads
func TestCellRunsInitializerOnce(t *testing.T) {
	counter := 0
	cell := lazy.New(func() int {
		counter++
		return 42
	})

	assert.Equal(t, 0, counter)
	assert.False(t, cell.Ready())

	assert.Equal(t, 42, cell.Get())
	assert.Equal(t, 42, cell.Get())
	assert.Equal(t, 42, cell.Get())

	assert.Equal(t, 1, counter)
	assert.True(t, cell.Ready())
}

// should never re-run the initializer from Force
func TestForceIsIdempotent(t *testing.T) {
	t.Run("force before get", func(t *testing.T) {
		counter := 0
		cell := lazy.New(func() int {
			counter++
			return 7
		})

		cell.Force()
		cell.Force()
		assert.Equal(t, 7, cell.Get())
		assert.Equal(t, 1, counter)
	})

	t.Run("force after get", func(t *testing.T) {
		counter := 0
		cell := lazy.New(func() int {
			counter++
			return 7
		})

		assert.Equal(t, 7, cell.Get())
		cell.Force()
		cell.Force()
		assert.Equal(t, 1, counter)
	})
}

// should block concurrent first readers behind a single initializer run
func TestCellConcurrentFirstAccess(t *testing.T) {
	counter := 0
	cell := lazy.New(func() int {
		counter++
		return 1234
	})

	const readers = 32
	results := make([]int, readers)
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = cell.Get()
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, counter)
	for _, v := range results {
		assert.Equal(t, 1234, v)
	}
}

// should hand every caller the same referent for pointer values
func TestCellSharesOneReferent(t *testing.T) {
	type config struct{ addr string }
	cell := lazy.New(func() *config {
		return &config{addr: "localhost:8080"}
	})

	first := cell.Get()
	second := cell.Get()
	require.NotNil(t, first)
	assert.Same(t, first, second)
}

// should poison the cell when the initializer panics
func TestCellPoisonedByPanic(t *testing.T) {
	counter := 0
	cell := lazy.New(func() int {
		counter++
		panic("boom")
	})

	assert.PanicsWithValue(t, "boom", func() { cell.Get() })
	assert.PanicsWithValue(t, "boom", func() { cell.Get() })
	assert.PanicsWithValue(t, "boom", func() { cell.Force() })

	assert.Equal(t, 1, counter)
	assert.False(t, cell.Ready())
}

// should retry after a failed attempt and stop once one succeeds
func TestErrCellRetriesAfterError(t *testing.T) {
	attempts := 0
	cell := lazy.NewErr(func() (int, error) {
		attempts++
		if attempts < 3 {
			return 0, errors.New("not yet")
		}
		return 42, nil
	})

	_, err := cell.Get()
	assert.EqualError(t, err, "not yet")
	assert.False(t, cell.Ready())

	_, err = cell.Get()
	assert.EqualError(t, err, "not yet")

	v, err := cell.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, cell.Ready())

	v, err = cell.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 3, attempts)
}

// should surface initializer errors through Force
func TestErrCellForce(t *testing.T) {
	fail := true
	attempts := 0
	cell := lazy.NewErr(func() (string, error) {
		attempts++
		if fail {
			return "", errors.New("offline")
		}
		return "ok", nil
	})

	assert.EqualError(t, cell.Force(), "offline")

	fail = false
	require.NoError(t, cell.Force())
	require.NoError(t, cell.Force())

	v, err := cell.Get()
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, attempts)
}

// should compute once under concurrent readers
func TestErrCellConcurrentFirstAccess(t *testing.T) {
	attempts := 0
	cell := lazy.NewErr(func() (int, error) {
		attempts++
		return 99, nil
	})

	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			v, err := cell.Get()
			assert.NoError(t, err)
			assert.Equal(t, 99, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, attempts)
}
