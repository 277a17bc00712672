package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/cssinjs/internal/adapters/watcher"
)

func TestDebouncer_CoalescesPaths(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string
		var mu sync.Mutex

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			mu.Lock()
			calls = append(calls, paths)
			mu.Unlock()
		})

		d.Add("/work/cssinjs.yaml")
		d.Add("/work/tokens.yaml")
		d.Add("/work/cssinjs.yaml")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/work/cssinjs.yaml", "/work/tokens.yaml"}, calls[0])
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var count int
		var mu sync.Mutex

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			count++
			mu.Unlock()
		})

		d.Add("a")
		time.Sleep(50 * time.Millisecond)
		d.Add("b")
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		assert.Equal(t, 0, count, "second add restarts the window")
		mu.Unlock()

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		assert.Equal(t, 1, count)
		mu.Unlock()
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var got []string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) { got = paths })

		d.Add("b")
		d.Add("a")
		d.Flush()
		assert.Equal(t, []string{"a", "b"}, got, "flush runs synchronously")

		got = nil
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Nil(t, got, "timer does not fire after flush")
	})
}

func TestDebouncer_FlushEmptyAndNilCallback(t *testing.T) {
	var count int
	d := watcher.NewDebouncer(time.Millisecond, func([]string) { count++ })
	d.Flush()
	assert.Equal(t, 0, count)

	assert.NotPanics(t, func() {
		n := watcher.NewDebouncer(time.Millisecond, nil)
		n.Add("x")
		n.Flush()
	})
}
