package debounce_test

import (
	"hotelmanager/shared/debounce"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_OnlyLastCallRuns(t *testing.T) {
	d := debounce.New(30 * time.Millisecond)

	var (
		mu   sync.Mutex
		seen []string
		done = make(chan struct{})
	)

	for _, term := range []string{"d", "de", "del", "delu", "deluxe"} {
		d.Call(func() {
			mu.Lock()
			seen = append(seen, term)
			mu.Unlock()
			close(done)
		})
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced call never ran")
	}

	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"deluxe"}, seen)
}

func TestDebouncer_Cancel(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)

	var calls atomic.Int32
	d.Call(func() { calls.Add(1) })

	assert.True(t, d.Cancel())
	assert.False(t, d.Cancel(), "nothing left to cancel")

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDebouncer_Flush(t *testing.T) {
	d := debounce.New(time.Hour)

	var calls atomic.Int32
	d.Call(func() { calls.Add(1) })

	assert.True(t, d.Flush())
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.Flush())
}

func TestDebouncer_ConcurrentCallers(t *testing.T) {
	d := debounce.New(20 * time.Millisecond)

	var calls atomic.Int32
	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Call(func() { calls.Add(1) })
		}()
	}

	wg.Wait()
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}
