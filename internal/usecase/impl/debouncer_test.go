package impl

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_LastWriteWins(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var mu sync.Mutex
	var applied []string
	done := make(chan struct{})
	for _, q := range []string{"c", "ca", "cam"} {
		d.Do(func() {
			mu.Lock()
			applied = append(applied, q)
			mu.Unlock()
			close(done)
		})
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced call never ran")
	}
	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"cam"}, applied)
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	ran := make(chan struct{}, 1)
	d.Do(func() { ran <- struct{}{} })
	d.Stop()

	select {
	case <-ran:
		t.Fatal("stopped call ran")
	case <-time.After(50 * time.Millisecond):
	}
}
