package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_SupersedesPendingTask(t *testing.T) {
	s := NewScheduler(20 * time.Millisecond)
	defer s.Stop()

	var got atomic.Int32
	s.Schedule("field", func() { got.Store(1) })
	s.Schedule("field", func() { got.Store(2) })

	assert.Eventually(t, func() bool { return got.Load() == 2 },
		time.Second, 5*time.Millisecond)
	assert.Zero(t, s.Pending())
}

func TestScheduler_KeysAreIndependent(t *testing.T) {
	s := NewScheduler(10 * time.Millisecond)
	defer s.Stop()

	var a, b atomic.Bool
	s.Schedule("a", func() { a.Store(true) })
	s.Schedule("b", func() { b.Store(true) })

	assert.Eventually(t, func() bool { return a.Load() && b.Load() },
		time.Second, 5*time.Millisecond)
}

func TestScheduler_FlushRunsImmediately(t *testing.T) {
	s := NewScheduler(time.Hour)
	defer s.Stop()

	var ran atomic.Int32
	s.Schedule("a", func() { ran.Add(1) })
	s.Schedule("b", func() { ran.Add(1) })
	assert.Equal(t, 2, s.Pending())

	s.Flush()
	assert.Equal(t, int32(2), ran.Load())
	assert.Zero(t, s.Pending())
}

func TestScheduler_StopCancelsAndRejects(t *testing.T) {
	s := NewScheduler(10 * time.Millisecond)

	var ran atomic.Bool
	s.Schedule("a", func() { ran.Store(true) })
	s.Stop()

	s.Schedule("b", func() { ran.Store(true) })
	time.Sleep(50 * time.Millisecond)
	assert.False(t, ran.Load())
	assert.Zero(t, s.Pending())
}
