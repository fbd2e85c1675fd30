package middleware

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSweep(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

	t.Run("Should keep entries inside their window", func(t *testing.T) {
		s := &memoryStore{}
		s.increment("rl:ip:1", time.Minute, t0)
		s.sweep(t0.Add(30 * time.Second))

		count, _ := s.increment("rl:ip:1", time.Minute, t0.Add(40*time.Second))
		assert.Equal(t, 2, count)
	})

	t.Run("Should never count on a swept entry", func(t *testing.T) {
		s := &memoryStore{}
		s.increment("rl:ip:1", time.Minute, t0)

		staleI, ok := s.entries.Load("rl:ip:1")
		require.True(t, ok)
		stale := staleI.(*rateLimitEntry)

		s.sweep(t0.Add(2 * time.Minute))
		assert.True(t, stale.removed)
		_, ok = s.entries.Load("rl:ip:1")
		assert.False(t, ok)

		count, resetAt := s.increment("rl:ip:1", time.Minute, t0.Add(2*time.Minute))
		assert.Equal(t, 1, count)
		assert.Equal(t, t0.Add(3*time.Minute), resetAt)

		liveI, ok := s.entries.Load("rl:ip:1")
		require.True(t, ok)
		assert.NotSame(t, stale, liveI.(*rateLimitEntry))
		assert.Equal(t, 1, stale.count)
	})

	t.Run("Should not lose hits while sweeping", func(t *testing.T) {
		s := &memoryStore{}
		const workers, hits = 8, 50

		stop := make(chan struct{})
		var sweeper sync.WaitGroup
		sweeper.Add(1)
		go func() {
			defer sweeper.Done()
			for {
				select {
				case <-stop:
					return
				default:
					s.sweep(t0.Add(30 * time.Second))
				}
			}
		}()

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < hits; i++ {
					s.increment("rl:ip:1", time.Minute, t0)
				}
			}()
		}
		wg.Wait()
		close(stop)
		sweeper.Wait()

		count, _ := s.increment("rl:ip:1", time.Minute, t0)
		assert.Equal(t, workers*hits+1, count)
	})
}
