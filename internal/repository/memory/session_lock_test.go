package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionLocker_SerializesSameSession(t *testing.T) {
	locker := NewSessionLocker()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locker.Lock("session-a")
			defer locker.Unlock("session-a")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestSessionLocker_IndependentSessionsDoNotBlock(t *testing.T) {
	locker := NewSessionLocker()

	locker.Lock("session-a")

	done := make(chan struct{})
	go func() {
		locker.Lock("session-b")
		locker.Unlock("session-b")
		close(done)
	}()

	<-done
	locker.Unlock("session-a")
}

func TestSessionLocker_Reentry(t *testing.T) {
	locker := NewSessionLocker()

	locker.Lock("session-a")
	locker.Unlock("session-a")
	locker.Lock("session-a")
	locker.Unlock("session-a")
}
