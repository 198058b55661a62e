package sharedref

import (
	"go.uber.org/atomic"
	"runtime"
	"sync"
)

const (
	lockUnlocked     uint32 = 0
	lockLocked       uint32 = 1
	lockLockedNotify uint32 = 2
)

const lockSpinCount = 64

// slotLock is a spin lock with a park fallback.
//
// The state word moves between unlocked, locked and lockedNotify. A waiter
// that runs out of spins sets lockedNotify before parking, and only an unlock
// that observes lockedNotify pays for waking parked waiters.
type slotLock struct {
	state atomic.Uint32

	mut  sync.Mutex
	cond *sync.Cond
	once sync.Once
}

func (l *slotLock) lock() {
	for i := 0; i < lockSpinCount; i++ {
		if l.state.CompareAndSwap(lockUnlocked, lockLocked) {
			return
		}
		runtime.Gosched()
	}
	l.lockSlow()
}

func (l *slotLock) getCond() *sync.Cond {
	l.once.Do(func() {
		l.cond = sync.NewCond(&l.mut)
	})
	return l.cond
}

func (l *slotLock) lockSlow() {
	cond := l.getCond()

	l.mut.Lock()
	defer l.mut.Unlock()

	for {
		switch l.state.Load() {
		case lockUnlocked:
			// other waiters may still be parked, keep the notify flag for them
			if l.state.CompareAndSwap(lockUnlocked, lockLockedNotify) {
				return
			}

		case lockLocked:
			if l.state.CompareAndSwap(lockLocked, lockLockedNotify) {
				cond.Wait()
			}

		case lockLockedNotify:
			cond.Wait()
		}
	}
}

func (l *slotLock) unlock() {
	prev := l.state.Swap(lockUnlocked)
	if prev == lockLockedNotify {
		cond := l.getCond()
		l.mut.Lock()
		cond.Broadcast()
		l.mut.Unlock()
	}
}
