package monitor

import (
	"github.com/QuangTung97/sharedref"
	"github.com/QuangTung97/sharedref/refcount"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"testing"
	"time"
)

type connection struct {
	closed bool
}

func (c *connection) Close() error {
	c.closed = true
	return nil
}

func newTestTracker(options ...Option) (*Tracker, *retentionTimerFactoryMock) {
	factory := &retentionTimerFactoryMock{
		newTimerFunc: func(id uint64, d time.Duration) retentionTimer {
			return &retentionTimerMock{stopFunc: func() {}}
		},
	}
	return newTrackerWithFactory(factory, options...), factory
}

func TestTracker_Follows_Shared_Lifetime(t *testing.T) {
	tracker, factory := newTestTracker()
	seq := refcount.NewSequence()

	p := sharedref.New(&connection{},
		sharedref.WithObserver(tracker),
		sharedref.WithSequence(seq),
		sharedref.WithLabel("conn"),
	)

	snapshot := tracker.Snapshot()
	assert.Equal(t, tracker.ID(), snapshot.TrackerID)
	assert.Equal(t, Version(1), snapshot.Version)
	assert.Equal(t, []BlockRecord{
		{ID: 1, Kind: "pointer", Label: "conn", Status: BlockStatusAlive, ModVersion: 1},
	}, snapshot.Blocks)

	w := p.Weak()
	p.Release()

	snapshot = tracker.Snapshot()
	assert.Equal(t, Version(2), snapshot.Version)
	assert.Equal(t, BlockStatusExpired, snapshot.Blocks[0].Status)

	w.Release()

	snapshot = tracker.Snapshot()
	assert.Equal(t, Version(3), snapshot.Version)
	assert.Equal(t, BlockStatusReleased, snapshot.Blocks[0].Status)
	assert.Equal(t, Totals{Created: 1, Destroyed: 1, Released: 1}, snapshot.Totals)

	assert.Equal(t, 1, len(factory.newTimerCalls()))
	assert.Equal(t, 30*time.Second, factory.newTimerCalls()[0].D)

	tracker.retentionExpired(1)

	snapshot = tracker.Snapshot()
	assert.Equal(t, Version(4), snapshot.Version)
	assert.Equal(t, []BlockRecord{}, snapshot.Blocks)
}

func TestTracker_Watch_Immediately(t *testing.T) {
	tracker, _ := newTestTracker()
	p := sharedref.New(&connection{}, sharedref.WithObserver(tracker))
	defer p.Release()

	ch := make(chan Snapshot, 1)
	tracker.Watch(WatchRequest{FromVersion: 1, ResponseChan: ch})

	select {
	case s := <-ch:
		assert.Equal(t, Version(1), s.Version)
		assert.Equal(t, 1, len(s.Blocks))
	default:
		t.Fatal("expected an immediate response")
	}
}

func TestTracker_Watch_Waits_For_Change(t *testing.T) {
	tracker, _ := newTestTracker()

	ch := make(chan Snapshot, 1)
	tracker.Watch(WatchRequest{FromVersion: 1, ResponseChan: ch})
	assert.Equal(t, 0, len(ch))

	p := sharedref.New(&connection{}, sharedref.WithObserver(tracker))

	s := <-ch
	assert.Equal(t, Version(1), s.Version)
	assert.Equal(t, BlockStatusAlive, s.Blocks[0].Status)

	p.Release()
	assert.Equal(t, 0, len(ch))
}

func TestTracker_RemoveWatch(t *testing.T) {
	tracker, _ := newTestTracker()

	ch1 := make(chan Snapshot, 1)
	ch2 := make(chan Snapshot, 1)
	tracker.Watch(WatchRequest{FromVersion: 1, ResponseChan: ch1})
	tracker.Watch(WatchRequest{FromVersion: 1, ResponseChan: ch2})

	tracker.RemoveWatch(ch1)

	p := sharedref.New(&connection{}, sharedref.WithObserver(tracker))
	defer p.Release()

	assert.Equal(t, 0, len(ch1))
	assert.Equal(t, 1, len(ch2))
}

func TestTracker_CheckLeaks(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	tracker, _ := newTestTracker(WithLogger(zap.New(core)))
	seq := refcount.NewSequence()

	a := sharedref.New(&connection{},
		sharedref.WithObserver(tracker), sharedref.WithSequence(seq), sharedref.WithLabel("a"))
	b := sharedref.Make(connection{},
		sharedref.WithObserver(tracker), sharedref.WithSequence(seq), sharedref.WithLabel("b"))
	c := sharedref.New(&connection{},
		sharedref.WithObserver(tracker), sharedref.WithSequence(seq), sharedref.WithLabel("c"))

	w := b.Weak()
	b.Release()
	c.Release()

	err := tracker.CheckLeaks()
	errs := multierr.Errors(err)
	assert.Equal(t, 2, len(errs))
	assert.Equal(t, "block 1 (pointer, a) is still alive", errs[0].Error())
	assert.Equal(t, "block 2 (inline, b) is still expired", errs[1].Error())
	assert.Equal(t, 1, logs.Len())

	a.Release()
	w.Release()
	assert.Equal(t, nil, tracker.CheckLeaks())
}

func TestTracker_Zero_Retention(t *testing.T) {
	tracker, factory := newTestTracker(WithRetention(0))

	p := sharedref.New(&connection{}, sharedref.WithObserver(tracker))
	p.Release()

	// created, destroyed, released
	snapshot := tracker.Snapshot()
	assert.Equal(t, Version(3), snapshot.Version)
	assert.Equal(t, []BlockRecord{}, snapshot.Blocks)
	assert.Equal(t, Totals{Created: 1, Destroyed: 1, Released: 1}, snapshot.Totals)
	assert.Equal(t, 0, len(factory.newTimerCalls()))
}

func TestTracker_Real_Timer(t *testing.T) {
	tracker := NewTracker(WithRetention(20 * time.Millisecond))
	defer tracker.Shutdown()

	p := sharedref.New(&connection{}, sharedref.WithObserver(tracker))
	p.Release()
	assert.Equal(t, 1, len(tracker.Snapshot().Blocks))

	ch := make(chan Snapshot, 1)
	tracker.Watch(WatchRequest{FromVersion: 4, ResponseChan: ch})

	select {
	case s := <-ch:
		assert.Equal(t, []BlockRecord{}, s.Blocks)
	case <-time.After(5 * time.Second):
		t.Fatal("retention timer did not fire")
	}
}
