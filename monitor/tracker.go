// Package monitor tracks control block lifetimes and streams them to
// websocket clients, mainly to find leaked owners in running services.
package monitor

import (
	"fmt"
	"github.com/QuangTung97/sharedref/refcount"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"sync"
	"time"
)

// Snapshot ...
type Snapshot struct {
	TrackerID string        `json:"trackerId"`
	Version   Version       `json:"version"`
	Blocks    []BlockRecord `json:"blocks"`
	Totals    Totals        `json:"totals"`
}

// WatchRequest asks for the first snapshot with version >= FromVersion.
// ResponseChan must have a buffer of at least one, it receives exactly one snapshot.
type WatchRequest struct {
	FromVersion  Version
	ResponseChan chan<- Snapshot
}

// Tracker is a refcount.Observer keeping the state of every block it is attached to.
type Tracker struct {
	id      uuid.UUID
	options trackerOptions

	mut     sync.Mutex
	state   *trackerState
	waiting []WatchRequest
}

var _ refcount.Observer = &Tracker{}

// NewTracker ...
func NewTracker(options ...Option) *Tracker {
	t := &Tracker{
		id:      uuid.New(),
		options: computeTrackerOptions(options...),
	}
	t.state = newTrackerState(&timerFactory{tracker: t}, t.options)
	return t
}

func newTrackerWithFactory(factory retentionTimerFactory, options ...Option) *Tracker {
	t := &Tracker{
		id:      uuid.New(),
		options: computeTrackerOptions(options...),
	}
	t.state = newTrackerState(factory, t.options)
	return t
}

// ID ...
func (t *Tracker) ID() string {
	return t.id.String()
}

func (t *Tracker) commit(changed bool) {
	if !changed {
		return
	}
	t.state.version++

	if len(t.waiting) == 0 {
		return
	}
	snapshot := t.snapshotLocked()
	for _, req := range t.waiting {
		req.ResponseChan <- snapshot
	}
	t.waiting = nil
}

// BlockCreated ...
func (t *Tracker) BlockCreated(info refcount.BlockInfo) {
	t.mut.Lock()
	defer t.mut.Unlock()

	t.commit(t.state.blockCreated(info))
}

// PayloadDestroyed ...
func (t *Tracker) PayloadDestroyed(id uint64) {
	t.mut.Lock()
	defer t.mut.Unlock()

	t.commit(t.state.payloadDestroyed(id))
}

// BlockReleased ...
func (t *Tracker) BlockReleased(id uint64) {
	t.mut.Lock()
	defer t.mut.Unlock()

	t.commit(t.state.blockReleased(id))
}

func (t *Tracker) retentionExpired(id uint64) {
	t.mut.Lock()
	defer t.mut.Unlock()

	t.commit(t.state.blockExpired(id))
}

func (t *Tracker) snapshotLocked() Snapshot {
	return Snapshot{
		TrackerID: t.id.String(),
		Version:   t.state.version,
		Blocks:    t.state.records(),
		Totals:    t.state.totals,
	}
}

// Snapshot ...
func (t *Tracker) Snapshot() Snapshot {
	t.mut.Lock()
	defer t.mut.Unlock()

	return t.snapshotLocked()
}

// Watch responds immediately when the current version already satisfies the
// request, otherwise on the next change.
func (t *Tracker) Watch(req WatchRequest) {
	t.mut.Lock()
	defer t.mut.Unlock()

	if t.state.version >= req.FromVersion {
		req.ResponseChan <- t.snapshotLocked()
		return
	}
	t.waiting = append(t.waiting, req)
}

// RemoveWatch ...
func (t *Tracker) RemoveWatch(ch chan<- Snapshot) {
	t.mut.Lock()
	defer t.mut.Unlock()

	for i, req := range t.waiting {
		if req.ResponseChan == ch {
			t.waiting = append(t.waiting[:i], t.waiting[i+1:]...)
			return
		}
	}
}

// CheckLeaks returns one error per block that has not been released yet.
func (t *Tracker) CheckLeaks() error {
	t.mut.Lock()
	leaked := t.state.leaked()
	t.mut.Unlock()

	var err error
	for _, r := range leaked {
		err = multierr.Append(err, fmt.Errorf(
			"block %d (%s, %s) is still %s", r.ID, r.Kind, r.Label, r.Status))
	}
	if err != nil {
		t.options.logger.Warn("Leaked control blocks", zap.Int("count", len(leaked)))
	}
	return err
}

// Shutdown stops the retention timers.
func (t *Tracker) Shutdown() {
	t.mut.Lock()
	defer t.mut.Unlock()

	t.state.stopTimers()
}

type timerFactory struct {
	tracker *Tracker
}

func (f *timerFactory) newTimer(id uint64, d time.Duration) retentionTimer {
	return &timerImpl{
		timer: time.AfterFunc(d, func() {
			f.tracker.retentionExpired(id)
		}),
	}
}

type timerImpl struct {
	timer *time.Timer
}

func (t *timerImpl) stop() {
	t.timer.Stop()
}
