package monitor

import (
	"github.com/QuangTung97/sharedref/refcount"
	"github.com/google/btree"
	"time"
)

// BlockStatus ...
type BlockStatus int

const (
	// BlockStatusAlive ...
	BlockStatusAlive BlockStatus = 0
	// BlockStatusExpired means the payload is torn down but weak references remain
	BlockStatusExpired BlockStatus = 1
	// BlockStatusReleased ...
	BlockStatusReleased BlockStatus = 2
)

func (s BlockStatus) String() string {
	switch s {
	case BlockStatusAlive:
		return "alive"
	case BlockStatusExpired:
		return "expired"
	case BlockStatusReleased:
		return "released"
	default:
		return "unknown"
	}
}

// Version ...
type Version uint64

//go:generate moq -out state_mocks_test.go . retentionTimer retentionTimerFactory

type retentionTimerFactory interface {
	newTimer(id uint64, d time.Duration) retentionTimer
}

type retentionTimer interface {
	stop()
}

// BlockRecord ...
type BlockRecord struct {
	ID         uint64      `json:"id"`
	Kind       string      `json:"kind"`
	Label      string      `json:"label"`
	Status     BlockStatus `json:"status"`
	ModVersion Version     `json:"modVersion"`
}

// Totals ...
type Totals struct {
	Created   uint64 `json:"created"`
	Destroyed uint64 `json:"destroyed"`
	Released  uint64 `json:"released"`
}

func recordLess(a, b BlockRecord) bool {
	return a.ID < b.ID
}

type trackerState struct {
	factory retentionTimerFactory
	options trackerOptions

	version Version
	blocks  *btree.BTreeG[BlockRecord]
	timers  map[uint64]retentionTimer
	totals  Totals
}

func newTrackerState(factory retentionTimerFactory, opts trackerOptions) *trackerState {
	return &trackerState{
		factory: factory,
		options: opts,

		blocks: btree.NewG[BlockRecord](16, recordLess),
		timers: map[uint64]retentionTimer{},
	}
}

func (s *trackerState) getBlock(id uint64) (BlockRecord, bool) {
	return s.blocks.Get(BlockRecord{ID: id})
}

func (s *trackerState) blockCreated(info refcount.BlockInfo) bool {
	timer, existed := s.timers[info.ID]
	if existed {
		timer.stop()
		delete(s.timers, info.ID)
	}

	s.blocks.ReplaceOrInsert(BlockRecord{
		ID:         info.ID,
		Kind:       info.Kind.String(),
		Label:      info.Label,
		Status:     BlockStatusAlive,
		ModVersion: s.version + 1,
	})
	s.totals.Created++
	return true
}

func (s *trackerState) payloadDestroyed(id uint64) bool {
	prev, existed := s.getBlock(id)
	if !existed {
		return false
	}
	if prev.Status != BlockStatusAlive {
		return false
	}

	prev.Status = BlockStatusExpired
	prev.ModVersion = s.version + 1
	s.blocks.ReplaceOrInsert(prev)
	s.totals.Destroyed++
	return true
}

func (s *trackerState) blockReleased(id uint64) bool {
	prev, existed := s.getBlock(id)
	if !existed {
		return false
	}
	if prev.Status == BlockStatusReleased {
		return false
	}
	s.totals.Released++

	// without retention the record is dropped now, the release is still one version
	if s.options.retention <= 0 {
		s.blocks.Delete(prev)
		return true
	}

	prev.Status = BlockStatusReleased
	prev.ModVersion = s.version + 1
	s.blocks.ReplaceOrInsert(prev)

	s.timers[id] = s.factory.newTimer(id, s.options.retention)
	return true
}

func (s *trackerState) blockExpired(id uint64) bool {
	_, existed := s.timers[id]
	if !existed {
		return false
	}
	delete(s.timers, id)

	_, deleted := s.blocks.Delete(BlockRecord{ID: id})
	return deleted
}

func (s *trackerState) stopTimers() {
	for id, timer := range s.timers {
		timer.stop()
		delete(s.timers, id)
	}
}

func (s *trackerState) records() []BlockRecord {
	result := make([]BlockRecord, 0, s.blocks.Len())
	s.blocks.Ascend(func(item BlockRecord) bool {
		result = append(result, item)
		return true
	})
	return result
}

func (s *trackerState) leaked() []BlockRecord {
	var result []BlockRecord
	s.blocks.Ascend(func(item BlockRecord) bool {
		if item.Status != BlockStatusReleased {
			result = append(result, item)
		}
		return true
	})
	return result
}
