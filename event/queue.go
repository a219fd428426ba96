package event

import (
	"sync/atomic"

	"github.com/lixenwraith/teapong/parameter"
)

// slot pairs an event with its publication flag
type slot struct {
	ev    GameEvent
	ready atomic.Bool // Set only after ev is fully written
}

// EventQueue is a bounded lock-free ring: any goroutine may push, the frame loop consumes
// A producer claims a position with CAS on tail, fills the slot, then marks it ready.
// The consumer stops at the first slot that is not ready yet.
// When full, the oldest unread events are overwritten and counted as dropped
type EventQueue struct {
	slots   [parameter.EventQueueSize]slot
	head    atomic.Uint64 // Next position to read
	tail    atomic.Uint64 // Next position to write
	dropped atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, safe for concurrent producers
func (q *EventQueue) Push(ev GameEvent) {
	var pos uint64
	for {
		pos = q.tail.Load()
		if q.tail.CompareAndSwap(pos, pos+1) {
			break
		}
	}

	s := &q.slots[pos&parameter.EventBufferMask]
	s.ev = ev
	s.ready.Store(true)

	// Drag head past the entry just overwritten
	end := pos + 1
	if end <= parameter.EventQueueSize {
		return
	}
	floor := end - parameter.EventQueueSize
	for {
		head := q.head.Load()
		if head >= floor {
			return
		}
		if q.head.CompareAndSwap(head, floor) {
			q.dropped.Add(floor - head)
			return
		}
	}
}

// PushAll pushes a tick's events in order
func (q *EventQueue) PushAll(events []GameEvent) {
	for _, ev := range events {
		q.Push(ev)
	}
}

// Consume drains every published event in FIFO order, single consumer only
func (q *EventQueue) Consume() []GameEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if head == tail {
			return nil
		}

		from := head
		if tail-from > parameter.EventQueueSize {
			from = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, tail-from)
		for pos := from; pos < tail; pos++ {
			s := &q.slots[pos&parameter.EventBufferMask]
			if !s.ready.Load() {
				break
			}
			out = append(out, s.ev)
		}

		if !q.head.CompareAndSwap(head, from+uint64(len(out))) {
			continue
		}
		for pos := from; pos < from+uint64(len(out)); pos++ {
			q.slots[pos&parameter.EventBufferMask].ready.Store(false)
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
}

// Len returns the approximate number of unread events
func (q *EventQueue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	if n := tail - head; n < parameter.EventQueueSize {
		return int(n)
	}
	return parameter.EventQueueSize
}

// Dropped returns how many events were overwritten before being consumed
func (q *EventQueue) Dropped() uint64 {
	return q.dropped.Load()
}
