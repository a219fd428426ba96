package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/teapong/parameter"
)

// TestEventQueueBasic tests basic push and consume operations
func TestEventQueueBasic(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventWallImpact, Tick: 1, Payload: "test1"})
	eq.Push(GameEvent{Type: EventPaddleImpact, Tick: 2, Payload: "test2"})
	eq.Push(GameEvent{Type: EventGoal, Tick: 3, Payload: "test3"})

	events := eq.Consume()
	if len(events) != 3 {
		t.Fatalf("Expected 3 events, got %d", len(events))
	}

	// FIFO order
	want := []EventType{EventWallImpact, EventPaddleImpact, EventGoal}
	for i, ev := range events {
		if ev.Type != want[i] || ev.Tick != uint64(i+1) {
			t.Errorf("Event %d mismatch: got type=%v tick=%d", i, ev.Type, ev.Tick)
		}
	}

	if events2 := eq.Consume(); len(events2) != 0 {
		t.Errorf("Expected 0 events on second consume, got %d", len(events2))
	}
}

// TestEventQueueConcurrent tests concurrent push operations from multiple goroutines
func TestEventQueueConcurrent(t *testing.T) {
	eq := NewEventQueue()
	numGoroutines := 10
	eventsPerGoroutine := 10
	totalEvents := numGoroutines * eventsPerGoroutine

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < eventsPerGoroutine; j++ {
				eq.Push(GameEvent{Type: EventWallImpact, Payload: goroutineID*100 + j})
			}
		}(i)
	}
	wg.Wait()

	events := eq.Consume()
	if len(events) != totalEvents {
		t.Errorf("Expected %d events, got %d", totalEvents, len(events))
	}

	seen := make(map[int]bool)
	for _, ev := range events {
		payload := ev.Payload.(int)
		if seen[payload] {
			t.Errorf("Duplicate payload found: %d", payload)
		}
		seen[payload] = true
	}

	if eq.Len() != 0 {
		t.Errorf("Expected queue to be empty, got length %d", eq.Len())
	}
}

// TestEventQueueOverflow tests that the oldest events are dropped when the ring is full
func TestEventQueueOverflow(t *testing.T) {
	eq := NewEventQueue()
	total := parameter.EventQueueSize + 100

	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventWallImpact, Payload: i})
	}

	if eq.Len() != parameter.EventQueueSize {
		t.Errorf("Len = %d, want %d", eq.Len(), parameter.EventQueueSize)
	}
	if eq.Dropped() != 100 {
		t.Errorf("Dropped = %d, want 100", eq.Dropped())
	}

	events := eq.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	if first := events[0].Payload.(int); first != 100 {
		t.Errorf("Oldest surviving payload = %d, want 100", first)
	}
	if last := events[len(events)-1].Payload.(int); last != total-1 {
		t.Errorf("Newest payload = %d, want %d", last, total-1)
	}
}

func TestEventQueuePushAll(t *testing.T) {
	eq := NewEventQueue()
	eq.PushAll([]GameEvent{{Type: EventPaused}, {Type: EventResumed}})
	events := eq.Consume()
	if len(events) != 2 || events[0].Type != EventPaused || events[1].Type != EventResumed {
		t.Errorf("PushAll order broken: %+v", events)
	}
}

type recordingHandler struct {
	types []EventType
	got   []EventType
}

func (h *recordingHandler) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	h.got = append(h.got, ev.Type)
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestRouterDispatch(t *testing.T) {
	eq := NewEventQueue()
	r := NewRouter[*int](eq)

	goals := &recordingHandler{types: []EventType{EventGoal}}
	impacts := &recordingHandler{types: []EventType{EventWallImpact, EventPaddleImpact}}
	r.Register(goals)
	r.Register(impacts)

	var fnCalls []EventType
	r.Register(HandlerFunc[*int]{
		Types: []EventType{EventGoal},
		Fn:    func(_ *int, ev GameEvent) { fnCalls = append(fnCalls, ev.Type) },
	})

	if r.HandlerCount(EventGoal) != 2 || !r.HasHandlers(EventWallImpact) || r.HasHandlers(EventPaused) {
		t.Fatal("registration counts wrong")
	}

	eq.PushAll([]GameEvent{
		{Type: EventWallImpact},
		{Type: EventGoal},
		{Type: EventPaused},
		{Type: EventPaddleImpact},
	})

	calls := 0
	if n := r.DispatchAll(&calls); n != 4 {
		t.Errorf("DispatchAll consumed %d, want 4", n)
	}
	if calls != 3 {
		t.Errorf("handler calls = %d, want 3", calls)
	}
	if len(goals.got) != 1 || goals.got[0] != EventGoal {
		t.Errorf("goal handler got %v", goals.got)
	}
	if len(impacts.got) != 2 || impacts.got[0] != EventWallImpact || impacts.got[1] != EventPaddleImpact {
		t.Errorf("impact handler got %v", impacts.got)
	}
	if len(fnCalls) != 1 {
		t.Errorf("HandlerFunc calls = %v", fnCalls)
	}

	if n := r.DispatchAll(&calls); n != 0 {
		t.Errorf("second dispatch consumed %d", n)
	}
}

func TestEventTypeNames(t *testing.T) {
	for _, typ := range AllTypes() {
		name := typ.String()
		if name == "Unknown" {
			t.Errorf("type %d has no name", typ)
			continue
		}
		back, ok := GetEventType(name)
		if !ok || back != typ {
			t.Errorf("GetEventType(%q) = %v, %v", name, back, ok)
		}
	}
	if EventType(0).String() != "Unknown" {
		t.Error("zero type should be Unknown")
	}
	if _, ok := GetEventType("NoSuchEvent"); ok {
		t.Error("unknown name resolved")
	}
}
