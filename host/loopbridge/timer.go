package loopbridge

import (
	"container/heap"
	"time"
)

// scheduledEvent is a single pending ScheduleEventAfter entry, adapted
// from eventloop.timer.
type scheduledEvent struct {
	when  time.Time
	token any
	fn    func()
}

// timerHeap is a container/heap min-heap ordered by when, matching
// eventloop.timerHeap.
type timerHeap []*scheduledEvent

func (h timerHeap) Len() int            { return len(h) }
func (h timerHeap) Less(i, j int) bool  { return h[i].when.Before(h[j].when) }
func (h timerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *timerHeap) Push(x any)         { *h = append(*h, x.(*scheduledEvent)) }
func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// popDue removes and returns every event whose when is not after now.
func popDue(h *timerHeap, now time.Time) []*scheduledEvent {
	var due []*scheduledEvent
	for h.Len() > 0 && !(*h)[0].when.After(now) {
		due = append(due, heap.Pop(h).(*scheduledEvent))
	}
	return due
}

// nextDeadline reports the next timer's due time and whether one exists.
func nextDeadline(h *timerHeap) (time.Time, bool) {
	if h.Len() == 0 {
		return time.Time{}, false
	}
	return (*h)[0].when, true
}
