// queue.go - primary event queue: a hand-rolled min-heap keyed by deadline

package coretiming

// A hand-rolled heap, rather than container/heap or a priority-queue
// adaptor, because the queue needs three things library adaptors don't
// give together: arbitrary-type removal (removeByType), full iteration for
// save/load and diagnostics, and a layout that is rebuilt deterministically
// from a flat slice after a load. container/heap would cover push/pop but
// still requires us to hand-write the same sift helpers to implement
// Push/Pop/Len/Less/Swap, so there is no real savings from the adaptor
// here.

func eventLess(a, b Event) bool {
	return a.Deadline < b.Deadline
}

func (s *Scheduler) queuePush(e Event) {
	s.queue = append(s.queue, e)
	s.siftUp(len(s.queue) - 1)
}

// queuePopMin removes and returns the root. Caller must check the queue is
// non-empty.
func (s *Scheduler) queuePopMin() Event {
	root := s.queue[0]
	last := len(s.queue) - 1
	s.queue[0] = s.queue[last]
	s.queue = s.queue[:last]
	if last > 0 {
		s.siftDown(0)
	}
	return root
}

// removeByType removes every event whose TypeID equals typeID, preserving
// the relative order of the events that remain, then repairs the heap
// invariant with a full re-heapify. Removing arbitrary interior elements
// breaks the heap shape; an incremental repair would need to special-case
// every position that moved, so a full re-heapify is simpler.
func (s *Scheduler) removeByType(typeID int) {
	out := s.queue[:0]
	for _, e := range s.queue {
		if e.TypeID != typeID {
			out = append(out, e)
		}
	}
	s.queue = out
	s.heapify()
}

func (s *Scheduler) queueClear() {
	s.queue = s.queue[:0]
}

func (s *Scheduler) heapify() {
	n := len(s.queue)
	for i := n/2 - 1; i >= 0; i-- {
		s.siftDown(i)
	}
}

func (s *Scheduler) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !eventLess(s.queue[i], s.queue[parent]) {
			break
		}
		s.queue[i], s.queue[parent] = s.queue[parent], s.queue[i]
		i = parent
	}
}

func (s *Scheduler) siftDown(i int) {
	n := len(s.queue)
	for {
		left := 2*i + 1
		right := 2*i + 2
		smallest := i
		if left < n && eventLess(s.queue[left], s.queue[smallest]) {
			smallest = left
		}
		if right < n && eventLess(s.queue[right], s.queue[smallest]) {
			smallest = right
		}
		if smallest == i {
			return
		}
		s.queue[i], s.queue[smallest] = s.queue[smallest], s.queue[i]
		i = smallest
	}
}
