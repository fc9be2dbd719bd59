// advance.go - the slice-boundary routine: drain ingress, advance the
// clock, dispatch due events, recompute the downcount.

package coretiming

// Advance is called by the CPU thread whenever downcount reaches zero (or
// is forced to zero by Idle/ForceExceptionCheck). It drains the
// cross-thread ingress queue, closes out the slice just finished,
// relatches the overclock factor, dispatches every event whose deadline
// has arrived, and opens the next slice sized to the nearest remaining
// deadline (or MaxSliceLength if the queue is empty).
func (s *Scheduler) Advance() {
	s.MoveEvents()

	executed := s.sliceLength - s.downcountToCycles(s.cpu.Downcount())
	s.globalTimer += int64(executed)

	s.latchOverclock()
	s.sliceLength = MaxSliceLength

	s.globalTimerSane = true

	for len(s.queue) > 0 && s.queue[0].Deadline <= s.globalTimer {
		evt := s.queuePopMin()
		s.eventTypes[evt.TypeID].Callback(evt.Userdata, s.globalTimer-evt.Deadline)
	}

	s.globalTimerSane = false

	if len(s.queue) > 0 {
		remaining := s.queue[0].Deadline - s.globalTimer
		if remaining > MaxSliceLength {
			remaining = MaxSliceLength
		}
		s.sliceLength = int32(remaining)
	}

	s.cpu.SetDowncount(s.cyclesToDowncount(s.sliceLength))

	// Deliberately after dispatch, not before: some boot sequences need
	// an exception raised by an event callback delivered within this same
	// re-entry rather than deferred another full slice.
	s.cpu.CheckExternalExceptions()
}
