// scheduler.go - ScheduleEvent, RemoveEvent, RemoveAllEvents,
// ForceExceptionCheck, Idle: the operations the rest of the emulator calls.

package coretiming

// ScheduleEvent arranges for typeID's callback to fire no earlier than
// cyclesIntoFuture cycles from now. from identifies which thread is
// calling: FromAny consults the ThreadOracle; FromCPU/FromNonCPU assert
// agreement with it.
//
// On the CPU thread the deadline anchors to virtualNow() so that an event
// scheduled mid-slice, or re-entrantly from within a dispatched callback,
// lands at the correct guest time. Off the CPU thread the deadline anchors
// to globalTimer with no in-slice adjustment, because a non-CPU thread
// cannot safely observe the CPU's downcount.
func (s *Scheduler) ScheduleEvent(cyclesIntoFuture int64, typeID int, userdata uint64, from FromThread) {
	var fromCPUThread bool
	switch from {
	case FromAny:
		fromCPUThread = s.threads.IsCPUThread()
	default:
		fromCPUThread = from == FromCPU
		if fromCPUThread != s.threads.IsCPUThread() {
			s.fatalf("coretiming: ScheduleEvent from wrong thread (%s)", from)
		}
	}

	if fromCPUThread {
		deadline := s.virtualNow() + cyclesIntoFuture

		// A callback dispatched by Advance may itself reschedule; if so
		// globalTimerSane is still true and this branch is a no-op, but a
		// deeper re-entry (e.g. a helper called outside Advance that
		// schedules before the CPU returns to Advance) must force an
		// early exception check so the CPU doesn't overshoot the new
		// deadline during the remainder of the current slice.
		if !s.globalTimerSane {
			s.ForceExceptionCheck(cyclesIntoFuture)
		}

		s.queuePush(Event{Deadline: deadline, Userdata: userdata, TypeID: typeID})
		return
	}

	if s.determinismRequired != nil && s.determinismRequired() {
		s.logger.Errorf("Someone scheduled an off-thread %q event while netplay or movie play/record was active. This is likely to cause a desync.", s.eventTypeName(typeID))
	}

	deadline := s.globalTimer + cyclesIntoFuture
	s.ingress.push(Event{Deadline: deadline, Userdata: userdata, TypeID: typeID})
}

// ClearPendingEvents drops every event in the primary queue regardless of
// type, leaving the registry itself intact. It does not drain the
// cross-thread ingress queue; callers that need that guarantee should
// MoveEvents first.
func (s *Scheduler) ClearPendingEvents() {
	s.queueClear()
}

// RemoveEvent removes every pending event of typeID from the primary
// queue. Safe to call from the CPU thread at any time; it does not drain
// the cross-thread ingress queue, so an in-flight off-thread schedule of
// the same type may still land afterwards (see RemoveAllEvents).
func (s *Scheduler) RemoveEvent(typeID int) {
	s.removeByType(typeID)
}

// RemoveAllEvents drains the ingress queue first, then removes every
// pending event of typeID. Without the drain, a racing off-thread
// ScheduleEvent could land in the primary queue after the purge.
func (s *Scheduler) RemoveAllEvents(typeID int) {
	s.MoveEvents()
	s.RemoveEvent(typeID)
}

// ForceExceptionCheck shrinks the current slice so the CPU surrenders
// control after exactly cycles more cycles (counted from now, not from the
// slice's start), if its remaining downcount would otherwise carry it
// further than that.
func (s *Scheduler) ForceExceptionCheck(cycles int64) {
	executedInSlice := s.downcountToCycles(s.cpu.Downcount())
	if int64(executedInSlice) > cycles {
		s.sliceLength -= executedInSlice - int32(cycles)
		s.cpu.SetDowncount(s.cyclesToDowncount(int32(cycles)))
	}
}

// Idle accounts for the remainder of the current slice as idle cycles and
// zeroes the downcount, so the CPU immediately surrenders control. If the
// config flag is set, the video FIFO is flushed synchronously first so VI
// timing does not desync while idle-skipping.
func (s *Scheduler) Idle() {
	if s.config.SyncGPUOnIdleSkip() {
		s.video.FlushGPU()
	}

	s.idledCycles += int64(s.downcountToCycles(s.cpu.Downcount()))
	s.cpu.SetDowncount(0)
}
