// event_types.go - event type registry (name -> id, callback)

package coretiming

const (
	discardedEventName = "_discarded_event"
	lostEventName      = "_lost_event"
)

func emptyTimedCallback(userdata uint64, cyclesLate int64) {}

// RegisterEvent maps name to a numeric type id and callback. Registration
// is not thread-safe and must happen during init, before the CPU thread or
// any other thread starts scheduling events.
//
// If name collides with an already-registered (non-gutted) type, the prior
// entry is renamed to "_discarded_event" and its callback replaced with a
// no-op rather than removed outright: some other part of the emulator may
// still hold the old numeric id, and gutting keeps that handle from
// aliasing the freshly registered type.
func (s *Scheduler) RegisterEvent(name string, callback TimedCallback) int {
	for i := range s.eventTypes {
		if s.eventTypes[i].Name == name {
			s.logger.Warnf("Discarded old event type %q because a new type with the same name was registered.", name)
			s.eventTypes[i].Name = discardedEventName
			s.eventTypes[i].Callback = emptyTimedCallback
		}
	}

	s.eventTypes = append(s.eventTypes, EventType{Name: name, Callback: callback})
	return len(s.eventTypes) - 1
}

// UnregisterAllEvents clears the registry. Fatal if the primary queue is
// non-empty: a registered id backing a pending event would otherwise go
// out from under it.
func (s *Scheduler) UnregisterAllEvents() {
	if len(s.queue) != 0 {
		s.fatalf("coretiming: cannot unregister events with events pending")
	}
	s.eventTypes = nil
}

// eventTypeName returns the type's name, or "<INVALID>" if typeID is out
// of range. Used only for read-only diagnostics.
func (s *Scheduler) eventTypeName(typeID int) string {
	if typeID < 0 || typeID >= len(s.eventTypes) {
		return "<INVALID>"
	}
	return s.eventTypes[typeID].Name
}
