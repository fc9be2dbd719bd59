// diagnostics.go - read-only snapshots of the queue for logging

package coretiming

import (
	"fmt"
	"sort"
	"strings"
)

// sortedQueueCopy returns a deadline-ascending copy of the primary queue.
// The queue itself is never mutated by diagnostics.
func (s *Scheduler) sortedQueueCopy() []Event {
	clone := make([]Event, len(s.queue))
	copy(clone, s.queue)
	sort.Slice(clone, func(i, j int) bool { return clone[i].Deadline < clone[j].Deadline })
	return clone
}

// LogPendingEvents emits one Info line per pending event, in deadline
// order, of the form "PENDING: Now: <t> Pending: <t> Type: <name> (<id>)".
func (s *Scheduler) LogPendingEvents() {
	for _, e := range s.sortedQueueCopy() {
		s.logger.Infof("PENDING: Now: %d Pending: %d Type: %s (%d)", s.globalTimer, e.Deadline, s.eventTypeName(e.TypeID), e.TypeID)
	}
}

// ScheduledEventsSummary returns a multi-line human-readable summary of
// every pending event, in deadline order. An event whose TypeID is out of
// range is reported to the Logger's Panicf sink (a panic notification, not
// a Go panic) and skipped from the output.
func (s *Scheduler) ScheduledEventsSummary() string {
	var b strings.Builder
	b.WriteString("Scheduled events\n")

	for _, e := range s.sortedQueueCopy() {
		if e.TypeID < 0 || e.TypeID >= len(s.eventTypes) {
			s.logger.Panicf("Invalid event type %d", e.TypeID)
			continue
		}
		fmt.Fprintf(&b, "%s : %d %016x\n", s.eventTypes[e.TypeID].Name, e.Deadline, e.Userdata)
	}

	return b.String()
}
