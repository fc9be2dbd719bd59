// errors.go - fatal assertion helper for programmer errors

package coretiming

import "fmt"

// fatalf records a fatal condition through the injected Logger and then
// panics. It is used only for programming errors: a thread-affinity
// violation in ScheduleEvent, and UnregisterAllEvents while the primary
// queue is non-empty. Both are bugs in the caller, not runtime conditions
// the scheduler can recover from.
func (s *Scheduler) fatalf(format string, args ...any) {
	s.logger.Panicf(format, args...)
	panic(fmt.Sprintf(format, args...))
}
