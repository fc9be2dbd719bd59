// collaborators.go - external interfaces consumed by the scheduler core

package coretiming

// CPU is the emulated-CPU black box. The scheduler never interprets guest
// instructions; it only reads and rewrites the downcount register and asks
// the CPU to check for externally raised exceptions.
type CPU interface {
	// Downcount returns the CPU's current countdown register, in scaled
	// (overclock-adjusted) units.
	Downcount() int32
	// SetDowncount overwrites the countdown register.
	SetDowncount(int32)
	// CheckExternalExceptions asks the CPU to deliver any exception that
	// became pending during the dispatch loop of Advance.
	CheckExternalExceptions()
}

// Video is the video FIFO subsystem, consulted only by Idle.
type Video interface {
	// FlushGPU synchronously drains the video FIFO so VI timing does not
	// desync while the CPU skips the remainder of a slice.
	FlushGPU()
}

// Config exposes the handful of configuration values the scheduler core
// needs. Everything else about configuration is out of scope.
type Config interface {
	OverclockEnabled() bool
	OverclockFactor() float32
	SyncGPUOnIdleSkip() bool
}

// ThreadOracle answers whether the calling goroutine is the one designated
// as "the CPU thread" for this machine.
type ThreadOracle interface {
	IsCPUThread() bool
}

// Logger is the set of log sinks the scheduler core calls through. Callers
// provide a concrete implementation (see the logadapter subpackage for a
// zerolog-backed one); the core never writes to stdout/stderr directly.
type Logger interface {
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Infof(format string, args ...any)
	Noticef(format string, args ...any)
	// Panicf is the panic-notifier sink: it surfaces a severe condition
	// (an assertion about to fail, an invalid type id in diagnostics) to
	// whatever the host presents fatal notifications through. It must not
	// itself panic or exit the process -- callers that need to actually
	// abort do so themselves after calling it.
	Panicf(format string, args ...any)
}

// FromThread identifies which thread a ScheduleEvent call is claimed to be
// running on.
type FromThread int

const (
	// FromAny asks the scheduler to consult the ThreadOracle.
	FromAny FromThread = iota
	// FromCPU asserts the call is on the CPU thread.
	FromCPU
	// FromNonCPU asserts the call is not on the CPU thread.
	FromNonCPU
)

func (f FromThread) String() string {
	switch f {
	case FromCPU:
		return "CPU"
	case FromNonCPU:
		return "non-CPU"
	default:
		return "any"
	}
}
