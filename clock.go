// clock.go - global tick counter, slice state, and the overclock transform

package coretiming

// MaxSliceLength bounds the CPU budget announced for any single slice.
const MaxSliceLength = 20000

// Event is an opaque scheduled callback invocation. Userdata is an opaque
// 64-bit payload handed back to the callback verbatim; the scheduler never
// interprets it, so callers must not encode live pointers into it -- a
// restored save state has no way to fix up a pointer value.
type Event struct {
	Deadline int64
	Userdata uint64
	TypeID   int
}

// TimedCallback is invoked when its event's deadline is reached or passed.
// cyclesLate is always >= 0 and equals globalTimer-deadline at dispatch
// time, letting the callback compensate for slice-granularity dispatch.
type TimedCallback func(userdata uint64, cyclesLate int64)

// EventType binds a stable name to a callback. Names are unique among
// "live" (non-gutted) entries; see RegisterEvent.
type EventType struct {
	Name     string
	Callback TimedCallback
}

// Scheduler is the cooperative clock for one emulated machine: the
// deadline-ordered event queue, the cross-thread ingress queue, and the
// clock/slice state, all owned by one object passed by reference rather
// than held in package-level globals.
type Scheduler struct {
	cpu                 CPU
	video               Video
	config              Config
	threads             ThreadOracle
	determinismRequired func() bool
	logger              Logger

	eventTypes []EventType
	queue      []Event
	ingress    ingressQueue

	globalTimer     int64
	sliceLength     int32
	ocFactor        float32
	ocFactorInv     float32
	idledCycles     int64
	globalTimerSane bool

	fakeDecStartValue uint32
	fakeDecStartTicks uint64
	fakeTBStartValue  uint64
	fakeTBStartTicks  uint64

	lostEventID int
}

// NewScheduler constructs a Scheduler bound to its external collaborators.
// Call Init before scheduling any events.
func NewScheduler(cpu CPU, video Video, config Config, threads ThreadOracle, determinismRequired func() bool, logger Logger) *Scheduler {
	return &Scheduler{
		cpu:                 cpu,
		video:               video,
		config:              config,
		threads:             threads,
		determinismRequired: determinismRequired,
		logger:              logger,
	}
}

// Init latches the overclock factor, opens a maximal first slice, and
// registers the "_lost_event" sentinel used by DoState to retag events
// whose type did not survive a load.
func (s *Scheduler) Init() {
	s.latchOverclock()
	s.cpu.SetDowncount(s.cyclesToDowncount(MaxSliceLength))
	s.sliceLength = MaxSliceLength
	s.globalTimer = 0
	s.idledCycles = 0
	s.globalTimerSane = true

	s.lostEventID = s.RegisterEvent(lostEventName, emptyTimedCallback)
}

// Shutdown drains any remaining cross-thread events, clears the primary
// queue, and unregisters every event type.
func (s *Scheduler) Shutdown() {
	s.MoveEvents()
	s.queueClear()
	s.eventTypes = nil
}

func (s *Scheduler) latchOverclock() {
	if s.config.OverclockEnabled() {
		s.ocFactor = s.config.OverclockFactor()
	} else {
		s.ocFactor = 1.0
	}
	s.ocFactorInv = 1.0 / s.ocFactor
}

// cyclesToDowncount and downcountToCycles implement the overclock
// transform. The emulator models a CPU speed change not by changing
// wall-clock rate but by scaling how much simulated work happens per
// downcount unit -- effectively an IPC change. Both conversions use the
// pair latched at Init/Advance, never a fresh config read, so a single
// slice stays internally consistent even if config changes mid-slice.
func (s *Scheduler) cyclesToDowncount(cycles int32) int32 {
	return int32(float64(cycles) * float64(s.ocFactor))
}

func (s *Scheduler) downcountToCycles(downcount int32) int32 {
	return int32(float64(downcount) * float64(s.ocFactorInv))
}

// virtualNow returns the best available estimate of "now" in guest
// cycles. Inside Advance's dispatch loop globalTimerSane is true and
// globalTimer itself is exact; Init also leaves it true, so schedules made
// between Init and the first Advance anchor at globalTimer. Outside Advance
// (after the first one) we are mid-slice: the CPU
// has already executed part of its budget, and that progress must be
// visible to anyone scheduling relative to "now".
func (s *Scheduler) virtualNow() int64 {
	if s.globalTimerSane {
		return s.globalTimer
	}
	executed := s.sliceLength - s.downcountToCycles(s.cpu.Downcount())
	return s.globalTimer + int64(executed)
}

// GetTicks is virtualNow's public name. Callable only from the CPU thread.
func (s *Scheduler) GetTicks() uint64 {
	return uint64(s.virtualNow())
}

// GetIdleTicks returns the monotonic count of cycles skipped by Idle.
func (s *Scheduler) GetIdleTicks() uint64 {
	return uint64(s.idledCycles)
}

func (s *Scheduler) GetFakeDecStartValue() uint32  { return s.fakeDecStartValue }
func (s *Scheduler) SetFakeDecStartValue(v uint32) { s.fakeDecStartValue = v }
func (s *Scheduler) GetFakeDecStartTicks() uint64  { return s.fakeDecStartTicks }
func (s *Scheduler) SetFakeDecStartTicks(v uint64) { s.fakeDecStartTicks = v }
func (s *Scheduler) GetFakeTBStartValue() uint64   { return s.fakeTBStartValue }
func (s *Scheduler) SetFakeTBStartValue(v uint64)  { s.fakeTBStartValue = v }
func (s *Scheduler) GetFakeTBStartTicks() uint64   { return s.fakeTBStartTicks }
func (s *Scheduler) SetFakeTBStartTicks(v uint64)  { s.fakeTBStartTicks = v }
