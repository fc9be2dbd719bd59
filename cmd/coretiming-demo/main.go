// main.go - demo harness for the coretiming scheduler core.
//
// Wires a fake CPU, video FIFO, and config together and runs the
// Advance loop for a fixed number of slices, logging each dispatched
// event.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/openretro/coretiming"
	"github.com/openretro/coretiming/logadapter"
)

// fakeCPU is the out-of-scope CPU collaborator: a bare downcount register.
type fakeCPU struct {
	downcount int32
}

func (c *fakeCPU) Downcount() int32     { return c.downcount }
func (c *fakeCPU) SetDowncount(d int32) { c.downcount = d }
func (c *fakeCPU) CheckExternalExceptions() {
	// no exceptions to deliver in the demo harness
}

// fakeVideo is the out-of-scope video FIFO collaborator.
type fakeVideo struct{}

func (fakeVideo) FlushGPU() {}

// staticConfig implements coretiming.Config from CLI flags.
type staticConfig struct {
	overclockEnabled bool
	overclockFactor  float64
	syncGPU          bool
}

func (c staticConfig) OverclockEnabled() bool   { return c.overclockEnabled }
func (c staticConfig) OverclockFactor() float32 { return float32(c.overclockFactor) }
func (c staticConfig) SyncGPUOnIdleSkip() bool  { return c.syncGPU }

// singleThread reports every call as coming from the CPU thread, which is
// adequate for this single-goroutine demo.
type singleThread struct{}

func (singleThread) IsCPUThread() bool { return true }

func main() {
	slices := flag.Int("slices", 5, "number of Advance() calls to simulate")
	cyclesPerEvent := flag.Int64("period", 1000, "cycles between periodic event firings")
	overclock := flag.Bool("overclock", false, "enable overclock scaling")
	factor := flag.Float64("factor", 1.0, "overclock factor when -overclock is set")
	syncGPU := flag.Bool("sync-gpu", false, "flush the video FIFO synchronously on idle-skip")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: coretiming-demo [options]\n\nRuns the coretiming scheduler core against a fake CPU for a fixed\nnumber of slices, logging every dispatched event.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cpu := &fakeCPU{}
	logger := logadapter.New()
	cfg := staticConfig{overclockEnabled: *overclock, overclockFactor: *factor}
	cfg.syncGPU = *syncGPU

	sched := coretiming.NewScheduler(cpu, fakeVideo{}, cfg, singleThread{}, func() bool { return false }, logger)
	sched.Init()

	var periodic int
	periodic = sched.RegisterEvent("demo_periodic", func(userdata uint64, cyclesLate int64) {
		logger.Infof("demo_periodic fired: userdata=%d cyclesLate=%d now=%d", userdata, cyclesLate, sched.GetTicks())
		sched.ScheduleEvent(*cyclesPerEvent, periodic, userdata+1, coretiming.FromCPU)
	})

	sched.ScheduleEvent(*cyclesPerEvent, periodic, 0, coretiming.FromCPU)

	for i := 0; i < *slices; i++ {
		cpu.downcount = 0 // simulate the CPU consuming its whole slice
		sched.Advance()
	}

	fmt.Println(sched.ScheduledEventsSummary())
}
