// coretiming_test.go - shared fakes for scheduler tests

package coretiming

import (
	"fmt"
	"sync"
)

type testCPU struct {
	mu        sync.Mutex
	downcount int32
	checked   int
}

func (c *testCPU) Downcount() int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.downcount
}

func (c *testCPU) SetDowncount(d int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.downcount = d
}

func (c *testCPU) CheckExternalExceptions() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checked++
}

type testVideo struct {
	flushes int
}

func (v *testVideo) FlushGPU() { v.flushes++ }

type testConfig struct {
	overclockEnabled bool
	overclockFactor  float32
	syncGPU          bool
}

func (c *testConfig) OverclockEnabled() bool   { return c.overclockEnabled }
func (c *testConfig) OverclockFactor() float32 { return c.overclockFactor }
func (c *testConfig) SyncGPUOnIdleSkip() bool  { return c.syncGPU }

// testThread lets a test assert it is or isn't the CPU thread.
type testThread struct {
	isCPU bool
}

func (t *testThread) IsCPUThread() bool { return t.isCPU }

// testLogger records every call instead of writing anywhere, so tests can
// assert on warnings/errors without parsing log output.
type testLogger struct {
	mu       sync.Mutex
	warns    []string
	errors   []string
	infos    []string
	notices  []string
	panics   []string
}

func (l *testLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}
func (l *testLogger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}
func (l *testLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}
func (l *testLogger) Noticef(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notices = append(l.notices, fmt.Sprintf(format, args...))
}
func (l *testLogger) Panicf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.panics = append(l.panics, fmt.Sprintf(format, args...))
}

func (l *testLogger) count() (warns, errs, infos, notices, panics int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warns), len(l.errors), len(l.infos), len(l.notices), len(l.panics)
}

// newTestScheduler builds a Scheduler wired to the fakes above, with
// overclock disabled (factor 1.0), and calls Init. A caller that changes
// cfg afterwards must relatch (latchOverclock or the next Advance) for the
// change to take effect.
func newTestScheduler() (*Scheduler, *testCPU, *testVideo, *testConfig, *testThread, *testLogger) {
	cpu := &testCPU{}
	video := &testVideo{}
	cfg := &testConfig{overclockFactor: 1.0}
	thread := &testThread{isCPU: true}
	logger := &testLogger{}
	s := NewScheduler(cpu, video, cfg, thread, func() bool { return false }, logger)
	s.Init()
	return s, cpu, video, cfg, thread, logger
}
