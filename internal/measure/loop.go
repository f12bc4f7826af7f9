// Package measure drives one primitive through a fixed-cadence series of
// uncontended acquisitions and records how long each acquire took.
package measure

import (
	"log/slog"
	"runtime"
	"time"

	"lockbench/internal/clock"
	"lockbench/internal/obs"
	"lockbench/internal/primitive"
	"lockbench/internal/samples"
)

// Loop holds the fixed parameters of a measurement run. Now and Sleep
// default to the real clock when nil.
type Loop struct {
	Budget      time.Duration
	SampleDelay time.Duration
	YieldDelay  time.Duration
	Now         clock.Func
	Sleep       clock.Sleeper
	Logger      *slog.Logger
}

// Result is the handoff from a finished run to the summary and CSV writers.
// Samples is owned by the caller again once Run returns.
type Result struct {
	Tag     string
	Samples *samples.Buffer
	State   State
	Reason  Reason
	Elapsed time.Duration
	Err     error
	// Cadence holds how far each SampleDelay sleep overran.
	Cadence obs.DurationSnapshot
}

// Run measures p until the time budget is spent or buf fills up. buf is
// reset first. Failures to initialise p are reported in Result.Err with zero
// samples; Run itself never fails.
func (l *Loop) Run(p primitive.Primitive, buf *samples.Buffer) Result {
	now := l.Now
	if now == nil {
		now = clock.Now
	}
	sleep := l.Sleep
	if sleep == nil {
		sleep = clock.Sleep
	}
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	res := Result{Tag: p.Name(), Samples: buf, State: NotStarted}
	buf.Reset()

	if err := p.Init(); err != nil {
		logger.Error("primitive init failed", "tag", res.Tag, "error", err)
		res.State = Completed
		res.Reason = ReasonInitFailed
		res.Err = err
		return res
	}
	defer p.Destroy()

	// Keep every timestamp on one OS thread for the whole run.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var cadence obs.DurationStat
	res.State = Running
	start := now()
	end := start + uint64(l.Budget)
	res.Reason = ReasonBudget

	for now() < end {
		if buf.Full() {
			logger.Warn("sample limit reached", "tag", res.Tag, "limit", buf.Cap())
			res.Reason = ReasonSaturated
			break
		}

		t0 := now()
		p.Acquire()
		t1 := now()
		p.Release()

		s0 := now()
		sleep(l.SampleDelay)
		cadence.Observe(time.Duration(clock.Since(s0, now())) - l.SampleDelay)

		buf.Append(clock.Since(t0, t1))

		sleep(l.YieldDelay)
	}

	res.State = Completed
	res.Elapsed = time.Duration(clock.Since(start, now()))
	res.Cadence = cadence.Snapshot()
	logger.Debug("measurement finished",
		"tag", res.Tag,
		"reason", res.Reason.String(),
		"samples", buf.Len(),
		"elapsed", res.Elapsed,
		"oversleep_avg", res.Cadence.Avg,
		"oversleep_max", res.Cadence.Max,
	)
	return res
}
