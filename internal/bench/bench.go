// Package bench sequences a full measurement session: latency floor, the
// mutex run, the semaphore run, summaries and CSV files.
package bench

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"lockbench/internal/clock"
	"lockbench/internal/config"
	"lockbench/internal/latencyfloor"
	"lockbench/internal/measure"
	"lockbench/internal/primitive"
	"lockbench/internal/report"
	"lockbench/internal/samples"
	"lockbench/internal/stats"
)

// ErrAllocation is the only error Run returns; without sample storage there
// is nothing to measure.
var ErrAllocation = errors.New("bench: sample buffer allocation failed")

type Harness struct {
	cfg    config.Config
	logger *slog.Logger
	out    io.Writer

	// Overridable in tests.
	now   clock.Func
	sleep clock.Sleeper
}

func New(cfg config.Config, logger *slog.Logger, out io.Writer) *Harness {
	if logger == nil {
		logger = slog.Default()
	}
	return &Harness{
		cfg:    cfg,
		logger: logger,
		out:    out,
		now:    clock.Now,
		sleep:  clock.Sleep,
	}
}

type run struct {
	label     string
	csv       string
	budget    time.Duration
	primitive primitive.Primitive
	buf       *samples.Buffer
	result    measure.Result
}

// Run executes the session. Everything short of buffer allocation degrades
// to a logged diagnostic and the session carries on.
func (h *Harness) Run() error {
	floor := h.holdLatencyFloor()
	defer h.releaseLatencyFloor(floor)

	mutexBuf, err := samples.New(h.cfg.Capacity)
	if err != nil {
		h.logger.Error("allocate mutex samples", "capacity", h.cfg.Capacity, "error", err)
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	semBuf, err := samples.New(h.cfg.Capacity)
	if err != nil {
		h.logger.Error("allocate semaphore samples", "capacity", h.cfg.Capacity, "error", err)
		return fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	runs := []*run{
		{label: "MUTEX", csv: h.cfg.MutexCSV, budget: h.cfg.MutexDuration, primitive: primitive.NewMutex(), buf: mutexBuf},
		{label: "SEMAPHORE", csv: h.cfg.SemaphoreCSV, budget: h.cfg.SemaphoreDuration, primitive: primitive.NewSemaphore(h.cfg.SemaphoreCount), buf: semBuf},
	}

	// Strictly one after the other so the windows never share the CPU.
	for _, r := range runs {
		h.printf("Measuring %d s %s (max %d samples)...\n", int(r.budget/time.Second), r.label, r.buf.Cap())
		loop := &measure.Loop{
			Budget:      r.budget,
			SampleDelay: h.cfg.SampleDelay,
			YieldDelay:  h.cfg.YieldDelay,
			Now:         h.now,
			Sleep:       h.sleep,
			Logger:      h.logger,
		}
		r.result = loop.Run(r.primitive, r.buf)
	}

	for _, r := range runs {
		if err := report.WriteSummary(h.out, r.result.Tag, stats.Summarize(r.buf.Values())); err != nil {
			h.logger.Error("write summary", "tag", r.result.Tag, "error", err)
		}
	}

	for _, r := range runs {
		if err := report.WriteCSV(r.csv, r.buf.Values()); err != nil {
			h.logger.Error("save csv", "path", r.csv, "error", err)
			continue
		}
		h.printf("CSV %s saved (%d samples).\n", r.csv, r.buf.Len())
	}
	return nil
}

func (h *Harness) holdLatencyFloor() *latencyfloor.Handle {
	path := h.cfg.LatencyFloorPath
	if path == "" {
		return nil
	}
	handle, err := latencyfloor.Hold(path, h.cfg.LatencyTarget)
	switch {
	case errors.Is(err, latencyfloor.ErrUnavailable):
		h.logger.Debug("latency floor unavailable", "path", path)
		return nil
	case err != nil:
		h.logger.Error("latency floor request failed", "path", path, "error", err)
		return nil
	}
	h.logger.Debug("latency floor held", "path", path, "target_us", h.cfg.LatencyTarget)
	return handle
}

func (h *Harness) releaseLatencyFloor(handle *latencyfloor.Handle) {
	if err := handle.Close(); err != nil {
		h.logger.Error("latency floor release failed", "error", err)
	}
}

func (h *Harness) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(h.out, format, args...); err != nil {
		h.logger.Error("write progress", "error", err)
	}
}
