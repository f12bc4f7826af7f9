package bench

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lockbench/internal/config"
	"lockbench/internal/logging"
)

type fakeClock struct{ ns uint64 }

func (c *fakeClock) Now() uint64 { return c.ns }

func (c *fakeClock) Sleep(d time.Duration) { c.ns += uint64(d) }

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.MutexDuration = 100 * time.Millisecond
	cfg.SemaphoreDuration = 50 * time.Millisecond
	cfg.MutexCSV = filepath.Join(dir, "mutex_ns.csv")
	cfg.SemaphoreCSV = filepath.Join(dir, "sem_ns.csv")
	cfg.LatencyFloorPath = filepath.Join(dir, "no-cpu-dma-latency")
	return cfg
}

func newHarness(cfg config.Config, out, logs *bytes.Buffer) *Harness {
	h := New(cfg, logging.New("debug", logs), out)
	clk := &fakeClock{}
	h.now = clk.Now
	h.sleep = clk.Sleep
	return h
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	if len(data) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestRunFullSession(t *testing.T) {
	cfg := testConfig(t)
	var out, logs bytes.Buffer

	require.NoError(t, newHarness(cfg, &out, &logs).Run())

	text := out.String()
	require.Contains(t, text, "Measuring 0 s MUTEX (max 7000 samples)...\n")
	require.Contains(t, text, "Measuring 0 s SEMAPHORE (max 7000 samples)...\n")
	require.Contains(t, text, "[mutex] amount=10  min=0 ns  max=0 ns  avg=0.00 ns stddev=0.00 ns")
	require.Contains(t, text, "[sem] amount=5  min=0 ns")
	require.Contains(t, text, "CSV "+cfg.MutexCSV+" saved (10 samples).\n")
	require.Contains(t, text, "CSV "+cfg.SemaphoreCSV+" saved (5 samples).\n")

	// Both measurements run before any summary is printed.
	require.Less(t, strings.Index(text, "SEMAPHORE"), strings.Index(text, "[mutex]"))

	require.Equal(t, []string{"0", "0", "0", "0", "0", "0", "0", "0", "0", "0"}, readLines(t, cfg.MutexCSV))
	require.Len(t, readLines(t, cfg.SemaphoreCSV), 5)
	require.Contains(t, logs.String(), "latency floor unavailable")
	require.NotContains(t, logs.String(), `"level":"ERROR"`)
}

func TestRunAllocationFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.Capacity = 0
	var out, logs bytes.Buffer

	err := newHarness(cfg, &out, &logs).Run()
	require.ErrorIs(t, err, ErrAllocation)
	require.Zero(t, out.Len())
	require.NoFileExists(t, cfg.MutexCSV)
	require.NoFileExists(t, cfg.SemaphoreCSV)
}

func TestRunSemaphoreInitFailureKeepsMutex(t *testing.T) {
	cfg := testConfig(t)
	cfg.SemaphoreCount = 0
	var out, logs bytes.Buffer

	require.NoError(t, newHarness(cfg, &out, &logs).Run())

	require.Contains(t, out.String(), "[mutex] amount=10 ")
	require.Contains(t, out.String(), "[sem] amount=0 (No samples collected)\n")
	require.Contains(t, logs.String(), "primitive init failed")
	require.Len(t, readLines(t, cfg.MutexCSV), 10)
	require.Empty(t, readLines(t, cfg.SemaphoreCSV))
}

func TestRunSaturationWarns(t *testing.T) {
	cfg := testConfig(t)
	cfg.Capacity = 4
	var out, logs bytes.Buffer

	require.NoError(t, newHarness(cfg, &out, &logs).Run())

	require.Contains(t, out.String(), "[mutex] amount=4 ")
	require.Contains(t, out.String(), "[sem] amount=4 ")
	require.Equal(t, 2, strings.Count(logs.String(), "sample limit reached"))
}

func TestRunCSVFailureContinues(t *testing.T) {
	cfg := testConfig(t)
	cfg.MutexCSV = filepath.Join(t.TempDir(), "missing", "mutex_ns.csv")
	var out, logs bytes.Buffer

	require.NoError(t, newHarness(cfg, &out, &logs).Run())

	require.Contains(t, logs.String(), "save csv")
	require.NotContains(t, out.String(), "CSV "+cfg.MutexCSV)
	require.Contains(t, out.String(), "CSV "+cfg.SemaphoreCSV+" saved (5 samples).\n")
	require.Len(t, readLines(t, cfg.SemaphoreCSV), 5)
}

func TestRunLatencyFloorErrorIsNonFatal(t *testing.T) {
	cfg := testConfig(t)
	// A directory cannot be opened read-write, which is not "missing device".
	cfg.LatencyFloorPath = t.TempDir()
	var out, logs bytes.Buffer

	require.NoError(t, newHarness(cfg, &out, &logs).Run())
	require.Contains(t, out.String(), "[mutex] amount=10 ")
}
