package coordinator

import (
	"bytes"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"

	"github.com/strideql/stride/pkg/profile"
	"github.com/strideql/stride/pkg/stridepb"
	"github.com/strideql/stride/pkg/util/summary"
)

// logSplitSummary records how evenly scan bytes were spread over each
// fragment's instances. A large spread here explains a straggler before the
// query even runs.
func (c *Coordinator) logSplitSummary() {
	perFragment := map[int]*summary.Stats{}
	for _, b := range c.backendStates {
		s := perFragment[b.fragmentIdx]
		if s == nil {
			s = &summary.Stats{}
			perFragment[b.fragmentIdx] = s
		}
		s.Add(float64(b.totalSplitSize))
	}
	for fragmentIdx, s := range perFragment {
		if s.Max() == 0 {
			continue
		}
		split := fmt.Sprintf("min: %s, max: %s, avg: %s, stddev: %s",
			humanize.IBytes(uint64(s.Min())),
			humanize.IBytes(uint64(s.Max())),
			humanize.IBytes(uint64(s.Mean())),
			humanize.IBytes(uint64(s.StdDev())))
		c.fragmentProfiles[fragmentIdx].root.AddInfoString("split sizes", split)
		level.Debug(c.logger).Log("msg", "split sizes", "fragment", fragmentIdx, "instances", s.N(), "summary", split)
	}
}

// addAggregateCounters attaches derived counters to the query profile that
// sum the cached per-backend scan counters. Counter values are atomics, so
// the derived functions only take each backend's lock long enough to read the
// cached pointers.
func (c *Coordinator) addAggregateCounters() {
	states := c.backendStates
	c.queryProfile.AddDerivedCounter(profile.ScanRangesCompleteCounterName, stridepb.CounterUnit_UNIT, func() int64 {
		var total int64
		for _, b := range states {
			b.lock.Lock()
			ctr := b.totalRangesCompleteCtr
			b.lock.Unlock()
			if ctr != nil {
				total += ctr.Value()
			}
		}
		return total
	})
	c.queryProfile.AddDerivedCounter(profile.TotalThroughputCounterName, stridepb.CounterUnit_BYTES_PER_SECOND, func() int64 {
		var total int64
		for _, b := range states {
			b.lock.Lock()
			counters := make([]*profile.Counter, 0, len(b.throughputCounters))
			for _, ctr := range b.throughputCounters {
				counters = append(counters, ctr)
			}
			b.lock.Unlock()
			for _, ctr := range counters {
				total += ctr.Value()
			}
		}
		return total
	})
}

// reportQuerySummaryLocked builds the averaged per-fragment profiles and logs
// completion time and execution rate summaries. Runs once, after the last
// backend finishes; caller holds lock.
func (c *Coordinator) reportQuerySummaryLocked() {
	if c.summaryReported {
		return
	}
	c.summaryReported = true

	for i := range c.fragmentProfiles {
		fp := &c.fragmentProfiles[i]

		times := summary.Stats{}
		rates := summary.Stats{}
		numInstances := 0
		for _, b := range c.backendStates {
			if b.fragmentIdx != i {
				continue
			}
			numInstances++

			b.lock.Lock()
			elapsed := b.stopwatch.Elapsed()
			splitSize := b.totalSplitSize
			b.lock.Unlock()

			fp.averaged.Merge(b.profile)
			times.Add(elapsed.Seconds())
			if elapsed > 0 {
				rates.Add(float64(splitSize) / elapsed.Seconds())
			}
		}
		if numInstances == 0 {
			continue
		}
		fp.averaged.Divide(numInstances)

		completion := fmt.Sprintf("min: %s, max: %s, avg: %s, stddev: %s",
			prettyDuration(times.Min()), prettyDuration(times.Max()),
			prettyDuration(times.Mean()), prettyDuration(times.StdDev()))
		rate := fmt.Sprintf("min: %s/s, max: %s/s, avg: %s/s, stddev: %s/s",
			humanize.IBytes(uint64(rates.Min())), humanize.IBytes(uint64(rates.Max())),
			humanize.IBytes(uint64(rates.Mean())), humanize.IBytes(uint64(rates.StdDev())))

		fp.root.AddInfoString("completion times", completion)
		fp.root.AddInfoString("execution rates", rate)
		fp.root.AddInfoString("num instances", fmt.Sprintf("%d", numInstances))
		level.Info(c.logger).Log("msg", "fragment summary", "fragment", i,
			"instances", numInstances, "completion_times", completion, "execution_rates", rate)
	}

	var buf bytes.Buffer
	c.queryProfile.PrettyPrint(&buf, "")
	level.Debug(c.logger).Log("msg", "query profile", "profile", buf.String())
}

func prettyDuration(seconds float64) string {
	return time.Duration(seconds * float64(time.Second)).Round(time.Millisecond).String()
}
