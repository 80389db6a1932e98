package coordinator

import (
	"github.com/go-kit/log/level"

	"github.com/strideql/stride/pkg/status"
	"github.com/strideql/stride/pkg/stridepb"
)

// UpdateFragmentExecStatus applies one status report from a backend. Reports
// carry cumulative profiles, so they can be applied in any order; a report
// arriving after the instance was marked done is dropped. An error report
// fails the whole query and triggers cancellation of the other instances.
func (c *Coordinator) UpdateFragmentExecStatus(req *stridepb.ReportExecStatusRequest) status.Status {
	backendNum := int(req.BackendNum)
	if backendNum < 0 || backendNum >= len(c.backendStates) {
		return status.InternalErrorf("unknown backend number %d for query %s (have %d backends)",
			backendNum, stridepb.PrintID(c.queryID), len(c.backendStates))
	}
	b := c.backendStates[backendNum]
	reportStatus := status.FromProto(req.GetStatus())

	b.lock.Lock()
	if b.done {
		// stale report from a backend that already finished
		b.lock.Unlock()
		return status.OK()
	}
	// a backend never goes back to OK once it reported an error
	if b.execStatus.IsOK() && !reportStatus.IsOK() {
		b.execStatus = reportStatus
	}

	if req.Profile != nil {
		b.profile.Update(req.Profile)
		if !b.profileCreated {
			b.collectScanNodeCounters()
			b.profileCreated = true
		}
		c.progressUpdater.Update(b.computeTotalRangesComplete())
	}
	b.errorLog = append(b.errorLog, req.ErrorLog...)

	done := req.Done
	if done {
		b.done = true
		b.stopwatch.Stop()
	}
	b.lock.Unlock()

	if done {
		c.lock.Lock()
		// with a root sink running in process the insert metadata comes from
		// the executor, never from backend reports
		if insert := req.InsertExecStatus; insert != nil && c.executor == nil {
			c.mergeInsertMetadataLocked(insert.NumAppendedRows, insert.FilesToMove)
		}
		c.numRemainingBackends--
		remaining := c.numRemainingBackends
		if remaining == 0 {
			c.backendDone.Broadcast()
		}
		c.lock.Unlock()
		c.metrics.remainingBackends.Dec()
		c.logCompletedBackend(b, remaining)
	}

	if !reportStatus.IsOK() {
		c.UpdateStatus(reportStatus, req.FragmentInstanceId)
	}
	return status.OK()
}

// logCompletedBackend notes one more backend finishing and which host we are
// still waiting on, which is the first place to look when a query is stuck.
func (c *Coordinator) logCompletedBackend(completed *backendExecState, remaining int) {
	if remaining <= 0 {
		return
	}
	var firstInProgress string
	for _, b := range c.backendStates {
		b.lock.Lock()
		inProgress := b.initiated && !b.done
		b.lock.Unlock()
		if inProgress {
			firstInProgress = b.host.Addr()
			break
		}
	}
	level.Debug(c.logger).Log("msg", "backend finished",
		"instance_id", stridepb.PrintID(completed.fragmentInstanceID),
		"remaining", remaining,
		"first_in_progress", firstInProgress)
}
