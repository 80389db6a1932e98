package coordinator

import (
	"sync"
	"time"

	"github.com/strideql/stride/pkg/profile"
	"github.com/strideql/stride/pkg/scheduling"
	"github.com/strideql/stride/pkg/status"
	"github.com/strideql/stride/pkg/stridepb"
)

// stopwatch measures wall time between Start and Stop. Not safe for
// concurrent use; callers hold the owning backend state's lock.
type stopwatch struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

func (s *stopwatch) Start() {
	if !s.running {
		s.start = time.Now()
		s.running = true
	}
}

func (s *stopwatch) Stop() {
	if s.running {
		s.elapsed += time.Since(s.start)
		s.running = false
	}
}

func (s *stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.elapsed + time.Since(s.start)
	}
	return s.elapsed
}

// backendExecState tracks one remote fragment instance. Its lock orders
// after the coordinator's lock and is never held while making an RPC except
// for the initial ExecPlanFragment, which keeps it held so a cancellation
// racing with dispatch observes a settled state.
type backendExecState struct {
	fragmentInstanceID *stridepb.UniqueID
	backendNum         int
	fragmentIdx        int
	host               *stridepb.HostPort
	totalSplitSize     int64

	lock sync.Mutex

	// guarded by lock
	execStatus status.Status
	initiated  bool
	done       bool
	errorLog   []string
	stopwatch  stopwatch

	// profile holds the latest cumulative snapshot reported by the backend.
	// The tree is updated in place so counter pointers cached below stay
	// valid for the lifetime of the query.
	profile        *profile.Profile
	profileCreated bool

	// Cached counter pointers, filled on the first status report. Counter
	// values are atomics, so aggregation reads them without taking lock.
	throughputCounters      map[int32]*profile.Counter
	scanRangesCompleteCtrs  map[int32]*profile.Counter
	totalRangesCompleteCtr  *profile.Counter
	prevTotalRangesComplete int64
}

func newBackendExecState(instanceID *stridepb.UniqueID, backendNum, fragmentIdx int, host *stridepb.HostPort, scanRanges scheduling.PerNodeScanRanges) *backendExecState {
	var splitSize int64
	for _, ranges := range scanRanges {
		for _, r := range ranges {
			splitSize += r.GetScanRange().Length()
		}
	}
	return &backendExecState{
		fragmentInstanceID:     instanceID,
		backendNum:             backendNum,
		fragmentIdx:            fragmentIdx,
		host:                   host,
		totalSplitSize:         splitSize,
		profile:                profile.New("Instance " + stridepb.PrintID(instanceID)),
		throughputCounters:     map[int32]*profile.Counter{},
		scanRangesCompleteCtrs: map[int32]*profile.Counter{},
	}
}

// collectScanNodeCounters walks the freshly updated profile tree and caches
// pointers to the per-scan-node counters used by the coordinator's derived
// aggregates. Called with lock held, once, on the first profile update.
func (b *backendExecState) collectScanNodeCounters() {
	for _, node := range b.profile.AllChildren() {
		id := node.PlanNodeID()
		if id == stridepb.InvalidPlanNodeID {
			continue
		}
		if c := node.GetCounter(profile.TotalThroughputCounterName); c != nil {
			b.throughputCounters[id] = c
		}
		if c := node.GetCounter(profile.ScanRangesCompleteCounterName); c != nil {
			b.scanRangesCompleteCtrs[id] = c
		}
	}
	b.totalRangesCompleteCtr = b.profile.AddCounter(profile.ScanRangesCompleteCounterName, stridepb.CounterUnit_UNIT)
}

// computeTotalRangesComplete refreshes the instance-level completed range
// count and returns the delta since the previous report. Called with lock
// held.
func (b *backendExecState) computeTotalRangesComplete() int64 {
	var total int64
	for _, c := range b.scanRangesCompleteCtrs {
		total += c.Value()
	}
	b.totalRangesCompleteCtr.Set(total)
	delta := total - b.prevTotalRangesComplete
	b.prevTotalRangesComplete = total
	if delta < 0 {
		// a backend restarting its report sequence must not move progress
		// backwards
		delta = 0
	}
	return delta
}

// execRequest builds the ExecPlanFragment request for this backend.
func (b *backendExecState) execRequest(c *Coordinator, params *scheduling.FragmentExecParams) *stridepb.ExecPlanFragmentRequest {
	scanRanges := c.execParams.ScanRangesFor(b.fragmentIdx, b.host)
	perNode := make(map[int32]*stridepb.ScanRangeParamsList, len(scanRanges))
	for nodeID, ranges := range scanRanges {
		perNode[nodeID] = &stridepb.ScanRangeParamsList{Params: ranges}
	}
	return &stridepb.ExecPlanFragmentRequest{
		Fragment: c.req.Fragments[b.fragmentIdx],
		Params: &stridepb.FragmentInstanceCtx{
			QueryId:            c.queryID,
			FragmentInstanceId: b.fragmentInstanceID,
			PerNodeScanRanges:  perNode,
			PerExchNumSenders:  params.PerExchNumSenders,
			Destinations:       params.Destinations,
		},
		Coord:        c.coordAddress,
		BackendNum:   int32(b.backendNum),
		QueryGlobals: c.req.QueryGlobals,
		QueryOptions: c.queryOptions,
	}
}
