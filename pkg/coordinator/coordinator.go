// Package coordinator drives distributed query execution: it schedules plan
// fragments onto backends, starts them over gRPC, aggregates their status
// reports into a single query status and result profile, and finalizes
// INSERT queries.
package coordinator

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/strideql/stride/pkg/fsutil"
	"github.com/strideql/stride/pkg/profile"
	"github.com/strideql/stride/pkg/progress"
	"github.com/strideql/stride/pkg/rpcclient"
	"github.com/strideql/stride/pkg/scheduling"
	"github.com/strideql/stride/pkg/status"
	"github.com/strideql/stride/pkg/stridepb"
)

// Factory holds the process-wide dependencies shared by all queries and
// builds one Coordinator per query.
type Factory struct {
	logger          log.Logger
	clients         rpcclient.ClientCache
	fs              fsutil.FsClient
	sched           scheduling.Scheduler
	coordAddress    *stridepb.HostPort
	executorFactory ExecutorFactory
	metrics         *metrics

	// ConnectParallelism bounds concurrent ExecPlanFragment RPCs within one
	// fragment's dispatch wave. Zero means unbounded.
	ConnectParallelism int
}

func NewFactory(logger log.Logger, clients rpcclient.ClientCache, fs fsutil.FsClient, sched scheduling.Scheduler, coordAddress *stridepb.HostPort, executorFactory ExecutorFactory, reg prometheus.Registerer) *Factory {
	return &Factory{
		logger:          logger,
		clients:         clients,
		fs:              fs,
		sched:           sched,
		coordAddress:    coordAddress,
		executorFactory: executorFactory,
		metrics:         newMetrics(reg),
	}
}

// NewCoordinator builds the coordinator for one query. The returned
// Coordinator is used for exactly one Exec/Wait/GetNext/Cancel lifecycle.
func (f *Factory) NewCoordinator(queryID *stridepb.UniqueID, req *stridepb.QueryExecRequest, opts *stridepb.QueryOptions) *Coordinator {
	c := &Coordinator{
		Factory:      f,
		logger:       log.With(f.logger, "query_id", stridepb.PrintID(queryID)),
		queryID:      queryID,
		req:          req,
		queryOptions: opts,
		coordAddress: f.coordAddress,

		numAppendedRows: map[string]int64{},
		filesToMove:     map[string]string{},
	}
	c.backendDone = sync.NewCond(&c.lock)
	return c
}

// CatalogUpdate describes the catalog changes produced by an INSERT.
type CatalogUpdate struct {
	TargetTable       string
	CreatedPartitions []string
}

// Coordinator tracks one query's distributed execution.
//
// Lock order: waitLock, then lock, then a backend state's lock. The
// per-backend locks are leaves; nothing is acquired while one is held.
type Coordinator struct {
	*Factory
	logger log.Logger

	queryID      *stridepb.UniqueID
	req          *stridepb.QueryExecRequest
	queryOptions *stridepb.QueryOptions
	coordAddress *stridepb.HostPort

	// set once by Exec, read-only afterwards
	execParams        *scheduling.ExecParams
	backendStates     []*backendExecState
	executor          RootExecutor
	needsFinalization bool
	progressUpdater   *progress.Updater
	queryProfile      *profile.Profile
	aggProfile        *profile.Profile
	fragmentProfiles  []fragmentProfile
	execStart         time.Time

	// waitLock makes Wait idempotent: the first caller does the blocking
	// work, later callers return the settled status.
	waitLock      sync.Mutex
	hasCalledWait bool

	lock        sync.Mutex
	backendDone *sync.Cond // signalled when numRemainingBackends drops or the query fails

	// guarded by lock
	queryStatus          status.Status
	numRemainingBackends int
	returnedAllResults   bool
	summaryReported      bool
	numAppendedRows      map[string]int64
	filesToMove          map[string]string
}

type fragmentProfile struct {
	// root parents the instance profiles of this fragment.
	root *profile.Profile
	// averaged is the instance profiles merged and divided by instance
	// count, filled in by the query summary.
	averaged     *profile.Profile
	numInstances int
}

// Exec schedules the query and starts every remote fragment instance.
// Fragments are dispatched one fragment at a time so that consumers are
// running before their producers start sending; instances within a fragment
// start in parallel. On error the query is failed and already started
// instances are cancelled.
func (c *Coordinator) Exec(ctx context.Context) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "Coordinator.Exec")
	defer span.Finish()
	span.SetTag("query_id", stridepb.PrintID(c.queryID))

	level.Info(c.logger).Log("msg", "starting query", "fragments", len(c.req.Fragments))
	c.execStart = time.Now()

	ep, err := scheduling.ComputeExecParams(c.queryID, c.coordAddress, c.req, c.sched)
	if err != nil {
		c.UpdateStatus(status.FromError(err), nil)
		return err
	}
	c.execParams = ep
	c.needsFinalization = c.req.FinalizeParams != nil
	c.metrics.scanRangesTotal.Add(float64(ep.NumScanRanges))
	c.progressUpdater = progress.NewUpdater(c.logger, "scan ranges", ep.NumScanRanges)

	c.initProfiles()

	if ep.HasCoordinatorFragment {
		if c.executorFactory == nil {
			s := status.InternalErrorf("query %s has an unpartitioned root fragment but no in-process executor is available", stridepb.PrintID(c.queryID))
			c.UpdateStatus(s, nil)
			return s
		}
		params := &ep.Fragments[0]
		instanceCtx := &stridepb.FragmentInstanceCtx{
			QueryId:            c.queryID,
			FragmentInstanceId: params.InstanceIDs[0],
			PerExchNumSenders:  params.PerExchNumSenders,
		}
		executor, err := c.executorFactory(c.req.Fragments[0], instanceCtx)
		if err != nil {
			c.UpdateStatus(status.FromError(err), nil)
			return err
		}
		if err := executor.Prepare(ctx, c.req.Fragments[0], instanceCtx); err != nil {
			c.UpdateStatus(status.FromError(err), params.InstanceIDs[0])
			return err
		}
		c.executor = executor
		fp := &c.fragmentProfiles[0]
		fp.root = executor.Profile()
		fp.averaged = executor.Profile()
		c.aggProfile.InsertChildAfter(fp.averaged, nil)
	}

	c.buildBackendStates()
	c.logSplitSummary()
	c.addAggregateCounters()

	// lock is held across dispatch so a concurrent Cancel runs either before
	// any instance starts or after all of them have; a cancel that slipped in
	// between would sweep nothing and leave every instance running
	c.lock.Lock()
	if err := c.queryStatus.AsError(); err != nil {
		c.lock.Unlock()
		return err
	}
	c.numRemainingBackends = len(c.backendStates)
	c.metrics.remainingBackends.Add(float64(len(c.backendStates)))
	err = c.dispatchFragments(ctx)
	c.lock.Unlock()
	if err != nil {
		c.UpdateStatus(status.FromError(err), nil)
		return err
	}
	c.metrics.dispatchDuration.Observe(time.Since(c.execStart).Seconds())
	level.Info(c.logger).Log("msg", "all fragment instances started", "backends", len(c.backendStates))
	return nil
}

func (c *Coordinator) initProfiles() {
	c.queryProfile = profile.New("Query (id=" + stridepb.PrintID(c.queryID) + ")")
	c.aggProfile = profile.New("Aggregate Profile")
	c.queryProfile.AddChild(c.aggProfile)

	c.fragmentProfiles = make([]fragmentProfile, len(c.req.Fragments))
	for i := range c.req.Fragments {
		fp := &c.fragmentProfiles[i]
		fp.numInstances = len(c.execParams.Fragments[i].Hosts)
		if i == 0 && c.execParams.HasCoordinatorFragment {
			// the in-process executor's profile doubles as this fragment's
			// averaged profile; it is attached once the executor exists
			continue
		}
		fp.root = profile.NewWithID(fragmentProfileName(i), stridepb.InvalidPlanNodeID)
		fp.averaged = profile.New("Averaged " + fragmentProfileName(i))
		c.aggProfile.AddChild(fp.averaged)
		c.aggProfile.AddChild(fp.root)
	}
}

// buildBackendStates creates one state per remote fragment instance, in
// fragment order. backendNum is the instance's index in this slice and keys
// status reports back to it.
func (c *Coordinator) buildBackendStates() {
	firstRemoteFragment := 0
	if c.execParams.HasCoordinatorFragment {
		firstRemoteFragment = 1
	}
	for i := firstRemoteFragment; i < len(c.execParams.Fragments); i++ {
		params := &c.execParams.Fragments[i]
		for j, host := range params.Hosts {
			state := newBackendExecState(params.InstanceIDs[j], len(c.backendStates), i, host, c.execParams.ScanRangesFor(i, host))
			c.backendStates = append(c.backendStates, state)
			c.fragmentProfiles[i].root.AddChild(state.profile)
		}
	}
}

// GetStatus returns the query's overall status.
func (c *Coordinator) GetStatus() status.Status {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.queryStatus
}

// UpdateStatus makes s the overall query status if the query has not already
// failed, and cancels all fragment instances when it is an error. The first
// error wins; later errors are dropped.
func (c *Coordinator) UpdateStatus(s status.Status, failedInstance *stridepb.UniqueID) status.Status {
	if s.IsOK() {
		return c.GetStatus()
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	if !c.queryStatus.IsOK() {
		return c.queryStatus
	}
	c.queryStatus = s
	if failedInstance != nil {
		level.Error(c.logger).Log("msg", "query failed", "failed_instance", stridepb.PrintID(failedInstance), "err", s.Error())
	} else {
		level.Error(c.logger).Log("msg", "query failed", "err", s.Error())
	}
	c.cancelInternalLocked()
	return c.queryStatus
}

// Wait blocks until the query reaches the point where results can be
// fetched, or until it fails. For INSERT queries this includes waiting for
// every backend and running finalization. Safe to call from multiple
// goroutines; only the first call does the work.
func (c *Coordinator) Wait(ctx context.Context) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "Coordinator.Wait")
	defer span.Finish()

	c.waitLock.Lock()
	defer c.waitLock.Unlock()
	if c.hasCalledWait {
		return c.GetStatus().AsError()
	}
	c.hasCalledWait = true

	if c.executor != nil {
		if err := c.executor.Open(ctx); err != nil {
			s := c.UpdateStatus(status.FromError(err), c.executor.FragmentInstanceID())
			return s.AsError()
		}
	}

	if !c.needsFinalization {
		if c.executor == nil {
			// no coordinator fragment and nothing to finalize: the query is
			// complete once every backend has reported done
			c.lock.Lock()
			c.waitForAllBackendsLocked()
			c.lock.Unlock()
		}
		return c.GetStatus().AsError()
	}

	// INSERT: drain the root fragment if we have one, collect its insert
	// metadata, then wait out the remote fragments before touching the
	// filesystem.
	if c.executor != nil {
		if err := c.drainExecutorForInsert(ctx); err != nil {
			s := c.UpdateStatus(status.FromError(err), c.executor.FragmentInstanceID())
			return s.AsError()
		}
	}

	c.lock.Lock()
	c.waitForAllBackendsLocked()
	finalizeStatus := c.queryStatus
	c.lock.Unlock()

	if finalizeStatus.IsOK() {
		finalizeStatus = c.finalizeQuery()
		if !finalizeStatus.IsOK() {
			c.UpdateStatus(finalizeStatus, nil)
		}
	}
	return c.GetStatus().AsError()
}

// drainExecutorForInsert pumps the root executor to end of stream. An INSERT
// root produces no client-visible rows; its output is the insert metadata.
func (c *Coordinator) drainExecutorForInsert(ctx context.Context) error {
	for {
		_, eos, err := c.executor.GetNext(ctx)
		if err != nil {
			return err
		}
		if eos {
			break
		}
	}
	c.lock.Lock()
	c.mergeInsertMetadataLocked(c.executor.NumAppendedRows(), c.executor.FilesToMove())
	c.returnedAllResults = true
	c.lock.Unlock()
	return nil
}

// waitForAllBackendsLocked blocks until every backend has reported done or
// the query has failed. Caller holds lock.
func (c *Coordinator) waitForAllBackendsLocked() {
	level.Debug(c.logger).Log("msg", "waiting for backends", "remaining", c.numRemainingBackends)
	for c.numRemainingBackends > 0 && c.queryStatus.IsOK() {
		c.backendDone.Wait()
	}
	if c.numRemainingBackends == 0 {
		level.Debug(c.logger).Log("msg", "all backends finished")
		c.reportQuerySummaryLocked()
	}
}

// GetNext returns the next batch of results from the root fragment. eos is
// true once all results have been returned; before the terminal batch is
// handed back the coordinator blocks until every remote backend has finished
// and reports the query summary, so callers see a quiesced query at eos.
func (c *Coordinator) GetNext(ctx context.Context) (*RowBatch, bool, error) {
	c.lock.Lock()
	if c.returnedAllResults {
		c.lock.Unlock()
		return nil, true, nil
	}
	if err := c.queryStatus.AsError(); err != nil {
		c.lock.Unlock()
		return nil, false, err
	}
	executor := c.executor
	if executor == nil {
		// no coordinator fragment (e.g. INSERT): there are no rows
		c.returnedAllResults = true
		c.lock.Unlock()
		return nil, true, nil
	}
	c.lock.Unlock()

	// the fetch can block for a long time; holding lock across it would stall
	// an async Cancel, which may be the only thing that unblocks it
	batch, eos, err := executor.GetNext(ctx)

	c.lock.Lock()
	defer c.lock.Unlock()
	if err != nil {
		if c.queryStatus.IsOK() {
			c.queryStatus = status.FromError(err)
			c.cancelInternalLocked()
		}
		return nil, false, c.queryStatus.AsError()
	}
	if eos {
		c.returnedAllResults = true
		c.waitForAllBackendsLocked()
		if err := c.queryStatus.AsError(); err != nil {
			return nil, false, err
		}
	}
	return batch, eos, nil
}

// Cancel aborts the query on behalf of the client. A query that has already
// failed keeps its error status; cancelling a finished query is a no-op.
func (c *Coordinator) Cancel() {
	c.lock.Lock()
	defer c.lock.Unlock()
	if !c.queryStatus.IsOK() {
		// the error path already ran cancellation
		return
	}
	c.queryStatus = status.Cancelled()
	c.cancelInternalLocked()
}

// cancelInternalLocked stops the root executor and all remote fragment
// instances. Caller holds lock; per-backend locks are taken one at a time.
// RPC failures during cancellation are recorded as status details but do not
// change the query status code.
func (c *Coordinator) cancelInternalLocked() {
	c.metrics.queriesCancelled.Inc()
	if c.executor != nil {
		c.executor.Cancel()
	}

	for _, b := range c.backendStates {
		b.lock.Lock()
		if !b.initiated || b.done || !b.execStatus.IsOK() {
			// never started, already finished, or already failed and
			// therefore already torn down on the backend
			b.lock.Unlock()
			continue
		}
		b.execStatus = status.Cancelled()
		err := c.cancelRemoteFragment(b)
		b.lock.Unlock()
		if err != nil {
			c.queryStatus.AddDetail(err.Error())
			level.Warn(c.logger).Log("msg", "cancel RPC failed", "backend", b.host.Addr(), "err", err)
		}
	}
	c.backendDone.Broadcast()
}

func (c *Coordinator) cancelRemoteFragment(b *backendExecState) error {
	level.Debug(c.logger).Log("msg", "cancelling fragment instance", "instance_id", stridepb.PrintID(b.fragmentInstanceID), "backend", b.host.Addr())
	client, err := c.clients.GetClient(b.host.Addr())
	if err != nil {
		return err
	}
	defer c.clients.ReleaseClient(client)

	resp, err := client.CancelPlanFragment(context.Background(), &stridepb.CancelPlanFragmentRequest{
		FragmentInstanceId: b.fragmentInstanceID,
	})
	if err != nil {
		return err
	}
	return status.FromProto(resp.GetStatus()).AsError()
}

// GetErrorLog returns the accumulated non-fatal error messages from every
// fragment instance, root executor included. Remote entries are prefixed with
// the backend number they came from.
func (c *Coordinator) GetErrorLog() []string {
	var out []string
	if c.executor != nil {
		out = append(out, c.executor.ErrorLog()...)
	}
	for i, b := range c.backendStates {
		b.lock.Lock()
		for _, msg := range b.errorLog {
			out = append(out, "Backend "+strconv.Itoa(i)+": "+msg)
		}
		b.lock.Unlock()
	}
	return out
}

// PrepareCatalogUpdate describes the partitions an INSERT created or
// appended to, for the caller to apply to the catalog after Wait succeeds.
func (c *Coordinator) PrepareCatalogUpdate() *CatalogUpdate {
	c.lock.Lock()
	defer c.lock.Unlock()
	update := &CatalogUpdate{}
	if c.req.FinalizeParams != nil {
		update.TargetTable = c.req.FinalizeParams.TargetTable
	}
	for partition := range c.numAppendedRows {
		update.CreatedPartitions = append(update.CreatedPartitions, partition)
	}
	return update
}

// NumAppendedRows returns per-partition appended row counts for an INSERT.
func (c *Coordinator) NumAppendedRows() map[string]int64 {
	c.lock.Lock()
	defer c.lock.Unlock()
	out := make(map[string]int64, len(c.numAppendedRows))
	for k, v := range c.numAppendedRows {
		out[k] = v
	}
	return out
}

// Profile returns the query's runtime profile tree.
func (c *Coordinator) Profile() *profile.Profile {
	return c.queryProfile
}

// Progress returns "completed / total" scan range progress.
func (c *Coordinator) Progress() string {
	return c.progressUpdater.String()
}

func (c *Coordinator) mergeInsertMetadataLocked(rows map[string]int64, files map[string]string) {
	for partition, n := range rows {
		c.numAppendedRows[partition] += n
	}
	for src, dst := range files {
		c.filesToMove[src] = dst
	}
}

func fragmentProfileName(i int) string {
	return "Fragment " + strconv.Itoa(i)
}
