// Package scheduling decides where fragment instances run and which scan
// ranges each instance reads. It turns a compiled QueryExecRequest into
// per-fragment execution parameters: host lists, instance ids, sender counts
// and sink destinations, plus a locality-aware scan range assignment.
package scheduling

import (
	"math"
	"sort"

	"github.com/strideql/stride/pkg/status"
	"github.com/strideql/stride/pkg/stridepb"
)

// PerNodeScanRanges maps a scan node id to the ranges one host reads for it.
type PerNodeScanRanges map[int32][]*stridepb.ScanRangeParams

// FragmentScanRangeAssignment maps an exec host (by HostPort.Key) to its
// per-node scan ranges for one fragment.
type FragmentScanRangeAssignment map[string]PerNodeScanRanges

// FragmentExecParams holds everything the coordinator needs to start one
// fragment's instances.
type FragmentExecParams struct {
	Hosts             []*stridepb.HostPort
	InstanceIDs       []*stridepb.UniqueID
	PerExchNumSenders map[int32]int32
	Destinations      []*stridepb.PlanFragmentDestination
	// DataServerMap translates a data host (by HostPort.Key) to the exec
	// host chosen for it.
	DataServerMap map[string]*stridepb.HostPort
}

// ExecParams is the scheduling result for a whole query.
type ExecParams struct {
	Fragments  []FragmentExecParams
	Assignment []FragmentScanRangeAssignment

	// NumBackends counts remote fragment instances; the coordinator's own
	// root fragment, if any, is excluded.
	NumBackends   int
	NumScanRanges int64

	// HasCoordinatorFragment is true when fragments[0] is unpartitioned and
	// therefore runs in-process at the coordinator.
	HasCoordinatorFragment bool
}

// ScanRangesFor returns the scan ranges assigned to execHost for fragmentIdx.
func (ep *ExecParams) ScanRangesFor(fragmentIdx int, execHost *stridepb.HostPort) PerNodeScanRanges {
	return ep.Assignment[fragmentIdx][execHost.Key()]
}

// ComputeExecParams runs fragment host assignment, instance id assignment,
// sender/destination wiring and scan range assignment for the request.
func ComputeExecParams(queryID *stridepb.UniqueID, coord *stridepb.HostPort, req *stridepb.QueryExecRequest, sched Scheduler) (*ExecParams, error) {
	if len(req.Fragments) == 0 {
		return nil, status.InternalErrorf("query %s has no plan fragments", stridepb.PrintID(queryID))
	}

	ep := &ExecParams{
		Fragments:  make([]FragmentExecParams, len(req.Fragments)),
		Assignment: make([]FragmentScanRangeAssignment, len(req.Fragments)),
	}
	for i := range ep.Fragments {
		ep.Fragments[i].PerExchNumSenders = map[int32]int32{}
		ep.Fragments[i].DataServerMap = map[string]*stridepb.HostPort{}
		ep.Assignment[i] = FragmentScanRangeAssignment{}
	}

	if err := computeFragmentHosts(coord, req, ep, sched); err != nil {
		return nil, err
	}

	// Assign instance ids: instance k gets (hi, lo+k+1). The lo field must
	// have room for every instance.
	for i := range ep.Fragments {
		params := &ep.Fragments[i]
		for j := range params.Hosts {
			instanceNum := ep.NumBackends + j
			if queryID.Lo > math.MaxInt64-int64(instanceNum)-1 {
				return nil, status.InternalErrorf(
					"query id %s cannot accommodate %d fragment instances without overflow",
					stridepb.PrintID(queryID), instanceNum+1)
			}
			params.InstanceIDs = append(params.InstanceIDs, &stridepb.UniqueID{
				Hi: queryID.Hi,
				Lo: queryID.Lo + int64(instanceNum) + 1,
			})
		}
		ep.NumBackends += len(params.Hosts)
	}
	if req.Fragments[0].Partition == stridepb.PartitionType_UNPARTITIONED {
		// the root fragment is executed directly by the coordinator
		ep.HasCoordinatorFragment = true
		ep.NumBackends--
	}

	// Compute destinations and sender counts per exchange node. The root
	// fragment has no destination.
	for i := 1; i < len(ep.Fragments); i++ {
		params := &ep.Fragments[i]
		if i-1 >= len(req.DestFragmentIdx) {
			return nil, status.InternalErrorf("fragment %d has no destination fragment index", i)
		}
		destIdx := int(req.DestFragmentIdx[i-1])
		if destIdx < 0 || destIdx >= len(ep.Fragments) {
			return nil, status.InternalErrorf("fragment %d sinks into out-of-range fragment %d", i, destIdx)
		}
		destParams := &ep.Fragments[destIdx]

		sink := req.Fragments[i].GetOutputSink().GetStreamSink()
		if sink == nil {
			return nil, status.InternalErrorf("fragment %d has no stream sink", i)
		}
		exchID := sink.DestNodeId
		// multiple fragments may send to the same exchange (distributed
		// merge), so sender counts accumulate
		destParams.PerExchNumSenders[exchID] += int32(len(params.Hosts))

		params.Destinations = make([]*stridepb.PlanFragmentDestination, len(destParams.Hosts))
		for j := range destParams.Hosts {
			params.Destinations[j] = &stridepb.PlanFragmentDestination{
				FragmentInstanceId: destParams.InstanceIDs[j],
				Server:             destParams.Hosts[j],
			}
		}
	}

	// Scan range assignment, per scan node.
	nodeToFragment := map[int32]int{}
	for i, fragment := range req.Fragments {
		for _, node := range fragment.GetPlan().GetNodes() {
			nodeToFragment[node.NodeId] = i
		}
	}
	for nodeID, locList := range req.PerNodeScanRanges {
		fragmentIdx, found := nodeToFragment[nodeID]
		if !found {
			return nil, status.InternalErrorf("scan ranges reference unknown plan node %d", nodeID)
		}
		err := computeScanRangeAssignment(nodeID, locList.GetLocations(), &ep.Fragments[fragmentIdx], ep.Assignment[fragmentIdx])
		if err != nil {
			return nil, err
		}
		ep.NumScanRanges += int64(len(locList.GetLocations()))
	}

	return ep, nil
}

var scanNodeTypes = []stridepb.PlanNodeType{
	stridepb.PlanNodeType_HDFS_SCAN_NODE,
	stridepb.PlanNodeType_HBASE_SCAN_NODE,
}

// computeFragmentHosts fills in Hosts for every fragment, processing
// producers before consumers (descending fragment index) so that a consumer
// can inherit its input's host list.
func computeFragmentHosts(coord *stridepb.HostPort, req *stridepb.QueryExecRequest, ep *ExecParams, sched Scheduler) error {
	for i := len(req.Fragments) - 1; i >= 0; i-- {
		fragment := req.Fragments[i]
		params := &ep.Fragments[i]

		if fragment.Partition == stridepb.PartitionType_UNPARTITIONED {
			// all single-node fragments run on the coordinator host
			params.Hosts = []*stridepb.HostPort{coord}
			continue
		}

		leftmostScanID, found := findLeftmostNode(fragment.GetPlan(), scanNodeTypes)
		if !found {
			// No leftmost scan: run on the hosts of the leftmost input
			// fragment, so a partitioned aggregation runs where its input is
			// produced.
			inputIdx, err := findLeftmostInputFragment(i, req)
			if err != nil {
				return err
			}
			params.Hosts = append([]*stridepb.HostPort(nil), ep.Fragments[inputIdx].Hosts...)
			continue
		}

		locList := req.PerNodeScanRanges[leftmostScanID]
		if len(locList.GetLocations()) == 0 {
			// no scan ranges for this query; run on the coordinator only
			params.Hosts = []*stridepb.HostPort{coord}
			continue
		}

		// Collect the unique data hosts advertised by the replicas, in
		// input order.
		var dataHosts []*stridepb.HostPort
		seen := map[string]bool{}
		for _, locations := range locList.GetLocations() {
			for _, loc := range locations.GetLocations() {
				key := loc.GetServer().Key()
				if !seen[key] {
					seen[key] = true
					dataHosts = append(dataHosts, loc.GetServer())
				}
			}
		}

		execHosts, err := sched.GetHosts(dataHosts)
		if err != nil {
			return status.FromError(err).AsError()
		}
		if len(execHosts) != len(dataHosts) {
			return status.InternalErrorf(
				"scheduler returned %d exec hosts for %d data hosts", len(execHosts), len(dataHosts))
		}
		for j := range dataHosts {
			params.DataServerMap[dataHosts[j].Key()] = execHosts[j]
		}

		hosts := append([]*stridepb.HostPort(nil), execHosts...)
		sort.Slice(hosts, func(a, b int) bool { return hosts[a].Key() < hosts[b].Key() })
		params.Hosts = hosts[:0]
		for _, h := range hosts {
			if len(params.Hosts) == 0 || params.Hosts[len(params.Hosts)-1].Key() != h.Key() {
				params.Hosts = append(params.Hosts, h)
			}
		}
	}
	return nil
}

// findLeftmostNode returns the id of the first leaf in the pre-order node
// list if its type is one of types.
func findLeftmostNode(plan *stridepb.Plan, types []stridepb.PlanNodeType) (int32, bool) {
	nodes := plan.GetNodes()
	idx := 0
	for idx < len(nodes) && nodes[idx].NumChildren != 0 {
		idx++
	}
	if idx == len(nodes) {
		return stridepb.InvalidPlanNodeID, false
	}
	for _, t := range types {
		if nodes[idx].NodeType == t {
			return nodes[idx].NodeId, true
		}
	}
	return stridepb.InvalidPlanNodeID, false
}

// findLeftmostInputFragment locates the fragment sinking into fragmentIdx's
// leftmost exchange node. A fragment without scans must read from an
// exchange; anything else is a malformed plan.
func findLeftmostInputFragment(fragmentIdx int, req *stridepb.QueryExecRequest) (int, error) {
	exchID, found := findLeftmostNode(req.Fragments[fragmentIdx].GetPlan(), []stridepb.PlanNodeType{stridepb.PlanNodeType_EXCHANGE_NODE})
	if !found {
		return 0, status.InternalErrorf("fragment %d has neither a scan nor an exchange as its leftmost node", fragmentIdx)
	}
	for i := 0; i < len(req.DestFragmentIdx); i++ {
		if int(req.DestFragmentIdx[i]) != fragmentIdx {
			continue
		}
		input := req.Fragments[i+1]
		if sink := input.GetOutputSink().GetStreamSink(); sink != nil && sink.DestNodeId == exchID {
			return i + 1, nil
		}
	}
	return 0, status.InternalErrorf("no fragment sinks into exchange node %d of fragment %d", exchID, fragmentIdx)
}
