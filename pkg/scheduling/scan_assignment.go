package scheduling

import (
	"github.com/strideql/stride/pkg/status"
	"github.com/strideql/stride/pkg/stridepb"
)

// computeScanRangeAssignment distributes the scan ranges of one plan node
// over the fragment's exec hosts. Each range goes to the replica whose data
// host has the fewest bytes assigned so far; ties keep the earlier replica in
// input order, so the assignment is deterministic. Only the chosen replica is
// translated to its exec host, so load is balanced across data hosts even
// when several of them map to the same backend.
func computeScanRangeAssignment(nodeID int32, locations []*stridepb.ScanRangeLocations, params *FragmentExecParams, assignment FragmentScanRangeAssignment) error {
	assignedBytes := map[string]int64{}

	for _, scanRangeLocations := range locations {
		replicas := scanRangeLocations.GetLocations()
		if len(replicas) == 0 {
			return status.InternalErrorf("scan range for node %d has no replica locations", nodeID)
		}

		minLocation := replicas[0]
		for _, loc := range replicas[1:] {
			if assignedBytes[loc.GetServer().Key()] < assignedBytes[minLocation.GetServer().Key()] {
				minLocation = loc
			}
		}
		assignedBytes[minLocation.GetServer().Key()] += scanRangeLocations.GetScanRange().Length()

		execHost, err := execHostFor(params, minLocation)
		if err != nil {
			return err
		}
		perNode := assignment[execHost.Key()]
		if perNode == nil {
			perNode = PerNodeScanRanges{}
			assignment[execHost.Key()] = perNode
		}
		perNode[nodeID] = append(perNode[nodeID], &stridepb.ScanRangeParams{
			ScanRange: scanRangeLocations.GetScanRange(),
			VolumeId:  minLocation.GetVolumeId(),
		})
	}
	return nil
}

// execHostFor maps a replica's data host to the exec host chosen for it. A
// fragment with a single exec host (coordinator-only or unpartitioned) reads
// everything there regardless of locality.
func execHostFor(params *FragmentExecParams, loc *stridepb.ScanRangeLocation) (*stridepb.HostPort, error) {
	if len(params.Hosts) == 1 {
		return params.Hosts[0], nil
	}
	host, found := params.DataServerMap[loc.GetServer().Key()]
	if !found {
		return nil, status.InternalErrorf("no exec host assigned for data host %s", loc.GetServer().Key())
	}
	return host, nil
}
