package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strideql/stride/pkg/stridepb"
)

func assignedBytesPerHost(t *testing.T, assignment FragmentScanRangeAssignment, nodeID int32) map[string]int64 {
	t.Helper()
	out := map[string]int64{}
	for host, perNode := range assignment {
		for _, params := range perNode[nodeID] {
			out[host] += params.GetScanRange().Length()
		}
	}
	return out
}

func TestScanRangeAssignmentBalancesBytes(t *testing.T) {
	a, b := backend("10.0.0.2"), backend("10.0.0.3")
	params := &FragmentExecParams{
		Hosts: []*stridepb.HostPort{a, b},
		DataServerMap: map[string]*stridepb.HostPort{
			a.Key(): a,
			b.Key(): b,
		},
	}
	assignment := FragmentScanRangeAssignment{}

	// every range is replicated on both hosts, so the balancer is free to
	// alternate
	locations := []*stridepb.ScanRangeLocations{
		scanRangeOn(100, a, b),
		scanRangeOn(100, a, b),
		scanRangeOn(100, a, b),
		scanRangeOn(100, a, b),
	}
	require.NoError(t, computeScanRangeAssignment(0, locations, params, assignment))

	bytes := assignedBytesPerHost(t, assignment, 0)
	assert.Equal(t, int64(200), bytes[a.Key()])
	assert.Equal(t, int64(200), bytes[b.Key()])
}

func TestScanRangeAssignmentTieKeepsFirstReplica(t *testing.T) {
	a, b := backend("10.0.0.2"), backend("10.0.0.3")
	params := &FragmentExecParams{
		Hosts: []*stridepb.HostPort{a, b},
		DataServerMap: map[string]*stridepb.HostPort{
			a.Key(): a,
			b.Key(): b,
		},
	}
	assignment := FragmentScanRangeAssignment{}

	// single range, equal load: the first replica in input order wins
	locations := []*stridepb.ScanRangeLocations{scanRangeOn(500, b, a)}
	require.NoError(t, computeScanRangeAssignment(0, locations, params, assignment))

	require.Contains(t, assignment, b.Key())
	assert.NotContains(t, assignment, a.Key())
	// volume id travels with the chosen replica
	assert.Equal(t, int32(0), assignment[b.Key()][0][0].VolumeId)
}

func TestScanRangeAssignmentBalancesByDataHost(t *testing.T) {
	a, b, c := backend("10.0.0.2"), backend("10.0.0.3"), backend("10.0.0.4")
	exec1, exec2 := backend("10.0.1.1"), backend("10.0.1.2")
	params := &FragmentExecParams{
		Hosts: []*stridepb.HostPort{exec1, exec2},
		DataServerMap: map[string]*stridepb.HostPort{
			a.Key(): exec1,
			b.Key(): exec1,
			c.Key(): exec2,
		},
	}
	assignment := FragmentScanRangeAssignment{}

	// load lands on data host b first; the next range, replicated on a and c,
	// must go to a, which is empty, even though a shares its exec host with b
	locations := []*stridepb.ScanRangeLocations{
		scanRangeOn(100, b),
		scanRangeOn(100, a, c),
	}
	require.NoError(t, computeScanRangeAssignment(0, locations, params, assignment))

	bytes := assignedBytesPerHost(t, assignment, 0)
	assert.Equal(t, int64(200), bytes[exec1.Key()])
	assert.NotContains(t, assignment, exec2.Key())
}

func TestScanRangeAssignmentIsDeterministic(t *testing.T) {
	a, b := backend("10.0.0.2"), backend("10.0.0.3")
	locations := []*stridepb.ScanRangeLocations{
		scanRangeOn(300, a, b),
		scanRangeOn(200, b, a),
		scanRangeOn(100, a, b),
		scanRangeOn(400, b, a),
	}

	run := func() map[string]int64 {
		params := &FragmentExecParams{
			Hosts:         []*stridepb.HostPort{a, b},
			DataServerMap: map[string]*stridepb.HostPort{a.Key(): a, b.Key(): b},
		}
		assignment := FragmentScanRangeAssignment{}
		require.NoError(t, computeScanRangeAssignment(0, locations, params, assignment))
		return assignedBytesPerHost(t, assignment, 0)
	}

	first := run()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, run())
	}
}

func TestScanRangeAssignmentSingleHostFragment(t *testing.T) {
	// coordinator-only fragment: locality is ignored, everything lands on
	// the lone exec host
	remote := backend("10.0.0.9")
	params := &FragmentExecParams{Hosts: []*stridepb.HostPort{coordHost}}
	assignment := FragmentScanRangeAssignment{}

	locations := []*stridepb.ScanRangeLocations{scanRangeOn(100, remote)}
	require.NoError(t, computeScanRangeAssignment(3, locations, params, assignment))

	require.Contains(t, assignment, coordHost.Key())
	assert.Len(t, assignment[coordHost.Key()][3], 1)
}

func TestScanRangeAssignmentUnknownDataHostFails(t *testing.T) {
	a, unknown := backend("10.0.0.2"), backend("10.0.0.250")
	params := &FragmentExecParams{
		Hosts:         []*stridepb.HostPort{a, backend("10.0.0.3")},
		DataServerMap: map[string]*stridepb.HostPort{a.Key(): a},
	}
	err := computeScanRangeAssignment(0, []*stridepb.ScanRangeLocations{scanRangeOn(100, unknown)}, params, FragmentScanRangeAssignment{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no exec host")
}
