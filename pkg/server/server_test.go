package server

import (
	"context"
	"sync"
	"testing"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/strideql/stride/pkg/coordinator"
	"github.com/strideql/stride/pkg/fsutil"
	"github.com/strideql/stride/pkg/rpcclient"
	"github.com/strideql/stride/pkg/scheduling"
	"github.com/strideql/stride/pkg/status"
	"github.com/strideql/stride/pkg/stridepb"

	"github.com/spf13/afero"
)

var testBackend = &stridepb.HostPort{IpAddress: "10.0.0.2", Port: 22000}

type okBackendClient struct{}

func (okBackendClient) ExecPlanFragment(ctx context.Context, in *stridepb.ExecPlanFragmentRequest, opts ...grpc.CallOption) (*stridepb.ExecPlanFragmentResponse, error) {
	return &stridepb.ExecPlanFragmentResponse{Status: status.OK().ToProto()}, nil
}

func (okBackendClient) CancelPlanFragment(ctx context.Context, in *stridepb.CancelPlanFragmentRequest, opts ...grpc.CallOption) (*stridepb.CancelPlanFragmentResponse, error) {
	return &stridepb.CancelPlanFragmentResponse{Status: status.OK().ToProto()}, nil
}

type okClientCache struct{ mu sync.Mutex }

func (c *okClientCache) GetClient(addr string) (rpcclient.BackendClient, error) {
	return okBackendClient{}, nil
}

func (c *okClientCache) ReopenClient(client rpcclient.BackendClient) (rpcclient.BackendClient, error) {
	return client, nil
}

func (c *okClientCache) ReleaseClient(rpcclient.BackendClient) {}

func newTestServer(t *testing.T) (*CoordinatorServer, *Registry) {
	t.Helper()
	sched, err := scheduling.NewSimpleScheduler([]*stridepb.HostPort{testBackend})
	require.NoError(t, err)
	factory := coordinator.NewFactory(
		log.NewNopLogger(),
		&okClientCache{},
		fsutil.NewAferoClient(afero.NewMemMapFs()),
		sched,
		&stridepb.HostPort{Hostname: "coord", Port: 21000},
		nil,
		prometheus.NewRegistry(),
	)
	registry := NewRegistry()
	return NewCoordinatorServer(log.NewNopLogger(), registry, factory), registry
}

func scanRequest() *stridepb.QueryExecRequest {
	return &stridepb.QueryExecRequest{
		Fragments: []*stridepb.PlanFragment{{
			Plan: &stridepb.Plan{Nodes: []*stridepb.PlanNode{
				{NodeId: 0, NodeType: stridepb.PlanNodeType_HDFS_SCAN_NODE, NumChildren: 0},
			}},
			Partition: stridepb.PartitionType_HASH_PARTITIONED,
		}},
		PerNodeScanRanges: map[int32]*stridepb.ScanRangeLocationsList{
			0: {Locations: []*stridepb.ScanRangeLocations{{
				ScanRange: &stridepb.ScanRange{
					HdfsFileSplit: &stridepb.HdfsFileSplit{Path: "/data/f", Length: 100},
				},
				Locations: []*stridepb.ScanRangeLocation{{Server: testBackend}},
			}}},
		},
	}
}

func TestStartQueryRegistersAndReportsRoute(t *testing.T) {
	srv, registry := newTestServer(t)
	queryID := &stridepb.UniqueID{Hi: 1, Lo: 1}

	c, err := srv.StartQuery(context.Background(), queryID, scanRequest(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, registry.Len())

	resp, err := srv.ReportExecStatus(context.Background(), &stridepb.ReportExecStatusRequest{
		QueryId:    queryID,
		BackendNum: 0,
		Status:     status.OK().ToProto(),
		Done:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, stridepb.StatusCode_OK, resp.Status.Code)

	require.NoError(t, c.Wait(context.Background()))

	srv.EndQuery(queryID)
	assert.Equal(t, 0, registry.Len())
}

func TestReportForUnknownQuery(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := srv.ReportExecStatus(context.Background(), &stridepb.ReportExecStatusRequest{
		QueryId:    &stridepb.UniqueID{Hi: 9, Lo: 9},
		BackendNum: 0,
		Status:     status.OK().ToProto(),
	})
	require.NoError(t, err)
	assert.Equal(t, stridepb.StatusCode_INTERNAL_ERROR, resp.Status.Code)
}

func TestStartQueryFailureUnregisters(t *testing.T) {
	srv, registry := newTestServer(t)

	// a request with no fragments cannot be scheduled
	_, err := srv.StartQuery(context.Background(), &stridepb.UniqueID{Hi: 2, Lo: 1}, &stridepb.QueryExecRequest{}, nil)
	require.Error(t, err)
	assert.Equal(t, 0, registry.Len())
}
