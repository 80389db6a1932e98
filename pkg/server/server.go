// Package server exposes the coordinator side of the backend protocol: a
// registry of running queries and the gRPC service backends report status to.
package server

import (
	"context"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"

	"github.com/strideql/stride/pkg/coordinator"
	"github.com/strideql/stride/pkg/status"
	"github.com/strideql/stride/pkg/stridepb"
)

// Registry tracks the coordinators of in-flight queries by query id.
type Registry struct {
	mu      sync.RWMutex
	queries map[string]*coordinator.Coordinator
}

func NewRegistry() *Registry {
	return &Registry{queries: map[string]*coordinator.Coordinator{}}
}

func (r *Registry) Register(queryID *stridepb.UniqueID, c *coordinator.Coordinator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries[stridepb.PrintID(queryID)] = c
}

func (r *Registry) Unregister(queryID *stridepb.UniqueID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.queries, stridepb.PrintID(queryID))
}

func (r *Registry) Get(queryID *stridepb.UniqueID) (*coordinator.Coordinator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, found := r.queries[stridepb.PrintID(queryID)]
	return c, found
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.queries)
}

// CoordinatorServer implements the Coordinator gRPC service, routing backend
// status reports to the query they belong to, and starts queries on behalf of
// the frontend.
type CoordinatorServer struct {
	stridepb.UnimplementedCoordinatorServer

	logger   log.Logger
	registry *Registry
	factory  *coordinator.Factory
}

func NewCoordinatorServer(logger log.Logger, registry *Registry, factory *coordinator.Factory) *CoordinatorServer {
	return &CoordinatorServer{logger: logger, registry: registry, factory: factory}
}

// StartQuery creates the coordinator for a query, registers it so backend
// reports can reach it, and starts all fragment instances. The caller owns
// the returned coordinator's lifecycle and must call EndQuery when done with
// it.
func (s *CoordinatorServer) StartQuery(ctx context.Context, queryID *stridepb.UniqueID, req *stridepb.QueryExecRequest, opts *stridepb.QueryOptions) (*coordinator.Coordinator, error) {
	c := s.factory.NewCoordinator(queryID, req, opts)
	s.registry.Register(queryID, c)
	if err := c.Exec(ctx); err != nil {
		s.registry.Unregister(queryID)
		return nil, err
	}
	return c, nil
}

// EndQuery removes a finished query from the registry. Late status reports
// for it will be answered with an error.
func (s *CoordinatorServer) EndQuery(queryID *stridepb.UniqueID) {
	s.registry.Unregister(queryID)
}

// RegisterGRPC registers the service on srv.
func (s *CoordinatorServer) RegisterGRPC(srv *grpc.Server) {
	stridepb.RegisterCoordinatorServer(srv, s)
}

// ReportExecStatus applies one backend status report. Reports for unknown
// queries are answered with an error status so the backend stops executing an
// instance the coordinator has forgotten about.
func (s *CoordinatorServer) ReportExecStatus(ctx context.Context, req *stridepb.ReportExecStatusRequest) (*stridepb.ReportExecStatusResponse, error) {
	c, found := s.registry.Get(req.QueryId)
	if !found {
		level.Warn(s.logger).Log("msg", "status report for unknown query", "query_id", stridepb.PrintID(req.QueryId))
		st := status.InternalErrorf("unknown query %s", stridepb.PrintID(req.QueryId))
		return &stridepb.ReportExecStatusResponse{Status: st.ToProto()}, nil
	}
	st := c.UpdateFragmentExecStatus(req)
	return &stridepb.ReportExecStatusResponse{Status: st.ToProto()}, nil
}
