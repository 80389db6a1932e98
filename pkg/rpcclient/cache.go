// Package rpcclient manages pooled gRPC clients for backend fragment
// execution RPCs. The coordinator checks a client out per RPC and returns it
// afterwards; a client that hit a transport error can be reopened, which
// replaces its connection in place.
package rpcclient

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/strideql/stride/pkg/stridepb"
	"github.com/strideql/stride/pkg/util/grpcclient"
)

// BackendClient issues fragment RPCs to one backend. It matches the
// generated stridepb.BackendClient signature so pooled clients can embed the
// generated stub directly.
type BackendClient = stridepb.BackendClient

// ClientCache hands out BackendClients by address.
type ClientCache interface {
	// GetClient returns a client for addr, reusing an idle one if available.
	GetClient(addr string) (BackendClient, error)
	// ReopenClient replaces the client's underlying connection. The caller
	// must still own the client. Used to retry once after a stale connection
	// fails a fragment start.
	ReopenClient(client BackendClient) (BackendClient, error)
	// ReleaseClient returns the client to the cache.
	ReleaseClient(client BackendClient)
}

// IsTransportError reports whether err looks like a connection-level failure
// worth one reopen-and-retry, as opposed to an application error from the
// backend.
func IsTransportError(err error) bool {
	s, ok := grpcstatus.FromError(errors.Cause(err))
	if !ok {
		return false
	}
	switch s.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return true
	}
	return false
}

type pooledClient struct {
	addr   string
	conn   *grpc.ClientConn
	broken bool
	stridepb.BackendClient
}

// Cache is the production ClientCache backed by gRPC connections, with a
// bounded free list per backend address.
type Cache struct {
	cfg  grpcclient.Config
	dial func(addr string) (*grpc.ClientConn, error)

	mu   sync.Mutex
	free map[string][]*pooledClient

	clientsCreated prometheus.Counter
	clientsInUse   prometheus.Gauge
}

func NewCache(cfg grpcclient.Config, reg prometheus.Registerer) *Cache {
	c := &Cache{
		cfg:  cfg,
		free: map[string][]*pooledClient{},
		clientsCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "stride_backend_clients_created_total",
			Help: "Total backend client connections opened.",
		}),
		clientsInUse: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "stride_backend_clients_in_use",
			Help: "Backend clients currently checked out.",
		}),
	}
	c.dial = func(addr string) (*grpc.ClientConn, error) {
		return grpc.NewClient(addr, cfg.DialOption()...)
	}
	return c
}

func (c *Cache) newClient(addr string) (*pooledClient, error) {
	conn, err := c.dial(addr)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to backend %s", addr)
	}
	c.clientsCreated.Inc()
	return &pooledClient{addr: addr, conn: conn, BackendClient: stridepb.NewBackendClient(conn)}, nil
}

func (c *Cache) GetClient(addr string) (BackendClient, error) {
	c.mu.Lock()
	if list := c.free[addr]; len(list) > 0 {
		client := list[len(list)-1]
		c.free[addr] = list[:len(list)-1]
		c.mu.Unlock()
		c.clientsInUse.Inc()
		return client, nil
	}
	c.mu.Unlock()

	client, err := c.newClient(addr)
	if err != nil {
		return nil, err
	}
	c.clientsInUse.Inc()
	return client, nil
}

func (c *Cache) ReopenClient(client BackendClient) (BackendClient, error) {
	pc, ok := client.(*pooledClient)
	if !ok {
		return nil, errors.New("client was not created by this cache")
	}
	_ = pc.conn.Close()
	fresh, err := c.newClient(pc.addr)
	if err != nil {
		// caller still releases the client; the broken flag keeps it out of
		// the free list
		pc.broken = true
		return nil, err
	}
	*pc = *fresh
	return pc, nil
}

func (c *Cache) ReleaseClient(client BackendClient) {
	pc, ok := client.(*pooledClient)
	if !ok {
		return
	}
	c.clientsInUse.Dec()
	if pc.broken {
		return
	}

	c.mu.Lock()
	if len(c.free[pc.addr]) < c.maxIdle() {
		c.free[pc.addr] = append(c.free[pc.addr], pc)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	_ = pc.conn.Close()
}

func (c *Cache) maxIdle() int {
	if c.cfg.MaxIdleClients <= 0 {
		return 4
	}
	return c.cfg.MaxIdleClients
}
