package rpcclient

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	grpcstatus "google.golang.org/grpc/status"

	"github.com/strideql/stride/pkg/util/grpcclient"
)

func lazyDial(addr string) (*grpc.ClientConn, error) {
	// a lazy connection; nothing is actually established in these tests
	return grpc.NewClient("passthrough:///"+addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func TestCacheReusesReleasedClients(t *testing.T) {
	cache := NewCache(grpcclient.Config{MaxIdleClients: 2}, prometheus.NewRegistry())
	dials := 0
	cache.dial = func(addr string) (*grpc.ClientConn, error) {
		dials++
		return lazyDial(addr)
	}

	c1, err := cache.GetClient("10.0.0.2:22000")
	require.NoError(t, err)
	assert.Equal(t, 1, dials)

	cache.ReleaseClient(c1)
	c2, err := cache.GetClient("10.0.0.2:22000")
	require.NoError(t, err)
	assert.Equal(t, 1, dials, "released client should be reused")
	assert.Same(t, c1, c2)

	// a different address dials fresh
	_, err = cache.GetClient("10.0.0.3:22000")
	require.NoError(t, err)
	assert.Equal(t, 2, dials)
}

func TestCacheReopenReplacesConnection(t *testing.T) {
	cache := NewCache(grpcclient.Config{}, prometheus.NewRegistry())
	dials := 0
	cache.dial = func(addr string) (*grpc.ClientConn, error) {
		dials++
		return lazyDial(addr)
	}

	client, err := cache.GetClient("10.0.0.2:22000")
	require.NoError(t, err)
	require.Equal(t, 1, dials)

	reopened, err := cache.ReopenClient(client)
	require.NoError(t, err)
	assert.Equal(t, 2, dials)
	assert.Same(t, client, reopened)
}

func TestCacheReopenFailureDiscardsClient(t *testing.T) {
	cache := NewCache(grpcclient.Config{}, prometheus.NewRegistry())
	failDial := false
	cache.dial = func(addr string) (*grpc.ClientConn, error) {
		if failDial {
			return nil, errors.New("dns failure")
		}
		return lazyDial(addr)
	}

	client, err := cache.GetClient("10.0.0.2:22000")
	require.NoError(t, err)

	failDial = true
	_, err = cache.ReopenClient(client)
	require.Error(t, err)

	// the broken client must not come back from the free list
	cache.ReleaseClient(client)
	failDial = false
	fresh, err := cache.GetClient("10.0.0.2:22000")
	require.NoError(t, err)
	assert.NotSame(t, client, fresh)
}

func TestCacheFreeListBounded(t *testing.T) {
	cache := NewCache(grpcclient.Config{MaxIdleClients: 1}, prometheus.NewRegistry())
	cache.dial = func(addr string) (*grpc.ClientConn, error) {
		return lazyDial(addr)
	}

	c1, err := cache.GetClient("10.0.0.2:22000")
	require.NoError(t, err)
	c2, err := cache.GetClient("10.0.0.2:22000")
	require.NoError(t, err)

	cache.ReleaseClient(c1)
	cache.ReleaseClient(c2)
	assert.Len(t, cache.free["10.0.0.2:22000"], 1)
}

func TestIsTransportError(t *testing.T) {
	assert.True(t, IsTransportError(grpcstatus.Error(codes.Unavailable, "conn refused")))
	assert.True(t, IsTransportError(grpcstatus.Error(codes.DeadlineExceeded, "timeout")))
	assert.False(t, IsTransportError(grpcstatus.Error(codes.InvalidArgument, "bad request")))
	assert.False(t, IsTransportError(errors.New("plain error")))
	assert.False(t, IsTransportError(nil))
}
