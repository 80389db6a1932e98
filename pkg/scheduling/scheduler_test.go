package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strideql/stride/pkg/stridepb"
)

func TestSimpleSchedulerRequiresBackends(t *testing.T) {
	_, err := NewSimpleScheduler(nil)
	require.Error(t, err)
}

func TestSimpleSchedulerColocation(t *testing.T) {
	a, b := backend("10.0.0.2"), backend("10.0.0.3")
	sched, err := NewSimpleScheduler([]*stridepb.HostPort{a, b})
	require.NoError(t, err)

	// data host colocated with backend b maps to b regardless of position
	hosts, err := sched.GetHosts([]*stridepb.HostPort{
		{IpAddress: "10.0.0.3", Port: 50010},
		{IpAddress: "10.0.0.2", Port: 50010},
	})
	require.NoError(t, err)
	require.Len(t, hosts, 2)
	assert.Equal(t, b.Key(), hosts[0].Key())
	assert.Equal(t, a.Key(), hosts[1].Key())
}

func TestSimpleSchedulerColocationByHostname(t *testing.T) {
	named := &stridepb.HostPort{Hostname: "worker-1", Port: 22000}
	sched, err := NewSimpleScheduler([]*stridepb.HostPort{named, backend("10.0.0.2")})
	require.NoError(t, err)

	hosts, err := sched.GetHosts([]*stridepb.HostPort{{Hostname: "worker-1", Port: 50010}})
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.Equal(t, named.Key(), hosts[0].Key())
}

func TestSimpleSchedulerRoundRobinForRemoteData(t *testing.T) {
	a, b := backend("10.0.0.2"), backend("10.0.0.3")
	sched, err := NewSimpleScheduler([]*stridepb.HostPort{a, b})
	require.NoError(t, err)

	// data hosts with no colocated backend spread across the membership
	hosts, err := sched.GetHosts([]*stridepb.HostPort{
		{IpAddress: "192.168.1.1", Port: 50010},
		{IpAddress: "192.168.1.2", Port: 50010},
		{IpAddress: "192.168.1.3", Port: 50010},
		{IpAddress: "192.168.1.4", Port: 50010},
	})
	require.NoError(t, err)
	require.Len(t, hosts, 4)
	assert.Equal(t, a.Key(), hosts[0].Key())
	assert.Equal(t, b.Key(), hosts[1].Key())
	assert.Equal(t, a.Key(), hosts[2].Key())
	assert.Equal(t, b.Key(), hosts[3].Key())
}
