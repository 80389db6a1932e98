package coordinator

import (
	"context"

	"github.com/go-kit/log/level"

	"github.com/strideql/stride/pkg/rpcclient"
	"github.com/strideql/stride/pkg/status"
	"github.com/strideql/stride/pkg/stridepb"
	"github.com/strideql/stride/pkg/util/concurrency"
)

// dispatchFragments starts every remote fragment instance, fragment by
// fragment. All instances of one fragment are started before the next
// fragment begins, so data sinks always have running receivers.
func (c *Coordinator) dispatchFragments(ctx context.Context) error {
	byFragment := map[int][]*backendExecState{}
	for _, b := range c.backendStates {
		byFragment[b.fragmentIdx] = append(byFragment[b.fragmentIdx], b)
	}

	firstRemoteFragment := 0
	if c.execParams.HasCoordinatorFragment {
		firstRemoteFragment = 1
	}
	for i := firstRemoteFragment; i < len(c.execParams.Fragments); i++ {
		states := byFragment[i]
		if len(states) == 0 {
			continue
		}
		err := concurrency.ForEach(ctx, states, c.ConnectParallelism, func(ctx context.Context, b *backendExecState) error {
			c.execRemoteFragment(ctx, b)
			return nil
		})
		if err != nil {
			return err
		}
		// every instance recorded its own status; fail on the first error in
		// backend order
		for _, b := range states {
			b.lock.Lock()
			s := b.execStatus
			b.lock.Unlock()
			if !s.IsOK() {
				return status.New(s.Code(), "failed to start fragment instance "+stridepb.PrintID(b.fragmentInstanceID)+" on "+b.host.Addr()+": "+s.Error()).AsError()
			}
		}
	}
	return nil
}

// execRemoteFragment issues the ExecPlanFragment RPC for one instance and
// records the outcome in its state. A transport-level failure gets a single
// reopen-and-retry, which covers stale pooled connections.
func (c *Coordinator) execRemoteFragment(ctx context.Context, b *backendExecState) {
	b.lock.Lock()
	defer b.lock.Unlock()

	level.Debug(c.logger).Log("msg", "starting fragment instance", "instance_id", stridepb.PrintID(b.fragmentInstanceID), "backend", b.host.Addr())

	client, err := c.clients.GetClient(b.host.Addr())
	if err != nil {
		b.execStatus = status.FromError(err)
		return
	}
	// client may be swapped by ReopenClient below
	defer func() { c.clients.ReleaseClient(client) }()

	req := b.execRequest(c, &c.execParams.Fragments[b.fragmentIdx])
	resp, err := client.ExecPlanFragment(ctx, req)
	if err != nil && rpcclient.IsTransportError(err) {
		reopened, rerr := c.clients.ReopenClient(client)
		if rerr != nil {
			b.execStatus = status.FromError(rerr)
			return
		}
		client = reopened
		resp, err = client.ExecPlanFragment(ctx, req)
	}
	if err != nil {
		b.execStatus = status.FromError(err)
		return
	}

	b.execStatus = status.FromProto(resp.GetStatus())
	if b.execStatus.IsOK() {
		b.initiated = true
		b.stopwatch.Start()
	}
}
