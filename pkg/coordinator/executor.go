package coordinator

import (
	"context"

	"github.com/strideql/stride/pkg/profile"
	"github.com/strideql/stride/pkg/stridepb"
)

// RowBatch is a batch of result rows produced by the root fragment.
type RowBatch struct {
	NumRows int
}

// RootExecutor runs the root fragment instance in-process at the coordinator
// for queries whose root fragment is unpartitioned.
type RootExecutor interface {
	// Prepare sets the instance up; after Prepare the executor's Profile is
	// valid.
	Prepare(ctx context.Context, fragment *stridepb.PlanFragment, params *stridepb.FragmentInstanceCtx) error
	// Open starts execution. It blocks until the instance is ready to
	// produce rows.
	Open(ctx context.Context) error
	// GetNext returns the next batch. A nil batch signals end of stream; the
	// final batch may accompany eos.
	GetNext(ctx context.Context) (*RowBatch, bool, error)
	// Cancel stops execution. Idempotent.
	Cancel()

	Profile() *profile.Profile
	FragmentInstanceID() *stridepb.UniqueID
	ErrorLog() []string

	// Insert metadata, valid once GetNext has returned eos.
	NumAppendedRows() map[string]int64
	FilesToMove() map[string]string
}

// ExecutorFactory builds the root executor for a query. Deployments without
// in-process execution leave it nil and run every fragment remotely.
type ExecutorFactory func(fragment *stridepb.PlanFragment, params *stridepb.FragmentInstanceCtx) (RootExecutor, error)
