package coordinator

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strideql/stride/pkg/fsutil"
	"github.com/strideql/stride/pkg/status"
	"github.com/strideql/stride/pkg/stridepb"
)

func insertRequest(overwrite bool, ranges ...*stridepb.ScanRangeLocations) *stridepb.QueryExecRequest {
	req := scanOnlyRequest(ranges...)
	req.Fragments[0].OutputSink = &stridepb.OutputSink{
		TableSink: &stridepb.TableSink{TargetTable: "db.tbl"},
	}
	req.FinalizeParams = &stridepb.FinalizeParams{
		HdfsBaseDir: "/warehouse/db.tbl",
		TargetTable: "db.tbl",
		IsOverwrite: overwrite,
	}
	return req
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func fileExists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	return exists
}

func TestInsertFinalizationMovesStagedFiles(t *testing.T) {
	env := newTestEnv(t, nil)
	c := env.factory.NewCoordinator(&stridepb.UniqueID{Hi: 3, Lo: 0}, insertRequest(false, rangeOn(100, backendA), rangeOn(100, backendB)), nil)
	require.NoError(t, c.Exec(context.Background()))

	staging := "/warehouse/db.tbl/.staging_3_0"
	writeFile(t, env.fs, staging+"/part-0", "rows-a")
	writeFile(t, env.fs, staging+"/part-1", "rows-b")

	reports := []*stridepb.ReportExecStatusRequest{
		{
			BackendNum:         0,
			FragmentInstanceId: c.backendStates[0].fragmentInstanceID,
			Status:             status.OK().ToProto(),
			Done:               true,
			InsertExecStatus: &stridepb.InsertExecStatus{
				NumAppendedRows: map[string]int64{"p=1": 5},
				FilesToMove: map[string]string{
					staging + "/part-0": "/warehouse/db.tbl/p=1/part-0",
					staging:             "",
				},
			},
		},
		{
			BackendNum:         1,
			FragmentInstanceId: c.backendStates[1].fragmentInstanceID,
			Status:             status.OK().ToProto(),
			Done:               true,
			InsertExecStatus: &stridepb.InsertExecStatus{
				NumAppendedRows: map[string]int64{"p=1": 3, "p=2": 7},
				FilesToMove: map[string]string{
					staging + "/part-1": "/warehouse/db.tbl/p=2/part-1",
				},
			},
		},
	}
	for _, r := range reports {
		require.True(t, c.UpdateFragmentExecStatus(r).IsOK())
	}

	require.NoError(t, c.Wait(context.Background()))

	assert.True(t, fileExists(t, env.fs, "/warehouse/db.tbl/p=1/part-0"))
	assert.True(t, fileExists(t, env.fs, "/warehouse/db.tbl/p=2/part-1"))
	assert.False(t, fileExists(t, env.fs, staging))

	// row counts merged across backends
	rows := c.NumAppendedRows()
	assert.Equal(t, int64(8), rows["p=1"])
	assert.Equal(t, int64(7), rows["p=2"])

	update := c.PrepareCatalogUpdate()
	assert.Equal(t, "db.tbl", update.TargetTable)
	assert.ElementsMatch(t, []string{"p=1", "p=2"}, update.CreatedPartitions)
}

func TestInsertOverwriteClearsPartitionDirs(t *testing.T) {
	env := newTestEnv(t, nil)
	c := env.factory.NewCoordinator(&stridepb.UniqueID{Hi: 4, Lo: 0}, insertRequest(true, rangeOn(100, backendA)), nil)
	require.NoError(t, c.Exec(context.Background()))

	// pre-existing data that the overwrite must remove
	writeFile(t, env.fs, "/warehouse/db.tbl/p=1/old-file", "stale")
	staging := "/warehouse/db.tbl/.staging_4_0"
	writeFile(t, env.fs, staging+"/part-0", "fresh")

	report := &stridepb.ReportExecStatusRequest{
		BackendNum:         0,
		FragmentInstanceId: c.backendStates[0].fragmentInstanceID,
		Status:             status.OK().ToProto(),
		Done:               true,
		InsertExecStatus: &stridepb.InsertExecStatus{
			NumAppendedRows: map[string]int64{"p=1": 2},
			FilesToMove: map[string]string{
				staging + "/part-0": "/warehouse/db.tbl/p=1/part-0",
				staging:             "",
			},
		},
	}
	require.True(t, c.UpdateFragmentExecStatus(report).IsOK())
	require.NoError(t, c.Wait(context.Background()))

	assert.False(t, fileExists(t, env.fs, "/warehouse/db.tbl/p=1/old-file"))
	assert.True(t, fileExists(t, env.fs, "/warehouse/db.tbl/p=1/part-0"))
	assert.False(t, fileExists(t, env.fs, staging))
}

func TestInsertOverwriteUnpartitionedKeepsSubdirectories(t *testing.T) {
	env := newTestEnv(t, nil)
	c := env.factory.NewCoordinator(&stridepb.UniqueID{Hi: 5, Lo: 0}, insertRequest(true, rangeOn(100, backendA)), nil)
	require.NoError(t, c.Exec(context.Background()))

	writeFile(t, env.fs, "/warehouse/db.tbl/old-data", "stale")
	staging := "/warehouse/db.tbl/.staging_5_0"
	writeFile(t, env.fs, staging+"/part-0", "fresh")

	report := &stridepb.ReportExecStatusRequest{
		BackendNum:         0,
		FragmentInstanceId: c.backendStates[0].fragmentInstanceID,
		Status:             status.OK().ToProto(),
		Done:               true,
		InsertExecStatus: &stridepb.InsertExecStatus{
			// empty partition key: the table itself is unpartitioned
			NumAppendedRows: map[string]int64{"": 2},
			FilesToMove: map[string]string{
				staging + "/part-0": "/warehouse/db.tbl/part-0",
				staging:             "",
			},
		},
	}
	require.True(t, c.UpdateFragmentExecStatus(report).IsOK())
	require.NoError(t, c.Wait(context.Background()))

	// plain files in the table dir were overwritten; the staging
	// subdirectory survived the cleanup and was removed at the end
	assert.False(t, fileExists(t, env.fs, "/warehouse/db.tbl/old-data"))
	assert.True(t, fileExists(t, env.fs, "/warehouse/db.tbl/part-0"))
	assert.False(t, fileExists(t, env.fs, staging+"/part-0"))
}

// insertExecutor is a root fragment executor that produced insert metadata
// through its own table sink.
type insertExecutor struct {
	*stubExecutor
	rows  map[string]int64
	files map[string]string
}

func (e *insertExecutor) NumAppendedRows() map[string]int64 { return e.rows }
func (e *insertExecutor) FilesToMove() map[string]string    { return e.files }

func TestInsertMetadataComesFromRootExecutor(t *testing.T) {
	staging := "/warehouse/db.tbl/.staging_7_0"
	factoryFn := func(fragment *stridepb.PlanFragment, params *stridepb.FragmentInstanceCtx) (RootExecutor, error) {
		return &insertExecutor{
			stubExecutor: newStubExecutor(params.FragmentInstanceId, 0),
			rows:         map[string]int64{"p=1": 4},
			files: map[string]string{
				staging + "/part-0": "/warehouse/db.tbl/p=1/part-0",
				staging:             "",
			},
		}, nil
	}
	env := newTestEnv(t, factoryFn)
	req := rootedRequest(rangeOn(100, backendA))
	req.FinalizeParams = &stridepb.FinalizeParams{
		HdfsBaseDir: "/warehouse/db.tbl",
		TargetTable: "db.tbl",
	}
	c := env.factory.NewCoordinator(&stridepb.UniqueID{Hi: 7, Lo: 0}, req, nil)
	require.NoError(t, c.Exec(context.Background()))

	writeFile(t, env.fs, staging+"/part-0", "rows")

	// the backend's report carries insert metadata too; with a root sink in
	// process it must be ignored
	report := doneReport(0, c.backendStates[0].fragmentInstanceID)
	report.InsertExecStatus = &stridepb.InsertExecStatus{
		NumAppendedRows: map[string]int64{"p=1": 100},
		FilesToMove:     map[string]string{staging + "/bogus": "/warehouse/db.tbl/p=1/bogus"},
	}
	require.True(t, c.UpdateFragmentExecStatus(report).IsOK())

	require.NoError(t, c.Wait(context.Background()))

	rows := c.NumAppendedRows()
	assert.Equal(t, int64(4), rows["p=1"])
	assert.True(t, fileExists(t, env.fs, "/warehouse/db.tbl/p=1/part-0"))
	assert.False(t, fileExists(t, env.fs, "/warehouse/db.tbl/p=1/bogus"))
}

// failingDeleteFs fails deletes of one path, standing in for an HDFS
// permission error during staging cleanup.
type failingDeleteFs struct {
	fsutil.FsClient
	failPath string
}

func (f *failingDeleteFs) Delete(path string, recursive bool) error {
	if path == f.failPath {
		return errors.New("permission denied")
	}
	return f.FsClient.Delete(path, recursive)
}

func TestStagingDirRemovalFailureFailsQuery(t *testing.T) {
	env := newTestEnv(t, nil)
	c := env.factory.NewCoordinator(&stridepb.UniqueID{Hi: 8, Lo: 0}, insertRequest(false, rangeOn(100, backendA)), nil)
	require.NoError(t, c.Exec(context.Background()))

	staging := "/warehouse/db.tbl/.staging_8_0"
	writeFile(t, env.fs, staging+"/part-0", "rows")
	env.factory.fs = &failingDeleteFs{FsClient: env.factory.fs, failPath: staging}

	report := doneReport(0, c.backendStates[0].fragmentInstanceID)
	report.InsertExecStatus = &stridepb.InsertExecStatus{
		NumAppendedRows: map[string]int64{"p=1": 1},
		FilesToMove: map[string]string{
			staging + "/part-0": "/warehouse/db.tbl/p=1/part-0",
			staging:             "",
		},
	}
	require.True(t, c.UpdateFragmentExecStatus(report).IsOK())

	err := c.Wait(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	// the data file had already landed before the cleanup failed
	assert.True(t, fileExists(t, env.fs, "/warehouse/db.tbl/p=1/part-0"))
}

func TestFinalizationSkippedOnFailedQuery(t *testing.T) {
	env := newTestEnv(t, nil)
	c := env.factory.NewCoordinator(&stridepb.UniqueID{Hi: 6, Lo: 0}, insertRequest(true, rangeOn(100, backendA)), nil)
	require.NoError(t, c.Exec(context.Background()))

	writeFile(t, env.fs, "/warehouse/db.tbl/p=1/old-file", "must survive")

	report := &stridepb.ReportExecStatusRequest{
		BackendNum:         0,
		FragmentInstanceId: c.backendStates[0].fragmentInstanceID,
		Status:             status.InternalErrorf("disk error").ToProto(),
		Done:               true,
		InsertExecStatus: &stridepb.InsertExecStatus{
			NumAppendedRows: map[string]int64{"p=1": 2},
		},
	}
	require.True(t, c.UpdateFragmentExecStatus(report).IsOK())

	err := c.Wait(context.Background())
	require.Error(t, err)
	// failed insert leaves existing data alone
	assert.True(t, fileExists(t, env.fs, "/warehouse/db.tbl/p=1/old-file"))
}
