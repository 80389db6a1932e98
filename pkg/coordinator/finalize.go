package coordinator

import (
	"path"
	"sort"

	"github.com/go-kit/log/level"

	"github.com/strideql/stride/pkg/status"
)

// finalizeQuery moves the files an INSERT staged into their final locations.
// Runs after every backend has finished, so the staged file set is complete.
// The sequence is: clean overwritten partitions, ensure partition directories
// exist, move staged files, drop the staging directories.
func (c *Coordinator) finalizeQuery() status.Status {
	params := c.req.FinalizeParams
	level.Info(c.logger).Log("msg", "finalizing insert", "table", params.TargetTable, "overwrite", params.IsOverwrite)

	c.lock.Lock()
	partitions := make([]string, 0, len(c.numAppendedRows))
	for partition := range c.numAppendedRows {
		partitions = append(partitions, partition)
	}
	filesToMove := make(map[string]string, len(c.filesToMove))
	for src, dst := range c.filesToMove {
		filesToMove[src] = dst
	}
	c.lock.Unlock()
	sort.Strings(partitions)

	for _, partition := range partitions {
		if partition == "" {
			// unpartitioned table: the table directory doubles as the data
			// directory and also contains the staging directory, so only its
			// plain files are overwritten
			if params.IsOverwrite {
				entries, err := c.fs.ListDir(params.HdfsBaseDir)
				if err != nil {
					return status.FromError(err)
				}
				for _, e := range entries {
					if e.IsDir {
						continue
					}
					if err := c.fs.Delete(e.Path, false); err != nil {
						return status.FromError(err)
					}
				}
			}
			continue
		}

		partitionDir := path.Join(params.HdfsBaseDir, partition)
		if params.IsOverwrite {
			// A concurrent writer may be creating files here; deleting and
			// recreating without checking existence first avoids failing on a
			// directory that appears between the check and the delete.
			if err := c.fs.Delete(partitionDir, true); err != nil {
				return status.FromError(err)
			}
		}
		if err := c.fs.CreateDir(partitionDir); err != nil {
			return status.FromError(err)
		}
	}

	var stagingDirs []string
	moves := make([]string, 0, len(filesToMove))
	for src, dst := range filesToMove {
		if dst == "" {
			stagingDirs = append(stagingDirs, src)
			continue
		}
		moves = append(moves, src)
	}
	sort.Strings(moves)
	for _, src := range moves {
		dst := filesToMove[src]
		if err := c.fs.CreateDir(path.Dir(dst)); err != nil {
			return status.FromError(err)
		}
		if err := c.fs.Rename(src, dst); err != nil {
			return status.FromError(err)
		}
	}

	sort.Strings(stagingDirs)
	for _, dir := range stagingDirs {
		if err := c.fs.Delete(dir, true); err != nil {
			return status.FromError(err)
		}
	}
	return status.OK()
}
