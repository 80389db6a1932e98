// Package fsutil abstracts the filesystem operations the coordinator needs
// to finalize INSERT queries: listing staging directories, moving staged
// files into place and cleaning up.
package fsutil

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// FileInfo describes one directory entry.
type FileInfo struct {
	Path  string
	IsDir bool
}

// FsClient is the subset of filesystem operations used during INSERT
// finalization.
type FsClient interface {
	// ListDir returns the immediate children of dir.
	ListDir(dir string) ([]FileInfo, error)
	// Delete removes path. Directories are removed recursively when
	// recursive is set. Deleting a missing path is not an error.
	Delete(p string, recursive bool) error
	// Rename moves src to dst.
	Rename(src, dst string) error
	// CreateDir creates dir and any missing parents. Creating an existing
	// directory is not an error.
	CreateDir(dir string) error
	// Exists reports whether path exists.
	Exists(p string) (bool, error)
}

// AferoClient adapts an afero.Fs. Used with the OS filesystem for local
// deployments and with MemMapFs in tests.
type AferoClient struct {
	fs afero.Fs
}

func NewAferoClient(fs afero.Fs) *AferoClient {
	return &AferoClient{fs: fs}
}

func (c *AferoClient) ListDir(dir string) ([]FileInfo, error) {
	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}
	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, FileInfo{Path: path.Join(dir, e.Name()), IsDir: e.IsDir()})
	}
	return infos, nil
}

func (c *AferoClient) Delete(p string, recursive bool) error {
	var err error
	if recursive {
		err = c.fs.RemoveAll(p)
	} else {
		err = c.fs.Remove(p)
	}
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "deleting %s", p)
	}
	return nil
}

func (c *AferoClient) Rename(src, dst string) error {
	return errors.Wrapf(c.fs.Rename(src, dst), "moving %s to %s", src, dst)
}

func (c *AferoClient) CreateDir(dir string) error {
	return errors.Wrapf(c.fs.MkdirAll(dir, 0o755), "creating %s", dir)
}

func (c *AferoClient) Exists(p string) (bool, error) {
	return afero.Exists(c.fs, p)
}
