package fsutil

import (
	"os"
	"path"

	"github.com/colinmarc/hdfs/v2"
	"github.com/pkg/errors"
)

// HdfsClient implements FsClient against an HDFS namenode.
type HdfsClient struct {
	client *hdfs.Client
}

func NewHdfsClient(namenode string) (*HdfsClient, error) {
	client, err := hdfs.New(namenode)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to namenode %s", namenode)
	}
	return &HdfsClient{client: client}, nil
}

func (c *HdfsClient) ListDir(dir string) ([]FileInfo, error) {
	entries, err := c.client.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", dir)
	}
	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, FileInfo{Path: path.Join(dir, e.Name()), IsDir: e.IsDir()})
	}
	return infos, nil
}

func (c *HdfsClient) Delete(p string, recursive bool) error {
	var err error
	if recursive {
		err = c.client.RemoveAll(p)
	} else {
		err = c.client.Remove(p)
	}
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "deleting %s", p)
	}
	return nil
}

func (c *HdfsClient) Rename(src, dst string) error {
	return errors.Wrapf(c.client.Rename(src, dst), "moving %s to %s", src, dst)
}

func (c *HdfsClient) CreateDir(dir string) error {
	err := c.client.MkdirAll(dir, 0o755)
	if err != nil && !os.IsExist(err) {
		return errors.Wrapf(err, "creating %s", dir)
	}
	return nil
}

func (c *HdfsClient) Exists(p string) (bool, error) {
	_, err := c.client.Stat(p)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "statting %s", p)
}

func (c *HdfsClient) Close() error {
	return c.client.Close()
}
