package connectors

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const FILE_SCHEME = "file"

type FileConnector struct {
	Path string
}

func (c *FileConnector) NewFromURI(uri string) Connector {
	// Example: file:///path/to/dir
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return nil
	}

	// if the path start with ./ use PWD
	finalPath := parsed.Host + parsed.Path
	if strings.HasPrefix(finalPath, "./") || finalPath == "." {
		finalPath = filepath.Join(pwd, strings.TrimPrefix(finalPath, "."))
	}

	return &FileConnector{
		Path: filepath.FromSlash(finalPath),
	}
}

func (c *FileConnector) GetPath() string {
	return c.Path
}

func (c *FileConnector) GetURI() string {
	return FILE_SCHEME + "://" + filepath.ToSlash(c.Path)
}

func (c *FileConnector) GetScheme() string {
	return FILE_SCHEME
}

func (c *FileConnector) Connect() error {
	return nil
}

func (c *FileConnector) Close() error {
	return nil
}

func (c *FileConnector) ReadFileBytes(remotePath string, size int64) ([]byte, error) {
	remotePath = filepath.Join(c.Path, remotePath)

	f, err := os.Open(remotePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// If we know the size, preallocate
	if size > 0 {
		buf := make([]byte, size)
		_, err := io.ReadFull(f, buf)
		if err != nil {
			return nil, err
		}
		return buf, nil
	}

	return io.ReadAll(f)
}

func (c *FileConnector) HasFile(remotePath string) bool {
	remotePath = filepath.Join(c.Path, remotePath)
	_, err := os.Stat(remotePath)
	return err == nil
}
