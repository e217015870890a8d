package connectors

import (
	"strings"
)

// Connector reads response files from wherever an @reference points to.
type Connector interface {
	NewFromURI(uri string) Connector

	GetPath() string
	GetURI() string
	GetScheme() string // file, sftp, http, https

	Connect() error
	Close() error

	ReadFileBytes(remotePath string, size int64) ([]byte, error)
	HasFile(remotePath string) bool
}

var CONNECTORS = map[string]Connector{
	SFTP_SCHEME:  new(SFTPConnector),
	FILE_SCHEME:  new(FileConnector),
	HTTP_SCHEME:  new(HttpConnector),
	HTTPS_SCHEME: new(HttpConnector),
}

// IsURI reports whether ref uses one of the registered schemes.
func IsURI(ref string) bool {
	for scheme := range CONNECTORS {
		if strings.HasPrefix(ref, scheme+"://") {
			return true
		}
	}
	return false
}

func FindConnectorFromURI(uri string) Connector {
	for k, connector := range CONNECTORS {
		if strings.HasPrefix(uri, k+"://") {
			return connector.NewFromURI(uri)
		}
	}

	return nil
}
