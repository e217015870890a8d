package connectors

import (
	"net/url"
	"strings"

	"limeal.fr/rsplaunch/pkg/utils"
)

const HTTP_SCHEME = "http"
const HTTPS_SCHEME = "https"

type HttpConnector struct {
	URL string

	Secured bool // https or http
}

func (c *HttpConnector) getURL(remotePath string) string {
	if strings.HasPrefix(remotePath, "/") {
		if strings.HasSuffix(c.URL, "/") {
			return c.URL + strings.TrimPrefix(remotePath, "/")
		}
		return c.URL + remotePath
	}
	if strings.HasSuffix(c.URL, "/") {
		return c.URL + remotePath
	}

	return c.URL + "/" + remotePath
}

func (c *HttpConnector) NewFromURI(uri string) Connector {
	return &HttpConnector{
		URL:     uri,
		Secured: strings.HasPrefix(uri, HTTPS_SCHEME),
	}
}

// GetPath is the path part of the base URL.
func (c *HttpConnector) GetPath() string {
	parsed, err := url.Parse(c.URL)
	if err != nil {
		return ""
	}
	return parsed.Path
}

func (c *HttpConnector) GetURI() string {
	return utils.RedactURI(c.URL)
}

func (c *HttpConnector) GetScheme() string {
	if c.Secured {
		return HTTPS_SCHEME
	}
	return HTTP_SCHEME
}

func (c *HttpConnector) Connect() error {
	return nil
}

func (c *HttpConnector) Close() error {
	return nil
}

func (c *HttpConnector) requestOptions() *utils.RequestOptions {
	options := utils.NewRequestOptions("text/plain")
	options.AddHeader("User-Agent", "rsplaunch")
	return options
}

/**
* Read the file from remote url
* e.g. https://example.com/doom/args.rsp
 */
func (c *HttpConnector) ReadFileBytes(remotePath string, size int64) ([]byte, error) {
	return utils.DoRequest("GET", c.getURL(remotePath), c.requestOptions())
}

func (c *HttpConnector) HasFile(remotePath string) bool {
	_, err := utils.DoRequest("HEAD", c.getURL(remotePath), c.requestOptions())
	return err == nil
}
