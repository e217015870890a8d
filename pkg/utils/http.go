package utils

import (
	"fmt"
	"io"
	"net/http"
)

type RequestOptions struct {
	Body        io.Reader
	ContentType string
	Headers     map[string]string
}

func NewRequestOptions(contentType string) *RequestOptions {
	headers := make(map[string]string)
	headers["Content-Type"] = contentType

	return &RequestOptions{
		Body:        nil,
		ContentType: contentType,
		Headers:     headers,
	}
}

func (o *RequestOptions) AddHeader(key string, value string) {
	o.Headers[key] = value
}

// DoRequest performs the request and returns the response body. Credentials
// in uri never appear in the returned errors.
func DoRequest(method string, uri string, options *RequestOptions) ([]byte, error) {
	httpClient := &http.Client{}

	body := io.Reader(nil)
	if options != nil {
		body = options.Body
	}

	req, err := http.NewRequest(method, uri, body)
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", UnwrapURLError(err))
	}

	if options != nil {
		for key, value := range options.Headers {
			req.Header.Set(key, value)
		}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !(resp.StatusCode >= 200 && resp.StatusCode < 300) {
		return nil, fmt.Errorf("%s %s: status code: %d", method, req.URL.Redacted(), resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
