package utils

import (
	"errors"
	"net/url"
	"strings"
)

// RedactURI hides the password of a URI so that it can be logged or put in
// an error. Anything that is not a URI is returned unchanged; a URI that
// cannot be parsed is replaced altogether.
func RedactURI(ref string) string {
	if !strings.Contains(ref, "://") {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "<invalid uri>"
	}
	return u.Redacted()
}

// UnwrapURLError drops the *url.Error wrapper, which quotes the full URL.
func UnwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
