package connectors

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"limeal.fr/rsplaunch/pkg/utils"
)

type ChecksumType int

const (
	ChecksumTypeSHA1 ChecksumType = iota + 1
	ChecksumTypeSHA256
)

// Fetch returns the content behind ref. URIs go through the matching
// connector (connected for this single read, then closed); anything else is
// a local path. A URI fragment of the form #sha256=<hex> or #sha1=<hex> is
// checked against the downloaded content.
func Fetch(ref string) ([]byte, error) {
	if !IsURI(ref) {
		return os.ReadFile(ref)
	}

	parsed, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("invalid uri: %w", utils.UnwrapURLError(err))
	}

	checksumType, checksum, err := parseChecksum(parsed.Fragment)
	if err != nil {
		return nil, err
	}
	parsed.Fragment = ""
	parsed.RawFragment = ""

	name := path.Base(parsed.Path)
	if name == "/" || name == "." {
		return nil, fmt.Errorf("uri %s does not name a file", parsed.Redacted())
	}
	parsed.Path = path.Dir(parsed.Path)
	parsed.RawPath = ""

	connector := FindConnectorFromURI(parsed.String())
	if connector == nil {
		return nil, fmt.Errorf("no connector for %s", parsed.Redacted())
	}

	if err := connector.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", connector.GetURI(), err)
	}
	defer connector.Close()

	log.Debug("Fetching response file", "uri", connector.GetURI(), "dir", connector.GetPath(), "name", name)
	if !connector.HasFile(name) {
		return nil, fmt.Errorf("%s not found in %s: %w", name, connector.GetURI(), fs.ErrNotExist)
	}

	data, err := connector.ReadFileBytes(name, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from %s: %w", name, connector.GetURI(), err)
	}

	if checksumType != 0 && !matchesChecksum(data, checksumType, checksum) {
		return nil, fmt.Errorf("checksum mismatch for %s", name)
	}
	return data, nil
}

func parseChecksum(fragment string) (ChecksumType, string, error) {
	if fragment == "" {
		return 0, "", nil
	}

	kind, value, ok := strings.Cut(fragment, "=")
	if !ok || value == "" {
		return 0, "", fmt.Errorf("invalid checksum %q", fragment)
	}

	switch strings.ToLower(kind) {
	case "sha1":
		return ChecksumTypeSHA1, strings.ToLower(value), nil
	case "sha256":
		return ChecksumTypeSHA256, strings.ToLower(value), nil
	}
	return 0, "", fmt.Errorf("unsupported checksum type %q", kind)
}

func matchesChecksum(data []byte, checksumType ChecksumType, checksum string) bool {
	switch checksumType {
	case ChecksumTypeSHA1:
		return utils.BytesSHA1(data) == checksum
	case ChecksumTypeSHA256:
		return utils.BytesSHA256(data) == checksum
	}
	return true
}
