package openapiv3

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/jeroenvervaeke/openapiv3/oaserrors"
)

// MaxFileSize is the maximum size (in bytes) allowed for document files
// read by LoadFile. This prevents resource exhaustion from loading
// arbitrarily large files. Set to 10MB which should be sufficient for
// most OpenAPI documents.
const MaxFileSize = 10 * 1024 * 1024 // 10MB

// Load parses an OpenAPI 3.0 document from YAML or JSON bytes. The YAML
// parser handles both formats, since JSON is a subset of YAML.
//
// The document must declare a 3.x "openapi" version field. Failures are
// reported as *oaserrors.ParseError.
func Load(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &oaserrors.ParseError{
			Message: "failed to unmarshal document",
			Cause:   err,
		}
	}

	if doc.OpenAPI == "" {
		return nil, &oaserrors.ParseError{
			Message: "missing required 'openapi' version field",
		}
	}
	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		return nil, &oaserrors.ParseError{
			Message: fmt.Sprintf("unsupported OpenAPI version %q: only 3.x documents are supported", doc.OpenAPI),
		}
	}

	return &doc, nil
}

// LoadFile reads and parses an OpenAPI 3.0 document from a file,
// enforcing the MaxFileSize limit.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oaserrors.ParseError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}
	if int64(len(data)) > MaxFileSize {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        MaxFileSize,
			Actual:       int64(len(data)),
			Message:      path,
		}
	}

	doc, err := Load(data)
	if err != nil {
		if parseErr, ok := err.(*oaserrors.ParseError); ok {
			parseErr.Path = path
		}
		return nil, err
	}
	return doc, nil
}
